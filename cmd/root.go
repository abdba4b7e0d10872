package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/learnify/internal/app"
	"github.com/abhisek/learnify/internal/quizgen"
)

var rootCmd = &cobra.Command{
	Use:   "learnify",
	Short: "Turn documents into practice quizzes",
	Long:  "Learnify — terminal quiz generator that reads a text document, synthesizes questions from it, and runs you through a timed quiz.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{Config: cfg})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("tuning", "", "Path to a YAML file overriding synthesis tuning")
	rootCmd.PersistentFlags().Int64("seed", 0, "Fixed random seed for reproducible question sets")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig builds the synthesis config from the --tuning file (when
// given) and applies the --seed override.
func resolveConfig(cmd *cobra.Command) (quizgen.Config, error) {
	cfg := quizgen.DefaultConfig()

	if path, _ := cmd.Flags().GetString("tuning"); path != "" {
		loaded, err := quizgen.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Seed = seed
	}

	return cfg, nil
}
