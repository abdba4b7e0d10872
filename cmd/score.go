package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnify/internal/export"
	"github.com/abhisek/learnify/internal/report"
	"github.com/abhisek/learnify/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a saved answer file against its quiz",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().String("quiz", "", "Path to the quiz JSON file (required)")
	scoreCmd.Flags().String("answers", "", "Path to the answers JSON file (required)")
	scoreCmd.Flags().String("report", "", "Also write a plain-text results report to this path")
	_ = scoreCmd.MarkFlagRequired("quiz")
	_ = scoreCmd.MarkFlagRequired("answers")
}

func runScore(cmd *cobra.Command, args []string) error {
	quizPath, _ := cmd.Flags().GetString("quiz")
	answersPath, _ := cmd.Flags().GetString("answers")
	reportPath, _ := cmd.Flags().GetString("report")

	qf, err := export.ReadQuiz(quizPath)
	if err != nil {
		return err
	}
	af, err := export.ReadAnswers(answersPath)
	if err != nil {
		return err
	}
	if af.QuizID != qf.QuizID {
		return fmt.Errorf("answers are for quiz %s, not %s", af.QuizID, qf.QuizID)
	}

	summary := scoring.Grade(qf.Questions, af.Responses)

	name := af.Learner
	if name == "" {
		name = "Anonymous"
	}
	fmt.Printf("%s: %d%%  (%d of %d correct)\n", name, summary.Score, summary.Correct, summary.Total)
	for i, q := range qf.Questions {
		verdict := "✗"
		if i < len(summary.Results) && summary.Results[i].Correct {
			verdict = "✓"
		}
		fmt.Printf("  %s %d. %s\n", verdict, q.ID, q.Prompt)
	}

	if reportPath != "" {
		in := report.Input{
			Learner:   af.Learner,
			Date:      time.Now(),
			Questions: qf.Questions,
			Responses: af.Responses,
			Summary:   summary,
		}
		if err := report.Write(reportPath, in); err != nil {
			return err
		}
		fmt.Printf("Wrote report to %s\n", reportPath)
	}
	return nil
}
