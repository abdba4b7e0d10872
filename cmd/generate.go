package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/learnify/internal/document"
	"github.com/abhisek/learnify/internal/export"
	"github.com/abhisek/learnify/internal/quizgen"
	"github.com/abhisek/learnify/internal/scoring"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz from a document without the TUI",
	Long: `Read a document, synthesize questions, and either print them,
save them as a quiz file, or answer them interactively on stdin.

Useful for evaluating question quality and for producing quiz files that
others can take and score later.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("file", "", "Path to the source document (required)")
	generateCmd.Flags().Int("count", 5, "Number of questions to generate")
	generateCmd.Flags().String("kind", "mcq", "Quiz kind: mcq, truefalse, or mixed")
	generateCmd.Flags().String("out", "", "Write the quiz as a JSON file instead of printing it")
	generateCmd.Flags().Bool("take", false, "Answer the questions interactively on stdin")
	generateCmd.Flags().String("answers-out", "", "With --take, save the submitted answers as a JSON file")
	_ = generateCmd.MarkFlagRequired("file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	count, _ := cmd.Flags().GetInt("count")
	kindVal, _ := cmd.Flags().GetString("kind")
	out, _ := cmd.Flags().GetString("out")
	take, _ := cmd.Flags().GetBool("take")
	answersOut, _ := cmd.Flags().GetString("answers-out")

	kind, ok := quizgen.ParseQuizKind(kindVal)
	if !ok {
		return fmt.Errorf("invalid kind %q: must be mcq, truefalse, or mixed", kindVal)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	text, err := document.Load(file)
	if err != nil {
		return err
	}

	gen := quizgen.New(cfg)
	qs, err := gen.Generate(cmd.Context(), quizgen.GenerateInput{
		Text:  text,
		Count: count,
		Kind:  kind,
	})
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}
	if len(qs) < count {
		fmt.Fprintf(os.Stderr, "Note: the document only supported %d of %d requested questions.\n", len(qs), count)
	}

	qf := export.NewQuizFile(kind, qs)

	if out != "" {
		if err := export.WriteQuiz(out, qf); err != nil {
			return err
		}
		fmt.Printf("Wrote %d questions to %s (quiz %s)\n", len(qs), out, qf.QuizID)
		return nil
	}

	if take {
		return takeOnStdin(qf, answersOut)
	}

	printQuiz(qs)
	return nil
}

// printQuiz dumps questions with their answer keys to stdout.
func printQuiz(qs []quizgen.Question) {
	for _, q := range qs {
		fmt.Printf("%d. [%s/%s] %s\n", q.ID, q.Kind, q.Level, q.Prompt)
		for i, opt := range q.Options {
			fmt.Printf("   %d) %s\n", i+1, opt)
		}
		fmt.Printf("   Answer: %s\n\n", scoring.FormatAnswer(q.Answer.Single, q.Answer.Multi))
	}
}

// takeOnStdin runs the quiz as a plain stdin loop and prints the score.
func takeOnStdin(qf *export.QuizFile, answersOut string) error {
	scanner := bufio.NewScanner(os.Stdin)
	responses := make(quizgen.ResponseMap)

	for i, q := range qf.Questions {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(qf.Questions))
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		if q.Kind == quizgen.KindMultiChoice {
			fmt.Print("\nYour answers (numbers separated by spaces, blank for none, 's' to skip): ")
		} else {
			fmt.Print("\nYour answer (number, or 's' to skip): ")
		}

		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		raw := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(raw, "s") {
			fmt.Println()
			continue
		}

		if q.Kind == quizgen.KindMultiChoice {
			var picked []string
			for _, tok := range strings.Fields(raw) {
				n, err := strconv.Atoi(tok)
				if err != nil || n < 1 || n > len(q.Options) {
					continue
				}
				picked = append(picked, q.Options[n-1])
			}
			if picked == nil {
				picked = []string{}
			}
			responses[q.ID] = quizgen.Response{Multi: picked}
		} else {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 || n > len(q.Options) {
				fmt.Println("Unrecognized answer; counted as skipped.")
				fmt.Println()
				continue
			}
			responses[q.ID] = quizgen.Response{Single: q.Options[n-1]}
		}
		fmt.Println()
	}

	summary := scoring.Grade(qf.Questions, responses)
	fmt.Printf("Score: %d%%  (%d of %d correct)\n", summary.Score, summary.Correct, summary.Total)

	if answersOut != "" {
		af := &export.AnswerFile{
			QuizID:    qf.QuizID,
			Responses: responses,
		}
		if err := export.WriteAnswers(answersOut, af); err != nil {
			return err
		}
		fmt.Printf("Wrote answers to %s\n", answersOut)
	}
	return nil
}
