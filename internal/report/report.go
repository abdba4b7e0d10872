// Package report renders a finished attempt as a plain-text results file.
// Pure formatting over finalized data; writing it to disk is the only side
// effect and lives in Write.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/learnify/internal/quizgen"
	"github.com/abhisek/learnify/internal/scoring"
)

// Input carries everything the report mentions.
type Input struct {
	Learner   string
	AttemptID string
	Date      time.Time
	Questions []quizgen.Question
	Responses quizgen.ResponseMap
	Summary   scoring.Summary
	Duration  time.Duration
}

// Build renders the report text: header, score, then every question with
// the submitted and correct answers and a per-question verdict.
func Build(in Input) string {
	var b strings.Builder

	name := in.Learner
	if name == "" {
		name = "Anonymous"
	}

	fmt.Fprintf(&b, "Quiz Results for %s\n", name)
	fmt.Fprintf(&b, "Date: %s\n", in.Date.Format("2006-01-02"))
	if in.AttemptID != "" {
		fmt.Fprintf(&b, "Attempt: %s\n", in.AttemptID)
	}
	fmt.Fprintf(&b, "Score: %d%%  (%d of %d correct)\n", in.Summary.Score, in.Summary.Correct, in.Summary.Total)
	if in.Duration > 0 {
		fmt.Fprintf(&b, "Time taken: %s\n", formatDuration(in.Duration))
	}
	b.WriteString("\nQuestions and Answers:\n\n")

	for i, q := range in.Questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Prompt)

		r, answered := in.Responses[q.ID]
		if answered {
			fmt.Fprintf(&b, "Your answer: %s\n", scoring.FormatAnswer(r.Single, r.Multi))
		} else {
			b.WriteString("Your answer: Not answered\n")
		}
		fmt.Fprintf(&b, "Correct answer: %s\n", scoring.FormatAnswer(q.Answer.Single, q.Answer.Multi))

		verdict := "Incorrect"
		if i < len(in.Summary.Results) && in.Summary.Results[i].Correct {
			verdict = "Correct"
		}
		fmt.Fprintf(&b, "Result: %s\n\n", verdict)
	}

	b.WriteString("Generated by Learnify.\n")
	return b.String()
}

// Write renders the report and writes it to path.
func Write(path string, in Input) error {
	if err := os.WriteFile(path, []byte(Build(in)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
