package quizgen

import (
	"context"
	"fmt"
	"math"
)

// Generator runs the full synthesis pipeline: normalize, segment, extract
// key phrases, rank, synthesize, assemble. One Generator may serve many
// requests; each request gets fresh state and its own random source.
type Generator struct {
	cfg Config
}

// New creates a Generator with the given tuning.
func New(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate turns document text into a scorable question set. Degenerate
// input (empty text, too few sentences or phrases) degrades the result —
// possibly below Count, possibly to zero questions — but never produces an
// error. Errors are reserved for caller bugs (bad count or kind) and
// context cancellation.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	if input.Count < 1 {
		return nil, fmt.Errorf("question count must be at least 1, got %d", input.Count)
	}
	kind := input.Kind
	if kind == "" {
		kind = QuizMCQ
	}
	if kind != QuizMCQ && kind != QuizTrueFalse && kind != QuizMixed {
		return nil, fmt.Errorf("unknown quiz kind %q", input.Kind)
	}

	text := Normalize(input.Text)
	rng := g.cfg.newRand(text)

	cands := g.cfg.Segment(text)
	phrases := g.cfg.ExtractKeyPhrases(text)
	ranked := g.cfg.Rank(cands, phrases, input.Count)
	st := newSynthState(ranked, phrases, rng)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var qs []Question
	switch kind {
	case QuizMCQ:
		qs = g.balancedMC(input.Count, st)

	case QuizTrueFalse:
		qs = g.cfg.synthTrueFalse(input.Count, st)

	case QuizMixed:
		// Half single-choice, the rest split between true/false and
		// multi-select, scheduled in that order against the shared
		// used-set.
		mcN := (input.Count + 1) / 2
		tfN := (input.Count - mcN + 1) / 2
		msN := input.Count - mcN - tfN
		qs = g.balancedMC(mcN, st)
		qs = append(qs, g.cfg.synthTrueFalse(tfN, st)...)
		qs = append(qs, g.cfg.synthMultiSelect(msN, text, st)...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Conceptual fallback tops the set up to Count when the
	// sentence-driven synthesizers under-deliver.
	if missing := input.Count - len(qs); missing > 0 {
		if kind == QuizTrueFalse {
			qs = append(qs, g.cfg.synthConceptualTF(missing, text, st)...)
		} else {
			qs = append(qs, g.cfg.synthConceptualMC(missing, st)...)
		}
	}

	return g.assemble(qs, input.Count), nil
}

// balancedMC distributes single-choice questions across cognitive levels:
// ceil shares for comprehension and application, floor for analysis. For
// small counts the ceilings can overshoot by one; assembly truncates.
func (g *Generator) balancedMC(count int, st *synthState) []Question {
	nc := int(math.Ceil(g.cfg.ComprehensionShare * float64(count)))
	na := int(math.Ceil(g.cfg.ApplicationShare * float64(count)))
	nz := int(math.Floor(g.cfg.AnalysisShare * float64(count)))

	qs := g.cfg.synthComprehension(nc, st)
	qs = append(qs, g.cfg.synthApplication(na, st)...)
	qs = append(qs, g.cfg.synthAnalysis(nz, st)...)

	// Reclaim slots a starved level left unfilled, in scheduling order.
	if len(qs) < count {
		qs = append(qs, g.cfg.synthComprehension(count-len(qs), st)...)
	}
	return qs
}

// assemble truncates to the requested count, drops any question failing
// the validator chain, and assigns the final contiguous IDs.
func (g *Generator) assemble(qs []Question, count int) []Question {
	if len(qs) > count {
		qs = qs[:count]
	}

	out := qs[:0]
	for i := range qs {
		q := qs[i]
		if g.validQuestion(&q) {
			out = append(out, q)
		}
	}

	for i := range out {
		out[i].ID = i + 1
	}
	return out
}

func (g *Generator) validQuestion(q *Question) bool {
	for _, v := range g.cfg.Validators {
		if err := v.Validate(q); err != nil {
			return false
		}
	}
	return true
}
