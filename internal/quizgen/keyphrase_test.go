package quizgen

import (
	"strings"
	"testing"
)

func TestExtractKeyPhrasesFrequencyWins(t *testing.T) {
	cfg := DefaultConfig()
	text := "photosynthesis converts sunlight. photosynthesis needs chlorophyll. photosynthesis releases oxygen."
	phrases := cfg.ExtractKeyPhrases(text)
	if len(phrases) == 0 {
		t.Fatal("ExtractKeyPhrases() returned nothing")
	}
	if !strings.EqualFold(phrases[0].Text, "photosynthesis") {
		t.Errorf("top phrase = %q, want photosynthesis", phrases[0].Text)
	}
	if phrases[0].Count != 3 {
		t.Errorf("top phrase count = %d, want 3", phrases[0].Count)
	}
}

func TestExtractKeyPhrasesMultiwordBoost(t *testing.T) {
	cfg := DefaultConfig()
	// "calvin cycle" and "glucose" both appear twice; the two-word phrase
	// must outrank the single word on the multiword boost alone.
	text := "calvin cycle produces glucose. calvin cycle consumes glucose."
	phrases := cfg.ExtractKeyPhrases(text)

	var cycleScore, glucoseScore float64
	for _, p := range phrases {
		switch strings.ToLower(p.Text) {
		case "calvin cycle":
			cycleScore = p.Score
		case "glucose":
			glucoseScore = p.Score
		}
	}
	if cycleScore == 0 || glucoseScore == 0 {
		t.Fatalf("expected both phrases present, got %v", phrases)
	}
	if cycleScore <= glucoseScore {
		t.Errorf("multiword score %v should beat single-word score %v", cycleScore, glucoseScore)
	}
}

func TestExtractKeyPhrasesStopwordsExcluded(t *testing.T) {
	cfg := DefaultConfig()
	phrases := cfg.ExtractKeyPhrases("the process and the theory have been discussed through many chapters")
	for _, p := range phrases {
		for _, w := range strings.Fields(strings.ToLower(p.Text)) {
			if stopwords[w] {
				t.Errorf("phrase %q contains stopword %q", p.Text, w)
			}
		}
	}
}

func TestExtractKeyPhrasesCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TopPhrases = 5

	var b strings.Builder
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}
	for _, w := range words {
		b.WriteString(w + "side ") // >3 chars, no stopwords
	}
	phrases := cfg.ExtractKeyPhrases(b.String())
	if len(phrases) > 5 {
		t.Errorf("got %d phrases, want at most 5", len(phrases))
	}
}

func TestExtractKeyPhrasesEmpty(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.ExtractKeyPhrases(""); got != nil {
		t.Errorf("ExtractKeyPhrases(\"\") = %v, want nil", got)
	}
}

func TestExtractKeyPhrasesDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	text := "energy systems store energy. storage systems move energy around."
	a := cfg.ExtractKeyPhrases(text)
	b := cfg.ExtractKeyPhrases(text)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("phrase %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}
