package quizgen

import (
	"strings"
	"testing"
)

func TestSplitChunks(t *testing.T) {
	got := splitChunks("First sentence here. Second one follows. and this stays attached.")
	want := []string{"First sentence here.", "Second one follows. and this stays attached."}
	if len(got) != len(want) {
		t.Fatalf("splitChunks() returned %d chunks %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSplitChunksKeepsPeriod(t *testing.T) {
	got := splitChunks("Plants make oxygen. Animals breathe it.")
	if len(got) != 2 {
		t.Fatalf("splitChunks() = %v, want 2 chunks", got)
	}
	if !strings.HasSuffix(got[0], ".") {
		t.Errorf("first chunk %q should keep its period", got[0])
	}
}

func TestLooksLikeNoise(t *testing.T) {
	tests := []struct {
		chunk string
		want  bool
	}{
		{"1. Introduction to the topic at hand", true},
		{"Figure 3 shows the experimental setup", true},
		{"Table 2 lists every measurement taken", true},
		{"Reference list begins on the last page", true},
		{"Plain prose about photosynthesis and energy", false},
	}
	for _, tt := range tests {
		if got := looksLikeNoise(tt.chunk); got != tt.want {
			t.Errorf("looksLikeNoise(%q) = %v, want %v", tt.chunk, got, tt.want)
		}
	}
}

func TestSegmentFiltersByLength(t *testing.T) {
	cfg := DefaultConfig()
	text := "Tiny. " +
		"Chlorophyll is the green pigment that absorbs light energy from the sun. " +
		"This is a second acceptable sentence about the mechanics of energy capture."
	cands := cfg.Segment(text)
	for _, c := range cands {
		if len(c.text) < cfg.MinSentenceLen || len(c.text) > cfg.MaxSentenceLen {
			t.Errorf("candidate %q violates length bounds", c.text)
		}
		if c.text == "Tiny." {
			t.Errorf("short sentence survived segmentation")
		}
	}
	if len(cands) == 0 {
		t.Fatal("Segment() returned no candidates for valid prose")
	}
}

func TestSegmentLooseFallback(t *testing.T) {
	cfg := DefaultConfig()
	// One 40-char sentence: below the paragraph minimum, so the strict
	// pass yields nothing and the loose pass must pick it up.
	text := "Mitochondria produce cellular energy."
	if len(text) >= cfg.MinParagraphLen {
		t.Fatalf("test sentence too long for fallback scenario: %d chars", len(text))
	}
	cands := cfg.Segment(text)
	if len(cands) != 1 {
		t.Fatalf("Segment() = %d candidates, want 1 from loose fallback", len(cands))
	}
	if cands[0].text != text {
		t.Errorf("candidate = %q, want %q", cands[0].text, text)
	}
}

func TestSegmentEmpty(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Segment(""); got != nil {
		t.Errorf("Segment(\"\") = %v, want nil", got)
	}
}
