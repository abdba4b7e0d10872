package quizgen

import "testing"

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("The  quick\nbrown\tfox.\r\nJumps high.")
	want := "The quick brown fox. Jumps high."
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeStripsDisallowedRunes(t *testing.T) {
	got := Normalize("Cost: $50 [approx] <b>bold</b> 100%")
	want := "Cost: 50 approx bbold/b 100%"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeKeepsSentencePunctuation(t *testing.T) {
	in := "Is it done? Yes! (See section 2.1, \"Basics\"; 50% done.)"
	if got := Normalize(in); got != in {
		t.Errorf("Normalize() = %q, want unchanged %q", got, in)
	}
}

func TestNormalizeEmptyAndWhitespaceOnly(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t\r\n"} {
		if got := Normalize(in); got != "" {
			t.Errorf("Normalize(%q) = %q, want empty", in, got)
		}
	}
}
