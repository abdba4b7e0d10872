package quizgen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every heuristic tuning value used by the generation
// pipeline. The defaults match the observed behavior of the original
// engine; all of them are overridable from a YAML tuning file because the
// constants are empirical, not principled.
type Config struct {
	// Segmentation bounds (characters).
	MinParagraphLen int `yaml:"min_paragraph_len"`
	MaxParagraphLen int `yaml:"max_paragraph_len"`
	MinSentenceLen  int `yaml:"min_sentence_len"`
	MaxSentenceLen  int `yaml:"max_sentence_len"`

	// Key-phrase extraction.
	TopPhrases     int     `yaml:"top_phrases"`
	MultiwordBoost float64 `yaml:"multiword_boost"`
	TitleCaseBoost float64 `yaml:"titlecase_boost"`
	DomainBoost    float64 `yaml:"domain_boost"`

	// Sentence ranking weights.
	ImportanceWeight float64 `yaml:"importance_weight"`
	CausalWeight     float64 `yaml:"causal_weight"`
	DefinitionWeight float64 `yaml:"definition_weight"`
	LengthWeight     float64 `yaml:"length_weight"`
	LeadWeight       float64 `yaml:"lead_weight"`
	IdealMinLen      int     `yaml:"ideal_min_len"`
	IdealMaxLen      int     `yaml:"ideal_max_len"`

	// Cognitive-level distribution for balanced MCQ sets.
	ComprehensionShare float64 `yaml:"comprehension_share"`
	ApplicationShare   float64 `yaml:"application_share"`
	AnalysisShare      float64 `yaml:"analysis_share"`

	// True/false generation.
	TrueBias float64 `yaml:"true_bias"`

	// Distractor selection: maximum allowed word-overlap similarity
	// between a text-derived distractor and the correct answer.
	SimilarityCutoff float64 `yaml:"similarity_cutoff"`

	// CooccurWindow is the character window within which two key phrases
	// count as related for conceptual true/false statements.
	CooccurWindow int `yaml:"cooccur_window"`

	// Seed pins the generator's random source. Zero derives a stable seed
	// from the input text, so identical requests produce identical sets.
	Seed int64 `yaml:"seed"`

	// Validators run on every assembled question; questions failing any
	// check are dropped before numbering.
	Validators []Validator `yaml:"-"`
}

// DefaultConfig returns the standard tuning plus the default validator
// chain.
func DefaultConfig() Config {
	return Config{
		MinParagraphLen: 50,
		MaxParagraphLen: 2000,
		MinSentenceLen:  30,
		MaxSentenceLen:  200,

		TopPhrases:     30,
		MultiwordBoost: 1.5,
		TitleCaseBoost: 1.3,
		DomainBoost:    1.4,

		ImportanceWeight: 0.7,
		CausalWeight:     0.5,
		DefinitionWeight: 0.6,
		LengthWeight:     0.4,
		LeadWeight:       0.3,
		IdealMinLen:      60,
		IdealMaxLen:      180,

		ComprehensionShare: 0.4,
		ApplicationShare:   0.3,
		AnalysisShare:      0.3,

		TrueBias: 0.6,

		SimilarityCutoff: 0.5,
		CooccurWindow:    300,

		Validators: []Validator{
			&StructuralValidator{},
			&ShapeValidator{},
		},
	}
}

// LoadConfig reads a YAML tuning file over the defaults. Unknown keys are
// rejected so typos in a tuning file fail loudly.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read tuning file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse tuning file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects tunings that would break pipeline invariants.
func (c *Config) validate() error {
	if c.MinSentenceLen <= 0 || c.MaxSentenceLen <= c.MinSentenceLen {
		return fmt.Errorf("sentence length bounds invalid: min=%d max=%d", c.MinSentenceLen, c.MaxSentenceLen)
	}
	if c.MinParagraphLen <= 0 || c.MaxParagraphLen <= c.MinParagraphLen {
		return fmt.Errorf("paragraph length bounds invalid: min=%d max=%d", c.MinParagraphLen, c.MaxParagraphLen)
	}
	if c.TopPhrases < 4 {
		return fmt.Errorf("top_phrases must be at least 4, got %d", c.TopPhrases)
	}
	if c.TrueBias < 0 || c.TrueBias > 1 {
		return fmt.Errorf("true_bias must be in [0,1], got %v", c.TrueBias)
	}
	if c.SimilarityCutoff <= 0 || c.SimilarityCutoff > 1 {
		return fmt.Errorf("similarity_cutoff must be in (0,1], got %v", c.SimilarityCutoff)
	}
	total := c.ComprehensionShare + c.ApplicationShare + c.AnalysisShare
	if total < 0.99 || total > 1.01 {
		return fmt.Errorf("cognitive-level shares must sum to 1, got %v", total)
	}
	return nil
}
