package scoring

import (
	"errors"
	"fmt"

	"github.com/BigBug273/daily-vocab/internal/domain"
)

// Bucket identifies which branch of the heuristic produced a score.
type Bucket string

const (
	BucketMissingWord Bucket = "missing_word"
	BucketShort       Bucket = "short"
	BucketMedium      Bucket = "medium"
	BucketLong        Bucket = "long"
)

// Range is a half-open interval [Min, Max) a base score is drawn from.
type Range struct {
	Min float64
	Max float64
}

// Params holds the policy constants of the heuristic.
type Params struct {
	// Sentences with fewer tokens than ShortBelow land in the short bucket.
	ShortBelow int
	// Sentences with fewer tokens than MediumBelow (and not short) land in the
	// medium bucket; everything else is long.
	MediumBelow int

	Ranges      map[Bucket]Range
	Suggestions map[Bucket]string

	// BonusLevel and BonusMinWords gate the length bonus: a sentence for a
	// word of BonusLevel with more than BonusMinWords tokens gets Bonus added.
	BonusLevel    domain.DifficultyLevel
	BonusMinWords int
	Bonus         float64
}

// Errors returned by Params.Validate.
var (
	ErrInvalidThresholds = errors.New("bucket thresholds must satisfy 0 < short < medium")
	ErrInvalidRange      = errors.New("invalid score range")
	ErrMissingSuggestion = errors.New("missing suggestion")
)

// NewDefaultParams returns the production policy.
func NewDefaultParams() *Params {
	return &Params{
		ShortBelow:  4,
		MediumBelow: 9,
		Ranges: map[Bucket]Range{
			BucketMissingWord: {Min: 0.0, Max: 5.0},
			BucketShort:       {Min: 5.0, Max: 7.0},
			BucketMedium:      {Min: 7.0, Max: 8.5},
			BucketLong:        {Min: 8.0, Max: 10.0},
		},
		Suggestions: map[Bucket]string{
			// %s is replaced with the target word
			BucketMissingWord: "Try using the word '%s' clearly in your sentence.",
			BucketShort:       "Your sentence is a bit short. Try adding more details.",
			BucketMedium:      "Good sentence! Consider adding more complex structures or adjectives.",
			BucketLong:        "Excellent! Your sentence is well-structured and descriptive.",
		},
		BonusLevel:    domain.DifficultyAdvanced,
		BonusMinWords: 8,
		Bonus:         0.5,
	}
}

// Validate checks that every bucket has a usable range and suggestion.
func (p *Params) Validate() error {
	if p.ShortBelow <= 0 || p.MediumBelow <= p.ShortBelow {
		return ErrInvalidThresholds
	}

	for _, b := range []Bucket{BucketMissingWord, BucketShort, BucketMedium, BucketLong} {
		r, ok := p.Ranges[b]
		if !ok || r.Min < domain.MinScore || r.Max > domain.MaxScore || r.Min > r.Max {
			return fmt.Errorf("%w: bucket %s", ErrInvalidRange, b)
		}
		if p.Suggestions[b] == "" {
			return fmt.Errorf("%w: bucket %s", ErrMissingSuggestion, b)
		}
	}

	if p.Bonus < 0 {
		return fmt.Errorf("%w: bonus must not be negative", ErrInvalidRange)
	}

	return nil
}
