package scoring

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/BigBug273/daily-vocab/internal/domain"
)

// RandSource supplies uniformly distributed values in [0.0, 1.0).
// *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	Float64() float64
}

// globalSource uses the package-level math/rand/v2 generator, which is safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Result is the outcome of scoring one sentence.
type Result struct {
	Score             float64
	Level             domain.DifficultyLevel
	Suggestion        string
	CorrectedSentence string
	Bucket            Bucket
}

// Scorer evaluates sentences against a target word.
type Scorer interface {
	Score(sentence, targetWord string, difficulty domain.DifficultyLevel) Result
}

// heuristicScorer is the placeholder implementation used until sentence
// evaluation moves to an external model.
type heuristicScorer struct {
	params *Params
	rnd    RandSource
}

// NewDefaultScorer returns a scorer with the default policy and the global
// random source.
func NewDefaultScorer() Scorer {
	return &heuristicScorer{
		params: NewDefaultParams(),
		rnd:    globalSource{},
	}
}

// NewScorer returns a scorer with custom params and random source. A nil
// source falls back to the global generator.
func NewScorer(params *Params, rnd RandSource) (Scorer, error) {
	if params == nil {
		params = NewDefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		rnd = globalSource{}
	}
	return &heuristicScorer{params: params, rnd: rnd}, nil
}

// Score implements Scorer.
func (s *heuristicScorer) Score(sentence, targetWord string, difficulty domain.DifficultyLevel) Result {
	hasWord := strings.Contains(strings.ToLower(sentence), strings.ToLower(targetWord))
	wordCount := len(strings.Fields(sentence))

	bucket := s.selectBucket(hasWord, wordCount)
	r := s.params.Ranges[bucket]
	score := r.Min + (r.Max-r.Min)*s.rnd.Float64()

	if difficulty == s.params.BonusLevel && wordCount > s.params.BonusMinWords {
		score = math.Min(domain.MaxScore, score+s.params.Bonus)
	}

	suggestion := s.params.Suggestions[bucket]
	if bucket == BucketMissingWord {
		suggestion = fmt.Sprintf(suggestion, targetWord)
	}

	return Result{
		Score:             domain.RoundScore(score),
		Level:             difficulty,
		Suggestion:        suggestion,
		CorrectedSentence: sentence,
		Bucket:            bucket,
	}
}

func (s *heuristicScorer) selectBucket(hasWord bool, wordCount int) Bucket {
	switch {
	case !hasWord:
		return BucketMissingWord
	case wordCount < s.params.ShortBelow:
		return BucketShort
	case wordCount < s.params.MediumBelow:
		return BucketMedium
	default:
		return BucketLong
	}
}
