package api

import (
	"time"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/service"
	"github.com/samber/lo"
)

// WordResponse is the body of GET /api/word.
type WordResponse struct {
	ID              string `json:"id"`
	Word            string `json:"word"`
	DifficultyLevel string `json:"difficulty_level"`
}

// ValidateSentenceRequest is the body of POST /api/validate-sentence.
type ValidateSentenceRequest struct {
	Sentence string `json:"sentence" validate:"required"`
	WordID   string `json:"word_id"  validate:"required,uuid"`
}

// ValidateSentenceResponse is the scoring result returned to the client.
type ValidateSentenceResponse struct {
	Score             float64 `json:"score"`
	Level             string  `json:"level"`
	Suggestion        string  `json:"suggestion"`
	CorrectedSentence string  `json:"corrected_sentence"`
}

// SummaryResponse is the body of GET /api/summary.
type SummaryResponse struct {
	AverageScore        float64        `json:"average_score"`
	TotalWordsPracticed int            `json:"total_words_practiced"`
	LevelDistribution   map[string]int `json:"level_distribution"`
}

// HistoryItemResponse is one entry of GET /api/history.
type HistoryItemResponse struct {
	ID           string    `json:"id"`
	Word         string    `json:"word"`
	UserSentence string    `json:"user_sentence"`
	Score        float64   `json:"score"`
	Feedback     string    `json:"feedback"`
	PracticedAt  time.Time `json:"practiced_at"`
}

// IndexResponse describes the API at GET /.
type IndexResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

func wordToResponse(w *domain.Word) WordResponse {
	return WordResponse{
		ID:              w.ID.String(),
		Word:            w.Word,
		DifficultyLevel: string(w.DifficultyLevel),
	}
}

func practiceResultToResponse(res *service.PracticeResult) ValidateSentenceResponse {
	return ValidateSentenceResponse{
		Score:             res.Score,
		Level:             string(res.Level),
		Suggestion:        res.Suggestion,
		CorrectedSentence: res.CorrectedSentence,
	}
}

func summaryToResponse(s *domain.PracticeSummary) SummaryResponse {
	return SummaryResponse{
		AverageScore:        s.AverageScore,
		TotalWordsPracticed: s.TotalWordsPracticed,
		LevelDistribution: lo.MapKeys(s.LevelDistribution, func(_ int, level domain.DifficultyLevel) string {
			return string(level)
		}),
	}
}

func historyToResponse(items []domain.HistoryItem) []HistoryItemResponse {
	return lo.Map(items, func(item domain.HistoryItem, _ int) HistoryItemResponse {
		return HistoryItemResponse{
			ID:           item.ID.String(),
			Word:         item.Word,
			UserSentence: item.UserSentence,
			Score:        item.Score,
			Feedback:     item.Feedback,
			PracticedAt:  item.PracticedAt,
		}
	})
}
