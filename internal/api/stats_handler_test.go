package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BigBug273/daily-vocab/internal/domain"
	"github.com/BigBug273/daily-vocab/internal/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler_GetSummary(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &mocks.MockStatsService{
			SummaryFn: func(ctx context.Context) (*domain.PracticeSummary, error) {
				return &domain.PracticeSummary{
					AverageScore:        7.33,
					TotalWordsPracticed: 2,
					LevelDistribution: domain.NewLevelDistribution(map[domain.DifficultyLevel]int{
						domain.DifficultyBeginner: 3,
					}),
				}, nil
			},
		}
		handler := NewStatsHandler(svc, discardLogger())

		w := httptest.NewRecorder()
		handler.GetSummary(w, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"average_score": 7.33,
			"total_words_practiced": 2,
			"level_distribution": {"Beginner": 3, "Intermediate": 0, "Advanced": 0}
		}`, w.Body.String())
	})

	t.Run("empty log", func(t *testing.T) {
		handler := NewStatsHandler(&mocks.MockStatsService{}, discardLogger())

		w := httptest.NewRecorder()
		handler.GetSummary(w, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"average_score": 0,
			"total_words_practiced": 0,
			"level_distribution": {"Beginner": 0, "Intermediate": 0, "Advanced": 0}
		}`, w.Body.String())
	})

	t.Run("failure", func(t *testing.T) {
		svc := &mocks.MockStatsService{
			SummaryFn: func(ctx context.Context) (*domain.PracticeSummary, error) {
				return nil, errors.New("timeout")
			},
		}
		handler := NewStatsHandler(svc, discardLogger())

		w := httptest.NewRecorder()
		handler.GetSummary(w, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to compute summary", decodeError(t, w).Error)
	})
}

func TestStatsHandler_GetHistory(t *testing.T) {
	practicedAt := time.Date(2026, time.March, 3, 9, 30, 0, 0, time.UTC)
	item := domain.HistoryItem{
		ID:           uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Word:         "cat",
		UserSentence: "I saw a cat",
		Score:        6.2,
		Feedback:     "Your sentence is a bit short. Try adding more details.",
		PracticedAt:  practicedAt,
	}

	tests := []struct {
		name           string
		query          string
		expectedLimit  int
		expectedStatus int
		expectedError  string
	}{
		{"default limit", "", 50, http.StatusOK, ""},
		{"explicit limit", "?limit=5", 5, http.StatusOK, ""},
		{"blank limit", "?limit=", 50, http.StatusOK, ""},
		{"zero limit", "?limit=0", 0, http.StatusOK, ""},
		{"large limit", "?limit=5000", 5000, http.StatusOK, ""},
		{"negative limit", "?limit=-3", 0, http.StatusBadRequest, "Invalid limit: must be a non-negative integer"},
		{"non-numeric limit", "?limit=ten", 0, http.StatusBadRequest, "Invalid limit: must be a non-negative integer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gotLimit := 0
			svc := &mocks.MockStatsService{
				HistoryFn: func(ctx context.Context, limit int) ([]domain.HistoryItem, error) {
					gotLimit = limit
					return []domain.HistoryItem{item}, nil
				},
			}
			handler := NewStatsHandler(svc, discardLogger())

			w := httptest.NewRecorder()
			handler.GetHistory(w, httptest.NewRequest(http.MethodGet, "/api/history"+tc.query, nil))

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, tc.expectedLimit, gotLimit)

			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, decodeError(t, w).Error)
				return
			}

			items := decodeBody[[]HistoryItemResponse](t, w)
			require.Len(t, items, 1)
			assert.Equal(t, item.ID.String(), items[0].ID)
			assert.Equal(t, "cat", items[0].Word)
			assert.Equal(t, 6.2, items[0].Score)
			assert.True(t, practicedAt.Equal(items[0].PracticedAt))
		})
	}
}

func TestStatsHandler_GetHistoryEmpty(t *testing.T) {
	handler := NewStatsHandler(&mocks.MockStatsService{DefaultLimit: 10}, discardLogger())

	w := httptest.NewRecorder()
	handler.GetHistory(w, httptest.NewRequest(http.MethodGet, "/api/history", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
