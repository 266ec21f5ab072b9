package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/octofit/api-go/models"
	"github.com/octofit/api-go/store"
	"github.com/octofit/api-go/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSuggestionStore struct {
	nextID      uint
	suggestions map[uint]*models.WorkoutSuggestion
}

func newFakeSuggestionStore() *fakeSuggestionStore {
	return &fakeSuggestionStore{suggestions: make(map[uint]*models.WorkoutSuggestion)}
}

func (f *fakeSuggestionStore) Create(suggestion *models.WorkoutSuggestion) error {
	f.nextID++
	suggestion.ID = f.nextID
	stored := *suggestion
	f.suggestions[suggestion.ID] = &stored
	return nil
}

func (f *fakeSuggestionStore) ByID(id uint) (*models.WorkoutSuggestion, error) {
	suggestion, ok := f.suggestions[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *suggestion
	return &copied, nil
}

func (f *fakeSuggestionStore) ByUser(userID uint) ([]models.WorkoutSuggestion, error) {
	var out []models.WorkoutSuggestion
	for _, suggestion := range f.suggestions {
		if suggestion.UserID == userID {
			out = append(out, *suggestion)
		}
	}
	return out, nil
}

func (f *fakeSuggestionStore) Save(suggestion *models.WorkoutSuggestion) error {
	stored := *suggestion
	f.suggestions[suggestion.ID] = &stored
	return nil
}

func TestAcceptSuggestion(t *testing.T) {
	suggestions := newFakeSuggestionStore()
	require.NoError(t, suggestions.Create(&models.WorkoutSuggestion{
		UserID:          1,
		ActivityTypeID:  1,
		DurationMinutes: 30,
		Difficulty:      models.DifficultyModerate,
	}))

	controller := NewSuggestionController(suggestions)
	r := newTestRouter(&utils.UserClaims{UserID: 1, Username: "alice"})
	r.POST("/api/suggestions/:id/accept", controller.AcceptSuggestion)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/suggestions/1/accept", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "suggestion accepted", resp["status"])

	stored, err := suggestions.ByID(1)
	require.NoError(t, err)
	assert.True(t, stored.Accepted)
}

func TestAcceptSuggestionRejectsOtherOwners(t *testing.T) {
	suggestions := newFakeSuggestionStore()
	require.NoError(t, suggestions.Create(&models.WorkoutSuggestion{
		UserID:          2,
		ActivityTypeID:  1,
		DurationMinutes: 30,
		Difficulty:      models.DifficultyEasy,
	}))

	controller := NewSuggestionController(suggestions)
	r := newTestRouter(&utils.UserClaims{UserID: 1, Username: "alice"})
	r.POST("/api/suggestions/:id/accept", controller.AcceptSuggestion)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/suggestions/1/accept", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	stored, err := suggestions.ByID(1)
	require.NoError(t, err)
	assert.False(t, stored.Accepted)
}

func TestListSuggestionsIsScopedToCaller(t *testing.T) {
	suggestions := newFakeSuggestionStore()
	require.NoError(t, suggestions.Create(&models.WorkoutSuggestion{UserID: 1, ActivityTypeID: 1, DurationMinutes: 20, Difficulty: models.DifficultyEasy}))
	require.NoError(t, suggestions.Create(&models.WorkoutSuggestion{UserID: 2, ActivityTypeID: 1, DurationMinutes: 40, Difficulty: models.DifficultyHard}))

	controller := NewSuggestionController(suggestions)
	r := newTestRouter(&utils.UserClaims{UserID: 1, Username: "alice"})
	r.GET("/api/suggestions", controller.ListSuggestions)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/suggestions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var listed []models.WorkoutSuggestion
	decodeBody(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, uint(1), listed[0].UserID)
}

func TestCreateSuggestionValidatesDifficulty(t *testing.T) {
	controller := NewSuggestionController(newFakeSuggestionStore())
	r := newTestRouter(&utils.UserClaims{UserID: 1, Username: "alice"})
	r.POST("/api/suggestions", controller.CreateSuggestion)

	body := jsonBody(t, map[string]interface{}{
		"activity_type_id": 1,
		"duration_minutes": 30,
		"difficulty":       "impossible",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/suggestions", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
