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

type fakeProfileStore struct {
	nextID   uint
	profiles map[uint]*models.Profile // keyed by user id
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{profiles: make(map[uint]*models.Profile)}
}

func (f *fakeProfileStore) Create(profile *models.Profile) error {
	f.nextID++
	profile.ID = f.nextID
	stored := *profile
	f.profiles[profile.UserID] = &stored
	return nil
}

func (f *fakeProfileStore) ByUser(userID uint) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return profile, nil
}

func (f *fakeProfileStore) All() ([]models.Profile, error) {
	var out []models.Profile
	for _, profile := range f.profiles {
		out = append(out, *profile)
	}
	return out, nil
}

func TestMeReturns404WithoutProfile(t *testing.T) {
	controller := NewProfileController(newFakeProfileStore())
	r := newTestRouter(&utils.UserClaims{UserID: 1, Username: "alice"})
	r.GET("/api/profiles/me", controller.Me)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/me", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Profile not found", resp["error"])
}

func TestMeReturnsOwnProfile(t *testing.T) {
	profiles := newFakeProfileStore()
	require.NoError(t, profiles.Create(&models.Profile{UserID: 1, Bio: "early riser"}))
	require.NoError(t, profiles.Create(&models.Profile{UserID: 2, Bio: "night owl"}))

	controller := NewProfileController(profiles)
	r := newTestRouter(&utils.UserClaims{UserID: 1, Username: "alice"})
	r.GET("/api/profiles/me", controller.Me)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/profiles/me", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.Profile
	decodeBody(t, rec, &profile)
	assert.Equal(t, uint(1), profile.UserID)
	assert.Equal(t, "early riser", profile.Bio)
}

func TestCreateProfileBindsOwnerToCaller(t *testing.T) {
	profiles := newFakeProfileStore()
	controller := NewProfileController(profiles)
	r := newTestRouter(&utils.UserClaims{UserID: 3, Username: "carol"})
	r.POST("/api/profiles", controller.CreateProfile)

	body := jsonBody(t, map[string]interface{}{
		"bio":           "loves trail running",
		"fitness_goals": []string{"build_endurance"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/profiles", body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	stored, err := profiles.ByUser(3)
	require.NoError(t, err)
	assert.Equal(t, "loves trail running", stored.Bio)
	assert.Equal(t, []string{"build_endurance"}, []string(stored.FitnessGoals))
}
