package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/stats"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
)

func newCardioRouter(h *CardioHandler) *gin.Engine {
	r := gin.New()
	r.GET("/cardio-log-entries", h.List)
	r.GET("/cardio-log-entries/stats", h.Stats)
	r.POST("/cardio-log-entries", h.Create)
	r.PATCH("/cardio-log-entries/:id", h.Update)
	r.DELETE("/cardio-log-entries/:id", h.Delete)
	r.POST("/cardio-log-entries/parse-voice", h.ParseVoice)
	return r
}

func TestCardioCreateAndStats(t *testing.T) {
	store := storage.NewMemStorage()
	h := NewCardioHandler(store, zap.NewNop(), "")
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	h.Now = func() time.Time { return now }
	r := newCardioRouter(h)

	w, _ := doJSON(t, r, http.MethodPost, "/cardio-log-entries", gin.H{
		"date": "2025-08-18", "activityType": "run", "durationMinutes": 30,
		"distance": "3.1 miles", "calories": 300,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, env := doJSON(t, r, http.MethodGet, "/cardio-log-entries/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var s stats.CardioSummary
	require.NoError(t, json.Unmarshal(env.Data["stats"], &s))
	assert.Equal(t, 30.0, s.WeekMinutes)
	assert.InDelta(t, 3.1, s.WeekMiles, 1e-9)
	assert.Equal(t, 300.0, s.WeekCalories)
}

func TestCardioDistanceKeptAsEntered(t *testing.T) {
	store := storage.NewMemStorage()
	h := NewCardioHandler(store, zap.NewNop(), "")
	r := newCardioRouter(h)

	_, env := doJSON(t, r, http.MethodPost, "/cardio-log-entries", gin.H{
		"date": "2025-08-18", "activityType": "run", "distance": "5 km",
	})
	var e models.CardioLogEntry
	require.NoError(t, json.Unmarshal(env.Data["cardioEntry"], &e))
	assert.Equal(t, "5 km", e.DistanceText)
}

func TestParseVoiceUnconfigured(t *testing.T) {
	h := NewCardioHandler(storage.NewMemStorage(), zap.NewNop(), "")
	r := newCardioRouter(h)

	w, env := doJSON(t, r, http.MethodPost, "/cardio-log-entries/parse-voice", gin.H{"transcript": "ran three miles"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotEqual(t, 0, env.Code)
}

func TestParseVoiceForwardsTranscript(t *testing.T) {
	parser := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		var body struct {
			Transcript string `json:"transcript"`
		}
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "ran three miles", body.Transcript)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"activityType": "run", "distance": "3 miles",
		})
	}))
	defer parser.Close()

	h := NewCardioHandler(storage.NewMemStorage(), zap.NewNop(), parser.URL)
	r := newCardioRouter(h)

	w, env := doJSON(t, r, http.MethodPost, "/cardio-log-entries/parse-voice", gin.H{"transcript": "ran three miles"})
	require.Equal(t, http.StatusOK, w.Code)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data["parsed"], &parsed))
	assert.Equal(t, "run", parsed["activityType"])
}

func TestParseVoiceUpstreamFailure(t *testing.T) {
	parser := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer parser.Close()

	h := NewCardioHandler(storage.NewMemStorage(), zap.NewNop(), parser.URL)
	r := newCardioRouter(h)

	w, _ := doJSON(t, r, http.MethodPost, "/cardio-log-entries/parse-voice", gin.H{"transcript": "x"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
