package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/config"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	return SetupRouter(&config.Config{}, storage.NewMemStorage(), zap.NewNop())
}

// The resource names and verbs below are what the UI is built against, so
// they are load-bearing: renaming a collection or swapping PATCH for PUT
// breaks every client.
func TestRegisteredRoutes(t *testing.T) {
	r := newTestRouter()

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /api/exercises",
		"GET /api/exercises/:category",
		"PATCH /api/exercises/:id",
		"POST /api/exercises/import",
		"GET /api/exercises/export/csv",
		"GET /api/workout-logs/latest",
		"GET /api/weight-entries",
		"GET /api/weight-entries/range",
		"PATCH /api/weight-entries/:id",
		"POST /api/weight-entries/import",
		"GET /api/weight-audits",
		"GET /api/blood-entries",
		"PATCH /api/blood-entries/:id",
		"POST /api/personal-records/reorder",
		"PATCH /api/personal-records/:id",
		"GET /api/pr-audits",
		"GET /api/exercise-audits",
		"GET /api/quotes/random",
		"PATCH /api/quotes/:id",
		"POST /api/affirmations/bulk",
		"PATCH /api/thoughts/:id",
		"POST /api/supplements/bulk",
		"PATCH /api/photo-progress/:id",
		"GET /api/step-entries/stats",
		"PATCH /api/step-entries/:id",
		"GET /api/cardio-log-entries/stats",
		"POST /api/cardio-log-entries/parse-voice",
		"PATCH /api/cardio-log-entries/:id",
		"GET /api/shortcut-settings",
		"PATCH /api/shortcut-settings/:id",
		"GET /api/tab-settings",
		"GET /api/user-settings",
		"PATCH /api/user-settings",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestRoutesRespond(t *testing.T) {
	r := newTestRouter()

	// collection listings answer 200 on an empty store
	for _, path := range []string{
		"/api/weight-entries",
		"/api/step-entries",
		"/api/cardio-log-entries",
		"/api/photo-progress",
		"/api/user-settings",
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}

	// the category listing matches alongside the static import/export siblings
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/exercises/push", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/exercises/arms", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown category is a 400, not a missing route")

	// PATCH reaches the handler: unknown id is the handler's 404
	req := httptest.NewRequest(http.MethodPatch, "/api/exercises/no-such-id", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "\"code\"")
}
