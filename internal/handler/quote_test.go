package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avisbal23/LiftWithAlex-sub000/internal/models"
	"github.com/avisbal23/LiftWithAlex-sub000/internal/storage"
)

func newQuoteRouter(store storage.Storage) *gin.Engine {
	h := NewQuoteHandler(store, zap.NewNop())
	r := gin.New()
	r.GET("/quotes", h.List)
	r.GET("/quotes/active", h.ListActive)
	r.GET("/quotes/random", h.Random)
	r.POST("/quotes", h.Create)
	r.PATCH("/quotes/:id", h.Update)
	r.DELETE("/quotes/:id", h.Delete)
	r.POST("/quotes/import", h.Import)
	return r
}

func TestQuoteRandomEmptyPool(t *testing.T) {
	r := newQuoteRouter(storage.NewMemStorage())

	w, env := doJSON(t, r, http.MethodGet, "/quotes/random", nil)
	require.Equal(t, http.StatusOK, w.Code, "an empty pool is not an error")
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "null", string(env.Data["quote"]))
}

func TestQuoteRandomSkipsInactive(t *testing.T) {
	store := storage.NewMemStorage()
	active := models.Quote{Text: "Fear = Fuel", Author: "Me", IsActive: 1}
	inactive := models.Quote{Text: "Benched", Author: "Unknown", IsActive: 0}
	require.NoError(t, store.CreateQuote(&active))
	require.NoError(t, store.CreateQuote(&inactive))

	r := newQuoteRouter(store)
	for i := 0; i < 10; i++ {
		_, env := doJSON(t, r, http.MethodGet, "/quotes/random", nil)
		var q models.Quote
		require.NoError(t, json.Unmarshal(env.Data["quote"], &q))
		assert.Equal(t, "Fear = Fuel", q.Text)
	}
}

func TestQuoteImport(t *testing.T) {
	store := storage.NewMemStorage()
	r := newQuoteRouter(store)

	w, env := doJSON(t, r, http.MethodPost, "/quotes/import", gin.H{
		"text": "\"Fear = Fuel\" - Me\nNo author here\n\n\"Last - dash - wins\" - Arnold",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Imported int `json:"imported"`
		Failed   int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(env.Data["summary"], &summary))
	assert.Equal(t, 3, summary.Imported)
	assert.Equal(t, 0, summary.Failed)

	quotes, err := store.ListQuotes()
	require.NoError(t, err)
	require.Len(t, quotes, 3)

	byText := map[string]models.Quote{}
	for _, q := range quotes {
		byText[q.Text] = q
	}
	assert.Equal(t, "Me", byText["Fear = Fuel"].Author)
	assert.Equal(t, "Unknown", byText["No author here"].Author)
	assert.Equal(t, "Arnold", byText["Last - dash - wins"].Author)
}

func TestQuoteUpdateDeactivate(t *testing.T) {
	store := storage.NewMemStorage()
	q := models.Quote{Text: "Temporary", IsActive: 1}
	require.NoError(t, store.CreateQuote(&q))

	r := newQuoteRouter(store)
	w, env := doJSON(t, r, http.MethodPatch, "/quotes/"+q.ID, gin.H{"isActive": 0})
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Quote
	require.NoError(t, json.Unmarshal(env.Data["quote"], &got))
	assert.Equal(t, 0, got.IsActive)
	assert.Equal(t, "Temporary", got.Text, "omitted fields keep their values")

	active, err := store.ListActiveQuotes()
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestQuoteDeleteNotFound(t *testing.T) {
	r := newQuoteRouter(storage.NewMemStorage())
	w, _ := doJSON(t, r, http.MethodDelete, "/quotes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
