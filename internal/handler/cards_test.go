package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/cardtable/internal/catalog"
	"github.com/osse101/cardtable/internal/domain"
)

func newCardRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/hello", HandleHello())
	r.Get("/api/cards", HandleGetCards())
	r.Get("/api/card/{id}", HandleGetCard())
	return r
}

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandleHello(t *testing.T) {
	w := serve(t, newCardRouter(), "/api/hello")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypeText, w.Header().Get("Content-Type"))
	assert.Equal(t, catalog.Greeting, w.Body.String())
}

func TestHandleGetCards(t *testing.T) {
	w := serve(t, newCardRouter(), "/api/cards")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, ContentTypeJSON, w.Header().Get("Content-Type"))

	var hand domain.Hand
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hand))
	require.NotEmpty(t, hand.Cards)
	assert.Len(t, hand.Cards, catalog.HandSize)
	for i, card := range hand.Cards {
		assert.Equal(t, i+1, card.ID)
	}
}

func TestHandleGetCard(t *testing.T) {
	t.Run("scenario card 7", func(t *testing.T) {
		w := serve(t, newCardRouter(), "/api/card/7")

		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(7), body["id"])
		assert.Equal(t, "Card 7", body["name"])
		assert.Contains(t, body["description"], "Lorem ipsum")
		assert.Len(t, body, 3)
	})

	t.Run("id echoes the path for valid ids", func(t *testing.T) {
		for _, id := range []int{0, 1, 42, -1, 2147483647, -2147483648} {
			w := serve(t, newCardRouter(), "/api/card/"+strconv.Itoa(id))

			require.Equal(t, http.StatusOK, w.Code, "id %d", id)
			var card domain.Card
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
			assert.Equal(t, id, card.ID)
		}
	})

	t.Run("malformed ids are rejected", func(t *testing.T) {
		for _, raw := range []string{"abc", "1.5", "2147483648", "0x10", "%20"} {
			w := serve(t, newCardRouter(), "/api/card/"+raw)

			assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", raw)
			assert.JSONEq(t, `{"error":"`+ErrMsgInvalidCardID+`"}`, w.Body.String())
		}
	})
}
