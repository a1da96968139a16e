package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/cardtable/internal/catalog"
	"github.com/osse101/cardtable/internal/domain"
	"github.com/osse101/cardtable/internal/logger"
	"github.com/osse101/cardtable/internal/metrics"
)

// URLParamCardID is the chi URL parameter holding the card id
const URLParamCardID = "id"

// HandleGetCards returns the mock hand
// @Summary Get hand
// @Description Returns a hand of ten mock cards
// @Tags cards
// @Produce json
// @Success 200 {object} domain.Hand
// @Router /api/cards [get]
func HandleGetCards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hand := catalog.Cards()
		metrics.CardsServed.WithLabelValues(metrics.EndpointCards).Add(float64(hand.Len()))
		respondJSON(w, http.StatusOK, hand)
	}
}

// HandleGetCard returns a synthesized card whose id echoes the path parameter.
// A malformed id is rejected with 400.
// @Summary Get card
// @Description Returns a card whose id echoes the path parameter
// @Tags cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} domain.Card
// @Failure 400 {object} ErrorResponse
// @Router /api/card/{id} [get]
func HandleGetCard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, URLParamCardID)
		id, err := domain.ParseCardID(raw)
		if err != nil {
			logger.FromContext(r.Context()).Debug(LogMsgInvalidCardID, "id", raw, "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidCardID)
			return
		}

		metrics.CardsServed.WithLabelValues(metrics.EndpointCard).Inc()
		respondJSON(w, http.StatusOK, catalog.Card(id))
	}
}
