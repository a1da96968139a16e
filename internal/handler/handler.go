// Package handler holds the HTTP handlers behind the card API.
// Each constructor returns an http.HandlerFunc so routes can be wired
// without a handler struct.
package handler

import (
	"net/http"

	"github.com/osse101/cardtable/internal/catalog"
)

// HandleHello answers with the plain-text greeting
// @Summary Greeting
// @Description Returns a fixed plain-text greeting
// @Tags cards
// @Produce plain
// @Success 200 {string} string "hello from server!"
// @Router /api/hello [get]
func HandleHello() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondText(w, http.StatusOK, catalog.Greeting)
	}
}
