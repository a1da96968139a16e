// Package route maps client-side paths to pages.
package route

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/cardtable/internal/domain"
)

// Path patterns
const (
	PatternHome        = "/"
	PatternHelloServer = "/hello-server"
	PatternCard        = "/card/{id}"
	PatternCards       = "/cards"
	PathNotFound       = "/404"

	paramID = "id"
)

// Route is one of Home, HelloServer, Card, Cards or NotFound
type Route interface {
	Path() string
	isRoute()
}

type Home struct{}

type HelloServer struct{}

// Card shows a single card
type Card struct {
	ID int
}

type Cards struct{}

// NotFound is every path no other route claims
type NotFound struct{}

func (Home) Path() string        { return PatternHome }
func (HelloServer) Path() string { return PatternHelloServer }
func (c Card) Path() string      { return "/card/" + strconv.Itoa(c.ID) }
func (Cards) Path() string       { return PatternCards }
func (NotFound) Path() string    { return PathNotFound }

func (Home) isRoute()        {}
func (HelloServer) isRoute() {}
func (Card) isRoute()        {}
func (Cards) isRoute()       {}
func (NotFound) isRoute()    {}

// table only serves matching; its handlers never run
var table = newTable()

func newTable() *chi.Mux {
	m := chi.NewRouter()
	noop := func(http.ResponseWriter, *http.Request) {}
	for _, p := range []string{PatternHome, PatternHelloServer, PatternCard, PatternCards} {
		m.Get(p, noop)
	}
	return m
}

// Parse resolves a path. A query or fragment is ignored. Card ids that are
// not base-10 32-bit integers resolve to NotFound.
func Parse(path string) Route {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		path = PatternHome
	}

	rctx := chi.NewRouteContext()
	if !table.Match(rctx, http.MethodGet, path) {
		return NotFound{}
	}

	switch rctx.RoutePattern() {
	case PatternHome:
		return Home{}
	case PatternHelloServer:
		return HelloServer{}
	case PatternCards:
		return Cards{}
	case PatternCard:
		id, err := domain.ParseCardID(rctx.URLParam(paramID))
		if err != nil {
			return NotFound{}
		}
		return Card{ID: id}
	default:
		return NotFound{}
	}
}
