package app

import (
	"context"

	"github.com/osse101/cardtable/internal/client/fetch"
	"github.com/osse101/cardtable/internal/client/loadstate"
	"github.com/osse101/cardtable/internal/client/route"
	"github.com/osse101/cardtable/internal/client/view"
	"github.com/osse101/cardtable/internal/domain"
)

// Page texts
const (
	HomeHeading     = "Hello Frontend"
	HomeLinkText    = "See the cards"
	CardsHeading    = "Cards"
	NotFoundHeading = "404: Not Found"
)

// Page is a mounted component. All methods run on the UI loop.
type Page interface {
	Render() view.Node
	// Effect runs after every render
	Effect(ctx context.Context, poster loadstate.Poster, rerender func())
	Pending() bool
	Unmount()
}

// newPage maps a route to a freshly mounted page
func newPage(r route.Route, f *fetch.Fetcher) Page {
	switch r := r.(type) {
	case route.Home:
		return staticPage{view.Page(
			view.Heading(HomeHeading),
			view.Link(route.Cards{}.Path(), HomeLinkText),
		)}
	case route.HelloServer:
		return &fetchPage[string]{
			loader:  loadstate.New(f.Hello),
			loading: noResponse,
			ready:   func(s string) view.Node { return view.Page(view.Message(s)) },
		}
	case route.Card:
		id := r.ID
		return &fetchPage[domain.Card]{
			loader: loadstate.New(func(ctx context.Context) (domain.Card, error) {
				return f.Card(ctx, id)
			}),
			loading: func() view.Node { return view.Page(view.Card(domain.PlaceholderCard())) },
			ready:   func(c domain.Card) view.Node { return view.Page(view.Card(c)) },
		}
	case route.Cards:
		return &fetchPage[domain.Hand]{
			loader:  loadstate.New(f.Cards),
			loading: noResponse,
			ready: func(h domain.Hand) view.Node {
				return view.Page(view.Heading(CardsHeading), view.Hand(h))
			},
		}
	default:
		return staticPage{view.Page(view.Heading(NotFoundHeading))}
	}
}

func noResponse() view.Node {
	return view.Page(view.Message(view.NoResponseText))
}

// staticPage never fetches
type staticPage struct {
	node view.Node
}

func (p staticPage) Render() view.Node                              { return p.node }
func (staticPage) Effect(context.Context, loadstate.Poster, func()) {}
func (staticPage) Pending() bool                                    { return false }
func (staticPage) Unmount()                                         {}

// fetchPage shows loading until its single fetch resolves, then the value
// or the error.
type fetchPage[T any] struct {
	loader  *loadstate.Loader[T]
	loading func() view.Node
	ready   func(T) view.Node
}

func (p *fetchPage[T]) Render() view.Node {
	s := p.loader.State()
	switch {
	case s.Ready():
		return p.ready(s.Value)
	case s.Failed():
		return view.Page(view.Error(s.Err))
	default:
		return p.loading()
	}
}

func (p *fetchPage[T]) Effect(ctx context.Context, poster loadstate.Poster, rerender func()) {
	p.loader.Effect(ctx, poster, rerender)
}

func (p *fetchPage[T]) Pending() bool {
	return p.loader.State().Phase != loadstate.Loaded
}

func (p *fetchPage[T]) Unmount() {
	p.loader.Unmount()
}
