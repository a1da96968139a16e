// Package app is the client application shell. It mounts one page per
// route and re-renders it on every state change, all on a ui.Loop.
package app

import (
	"context"

	"github.com/osse101/cardtable/internal/client/fetch"
	"github.com/osse101/cardtable/internal/client/route"
	"github.com/osse101/cardtable/internal/client/ui"
	"github.com/osse101/cardtable/internal/client/view"
	"github.com/osse101/cardtable/internal/logger"
)

// LogMsgPageMounted is logged at debug on every navigation
const LogMsgPageMounted = "Page mounted"

// Frame is one render of the current page
type Frame struct {
	Route route.Route
	View  view.Node
	// Settled is true once the page has no outstanding fetch
	Settled bool
}

// App owns the current route and page. Its state is only touched on loop.
type App struct {
	ctx      context.Context
	loop     *ui.Loop
	fetcher  *fetch.Fetcher
	route    route.Route
	page     Page
	frame    Frame
	onRender func(Frame)
}

// New creates an app with nothing mounted. ctx bounds every page fetch.
func New(ctx context.Context, loop *ui.Loop, fetcher *fetch.Fetcher) *App {
	return &App{
		ctx:     ctx,
		loop:    loop,
		fetcher: fetcher,
	}
}

// OnRender registers fn to receive every frame. fn runs on the loop.
func (a *App) OnRender(fn func(Frame)) {
	a.loop.Do(func() { a.onRender = fn })
}

// Navigate parses path and mounts the matching page
func (a *App) Navigate(path string) bool {
	return a.NavigateTo(route.Parse(path))
}

// NavigateTo unmounts the current page and mounts the one for r
func (a *App) NavigateTo(r route.Route) bool {
	return a.loop.Post(func() {
		if a.page != nil {
			a.page.Unmount()
		}
		a.route = r
		a.page = newPage(r, a.fetcher)
		logger.FromContext(a.ctx).Debug(LogMsgPageMounted, "path", r.Path())
		a.render()
	})
}

// render must run on the loop
func (a *App) render() {
	page := a.page
	a.frame = Frame{Route: a.route, View: page.Render(), Settled: !page.Pending()}
	if a.onRender != nil {
		a.onRender(a.frame)
	}
	page.Effect(a.ctx, a.loop, a.render)
	// Effect may have started a fetch
	a.frame.Settled = !page.Pending()
}

// Render returns the latest frame
func (a *App) Render() Frame {
	var f Frame
	a.loop.Do(func() { f = a.frame })
	return f
}

// Settled reports that the current page has no outstanding fetch
func (a *App) Settled() bool {
	settled := false
	a.loop.Do(func() { settled = a.page != nil && !a.page.Pending() })
	return settled
}
