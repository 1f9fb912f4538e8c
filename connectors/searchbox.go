package connectors

import (
	instantsearch "github.com/OriginalSin/instantsearch.js"
)

// SearchBoxParams configures the search box behavior.
type SearchBoxParams struct {
	// QueryHook intercepts every query before it is searched. It receives
	// the raw query and a search continuation; call the continuation to
	// proceed, possibly with an amended query. Use it for debouncing or
	// query rewriting.
	QueryHook func(query string, search func(string))
}

// SearchBoxRenderOptions is the payload a search box render callback
// receives.
type SearchBoxRenderOptions struct {
	Query string

	// Refine searches the given query, through the QueryHook when set.
	Refine func(query string)

	// Clear empties the query and searches.
	Clear func()

	// IsSearchStalled reports that the current results are stale while a
	// newer search is in flight.
	IsSearchStalled bool

	Instance *instantsearch.InstantSearch
}

// ConnectSearchBox binds a render callback to search box behavior and
// returns the widget factory. This is also the integration point for
// binding an existing input element instead of mounting the bundled
// widget's markup.
func ConnectSearchBox(render instantsearch.RenderFn[SearchBoxRenderOptions], dispose instantsearch.DisposeFn) func(SearchBoxParams) (instantsearch.Widget, error) {
	return func(params SearchBoxParams) (instantsearch.Widget, error) {
		return &searchBoxWidget{params: params, render: render, dispose: dispose}, nil
	}
}

type searchBoxWidget struct {
	params  SearchBoxParams
	render  instantsearch.RenderFn[SearchBoxRenderOptions]
	dispose instantsearch.DisposeFn
}

func (w *searchBoxWidget) Init(opts instantsearch.InitOptions) {
	w.render(SearchBoxRenderOptions{
		Query:    opts.State.Query,
		Refine:   w.refineFn(opts.Helper),
		Clear:    w.clearFn(opts.Helper),
		Instance: opts.Instance,
	}, true)
}

func (w *searchBoxWidget) Render(opts instantsearch.RenderOptions) {
	w.render(SearchBoxRenderOptions{
		Query:           opts.State.Query,
		Refine:          w.refineFn(opts.Helper),
		Clear:           w.clearFn(opts.Helper),
		IsSearchStalled: opts.SearchStalled,
		Instance:        opts.Instance,
	}, false)
}

func (w *searchBoxWidget) Dispose() {
	if w.dispose != nil {
		w.dispose()
	}
}

func (w *searchBoxWidget) refineFn(helper *instantsearch.Helper) func(string) {
	search := func(query string) {
		helper.SetQuery(query).Search()
	}
	if w.params.QueryHook == nil {
		return search
	}
	hook := w.params.QueryHook
	return func(query string) {
		hook(query, search)
	}
}

// clearFn bypasses the QueryHook: clearing is a user reset, not a query to
// intercept.
func (w *searchBoxWidget) clearFn(helper *instantsearch.Helper) func() {
	return func() {
		helper.SetQuery("").Search()
	}
}
