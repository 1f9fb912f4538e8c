package connectors

import (
	"errors"
	"sort"

	instantsearch "github.com/OriginalSin/instantsearch.js"
)

// DefaultMenuLimit caps the number of menu items when no limit is set.
const DefaultMenuLimit = 10

// ErrMissingAttribute reports a menu connector configured without the facet
// attribute to refine on.
var ErrMissingAttribute = errors.New("instantsearch: attribute option is required")

// MenuItem is one facet value offered for refinement.
type MenuItem struct {
	Value     string
	Label     string
	Count     int
	IsRefined bool
}

// MenuParams configures the menu behavior.
type MenuParams struct {
	// Attribute is the facet attribute to refine on. Required.
	Attribute string

	// Limit caps the number of items. Defaults to DefaultMenuLimit.
	Limit int

	// SortBy orders items before the limit applies. Defaults to count
	// descending, then label ascending.
	SortBy func(a, b MenuItem) bool

	// TransformItems reshapes the final item list, after sorting and
	// limiting. Must be pure.
	TransformItems func(items []MenuItem) []MenuItem
}

// MenuRenderOptions is the payload a menu render callback receives.
type MenuRenderOptions struct {
	Items     []MenuItem
	CanRefine bool

	// Refine toggles the refinement for a facet value. An empty value
	// clears the attribute's refinement entirely.
	Refine func(value string)

	Instance *instantsearch.InstantSearch
}

// ConnectMenu binds a render callback to menu behavior and returns the
// widget factory. The callback is invoked with isFirstRender=true once,
// before any results exist, then once per result delivery.
func ConnectMenu(render instantsearch.RenderFn[MenuRenderOptions], dispose instantsearch.DisposeFn) func(MenuParams) (instantsearch.Widget, error) {
	return func(params MenuParams) (instantsearch.Widget, error) {
		if params.Attribute == "" {
			return nil, ErrMissingAttribute
		}
		if params.Limit <= 0 {
			params.Limit = DefaultMenuLimit
		}
		return &menuWidget{params: params, render: render, dispose: dispose}, nil
	}
}

type menuWidget struct {
	params  MenuParams
	render  instantsearch.RenderFn[MenuRenderOptions]
	dispose instantsearch.DisposeFn
}

func (w *menuWidget) Init(opts instantsearch.InitOptions) {
	w.render(MenuRenderOptions{
		Refine:   w.refineFn(opts.Helper),
		Instance: opts.Instance,
	}, true)
}

func (w *menuWidget) Render(opts instantsearch.RenderOptions) {
	items := w.deriveItems(opts)
	w.render(MenuRenderOptions{
		Items:     items,
		CanRefine: len(items) > 0,
		Refine:    w.refineFn(opts.Helper),
		Instance:  opts.Instance,
	}, false)
}

func (w *menuWidget) Dispose() {
	if w.dispose != nil {
		w.dispose()
	}
}

func (w *menuWidget) refineFn(helper *instantsearch.Helper) func(string) {
	attribute := w.params.Attribute
	return func(value string) {
		if value == "" {
			helper.ClearRefinements(attribute).Search()
			return
		}
		helper.ToggleFacetRefinement(attribute, value).Search()
	}
}

func (w *menuWidget) deriveItems(opts instantsearch.RenderOptions) []MenuItem {
	if opts.Results == nil {
		return nil
	}
	counts := opts.Results.Facets[w.params.Attribute]
	if len(counts) == 0 {
		return nil
	}

	items := make([]MenuItem, 0, len(counts))
	for value, count := range counts {
		items = append(items, MenuItem{
			Value:     value,
			Label:     value,
			Count:     count,
			IsRefined: opts.State.IsRefined(w.params.Attribute, value),
		})
	}

	less := w.params.SortBy
	if less == nil {
		less = func(a, b MenuItem) bool {
			if a.Count != b.Count {
				return a.Count > b.Count
			}
			return a.Label < b.Label
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })

	if len(items) > w.params.Limit {
		items = items[:w.params.Limit]
	}
	if w.params.TransformItems != nil {
		items = w.params.TransformItems(items)
	}
	return items
}
