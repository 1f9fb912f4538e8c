package instantsearch

import (
	"fmt"

	"github.com/OriginalSin/instantsearch.js/lib/vdom"
)

// Renderer patches a widget's container with a virtual node description.
// Render is synchronous and idempotent given the same node. vdom.DOM is the
// default implementation; tests substitute a RecordingRenderer.
type Renderer interface {
	Render(n *vdom.VNode, container *vdom.Element)
}

// Widget is the unit the orchestrator drives. The orchestrator guarantees
// exactly one Init call before any Render, and sequential delivery: a
// widget never sees two lifecycle calls concurrently.
type Widget interface {
	// Init is the first delivery, before any results exist. Widgets use it
	// to prepare templates; no DOM output happens here.
	Init(opts InitOptions)

	// Render is every subsequent delivery, carrying current results.
	Render(opts RenderOptions)

	// Dispose tears the widget down when it is removed from the search.
	Dispose()
}

// InitOptions is the payload of the first delivery.
type InitOptions struct {
	State    UiState
	Helper   *Helper
	Instance *InstantSearch
}

// RenderOptions is the payload of every delivery after the first. It is a
// read-only view: widgets do not own it and must not retain the results
// pointer across deliveries.
type RenderOptions struct {
	Results       *SearchResults
	State         UiState
	Helper        *Helper
	SearchStalled bool
	Instance      *InstantSearch
}

// RenderFn is the render callback a connector drives. isFirstRender is
// authoritative: true exactly once per widget, before any real update.
type RenderFn[T any] func(renderOpts T, isFirstRender bool)

// DisposeFn tears down whatever the render callback built.
type DisposeFn func()

// ResolveContainer accepts either a live element or a selector string and
// returns the container node a widget mounts into.
//
// A nil or empty container yields ErrMissingContainer (factories wrap it
// into their ConfigurationError). A selector that matches nothing yields a
// ContainerNotFoundError.
func ResolveContainer(doc *vdom.Document, container any) (*vdom.Element, error) {
	switch c := container.(type) {
	case nil:
		return nil, ErrMissingContainer
	case *vdom.Element:
		if c == nil {
			return nil, ErrMissingContainer
		}
		return c, nil
	case string:
		if c == "" {
			return nil, ErrMissingContainer
		}
		if doc == nil {
			return nil, fmt.Errorf("%w: a Document is required to resolve selector %q", ErrMissingContainer, c)
		}
		el := doc.QuerySelector(c)
		if el == nil {
			return nil, &ContainerNotFoundError{Selector: c}
		}
		return el, nil
	default:
		return nil, fmt.Errorf("%w: unsupported container type %T", ErrMissingContainer, container)
	}
}
