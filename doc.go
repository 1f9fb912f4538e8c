// Package instantsearch provides UI widgets for a search front-end: each
// widget binds a declarative configuration to a rendering function and a
// connector that subscribes it to search-result state.
//
// # Core Concepts
//
// A Widget is a self-contained unit bound to one container element and one
// facet or query configuration. Widgets are created by factories that
// validate options up front:
//
//	box, err := searchbox.New(searchbox.Params{
//	    Container:   "#searchbox",
//	    Document:    doc,
//	    Placeholder: "Search products",
//	})
//
// The factory validates required options, resolves the container, computes
// CSS classes with the shared SUIT naming convention, and hands a render
// closure to a connector. Construction failures are synchronous: a
// ConfigurationError carries the widget's full usage synopsis, a
// ContainerNotFoundError reports a selector that matched nothing, and an
// UnsupportedContainerError rejects element kinds a widget cannot mount
// into.
//
// # Lifecycle
//
// The InstantSearch orchestrator drives widgets. It guarantees one Init
// delivery per widget (the first rendering, signaled to the render callback
// with isFirstRender=true) before any update, then one Render per result
// delivery, sequentially and in registration order:
//
//	search := instantsearch.New(doc, vdom.DOM{})
//	search.AddWidgets(box, menu)
//	search.OnStateChange = func(s instantsearch.UiState) {
//	    search.Feed(backend.Search(s))
//	}
//	search.Start()
//
// On its first rendering a widget prepares its template bundle (user
// templates merged over defaults) and produces no DOM output. Every later
// delivery combines the stored bundle with the current results and patches
// the container through the renderer. RenderState models this transition
// explicitly so the invariant does not rest on caller discipline.
//
// # Connectors
//
// Connectors in the connectors package hold the widget behavior without the
// markup: they derive a typed payload (menu items, the current query) from
// each delivery and drive a render callback with it. The bundled widgets
// are thin views over connectors; a custom view binds the same way:
//
//	factory := connectors.ConnectSearchBox(myRender, myDispose)
//	widget, err := factory(connectors.SearchBoxParams{})
//
// # Templates
//
// A template slot accepts either a string (rendered by a templating.Engine,
// pongo2 by default) or a function producing a templ component. User
// templates override defaults slot by slot. String-template output passes
// through a sanitizer before entering the document as raw HTML.
//
// # State persistence
//
// StateToToken and TokenToState serialize the UI state into compact
// URL-safe tokens for shareable search links. Malformed tokens degrade to
// the zero state with an advisory on the Warnf channel, which is also where
// deprecated-option warnings go. Warnf never aborts construction.
package instantsearch
