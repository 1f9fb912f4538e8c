package instantsearch

import (
	"sync"

	"github.com/OriginalSin/instantsearch.js/lib/vdom"
)

// InstantSearch orchestrates widgets over the life of a search session.
//
// It owns the canonical UiState, registers widgets, and drives their
// lifecycle: one Init per widget before any update, then one Render per
// result delivery, in registration order. Deliveries are sequential - a
// widget never observes two lifecycle calls at once.
//
// The orchestrator performs no searching itself. Refinements made through
// the Helper fire OnStateChange; the host runs the actual query against its
// backend and pushes results back with Feed.
type InstantSearch struct {
	mu       sync.Mutex
	doc      *vdom.Document
	renderer Renderer
	helper   *Helper
	widgets  []Widget
	started  bool
	state    UiState
	results  *SearchResults

	// OnStateChange is called after every refinement with a snapshot of the
	// new state. The host reacts by searching and calling Feed.
	OnStateChange func(UiState)
}

// New creates an orchestrator over a document and a renderer.
func New(doc *vdom.Document, renderer Renderer) *InstantSearch {
	is := &InstantSearch{
		doc:      doc,
		renderer: renderer,
		state:    UiState{Refinements: make(map[string][]string)},
	}
	is.helper = &Helper{is: is}
	return is
}

// Document returns the document widgets resolve containers against.
func (is *InstantSearch) Document() *vdom.Document {
	return is.doc
}

// Renderer returns the renderer widgets patch their containers with.
func (is *InstantSearch) Renderer() Renderer {
	return is.renderer
}

// Helper returns the refine surface handed to widgets.
func (is *InstantSearch) Helper() *Helper {
	return is.helper
}

// State returns a snapshot of the current UI state.
func (is *InstantSearch) State() UiState {
	is.mu.Lock()
	defer is.mu.Unlock()
	return is.state.clone()
}

// SetState replaces the UI state wholesale, e.g. when restoring from a
// routing token. Does not trigger a render; call Feed once results for the
// restored state arrive.
func (is *InstantSearch) SetState(s UiState) {
	is.mu.Lock()
	defer is.mu.Unlock()
	if s.Refinements == nil {
		s.Refinements = make(map[string][]string)
	}
	is.state = s.clone()
}

// AddWidgets registers widgets. Registering the same instance twice is an
// error. Widgets added after Start are initialized immediately and, when
// results are already present, rendered once.
func (is *InstantSearch) AddWidgets(ws ...Widget) error {
	is.mu.Lock()
	defer is.mu.Unlock()

	for _, w := range ws {
		for _, existing := range is.widgets {
			if existing == w {
				return NewConfigurationError("instantsearch", "widget added twice", "each widget instance may be added to one search, once")
			}
		}
		is.widgets = append(is.widgets, w)
		if is.started {
			w.Init(is.initOptionsLocked())
			if is.results != nil {
				w.Render(is.renderOptionsLocked())
			}
		}
	}
	return nil
}

// RemoveWidgets unregisters widgets and disposes each removed one.
// Unknown widgets are ignored.
func (is *InstantSearch) RemoveWidgets(ws ...Widget) {
	is.mu.Lock()
	defer is.mu.Unlock()

	for _, w := range ws {
		for i, existing := range is.widgets {
			if existing == w {
				is.widgets = append(is.widgets[:i], is.widgets[i+1:]...)
				w.Dispose()
				break
			}
		}
	}
}

// Start delivers the first rendering to every registered widget. Calling
// Start twice is a no-op.
func (is *InstantSearch) Start() {
	is.mu.Lock()
	defer is.mu.Unlock()

	if is.started {
		return
	}
	is.started = true
	for _, w := range is.widgets {
		w.Init(is.initOptionsLocked())
	}
	if is.results != nil {
		for _, w := range is.widgets {
			w.Render(is.renderOptionsLocked())
		}
	}
}

// Feed pushes a result delivery from the host's backend and renders every
// widget with it. Before Start, results are held and delivered on Start.
func (is *InstantSearch) Feed(results *SearchResults) {
	is.mu.Lock()
	defer is.mu.Unlock()

	is.results = results
	if !is.started {
		return
	}
	for _, w := range is.widgets {
		w.Render(is.renderOptionsLocked())
	}
}

// Dispose removes and disposes all widgets.
func (is *InstantSearch) Dispose() {
	is.mu.Lock()
	ws := is.widgets
	is.widgets = nil
	is.mu.Unlock()

	for _, w := range ws {
		w.Dispose()
	}
}

func (is *InstantSearch) initOptionsLocked() InitOptions {
	return InitOptions{
		State:    is.state.clone(),
		Helper:   is.helper,
		Instance: is,
	}
}

func (is *InstantSearch) renderOptionsLocked() RenderOptions {
	return RenderOptions{
		Results:       is.results,
		State:         is.state.clone(),
		Helper:        is.helper,
		SearchStalled: is.results != nil && is.results.Processing,
		Instance:      is,
	}
}

// Helper is the refine surface widgets use to express search intent.
// Mutators return the helper for chaining; nothing is sent to the host
// until Search is called:
//
//	helper.SetQuery("shoes").Search()
//	helper.ToggleFacetRefinement("brand", "nike").Search()
type Helper struct {
	is *InstantSearch
}

// SetQuery replaces the query string and resets the page.
func (h *Helper) SetQuery(query string) *Helper {
	h.is.mu.Lock()
	h.is.state.Query = query
	h.is.state.Page = 0
	h.is.mu.Unlock()
	return h
}

// ToggleFacetRefinement adds the value to the attribute's refinements, or
// removes it when already refined. The page resets either way.
func (h *Helper) ToggleFacetRefinement(attribute, value string) *Helper {
	h.is.mu.Lock()
	values := h.is.state.Refinements[attribute]
	removed := false
	for i, v := range values {
		if v == value {
			values = append(values[:i], values[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		values = append(values, value)
	}
	if len(values) == 0 {
		delete(h.is.state.Refinements, attribute)
	} else {
		h.is.state.Refinements[attribute] = values
	}
	h.is.state.Page = 0
	h.is.mu.Unlock()
	return h
}

// ClearRefinements drops refinements for the given attributes, or for all
// attributes when none are given.
func (h *Helper) ClearRefinements(attributes ...string) *Helper {
	h.is.mu.Lock()
	if len(attributes) == 0 {
		h.is.state.Refinements = make(map[string][]string)
	} else {
		for _, attr := range attributes {
			delete(h.is.state.Refinements, attr)
		}
	}
	h.is.state.Page = 0
	h.is.mu.Unlock()
	return h
}

// Search notifies the host of the current state. The host is expected to
// run the query and deliver results via Feed.
func (h *Helper) Search() {
	h.is.mu.Lock()
	hook := h.is.OnStateChange
	snapshot := h.is.state.clone()
	h.is.mu.Unlock()

	if hook != nil {
		hook(snapshot)
	}
}
