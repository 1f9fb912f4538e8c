package instantsearch

import "github.com/OriginalSin/instantsearch.js/lib/vdom"

// RenderCall records one call into a RecordingRenderer.
type RenderCall struct {
	Node      *vdom.VNode
	Container *vdom.Element
}

// RecordingRenderer is a Renderer test double that records every call
// instead of touching a document.
//
// Use it to assert the first-render contract: construction and first
// rendering must not call into the renderer, and each subsequent delivery
// must call it exactly once.
//
//	rec := &instantsearch.RecordingRenderer{}
//	search := instantsearch.New(doc, rec)
//	...
//	if rec.Count() != 1 {
//	    t.Fatalf("expected one render, got %d", rec.Count())
//	}
type RecordingRenderer struct {
	Calls []RenderCall
}

// Render records the call.
func (r *RecordingRenderer) Render(n *vdom.VNode, container *vdom.Element) {
	r.Calls = append(r.Calls, RenderCall{Node: n, Container: container})
}

// Count returns the number of recorded calls.
func (r *RecordingRenderer) Count() int {
	return len(r.Calls)
}

// Last returns the most recent call, or nil when none happened.
func (r *RecordingRenderer) Last() *RenderCall {
	if len(r.Calls) == 0 {
		return nil
	}
	return &r.Calls[len(r.Calls)-1]
}

// Reset forgets all recorded calls.
func (r *RecordingRenderer) Reset() {
	r.Calls = nil
}

// NewTestDocument returns a document whose body holds a single
// <div id="container"> ready to mount a widget into, plus that element.
func NewTestDocument() (*vdom.Document, *vdom.Element) {
	doc := vdom.NewDocument()
	container := doc.CreateElement("div")
	container.SetAttr("id", "container")
	doc.Body.AppendChild(container)
	return doc, container
}
