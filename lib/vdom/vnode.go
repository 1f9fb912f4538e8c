// Package vdom provides the virtual node model widgets render into and a
// minimal in-memory document for hosting them.
//
// The package is host-agnostic: widgets describe output as a VNode tree and
// hand it to a renderer together with a container Element. The bundled DOM
// renderer patches the container in place; alternative renderers (a browser
// bridge, a recording test double) only need to satisfy the same shape.
package vdom

import "github.com/microcosm-cc/bluemonday"

// rawPolicy sanitizes user-template output before it is stored as raw HTML.
// UGC policy: formatting and links survive, scripts and event attributes
// do not.
var rawPolicy = bluemonday.UGCPolicy()

// Handler receives the event payload (input value, selected option value).
type Handler func(value string)

// VNode describes one node of widget output.
//
// A node is either an element (Tag set) or content (Text or RawHTML set).
// Raw content has already been sanitized by the Raw constructor.
type VNode struct {
	Tag      string
	Attrs    map[string]string
	Children []*VNode
	Text     string
	RawHTML  string
	On       map[string]Handler
}

// El creates an element node.
func El(tag string, attrs map[string]string, children ...*VNode) *VNode {
	return &VNode{Tag: tag, Attrs: attrs, Children: children}
}

// TextNode creates a plain text node. Text is escaped on serialization.
func TextNode(text string) *VNode {
	return &VNode{Text: text}
}

// Raw creates a raw HTML content node from template output.
// The markup is sanitized here, not at render time, so a VNode holding
// raw content is always safe to realize.
func Raw(html string) *VNode {
	return &VNode{RawHTML: rawPolicy.Sanitize(html)}
}

// WithHandler attaches an event handler and returns the node for chaining.
func (n *VNode) WithHandler(event string, h Handler) *VNode {
	if n.On == nil {
		n.On = make(map[string]Handler)
	}
	n.On[event] = h
	return n
}
