package vdom

import (
	"html"
	"sort"
	"strings"
)

// Element is a live node in the in-memory document.
//
// Content nodes have an empty Tag and carry Text (escaped on serialization
// unless raw, in which case the text is pre-sanitized HTML).
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
	Parent   *Element
	Text     string

	raw      bool
	handlers map[string]Handler
}

// Document owns a tree of elements rooted at a body element.
type Document struct {
	Body *Element
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	return &Document{Body: &Element{Tag: "body"}}
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{Tag: tag}
}

// QuerySelector returns the first element matching the selector, or nil.
// Supported selectors: "#id", ".class", and bare tag names. Matching is
// depth-first from the body.
func (d *Document) QuerySelector(selector string) *Element {
	if selector == "" {
		return nil
	}
	var match func(*Element) bool
	switch {
	case strings.HasPrefix(selector, "#"):
		id := selector[1:]
		match = func(e *Element) bool { return e.Attrs["id"] == id }
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		match = func(e *Element) bool {
			for _, c := range strings.Fields(e.Attrs["class"]) {
				if c == class {
					return true
				}
			}
			return false
		}
	default:
		match = func(e *Element) bool { return e.Tag == selector }
	}
	return d.Body.find(match)
}

func (e *Element) find(match func(*Element) bool) *Element {
	if e.Tag != "" && match(e) {
		return e
	}
	for _, child := range e.Children {
		if found := child.find(match); found != nil {
			return found
		}
	}
	return nil
}

// SetAttr sets an attribute value.
func (e *Element) SetAttr(key, value string) {
	if e.Attrs == nil {
		e.Attrs = make(map[string]string)
	}
	e.Attrs[key] = value
}

// Attr returns an attribute value, or "" when absent.
func (e *Element) Attr(key string) string {
	return e.Attrs[key]
}

// AppendChild attaches a child element.
func (e *Element) AppendChild(child *Element) {
	child.Parent = e
	e.Children = append(e.Children, child)
}

// Clear removes all content from the element. The element itself stays
// attached to its parent.
func (e *Element) Clear() {
	for _, child := range e.Children {
		child.Parent = nil
	}
	e.Children = nil
	e.Text = ""
	e.handlers = nil
}

// Dispatch fires the named event handler with the given payload.
// Returns false when no handler is attached.
func (e *Element) Dispatch(event, value string) bool {
	h, ok := e.handlers[event]
	if !ok {
		return false
	}
	h(value)
	return true
}

// HTML serializes the element subtree. Attributes are emitted in sorted
// order so output is deterministic.
func (e *Element) HTML() string {
	var b strings.Builder
	e.writeHTML(&b)
	return b.String()
}

func (e *Element) writeHTML(b *strings.Builder) {
	if e.Tag == "" {
		if e.raw {
			b.WriteString(e.Text)
		} else {
			b.WriteString(html.EscapeString(e.Text))
		}
		return
	}

	b.WriteByte('<')
	b.WriteString(e.Tag)
	keys := make([]string, 0, len(e.Attrs))
	for k := range e.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(e.Attrs[k]))
		b.WriteByte('"')
	}

	if len(e.Children) == 0 && e.Text == "" {
		b.WriteString("/>")
		return
	}

	b.WriteByte('>')
	if e.Text != "" {
		b.WriteString(html.EscapeString(e.Text))
	}
	for _, child := range e.Children {
		child.writeHTML(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}
