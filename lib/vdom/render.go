package vdom

// DOM renders virtual nodes into the in-memory document.
//
// Render replaces the container's content with the realized tree on every
// call: patching is idempotent given the same VNode description, and the
// container element itself is never detached from its parent.
type DOM struct{}

// Render realizes n and patches container in place. A nil node clears the
// container.
func (DOM) Render(n *VNode, container *Element) {
	container.Clear()
	if n == nil {
		return
	}
	container.AppendChild(realize(n))
}

func realize(n *VNode) *Element {
	if n.Tag == "" {
		return &Element{Text: firstNonEmpty(n.RawHTML, n.Text), raw: n.RawHTML != ""}
	}

	el := &Element{Tag: n.Tag}
	for k, v := range n.Attrs {
		el.SetAttr(k, v)
	}
	for event, h := range n.On {
		if el.handlers == nil {
			el.handlers = make(map[string]Handler)
		}
		el.handlers[event] = h
	}
	for _, child := range n.Children {
		el.AppendChild(realize(child))
	}
	return el
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
