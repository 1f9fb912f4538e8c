package instantsearch

// RenderState is the per-widget first-render state machine.
//
// It transitions Uninitialized → Ready exactly once, when the connector
// signals the first rendering and the widget stores its prepared template
// props. Every later render reads the stored props. The connector's
// isFirstRender flag remains authoritative; RenderState exists so the
// invariant does not rest on caller discipline alone.
//
// Owned exclusively by one widget's render closure; never shared.
type RenderState struct {
	props TemplateProps
	ready bool
}

// Ready reports whether the first render has happened.
func (s *RenderState) Ready() bool {
	return s.ready
}

// FirstRender stores the prepared template props and moves to Ready.
func (s *RenderState) FirstRender(props TemplateProps) {
	s.props = props
	s.ready = true
}

// Props returns the stored template props. Calling it before FirstRender
// means the connector delivered a non-first render first; that breaks the
// lifecycle contract, so it panics rather than rendering with zero props.
func (s *RenderState) Props() TemplateProps {
	if !s.ready {
		panic("instantsearch: render delivered before first rendering; connector must signal isFirstRender=true once before any update")
	}
	return s.props
}
