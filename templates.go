package instantsearch

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"

	"github.com/OriginalSin/instantsearch.js/lib/templating"
	"github.com/OriginalSin/instantsearch.js/lib/vdom"
)

// TransformFn reshapes slot data before template application. It must be
// pure; the same input always reaches the template the same way.
type TransformFn func(data map[string]any) map[string]any

// Template is one slot's template: either a string rendered by the engine
// or a function producing a templ component. Both are opaque to this layer;
// no content validation happens before render time.
type Template struct {
	str   string
	isStr bool
	fn    func(data map[string]any) templ.Component
}

// TemplateString wraps an engine-rendered template source.
func TemplateString(s string) Template {
	return Template{str: s, isStr: true}
}

// TemplateFunc wraps a function template.
func TemplateFunc(fn func(data map[string]any) templ.Component) Template {
	return Template{fn: fn}
}

// IsZero reports whether no template was supplied for a slot.
func (t Template) IsZero() bool {
	return !t.isStr && t.fn == nil
}

// Templates maps logical slot names (item, seeAllOption, submit, ...) to
// templates.
type Templates map[string]Template

// TemplateProps is the prepared template bundle a widget builds on its
// first render and reuses for its whole lifetime.
type TemplateProps struct {
	// Templates holds the resolved template per slot: the user value where
	// one was supplied, the default otherwise.
	Templates Templates

	// Defaults keeps the widget's default set for reference.
	Defaults Templates

	// UseCustom marks the slots where the user value won.
	UseCustom map[string]bool

	// Transform reshapes slot data before template application.
	Transform TransformFn
}

// PrepareTemplates merges user templates over defaults, slot by slot.
// Slots absent from the user set fall back to the default. Pure aside from
// allocating the returned bundle.
func PrepareTemplates(transform TransformFn, defaults, user Templates) TemplateProps {
	resolved := make(Templates, len(defaults)+len(user))
	useCustom := make(map[string]bool, len(user))

	for slot, tmpl := range defaults {
		resolved[slot] = tmpl
	}
	for slot, tmpl := range user {
		if tmpl.IsZero() {
			continue
		}
		resolved[slot] = tmpl
		useCustom[slot] = true
	}

	return TemplateProps{
		Templates: resolved,
		Defaults:  defaults,
		UseCustom: useCustom,
		Transform: transform,
	}
}

// Render applies the resolved template for slot to data and returns a raw
// content node. A slot with no template resolves to nil. Engine and
// function-template failures propagate unwrapped; the core defines no
// recovery for render-time errors.
func (p TemplateProps) Render(engine templating.Engine, slot string, data map[string]any) (*vdom.VNode, error) {
	tmpl, ok := p.Templates[slot]
	if !ok || tmpl.IsZero() {
		return nil, nil
	}

	if p.Transform != nil {
		data = p.Transform(data)
	}

	if tmpl.isStr {
		if engine == nil {
			return nil, fmt.Errorf("instantsearch: slot %q is a string template but no engine was supplied", slot)
		}
		out, err := engine.Render(tmpl.str, data)
		if err != nil {
			return nil, err
		}
		return vdom.Raw(out), nil
	}

	var buf bytes.Buffer
	if err := tmpl.fn(data).Render(context.Background(), &buf); err != nil {
		return nil, err
	}
	return vdom.Raw(buf.String()), nil
}
