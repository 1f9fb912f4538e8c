// Package templating renders string templates for widget slots.
//
// The core treats string templates as opaque: it hands them to an Engine
// together with slot data and uses whatever comes back. The default engine
// is backed by pongo2, whose {{ variable }} syntax matches the template
// strings the widgets document.
package templating

import (
	"sync"

	"github.com/flosch/pongo2/v6"
)

// Engine renders a template source against slot data.
type Engine interface {
	Render(tmpl string, data map[string]any) (string, error)
}

// Pongo2Engine is the default Engine. Compiled templates are cached by
// source string, so repeated renders of the same slot skip parsing.
type Pongo2Engine struct {
	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

// NewPongo2Engine creates an engine with an empty template cache.
func NewPongo2Engine() *Pongo2Engine {
	return &Pongo2Engine{cache: make(map[string]*pongo2.Template)}
}

// Render compiles tmpl (or reuses a cached compilation) and executes it
// with data as the template context.
func (e *Pongo2Engine) Render(tmpl string, data map[string]any) (string, error) {
	t, err := e.compiled(tmpl)
	if err != nil {
		return "", err
	}
	return t.Execute(pongo2.Context(data))
}

func (e *Pongo2Engine) compiled(tmpl string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if t, ok := e.cache[tmpl]; ok {
		return t, nil
	}
	t, err := pongo2.FromString(tmpl)
	if err != nil {
		return nil, err
	}
	e.cache[tmpl] = t
	return t, nil
}
