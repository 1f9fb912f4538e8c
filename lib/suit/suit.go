// Package suit builds CSS class names following the SUIT CSS naming
// convention with the "ais" namespace shared by every widget.
//
// The builder is a pure function of its inputs: the same component name and
// option combination always yields the same token. Widgets combine the
// generated token with user-supplied overrides via Merge.
package suit

import "strings"

// namespace prefixes every generated class token.
const namespace = "ais"

// Option refines the generated class token.
type Option func(*config)

type config struct {
	descendant string
	modifier   string
}

// WithDescendant targets a child element of the component,
// e.g. "input" in "ais-SearchBox-input".
func WithDescendant(name string) Option {
	return func(c *config) {
		c.descendant = name
	}
}

// WithModifier marks a state or variant of the component or descendant,
// e.g. "selected" in "ais-MenuSelect-option--selected".
func WithModifier(name string) Option {
	return func(c *config) {
		c.modifier = name
	}
}

// Class returns the SUIT class token for a component.
//
//	Class("SearchBox")                                    // "ais-SearchBox"
//	Class("SearchBox", WithDescendant("input"))           // "ais-SearchBox-input"
//	Class("MenuSelect", WithModifier("noRefinement"))     // "ais-MenuSelect--noRefinement"
//	Class("MenuSelect",
//	    WithDescendant("option"), WithModifier("selected")) // "ais-MenuSelect-option--selected"
func Class(component string, opts ...Option) string {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	var b strings.Builder
	b.WriteString(namespace)
	b.WriteByte('-')
	b.WriteString(component)
	if c.descendant != "" {
		b.WriteByte('-')
		b.WriteString(c.descendant)
	}
	if c.modifier != "" {
		b.WriteString("--")
		b.WriteString(c.modifier)
	}
	return b.String()
}

// Merge joins class tokens with single spaces, skipping empty entries.
//
// Duplicates are preserved: the convention is whitespace joining, not set
// union, so a user override equal to the generated token appears twice.
func Merge(classes ...string) string {
	parts := make([]string, 0, len(classes))
	for _, cl := range classes {
		if cl == "" {
			continue
		}
		parts = append(parts, cl)
	}
	return strings.Join(parts, " ")
}
