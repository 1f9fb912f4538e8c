// Package searchbox provides the search-box widget: a query input with
// optional submit, reset, and loading-indicator affordances.
package searchbox

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	instantsearch "github.com/OriginalSin/instantsearch.js"
	"github.com/OriginalSin/instantsearch.js/connectors"
	"github.com/OriginalSin/instantsearch.js/lib/suit"
	"github.com/OriginalSin/instantsearch.js/lib/templating"
	"github.com/OriginalSin/instantsearch.js/lib/vdom"
)

const widgetName = "search-box"

const usage = `searchbox.New(searchbox.Params{
  Container:  <*vdom.Element or selector string>, // required, must not be an <input>
  Document:   <*vdom.Document>,                   // required with a selector container
  [ Placeholder:          <string> ]
  [ Autofocus:            <bool, default false> ]
  [ SearchAsYouType:      <*bool, default true> ]
  [ ShowReset:            <*bool, default true> ]
  [ ShowSubmit:           <*bool, default true> ]
  [ ShowLoadingIndicator: <*bool, default false> ]
  [ QueryHook:            func(query string, search func(string)) ]
  [ CssClasses:           map[string]string{ "root", "form", "input", "submit", "reset", "loadingIndicator" } ]
  [ Templates:            instantsearch.Templates{ "submit", "reset", "loadingIndicator" } ]
  [ Engine:               templating.Engine, default pongo2 ]
  [ Renderer:             instantsearch.Renderer, default the search instance's ]
})`

// inputHint is the guidance attached to UnsupportedContainerError: the
// widget renders its own form and input, so it cannot live inside one.
const inputHint = "the search-box widget renders its own <input>; use connectors.ConnectSearchBox to bind an existing input element"

var defaultTemplates = instantsearch.Templates{
	"submit":           textTemplate("Search"),
	"reset":            textTemplate("Clear"),
	"loadingIndicator": textTemplate("Loading…"),
}

// textTemplate wraps a fixed string as a function template.
func textTemplate(text string) instantsearch.Template {
	return instantsearch.TemplateFunc(func(map[string]any) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, text)
			return err
		})
	})
}

// Params configures a search-box widget.
type Params struct {
	// Container is the element (or selector) the widget mounts into.
	// Required. An <input> container is rejected.
	Container any

	// Document resolves a selector container.
	Document *vdom.Document

	// Placeholder is the input's placeholder text.
	Placeholder string

	// Autofocus focuses the input on first render.
	Autofocus bool

	// SearchAsYouType searches on every keystroke when true (the default);
	// otherwise only on submit.
	SearchAsYouType *bool

	// ShowReset shows the reset button. Default true.
	ShowReset *bool

	// ShowSubmit shows the submit button. Default true.
	ShowSubmit *bool

	// ShowLoadingIndicator shows an indicator while results are stale.
	// Default false.
	ShowLoadingIndicator *bool

	// SearchOnEnterKeyPressOnly is the old name for SearchAsYouType=false.
	//
	// Deprecated: set SearchAsYouType instead.
	SearchOnEnterKeyPressOnly bool

	// QueryHook intercepts queries before they are searched.
	QueryHook func(query string, search func(string))

	// CssClasses overrides are merged after the generated class per slot.
	CssClasses map[string]string

	// Templates overrides for "submit", "reset" and "loadingIndicator".
	Templates instantsearch.Templates

	// TransformData reshapes slot data before template application.
	TransformData instantsearch.TransformFn

	// Engine renders string templates. Defaults to a pongo2 engine.
	Engine templating.Engine

	// Renderer overrides the search instance's renderer. Mainly for tests.
	Renderer instantsearch.Renderer
}

type cssClasses struct {
	root             string
	form             string
	input            string
	submit           string
	reset            string
	loadingIndicator string
}

// New validates params and returns the live widget.
//
// The container is resolved first; an <input> container is rejected with an
// UnsupportedContainerError before any other validation side effect. All
// other construction failures surface as a ConfigurationError with the
// usage synopsis, including parameter errors raised by the connector.
func New(params Params) (instantsearch.Widget, error) {
	if params.Container == nil {
		return nil, instantsearch.NewConfigurationError(widgetName, "the container option is required", usage)
	}

	container, err := instantsearch.ResolveContainer(params.Document, params.Container)
	if err != nil {
		if instantsearch.IsContainerNotFound(err) {
			return nil, err
		}
		return nil, instantsearch.NewConfigurationError(widgetName, err.Error(), usage)
	}
	if container.Tag == "input" {
		return nil, &instantsearch.UnsupportedContainerError{Tag: "input", Hint: inputHint}
	}

	searchAsYouType := boolOr(params.SearchAsYouType, true)
	if params.SearchOnEnterKeyPressOnly {
		instantsearch.WarnOnce(
			"searchbox.SearchOnEnterKeyPressOnly",
			"search-box: SearchOnEnterKeyPressOnly is deprecated, set SearchAsYouType instead",
		)
		searchAsYouType = false
	}
	showReset := boolOr(params.ShowReset, true)
	showSubmit := boolOr(params.ShowSubmit, true)
	showLoading := boolOr(params.ShowLoadingIndicator, false)

	classes := cssClasses{
		root:             suit.Merge(suit.Class("SearchBox"), params.CssClasses["root"]),
		form:             suit.Merge(suit.Class("SearchBox", suit.WithDescendant("form")), params.CssClasses["form"]),
		input:            suit.Merge(suit.Class("SearchBox", suit.WithDescendant("input")), params.CssClasses["input"]),
		submit:           suit.Merge(suit.Class("SearchBox", suit.WithDescendant("submit")), params.CssClasses["submit"]),
		reset:            suit.Merge(suit.Class("SearchBox", suit.WithDescendant("reset")), params.CssClasses["reset"]),
		loadingIndicator: suit.Merge(suit.Class("SearchBox", suit.WithDescendant("loadingIndicator")), params.CssClasses["loadingIndicator"]),
	}

	engine := params.Engine
	if engine == nil {
		engine = templating.NewPongo2Engine()
	}

	display := displayFlags{
		placeholder:     params.Placeholder,
		autofocus:       params.Autofocus,
		searchAsYouType: searchAsYouType,
		showReset:       showReset,
		showSubmit:      showSubmit,
		showLoading:     showLoading,
	}

	state := &instantsearch.RenderState{}
	renderFn := func(opts connectors.SearchBoxRenderOptions, isFirstRender bool) {
		if isFirstRender {
			state.FirstRender(instantsearch.PrepareTemplates(params.TransformData, defaultTemplates, params.Templates))
			return
		}

		renderer := params.Renderer
		if renderer == nil && opts.Instance != nil {
			renderer = opts.Instance.Renderer()
		}
		node, err := view(opts, state.Props(), classes, display, engine)
		if err != nil {
			panic(fmt.Sprintf("instantsearch: %s render failed: %v", widgetName, err))
		}
		renderer.Render(node, container)
	}

	widget, err := connectors.ConnectSearchBox(renderFn, disposer(container))(connectors.SearchBoxParams{
		QueryHook: params.QueryHook,
	})
	if err != nil {
		return nil, instantsearch.NewConfigurationError(widgetName, err.Error(), usage)
	}
	return widget, nil
}

// disposer returns the teardown for a container: all rendered content is
// cleared, the node itself stays attached to its parent.
func disposer(container *vdom.Element) func() {
	return func() {
		container.Clear()
	}
}

type displayFlags struct {
	placeholder     string
	autofocus       bool
	searchAsYouType bool
	showReset       bool
	showSubmit      bool
	showLoading     bool
}

// view builds the widget subtree for one delivery.
func view(opts connectors.SearchBoxRenderOptions, props instantsearch.TemplateProps, classes cssClasses, display displayFlags, engine templating.Engine) (*vdom.VNode, error) {
	inputAttrs := map[string]string{
		"class":       classes.input,
		"type":        "search",
		"value":       opts.Query,
		"placeholder": display.placeholder,
	}
	if display.autofocus {
		inputAttrs["autofocus"] = "autofocus"
	}
	input := vdom.El("input", inputAttrs)
	if display.searchAsYouType {
		input.WithHandler("input", opts.Refine)
	}

	children := []*vdom.VNode{input}

	if display.showSubmit {
		content, err := props.Render(engine, "submit", nil)
		if err != nil {
			return nil, err
		}
		children = append(children, vdom.El("button", map[string]string{
			"class": classes.submit,
			"type":  "submit",
			"title": "Submit the search query",
		}, content))
	}

	if display.showReset {
		content, err := props.Render(engine, "reset", nil)
		if err != nil {
			return nil, err
		}
		resetAttrs := map[string]string{
			"class": classes.reset,
			"type":  "reset",
			"title": "Clear the search query",
		}
		if opts.Query == "" {
			resetAttrs["hidden"] = "hidden"
		}
		children = append(children, vdom.El("button", resetAttrs, content).
			WithHandler("click", func(string) { opts.Clear() }))
	}

	if display.showLoading && opts.IsSearchStalled {
		content, err := props.Render(engine, "loadingIndicator", nil)
		if err != nil {
			return nil, err
		}
		children = append(children, vdom.El("span", map[string]string{
			"class": classes.loadingIndicator,
		}, content))
	}

	form := vdom.El("form", map[string]string{
		"class":      classes.form,
		"role":       "search",
		"novalidate": "novalidate",
	}, children...).WithHandler("submit", opts.Refine)

	return vdom.El("div", map[string]string{"class": classes.root}, form), nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
