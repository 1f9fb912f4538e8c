// Package menuselect provides the menu-select widget: a facet filter
// rendered as a <select> element, one option per facet value plus a
// "see all" option that clears the refinement.
package menuselect

import (
	"fmt"

	instantsearch "github.com/OriginalSin/instantsearch.js"
	"github.com/OriginalSin/instantsearch.js/connectors"
	"github.com/OriginalSin/instantsearch.js/lib/suit"
	"github.com/OriginalSin/instantsearch.js/lib/templating"
	"github.com/OriginalSin/instantsearch.js/lib/vdom"
)

const widgetName = "menu-select"

const usage = `menuselect.New(menuselect.Params{
  Container:  <*vdom.Element or selector string>, // required
  Attribute:  "<facet attribute>",                // required
  Document:   <*vdom.Document>,                   // required with a selector container
  [ Limit:          <int, default 10> ]
  [ SortBy:         func(a, b connectors.MenuItem) bool ]
  [ TransformItems: func([]connectors.MenuItem) []connectors.MenuItem ]
  [ TransformData:  instantsearch.TransformFn ]
  [ CssClasses:     map[string]string{ "root", "select", "option" } ]
  [ Templates:      instantsearch.Templates{ "item", "seeAllOption" } ]
  [ Engine:         templating.Engine, default pongo2 ]
  [ Renderer:       instantsearch.Renderer, default the search instance's ]
})`

// defaultTemplates render an item as "label (count)" and the clearing
// option as "See all".
var defaultTemplates = instantsearch.Templates{
	"item":         instantsearch.TemplateString("{{ label }} ({{ count }})"),
	"seeAllOption": instantsearch.TemplateString("See all"),
}

// Params configures a menu-select widget.
type Params struct {
	// Container is the element (or selector) the widget mounts into.
	// Required.
	Container any

	// Attribute is the facet attribute to refine on. Required.
	Attribute string

	// Document resolves a selector container. Ignored when Container is a
	// live element.
	Document *vdom.Document

	// Limit caps the number of options. Defaults to 10.
	Limit int

	// SortBy orders items before the limit applies.
	SortBy func(a, b connectors.MenuItem) bool

	// TransformItems reshapes the final item list.
	TransformItems func(items []connectors.MenuItem) []connectors.MenuItem

	// TransformData reshapes slot data before template application.
	TransformData instantsearch.TransformFn

	// CssClasses overrides are merged after the generated class per slot.
	CssClasses map[string]string

	// Templates overrides for the "item" and "seeAllOption" slots.
	Templates instantsearch.Templates

	// Engine renders string templates. Defaults to a pongo2 engine.
	Engine templating.Engine

	// Renderer overrides the search instance's renderer. Mainly for tests.
	Renderer instantsearch.Renderer
}

type cssClasses struct {
	root     string
	selectEl string
	option   string
}

// New validates params and returns the live widget.
//
// Construction is the widget's single error surface: missing required
// options and connector-level parameter failures both come back as a
// ConfigurationError carrying the usage synopsis above. A selector that
// matches nothing is a ContainerNotFoundError. No DOM is touched until the
// search delivers results.
func New(params Params) (instantsearch.Widget, error) {
	if params.Container == nil {
		return nil, instantsearch.NewConfigurationError(widgetName, "the container option is required", usage)
	}
	if params.Attribute == "" {
		return nil, instantsearch.NewConfigurationError(widgetName, "the attribute option is required", usage)
	}

	container, err := instantsearch.ResolveContainer(params.Document, params.Container)
	if err != nil {
		if instantsearch.IsContainerNotFound(err) {
			return nil, err
		}
		return nil, instantsearch.NewConfigurationError(widgetName, err.Error(), usage)
	}

	classes := cssClasses{
		root:     suit.Merge(suit.Class("MenuSelect"), params.CssClasses["root"]),
		selectEl: suit.Merge(suit.Class("MenuSelect", suit.WithDescendant("select")), params.CssClasses["select"]),
		option:   suit.Merge(suit.Class("MenuSelect", suit.WithDescendant("option")), params.CssClasses["option"]),
	}

	engine := params.Engine
	if engine == nil {
		engine = templating.NewPongo2Engine()
	}

	state := &instantsearch.RenderState{}
	renderFn := func(opts connectors.MenuRenderOptions, isFirstRender bool) {
		if isFirstRender {
			state.FirstRender(instantsearch.PrepareTemplates(params.TransformData, defaultTemplates, params.Templates))
			return
		}

		renderer := params.Renderer
		if renderer == nil && opts.Instance != nil {
			renderer = opts.Instance.Renderer()
		}
		node, err := view(opts, state.Props(), classes, engine)
		if err != nil {
			// Render-time failures are not recovered at this layer.
			panic(fmt.Sprintf("instantsearch: %s render failed: %v", widgetName, err))
		}
		renderer.Render(node, container)
	}

	widget, err := connectors.ConnectMenu(renderFn, nil)(connectors.MenuParams{
		Attribute:      params.Attribute,
		Limit:          params.Limit,
		SortBy:         params.SortBy,
		TransformItems: params.TransformItems,
	})
	if err != nil {
		// Single error surface: deeper validation failures read the same
		// as factory-level ones.
		return nil, instantsearch.NewConfigurationError(widgetName, err.Error(), usage)
	}
	return widget, nil
}

// view builds the widget subtree for one delivery.
func view(opts connectors.MenuRenderOptions, props instantsearch.TemplateProps, classes cssClasses, engine templating.Engine) (*vdom.VNode, error) {
	options := make([]*vdom.VNode, 0, len(opts.Items)+1)

	seeAll, err := props.Render(engine, "seeAllOption", nil)
	if err != nil {
		return nil, err
	}
	options = append(options, vdom.El("option", map[string]string{
		"class": classes.option,
		"value": "",
	}, seeAll))

	for _, item := range opts.Items {
		content, err := props.Render(engine, "item", map[string]any{
			"value":     item.Value,
			"label":     item.Label,
			"count":     item.Count,
			"isRefined": item.IsRefined,
		})
		if err != nil {
			return nil, err
		}
		attrs := map[string]string{
			"class": classes.option,
			"value": item.Value,
		}
		if item.IsRefined {
			attrs["selected"] = "selected"
		}
		options = append(options, vdom.El("option", attrs, content))
	}

	selectAttrs := map[string]string{"class": classes.selectEl}
	if !opts.CanRefine {
		selectAttrs["disabled"] = "disabled"
	}
	selectEl := vdom.El("select", selectAttrs, options...).
		WithHandler("change", func(value string) { opts.Refine(value) })

	return vdom.El("div", map[string]string{"class": classes.root}, selectEl), nil
}
