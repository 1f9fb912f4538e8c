// Command example wires a search box and a menu-select facet filter to an
// in-memory product catalog and walks through a short search session,
// printing the rendered markup after each step.
package main

import (
	"fmt"
	"strings"

	instantsearch "github.com/OriginalSin/instantsearch.js"
	"github.com/OriginalSin/instantsearch.js/lib/vdom"
	"github.com/OriginalSin/instantsearch.js/widgets/menuselect"
	"github.com/OriginalSin/instantsearch.js/widgets/searchbox"
)

type product struct {
	Name  string
	Brand string
}

var catalog = []product{
	{"Air Zoom Runner", "nike"},
	{"Pegasus Trail", "nike"},
	{"Ultraboost Light", "adidas"},
	{"Gazelle", "adidas"},
	{"Suede Classic", "puma"},
}

// search filters the catalog by query and brand refinement and derives
// facet counts, standing in for a real search backend.
func search(state instantsearch.UiState) *instantsearch.SearchResults {
	results := &instantsearch.SearchResults{
		Query:  state.Query,
		Facets: map[string]map[string]int{"brand": {}},
	}
	for _, p := range catalog {
		if state.Query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(state.Query)) {
			continue
		}
		results.Facets["brand"][p.Brand]++
		if len(state.Refinements["brand"]) > 0 && !state.IsRefined("brand", p.Brand) {
			continue
		}
		results.Hits = append(results.Hits, instantsearch.Hit{
			ID:     p.Name,
			Fields: map[string]any{"name": p.Name, "brand": p.Brand},
		})
	}
	results.NbHits = len(results.Hits)
	return results
}

func main() {
	doc := vdom.NewDocument()
	for _, id := range []string{"searchbox", "brand-filter"} {
		el := doc.CreateElement("div")
		el.SetAttr("id", id)
		doc.Body.AppendChild(el)
	}

	box, err := searchbox.New(searchbox.Params{
		Container:   "#searchbox",
		Document:    doc,
		Placeholder: "Search products",
	})
	if err != nil {
		panic(err)
	}

	menu, err := menuselect.New(menuselect.Params{
		Container: "#brand-filter",
		Document:  doc,
		Attribute: "brand",
	})
	if err != nil {
		panic(err)
	}

	is := instantsearch.New(doc, vdom.DOM{})
	is.OnStateChange = func(state instantsearch.UiState) {
		is.Feed(search(state))
	}
	if err := is.AddWidgets(box, menu); err != nil {
		panic(err)
	}

	is.Start()
	is.Feed(search(is.State()))
	show(doc, "initial render")

	doc.QuerySelector("input").Dispatch("input", "zoom")
	show(doc, `typed "zoom"`)

	doc.QuerySelector("select").Dispatch("change", "nike")
	show(doc, "refined brand=nike")

	token, err := instantsearch.StateToToken(is.State())
	if err != nil {
		panic(err)
	}
	fmt.Printf("shareable state token: %s\n", token)
	fmt.Printf("restored query: %q\n", instantsearch.TokenToState(token).Query)
}

func show(doc *vdom.Document, step string) {
	fmt.Printf("--- %s ---\n%s\n\n", step, doc.Body.HTML())
}
