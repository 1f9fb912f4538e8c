package connectors

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	instantsearch "github.com/OriginalSin/instantsearch.js"
	"github.com/OriginalSin/instantsearch.js/lib/vdom"
)

func newSearchBoxHarness(t *testing.T, params SearchBoxParams) (*instantsearch.InstantSearch, *[]SearchBoxRenderOptions, *[]bool) {
	t.Helper()

	var payloads []SearchBoxRenderOptions
	var flags []bool
	factory := ConnectSearchBox(func(opts SearchBoxRenderOptions, isFirstRender bool) {
		payloads = append(payloads, opts)
		flags = append(flags, isFirstRender)
	}, nil)

	widget, err := factory(params)
	if err != nil {
		t.Fatalf("factory error = %v", err)
	}

	is := instantsearch.New(vdom.NewDocument(), &instantsearch.RecordingRenderer{})
	if err := is.AddWidgets(widget); err != nil {
		t.Fatal(err)
	}
	return is, &payloads, &flags
}

func TestConnectSearchBoxFirstRenderFlag(t *testing.T) {
	is, _, flags := newSearchBoxHarness(t, SearchBoxParams{})

	is.Start()
	is.Feed(&instantsearch.SearchResults{})

	if diff := cmp.Diff([]bool{true, false}, *flags); diff != "" {
		t.Errorf("isFirstRender sequence (-want +got):\n%s", diff)
	}
}

func TestConnectSearchBoxPayloadCarriesQueryAndStaleness(t *testing.T) {
	is, payloads, _ := newSearchBoxHarness(t, SearchBoxParams{})
	is.Helper().SetQuery("shoes")

	is.Start()
	is.Feed(&instantsearch.SearchResults{Processing: true})

	got := (*payloads)[len(*payloads)-1]
	if got.Query != "shoes" {
		t.Errorf("Query = %q, want %q", got.Query, "shoes")
	}
	if !got.IsSearchStalled {
		t.Error("Processing results should mark the search stalled")
	}
}

func TestConnectSearchBoxRefine(t *testing.T) {
	is, payloads, _ := newSearchBoxHarness(t, SearchBoxParams{})
	var searches []string
	is.OnStateChange = func(s instantsearch.UiState) { searches = append(searches, s.Query) }

	is.Start()
	(*payloads)[0].Refine("sneakers")

	if got := is.State().Query; got != "sneakers" {
		t.Errorf("Query = %q, want %q", got, "sneakers")
	}
	if diff := cmp.Diff([]string{"sneakers"}, searches); diff != "" {
		t.Errorf("searches (-want +got):\n%s", diff)
	}
}

func TestConnectSearchBoxQueryHook(t *testing.T) {
	var hooked []string
	params := SearchBoxParams{
		QueryHook: func(query string, search func(string)) {
			hooked = append(hooked, query)
			search(query + "!")
		},
	}
	is, payloads, _ := newSearchBoxHarness(t, params)

	is.Start()
	(*payloads)[0].Refine("raw")

	if diff := cmp.Diff([]string{"raw"}, hooked); diff != "" {
		t.Errorf("hook input (-want +got):\n%s", diff)
	}
	if got := is.State().Query; got != "raw!" {
		t.Errorf("hook continuation should set the amended query, got %q", got)
	}
}

func TestConnectSearchBoxQueryHookCanSwallow(t *testing.T) {
	params := SearchBoxParams{
		QueryHook: func(query string, search func(string)) {
			// Never call search: the query is intercepted entirely.
		},
	}
	is, payloads, _ := newSearchBoxHarness(t, params)

	is.Start()
	(*payloads)[0].Refine("dropped")

	if got := is.State().Query; got != "" {
		t.Errorf("swallowed query should not reach the state, got %q", got)
	}
}

func TestConnectSearchBoxClearBypassesHook(t *testing.T) {
	var hookCalls int
	params := SearchBoxParams{
		QueryHook: func(query string, search func(string)) {
			hookCalls++
			search(query)
		},
	}
	is, payloads, _ := newSearchBoxHarness(t, params)
	is.Helper().SetQuery("something")

	is.Start()
	(*payloads)[0].Clear()

	if got := is.State().Query; got != "" {
		t.Errorf("Clear should empty the query, got %q", got)
	}
	if hookCalls != 0 {
		t.Errorf("Clear should bypass the QueryHook, hook ran %d times", hookCalls)
	}
}

func TestConnectSearchBoxDispose(t *testing.T) {
	var disposed bool
	factory := ConnectSearchBox(func(SearchBoxRenderOptions, bool) {}, func() { disposed = true })
	widget, err := factory(SearchBoxParams{})
	if err != nil {
		t.Fatal(err)
	}

	widget.Dispose()
	if !disposed {
		t.Error("Dispose should call the dispose function")
	}
}
