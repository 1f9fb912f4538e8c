package instantsearch

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OriginalSin/instantsearch.js/lib/vdom"
)

// lifecycleWidget records the order of lifecycle deliveries.
type lifecycleWidget struct {
	name string
	log  *[]string
}

func (w *lifecycleWidget) Init(InitOptions)     { *w.log = append(*w.log, w.name+":init") }
func (w *lifecycleWidget) Render(RenderOptions) { *w.log = append(*w.log, w.name+":render") }
func (w *lifecycleWidget) Dispose()             { *w.log = append(*w.log, w.name+":dispose") }

func newSearch() *InstantSearch {
	doc := vdom.NewDocument()
	return New(doc, &RecordingRenderer{})
}

func TestStartDeliversInitOncePerWidget(t *testing.T) {
	var log []string
	is := newSearch()
	a := &lifecycleWidget{name: "a", log: &log}
	b := &lifecycleWidget{name: "b", log: &log}
	if err := is.AddWidgets(a, b); err != nil {
		t.Fatalf("AddWidgets() error = %v", err)
	}

	is.Start()
	if diff := cmp.Diff([]string{"a:init", "b:init"}, log); diff != "" {
		t.Errorf("unexpected delivery order (-want +got):\n%s", diff)
	}

	// Start is idempotent.
	is.Start()
	if len(log) != 2 {
		t.Errorf("second Start delivered again: %v", log)
	}
}

func TestFeedRendersAfterInit(t *testing.T) {
	var log []string
	is := newSearch()
	w := &lifecycleWidget{name: "w", log: &log}
	if err := is.AddWidgets(w); err != nil {
		t.Fatal(err)
	}

	is.Start()
	is.Feed(&SearchResults{Query: "q"})
	is.Feed(&SearchResults{Query: "q2"})

	want := []string{"w:init", "w:render", "w:render"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("unexpected lifecycle (-want +got):\n%s", diff)
	}
}

func TestFeedBeforeStartIsHeld(t *testing.T) {
	var log []string
	is := newSearch()
	w := &lifecycleWidget{name: "w", log: &log}
	if err := is.AddWidgets(w); err != nil {
		t.Fatal(err)
	}

	is.Feed(&SearchResults{Query: "early"})
	if len(log) != 0 {
		t.Fatalf("Feed before Start should not deliver, got %v", log)
	}

	is.Start()
	want := []string{"w:init", "w:render"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("held results not delivered on Start (-want +got):\n%s", diff)
	}
}

func TestAddWidgetsAfterStart(t *testing.T) {
	var log []string
	is := newSearch()
	is.Start()
	is.Feed(&SearchResults{})

	w := &lifecycleWidget{name: "late", log: &log}
	if err := is.AddWidgets(w); err != nil {
		t.Fatal(err)
	}

	want := []string{"late:init", "late:render"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("late widget lifecycle (-want +got):\n%s", diff)
	}
}

func TestAddWidgetsRejectsDuplicates(t *testing.T) {
	var log []string
	is := newSearch()
	w := &lifecycleWidget{name: "w", log: &log}
	if err := is.AddWidgets(w); err != nil {
		t.Fatal(err)
	}
	if err := is.AddWidgets(w); !IsConfigurationError(err) {
		t.Errorf("duplicate AddWidgets error = %v, want ConfigurationError", err)
	}
}

func TestRemoveWidgetsDisposes(t *testing.T) {
	var log []string
	is := newSearch()
	a := &lifecycleWidget{name: "a", log: &log}
	b := &lifecycleWidget{name: "b", log: &log}
	if err := is.AddWidgets(a, b); err != nil {
		t.Fatal(err)
	}
	is.Start()

	is.RemoveWidgets(a)
	is.Feed(&SearchResults{})

	want := []string{"a:init", "b:init", "a:dispose", "b:render"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("removed widget still rendered (-want +got):\n%s", diff)
	}
}

func TestDisposeDisposesAll(t *testing.T) {
	var log []string
	is := newSearch()
	a := &lifecycleWidget{name: "a", log: &log}
	b := &lifecycleWidget{name: "b", log: &log}
	if err := is.AddWidgets(a, b); err != nil {
		t.Fatal(err)
	}

	is.Dispose()
	want := []string{"a:dispose", "b:dispose"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("Dispose lifecycle (-want +got):\n%s", diff)
	}

	is.Feed(&SearchResults{})
	is.Start()
	if len(log) != 2 {
		t.Errorf("disposed search still delivers: %v", log)
	}
}

func TestHelperRefinements(t *testing.T) {
	is := newSearch()
	h := is.Helper()

	h.SetQuery("shoes")
	h.ToggleFacetRefinement("brand", "nike")
	h.ToggleFacetRefinement("brand", "adidas")
	h.ToggleFacetRefinement("color", "red")

	state := is.State()
	if state.Query != "shoes" {
		t.Errorf("Query = %q, want %q", state.Query, "shoes")
	}
	if !state.IsRefined("brand", "nike") || !state.IsRefined("brand", "adidas") {
		t.Errorf("brand refinements missing: %v", state.Refinements)
	}

	// Toggling again removes the value.
	h.ToggleFacetRefinement("brand", "nike")
	if is.State().IsRefined("brand", "nike") {
		t.Error("toggle did not remove an active refinement")
	}

	h.ClearRefinements("color")
	if len(is.State().Refinements["color"]) != 0 {
		t.Error("ClearRefinements(attr) left values behind")
	}

	h.ClearRefinements()
	if len(is.State().Refinements) != 0 {
		t.Error("ClearRefinements() should drop everything")
	}
}

func TestHelperSearchNotifiesHost(t *testing.T) {
	is := newSearch()
	var got []UiState
	is.OnStateChange = func(s UiState) { got = append(got, s) }

	is.Helper().SetQuery("first").Search()
	is.Helper().ToggleFacetRefinement("brand", "nike").Search()

	if len(got) != 2 {
		t.Fatalf("OnStateChange fired %d times, want 2", len(got))
	}
	if got[0].Query != "first" || !got[1].IsRefined("brand", "nike") {
		t.Errorf("unexpected snapshots: %+v", got)
	}

	// Snapshots must not alias internal state.
	got[1].Refinements["brand"] = append(got[1].Refinements["brand"], "hacked")
	if is.State().IsRefined("brand", "hacked") {
		t.Error("snapshot aliases orchestrator state")
	}
}

func TestStateSnapshotIsolation(t *testing.T) {
	is := newSearch()
	is.Helper().ToggleFacetRefinement("brand", "nike")

	snap := is.State()
	snap.Refinements["brand"][0] = "mutated"
	if !is.State().IsRefined("brand", "nike") {
		t.Error("State() returned an aliased refinement slice")
	}
}

func TestSetStateRestoresSnapshot(t *testing.T) {
	is := newSearch()
	is.SetState(UiState{
		Query:       "restored",
		Refinements: map[string][]string{"brand": {"nike"}},
		Page:        2,
	})

	got := is.State()
	if got.Query != "restored" || got.Page != 2 || !got.IsRefined("brand", "nike") {
		t.Errorf("SetState not applied: %+v", got)
	}
}
