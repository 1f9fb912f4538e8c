package instantsearch

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStateTokenRoundTrip(t *testing.T) {
	state := UiState{
		Query:       "running shoes",
		Refinements: map[string][]string{"brand": {"nike"}},
		Page:        1,
	}

	token, err := StateToToken(state)
	if err != nil {
		t.Fatalf("StateToToken() error = %v", err)
	}
	if strings.ContainsAny(token, "+/= ") {
		t.Errorf("token is not URL-safe: %q", token)
	}

	got := TokenToState(token)
	if diff := cmp.Diff(state, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenToStateMalformedTokenWarnsAndDegrades(t *testing.T) {
	prev := Warnf
	defer func() { Warnf = prev }()

	var warnings []string
	Warnf = func(format string, args ...any) {
		warnings = append(warnings, format)
	}

	got := TokenToState("!!!hand-edited-garbage!!!")

	if got.Query != "" || len(got.Refinements) != 0 || got.Page != 0 {
		t.Errorf("malformed token should degrade to the zero state, got %+v", got)
	}
	if got.Refinements == nil {
		t.Error("degraded state should carry a usable refinement map")
	}
	if len(warnings) != 1 {
		t.Errorf("expected one advisory warning, got %d", len(warnings))
	}
}

func TestWarnOnceDeduplicates(t *testing.T) {
	prev := Warnf
	defer func() { Warnf = prev }()

	var count int
	Warnf = func(string, ...any) { count++ }

	WarnOnce("test:dedupe-key", "only once")
	WarnOnce("test:dedupe-key", "only once")
	WarnOnce("test:other-key", "different key")

	if count != 2 {
		t.Errorf("WarnOnce fired %d times, want 2 (one per key)", count)
	}
}
