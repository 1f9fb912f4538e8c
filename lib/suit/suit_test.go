package suit

import "testing"

func TestClass(t *testing.T) {
	tests := []struct {
		name   string
		comp   string
		opts   []Option
		expect string
	}{
		{"root", "SearchBox", nil, "ais-SearchBox"},
		{"descendant", "SearchBox", []Option{WithDescendant("input")}, "ais-SearchBox-input"},
		{"modifier", "MenuSelect", []Option{WithModifier("noRefinement")}, "ais-MenuSelect--noRefinement"},
		{
			"descendant and modifier",
			"MenuSelect",
			[]Option{WithDescendant("option"), WithModifier("selected")},
			"ais-MenuSelect-option--selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Class(tt.comp, tt.opts...)
			if got != tt.expect {
				t.Errorf("Class() = %q, want %q", got, tt.expect)
			}
		})
	}
}

func TestClassIdempotent(t *testing.T) {
	opts := []Option{WithDescendant("submit"), WithModifier("disabled")}
	first := Class("SearchBox", opts...)
	second := Class("SearchBox", opts...)
	if first != second {
		t.Errorf("Class is not deterministic: %q != %q", first, second)
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		expect  string
	}{
		{"empty", nil, ""},
		{"single", []string{"ais-SearchBox"}, "ais-SearchBox"},
		{"joins with spaces", []string{"ais-SearchBox", "my-box"}, "ais-SearchBox my-box"},
		{"skips empty entries", []string{"ais-SearchBox", "", "my-box"}, "ais-SearchBox my-box"},
		{"preserves duplicates", []string{"a", "a", "b"}, "a a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.classes...)
			if got != tt.expect {
				t.Errorf("Merge(%v) = %q, want %q", tt.classes, got, tt.expect)
			}
		})
	}
}
