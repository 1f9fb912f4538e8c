package instantsearch

// UiState is the current search intent: the query string, per-attribute
// facet refinements, and the page. The orchestrator owns the canonical
// copy; widgets receive value snapshots and mutate it only through the
// Helper.
type UiState struct {
	Query       string
	Refinements map[string][]string
	Page        int
}

// IsRefined reports whether value is an active refinement for attribute.
func (s UiState) IsRefined(attribute, value string) bool {
	for _, v := range s.Refinements[attribute] {
		if v == value {
			return true
		}
	}
	return false
}

// clone returns a deep copy so widget snapshots never alias the
// orchestrator's refinement map.
func (s UiState) clone() UiState {
	out := s
	if s.Refinements != nil {
		out.Refinements = make(map[string][]string, len(s.Refinements))
		for attr, values := range s.Refinements {
			out.Refinements[attr] = append([]string(nil), values...)
		}
	}
	return out
}

// Hit is one search result document.
type Hit struct {
	ID     string
	Score  float64
	Fields map[string]any
}

// SearchResults is one delivery from the host's search backend.
//
// Facets maps attribute name to value counts for the current result set.
// Processing marks the results as stale: a newer search is in flight and
// these hits describe a previous query.
type SearchResults struct {
	Hits       []Hit
	NbHits     int
	Query      string
	Facets     map[string]map[string]int
	Processing bool
}
