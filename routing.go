package instantsearch

import "github.com/OriginalSin/instantsearch.js/lib/statecodec"

// StateToToken serializes a UI state into a compact URL-safe token for
// persisting the search in a link.
func StateToToken(s UiState) (string, error) {
	return statecodec.Encode(statecodec.State{
		Query:       s.Query,
		Refinements: s.Refinements,
		Page:        s.Page,
	})
}

// TokenToState restores a UI state from a token. Tokens travel in shared
// URLs and get hand-edited, so a malformed one degrades to the zero state
// with an advisory warning instead of failing the caller.
func TokenToState(token string) UiState {
	decoded, err := statecodec.Decode(token)
	if err != nil {
		Warnf("ignoring malformed state token: %v", err)
		return UiState{Refinements: make(map[string][]string)}
	}
	s := UiState{
		Query:       decoded.Query,
		Refinements: decoded.Refinements,
		Page:        decoded.Page,
	}
	if s.Refinements == nil {
		s.Refinements = make(map[string][]string)
	}
	return s
}
