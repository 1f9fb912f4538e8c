// Package statecodec serializes search UI state into compact, URL-safe
// tokens.
//
// Tokens are msgpack payloads in raw base64url. They are deliberately
// neither signed nor encrypted: search URLs are meant to be shared and
// hand-edited, so the decoder treats malformed input as ordinary bad data,
// not as an attack.
package statecodec

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ErrInvalidToken reports a token that is not valid base64 or msgpack.
var ErrInvalidToken = errors.New("statecodec: invalid state token")

// State is the serializable shape of search UI state.
type State struct {
	Query       string              `msgpack:"q,omitempty"`
	Refinements map[string][]string `msgpack:"r,omitempty"`
	Page        int                 `msgpack:"p,omitempty"`
}

// Encode serializes s into a URL-safe token.
func Encode(s State) (string, error) {
	packed, err := msgpack.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// Decode parses a token produced by Encode. Malformed tokens return an
// error wrapping ErrInvalidToken.
func Decode(token string) (State, error) {
	var s State
	packed, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := msgpack.Unmarshal(packed, &s); err != nil {
		return s, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return s, nil
}
