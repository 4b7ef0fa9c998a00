// README: Isolates the JSON candidate inside raw generator text.
package ai

import (
	"errors"
	"strings"
)

// ErrNoPayload is returned when the raw text contains nothing to parse.
var ErrNoPayload = errors.New("no extractable payload in provider output")

// ExtractJSON pulls the candidate JSON substring out of raw provider text.
// Providers drift between wrapping the answer in a labeled fence, a bare
// fence, or no fence at all, so this is a first-class step rather than an
// ad hoc cleanup. First match wins:
//
//  1. content of a ```json fence
//  2. content of any ``` fence
//  3. the whole text
//
// The result is trimmed but not parsed; validation happens downstream.
func ExtractJSON(raw string) (string, error) {
	candidate, ok := fencedBlock(raw, "```json")
	if !ok {
		candidate, ok = fencedBlock(raw, "```")
	}
	if !ok {
		candidate = raw
	}
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return "", ErrNoPayload
	}
	return candidate, nil
}

// fencedBlock returns the content between the first opener fence and the
// next closing fence. An unterminated fence yields the remainder of the
// text: a truncated response is still worth handing to the validator.
func fencedBlock(raw, opener string) (string, bool) {
	start := strings.Index(raw, opener)
	if start < 0 {
		return "", false
	}
	rest := raw[start+len(opener):]
	if end := strings.Index(rest, "```"); end >= 0 {
		return rest[:end], true
	}
	return rest, true
}
