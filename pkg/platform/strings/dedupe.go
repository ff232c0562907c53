// Package strings normalizes repeated string inputs such as query parameters.
package strings

import (
	"errors"
	"strings"
)

// ErrMultiple is returned by Single when more than one distinct value remains.
var ErrMultiple = errors.New("more than one distinct value")

// DedupeAndTrim trims each value and drops blanks and repeats, keeping the
// first occurrence order.
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Single collapses values to the one value they agree on. ok is false when
// every value is blank.
func Single(values []string) (v string, ok bool, err error) {
	vals := DedupeAndTrim(values)
	switch len(vals) {
	case 0:
		return "", false, nil
	case 1:
		return vals[0], true, nil
	default:
		return "", false, ErrMultiple
	}
}
