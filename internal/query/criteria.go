package query

import (
	"fmt"
	"sort"
	"strings"

	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
)

// Compile turns a criteria map into a Condition over cols.
//
// Unknown fields are dropped before anything else. In exact mode every value
// must parse to its column's native type (otherwise CodeInvalidCriteria) and
// the comparisons are ANDed. In fuzzy mode text-like columns use a
// case-insensitive contains, other columns use equality when the value parses
// and are skipped when it does not, blank values are skipped, and the
// comparisons are ORed. No surviving comparison yields the empty condition.
func Compile(d Dialect, exact bool, criteria map[string]string, cols *ColumnSet) (Condition, error) {
	known := cols.StripUnknown(criteria)
	fields := make([]string, 0, len(known))
	for field := range known {
		fields = append(fields, field)
	}
	// Stable clause order keeps generated SQL deterministic.
	sort.Strings(fields)

	conds := make([]Condition, 0, len(fields))
	for _, field := range fields {
		col, _ := cols.Lookup(field)
		raw := known[field]

		var (
			cond Condition
			ok   bool
			err  error
		)
		if exact {
			cond, err = exactMatch(col, raw)
			ok = err == nil
		} else {
			cond, ok = fuzzyMatch(d, col, raw)
		}
		if err != nil {
			return Condition{}, err
		}
		if ok {
			conds = append(conds, cond)
		}
	}

	if exact {
		return And(conds...), nil
	}
	return Or(conds...), nil
}

func exactMatch(col Column, raw string) (Condition, error) {
	v, err := col.Kind.Parse(raw)
	if err != nil {
		return Condition{}, dErrors.Wrap(err, dErrors.CodeInvalidCriteria,
			fmt.Sprintf("criteria %s expects a %s value", col.Field, col.Kind))
	}
	return Condition{Clause: col.Quoted() + " = ?", Args: []any{v}}, nil
}

func fuzzyMatch(d Dialect, col Column, raw string) (Condition, bool) {
	if strings.TrimSpace(raw) == "" {
		return Condition{}, false
	}
	if col.TextLike() {
		return Condition{
			Clause: d.ContainsFold(col.Quoted()),
			Args:   []any{d.ContainsArg(raw)},
		}, true
	}
	v, err := col.Kind.Parse(raw)
	if err != nil {
		return Condition{}, false
	}
	return Condition{Clause: col.Quoted() + " = ?", Args: []any{v}}, true
}
