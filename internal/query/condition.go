package query

import "strings"

// Condition is a composed WHERE fragment with its positional arguments.
// The zero value matches every row.
type Condition struct {
	Clause string
	Args   []any
}

// Empty reports whether the condition filters nothing.
func (c Condition) Empty() bool { return strings.TrimSpace(c.Clause) == "" }

// Where renders " WHERE <clause>" or nothing for an empty condition.
func (c Condition) Where() string {
	if c.Empty() {
		return ""
	}
	return " WHERE " + c.Clause
}

// IsNull matches rows where col holds no value.
func IsNull(col Column) Condition { return Condition{Clause: col.Quoted() + " IS NULL"} }

// And joins non-empty conditions so that all must hold.
func And(conds ...Condition) Condition { return join(" AND ", conds) }

// Or joins non-empty conditions so that any may hold.
func Or(conds ...Condition) Condition { return join(" OR ", conds) }

func join(op string, conds []Condition) Condition {
	parts := make([]string, 0, len(conds))
	var args []any
	for _, c := range conds {
		if c.Empty() {
			continue
		}
		parts = append(parts, c.Clause)
		args = append(args, c.Args...)
	}
	switch len(parts) {
	case 0:
		return Condition{}
	case 1:
		return Condition{Clause: parts[0], Args: args}
	default:
		return Condition{Clause: "(" + strings.Join(parts, op) + ")", Args: args}
	}
}
