package query

import "fmt"

// ColumnSet is the closed, declared column list of one entity. It is built
// once at startup and only read afterwards, so it is safe to share.
type ColumnSet struct {
	id      Column
	ordered []Column
	byField map[string]Column
}

// NewColumnSet declares an entity's identifier followed by its remaining
// columns in storage order. Duplicate field names are a programming error.
func NewColumnSet(id Column, cols ...Column) *ColumnSet {
	s := &ColumnSet{
		id:      id,
		ordered: make([]Column, 0, len(cols)+1),
		byField: make(map[string]Column, len(cols)+1),
	}
	for _, c := range append([]Column{id}, cols...) {
		if _, dup := s.byField[c.Field]; dup {
			panic(fmt.Sprintf("query: duplicate column field %q", c.Field))
		}
		s.byField[c.Field] = c
		s.ordered = append(s.ordered, c)
	}
	return s
}

// ID returns the identifier column.
func (s *ColumnSet) ID() Column { return s.id }

// All returns every column, identifier first.
func (s *ColumnSet) All() []Column { return s.ordered }

// Mutable returns every column except the identifier.
func (s *ColumnSet) Mutable() []Column { return s.ordered[1:] }

// Lookup finds a column by its exact, case-sensitive field name.
func (s *ColumnSet) Lookup(field string) (Column, bool) {
	c, ok := s.byField[field]
	return c, ok
}

// Resolve maps a caller-supplied name to a column, returning fallback when the
// name is not declared. Unknown names are never an error.
func (s *ColumnSet) Resolve(field string, fallback Column) Column {
	if c, ok := s.byField[field]; ok {
		return c
	}
	return fallback
}

// StripUnknown returns the subset of criteria whose keys are declared fields.
func (s *ColumnSet) StripUnknown(criteria map[string]string) map[string]string {
	known := make(map[string]string, len(criteria))
	for field, value := range criteria {
		if _, ok := s.byField[field]; ok {
			known[field] = value
		}
	}
	return known
}
