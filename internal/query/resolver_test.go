package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/briclabs/evcoordinator-sub000/internal/query"
)

var (
	personID   = query.Column{Field: "id", Name: "id", Kind: query.KindInt}
	personLast = query.Column{Field: "nameLast", Name: "name_last", Kind: query.KindText}
	personAge  = query.Column{Field: "age", Name: "age", Kind: query.KindInt}
	personDOB  = query.Column{Field: "dob", Name: "dob", Kind: query.KindDate}
	personFee  = query.Column{Field: "fee", Name: "fee", Kind: query.KindMoney}
	personCols = query.NewColumnSet(personID, personLast, personAge, personDOB, personFee)
)

func TestResolve(t *testing.T) {
	t.Run("declared field resolves to its column", func(t *testing.T) {
		assert.Equal(t, personLast, personCols.Resolve("nameLast", personID))
	})

	t.Run("unknown field falls back", func(t *testing.T) {
		assert.Equal(t, personID, personCols.Resolve("shoeSize", personID))
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		assert.Equal(t, personID, personCols.Resolve("namelast", personID))
		assert.Equal(t, personID, personCols.Resolve("name_last", personID))
	})

	t.Run("empty name falls back", func(t *testing.T) {
		assert.Equal(t, personAge, personCols.Resolve("", personAge))
	})
}

func TestColumnSetShape(t *testing.T) {
	assert.Equal(t, personID, personCols.ID())
	assert.Len(t, personCols.All(), 5)
	assert.Equal(t, []query.Column{personLast, personAge, personDOB, personFee}, personCols.Mutable())

	stripped := personCols.StripUnknown(map[string]string{"nameLast": "Lee", "bogus": "x"})
	assert.Equal(t, map[string]string{"nameLast": "Lee"}, stripped)

	assert.Panics(t, func() {
		query.NewColumnSet(personID, personLast, personLast)
	})
}
