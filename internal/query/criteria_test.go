package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briclabs/evcoordinator-sub000/internal/query"
	"github.com/briclabs/evcoordinator-sub000/pkg/domain"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
)

func TestCompileExact(t *testing.T) {
	t.Run("combines typed equalities with AND", func(t *testing.T) {
		cond, err := query.Compile(query.SQLite, true, map[string]string{
			"nameLast": "Lee",
			"age":      "34",
		}, personCols)
		require.NoError(t, err)
		assert.Equal(t, `("age" = ? AND "name_last" = ?)`, cond.Clause)
		assert.Equal(t, []any{int64(34), "Lee"}, cond.Args)
	})

	t.Run("parses dates and money to native values", func(t *testing.T) {
		cond, err := query.Compile(query.SQLite, true, map[string]string{
			"dob": "1990-01-01",
			"fee": "50.00",
		}, personCols)
		require.NoError(t, err)
		assert.Equal(t, []any{domain.NewDate(1990, 1, 1), domain.Money(5000)}, cond.Args)
	})

	t.Run("unparsable value rejects the request", func(t *testing.T) {
		_, err := query.Compile(query.SQLite, true, map[string]string{"age": "thirty"}, personCols)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidCriteria))
	})

	t.Run("unknown fields are dropped silently", func(t *testing.T) {
		cond, err := query.Compile(query.SQLite, true, map[string]string{"bogus": "x", "age": "34"}, personCols)
		require.NoError(t, err)
		assert.Equal(t, `"age" = ?`, cond.Clause)
	})

	t.Run("empty string is a real exact value for text", func(t *testing.T) {
		cond, err := query.Compile(query.SQLite, true, map[string]string{"nameLast": ""}, personCols)
		require.NoError(t, err)
		assert.Equal(t, []any{""}, cond.Args)
	})
}

func TestCompileFuzzy(t *testing.T) {
	t.Run("combines contains and equality with OR", func(t *testing.T) {
		cond, err := query.Compile(query.SQLite, false, map[string]string{
			"nameLast": "Le_e",
			"age":      "34",
		}, personCols)
		require.NoError(t, err)
		assert.Equal(t, `("age" = ? OR LOWER("name_last") LIKE ? ESCAPE '\')`, cond.Clause)
		assert.Equal(t, []any{int64(34), `%le\_e%`}, cond.Args)
	})

	t.Run("incompatible values are excluded instead of failing", func(t *testing.T) {
		cond, err := query.Compile(query.SQLite, false, map[string]string{
			"age":      "thirty",
			"nameLast": "lee",
		}, personCols)
		require.NoError(t, err)
		assert.Equal(t, `LOWER("name_last") LIKE ? ESCAPE '\'`, cond.Clause)
	})

	t.Run("postgres uses ILIKE", func(t *testing.T) {
		cond, err := query.Compile(query.Postgres, false, map[string]string{"nameLast": "lee"}, personCols)
		require.NoError(t, err)
		assert.Equal(t, `"name_last" ILIKE ? ESCAPE '\'`, cond.Clause)
	})
}

func TestCompileEmptyMatchesEverything(t *testing.T) {
	for _, exact := range []bool{true, false} {
		cond, err := query.Compile(query.SQLite, exact, map[string]string{"bogus": "1"}, personCols)
		require.NoError(t, err)
		assert.True(t, cond.Empty())
		assert.Equal(t, "", cond.Where())

		cond, err = query.Compile(query.SQLite, exact, nil, personCols)
		require.NoError(t, err)
		assert.True(t, cond.Empty())
	}

	cond, err := query.Compile(query.SQLite, false, map[string]string{"nameLast": "  "}, personCols)
	require.NoError(t, err)
	assert.True(t, cond.Empty(), "blank fuzzy terms do not broaden the search")
}

func TestPostgresRebind(t *testing.T) {
	got := query.Postgres.Rebind(`SELECT 1 FROM "t" WHERE ("a" = ? AND "b" = ?) LIMIT ? OFFSET ?`)
	assert.Equal(t, `SELECT 1 FROM "t" WHERE ("a" = $1 AND "b" = $2) LIMIT $3 OFFSET $4`, got)
	assert.Equal(t, "x = ?", query.SQLite.Rebind("x = ?"))
}

func TestContainsArg(t *testing.T) {
	t.Run("sqlite folds ASCII only to match LOWER", func(t *testing.T) {
		assert.Equal(t, `%Élodie%`, query.SQLite.ContainsArg("ÉLODIE"))
		assert.Equal(t, `%50\%\_off%`, query.SQLite.ContainsArg("50%_OFF"))
	})

	t.Run("postgres leaves folding to ILIKE", func(t *testing.T) {
		assert.Equal(t, `%ÉLODIE%`, query.Postgres.ContainsArg("ÉLODIE"))
	})
}
