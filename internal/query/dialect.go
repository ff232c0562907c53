package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect renders the few SQL fragments that differ between the supported
// stores. Queries are written with ? placeholders and rebound per dialect.
type Dialect interface {
	Name() string
	// Rebind rewrites ? placeholders into the dialect's native form.
	Rebind(query string) string
	// ContainsFold renders a case-insensitive LIKE of expr against one
	// placeholder holding the value built by ContainsArg.
	ContainsFold(expr string) string
	// ContainsArg escapes v for ContainsFold and wraps it in %...%.
	ContainsArg(v string) string
}

var (
	Postgres Dialect = postgresDialect{}
	SQLite   Dialect = sqliteDialect{}
)

// DialectFor returns the dialect of a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "pgx", "postgres":
		return Postgres, nil
	case "sqlite":
		return SQLite, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

type postgresDialect struct{}

func (postgresDialect) Name() string { return "postgres" }

func (postgresDialect) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (postgresDialect) ContainsFold(expr string) string {
	return expr + ` ILIKE ? ESCAPE '\'`
}

func (postgresDialect) ContainsArg(v string) string { return likePattern(v) }

type sqliteDialect struct{}

func (sqliteDialect) Name() string { return "sqlite" }

func (sqliteDialect) Rebind(query string) string { return query }

// ContainsFold relies on SQLite's LOWER, which folds ASCII only. Non-ASCII
// letters therefore match case-sensitively on this dialect.
func (sqliteDialect) ContainsFold(expr string) string {
	return "LOWER(" + expr + `) LIKE ? ESCAPE '\'`
}

// ContainsArg lowers ASCII letters only, mirroring LOWER on the column side.
func (sqliteDialect) ContainsArg(v string) string {
	return likePattern(strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, v))
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}
