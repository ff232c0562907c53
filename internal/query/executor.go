package query

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	txcontext "github.com/briclabs/evcoordinator-sub000/pkg/platform/tx"
)

var tracer = otel.Tracer("github.com/briclabs/evcoordinator-sub000/internal/query")

// DefaultMaxPageSize bounds a single page when no ceiling is configured.
const DefaultMaxPageSize = 100

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Scanner is a single result row.
type Scanner interface {
	Scan(dest ...any) error
}

// RowScanner decodes one row selected in column order.
type RowScanner[T any] func(row Scanner) (T, error)

// Page is one window of results plus the count of every matching row.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}

// Search is the caller's listing request for one entity.
type Search struct {
	Exact      bool
	Criteria   map[string]string
	SortColumn string
	Ascending  bool
	Offset     int
	Max        int
}

// Select is a fully resolved listing query.
type Select struct {
	Table     string
	Columns   []Column
	Where     Condition
	Sort      Column
	Ascending bool
	Offset    int
	Max       int
}

// Executor runs listing, existence, and write statements against a shared
// pool. It keeps no per-call state and is safe for concurrent use.
type Executor struct {
	db          *sql.DB
	dialect     Dialect
	maxPageSize int
}

type ExecutorOption func(*Executor)

// WithMaxPageSize sets the ceiling applied to Search.Max.
func WithMaxPageSize(n int) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.maxPageSize = n
		}
	}
}

func NewExecutor(db *sql.DB, dialect Dialect, opts ...ExecutorOption) *Executor {
	e := &Executor{db: db, dialect: dialect, maxPageSize: DefaultMaxPageSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Executor) Dialect() Dialect { return e.dialect }

func (e *Executor) MaxPageSize() int { return e.maxPageSize }

// Conn returns the transaction carried by ctx, or the pool.
func (e *Executor) Conn(ctx context.Context) DBTX {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return e.db
}

// Window validates offset and max and applies the page size ceiling.
func (e *Executor) Window(offset, max int) (int, int, error) {
	if max < 1 {
		return 0, 0, dErrors.New(dErrors.CodeInvalidPageSize, "max must be at least 1")
	}
	if offset < 0 {
		return 0, 0, dErrors.New(dErrors.CodeInvalidPageSize, "offset must not be negative")
	}
	if max > e.maxPageSize {
		max = e.maxPageSize
	}
	return offset, max, nil
}

// Exists reports whether at least one row of table satisfies where.
func (e *Executor) Exists(ctx context.Context, table string, where Condition) (bool, error) {
	q := e.dialect.Rebind("SELECT 1 FROM " + QuoteTable(table) + where.Where() + " LIMIT 1")
	var one int
	err := e.Conn(ctx).QueryRowContext(ctx, q, where.Args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("probe %s: %w", table, err)
	}
	return true, nil
}

// Execute runs the page query and the count query over the same filter. Both
// run concurrently on the pool; inside a transaction they run in sequence
// because a transaction owns a single connection.
func Execute[T any](ctx context.Context, e *Executor, sel Select, scan RowScanner[T]) (Page[T], error) {
	offset, max, err := e.Window(sel.Offset, sel.Max)
	if err != nil {
		return Page[T]{}, err
	}

	ctx, span := tracer.Start(ctx, "query.Execute")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.table", sel.Table),
		attribute.Int("query.offset", offset),
		attribute.Int("query.max", max),
	)

	pageSQL, pageArgs := e.pageQuery(sel, offset, max)
	countSQL := e.dialect.Rebind("SELECT COUNT(*) FROM " + QuoteTable(sel.Table) + sel.Where.Where())

	var (
		items []T
		total int
	)
	runPage := func(ctx context.Context) error {
		rows, err := e.Conn(ctx).QueryContext(ctx, pageSQL, pageArgs...)
		if err != nil {
			return fmt.Errorf("query %s: %w", sel.Table, err)
		}
		defer rows.Close()
		for rows.Next() {
			item, err := scan(rows)
			if err != nil {
				return fmt.Errorf("scan %s: %w", sel.Table, err)
			}
			items = append(items, item)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate %s: %w", sel.Table, err)
		}
		return nil
	}
	runCount := func(ctx context.Context) error {
		if err := e.Conn(ctx).QueryRowContext(ctx, countSQL, sel.Where.Args...).Scan(&total); err != nil {
			return fmt.Errorf("count %s: %w", sel.Table, err)
		}
		return nil
	}

	if _, inTx := txcontext.From(ctx); inTx {
		if err := runPage(ctx); err != nil {
			return Page[T]{}, err
		}
		if err := runCount(ctx); err != nil {
			return Page[T]{}, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return runPage(gctx) })
		g.Go(func() error { return runCount(gctx) })
		if err := g.Wait(); err != nil {
			span.RecordError(err)
			return Page[T]{}, err
		}
	}

	if items == nil {
		items = []T{}
	}
	span.SetAttributes(attribute.Int("query.total", total))
	return Page[T]{Items: items, TotalCount: total}, nil
}

func (e *Executor) pageQuery(sel Select, offset, max int) (string, []any) {
	names := make([]string, 0, len(sel.Columns))
	for _, c := range sel.Columns {
		names = append(names, c.Quoted())
	}
	dir := "DESC"
	if sel.Ascending {
		dir = "ASC"
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString(" FROM ")
	b.WriteString(QuoteTable(sel.Table))
	b.WriteString(sel.Where.Where())
	b.WriteString(" ORDER BY ")
	b.WriteString(sel.Sort.Quoted())
	b.WriteString(" ")
	b.WriteString(dir)
	b.WriteString(" LIMIT ? OFFSET ?")

	args := make([]any, 0, len(sel.Where.Args)+2)
	args = append(args, sel.Where.Args...)
	args = append(args, max, offset)
	return e.dialect.Rebind(b.String()), args
}
