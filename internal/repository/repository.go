package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/briclabs/evcoordinator-sub000/internal/history/models"
	"github.com/briclabs/evcoordinator-sub000/internal/platform/metrics"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/sentinel"
)

type settings struct {
	auditor     Auditor
	strictAudit bool
	logger      *slog.Logger
	metrics     *metrics.Metrics
}

type Option func(*settings)

// WithAuditor mirrors every successful mutation into a.
func WithAuditor(a Auditor) Option {
	return func(s *settings) {
		s.auditor = a
	}
}

// WithStrictAudit surfaces history write failures to the caller as
// CodeAuditWrite. The primary mutation stays committed either way.
func WithStrictAudit(strict bool) Option {
	return func(s *settings) {
		s.strictAudit = strict
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// Repository is the generic per-entity data access surface. It holds no
// per-call state; each call borrows a connection (or the context's
// transaction) for its own duration.
type Repository[T any] struct {
	exec *query.Executor
	desc Descriptor[T]
	settings
}

// New builds a repository over desc.
func New[T any](exec *query.Executor, desc Descriptor[T], opts ...Option) *Repository[T] {
	r := &Repository[T]{
		exec:     exec,
		desc:     desc,
		settings: settings{logger: slog.Default()},
	}
	for _, opt := range opts {
		opt(&r.settings)
	}
	return r
}

func (r *Repository[T]) Table() string { return r.desc.Table() }

func (r *Repository[T]) Columns() *query.ColumnSet { return r.desc.Columns() }

// Audited reports whether mutations are mirrored into history.
func (r *Repository[T]) Audited() bool { return r.auditor != nil }

// FetchByID returns the row with id; found is false when there is none.
func (r *Repository[T]) FetchByID(ctx context.Context, id int64) (entity T, found bool, err error) {
	cols := r.desc.Columns()
	where := query.Condition{Clause: cols.ID().Quoted() + " = ?", Args: []any{id}}
	q := r.exec.Dialect().Rebind("SELECT " + selectList(cols.All()) + " FROM " + query.QuoteTable(r.desc.Table()) + where.Where())

	rows, err := r.exec.Conn(ctx).QueryContext(ctx, q, where.Args...)
	if err != nil {
		return entity, false, fmt.Errorf("fetch %s %d: %w", r.desc.Table(), id, err)
	}
	defer rows.Close()
	if !rows.Next() {
		return entity, false, rows.Err()
	}
	entity, err = r.desc.Scan(rows)
	if err != nil {
		return entity, false, fmt.Errorf("scan %s %d: %w", r.desc.Table(), id, err)
	}
	return entity, true, nil
}

// FetchByCriteria compiles search into a filter and returns one page plus the
// total count of matching rows. An unresolvable sort column falls back to the
// identifier.
func (r *Repository[T]) FetchByCriteria(ctx context.Context, search query.Search) (query.Page[T], error) {
	started := time.Now()
	cols := r.desc.Columns()
	where, err := query.Compile(r.exec.Dialect(), search.Exact, search.Criteria, cols)
	if err != nil {
		return query.Page[T]{}, err
	}
	page, err := query.Execute(ctx, r.exec, query.Select{
		Table:     r.desc.Table(),
		Columns:   cols.All(),
		Where:     where,
		Sort:      cols.Resolve(search.SortColumn, cols.ID()),
		Ascending: search.Ascending,
		Offset:    search.Offset,
		Max:       search.Max,
	}, r.desc.Scan)
	if err != nil {
		return query.Page[T]{}, err
	}
	r.metrics.ObserveQuery(r.desc.Table(), started)
	return page, nil
}

// DuplicateCriteria is the exact-match criteria map probing for candidate:
// every business field except the identifier. Fields the candidate leaves
// NULL cannot be carried by a criteria map and are returned in nulls.
func (r *Repository[T]) DuplicateCriteria(candidate T) (criteria map[string]string, nulls []string, err error) {
	cols := r.desc.Columns().Mutable()
	values := r.desc.Values(candidate)
	if len(values) != len(cols) {
		return nil, nil, fmt.Errorf("%s descriptor returned %d values for %d columns", r.desc.Table(), len(values), len(cols))
	}

	include := func(string) bool { return true }
	if keyer, ok := r.desc.(DuplicateKeyer); ok {
		fields := make(map[string]struct{})
		for _, f := range keyer.DuplicateFields() {
			fields[f] = struct{}{}
		}
		include = func(f string) bool {
			_, ok := fields[f]
			return ok
		}
	}

	criteria = make(map[string]string, len(cols))
	for i, col := range cols {
		if !include(col.Field) {
			continue
		}
		s, ok, err := formatCriteria(values[i])
		if err != nil {
			return nil, nil, fmt.Errorf("encode %s.%s: %w", r.desc.Table(), col.Field, err)
		}
		if !ok {
			nulls = append(nulls, col.Field)
			continue
		}
		criteria[col.Field] = s
	}
	return criteria, nulls, nil
}

// duplicateCondition ANDs the compiled criteria with IS NULL for every field
// the candidate leaves empty, so a missing value only matches a missing value.
func (r *Repository[T]) duplicateCondition(candidate T) (query.Condition, error) {
	criteria, nulls, err := r.DuplicateCriteria(candidate)
	if err != nil {
		return query.Condition{}, err
	}
	where, err := query.Compile(r.exec.Dialect(), true, criteria, r.desc.Columns())
	if err != nil {
		return query.Condition{}, err
	}
	conds := []query.Condition{where}
	for _, field := range nulls {
		col, _ := r.desc.Columns().Lookup(field)
		conds = append(conds, query.IsNull(col))
	}
	return query.And(conds...), nil
}

// IsAlreadyRecorded reports whether a row equal to candidate on every
// business field exists. This probe is the only duplicate prevention; it is
// not atomic with a following InsertNew.
func (r *Repository[T]) IsAlreadyRecorded(ctx context.Context, candidate T) (bool, error) {
	where, err := r.duplicateCondition(candidate)
	if err != nil {
		return false, err
	}
	found, err := r.exec.Exists(ctx, r.desc.Table(), where)
	if err != nil {
		return false, err
	}
	if found {
		r.metrics.IncDuplicateRejected(r.desc.Table())
	}
	return found, nil
}

// InsertNew stores candidate and returns its new identifier. Callers own the
// preceding IsAlreadyRecorded check.
func (r *Repository[T]) InsertNew(ctx context.Context, actorID int64, candidate T) (int64, error) {
	cols := r.desc.Columns()
	values := r.desc.Values(candidate)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(values)), ", ")
	q := r.exec.Dialect().Rebind(
		"INSERT INTO " + query.QuoteTable(r.desc.Table()) +
			" (" + selectList(cols.Mutable()) + ") VALUES (" + placeholders + ")" +
			" RETURNING " + cols.ID().Quoted(),
	)

	var id int64
	if err := r.exec.Conn(ctx).QueryRowContext(ctx, q, values...).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert %s: %w", r.desc.Table(), err)
	}
	r.metrics.AddRowsWritten(r.desc.Table(), "insert", 1)

	if err := r.audit(ctx, actorID, models.ActionInserted, r.desc.WithID(candidate, id), nil); err != nil {
		return id, err
	}
	return id, nil
}

// UpdateExisting writes candidate over the row with the same identifier, but
// only when at least one field differs. Resubmitting an unchanged payload
// affects zero rows.
func (r *Repository[T]) UpdateExisting(ctx context.Context, actorID int64, candidate T) (int64, error) {
	idPtr := r.desc.ID(candidate)
	if idPtr == nil {
		return 0, dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeBadRequest,
			fmt.Sprintf("%s update requires an identifier", r.desc.Table()))
	}
	id := *idPtr

	var (
		original T
		found    bool
		err      error
	)
	if r.auditor != nil {
		original, found, err = r.FetchByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, nil
		}
	}

	cols := r.desc.Columns()
	values := r.desc.Values(candidate)
	sets := make([]string, 0, len(values))
	diffs := make([]string, 0, len(values))
	for _, col := range cols.Mutable() {
		sets = append(sets, col.Quoted()+" = ?")
		diffs = append(diffs, col.Quoted()+" IS DISTINCT FROM ?")
	}
	q := r.exec.Dialect().Rebind(
		"UPDATE " + query.QuoteTable(r.desc.Table()) +
			" SET " + strings.Join(sets, ", ") +
			" WHERE " + cols.ID().Quoted() + " = ? AND (" + strings.Join(diffs, " OR ") + ")",
	)
	args := make([]any, 0, 2*len(values)+1)
	args = append(args, values...)
	args = append(args, id)
	args = append(args, values...)

	res, err := r.exec.Conn(ctx).ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("update %s %d: %w", r.desc.Table(), id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update %s %d rows affected: %w", r.desc.Table(), id, err)
	}
	if affected == 0 {
		return 0, nil
	}
	r.metrics.AddRowsWritten(r.desc.Table(), "update", affected)

	if err := r.audit(ctx, actorID, models.ActionUpdated, candidate, original); err != nil {
		return affected, err
	}
	return affected, nil
}

// DeleteByID removes the row with id and returns the affected row count.
func (r *Repository[T]) DeleteByID(ctx context.Context, actorID int64, id int64) (int64, error) {
	var (
		original T
		found    bool
		err      error
	)
	if r.auditor != nil {
		original, found, err = r.FetchByID(ctx, id)
		if err != nil {
			return 0, err
		}
		if !found {
			return 0, nil
		}
	}

	q := r.exec.Dialect().Rebind("DELETE FROM " + query.QuoteTable(r.desc.Table()) + " WHERE " + r.desc.Columns().ID().Quoted() + " = ?")
	res, err := r.exec.Conn(ctx).ExecContext(ctx, q, id)
	if err != nil {
		return 0, fmt.Errorf("delete %s %d: %w", r.desc.Table(), id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete %s %d rows affected: %w", r.desc.Table(), id, err)
	}
	if affected == 0 {
		return 0, nil
	}
	r.metrics.AddRowsWritten(r.desc.Table(), "delete", affected)

	if err := r.audit(ctx, actorID, models.ActionDeleted, nil, original); err != nil {
		return affected, err
	}
	return affected, nil
}

// audit runs after the mutation has affected rows. Its failure never undoes
// the mutation; it is logged and, under strict audit, also returned.
func (r *Repository[T]) audit(ctx context.Context, actorID int64, action models.Action, newEntity, oldEntity any) error {
	if r.auditor == nil {
		return nil
	}
	err := r.auditor.Record(ctx, actorID, action, r.desc.Table(), newEntity, oldEntity)
	if err == nil {
		return nil
	}
	r.metrics.IncAuditFailure(r.desc.Table())
	r.logger.ErrorContext(ctx, "history write failed",
		"table", r.desc.Table(),
		"actor_id", actorID,
		"action", string(action),
		"error", err,
	)
	if r.strictAudit {
		return dErrors.Wrap(err, dErrors.CodeAuditWrite, fmt.Sprintf("%s %s committed but history was not recorded", r.desc.Table(), strings.ToLower(string(action))))
	}
	return nil
}

func selectList(cols []query.Column) string {
	names := make([]string, 0, len(cols))
	for _, c := range cols {
		names = append(names, c.Quoted())
	}
	return strings.Join(names, ", ")
}
