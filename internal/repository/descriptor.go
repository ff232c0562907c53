package repository

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"

	"github.com/briclabs/evcoordinator-sub000/internal/history/models"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
)

// Descriptor binds an entity type to its table. Values must line up with
// Columns().Mutable() and Scan with Columns().All().
type Descriptor[T any] interface {
	Table() string
	Columns() *query.ColumnSet
	ID(entity T) *int64
	WithID(entity T, id int64) T
	Values(entity T) []any
	Scan(row query.Scanner) (T, error)
}

// DuplicateKeyer narrows the duplicate probe to a subset of fields. Without
// it every non-identifier field participates.
type DuplicateKeyer interface {
	DuplicateFields() []string
}

// Auditor receives before/after pairs of successful mutations.
type Auditor interface {
	Record(ctx context.Context, actorID int64, action models.Action, table string, newEntity, oldEntity any) error
}

// Writer is the duplicate-checked insert surface shared by the services.
type Writer[T any] interface {
	IsAlreadyRecorded(ctx context.Context, candidate T) (bool, error)
	InsertNew(ctx context.Context, actorID int64, candidate T) (int64, error)
}

// formatCriteria string-encodes a bound value the way criteria maps carry it.
// ok is false for NULL, which a criteria map cannot express; the duplicate
// probe matches those with IS NULL instead.
func formatCriteria(v any) (string, bool, error) {
	dv, err := driver.DefaultParameterConverter.ConvertValue(v)
	if err != nil {
		return "", false, err
	}
	switch x := dv.(type) {
	case nil:
		return "", false, nil
	case string:
		return x, true, nil
	case []byte:
		return string(x), true, nil
	case int64:
		return strconv.FormatInt(x, 10), true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	case time.Time:
		return x.Format(time.RFC3339Nano), true, nil
	default:
		return "", false, fmt.Errorf("unsupported value type %T", dv)
	}
}

// InsertIfAbsent inserts candidate unless an identical row is already
// recorded, in which case it fails with CodeConflict naming noun.
func InsertIfAbsent[T any](ctx context.Context, w Writer[T], actorID int64, candidate T, noun string) (int64, error) {
	dup, err := w.IsAlreadyRecorded(ctx, candidate)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "check "+noun+" duplicate")
	}
	if dup {
		return 0, dErrors.New(dErrors.CodeConflict, noun+" is already recorded")
	}
	id, err := w.InsertNew(ctx, actorID, candidate)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeAuditWrite) {
			return id, err
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "insert "+noun)
	}
	return id, nil
}
