// Package store persists the append-only history log through the generic
// repository. History rows are never audited themselves.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/briclabs/evcoordinator-sub000/internal/history/models"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
)

const Table = "history"

var Columns = query.NewColumnSet(
	query.Column{Field: "id", Name: "id", Kind: query.KindInt},
	query.Column{Field: "eventId", Name: "event_id", Kind: query.KindText},
	query.Column{Field: "actorId", Name: "actor_id", Kind: query.KindInt},
	query.Column{Field: "actionName", Name: "action_name", Kind: query.KindText},
	query.Column{Field: "tableSource", Name: "table_source", Kind: query.KindText},
	query.Column{Field: "newData", Name: "new_data", Kind: query.KindJSON},
	query.Column{Field: "oldData", Name: "old_data", Kind: query.KindJSON},
	query.Column{Field: "createdAt", Name: "created_at", Kind: query.KindTimestamp},
)

type Descriptor struct{}

func (Descriptor) Table() string             { return Table }
func (Descriptor) Columns() *query.ColumnSet { return Columns }
func (Descriptor) ID(r models.Record) *int64 { return r.ID }
func (Descriptor) DuplicateFields() []string { return []string{"eventId"} }

func (Descriptor) WithID(r models.Record, id int64) models.Record {
	r.ID = &id
	return r
}

func (Descriptor) Values(r models.Record) []any {
	return []any{
		r.EventID,
		r.ActorID,
		string(r.Action),
		r.SourceTable,
		string(r.NewData),
		string(r.OldData),
		r.CreatedAt.UTC(),
	}
}

func (Descriptor) Scan(row query.Scanner) (models.Record, error) {
	var (
		r                models.Record
		id               int64
		action           string
		newData, oldData string
		createdAt        any
	)
	if err := row.Scan(&id, &r.EventID, &r.ActorID, &action, &r.SourceTable, &newData, &oldData, &createdAt); err != nil {
		return models.Record{}, err
	}
	ts, err := asTime(createdAt)
	if err != nil {
		return models.Record{}, err
	}
	r.ID = &id
	r.Action = models.Action(action)
	r.NewData = json.RawMessage(newData)
	r.OldData = json.RawMessage(oldData)
	r.CreatedAt = ts
	return r, nil
}

// Store is the history repository. It has no auditor.
type Store = repository.Repository[models.Record]

func New(exec *query.Executor, opts ...repository.Option) *Store {
	return repository.New[models.Record](exec, Descriptor{}, opts...)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
}

// asTime accepts the native timestamp of Postgres and the text forms SQLite
// hands back for a TEXT column.
func asTime(v any) (time.Time, error) {
	var s string
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		s = t
	case []byte:
		s = string(t)
	default:
		return time.Time{}, fmt.Errorf("scan created_at: unsupported type %T", v)
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("scan created_at: unrecognised timestamp %q", s)
}
