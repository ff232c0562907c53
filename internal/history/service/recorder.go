package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/briclabs/evcoordinator-sub000/internal/history/models"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
)

// Appender persists history records.
type Appender interface {
	InsertNew(ctx context.Context, actorID int64, record models.Record) (int64, error)
}

// Sink receives each persisted record for delivery outside the database.
type Sink interface {
	Publish(ctx context.Context, record models.Record) error
}

// Recorder turns before/after entity pairs into history rows. It satisfies
// repository.Auditor.
type Recorder struct {
	store  Appender
	sink   Sink
	clock  func() time.Time
	newID  func() string
	logger *slog.Logger
}

type RecorderOption func(*Recorder)

func WithSink(sink Sink) RecorderOption {
	return func(r *Recorder) {
		r.sink = sink
	}
}

func WithClock(clock func() time.Time) RecorderOption {
	return func(r *Recorder) {
		if clock != nil {
			r.clock = clock
		}
	}
}

func WithEventIDs(next func() string) RecorderOption {
	return func(r *Recorder) {
		if next != nil {
			r.newID = next
		}
	}
}

func WithRecorderLogger(logger *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewRecorder(store Appender, opts ...RecorderOption) *Recorder {
	r := &Recorder{
		store:  store,
		clock:  time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record appends one history row. A nil side is stored as {}. Sink delivery
// failures are logged and do not fail the call.
func (r *Recorder) Record(ctx context.Context, actorID int64, action models.Action, table string, newEntity, oldEntity any) error {
	if !action.IsValid() {
		return fmt.Errorf("record history: unknown action %q", action)
	}
	newData, err := Snapshot(newEntity)
	if err != nil {
		return err
	}
	oldData, err := Snapshot(oldEntity)
	if err != nil {
		return err
	}

	record := models.Record{
		EventID:     r.newID(),
		ActorID:     actorID,
		Action:      action,
		SourceTable: table,
		NewData:     newData,
		OldData:     oldData,
		CreatedAt:   r.clock().UTC(),
	}
	id, err := r.store.InsertNew(ctx, actorID, record)
	if err != nil {
		return fmt.Errorf("record history for %s: %w", table, err)
	}
	record.ID = &id

	if r.sink != nil {
		if err := r.sink.Publish(ctx, record); err != nil {
			r.logger.WarnContext(ctx, "history publish failed",
				"event_id", record.EventID,
				"table", table,
				"error", err,
			)
		}
	}
	return nil
}

// Snapshot encodes entity as compact JSON; nil becomes {}.
func Snapshot(entity any) (json.RawMessage, error) {
	if entity == nil {
		return models.EmptySnapshot, nil
	}
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	compact, err := query.CompactJSON(raw)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(compact), nil
}
