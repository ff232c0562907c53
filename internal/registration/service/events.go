package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/briclabs/evcoordinator-sub000/internal/registration/models"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/validation"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/sentinel"
)

type EventStore interface {
	IsAlreadyRecorded(ctx context.Context, candidate models.EventInfo) (bool, error)
	InsertNew(ctx context.Context, actorID int64, candidate models.EventInfo) (int64, error)
	UpdateExisting(ctx context.Context, actorID int64, candidate models.EventInfo) (int64, error)
}

// EventService schedules events that packets register against.
type EventService struct {
	events    EventStore
	validator *validation.Validator
	logger    *slog.Logger
}

func NewEventService(events EventStore, validator *validation.Validator, logger *slog.Logger) (*EventService, error) {
	if events == nil {
		return nil, errors.New("event store is required")
	}
	if validator == nil {
		validator = validation.New(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{events: events, validator: validator, logger: logger}, nil
}

// Schedule records a new event. An event with the same name and start date
// is a duplicate.
func (s *EventService) Schedule(ctx context.Context, actorID int64, event models.EventInfo) (int64, error) {
	if errs := s.validator.EventInfo(event); !errs.Empty() {
		return 0, errs
	}
	id, err := repository.InsertIfAbsent[models.EventInfo](ctx, s.events, actorID, event, "event")
	if err != nil {
		return id, err
	}
	s.logger.InfoContext(ctx, "event scheduled",
		"event_id", id,
		"event_name", event.EventName,
		"actor_id", actorID,
	)
	return id, nil
}

// Reschedule applies a conditional update and returns the rows changed.
func (s *EventService) Reschedule(ctx context.Context, actorID int64, event models.EventInfo) (int64, error) {
	if event.ID == nil {
		return 0, dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeBadRequest, "event id is required")
	}
	if errs := s.validator.EventInfo(event); !errs.Empty() {
		return 0, errs
	}
	n, err := s.events.UpdateExisting(ctx, actorID, event)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "update event")
	}
	return n, nil
}
