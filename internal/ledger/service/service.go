// Package service records and amends ledger entries: payments received and
// the bookkeeping transactions that follow them.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/briclabs/evcoordinator-sub000/internal/ledger/models"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
	"github.com/briclabs/evcoordinator-sub000/internal/validation"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/sentinel"
)

type PaymentStore interface {
	FetchByID(ctx context.Context, id int64) (models.Payment, bool, error)
	IsAlreadyRecorded(ctx context.Context, candidate models.Payment) (bool, error)
	InsertNew(ctx context.Context, actorID int64, candidate models.Payment) (int64, error)
	UpdateExisting(ctx context.Context, actorID int64, candidate models.Payment) (int64, error)
}

type TransactionStore interface {
	FetchByID(ctx context.Context, id int64) (models.Transaction, bool, error)
	IsAlreadyRecorded(ctx context.Context, candidate models.Transaction) (bool, error)
	InsertNew(ctx context.Context, actorID int64, candidate models.Transaction) (int64, error)
	UpdateExisting(ctx context.Context, actorID int64, candidate models.Transaction) (int64, error)
}

type Service struct {
	payments     PaymentStore
	transactions TransactionStore
	clock        validation.Clock
	logger       *slog.Logger
}

type Option func(*Service)

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(payments PaymentStore, transactions TransactionStore, opts ...Option) (*Service, error) {
	if payments == nil {
		return nil, errors.New("payment store is required")
	}
	if transactions == nil {
		return nil, errors.New("transaction store is required")
	}
	s := &Service{
		payments:     payments,
		transactions: transactions,
		clock:        time.Now,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) validatePayment(p models.Payment) error {
	errs := &dErrors.ValidationError{}
	validation.Reference(errs, "registrationId", p.RegistrationID)
	validation.Reference(errs, "payerId", p.PayerID)
	validation.PositiveMoney(errs, "amount", p.Amount)
	validation.OneOf(errs, "instrument", string(p.Instrument), models.Instruments...)
	validation.NotAfterNow(errs, "paidOn", p.PaidOn, s.clock.Today())
	return errs.Err()
}

func (s *Service) validateTransaction(t models.Transaction) error {
	errs := &dErrors.ValidationError{}
	validation.OptionalReference(errs, "paymentId", t.PaymentID)
	validation.PositiveMoney(errs, "amount", t.Amount)
	validation.NotBlank(errs, "memo", t.Memo)
	validation.OneOf(errs, "kind", string(t.Kind), models.Kinds...)
	validation.NotAfterNow(errs, "recordedOn", t.RecordedOn, s.clock.Today())
	return errs.Err()
}

// RecordPayment stores a new payment unless an identical one exists.
func (s *Service) RecordPayment(ctx context.Context, actorID int64, p models.Payment) (int64, error) {
	if err := s.validatePayment(p); err != nil {
		return 0, err
	}
	p.ID = nil
	id, err := repository.InsertIfAbsent[models.Payment](ctx, s.payments, actorID, p, "payment")
	if err != nil {
		return id, err
	}
	s.logger.InfoContext(ctx, "payment recorded", "payment_id", id, "actor_id", actorID)
	return id, nil
}

// AmendPayment rewrites an existing payment. It returns 0 when the stored
// payment already matches.
func (s *Service) AmendPayment(ctx context.Context, actorID int64, p models.Payment) (int64, error) {
	if p.ID == nil {
		return 0, dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeBadRequest, "payment id is required")
	}
	if err := s.validatePayment(p); err != nil {
		return 0, err
	}
	return amend[models.Payment](ctx, s.payments, actorID, p, *p.ID, "payment")
}

// RecordTransaction stores a new transaction unless an identical one exists.
func (s *Service) RecordTransaction(ctx context.Context, actorID int64, t models.Transaction) (int64, error) {
	if err := s.validateTransaction(t); err != nil {
		return 0, err
	}
	t.ID = nil
	id, err := repository.InsertIfAbsent[models.Transaction](ctx, s.transactions, actorID, t, "transaction")
	if err != nil {
		return id, err
	}
	s.logger.InfoContext(ctx, "transaction recorded", "transaction_id", id, "actor_id", actorID)
	return id, nil
}

// AmendTransaction rewrites an existing transaction. The store records the
// before/after pair in history when anything changed.
func (s *Service) AmendTransaction(ctx context.Context, actorID int64, t models.Transaction) (int64, error) {
	if t.ID == nil {
		return 0, dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeBadRequest, "transaction id is required")
	}
	if err := s.validateTransaction(t); err != nil {
		return 0, err
	}
	return amend[models.Transaction](ctx, s.transactions, actorID, t, *t.ID, "transaction")
}

type amender[T any] interface {
	FetchByID(ctx context.Context, id int64) (T, bool, error)
	UpdateExisting(ctx context.Context, actorID int64, candidate T) (int64, error)
}

func amend[T any](ctx context.Context, store amender[T], actorID int64, candidate T, id int64, noun string) (int64, error) {
	n, err := store.UpdateExisting(ctx, actorID, candidate)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeAuditWrite) {
			return n, err
		}
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "update "+noun)
	}
	if n > 0 {
		return n, nil
	}
	// Zero rows is either an unchanged payload or a missing row.
	_, found, err := store.FetchByID(ctx, id)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "fetch "+noun)
	}
	if !found {
		return 0, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, fmt.Sprintf("%s %d not found", noun, id))
	}
	return 0, nil
}
