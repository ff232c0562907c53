// Package service writes registration packets: a participant, their guests,
// and the registration, as one logical operation over several stores.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/briclabs/evcoordinator-sub000/internal/platform/metrics"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/models"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/validation"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
)

var tracer = otel.Tracer("github.com/briclabs/evcoordinator-sub000/internal/registration/service")

type ParticipantStore interface {
	IsAlreadyRecorded(ctx context.Context, candidate models.Participant) (bool, error)
	InsertNew(ctx context.Context, actorID int64, candidate models.Participant) (int64, error)
	UpdateExisting(ctx context.Context, actorID int64, candidate models.Participant) (int64, error)
}

type AssociationStore interface {
	IsAlreadyRecorded(ctx context.Context, candidate models.Association) (bool, error)
	InsertNew(ctx context.Context, actorID int64, candidate models.Association) (int64, error)
	UpdateExisting(ctx context.Context, actorID int64, candidate models.Association) (int64, error)
}

type RegistrationStore interface {
	IsAlreadyRecorded(ctx context.Context, candidate models.Registration) (bool, error)
	InsertNew(ctx context.Context, actorID int64, candidate models.Registration) (int64, error)
	UpdateExisting(ctx context.Context, actorID int64, candidate models.Registration) (int64, error)
}

type LinkStore interface {
	IsAlreadyRecorded(ctx context.Context, candidate models.RegistrationAssociation) (bool, error)
	InsertNew(ctx context.Context, actorID int64, candidate models.RegistrationAssociation) (int64, error)
}

// TxRunner scopes a function to one database transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// PacketService runs the registration packet pipeline.
//
// Without a TxRunner each step commits on its own, so a failure partway
// leaves the earlier rows in place and the caller only learns that the
// packet failed. WithTxRunner makes the whole packet all-or-nothing.
type PacketService struct {
	participants  ParticipantStore
	associations  AssociationStore
	registrations RegistrationStore
	links         LinkStore
	validator     *validation.Validator
	tx            TxRunner
	logger        *slog.Logger
	metrics       *metrics.Metrics
}

type Option func(*PacketService)

func WithTxRunner(tx TxRunner) Option {
	return func(s *PacketService) {
		s.tx = tx
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *PacketService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *PacketService) {
		s.metrics = m
	}
}

func WithValidator(v *validation.Validator) Option {
	return func(s *PacketService) {
		if v != nil {
			s.validator = v
		}
	}
}

func New(participants ParticipantStore, associations AssociationStore, registrations RegistrationStore, links LinkStore, opts ...Option) (*PacketService, error) {
	if participants == nil {
		return nil, errors.New("participant store is required")
	}
	if associations == nil {
		return nil, errors.New("association store is required")
	}
	if registrations == nil {
		return nil, errors.New("registration store is required")
	}
	if links == nil {
		return nil, errors.New("link store is required")
	}
	s := &PacketService{
		participants:  participants,
		associations:  associations,
		registrations: registrations,
		links:         links,
		validator:     validation.New(nil),
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Create writes a new packet and returns the registration id. Steps run in
// order (participant, registration, then each guest and its link) and the
// first failure stops the run.
func (s *PacketService) Create(ctx context.Context, actorID int64, packet *models.Packet) (int64, error) {
	ctx, span := tracer.Start(ctx, "registration.CreatePacket")
	defer span.End()

	if !packet.Complete() {
		s.metrics.IncPacket("create", "incomplete")
		return 0, dErrors.New(dErrors.CodeIncompletePacket, "participant, associations, and registration are required")
	}
	span.SetAttributes(attribute.Int("packet.associations", len(packet.Associations)))
	if errs := s.validator.Packet(packet); !errs.Empty() {
		s.metrics.IncPacket("create", "invalid")
		return 0, errs
	}

	var registrationID int64
	err := s.run(ctx, func(ctx context.Context) error {
		id, err := s.create(ctx, actorID, packet)
		registrationID = id
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "packet create failed")
		s.metrics.IncPacket("create", outcome(err))
		return 0, err
	}
	s.metrics.IncPacket("create", "ok")
	s.logger.InfoContext(ctx, "registration packet created",
		"registration_id", registrationID,
		"actor_id", actorID,
		"associations", len(packet.Associations),
	)
	return registrationID, nil
}

func (s *PacketService) create(ctx context.Context, actorID int64, packet *models.Packet) (int64, error) {
	participantID, err := repository.InsertIfAbsent[models.Participant](ctx, s.participants, actorID, *packet.Participant, "participant")
	if err != nil {
		return 0, s.abort(ctx, "participant", actorID, err)
	}

	registration := *packet.Registration
	registration.ID = nil
	registration.ParticipantID = participantID
	registrationID, err := repository.InsertIfAbsent[models.Registration](ctx, s.registrations, actorID, registration, "registration")
	if err != nil {
		return 0, s.abort(ctx, "registration", actorID, err)
	}

	for i, association := range packet.Associations {
		step := fmt.Sprintf("associations[%d]", i)
		association.ID = nil
		association.SelfID = participantID
		associationID, err := repository.InsertIfAbsent[models.Association](ctx, s.associations, actorID, association, "association")
		if err != nil {
			return 0, s.abort(ctx, step, actorID, err)
		}
		link := models.RegistrationAssociation{RegistrationID: registrationID, AssociationID: associationID}
		if _, err := repository.InsertIfAbsent[models.RegistrationAssociation](ctx, s.links, actorID, link, "registration association"); err != nil {
			return 0, s.abort(ctx, step+".link", actorID, err)
		}
	}
	return registrationID, nil
}

// Update applies each part's conditional update and returns the total rows
// changed. A packet whose parts are not all identified changes nothing.
func (s *PacketService) Update(ctx context.Context, actorID int64, packet *models.Packet) (int64, error) {
	ctx, span := tracer.Start(ctx, "registration.UpdatePacket")
	defer span.End()

	if !packet.Complete() {
		s.metrics.IncPacket("update", "incomplete")
		return 0, dErrors.New(dErrors.CodeIncompletePacket, "participant, associations, and registration are required")
	}
	if !packet.Identified() {
		s.metrics.IncPacket("update", "unidentified")
		return 0, nil
	}
	if errs := s.validator.Packet(packet); !errs.Empty() {
		s.metrics.IncPacket("update", "invalid")
		return 0, errs
	}

	var total int64
	err := s.run(ctx, func(ctx context.Context) error {
		n, err := s.update(ctx, actorID, packet)
		total = n
		return err
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "packet update failed")
		s.metrics.IncPacket("update", outcome(err))
		return 0, err
	}
	span.SetAttributes(attribute.Int64("packet.rows_updated", total))
	s.metrics.IncPacket("update", "ok")
	return total, nil
}

func (s *PacketService) update(ctx context.Context, actorID int64, packet *models.Packet) (int64, error) {
	participantID := *packet.Participant.ID

	total, err := s.participants.UpdateExisting(ctx, actorID, *packet.Participant)
	if err != nil {
		return 0, s.abort(ctx, "participant", actorID, dErrors.Wrap(err, dErrors.CodeInternal, "update participant"))
	}

	registration := *packet.Registration
	registration.ParticipantID = participantID
	n, err := s.registrations.UpdateExisting(ctx, actorID, registration)
	if err != nil {
		return 0, s.abort(ctx, "registration", actorID, dErrors.Wrap(err, dErrors.CodeInternal, "update registration"))
	}
	total += n

	for i, association := range packet.Associations {
		association.SelfID = participantID
		n, err := s.associations.UpdateExisting(ctx, actorID, association)
		if err != nil {
			return 0, s.abort(ctx, fmt.Sprintf("associations[%d]", i), actorID, dErrors.Wrap(err, dErrors.CodeInternal, "update association"))
		}
		total += n
	}
	return total, nil
}

func (s *PacketService) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.RunInTx(ctx, fn)
}

func (s *PacketService) abort(ctx context.Context, step string, actorID int64, err error) error {
	s.logger.WarnContext(ctx, "registration packet aborted",
		"step", step,
		"actor_id", actorID,
		"error", err,
	)
	return err
}

func outcome(err error) string {
	if dErrors.HasCode(err, dErrors.CodeConflict) {
		return "duplicate"
	}
	return "error"
}
