package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/briclabs/evcoordinator-sub000/internal/query"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/models"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/service"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/store"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/validation"
	"github.com/briclabs/evcoordinator-sub000/pkg/domain"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/platform/tx"
	"github.com/briclabs/evcoordinator-sub000/pkg/testutil/sqlitedb"
)

// PipelineSuite runs the packet pipeline against real tables so the rows
// left behind by a failed run can be counted.
type PipelineSuite struct {
	suite.Suite
	ctx           context.Context
	db            *sql.DB
	participants  *store.Participants
	associations  *store.Associations
	registrations *store.Registrations
	links         *store.Links
}

func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}

func (s *PipelineSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = sqlitedb.Open(s.T())
	exec := query.NewExecutor(s.db, query.SQLite)
	s.participants = store.NewParticipants(exec)
	s.associations = store.NewAssociations(exec)
	s.registrations = store.NewRegistrations(exec)
	s.links = store.NewLinks(exec)
}

func (s *PipelineSuite) newService(opts ...service.Option) *service.PacketService {
	clock := func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) }
	opts = append(opts, service.WithValidator(validation.New(clock)))
	svc, err := service.New(s.participants, s.associations, s.registrations, s.links, opts...)
	s.Require().NoError(err)
	return svc
}

func (s *PipelineSuite) count(table string) int {
	var n int
	s.Require().NoError(s.db.QueryRow(`SELECT COUNT(*) FROM "` + table + `"`).Scan(&n))
	return n
}

func (s *PipelineSuite) packet(guests ...models.Association) *models.Packet {
	if guests == nil {
		guests = []models.Association{}
	}
	return &models.Packet{
		Participant: &models.Participant{
			NameFirst: "Ann",
			NameLast:  "Lee",
			DOB:       domain.NewDate(1990, 1, 1),
			Email:     "ann@example.org",
		},
		Associations: guests,
		Registration: &models.Registration{
			EventInfoID:    1,
			DonationPledge: domain.Money(2500),
			Signature:      "Ann Lee",
			RegisteredOn:   domain.NewDate(2024, 6, 1),
		},
	}
}

func guest(name string) models.Association {
	return models.Association{RawAssociateName: name, Association: "FRIEND"}
}

func (s *PipelineSuite) TestCreateLinksEveryGuest() {
	id, err := s.newService().Create(s.ctx, 1, s.packet(guest("Bob Lee"), guest("Cat Lee")))
	s.Require().NoError(err)

	reg, found, err := s.registrations.FetchByID(s.ctx, id)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(int64(2500), reg.DonationPledge.Cents())

	links, err := s.links.FetchByCriteria(s.ctx, query.Search{
		Exact:     true,
		Criteria:  map[string]string{"registrationId": "1"},
		Ascending: true,
		Max:       10,
	})
	s.Require().NoError(err)
	s.Equal(2, links.TotalCount)
	s.Equal(2, s.count(store.AssociationTable))
}

func (s *PipelineSuite) TestInvalidGuestWritesNothing() {
	_, err := s.newService().Create(s.ctx, 1, s.packet(guest("Bob Lee"), guest("")))
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	for _, table := range []string{store.ParticipantTable, store.RegistrationTable, store.AssociationTable, store.RegistrationAssociationTable} {
		s.Zero(s.count(table), table)
	}
}

// Guest #2 repeats guest #1, so its duplicate probe fails the run after the
// participant, the registration, and guest #1 were committed.
func (s *PipelineSuite) TestFailedGuestLeavesEarlierRows() {
	_, err := s.newService().Create(s.ctx, 1, s.packet(guest("Bob Lee"), guest("Bob Lee"), guest("Cat Lee")))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	s.Equal(1, s.count(store.ParticipantTable))
	s.Equal(1, s.count(store.RegistrationTable))
	s.Equal(1, s.count(store.AssociationTable))
	s.Equal(1, s.count(store.RegistrationAssociationTable))
}

func (s *PipelineSuite) TestAtomicPacketRollsBackEverything() {
	svc := s.newService(service.WithTxRunner(tx.NewRunner(s.db, 0)))

	_, err := svc.Create(s.ctx, 1, s.packet(guest("Bob Lee"), guest("Bob Lee")))
	s.Require().Error(err)

	for _, table := range []string{store.ParticipantTable, store.RegistrationTable, store.AssociationTable, store.RegistrationAssociationTable} {
		s.Zero(s.count(table), table)
	}
}

func (s *PipelineSuite) TestResubmittedPacketIsRejected() {
	svc := s.newService()
	_, err := svc.Create(s.ctx, 1, s.packet())
	s.Require().NoError(err)

	_, err = svc.Create(s.ctx, 1, s.packet())
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	s.Equal(1, s.count(store.ParticipantTable))
}

func (s *PipelineSuite) TestUpdateIsIdempotent() {
	svc := s.newService()
	regID, err := svc.Create(s.ctx, 1, s.packet(guest("Bob Lee")))
	s.Require().NoError(err)

	reg, _, err := s.registrations.FetchByID(s.ctx, regID)
	s.Require().NoError(err)
	participant, _, err := s.participants.FetchByID(s.ctx, reg.ParticipantID)
	s.Require().NoError(err)
	page, err := s.associations.FetchByCriteria(s.ctx, query.Search{Ascending: true, Max: 10})
	s.Require().NoError(err)

	reg.Signature = "A. Lee"
	packet := &models.Packet{Participant: &participant, Associations: page.Items, Registration: &reg}

	n, err := svc.Update(s.ctx, 1, packet)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	n, err = svc.Update(s.ctx, 1, packet)
	s.Require().NoError(err)
	s.Zero(n)
}

func (s *PipelineSuite) TestScheduleAndRescheduleEvent() {
	exec := query.NewExecutor(s.db, query.SQLite)
	events := store.NewEvents(exec)
	clock := func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) }
	svc, err := service.NewEventService(events, validation.New(clock), nil)
	s.Require().NoError(err)

	event := models.EventInfo{
		EventName:   "summer-meet",
		EventTitle:  "Summer Meet",
		DateStart:   domain.NewDate(2024, 8, 1),
		DateEnd:     domain.NewDate(2024, 8, 3),
		EventStatus: models.EventProposed,
	}
	id, err := svc.Schedule(s.ctx, 1, event)
	s.Require().NoError(err)

	_, err = svc.Schedule(s.ctx, 1, event)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))

	event.ID = &id
	event.EventStatus = models.EventActive
	n, err := svc.Reschedule(s.ctx, 1, event)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	event.EventStatus = models.EventCompleted
	_, err = svc.Reschedule(s.ctx, 1, event)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}
