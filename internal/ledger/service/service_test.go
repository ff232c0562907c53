package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	historymodels "github.com/briclabs/evcoordinator-sub000/internal/history/models"
	historyservice "github.com/briclabs/evcoordinator-sub000/internal/history/service"
	historystore "github.com/briclabs/evcoordinator-sub000/internal/history/store"
	"github.com/briclabs/evcoordinator-sub000/internal/ledger/models"
	"github.com/briclabs/evcoordinator-sub000/internal/ledger/service"
	"github.com/briclabs/evcoordinator-sub000/internal/ledger/store"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
	"github.com/briclabs/evcoordinator-sub000/pkg/domain"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/testutil/sqlitedb"
)

// LedgerSuite wires the ledger stores to a real history recorder so every
// amendment can be checked against the history it leaves.
type LedgerSuite struct {
	suite.Suite
	ctx     context.Context
	history *historystore.Store
	service *service.Service
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) SetupTest() {
	s.ctx = context.Background()
	clock := func() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }
	exec := query.NewExecutor(sqlitedb.Open(s.T()), query.SQLite)

	s.history = historystore.New(exec)
	recorder := historyservice.NewRecorder(s.history, historyservice.WithClock(clock))
	svc, err := service.New(
		store.NewPayments(exec, repository.WithAuditor(recorder)),
		store.NewTransactions(exec, repository.WithAuditor(recorder)),
		service.WithClock(clock),
	)
	s.Require().NoError(err)
	s.service = svc
}

func (s *LedgerSuite) historyFor(table string) []historymodels.Record {
	page, err := historyservice.New(s.history).List(s.ctx, query.Search{
		Exact:      true,
		Criteria:   map[string]string{"tableSource": table},
		SortColumn: "id",
		Ascending:  true,
		Max:        50,
	})
	s.Require().NoError(err)
	return page.Items
}

func transaction(cents int64) models.Transaction {
	return models.Transaction{
		Amount:     domain.Money(cents),
		Memo:       "registration fee",
		Kind:       models.KindIncome,
		RecordedOn: domain.NewDate(2024, 6, 1),
	}
}

func (s *LedgerSuite) TestAmendTransactionRecordsBeforeAndAfter() {
	id, err := s.service.RecordTransaction(s.ctx, 7, transaction(5000))
	s.Require().NoError(err)

	amended := transaction(7500)
	amended.ID = &id
	n, err := s.service.AmendTransaction(s.ctx, 7, amended)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	records := s.historyFor(store.TransactionTable)
	s.Require().Len(records, 2)
	s.Equal(historymodels.ActionInserted, records[0].Action)
	s.Equal(`{}`, string(records[0].OldData))

	updated := records[1]
	s.Equal(historymodels.ActionUpdated, updated.Action)
	s.Equal(int64(7), updated.ActorID)
	s.Contains(string(updated.OldData), `"amount":50.00`)
	s.Contains(string(updated.NewData), `"amount":75.00`)
}

func (s *LedgerSuite) TestAmendWithSamePayloadLeavesNoHistory() {
	id, err := s.service.RecordTransaction(s.ctx, 7, transaction(5000))
	s.Require().NoError(err)

	same := transaction(5000)
	same.ID = &id
	n, err := s.service.AmendTransaction(s.ctx, 7, same)
	s.Require().NoError(err)
	s.Zero(n)
	s.Len(s.historyFor(store.TransactionTable), 1)
}

func (s *LedgerSuite) TestAmendMissingTransaction() {
	missing := int64(404)
	t := transaction(100)
	t.ID = &missing

	_, err := s.service.AmendTransaction(s.ctx, 1, t)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.AmendTransaction(s.ctx, 1, transaction(100))
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *LedgerSuite) TestRecordTransactionRejectsDuplicate() {
	_, err := s.service.RecordTransaction(s.ctx, 1, transaction(5000))
	s.Require().NoError(err)

	_, err = s.service.RecordTransaction(s.ctx, 1, transaction(5000))
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *LedgerSuite) TestRecordTransactionValidates() {
	t := transaction(0)
	t.Kind = "REFUND"
	t.RecordedOn = domain.NewDate(2024, 7, 1)

	_, err := s.service.RecordTransaction(s.ctx, 1, t)
	verrs, ok := dErrors.AsValidation(err)
	s.Require().True(ok)
	s.Equal(map[string][]string{
		"amount":     {"MUST_BE_POSITIVE"},
		"kind":       {"MUST_BE_ONE_OF"},
		"recordedOn": {"MUST_BE_BEFORE_NOW"},
	}, verrs.Fields)
}

func (s *LedgerSuite) TestPaymentLifecycle() {
	p := models.Payment{
		RegistrationID: 1,
		PayerID:        1,
		Amount:         domain.Money(2500),
		Instrument:     models.InstrumentCard,
		PaidOn:         domain.NewDate(2024, 6, 2),
	}
	id, err := s.service.RecordPayment(s.ctx, 3, p)
	s.Require().NoError(err)

	p.ID = &id
	p.Instrument = models.InstrumentCash
	n, err := s.service.AmendPayment(s.ctx, 3, p)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	records := s.historyFor(store.PaymentTable)
	s.Require().Len(records, 2)
	s.Contains(string(records[1].OldData), `"instrument":"CARD"`)
	s.Contains(string(records[1].NewData), `"instrument":"CASH"`)
}
