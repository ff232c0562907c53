package repository_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/briclabs/evcoordinator-sub000/internal/history/models"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
	"github.com/briclabs/evcoordinator-sub000/pkg/domain"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/testutil/sqlitedb"
)

type member struct {
	ID       *int64       `json:"id"`
	NameLast string       `json:"nameLast"`
	Nick     *string      `json:"nick"`
	Dues     domain.Money `json:"dues"`
	Joined   domain.Date  `json:"joined"`
}

var memberColumns = query.NewColumnSet(
	query.Column{Field: "id", Name: "id", Kind: query.KindInt},
	query.Column{Field: "nameLast", Name: "name_last", Kind: query.KindText},
	query.Column{Field: "nick", Name: "nick", Kind: query.KindText},
	query.Column{Field: "dues", Name: "dues", Kind: query.KindMoney},
	query.Column{Field: "joined", Name: "joined", Kind: query.KindDate},
)

type memberDescriptor struct{}

func (memberDescriptor) Table() string             { return "member" }
func (memberDescriptor) Columns() *query.ColumnSet { return memberColumns }
func (memberDescriptor) ID(m member) *int64        { return m.ID }

func (memberDescriptor) WithID(m member, id int64) member {
	m.ID = &id
	return m
}
func (memberDescriptor) Values(m member) []any {
	return []any{m.NameLast, m.Nick, m.Dues, m.Joined}
}
func (memberDescriptor) Scan(row query.Scanner) (member, error) {
	var (
		m    member
		id   int64
		nick sql.NullString
	)
	if err := row.Scan(&id, &m.NameLast, &nick, &m.Dues, &m.Joined); err != nil {
		return member{}, err
	}
	m.ID = &id
	if nick.Valid {
		m.Nick = &nick.String
	}
	return m, nil
}

type auditCall struct {
	actorID  int64
	action   models.Action
	table    string
	newValue any
	oldValue any
}

type recordingAuditor struct {
	calls []auditCall
	err   error
}

func (a *recordingAuditor) Record(_ context.Context, actorID int64, action models.Action, table string, newEntity, oldEntity any) error {
	a.calls = append(a.calls, auditCall{actorID, action, table, newEntity, oldEntity})
	return a.err
}

type RepositorySuite struct {
	suite.Suite
	ctx     context.Context
	exec    *query.Executor
	auditor *recordingAuditor
	repo    *repository.Repository[member]
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	db := sqlitedb.OpenEmpty(s.T())
	_, err := db.Exec(`CREATE TABLE "member" (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"name_last" TEXT NOT NULL,
		"nick" TEXT,
		"dues" NUMERIC NOT NULL,
		"joined" TEXT NOT NULL
	)`)
	s.Require().NoError(err)
	s.exec = query.NewExecutor(db, query.SQLite)
	s.auditor = &recordingAuditor{}
	s.repo = repository.New[member](s.exec, memberDescriptor{}, repository.WithAuditor(s.auditor))
}

func (s *RepositorySuite) newMember(last string, cents int64) member {
	return member{
		NameLast: last,
		Dues:     domain.Money(cents),
		Joined:   domain.NewDate(2024, 3, 1),
	}
}

func (s *RepositorySuite) insert(m member) int64 {
	id, err := s.repo.InsertNew(s.ctx, 1, m)
	s.Require().NoError(err)
	return id
}

func (s *RepositorySuite) TestInsertAndFetch() {
	nick := "Ace"
	m := s.newMember("Lee", 5000)
	m.Nick = &nick

	id := s.insert(m)
	s.Positive(id)

	got, found, err := s.repo.FetchByID(s.ctx, id)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal(id, *got.ID)
	s.Equal("Lee", got.NameLast)
	s.Require().NotNil(got.Nick)
	s.Equal("Ace", *got.Nick)
	s.Equal(int64(5000), got.Dues.Cents())
	s.Equal("2024-03-01", got.Joined.String())
}

func (s *RepositorySuite) TestFetchByIDMissing() {
	_, found, err := s.repo.FetchByID(s.ctx, 404)
	s.Require().NoError(err)
	s.False(found)
}

func (s *RepositorySuite) TestIsAlreadyRecorded() {
	m := s.newMember("Lee", 5000)
	s.Run("absent before insert", func() {
		dup, err := s.repo.IsAlreadyRecorded(s.ctx, m)
		s.Require().NoError(err)
		s.False(dup)
	})

	s.insert(m)

	s.Run("identical candidate is a duplicate", func() {
		dup, err := s.repo.IsAlreadyRecorded(s.ctx, m)
		s.Require().NoError(err)
		s.True(dup)
	})
	s.Run("identifier does not participate", func() {
		other := int64(99)
		withID := m
		withID.ID = &other
		dup, err := s.repo.IsAlreadyRecorded(s.ctx, withID)
		s.Require().NoError(err)
		s.True(dup)
	})
	s.Run("one differing field is not a duplicate", func() {
		dup, err := s.repo.IsAlreadyRecorded(s.ctx, s.newMember("Lee", 5001))
		s.Require().NoError(err)
		s.False(dup)
	})
}

func (s *RepositorySuite) TestDuplicateCriteriaSeparatesNulls() {
	criteria, nulls, err := s.repo.DuplicateCriteria(s.newMember("Lee", 7500))
	s.Require().NoError(err)
	s.Equal(map[string]string{
		"nameLast": "Lee",
		"dues":     "75.00",
		"joined":   "2024-03-01",
	}, criteria)
	s.Equal([]string{"nick"}, nulls)
}

func (s *RepositorySuite) TestNullFieldOnlyMatchesNull() {
	nick := "Annie"
	stored := s.newMember("Lee", 5000)
	stored.Nick = &nick
	s.insert(stored)

	s.Run("missing value does not match a stored value", func() {
		dup, err := s.repo.IsAlreadyRecorded(s.ctx, s.newMember("Lee", 5000))
		s.Require().NoError(err)
		s.False(dup)
	})

	s.insert(s.newMember("Lee", 5000))

	s.Run("missing value matches a stored missing value", func() {
		dup, err := s.repo.IsAlreadyRecorded(s.ctx, s.newMember("Lee", 5000))
		s.Require().NoError(err)
		s.True(dup)
	})
	s.Run("present value still matches by equality", func() {
		dup, err := s.repo.IsAlreadyRecorded(s.ctx, stored)
		s.Require().NoError(err)
		s.True(dup)
	})
}

func (s *RepositorySuite) TestUpdateExisting() {
	id := s.insert(s.newMember("Lee", 5000))
	s.auditor.calls = nil

	changed := s.newMember("Lee", 7500)
	changed.ID = &id

	s.Run("changed row is written", func() {
		n, err := s.repo.UpdateExisting(s.ctx, 7, changed)
		s.Require().NoError(err)
		s.Equal(int64(1), n)

		got, _, err := s.repo.FetchByID(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(int64(7500), got.Dues.Cents())
	})

	s.Run("unchanged resubmission affects nothing", func() {
		n, err := s.repo.UpdateExisting(s.ctx, 7, changed)
		s.Require().NoError(err)
		s.Zero(n)
	})

	s.Run("one history record for the effective update", func() {
		s.Require().Len(s.auditor.calls, 1)
		call := s.auditor.calls[0]
		s.Equal(models.ActionUpdated, call.action)
		s.Equal(int64(7), call.actorID)
		s.Equal("member", call.table)
		s.Equal(int64(5000), call.oldValue.(member).Dues.Cents())
		s.Equal(int64(7500), call.newValue.(member).Dues.Cents())
	})
}

func (s *RepositorySuite) TestUpdateExistingRequiresID() {
	_, err := s.repo.UpdateExisting(s.ctx, 1, s.newMember("Lee", 1))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func (s *RepositorySuite) TestUpdateExistingMissingRow() {
	missing := int64(404)
	m := s.newMember("Lee", 1)
	m.ID = &missing
	n, err := s.repo.UpdateExisting(s.ctx, 1, m)
	s.Require().NoError(err)
	s.Zero(n)
	s.Empty(s.auditor.calls)
}

func (s *RepositorySuite) TestDeleteByID() {
	id := s.insert(s.newMember("Lee", 5000))

	n, err := s.repo.DeleteByID(s.ctx, 3, id)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	_, found, err := s.repo.FetchByID(s.ctx, id)
	s.Require().NoError(err)
	s.False(found)

	n, err = s.repo.DeleteByID(s.ctx, 3, id)
	s.Require().NoError(err)
	s.Zero(n)

	s.Require().Len(s.auditor.calls, 2)
	s.Equal(models.ActionInserted, s.auditor.calls[0].action)
	s.Nil(s.auditor.calls[0].oldValue)
	s.Equal(models.ActionDeleted, s.auditor.calls[1].action)
	s.Nil(s.auditor.calls[1].newValue)
}

func (s *RepositorySuite) TestFetchByCriteria() {
	s.insert(s.newMember("Lee", 1000))
	s.insert(s.newMember("Kim", 2000))
	s.insert(s.newMember("Leeds", 3000))

	s.Run("fuzzy contains across rows", func() {
		page, err := s.repo.FetchByCriteria(s.ctx, query.Search{
			Criteria:   map[string]string{"nameLast": "lee"},
			SortColumn: "id",
			Ascending:  true,
			Max:        10,
		})
		s.Require().NoError(err)
		s.Equal(2, page.TotalCount)
		s.Require().Len(page.Items, 2)
		s.Equal("Lee", page.Items[0].NameLast)
		s.Equal("Leeds", page.Items[1].NameLast)
	})

	s.Run("exact equality", func() {
		page, err := s.repo.FetchByCriteria(s.ctx, query.Search{
			Exact:    true,
			Criteria: map[string]string{"nameLast": "Lee"},
			Max:      10,
		})
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount)
	})

	s.Run("unknown sort column falls back to identifier", func() {
		page, err := s.repo.FetchByCriteria(s.ctx, query.Search{
			SortColumn: "nope",
			Ascending:  false,
			Max:        10,
		})
		s.Require().NoError(err)
		s.Require().Len(page.Items, 3)
		s.Equal("Leeds", page.Items[0].NameLast)
	})

	s.Run("unparsable exact value", func() {
		_, err := s.repo.FetchByCriteria(s.ctx, query.Search{
			Exact:    true,
			Criteria: map[string]string{"dues": "lots"},
			Max:      10,
		})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidCriteria))
	})
}

func (s *RepositorySuite) TestAuditFailurePolicy() {
	s.auditor.err = errors.New("history unavailable")

	s.Run("best effort keeps the mutation and reports success", func() {
		id, err := s.repo.InsertNew(s.ctx, 1, s.newMember("Lee", 100))
		s.Require().NoError(err)
		_, found, err := s.repo.FetchByID(s.ctx, id)
		s.Require().NoError(err)
		s.True(found)
	})

	s.Run("strict audit surfaces the failure after commit", func() {
		strict := repository.New[member](s.exec, memberDescriptor{},
			repository.WithAuditor(s.auditor), repository.WithStrictAudit(true))
		id, err := strict.InsertNew(s.ctx, 1, s.newMember("Kim", 100))
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeAuditWrite))
		_, found, ferr := strict.FetchByID(s.ctx, id)
		s.Require().NoError(ferr)
		s.True(found)
	})
}

func (s *RepositorySuite) TestInsertIfAbsent() {
	m := s.newMember("Lee", 100)
	_, err := repository.InsertIfAbsent[member](s.ctx, s.repo, 1, m, "member")
	s.Require().NoError(err)

	_, err = repository.InsertIfAbsent[member](s.ctx, s.repo, 1, m, "member")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}
