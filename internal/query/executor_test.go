package query_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/briclabs/evcoordinator-sub000/internal/query"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	txcontext "github.com/briclabs/evcoordinator-sub000/pkg/platform/tx"
	"github.com/briclabs/evcoordinator-sub000/pkg/testutil/sqlitedb"
)

type person struct {
	ID       int64
	NameLast string
	Age      int64
}

func scanPerson(row query.Scanner) (person, error) {
	var p person
	err := row.Scan(&p.ID, &p.NameLast, &p.Age)
	return p, err
}

// ExecutorSuite runs the page/count pair against a real SQLite table.
type ExecutorSuite struct {
	suite.Suite
	db   *sql.DB
	exec *query.Executor
	ctx  context.Context
}

func TestExecutorSuite(t *testing.T) {
	suite.Run(t, new(ExecutorSuite))
}

func (s *ExecutorSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = sqlitedb.OpenEmpty(s.T())
	_, err := s.db.Exec(`CREATE TABLE "person" ("id" INTEGER PRIMARY KEY, "name_last" TEXT NOT NULL, "age" INTEGER NOT NULL)`)
	s.Require().NoError(err)
	s.exec = query.NewExecutor(s.db, query.SQLite, query.WithMaxPageSize(5))
}

func (s *ExecutorSuite) seed(rows ...person) {
	for _, p := range rows {
		_, err := s.db.Exec(`INSERT INTO "person" ("id", "name_last", "age") VALUES (?, ?, ?)`, p.ID, p.NameLast, p.Age)
		s.Require().NoError(err)
	}
}

func (s *ExecutorSuite) selectWhere(cond query.Condition, offset, max int) query.Select {
	return query.Select{
		Table:     "person",
		Columns:   []query.Column{personID, personLast, personAge},
		Where:     cond,
		Sort:      personID,
		Ascending: true,
		Offset:    offset,
		Max:       max,
	}
}

// TestCountMatchesFilterRegardlessOfWindow verifies the total ignores paging.
func (s *ExecutorSuite) TestCountMatchesFilterRegardlessOfWindow() {
	for i := int64(1); i <= 12; i++ {
		last := "Smith"
		if i%3 == 0 {
			last = "Lee"
		}
		s.seed(person{ID: i, NameLast: last, Age: 20 + i})
	}
	cond, err := query.Compile(query.SQLite, true, map[string]string{"nameLast": "Smith"}, personCols)
	s.Require().NoError(err)

	for offset := 0; offset < 8; offset++ {
		page, err := query.Execute(s.ctx, s.exec, s.selectWhere(cond, offset, 3), scanPerson)
		s.Require().NoError(err)
		s.Equal(8, page.TotalCount, "offset %d", offset)
		s.LessOrEqual(len(page.Items), 3)
		for _, p := range page.Items {
			s.Equal("Smith", p.NameLast)
		}
	}
}

func (s *ExecutorSuite) TestOrderingAndWindow() {
	s.seed(person{ID: 3, NameLast: "C", Age: 1}, person{ID: 1, NameLast: "A", Age: 3}, person{ID: 2, NameLast: "B", Age: 2})

	s.Run("ascending by identifier", func() {
		page, err := query.Execute(s.ctx, s.exec, s.selectWhere(query.Condition{}, 0, 10), scanPerson)
		s.Require().NoError(err)
		s.Equal(3, page.TotalCount)
		s.Require().Len(page.Items, 3)
		s.Equal([]int64{1, 2, 3}, []int64{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})
	})

	s.Run("descending by another column", func() {
		sel := s.selectWhere(query.Condition{}, 1, 10)
		sel.Sort = personAge
		sel.Ascending = false
		page, err := query.Execute(s.ctx, s.exec, sel, scanPerson)
		s.Require().NoError(err)
		s.Require().Len(page.Items, 2)
		s.Equal(int64(2), page.Items[0].ID)
		s.Equal(int64(3), page.Items[1].ID)
	})

	s.Run("offset past the end keeps the total", func() {
		page, err := query.Execute(s.ctx, s.exec, s.selectWhere(query.Condition{}, 10, 10), scanPerson)
		s.Require().NoError(err)
		s.Empty(page.Items)
		s.NotNil(page.Items)
		s.Equal(3, page.TotalCount)
	})
}

func (s *ExecutorSuite) TestPageSizePolicy() {
	for i := int64(1); i <= 9; i++ {
		s.seed(person{ID: i, NameLast: fmt.Sprintf("N%d", i), Age: i})
	}

	s.Run("max above the ceiling is capped", func() {
		page, err := query.Execute(s.ctx, s.exec, s.selectWhere(query.Condition{}, 0, 50), scanPerson)
		s.Require().NoError(err)
		s.Len(page.Items, 5)
		s.Equal(9, page.TotalCount)
	})

	s.Run("max of zero is rejected", func() {
		_, err := query.Execute(s.ctx, s.exec, s.selectWhere(query.Condition{}, 0, 0), scanPerson)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidPageSize))
	})

	s.Run("negative offset is rejected", func() {
		_, err := query.Execute(s.ctx, s.exec, s.selectWhere(query.Condition{}, -1, 5), scanPerson)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidPageSize))
	})
}

// TestExactVersusFuzzy checks that exact mode intersects and fuzzy mode unions.
func (s *ExecutorSuite) TestExactVersusFuzzy() {
	s.seed(
		person{ID: 1, NameLast: "Lee", Age: 40},
		person{ID: 2, NameLast: "Lee", Age: 30},
		person{ID: 3, NameLast: "Park", Age: 40},
		person{ID: 4, NameLast: "Kim", Age: 50},
	)
	criteria := map[string]string{"nameLast": "Lee", "age": "40"}

	exact, err := query.Compile(query.SQLite, true, criteria, personCols)
	s.Require().NoError(err)
	page, err := query.Execute(s.ctx, s.exec, s.selectWhere(exact, 0, 5), scanPerson)
	s.Require().NoError(err)
	s.Equal(1, page.TotalCount)
	s.Equal(int64(1), page.Items[0].ID)

	fuzzy, err := query.Compile(query.SQLite, false, criteria, personCols)
	s.Require().NoError(err)
	page, err = query.Execute(s.ctx, s.exec, s.selectWhere(fuzzy, 0, 5), scanPerson)
	s.Require().NoError(err)
	s.Equal(3, page.TotalCount)
	ids := []int64{}
	for _, p := range page.Items {
		ids = append(ids, p.ID)
	}
	s.Equal([]int64{1, 2, 3}, ids)
}

func (s *ExecutorSuite) TestFuzzyIsCaseInsensitive() {
	s.seed(person{ID: 1, NameLast: "McLEEson", Age: 1}, person{ID: 2, NameLast: "Ng", Age: 2})
	cond, err := query.Compile(query.SQLite, false, map[string]string{"nameLast": "lee"}, personCols)
	s.Require().NoError(err)
	page, err := query.Execute(s.ctx, s.exec, s.selectWhere(cond, 0, 5), scanPerson)
	s.Require().NoError(err)
	s.Equal(1, page.TotalCount)
}

func (s *ExecutorSuite) TestFuzzyFindsNonASCIIText() {
	s.seed(person{ID: 1, NameLast: "ÉLODIE", Age: 1}, person{ID: 2, NameLast: "Ng", Age: 2})

	for _, term := range []string{"ÉLODIE", "Élodie", "lod"} {
		cond, err := query.Compile(query.SQLite, false, map[string]string{"nameLast": term}, personCols)
		s.Require().NoError(err)
		page, err := query.Execute(s.ctx, s.exec, s.selectWhere(cond, 0, 5), scanPerson)
		s.Require().NoError(err)
		s.Equal(1, page.TotalCount, term)
	}
}

func (s *ExecutorSuite) TestExists() {
	s.seed(person{ID: 1, NameLast: "Lee", Age: 40})

	cond, err := query.Compile(query.SQLite, true, map[string]string{"nameLast": "Lee"}, personCols)
	s.Require().NoError(err)
	found, err := s.exec.Exists(s.ctx, "person", cond)
	s.Require().NoError(err)
	s.True(found)

	cond, err = query.Compile(query.SQLite, true, map[string]string{"nameLast": "Nobody"}, personCols)
	s.Require().NoError(err)
	found, err = s.exec.Exists(s.ctx, "person", cond)
	s.Require().NoError(err)
	s.False(found)
}

// TestInsideTransaction verifies the sequential path sees uncommitted rows.
func (s *ExecutorSuite) TestInsideTransaction() {
	tx, err := s.db.BeginTx(s.ctx, nil)
	s.Require().NoError(err)
	defer func() { _ = tx.Rollback() }()
	_, err = tx.Exec(`INSERT INTO "person" ("id", "name_last", "age") VALUES (1, 'Lee', 1)`)
	s.Require().NoError(err)

	ctx := txcontext.WithTx(s.ctx, tx)
	page, err := query.Execute(ctx, s.exec, s.selectWhere(query.Condition{}, 0, 5), scanPerson)
	s.Require().NoError(err)
	s.Equal(1, page.TotalCount)
	s.Len(page.Items, 1)
}
