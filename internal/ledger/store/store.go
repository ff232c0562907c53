// Package store binds payments and transactions to their tables.
package store

import (
	"database/sql"

	"github.com/briclabs/evcoordinator-sub000/internal/ledger/models"
	"github.com/briclabs/evcoordinator-sub000/internal/query"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
)

const (
	PaymentTable     = "payment"
	TransactionTable = "transaction"
)

var idColumn = query.Column{Field: "id", Name: "id", Kind: query.KindInt}

var PaymentColumns = query.NewColumnSet(idColumn,
	query.Column{Field: "registrationId", Name: "registration_id", Kind: query.KindInt},
	query.Column{Field: "payerId", Name: "payer_id", Kind: query.KindInt},
	query.Column{Field: "amount", Name: "amount", Kind: query.KindMoney},
	query.Column{Field: "instrument", Name: "instrument", Kind: query.KindText},
	query.Column{Field: "paidOn", Name: "paid_on", Kind: query.KindDate},
)

type paymentDescriptor struct{}

func (paymentDescriptor) Table() string              { return PaymentTable }
func (paymentDescriptor) Columns() *query.ColumnSet  { return PaymentColumns }
func (paymentDescriptor) ID(p models.Payment) *int64 { return p.ID }

func (paymentDescriptor) WithID(p models.Payment, id int64) models.Payment {
	p.ID = &id
	return p
}

func (paymentDescriptor) Values(p models.Payment) []any {
	return []any{p.RegistrationID, p.PayerID, p.Amount, string(p.Instrument), p.PaidOn}
}

func (paymentDescriptor) Scan(row query.Scanner) (models.Payment, error) {
	var (
		p          models.Payment
		id         int64
		instrument string
	)
	if err := row.Scan(&id, &p.RegistrationID, &p.PayerID, &p.Amount, &instrument, &p.PaidOn); err != nil {
		return models.Payment{}, err
	}
	p.ID = &id
	p.Instrument = models.Instrument(instrument)
	return p, nil
}

var TransactionColumns = query.NewColumnSet(idColumn,
	query.Column{Field: "paymentId", Name: "payment_id", Kind: query.KindInt},
	query.Column{Field: "amount", Name: "amount", Kind: query.KindMoney},
	query.Column{Field: "memo", Name: "memo", Kind: query.KindText},
	query.Column{Field: "kind", Name: "kind", Kind: query.KindText},
	query.Column{Field: "recordedOn", Name: "recorded_on", Kind: query.KindDate},
)

type transactionDescriptor struct{}

func (transactionDescriptor) Table() string                  { return TransactionTable }
func (transactionDescriptor) Columns() *query.ColumnSet      { return TransactionColumns }
func (transactionDescriptor) ID(t models.Transaction) *int64 { return t.ID }

func (transactionDescriptor) WithID(t models.Transaction, id int64) models.Transaction {
	t.ID = &id
	return t
}

func (transactionDescriptor) Values(t models.Transaction) []any {
	return []any{t.PaymentID, t.Amount, t.Memo, string(t.Kind), t.RecordedOn}
}

func (transactionDescriptor) Scan(row query.Scanner) (models.Transaction, error) {
	var (
		t       models.Transaction
		id      int64
		payment sql.NullInt64
		kind    string
	)
	if err := row.Scan(&id, &payment, &t.Amount, &t.Memo, &kind, &t.RecordedOn); err != nil {
		return models.Transaction{}, err
	}
	t.ID = &id
	t.PaymentID = repository.Int64Ptr(payment)
	t.Kind = models.Kind(kind)
	return t, nil
}

type (
	Payments     = repository.Repository[models.Payment]
	Transactions = repository.Repository[models.Transaction]
)

func NewPayments(exec *query.Executor, opts ...repository.Option) *Payments {
	return repository.New[models.Payment](exec, paymentDescriptor{}, opts...)
}

func NewTransactions(exec *query.Executor, opts ...repository.Option) *Transactions {
	return repository.New[models.Transaction](exec, transactionDescriptor{}, opts...)
}
