package models

import "github.com/briclabs/evcoordinator-sub000/pkg/domain"

type Instrument string

const (
	InstrumentCash     Instrument = "CASH"
	InstrumentCheck    Instrument = "CHECK"
	InstrumentCard     Instrument = "CARD"
	InstrumentTransfer Instrument = "TRANSFER"
)

var Instruments = []string{
	string(InstrumentCash),
	string(InstrumentCheck),
	string(InstrumentCard),
	string(InstrumentTransfer),
}

// Payment is money received from a payer toward a registration.
type Payment struct {
	ID             *int64       `json:"id"`
	RegistrationID int64        `json:"registrationId"`
	PayerID        int64        `json:"payerId"`
	Amount         domain.Money `json:"amount"`
	Instrument     Instrument   `json:"instrument"`
	PaidOn         domain.Date  `json:"paidOn"`
}

type Kind string

const (
	KindIncome  Kind = "INCOME"
	KindExpense Kind = "EXPENSE"
)

var Kinds = []string{string(KindIncome), string(KindExpense)}

// Transaction is a bookkeeping entry. Income usually references the payment
// it books; expenses carry no payment.
type Transaction struct {
	ID         *int64       `json:"id"`
	PaymentID  *int64       `json:"paymentId"`
	Amount     domain.Money `json:"amount"`
	Memo       string       `json:"memo"`
	Kind       Kind         `json:"kind"`
	RecordedOn domain.Date  `json:"recordedOn"`
}
