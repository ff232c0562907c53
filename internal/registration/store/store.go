// Package store binds the registration entities to their tables.
package store

import (
	"database/sql"

	"github.com/briclabs/evcoordinator-sub000/internal/query"
	"github.com/briclabs/evcoordinator-sub000/internal/registration/models"
	"github.com/briclabs/evcoordinator-sub000/internal/repository"
)

const (
	ParticipantTable             = "participant"
	AssociationTable             = "association"
	RegistrationTable            = "registration"
	RegistrationAssociationTable = "registration_association"
	EventInfoTable               = "event_info"
)

var idColumn = query.Column{Field: "id", Name: "id", Kind: query.KindInt}

var ParticipantColumns = query.NewColumnSet(idColumn,
	query.Column{Field: "nameFirst", Name: "name_first", Kind: query.KindText},
	query.Column{Field: "nameLast", Name: "name_last", Kind: query.KindText},
	query.Column{Field: "nameNick", Name: "name_nick", Kind: query.KindText},
	query.Column{Field: "dob", Name: "dob", Kind: query.KindDate},
	query.Column{Field: "email", Name: "email", Kind: query.KindText},
	query.Column{Field: "phoneDigits", Name: "phone_digits", Kind: query.KindText},
	query.Column{Field: "addrCity", Name: "addr_city", Kind: query.KindText},
	query.Column{Field: "addrState", Name: "addr_state", Kind: query.KindText},
	query.Column{Field: "addrZip", Name: "addr_zip", Kind: query.KindText},
)

type participantDescriptor struct{}

func (participantDescriptor) Table() string                  { return ParticipantTable }
func (participantDescriptor) Columns() *query.ColumnSet      { return ParticipantColumns }
func (participantDescriptor) ID(p models.Participant) *int64 { return p.ID }

func (participantDescriptor) WithID(p models.Participant, id int64) models.Participant {
	p.ID = &id
	return p
}

func (participantDescriptor) Values(p models.Participant) []any {
	return []any{p.NameFirst, p.NameLast, p.NameNick, p.DOB, p.Email, p.PhoneDigits, p.AddrCity, p.AddrState, p.AddrZip}
}

func (participantDescriptor) Scan(row query.Scanner) (models.Participant, error) {
	var (
		p                             models.Participant
		id                            int64
		nick, phone, city, state, zip sql.NullString
	)
	if err := row.Scan(&id, &p.NameFirst, &p.NameLast, &nick, &p.DOB, &p.Email, &phone, &city, &state, &zip); err != nil {
		return models.Participant{}, err
	}
	p.ID = &id
	p.NameNick = repository.StringPtr(nick)
	p.PhoneDigits = repository.StringPtr(phone)
	p.AddrCity = repository.StringPtr(city)
	p.AddrState = repository.StringPtr(state)
	p.AddrZip = repository.StringPtr(zip)
	return p, nil
}

var AssociationColumns = query.NewColumnSet(idColumn,
	query.Column{Field: "selfId", Name: "self_id", Kind: query.KindInt},
	query.Column{Field: "associateId", Name: "associate_id", Kind: query.KindInt},
	query.Column{Field: "rawAssociateName", Name: "raw_associate_name", Kind: query.KindText},
	query.Column{Field: "association", Name: "association", Kind: query.KindText},
)

type associationDescriptor struct{}

func (associationDescriptor) Table() string                  { return AssociationTable }
func (associationDescriptor) Columns() *query.ColumnSet      { return AssociationColumns }
func (associationDescriptor) ID(a models.Association) *int64 { return a.ID }

func (associationDescriptor) WithID(a models.Association, id int64) models.Association {
	a.ID = &id
	return a
}

func (associationDescriptor) Values(a models.Association) []any {
	return []any{a.SelfID, a.AssociateID, a.RawAssociateName, a.Association}
}

func (associationDescriptor) Scan(row query.Scanner) (models.Association, error) {
	var (
		a         models.Association
		id        int64
		associate sql.NullInt64
	)
	if err := row.Scan(&id, &a.SelfID, &associate, &a.RawAssociateName, &a.Association); err != nil {
		return models.Association{}, err
	}
	a.ID = &id
	a.AssociateID = repository.Int64Ptr(associate)
	return a, nil
}

var RegistrationColumns = query.NewColumnSet(idColumn,
	query.Column{Field: "participantId", Name: "participant_id", Kind: query.KindInt},
	query.Column{Field: "eventInfoId", Name: "event_info_id", Kind: query.KindInt},
	query.Column{Field: "donationPledge", Name: "donation_pledge", Kind: query.KindMoney},
	query.Column{Field: "signature", Name: "signature", Kind: query.KindText},
	query.Column{Field: "registeredOn", Name: "registered_on", Kind: query.KindDate},
)

type registrationDescriptor struct{}

func (registrationDescriptor) Table() string                   { return RegistrationTable }
func (registrationDescriptor) Columns() *query.ColumnSet       { return RegistrationColumns }
func (registrationDescriptor) ID(r models.Registration) *int64 { return r.ID }

func (registrationDescriptor) WithID(r models.Registration, id int64) models.Registration {
	r.ID = &id
	return r
}

func (registrationDescriptor) Values(r models.Registration) []any {
	return []any{r.ParticipantID, r.EventInfoID, r.DonationPledge, r.Signature, r.RegisteredOn}
}

func (registrationDescriptor) Scan(row query.Scanner) (models.Registration, error) {
	var (
		r  models.Registration
		id int64
	)
	if err := row.Scan(&id, &r.ParticipantID, &r.EventInfoID, &r.DonationPledge, &r.Signature, &r.RegisteredOn); err != nil {
		return models.Registration{}, err
	}
	r.ID = &id
	return r, nil
}

var RegistrationAssociationColumns = query.NewColumnSet(idColumn,
	query.Column{Field: "registrationId", Name: "registration_id", Kind: query.KindInt},
	query.Column{Field: "associationId", Name: "association_id", Kind: query.KindInt},
)

type linkDescriptor struct{}

func (linkDescriptor) Table() string                              { return RegistrationAssociationTable }
func (linkDescriptor) Columns() *query.ColumnSet                  { return RegistrationAssociationColumns }
func (linkDescriptor) ID(l models.RegistrationAssociation) *int64 { return l.ID }

func (linkDescriptor) WithID(l models.RegistrationAssociation, id int64) models.RegistrationAssociation {
	l.ID = &id
	return l
}

func (linkDescriptor) Values(l models.RegistrationAssociation) []any {
	return []any{l.RegistrationID, l.AssociationID}
}

func (linkDescriptor) Scan(row query.Scanner) (models.RegistrationAssociation, error) {
	var (
		l  models.RegistrationAssociation
		id int64
	)
	if err := row.Scan(&id, &l.RegistrationID, &l.AssociationID); err != nil {
		return models.RegistrationAssociation{}, err
	}
	l.ID = &id
	return l, nil
}

var EventInfoColumns = query.NewColumnSet(idColumn,
	query.Column{Field: "eventName", Name: "event_name", Kind: query.KindText},
	query.Column{Field: "eventTitle", Name: "event_title", Kind: query.KindText},
	query.Column{Field: "dateStart", Name: "date_start", Kind: query.KindDate},
	query.Column{Field: "dateEnd", Name: "date_end", Kind: query.KindDate},
	query.Column{Field: "eventStatus", Name: "event_status", Kind: query.KindText},
)

type eventInfoDescriptor struct{}

func (eventInfoDescriptor) Table() string                { return EventInfoTable }
func (eventInfoDescriptor) Columns() *query.ColumnSet    { return EventInfoColumns }
func (eventInfoDescriptor) ID(e models.EventInfo) *int64 { return e.ID }

// DuplicateFields treats an event as recorded once its name and start date
// are taken, whatever its current status.
func (eventInfoDescriptor) DuplicateFields() []string {
	return []string{"eventName", "dateStart"}
}

func (eventInfoDescriptor) WithID(e models.EventInfo, id int64) models.EventInfo {
	e.ID = &id
	return e
}

func (eventInfoDescriptor) Values(e models.EventInfo) []any {
	return []any{e.EventName, e.EventTitle, e.DateStart, e.DateEnd, string(e.EventStatus)}
}

func (eventInfoDescriptor) Scan(row query.Scanner) (models.EventInfo, error) {
	var (
		e      models.EventInfo
		id     int64
		status string
	)
	if err := row.Scan(&id, &e.EventName, &e.EventTitle, &e.DateStart, &e.DateEnd, &status); err != nil {
		return models.EventInfo{}, err
	}
	e.ID = &id
	e.EventStatus = models.EventStatus(status)
	return e, nil
}

type (
	Participants  = repository.Repository[models.Participant]
	Associations  = repository.Repository[models.Association]
	Registrations = repository.Repository[models.Registration]
	Links         = repository.Repository[models.RegistrationAssociation]
	Events        = repository.Repository[models.EventInfo]
)

func NewParticipants(exec *query.Executor, opts ...repository.Option) *Participants {
	return repository.New[models.Participant](exec, participantDescriptor{}, opts...)
}

func NewAssociations(exec *query.Executor, opts ...repository.Option) *Associations {
	return repository.New[models.Association](exec, associationDescriptor{}, opts...)
}

func NewRegistrations(exec *query.Executor, opts ...repository.Option) *Registrations {
	return repository.New[models.Registration](exec, registrationDescriptor{}, opts...)
}

func NewLinks(exec *query.Executor, opts ...repository.Option) *Links {
	return repository.New[models.RegistrationAssociation](exec, linkDescriptor{}, opts...)
}

func NewEvents(exec *query.Executor, opts ...repository.Option) *Events {
	return repository.New[models.EventInfo](exec, eventInfoDescriptor{}, opts...)
}
