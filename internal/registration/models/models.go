package models

import (
	"github.com/briclabs/evcoordinator-sub000/pkg/domain"
)

// Participant is a person who registers for, attends, or pays for an event.
type Participant struct {
	ID          *int64      `json:"id"`
	NameFirst   string      `json:"nameFirst"`
	NameLast    string      `json:"nameLast"`
	NameNick    *string     `json:"nameNick"`
	DOB         domain.Date `json:"dob"`
	Email       string      `json:"email"`
	PhoneDigits *string     `json:"phoneDigits"`
	AddrCity    *string     `json:"addrCity"`
	AddrState   *string     `json:"addrState"`
	AddrZip     *string     `json:"addrZip"`
}

// Association is a guest a participant brings. AssociateID is set once the
// guest is a participant in their own right; until then only the raw name
// is known.
type Association struct {
	ID               *int64 `json:"id"`
	SelfID           int64  `json:"selfId"`
	AssociateID      *int64 `json:"associateId"`
	RawAssociateName string `json:"rawAssociateName"`
	Association      string `json:"association"`
}

// Registration is one participant's sign-up for one event.
type Registration struct {
	ID             *int64       `json:"id"`
	ParticipantID  int64        `json:"participantId"`
	EventInfoID    int64        `json:"eventInfoId"`
	DonationPledge domain.Money `json:"donationPledge"`
	Signature      string       `json:"signature"`
	RegisteredOn   domain.Date  `json:"registeredOn"`
}

// RegistrationAssociation links a registration to a guest brought to it.
type RegistrationAssociation struct {
	ID             *int64 `json:"id"`
	RegistrationID int64  `json:"registrationId"`
	AssociationID  int64  `json:"associationId"`
}

type EventStatus string

const (
	EventProposed  EventStatus = "PROPOSED"
	EventActive    EventStatus = "ACTIVE"
	EventCancelled EventStatus = "CANCELLED"
	EventCompleted EventStatus = "COMPLETED"
)

var EventStatuses = []string{
	string(EventProposed),
	string(EventActive),
	string(EventCancelled),
	string(EventCompleted),
}

type EventInfo struct {
	ID          *int64      `json:"id"`
	EventName   string      `json:"eventName"`
	EventTitle  string      `json:"eventTitle"`
	DateStart   domain.Date `json:"dateStart"`
	DateEnd     domain.Date `json:"dateEnd"`
	EventStatus EventStatus `json:"eventStatus"`
}

// Packet is the registration form as submitted: the registrant, the guests
// they bring, and the registration itself. Foreign keys between the parts
// are assigned while the packet is written.
type Packet struct {
	Participant  *Participant  `json:"participant"`
	Associations []Association `json:"associations"`
	Registration *Registration `json:"registration"`
}

// Complete reports whether every part of the packet is present. An empty
// guest list is complete; a missing one is not.
func (p *Packet) Complete() bool {
	return p != nil && p.Participant != nil && p.Associations != nil && p.Registration != nil
}

// Identified reports whether every part carries an identifier.
func (p *Packet) Identified() bool {
	if !p.Complete() || p.Participant.ID == nil || p.Registration.ID == nil {
		return false
	}
	for _, a := range p.Associations {
		if a.ID == nil {
			return false
		}
	}
	return true
}
