// Package validation checks registration entities before they reach a store.
package validation

import (
	"fmt"
	"time"

	"github.com/briclabs/evcoordinator-sub000/internal/registration/models"
	"github.com/briclabs/evcoordinator-sub000/internal/validation"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
)

// Validator produces field-level messages. Date rules compare against the
// injected clock.
type Validator struct {
	clock validation.Clock
}

func New(clock func() time.Time) *Validator {
	if clock == nil {
		clock = time.Now
	}
	return &Validator{clock: clock}
}

func (v *Validator) Participant(p models.Participant) *dErrors.ValidationError {
	errs := &dErrors.ValidationError{}
	validation.NotBlank(errs, "nameFirst", p.NameFirst)
	validation.NotBlank(errs, "nameLast", p.NameLast)
	validation.OptionalNotBlank(errs, "nameNick", p.NameNick)
	validation.BeforeNow(errs, "dob", p.DOB, v.clock.Today())
	validation.Email(errs, "email", p.Email)
	validation.OptionalDigits(errs, "phoneDigits", p.PhoneDigits)
	validation.OptionalNotBlank(errs, "addrCity", p.AddrCity)
	validation.OptionalNotBlank(errs, "addrState", p.AddrState)
	validation.OptionalDigits(errs, "addrZip", p.AddrZip)
	return errs
}

// Association checks the guest's own fields. The owning participant is
// assigned by the packet pipeline and is not checked here.
func (v *Validator) Association(a models.Association) *dErrors.ValidationError {
	errs := &dErrors.ValidationError{}
	validation.OptionalReference(errs, "associateId", a.AssociateID)
	validation.NotBlank(errs, "rawAssociateName", a.RawAssociateName)
	validation.NotBlank(errs, "association", a.Association)
	return errs
}

func (v *Validator) Registration(r models.Registration) *dErrors.ValidationError {
	errs := &dErrors.ValidationError{}
	validation.Reference(errs, "eventInfoId", r.EventInfoID)
	validation.NonNegativeMoney(errs, "donationPledge", r.DonationPledge)
	validation.NotBlank(errs, "signature", r.Signature)
	validation.NotAfterNow(errs, "registeredOn", r.RegisteredOn, v.clock.Today())
	return errs
}

// EventInfo also cross-checks status against the calendar: a completed event
// must have ended and a proposed one must not have started.
func (v *Validator) EventInfo(e models.EventInfo) *dErrors.ValidationError {
	errs := &dErrors.ValidationError{}
	validation.NotBlank(errs, "eventName", e.EventName)
	validation.NotBlank(errs, "eventTitle", e.EventTitle)
	startOK := validation.DatePresent(errs, "dateStart", e.DateStart)
	endOK := validation.DatePresent(errs, "dateEnd", e.DateEnd)
	if startOK && endOK && e.DateEnd.Before(e.DateStart) {
		errs.Add("dateEnd", validation.MustNotPrecedeStart)
	}
	validation.OneOf(errs, "eventStatus", string(e.EventStatus), models.EventStatuses...)
	if !startOK || !endOK {
		return errs
	}

	today := v.clock.Today()
	switch e.EventStatus {
	case models.EventCompleted:
		if !e.DateEnd.Before(today) {
			errs.Add("eventStatus", validation.StatusConflictsWithDates)
		}
	case models.EventProposed:
		if !e.DateStart.After(today) {
			errs.Add("eventStatus", validation.StatusConflictsWithDates)
		}
	}
	return errs
}

// Packet validates every part, keying messages by their position in the
// packet, e.g. "associations[1].rawAssociateName".
func (v *Validator) Packet(p *models.Packet) *dErrors.ValidationError {
	errs := &dErrors.ValidationError{}
	if p == nil {
		return errs
	}
	if p.Participant != nil {
		errs.Merge("participant.", v.Participant(*p.Participant))
	}
	for i, a := range p.Associations {
		errs.Merge(fmt.Sprintf("associations[%d].", i), v.Association(a))
	}
	if p.Registration != nil {
		errs.Merge("registration.", v.Registration(*p.Registration))
	}
	return errs
}
