// Package validation holds the field rules shared by the entity validators.
// Each rule appends a message code to a dErrors.ValidationError under the
// field's caller-facing name and never returns an error of its own.
package validation

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/briclabs/evcoordinator-sub000/pkg/domain"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
	"github.com/briclabs/evcoordinator-sub000/pkg/email"
)

const (
	MustNotBeBlank           = "MUST_NOT_BE_BLANK"
	MustBeBeforeNow          = "MUST_BE_BEFORE_NOW"
	MustBePositive           = "MUST_BE_POSITIVE"
	MustNotBeNegative        = "MUST_NOT_BE_NEGATIVE"
	MustBeOneOf              = "MUST_BE_ONE_OF"
	MustBeValidEmail         = "MUST_BE_VALID_EMAIL"
	MustBeDigits             = "MUST_BE_DIGITS"
	MustNotPrecedeStart      = "MUST_NOT_PRECEDE_START"
	StatusConflictsWithDates = "STATUS_CONFLICTS_WITH_DATES"
	MustBeValidJSON          = "MUST_BE_VALID_JSON"
)

// Clock is the time source validators compare dates against.
type Clock func() time.Time

// Today returns the calendar date of c in UTC.
func (c Clock) Today() domain.Date {
	if c == nil {
		return domain.DateOf(time.Now().UTC())
	}
	return domain.DateOf(c().UTC())
}

func NotBlank(v *dErrors.ValidationError, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, MustNotBeBlank)
		return false
	}
	return true
}

// OptionalNotBlank accepts nil but rejects a present, blank value.
func OptionalNotBlank(v *dErrors.ValidationError, field string, value *string) bool {
	if value == nil {
		return true
	}
	return NotBlank(v, field, *value)
}

func DatePresent(v *dErrors.ValidationError, field string, d domain.Date) bool {
	if d.IsZero() {
		v.Add(field, MustNotBeBlank)
		return false
	}
	return true
}

// BeforeNow requires d to be strictly earlier than today.
func BeforeNow(v *dErrors.ValidationError, field string, d domain.Date, today domain.Date) {
	if !DatePresent(v, field, d) {
		return
	}
	if !d.Before(today) {
		v.Add(field, MustBeBeforeNow)
	}
}

// NotAfterNow allows today but rejects future dates.
func NotAfterNow(v *dErrors.ValidationError, field string, d domain.Date, today domain.Date) {
	if !DatePresent(v, field, d) {
		return
	}
	if d.After(today) {
		v.Add(field, MustBeBeforeNow)
	}
}

func PositiveMoney(v *dErrors.ValidationError, field string, m domain.Money) {
	if m.Cents() <= 0 {
		v.Add(field, MustBePositive)
	}
}

func NonNegativeMoney(v *dErrors.ValidationError, field string, m domain.Money) {
	if m.Cents() < 0 {
		v.Add(field, MustNotBeNegative)
	}
}

// Reference requires a foreign key to be a positive identifier.
func Reference(v *dErrors.ValidationError, field string, id int64) {
	if id <= 0 {
		v.Add(field, MustBePositive)
	}
}

func OptionalReference(v *dErrors.ValidationError, field string, id *int64) {
	if id != nil {
		Reference(v, field, *id)
	}
}

func OneOf(v *dErrors.ValidationError, field, value string, allowed ...string) {
	if !NotBlank(v, field, value) {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, MustBeOneOf)
}

func Email(v *dErrors.ValidationError, field, value string) {
	if !NotBlank(v, field, value) {
		return
	}
	if !email.Valid(value) {
		v.Add(field, MustBeValidEmail)
	}
}

func OptionalDigits(v *dErrors.ValidationError, field string, value *string) {
	if value == nil {
		return
	}
	if !NotBlank(v, field, *value) {
		return
	}
	for _, r := range *value {
		if r < '0' || r > '9' {
			v.Add(field, MustBeDigits)
			return
		}
	}
}

func JSON(v *dErrors.ValidationError, field string, raw json.RawMessage) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		v.Add(field, MustNotBeBlank)
		return
	}
	if !json.Valid(raw) {
		v.Add(field, MustBeValidJSON)
	}
}
