package validation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/briclabs/evcoordinator-sub000/pkg/domain"
	dErrors "github.com/briclabs/evcoordinator-sub000/pkg/domain-errors"
)

func TestRules(t *testing.T) {
	today := domain.NewDate(2024, 6, 15)

	t.Run("blank strings", func(t *testing.T) {
		v := &dErrors.ValidationError{}
		NotBlank(v, "nameFirst", "   ")
		NotBlank(v, "nameLast", "Lee")
		assert.Equal(t, map[string][]string{"nameFirst": {MustNotBeBlank}}, v.Fields)
	})

	t.Run("optional values", func(t *testing.T) {
		v := &dErrors.ValidationError{}
		blank := ""
		letters := "555-1234"
		OptionalNotBlank(v, "nameNick", nil)
		OptionalNotBlank(v, "addrCity", &blank)
		OptionalDigits(v, "phoneDigits", &letters)
		assert.Equal(t, []string{MustNotBeBlank}, v.Fields["addrCity"])
		assert.Equal(t, []string{MustBeDigits}, v.Fields["phoneDigits"])
		assert.NotContains(t, v.Fields, "nameNick")
	})

	t.Run("dates against today", func(t *testing.T) {
		v := &dErrors.ValidationError{}
		BeforeNow(v, "dob", today, today)
		NotAfterNow(v, "paidOn", today, today)
		NotAfterNow(v, "recordedOn", domain.NewDate(2024, 6, 16), today)
		BeforeNow(v, "missing", domain.Date{}, today)
		assert.Equal(t, []string{MustBeBeforeNow}, v.Fields["dob"])
		assert.NotContains(t, v.Fields, "paidOn")
		assert.Equal(t, []string{MustBeBeforeNow}, v.Fields["recordedOn"])
		assert.Equal(t, []string{MustNotBeBlank}, v.Fields["missing"])
	})

	t.Run("money and references", func(t *testing.T) {
		v := &dErrors.ValidationError{}
		PositiveMoney(v, "amount", domain.Money(0))
		NonNegativeMoney(v, "donationPledge", domain.Money(0))
		NonNegativeMoney(v, "refund", domain.Money(-1))
		Reference(v, "participantId", 0)
		OptionalReference(v, "associateId", nil)
		assert.Equal(t, []string{MustBePositive}, v.Fields["amount"])
		assert.NotContains(t, v.Fields, "donationPledge")
		assert.Equal(t, []string{MustNotBeNegative}, v.Fields["refund"])
		assert.Equal(t, []string{MustBePositive}, v.Fields["participantId"])
		assert.NotContains(t, v.Fields, "associateId")
	})

	t.Run("enums email json", func(t *testing.T) {
		v := &dErrors.ValidationError{}
		OneOf(v, "kind", "REFUND", "INCOME", "EXPENSE")
		Email(v, "email", "not-an-address")
		JSON(v, "configValue", json.RawMessage(`{"open":`))
		JSON(v, "empty", nil)
		assert.Equal(t, []string{MustBeOneOf}, v.Fields["kind"])
		assert.Equal(t, []string{MustBeValidEmail}, v.Fields["email"])
		assert.Equal(t, []string{MustBeValidJSON}, v.Fields["configValue"])
		assert.Equal(t, []string{MustNotBeBlank}, v.Fields["empty"])
	})

	t.Run("clock today is utc", func(t *testing.T) {
		east := time.FixedZone("east", 10*3600)
		c := Clock(func() time.Time { return time.Date(2024, 6, 16, 5, 0, 0, 0, east) })
		assert.Equal(t, today, c.Today())
	})
}
