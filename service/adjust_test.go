package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-assist/domain"
)

func testSchedule() []domain.ScheduleEntry {
	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	return CalculatePaymentScheduleFrom(start, 12000, 28.08, 12, nil).Schedule
}

func TestApplyDiscountToSchedule(t *testing.T) {
	original := testSchedule()
	snapshot := append([]domain.ScheduleEntry(nil), original...)

	adjusted := ApplyDiscountToSchedule(original, 3, 50, "loyalty")

	require.Len(t, adjusted, len(original))
	assert.Equal(t, snapshot, original, "input must not be modified")

	for i, e := range adjusted {
		if e.PaymentNumber != 3 {
			assert.Equal(t, original[i], e)
			continue
		}
		assert.Equal(t, original[i].PaymentAmount-50, e.PaymentAmount)
		assert.Equal(t, 50.0, e.Discount)
		assert.Equal(t, "loyalty", e.DiscountReason)
	}
}

func TestApplyDiscountToSchedule_Stacks(t *testing.T) {
	original := testSchedule()

	once := ApplyDiscountToSchedule(original, 2, 50, "first")
	twice := ApplyDiscountToSchedule(once, 2, 30, "second")

	assert.InDelta(t, original[1].PaymentAmount-80, twice[1].PaymentAmount, 1e-9)
	assert.Equal(t, 30.0, twice[1].Discount)
	assert.Equal(t, "second", twice[1].DiscountReason)
}

func TestApplyDiscountToSchedule_UnknownPayment(t *testing.T) {
	original := testSchedule()
	assert.Equal(t, original, ApplyDiscountToSchedule(original, 99, 50, "none"))
}

func TestApplyBonusToSchedule(t *testing.T) {
	original := testSchedule()

	adjusted := ApplyBonusToSchedule(original, func(e domain.ScheduleEntry) bool {
		return e.PaymentNumber%6 == 0
	}, 25, "on time")

	for i, e := range adjusted {
		if e.PaymentNumber == 6 || e.PaymentNumber == 12 {
			assert.Equal(t, original[i].PaymentAmount-25, e.PaymentAmount)
			assert.Equal(t, 25.0, e.Bonus)
			assert.Equal(t, "on time", e.BonusReason)
			continue
		}
		assert.Equal(t, original[i], e)
	}
	assert.Zero(t, original[5].Bonus)
}

func TestBonusCriteria(t *testing.T) {
	criteria, err := BonusCriteria("paymentNumber % 3 == 0 && remainingBalance > 1")
	require.NoError(t, err)

	var matched []int
	for _, e := range testSchedule() {
		if criteria(e) {
			matched = append(matched, e.PaymentNumber)
		}
	}
	// The last payment leaves no balance.
	assert.Equal(t, []int{3, 6, 9}, matched)
}

func TestBonusCriteria_NonBoolean(t *testing.T) {
	criteria, err := BonusCriteria("paymentNumber + 1")
	require.NoError(t, err)
	assert.False(t, criteria(testSchedule()[0]))
}

func TestBonusCriteria_Invalid(t *testing.T) {
	_, err := BonusCriteria("(paymentNumber > 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}
