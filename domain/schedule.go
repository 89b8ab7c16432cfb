package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is one row of an amortization table. PaymentAmount is the
// amount the payer owes for the period once discounts and bonuses have been
// taken off the nominal monthly payment.
type ScheduleEntry struct {
	PaymentNumber    int       `json:"paymentNumber"`
	PaymentDate      time.Time `json:"paymentDate"`
	PaymentAmount    float64   `json:"paymentAmount"`
	PrincipalPayment float64   `json:"principalPayment"`
	InterestPayment  float64   `json:"interestPayment"`
	RemainingBalance float64   `json:"remainingBalance"`
	Discount         float64   `json:"discount,omitempty"`
	DiscountReason   string    `json:"discountReason,omitempty"`
	Bonus            float64   `json:"bonus,omitempty"`
	BonusReason      string    `json:"bonusReason,omitempty"`
}

type PaymentSchedule struct {
	MonthlyPayment float64         `json:"monthlyPayment"`
	TotalPayments  float64         `json:"totalPayments"`
	TotalInterest  float64         `json:"totalInterest"`
	Schedule       []ScheduleEntry `json:"schedule"`
}

type ScheduleInput struct {
	TotalAmount  float64         `json:"totalAmount"`
	InterestRate float64         `json:"interestRate"`
	Months       int             `json:"months"`
	Discounts    map[int]float64 `json:"discounts,omitempty"`
	StartDate    *time.Time      `json:"startDate,omitempty"`
}

type DiscountInput struct {
	Schedule      []ScheduleEntry `json:"schedule"`
	PaymentNumber int             `json:"paymentNumber"`
	Amount        float64         `json:"amount"`
	Reason        string          `json:"reason"`
}

// BonusInput selects entries with a boolean expression over the entry's
// fields, e.g. "paymentNumber % 3 == 0".
type BonusInput struct {
	Schedule []ScheduleEntry `json:"schedule"`
	Criteria string          `json:"criteria"`
	Amount   float64         `json:"amount"`
	Reason   string          `json:"reason"`
}

// ScheduleRecord is a generated schedule as handed to the persistence
// collaborator.
type ScheduleRecord struct {
	ID        uuid.UUID       `json:"id"`
	Input     ScheduleInput   `json:"input"`
	Result    PaymentSchedule `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Validate checks a record coming back from storage before it is handed to
// the calculation core.
func (r ScheduleRecord) Validate() error {
	if r.ID == uuid.Nil {
		return fmt.Errorf("schedule record: missing id")
	}
	if r.Input.Months <= 0 {
		return fmt.Errorf("schedule record %s: invalid term %d", r.ID, r.Input.Months)
	}
	if len(r.Result.Schedule) != r.Input.Months {
		return fmt.Errorf("schedule record %s: %d entries for a %d month term",
			r.ID, len(r.Result.Schedule), r.Input.Months)
	}
	for i, e := range r.Result.Schedule {
		if e.PaymentNumber != i+1 {
			return fmt.Errorf("schedule record %s: entry %d has payment number %d", r.ID, i, e.PaymentNumber)
		}
	}
	return nil
}
