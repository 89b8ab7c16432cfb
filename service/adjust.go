package service

import (
	"fmt"

	"github.com/Knetic/govaluate"

	"rent-assist/domain"
)

// ApplyDiscountToSchedule returns a copy of schedule with amount taken off
// the entry numbered paymentNumber. Applying the same discount twice reduces
// the payment twice; Discount and DiscountReason hold the latest one.
func ApplyDiscountToSchedule(
	schedule []domain.ScheduleEntry,
	paymentNumber int,
	amount float64,
	reason string,
) []domain.ScheduleEntry {
	adjusted := make([]domain.ScheduleEntry, len(schedule))
	copy(adjusted, schedule)

	for i := range adjusted {
		if adjusted[i].PaymentNumber != paymentNumber {
			continue
		}
		adjusted[i].Discount = amount
		adjusted[i].DiscountReason = reason
		adjusted[i].PaymentAmount -= amount
	}
	return adjusted
}

// ApplyBonusToSchedule returns a copy of schedule where every entry matching
// criteria gets amount taken off its payment.
func ApplyBonusToSchedule(
	schedule []domain.ScheduleEntry,
	criteria func(domain.ScheduleEntry) bool,
	amount float64,
	reason string,
) []domain.ScheduleEntry {
	adjusted := make([]domain.ScheduleEntry, len(schedule))
	copy(adjusted, schedule)

	for i := range adjusted {
		if !criteria(adjusted[i]) {
			continue
		}
		adjusted[i].Bonus = amount
		adjusted[i].BonusReason = reason
		adjusted[i].PaymentAmount -= amount
	}
	return adjusted
}

// BonusCriteria compiles a boolean expression over a schedule entry into a
// criteria function. The expression sees paymentNumber, paymentAmount,
// principalPayment, interestPayment and remainingBalance, e.g.
//
//	paymentNumber % 3 == 0 && remainingBalance > 0
//
// Entries for which the expression fails to evaluate to a bool do not match.
func BonusCriteria(expression string) (func(domain.ScheduleEntry) bool, error) {
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, fmt.Errorf("%w: criteria %q: %v", ErrInvalidArgument, expression, err)
	}

	return func(e domain.ScheduleEntry) bool {
		result, err := expr.Evaluate(map[string]interface{}{
			"paymentNumber":    float64(e.PaymentNumber),
			"paymentAmount":    e.PaymentAmount,
			"principalPayment": e.PrincipalPayment,
			"interestPayment":  e.InterestPayment,
			"remainingBalance": e.RemainingBalance,
		})
		if err != nil {
			return false
		}
		matched, ok := result.(bool)
		return ok && matched
	}, nil
}
