package service

import (
	"errors"
	"fmt"
	"math"

	"rent-assist/repository"
)

// ErrInvalidArgument is wrapped by every input validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned when a stored record does not exist.
var ErrNotFound = repository.ErrNotFound

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func validateAmount(name string, v, limit float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return invalid("%s must be positive", name)
	}
	if v > limit {
		return invalid("%s exceeds the maximum of %.2f", name, limit)
	}
	return nil
}

func validateTerm(months int) error {
	if months < MinTermMonths || months > MaxTermMonths {
		return invalid("term must be between %d and %d months", MinTermMonths, MaxTermMonths)
	}
	return nil
}

func validateRate(rate float64) error {
	if math.IsNaN(rate) || rate < 0 {
		return invalid("interest rate must not be negative")
	}
	if rate > MaxInterestRate {
		return invalid("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	return nil
}

func validateDay(day int) error {
	if day < 1 || day > 31 {
		return invalid("day of month must be between 1 and 31")
	}
	return nil
}
