package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"rent-assist/domain"
	"rent-assist/repository"
)

const defaultScheduleCacheTTL = 24 * time.Hour

type LoanService struct {
	repo     repository.ScheduleRepository
	cache    repository.CacheRepository
	events   ChangePublisher
	recorder Recorder
	logger   *slog.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// NewLoanService creates a new LoanService. events and recorder may be nil.
func NewLoanService(
	repo repository.ScheduleRepository,
	cache repository.CacheRepository,
	events ChangePublisher,
	recorder Recorder,
	logger *slog.Logger,
) *LoanService {
	if events == nil {
		events = nopPublisher{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoanService{
		repo:     repo,
		cache:    cache,
		events:   events,
		recorder: recorder,
		logger:   logger,
		cacheTTL: defaultScheduleCacheTTL,
		now:      time.Now,
	}
}

// SetCacheTTL changes how long generated schedules stay cached.
func (s *LoanService) SetCacheTTL(ttl time.Duration) {
	s.cacheTTL = ttl
}

// CalculateLoan calculates the loan details based on the input parameters.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {
	if err := validateAmount("amount", input.Amount, MaxLoanAmount); err != nil {
		return domain.LoanResult{}, err
	}
	if err := validateRate(input.InterestRate); err != nil {
		return domain.LoanResult{}, err
	}
	if err := validateTerm(input.TermMonths); err != nil {
		return domain.LoanResult{}, err
	}

	cuota := CalculateMonthlyPayment(input.Amount, input.InterestRate, input.TermMonths)
	total := cuota * float64(input.TermMonths)

	s.recorder.ObserveCalculation("loan")

	return domain.LoanResult{
		MonthlyPayment: RoundTo2Decimals(cuota),
		TotalPayment:   RoundTo2Decimals(total),
		TotalInterest:  RoundTo2Decimals(total - input.Amount),
	}, nil
}

// GenerateSchedule builds, caches and stores the amortization schedule for
// input. Payment dates count from input.StartDate, or from today.
func (s *LoanService) GenerateSchedule(
	ctx context.Context,
	input domain.ScheduleInput,
) (domain.ScheduleRecord, error) {
	if err := validateScheduleInput(input); err != nil {
		return domain.ScheduleRecord{}, err
	}

	start := s.now()
	if input.StartDate != nil {
		start = *input.StartDate
	}
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	input.StartDate = &start

	key := scheduleCacheKey(input)
	result, ok := s.cachedSchedule(ctx, key)
	if !ok {
		result = CalculatePaymentScheduleFrom(start, input.TotalAmount, input.InterestRate, input.Months, input.Discounts)
		s.storeSchedule(ctx, key, result)
	}
	s.recorder.ObserveCalculation("schedule")

	record := domain.ScheduleRecord{
		ID:        uuid.New(),
		Input:     input,
		Result:    result,
		CreatedAt: s.now().UTC(),
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Warn("failed to save payment schedule", "id", record.ID, "error", err)
		return record, nil
	}

	event := domain.ChangeEvent{
		ID:         uuid.New(),
		Table:      domain.TableSchedules,
		Action:     domain.ActionInsert,
		Key:        record.ID.String(),
		Record:     record,
		OccurredAt: record.CreatedAt,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish schedule change", "id", record.ID, "error", err)
	}

	return record, nil
}

// GetSchedule loads a stored schedule.
func (s *LoanService) GetSchedule(ctx context.Context, id uuid.UUID) (domain.ScheduleRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ScheduleRecord{}, fmt.Errorf("schedule %s: %w", id, err)
	}
	return record, nil
}

// ApplyDiscount takes a discount off one entry of a schedule.
func (s *LoanService) ApplyDiscount(input domain.DiscountInput) ([]domain.ScheduleEntry, error) {
	if len(input.Schedule) == 0 {
		return nil, invalid("schedule is empty")
	}
	if input.PaymentNumber < 1 || input.PaymentNumber > len(input.Schedule) {
		return nil, invalid("payment number %d is outside the schedule", input.PaymentNumber)
	}
	if input.Amount < 0 {
		return nil, invalid("discount must not be negative")
	}

	s.recorder.ObserveCalculation("discount")
	return ApplyDiscountToSchedule(input.Schedule, input.PaymentNumber, input.Amount, input.Reason), nil
}

// ApplyBonus takes a bonus off every entry matching the criteria expression.
func (s *LoanService) ApplyBonus(input domain.BonusInput) ([]domain.ScheduleEntry, error) {
	if len(input.Schedule) == 0 {
		return nil, invalid("schedule is empty")
	}
	if input.Amount < 0 {
		return nil, invalid("bonus must not be negative")
	}
	criteria, err := BonusCriteria(input.Criteria)
	if err != nil {
		return nil, err
	}

	s.recorder.ObserveCalculation("bonus")
	return ApplyBonusToSchedule(input.Schedule, criteria, input.Amount, input.Reason), nil
}

func (s *LoanService) cachedSchedule(ctx context.Context, key string) (domain.PaymentSchedule, bool) {
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		s.recorder.ObserveCache(false)
		return domain.PaymentSchedule{}, false
	}

	var schedule domain.PaymentSchedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		s.logger.Warn("discarding unreadable cached schedule", "key", key, "error", err)
		s.recorder.ObserveCache(false)
		return domain.PaymentSchedule{}, false
	}
	s.recorder.ObserveCache(true)
	return schedule, true
}

func (s *LoanService) storeSchedule(ctx context.Context, key string, schedule domain.PaymentSchedule) {
	data, err := json.Marshal(schedule)
	if err != nil {
		s.logger.Warn("failed to encode schedule for cache", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		s.logger.Warn("failed to cache schedule", "key", key, "error", err)
	}
}

func validateScheduleInput(input domain.ScheduleInput) error {
	if err := validateAmount("total amount", input.TotalAmount, MaxLoanAmount); err != nil {
		return err
	}
	if err := validateRate(input.InterestRate); err != nil {
		return err
	}
	if err := validateTerm(input.Months); err != nil {
		return err
	}
	for n, amount := range input.Discounts {
		if n < 1 || n > input.Months {
			return invalid("discount for payment %d is outside the %d month term", n, input.Months)
		}
		if amount < 0 {
			return invalid("discount for payment %d must not be negative", n)
		}
	}
	return nil
}

func scheduleCacheKey(input domain.ScheduleInput) string {
	numbers := make([]int, 0, len(input.Discounts))
	for n := range input.Discounts {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	var discounts strings.Builder
	for _, n := range numbers {
		fmt.Fprintf(&discounts, "%d=%g;", n, input.Discounts[n])
	}

	return fmt.Sprintf("schedule:%s:%g:%g:%d:%s",
		input.StartDate.Format(time.DateOnly),
		input.TotalAmount,
		input.InterestRate,
		input.Months,
		discounts.String(),
	)
}
