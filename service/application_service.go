package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"rent-assist/domain"
	"rent-assist/repository"
)

// ErrInvalidTransition is returned when an application cannot move to its
// next step yet.
var ErrInvalidTransition = errors.New("invalid step transition")

// ApplicationService drives an application through the wizard. State lives
// in the injected repository; every change is synced explicitly and
// announced on the change feed.
type ApplicationService struct {
	repo     repository.ApplicationRepository
	events   ChangePublisher
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	events ChangePublisher,
	recorder Recorder,
	logger *slog.Logger,
) *ApplicationService {
	if events == nil {
		events = nopPublisher{}
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ApplicationService{
		repo:     repo,
		events:   events,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Start screens the applicant and stores a new application. An eligible
// applicant moves straight on to the details step; an ineligible one is
// stored at the eligibility step with the reasons.
func (s *ApplicationService) Start(
	ctx context.Context,
	input domain.StartApplicationInput,
) (domain.Application, error) {
	if input.ApplicantID == "" {
		return domain.Application{}, invalid("applicant id is required")
	}
	term := input.PaymentTerm
	if term == 0 {
		term = DefaultPaymentTerm
	}
	if !slices.Contains(OfferedTerms, term) {
		return domain.Application{}, invalid("payment term must be one of %v months", OfferedTerms)
	}
	if !input.LandlordPaymentDate.IsValid() {
		return domain.Application{}, invalid("landlord payment date %q is not a valid date", input.LandlordPaymentDate)
	}
	if err := validateAmount("monthly rent", input.Eligibility.MonthlyRent, MaxMonthlyRent); err != nil {
		return domain.Application{}, err
	}

	now := s.now().UTC()
	app := domain.Application{
		ID:                  uuid.New(),
		ApplicantID:         input.ApplicantID,
		MonthlyRent:         input.Eligibility.MonthlyRent,
		PaymentTerm:         term,
		LandlordPaymentDate: input.LandlordPaymentDate,
		Step:                domain.StepEligibility,
		Eligibility:         CheckRentEligibility(input.Eligibility),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if app.Eligibility.Eligible {
		app.Step = domain.StepDetails
	}
	s.recorder.ObserveCalculation("rent_eligibility")

	if err := s.Sync(ctx, app, domain.ActionInsert); err != nil {
		return domain.Application{}, err
	}

	s.logger.Info("application started",
		"id", app.ID,
		"applicant_id", app.ApplicantID,
		"eligible", app.Eligibility.Eligible,
	)
	return app, nil
}

// Advance moves the application to its next step, charging the document
// review fee and the post-approval deposit at their steps. It never approves;
// see Approve.
func (s *ApplicationService) Advance(
	ctx context.Context,
	input domain.AdvanceApplicationInput,
) (domain.Application, error) {
	app, err := s.Get(ctx, input.ID)
	if err != nil {
		return domain.Application{}, err
	}

	next, ok := app.Step.Next()
	if !ok {
		return domain.Application{}, fmt.Errorf("%w: application %s is already at %s", ErrInvalidTransition, app.ID, app.Step)
	}

	switch next {
	case domain.StepDetails:
		if !app.Eligibility.Eligible {
			return domain.Application{}, fmt.Errorf("%w: applicant is not eligible", ErrInvalidTransition)
		}
	case domain.StepDocuments:
		if len(input.Documents) == 0 {
			return domain.Application{}, invalid("at least one document is required")
		}
		app.Documents = append(app.Documents, input.Documents...)
	case domain.StepReviewFeePaid:
		fee := CalculateDocumentReviewFee(app.MonthlyRent)
		app.ReviewFee = &fee
		s.recorder.ObserveCalculation("document_review_fee")
	case domain.StepApproved:
		return domain.Application{}, fmt.Errorf("%w: application %s is awaiting reviewer approval", ErrInvalidTransition, app.ID)
	case domain.StepDepositPaid:
		deposit := CalculateDepositAndInterest(app.MonthlyRent, app.PaymentTerm)
		app.Deposit = &deposit
		s.recorder.ObserveCalculation("deposit_and_interest")
	}

	app.Step = next
	app.UpdatedAt = s.now().UTC()

	if err := s.Sync(ctx, app, domain.ActionUpdate); err != nil {
		return domain.Application{}, err
	}
	s.logger.Info("application advanced", "id", app.ID, "step", app.Step)
	return app, nil
}

// Approve moves an application whose review fee is paid to StepApproved on
// behalf of a named reviewer.
func (s *ApplicationService) Approve(
	ctx context.Context,
	input domain.ApproveApplicationInput,
) (domain.Application, error) {
	if strings.TrimSpace(input.Reviewer) == "" {
		return domain.Application{}, invalid("reviewer is required")
	}

	app, err := s.Get(ctx, input.ID)
	if err != nil {
		return domain.Application{}, err
	}
	if app.Step != domain.StepReviewFeePaid || app.ReviewFee == nil {
		return domain.Application{}, fmt.Errorf("%w: application %s cannot be approved at %s", ErrInvalidTransition, app.ID, app.Step)
	}

	now := s.now().UTC()
	app.Step = domain.StepApproved
	app.ApprovedBy = input.Reviewer
	app.ApprovedAt = &now
	app.UpdatedAt = now

	if err := s.Sync(ctx, app, domain.ActionUpdate); err != nil {
		return domain.Application{}, err
	}
	s.logger.Info("application approved", "id", app.ID, "reviewer", app.ApprovedBy)
	return app, nil
}

// Sync writes app to the repository and publishes the change.
func (s *ApplicationService) Sync(ctx context.Context, app domain.Application, action domain.ChangeAction) error {
	if err := app.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := s.repo.Save(ctx, app); err != nil {
		return fmt.Errorf("save application %s: %w", app.ID, err)
	}

	event := domain.ChangeEvent{
		ID:         uuid.New(),
		Table:      domain.TableApplications,
		Action:     action,
		Key:        app.ApplicantID,
		Record:     app,
		OccurredAt: app.UpdatedAt,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish application change", "id", app.ID, "error", err)
	}
	return nil
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (domain.Application, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, fmt.Errorf("application %s: %w", id, err)
	}
	return app, nil
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	if applicantID == "" {
		return nil, invalid("applicant id is required")
	}
	return s.repo.ListByApplicant(ctx, applicantID)
}
