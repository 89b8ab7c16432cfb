package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// ApplicationStep is a position in the linear application wizard.
type ApplicationStep string

const (
	StepEligibility   ApplicationStep = "eligibility"
	StepDetails       ApplicationStep = "details"
	StepDocuments     ApplicationStep = "documents"
	StepReviewFeePaid ApplicationStep = "review_fee_paid"
	StepApproved      ApplicationStep = "approved"
	StepDepositPaid   ApplicationStep = "deposit_paid"
)

// ApplicationSteps lists the wizard steps in order.
var ApplicationSteps = []ApplicationStep{
	StepEligibility,
	StepDetails,
	StepDocuments,
	StepReviewFeePaid,
	StepApproved,
	StepDepositPaid,
}

// Index returns the position of s in ApplicationSteps, or -1.
func (s ApplicationStep) Index() int {
	for i, step := range ApplicationSteps {
		if step == s {
			return i
		}
	}
	return -1
}

// Next returns the step following s. ok is false on the last step or an
// unknown one.
func (s ApplicationStep) Next() (ApplicationStep, bool) {
	i := s.Index()
	if i < 0 || i == len(ApplicationSteps)-1 {
		return "", false
	}
	return ApplicationSteps[i+1], true
}

// Application is the state carried through the rent-assistance wizard.
type Application struct {
	ID                  uuid.UUID         `json:"id"`
	ApplicantID         string            `json:"applicantId"`
	MonthlyRent         float64           `json:"monthlyRent"`
	PaymentTerm         int               `json:"paymentTerm"`
	LandlordPaymentDate civil.Date        `json:"landlordPaymentDate"`
	Step                ApplicationStep   `json:"step"`
	Eligibility         EligibilityResult `json:"eligibility"`
	ReviewFee           *FeeBreakdown     `json:"reviewFee,omitempty"`
	Deposit             *FeeBreakdown     `json:"deposit,omitempty"`
	Documents           []string          `json:"documents,omitempty"`
	ApprovedBy          string            `json:"approvedBy,omitempty"`
	ApprovedAt          *time.Time        `json:"approvedAt,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

type StartApplicationInput struct {
	ApplicantID         string               `json:"applicantId"`
	PaymentTerm         int                  `json:"paymentTerm"`
	LandlordPaymentDate civil.Date           `json:"landlordPaymentDate"`
	Eligibility         RentEligibilityInput `json:"eligibility"`
}

type AdvanceApplicationInput struct {
	ID        uuid.UUID `json:"id"`
	Documents []string  `json:"documents,omitempty"`
}

// ApproveApplicationInput records a reviewer's sign-off. Approval is the only
// way into StepApproved.
type ApproveApplicationInput struct {
	ID       uuid.UUID `json:"id"`
	Reviewer string    `json:"reviewer"`
}

// Validate checks an application loaded from storage.
func (a Application) Validate() error {
	if a.ID == uuid.Nil {
		return fmt.Errorf("application: missing id")
	}
	if a.Step.Index() < 0 {
		return fmt.Errorf("application %s: unknown step %q", a.ID, a.Step)
	}
	if a.MonthlyRent <= 0 {
		return fmt.Errorf("application %s: invalid monthly rent %.2f", a.ID, a.MonthlyRent)
	}
	if a.PaymentTerm <= 0 {
		return fmt.Errorf("application %s: invalid payment term %d", a.ID, a.PaymentTerm)
	}
	if a.Step.Index() >= StepApproved.Index() && a.ApprovedBy == "" {
		return fmt.Errorf("application %s: %s without a reviewer", a.ID, a.Step)
	}
	return nil
}
