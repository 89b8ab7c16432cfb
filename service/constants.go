package service

const (
	// Fees, in cedis.
	DocumentUploadFee     = 65.0
	PropertyInspectionFee = 125.0

	// InterestFactor is applied to one month's rent to get that month's interest.
	InterestFactor = 0.2808
	// AnnualInterestRate is InterestFactor as a percentage, the form the
	// amortization functions take.
	AnnualInterestRate = InterestFactor * 100

	DefaultPaymentTerm = 12
	SecurityMonths     = 2

	FirstPaymentDay       = 25
	ProrationCutoffDay    = 15
	PaymentWindowStartDay = 25
	PaymentWindowEndDay   = 5

	BNPLMonthlyInterest    = 0.04
	BNPLMinSalary          = 1000.0
	BNPLMaxPaymentToIncome = 0.40

	RentMinMonthlyRent      = 250.0
	RentMinSalary           = 1000.0
	RentMinCreditScore      = 600
	RentMinEmploymentMonths = 6

	// Límites de validación
	MaxMonthlyRent  = 1_000_000.0
	MaxLoanAmount   = 1_000_000_000.0
	MaxInterestRate = 1000.0
	MaxTermMonths   = 600
	MinTermMonths   = 1
)

// OfferedTerms are the payment terms, in months, a tenant can choose from.
var OfferedTerms = []int{3, 4, 5, 6, 12}
