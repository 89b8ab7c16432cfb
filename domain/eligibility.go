package domain

type RentEligibilityInput struct {
	MonthlyRent      float64 `json:"monthlyRent"`
	MonthlySalary    float64 `json:"monthlySalary"`
	CreditScore      int     `json:"creditScore"`
	EmploymentMonths int     `json:"employmentMonths"`
}

type BNPLEligibilityInput struct {
	MonthlySalary  float64 `json:"monthlySalary"`
	PurchaseAmount float64 `json:"purchaseAmount"`
	TermMonths     int     `json:"termMonths"`
}

type EligibilityResult struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons,omitempty"`
}
