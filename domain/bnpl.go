package domain

type BNPLPlan struct {
	PurchaseAmount     float64           `json:"purchaseAmount"`
	TermMonths         int               `json:"termMonths"`
	MonthlyInterest    float64           `json:"monthlyInterest"`
	TotalInterest      float64           `json:"totalInterest"`
	MonthlyInstallment float64           `json:"monthlyInstallment"`
	TotalRepayment     float64           `json:"totalRepayment"`
	PaymentToIncome    float64           `json:"paymentToIncome"`
	Eligibility        EligibilityResult `json:"eligibility"`
}
