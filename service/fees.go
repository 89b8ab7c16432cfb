package service

import "rent-assist/domain"

// CalculateInitialPayment returns the full upfront bundle for a tenant:
// two months of interest-inclusive rent as refundable security, the service
// fee, the document upload fee and the property inspection fee.
func CalculateInitialPayment(monthlyRent float64, paymentTerm int) domain.FeeBreakdown {
	serviceFee := monthlyRent
	monthlyInterest := monthlyRent * InterestFactor
	monthlyPaymentWithInterest := monthlyRent + monthlyInterest
	refundableRentSecurity := monthlyPaymentWithInterest * SecurityMonths
	interest := monthlyRent * InterestFactor * float64(paymentTerm)

	return domain.FeeBreakdown{
		ServiceFee:                 serviceFee,
		DocumentUploadFee:          DocumentUploadFee,
		PropertyInspectionFee:      PropertyInspectionFee,
		RefundableRentSecurity:     refundableRentSecurity,
		MonthlyInterest:            monthlyInterest,
		MonthlyPaymentWithInterest: monthlyPaymentWithInterest,
		Interest:                   interest,
		Total:                      refundableRentSecurity + serviceFee + DocumentUploadFee + PropertyInspectionFee,
	}
}

// CalculateDocumentReviewFee is the fee charged when documents are submitted,
// before the application is reviewed. It does not depend on the rent.
func CalculateDocumentReviewFee(monthlyRent float64) domain.FeeBreakdown {
	return domain.FeeBreakdown{
		ServiceFee:        0,
		DocumentUploadFee: DocumentUploadFee,
		Total:             DocumentUploadFee,
	}
}

// CalculateDepositAndInterest is the bundle charged after approval. The
// document fee was collected at review time and is not part of it.
func CalculateDepositAndInterest(monthlyRent float64, paymentTerm int) domain.FeeBreakdown {
	serviceFee := monthlyRent
	monthlyInterest := monthlyRent * InterestFactor
	monthlyPaymentWithInterest := monthlyRent + monthlyInterest
	refundableRentSecurity := monthlyPaymentWithInterest * SecurityMonths
	interest := monthlyRent * InterestFactor * float64(paymentTerm)

	return domain.FeeBreakdown{
		ServiceFee:                 serviceFee,
		PropertyInspectionFee:      PropertyInspectionFee,
		RefundableRentSecurity:     refundableRentSecurity,
		MonthlyInterest:            monthlyInterest,
		MonthlyPaymentWithInterest: monthlyPaymentWithInterest,
		Interest:                   interest,
		Total:                      refundableRentSecurity + serviceFee + PropertyInspectionFee,
	}
}
