package credit

import "math"

// Principal cap across all risk categories.
const maxPrincipal = 500000

// GenerateOffer prices a loan for the applicant from the score's risk
// category. The principal is income times a category multiplier, capped at
// 500000 and floored to the nearest 1000. The EMI follows the standard
// reducing-balance amortization formula and is rounded to the nearest whole
// currency unit. Zero principal yields a zero EMI rather than NaN.
func GenerateOffer(app Applicant, score InternalCreditScore) LoanOffer {
	var (
		roi        float64
		tenure     int
		multiplier float64
	)
	switch score.Category {
	case RiskLow:
		roi, tenure, multiplier = 10.5, 36, 12
	case RiskMedium:
		roi, tenure, multiplier = 14.5, 24, 8
	case RiskHigh:
		roi, tenure, multiplier = 19.5, 12, 4
	default: // RiskVeryHigh
		roi, tenure, multiplier = 24.0, 6, 2
	}

	principal := math.Min(app.MonthlyIncome*multiplier, maxPrincipal)
	principal = math.Floor(principal/1000) * 1000

	var emi float64
	if principal > 0 {
		r := roi / 12 / 100
		compound := math.Pow(1+r, float64(tenure))
		emi = math.Round(principal * r * compound / (compound - 1))
	}

	return LoanOffer{
		Amount:       principal,
		ROI:          roi,
		TenureMonths: tenure,
		EMI:          emi,
	}
}
