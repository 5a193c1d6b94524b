package credit

// Score maps an applicant and an optional statement analysis to an internal
// credit score. Pure and total: a nil statement contributes nothing to the
// bank-behavior factor and raises no bank flags; zero income yields no
// discipline contribution instead of a divide-by-zero.
func Score(app Applicant, stmt *Statement) InternalCreditScore {
	flags := make([]RiskFlag, 0, 4)

	// 1. Bank statement behavior
	bank := 0
	if stmt != nil {
		if stmt.AvgMonthlyBalance > 50000 {
			bank += 80
		}
		if stmt.SalaryCredits > 0 {
			bank += 70
		}
		if stmt.Bounces == 0 {
			bank += 60
		}
		if stmt.NegativeBalanceDays > 2 {
			bank -= 100
			flags = append(flags, RiskFlag{
				Code:        FlagNegativeBalance,
				Severity:    SeverityHigh,
				Description: "Recent negative balance instances detected",
			})
		}
		if stmt.Bounces > 0 {
			flags = append(flags, RiskFlag{
				Code:        FlagBounceDetected,
				Severity:    SeverityHigh,
				Description: "Cheque/NACH bounce history",
			})
		}
		if stmt.ExistingEMIs > 2 {
			bank -= 60
		}
	}

	// 2. Income & employment
	income := 0
	if app.Employment == EmploymentSalaried {
		income += 70
	}
	if app.MonthlyIncome < 15000 {
		income -= 60
		flags = append(flags, RiskFlag{
			Code:        FlagLowIncome,
			Severity:    SeverityMedium,
			Description: "Net monthly income below risk threshold",
		})
	} else if app.MonthlyIncome > 100000 {
		income += 30
	}

	// 3. Residence
	residence := 0
	switch app.Residence {
	case ResidenceOwn:
		residence += 50
	case ResidenceRented:
		residence -= 40
		flags = append(flags, RiskFlag{
			Code:        FlagRentedResidence,
			Severity:    SeverityLow,
			Description: "Applicant resides in rented property",
		})
	}

	// 4. KYC strength: verification is complete by the time scoring runs.
	kyc := 50

	// 5. Repayment discipline (debt-to-income)
	discipline := 0
	if app.MonthlyIncome > 0 {
		var dti float64
		if stmt != nil {
			dti = stmt.EMIAmount / app.MonthlyIncome
		}
		if dti <= 0.4 {
			discipline += 40
		} else if dti > 0.5 {
			discipline -= 80
			flags = append(flags, RiskFlag{
				Code:        FlagHighDTI,
				Severity:    SeverityHigh,
				Description: "Debt-to-Income ratio exceeds 50%",
			})
		}
	}

	// 6. Stability
	stability := 20

	score := BaseScore + bank + income + residence + kyc + discipline + stability
	if score < MinScore {
		score = MinScore
	}
	if score > MaxScore {
		score = MaxScore
	}

	return InternalCreditScore{
		Score: score,
		Factors: Factors{
			BankBehavior:     bank,
			IncomeEmployment: income,
			Residence:        residence,
			KYC:              kyc,
			Discipline:       discipline,
			Stability:        stability,
		},
		RiskFlags: flags,
		Category:  Categorize(score),
	}
}

// Categorize derives the risk category from the clamped score alone.
func Categorize(score int) RiskCategory {
	switch {
	case score >= 750:
		return RiskLow
	case score >= 650:
		return RiskMedium
	case score >= 550:
		return RiskHigh
	default:
		return RiskVeryHigh
	}
}
