package credit

// Score range and base for the internal bureau-style score.
const (
	BaseScore = 450
	MinScore  = 300
	MaxScore  = 900
)

type Employment string

const (
	EmploymentSalaried     Employment = "SALARIED"
	EmploymentSelfEmployed Employment = "SELF_EMPLOYED"
)

type Residence string

const (
	ResidenceOwn    Residence = "OWN"
	ResidenceFamily Residence = "FAMILY"
	ResidenceRented Residence = "RENTED"
)

type RiskCategory string

const (
	RiskLow      RiskCategory = "LOW"       // 750-900
	RiskMedium   RiskCategory = "MEDIUM"    // 650-749
	RiskHigh     RiskCategory = "HIGH"      // 550-649
	RiskVeryHigh RiskCategory = "VERY_HIGH" // 300-549
)

type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Flag codes raised by the scoring pass.
const (
	FlagNegativeBalance = "NEGATIVE_BALANCE"
	FlagBounceDetected  = "BOUNCE_DETECTED"
	FlagLowIncome       = "LOW_INCOME"
	FlagRentedResidence = "RENTED_RESIDENCE"
	FlagHighDTI         = "HIGH_DTI"
)

type RiskFlag struct {
	Code        string   `json:"code"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// Applicant carries the financial/behavioral inputs to scoring.
type Applicant struct {
	MonthlyIncome float64    `json:"monthly_income"`
	Employment    Employment `json:"employment_type"`
	Residence     Residence  `json:"residence_type"`
}

// Statement is the structured output of the external statement analyzer.
// Value object; never mutated after creation. Summary is display-only.
type Statement struct {
	AvgMonthlyBalance    float64 `json:"avg_monthly_balance"`
	SalaryCredits        float64 `json:"salary_credits"`
	ExistingEMIs         int     `json:"existing_emis"`
	EMIAmount            float64 `json:"emi_amount"`
	Bounces              int     `json:"bounces"`
	NegativeBalanceDays  int     `json:"negative_balance_days"`
	IncomeStabilityScore int     `json:"income_stability_score"`
	Summary              string  `json:"summary"`
}

// LivenessResult is the structured verdict of one biometric capture attempt.
type LivenessResult struct {
	IsLive          bool   `json:"is_live"`
	ConfidenceScore int    `json:"confidence_score"`
	Reasoning       string `json:"reasoning"`
}

// Factors is the per-factor point breakdown behind a score.
type Factors struct {
	BankBehavior     int `json:"bank_behavior"`
	IncomeEmployment int `json:"income_employment"`
	Residence        int `json:"residence"`
	KYC              int `json:"kyc"`
	Discipline       int `json:"discipline"`
	Stability        int `json:"stability"`
}

// InternalCreditScore is the immutable output of one scoring pass.
type InternalCreditScore struct {
	Score     int          `json:"score"`
	Factors   Factors      `json:"factors"`
	RiskFlags []RiskFlag   `json:"risk_flags"`
	Category  RiskCategory `json:"category"`
}

// LoanOffer prices a loan from the risk category. Amount and EMI are whole
// currency units; Amount is floored to the nearest 1000.
type LoanOffer struct {
	Amount       float64 `json:"amount"`
	ROI          float64 `json:"roi"`
	TenureMonths int     `json:"tenure_months"`
	EMI          float64 `json:"emi"`
}
