package application

import (
	"time"

	"nbfc-underwriting/internal/domain/credit"
)

type CreateInput struct {
	FullName           string  `json:"full_name"`
	MobileNumber       string  `json:"mobile_number"`
	PANNumber          string  `json:"pan_number"`
	AadhaarNumber      string  `json:"aadhaar_number"`
	CurrentAddress     string  `json:"current_address"`
	CompanyName        string  `json:"company_name"`
	BankName           string  `json:"bank_name"`
	AccountNumber      string  `json:"account_number"`
	IFSCCode           string  `json:"ifsc_code"`
	MonthlyIncome      float64 `json:"monthly_income"`
	EmploymentType     string  `json:"employment_type"`
	ResidenceType      string  `json:"residence_type"`
	EMIDeductionMethod string  `json:"emi_deduction_method"`
	EMIDeductionDate   int     `json:"emi_deduction_date"`
}

type ApplicationDTO struct {
	ApplicationID  string  `json:"application_id"`
	FullName       string  `json:"full_name"`
	MobileNumber   string  `json:"mobile_number"`
	MonthlyIncome  float64 `json:"monthly_income"`
	EmploymentType string  `json:"employment_type"`
	ResidenceType  string  `json:"residence_type"`
	Status         string  `json:"status"`
	PANStatus      string  `json:"pan_status"`
	AadhaarStatus  string  `json:"aadhaar_status"`
	VideoKycStatus string  `json:"video_kyc_status"`

	StatementAnalysis *credit.Statement           `json:"statement_analysis,omitempty"`
	CreditScore       *credit.InternalCreditScore `json:"credit_score,omitempty"`
	LoanOffer         *credit.LoanOffer           `json:"loan_offer,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
