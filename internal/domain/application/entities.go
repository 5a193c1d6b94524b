package application

import (
	"time"

	"gorm.io/gorm"

	"nbfc-underwriting/internal/domain/credit"
)

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusSubmitted Status = "SUBMITTED"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "PENDING"
	VerificationVerified VerificationStatus = "VERIFIED"
	VerificationFailed   VerificationStatus = "FAILED"
)

type VideoKycStatus string

const (
	VkycNotStarted VideoKycStatus = "NOT_STARTED"
	VkycInQueue    VideoKycStatus = "IN_QUEUE"
	VkycPending    VideoKycStatus = "PENDING"
	VkycCompleted  VideoKycStatus = "COMPLETED"
	VkycFailed     VideoKycStatus = "FAILED"
)

type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id" json:"-"`
	ApplicationID string `gorm:"size:32;uniqueIndex:ux_applications_app_id_active" json:"application_id"`

	FullName       string `gorm:"size:128" json:"full_name"`
	MobileNumber   string `gorm:"size:16;index:idx_applications_mobile" json:"mobile_number"`
	PANNumber      string `gorm:"size:10" json:"pan_number"`
	AadhaarNumber  string `gorm:"size:12" json:"aadhaar_number"`
	CurrentAddress string `gorm:"type:text" json:"current_address"`
	CompanyName    string `gorm:"size:128" json:"company_name"`
	BankName       string `gorm:"size:64" json:"bank_name"`
	AccountNumber  string `gorm:"size:32" json:"account_number"`
	IFSCCode       string `gorm:"size:11" json:"ifsc_code"`

	MonthlyIncome float64           `gorm:"type:decimal(18,2)" json:"monthly_income"`
	Employment    credit.Employment `gorm:"size:16" json:"employment_type"`
	Residence     credit.Residence  `gorm:"size:16" json:"residence_type"`

	EMIDeductionMethod string `gorm:"size:32" json:"emi_deduction_method"`
	EMIDeductionDate   int    `json:"emi_deduction_date"`

	PANStatus      VerificationStatus `gorm:"size:16;default:'PENDING'" json:"pan_status"`
	AadhaarStatus  VerificationStatus `gorm:"size:16;default:'PENDING'" json:"aadhaar_status"`
	VideoKycStatus VideoKycStatus     `gorm:"size:16;default:'NOT_STARTED'" json:"video_kyc_status"`
	Status         Status             `gorm:"size:16;default:'DRAFT'" json:"status"`

	// Value objects produced by external collaborators or the scoring pass;
	// written once, then read-only.
	StatementAnalysis *credit.Statement           `gorm:"serializer:json;type:json" json:"statement_analysis,omitempty"`
	LivenessResult    *credit.LivenessResult      `gorm:"serializer:json;type:json" json:"liveness_result,omitempty"`
	CreditScore       *credit.InternalCreditScore `gorm:"serializer:json;type:json" json:"credit_score,omitempty"`
	LoanOffer         *credit.LoanOffer           `gorm:"serializer:json;type:json" json:"loan_offer,omitempty"`

	StatusUpdatedAt time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Application) TableName() string { return "loan_applications" }
