package underwriting

import "time"

type Decision string

const (
	DecisionApprove Decision = "APPROVE"
	DecisionReject  Decision = "REJECT"
)

type DecideInput struct {
	ApplicationID string
	Actor         string // 32-char hex employee id
	Justification string
	Decision      Decision
}

type DecisionDTO struct {
	ApplicationID string    `json:"application_id"`
	Status        string    `json:"status"`
	AuditEntryID  string    `json:"audit_entry_id"`
	DecidedAt     time.Time `json:"decided_at"`
}

type VkycDTO struct {
	ApplicationID  string `json:"application_id"`
	VideoKycStatus string `json:"video_kyc_status"`
	AuditEntryID   string `json:"audit_entry_id"`
}
