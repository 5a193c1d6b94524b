package audit

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("audit entry not found")

type Action string

const (
	ActionApprove         Action = "APPROVE"
	ActionReject          Action = "REJECT"
	ActionSubmitted       Action = "SUBMITTED"
	ActionVkycInit        Action = "VKYC_INIT"
	ActionVkycCompleted   Action = "VKYC_COMPLETED"
	ActionVkycFailed      Action = "VKYC_FAILED"
	ActionPanVerified     Action = "PAN_VERIFIED"
	ActionPanFailed       Action = "PAN_VERIFICATION_FAILED"
	ActionAadhaarVerified Action = "AADHAAR_VERIFIED"
	ActionAadhaarFailed   Action = "AADHAAR_VERIFICATION_FAILED"
	ActionLivenessPassed  Action = "LIVENESS_PASSED"
	ActionLivenessFailed  Action = "LIVENESS_FAILED"
)

// Entry is one immutable record in the underwriting trail. Entries are only
// ever appended; nothing updates or deletes them.
type Entry struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	EntryID       string    `gorm:"column:entry_id;type:char(36);not null;uniqueIndex" json:"id"`
	ApplicationID string    `gorm:"column:application_id;type:char(32);not null;index" json:"application_id"`
	Action        Action    `gorm:"column:action;size:32;not null" json:"action"`
	Actor         string    `gorm:"column:actor;size:64;not null" json:"actor"`
	Details       string    `gorm:"column:details;type:text" json:"details"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}

func (Entry) TableName() string { return "audit_log" }
