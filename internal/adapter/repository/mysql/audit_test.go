package mysql

import (
	"context"
	"testing"
	"time"

	auditDomain "nbfc-underwriting/internal/domain/audit"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type auditSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	EntryID       string    `gorm:"size:36;column:entry_id"`
	ApplicationID string    `gorm:"size:32;column:application_id"`
	Action        string    `gorm:"column:action"`
	Actor         string    `gorm:"column:actor"`
	Details       string    `gorm:"type:text;column:details"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (auditSQLite) TableName() string { return "audit_log" }

func openAuditTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&auditSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeEntry(applicationID string, action auditDomain.Action) *auditDomain.Entry {
	return &auditDomain.Entry{
		EntryID:       uuid.NewString(),
		ApplicationID: applicationID,
		Action:        action,
		Actor:         "emp-1",
		Details:       "details",
	}
}

func TestAuditRepository_AppendAndListByApplication(t *testing.T) {
	db := openAuditTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	appA := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	appB := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	for _, e := range []*auditDomain.Entry{
		makeEntry(appA, auditDomain.ActionPanVerified),
		makeEntry(appB, auditDomain.ActionReject),
		makeEntry(appA, auditDomain.ActionVkycCompleted),
		makeEntry(appA, auditDomain.ActionApprove),
	} {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := repo.ListByApplicationID(ctx, appA)
	if err != nil {
		t.Fatalf("ListByApplicationID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Newest first.
	if got[0].Action != auditDomain.ActionApprove || got[2].Action != auditDomain.ActionPanVerified {
		t.Fatalf("unexpected order: %s ... %s", got[0].Action, got[2].Action)
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len = %d, want 4", len(all))
	}
}
