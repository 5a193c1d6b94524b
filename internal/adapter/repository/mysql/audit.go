package mysql

import (
	"context"

	auditDomain "nbfc-underwriting/internal/domain/audit"

	"gorm.io/gorm"
)

// AuditRepository only ever inserts and reads; the audit trail has no
// update or delete path anywhere in the codebase.
type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Append(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) ListByApplicationID(ctx context.Context, applicationID string) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *AuditRepository) ListAll(ctx context.Context) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
