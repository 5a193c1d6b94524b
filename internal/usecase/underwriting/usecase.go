package underwriting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	domain "nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/domain/audit"
	"nbfc-underwriting/internal/domain/credit"
	"nbfc-underwriting/internal/domain/uow"

	"github.com/google/uuid"
)

type Usecase struct {
	repo      domain.Repository
	auditRepo audit.Repository
	uow       uow.UnitOfWork
}

func NewUsecase(apps domain.Repository, audits audit.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: apps, auditRepo: audits, uow: tx}
}

// Decide applies an APPROVE or REJECT decision. Both require a non-empty
// justification; APPROVE additionally requires completed video KYC. A
// failed precondition leaves the application untouched and appends nothing.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	justification := strings.TrimSpace(in.Justification)
	if justification == "" {
		return nil, domain.ErrEmptyJustification
	}
	var target domain.Status
	switch in.Decision {
	case DecisionApprove:
		target = domain.StatusApproved
	case DecisionReject:
		target = domain.StatusRejected
	default:
		return nil, fmt.Errorf("unknown decision %q", in.Decision)
	}

	var dto *DecisionDTO
	err := u.uow.WithinApplicationTx(ctx, in.ApplicationID, func(r uow.Repos, a *domain.Application) error {
		// Hard policy gate: face-to-face verification before fund sanction.
		if target == domain.StatusApproved && a.VideoKycStatus != domain.VkycCompleted {
			return domain.ErrVideoKycIncomplete
		}
		if err := a.Transition(target); err != nil {
			return err
		}
		a.StatusUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		entry := &audit.Entry{
			EntryID:       uuid.NewString(),
			ApplicationID: a.ApplicationID,
			Action:        decisionAction(target),
			Actor:         in.Actor,
			Details:       fmt.Sprintf("%s action performed. Decision Justification: %s", target, justification),
		}
		if err := r.Audit.Append(ctx, entry); err != nil {
			return err
		}

		dto = &DecisionDTO{
			ApplicationID: a.ApplicationID,
			Status:        string(a.Status),
			AuditEntryID:  entry.EntryID,
			DecidedAt:     a.StatusUpdatedAt,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// UpdateVideoKyc records a video-KYC sub-transition. It never changes the
// lifecycle status, but is refused once the application is terminal.
func (u *Usecase) UpdateVideoKyc(ctx context.Context, applicationID, actor string, status domain.VideoKycStatus) (*VkycDTO, error) {
	switch status {
	case domain.VkycInQueue, domain.VkycPending, domain.VkycCompleted, domain.VkycFailed:
	default:
		return nil, fmt.Errorf("unknown video KYC status %q", status)
	}

	var dto *VkycDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Status.Terminal() {
			return domain.ErrTerminalState
		}
		a.VideoKycStatus = status
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		entry := &audit.Entry{
			EntryID:       uuid.NewString(),
			ApplicationID: a.ApplicationID,
			Action:        vkycAction(status),
			Actor:         actor,
			Details:       fmt.Sprintf("V-KYC interaction result updated to %s.", status),
		}
		if err := r.Audit.Append(ctx, entry); err != nil {
			return err
		}

		dto = &VkycDTO{
			ApplicationID:  a.ApplicationID,
			VideoKycStatus: string(a.VideoKycStatus),
			AuditEntryID:   entry.EntryID,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Recommendation is the advisory read-only view. It never feeds Decide.
func (u *Usecase) Recommendation(ctx context.Context, applicationID string) (*credit.Recommendation, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	rec := credit.Recommend(a.CreditScore, a.LivenessResult, a.StatementAnalysis, a.MonthlyIncome)
	return &rec, nil
}

func (u *Usecase) AuditTrail(ctx context.Context, applicationID string) ([]audit.Entry, error) {
	return u.auditRepo.ListByApplicationID(ctx, applicationID)
}

func decisionAction(s domain.Status) audit.Action {
	if s == domain.StatusApproved {
		return audit.ActionApprove
	}
	return audit.ActionReject
}

func vkycAction(s domain.VideoKycStatus) audit.Action {
	switch s {
	case domain.VkycCompleted:
		return audit.ActionVkycCompleted
	case domain.VkycFailed:
		return audit.ActionVkycFailed
	default:
		return audit.ActionVkycInit
	}
}
