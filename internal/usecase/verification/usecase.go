package verification

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/domain/audit"
	"nbfc-underwriting/internal/domain/credit"
	"nbfc-underwriting/internal/domain/uow"
	"nbfc-underwriting/internal/domain/verify"

	"github.com/google/uuid"
)

type Usecase struct {
	repo     domain.Repository
	provider verify.VerificationProvider
	detector verify.LivenessDetector
	uow      uow.UnitOfWork
}

func NewUsecase(apps domain.Repository, provider verify.VerificationProvider, detector verify.LivenessDetector, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: apps, provider: provider, detector: detector, uow: tx}
}

type OutcomeDTO struct {
	ApplicationID string `json:"application_id"`
	Status        string `json:"status"`
	AuditEntryID  string `json:"audit_entry_id"`
	Detail        string `json:"detail,omitempty"`
}

// VerifyPAN runs the PAN registry check and records the structured outcome.
// A provider error is recorded as FAILED with its own audit entry; it is
// never silently marked verified.
func (u *Usecase) VerifyPAN(ctx context.Context, applicationID, actor string) (*OutcomeDTO, error) {
	a, err := u.getOpen(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	status := domain.VerificationFailed
	action := audit.ActionPanFailed
	res, callErr := u.provider.VerifyPAN(ctx, a.PANNumber, a.FullName)
	details := res.Detail
	switch {
	case callErr != nil:
		details = fmt.Sprintf("PAN verification unavailable: %v", callErr)
	case res.Verified:
		status = domain.VerificationVerified
		action = audit.ActionPanVerified
		details = fmt.Sprintf("PAN verified against registry. Ref: %s", res.Reference)
	}

	return u.record(ctx, applicationID, actor, action, details, func(a *domain.Application) {
		a.PANStatus = status
	}, string(status))
}

// VerifyAadhaar mirrors VerifyPAN for the UIDAI check.
func (u *Usecase) VerifyAadhaar(ctx context.Context, applicationID, actor string) (*OutcomeDTO, error) {
	a, err := u.getOpen(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	status := domain.VerificationFailed
	action := audit.ActionAadhaarFailed
	res, callErr := u.provider.VerifyAadhaar(ctx, a.AadhaarNumber)
	details := res.Detail
	switch {
	case callErr != nil:
		details = fmt.Sprintf("Aadhaar verification unavailable: %v", callErr)
	case res.Verified:
		status = domain.VerificationVerified
		action = audit.ActionAadhaarVerified
		details = fmt.Sprintf("Aadhaar verified via UIDAI. Ref: %s", res.Reference)
	}

	return u.record(ctx, applicationID, actor, action, details, func(a *domain.Application) {
		a.AadhaarStatus = status
	}, string(status))
}

// CheckLiveness evaluates one biometric capture. A retake replaces the
// prior result on the application.
func (u *Usecase) CheckLiveness(ctx context.Context, applicationID, actor, selfieRef string) (*OutcomeDTO, error) {
	if _, err := u.getOpen(ctx, applicationID); err != nil {
		return nil, err
	}

	result, callErr := u.detector.Detect(ctx, selfieRef)
	action := audit.ActionLivenessFailed
	details := fmt.Sprintf("Liveness check failed: %s", result.Reasoning)
	switch {
	case callErr != nil:
		result = credit.LivenessResult{IsLive: false, Reasoning: callErr.Error()}
		details = fmt.Sprintf("Liveness detection unavailable: %v", callErr)
	case result.IsLive:
		action = audit.ActionLivenessPassed
		details = fmt.Sprintf("Liveness confirmed with %d%% confidence.", result.ConfidenceScore)
	}

	outcome := "FAILED"
	if result.IsLive {
		outcome = "PASSED"
	}
	return u.record(ctx, applicationID, actor, action, details, func(a *domain.Application) {
		a.LivenessResult = &result
	}, outcome)
}

func (u *Usecase) getOpen(ctx context.Context, applicationID string) (*domain.Application, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if a.Status.Terminal() {
		return nil, domain.ErrTerminalState
	}
	return a, nil
}

func (u *Usecase) record(ctx context.Context, applicationID, actor string, action audit.Action, details string, apply func(*domain.Application), outcome string) (*OutcomeDTO, error) {
	var dto *OutcomeDTO
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if a.Status.Terminal() {
			return domain.ErrTerminalState
		}
		apply(a)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		entry := &audit.Entry{
			EntryID:       uuid.NewString(),
			ApplicationID: a.ApplicationID,
			Action:        action,
			Actor:         actor,
			Details:       details,
		}
		if err := r.Audit.Append(ctx, entry); err != nil {
			return err
		}
		dto = &OutcomeDTO{
			ApplicationID: a.ApplicationID,
			Status:        outcome,
			AuditEntryID:  entry.EntryID,
			Detail:        details,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
