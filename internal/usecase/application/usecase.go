package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/domain/audit"
	"nbfc-underwriting/internal/domain/credit"
	"nbfc-underwriting/internal/domain/uow"
	"nbfc-underwriting/internal/domain/verify"
	"nbfc-underwriting/pkg/id"

	"github.com/google/uuid"
)

type Usecase struct {
	repo     domain.Repository
	analyzer verify.StatementAnalyzer
	uow      uow.UnitOfWork
}

func NewUsecase(r domain.Repository, analyzer verify.StatementAnalyzer, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: r, analyzer: analyzer, uow: tx}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ApplicationDTO, error) {
	if in.MobileNumber == "" || in.FullName == "" || in.MonthlyIncome < 0 {
		return nil, errors.New("invalid input")
	}
	employment := credit.Employment(in.EmploymentType)
	if employment != credit.EmploymentSalaried && employment != credit.EmploymentSelfEmployed {
		return nil, errors.New("invalid employment_type")
	}
	residence := credit.Residence(in.ResidenceType)
	if residence != credit.ResidenceOwn && residence != credit.ResidenceFamily && residence != credit.ResidenceRented {
		return nil, errors.New("invalid residence_type")
	}

	// Block if the applicant already has an open draft.
	pending, err := u.repo.GetDraftByMobile(ctx, in.MobileNumber)
	switch {
	case err == nil:
		return nil, fmt.Errorf("applicant %s already has an open draft: %s", in.MobileNumber, pending.ApplicationID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	a := &domain.Application{
		ApplicationID:      id.NewID32(),
		FullName:           in.FullName,
		MobileNumber:       in.MobileNumber,
		PANNumber:          in.PANNumber,
		AadhaarNumber:      in.AadhaarNumber,
		CurrentAddress:     in.CurrentAddress,
		CompanyName:        in.CompanyName,
		BankName:           in.BankName,
		AccountNumber:      in.AccountNumber,
		IFSCCode:           in.IFSCCode,
		MonthlyIncome:      in.MonthlyIncome,
		Employment:         employment,
		Residence:          residence,
		EMIDeductionMethod: in.EMIDeductionMethod,
		EMIDeductionDate:   in.EMIDeductionDate,
		PANStatus:          domain.VerificationPending,
		AadhaarStatus:      domain.VerificationPending,
		VideoKycStatus:     domain.VkycNotStarted,
		Status:             domain.StatusDraft,
		StatusUpdatedAt:    time.Now().UTC(),
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) Get(ctx context.Context, applicationID string) (*ApplicationDTO, error) {
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

func (u *Usecase) List(ctx context.Context) ([]ApplicationDTO, error) {
	apps, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

// Submit runs the statement analysis, scores the application, prices an
// offer, and moves DRAFT to SUBMITTED. Score and offer become populated as
// part of this transition; a failed analysis leaves the draft untouched.
func (u *Usecase) Submit(ctx context.Context, applicationID, actor string) (*ApplicationDTO, error) {
	// Read outside the transaction: the analyzer call may be slow and must
	// not hold the row lock.
	a, err := u.repo.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if a.Status != domain.StatusDraft {
		return nil, domain.ErrInvalidTransition
	}

	analysis, err := u.analyzer.Analyze(ctx, a.AccountNumber, a.IFSCCode)
	if err != nil {
		return nil, fmt.Errorf("statement analysis failed: %w", err)
	}

	var dto *ApplicationDTO
	err = u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, a *domain.Application) error {
		if err := a.Transition(domain.StatusSubmitted); err != nil {
			return err
		}

		score := credit.Score(credit.Applicant{
			MonthlyIncome: a.MonthlyIncome,
			Employment:    a.Employment,
			Residence:     a.Residence,
		}, &analysis)
		offer := credit.GenerateOffer(credit.Applicant{MonthlyIncome: a.MonthlyIncome}, score)

		a.StatementAnalysis = &analysis
		a.CreditScore = &score
		a.LoanOffer = &offer
		a.StatusUpdatedAt = time.Now().UTC()
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		entry := &audit.Entry{
			EntryID:       uuid.NewString(),
			ApplicationID: a.ApplicationID,
			Action:        audit.ActionSubmitted,
			Actor:         actor,
			Details:       fmt.Sprintf("Application submitted for underwriting. Internal score %d (%s).", score.Score, score.Category),
		}
		if err := r.Audit.Append(ctx, entry); err != nil {
			return err
		}

		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func toDTO(a *domain.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationID:     a.ApplicationID,
		FullName:          a.FullName,
		MobileNumber:      a.MobileNumber,
		MonthlyIncome:     a.MonthlyIncome,
		EmploymentType:    string(a.Employment),
		ResidenceType:     string(a.Residence),
		Status:            string(a.Status),
		PANStatus:         string(a.PANStatus),
		AadhaarStatus:     string(a.AadhaarStatus),
		VideoKycStatus:    string(a.VideoKycStatus),
		StatementAnalysis: a.StatementAnalysis,
		CreditScore:       a.CreditScore,
		LoanOffer:         a.LoanOffer,
		CreatedAt:         a.CreatedAt,
	}
}
