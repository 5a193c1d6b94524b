package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	domain "nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/domain/credit"
	"nbfc-underwriting/internal/domain/uow"
	"nbfc-underwriting/internal/testutil/appmock"
	"nbfc-underwriting/internal/testutil/auditmock"
	"nbfc-underwriting/internal/testutil/uowmock"
	"nbfc-underwriting/internal/testutil/verifymock"
	appUC "nbfc-underwriting/internal/usecase/application"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const validAppID = "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func validCreateBody() string {
	return `{
		"full_name": "Asha Rao",
		"mobile_number": "9876543210",
		"pan_number": "ABCDE1234F",
		"aadhaar_number": "123456789012",
		"bank_name": "HDFC Bank",
		"account_number": "50100012345678",
		"ifsc_code": "HDFC0000123",
		"monthly_income": 65000,
		"employment_type": "SALARIED",
		"residence_type": "OWN"
	}`
}

func draftApplication(applicationID string) *domain.Application {
	return &domain.Application{
		ApplicationID:   applicationID,
		FullName:        "Asha Rao",
		MobileNumber:    "9876543210",
		MonthlyIncome:   65000,
		Employment:      credit.EmploymentSalaried,
		Residence:       credit.ResidenceOwn,
		PANStatus:       domain.VerificationPending,
		AadhaarStatus:   domain.VerificationPending,
		VideoKycStatus:  domain.VkycNotStarted,
		Status:          domain.StatusDraft,
		StatusUpdatedAt: time.Now().UTC(),
	}
}

func TestCreateApplication_Created(t *testing.T) {
	e := newEcho()
	repo := &appmock.Repo{
		GetDraftByMobileFn: func(ctx context.Context, mobile string) (*domain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, a *domain.Application) error { return nil },
	}
	h := NewApplicationHandler(appUC.NewUsecase(repo, &verifymock.Analyzer{}, uowmock.New()))

	req := jsonRequest(http.MethodPost, "/applications", validCreateBody())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dto appUC.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != string(domain.StatusDraft) || len(dto.ApplicationID) != 32 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestCreateApplication_InvalidBody(t *testing.T) {
	e := newEcho()
	h := NewApplicationHandler(appUC.NewUsecase(&appmock.Repo{}, &verifymock.Analyzer{}, uowmock.New()))

	req := jsonRequest(http.MethodPost, "/applications", `{not json`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCreateApplication_ValidationFails(t *testing.T) {
	e := newEcho()
	h := NewApplicationHandler(appUC.NewUsecase(&appmock.Repo{}, &verifymock.Analyzer{}, uowmock.New()))

	body := `{
		"full_name": "Asha Rao",
		"mobile_number": "12345",
		"pan_number": "not-a-pan",
		"aadhaar_number": "123",
		"bank_name": "HDFC Bank",
		"account_number": "50100012345678",
		"ifsc_code": "HDFC0000123",
		"monthly_income": 65000,
		"employment_type": "FREELANCE",
		"residence_type": "OWN"
	}`
	req := jsonRequest(http.MethodPost, "/applications", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !containsFieldMsg(resp.Details, "PANNumber", "valid PAN") {
		t.Fatalf("missing PAN detail: %+v", resp.Details)
	}
	if !containsFieldMsg(resp.Details, "MobileNumber", "10-digit mobile") {
		t.Fatalf("missing mobile detail: %+v", resp.Details)
	}
	if !containsFieldMsg(resp.Details, "EmploymentType", "must be one of: SALARIED SELF_EMPLOYED") {
		t.Fatalf("missing employment detail: %+v", resp.Details)
	}
}

func TestCreateApplication_OpenDraftConflict(t *testing.T) {
	e := newEcho()
	repo := &appmock.Repo{
		GetDraftByMobileFn: func(ctx context.Context, mobile string) (*domain.Application, error) {
			return draftApplication(validAppID), nil
		},
	}
	h := NewApplicationHandler(appUC.NewUsecase(repo, &verifymock.Analyzer{}, uowmock.New()))

	req := jsonRequest(http.MethodPost, "/applications", validCreateBody())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestGetApplication_BadPathParam(t *testing.T) {
	e := newEcho()
	h := NewApplicationHandler(appUC.NewUsecase(&appmock.Repo{}, &verifymock.Analyzer{}, uowmock.New()))

	req := httptest.NewRequest(http.MethodGet, "/applications/nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues("nope")

	if err := h.GetApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestGetApplication_NotFound(t *testing.T) {
	e := newEcho()
	repo := &appmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	h := NewApplicationHandler(appUC.NewUsecase(repo, &verifymock.Analyzer{}, uowmock.New()))

	req := httptest.NewRequest(http.MethodGet, "/applications/"+validAppID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(validAppID)

	if err := h.GetApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestSubmitApplication_ScoresAndTransitions(t *testing.T) {
	e := newEcho()
	app := draftApplication(validAppID)
	repo := &appmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return app, nil
		},
		SaveFn: func(ctx context.Context, a *domain.Application) error { return nil },
	}
	analyzer := &verifymock.Analyzer{
		AnalyzeFn: func(ctx context.Context, acct, ifsc string) (credit.Statement, error) {
			return credit.Statement{
				AvgMonthlyBalance:    60000,
				SalaryCredits:        65000,
				IncomeStabilityScore: 90,
			}, nil
		},
	}
	audits := &auditmock.Repo{}
	tx := uowmock.Passthrough(uow.Repos{Applications: repo, Audit: audits}, func(ctx context.Context, id string) (*domain.Application, error) {
		return app, nil
	})
	h := NewApplicationHandler(appUC.NewUsecase(repo, analyzer, tx))

	req := jsonRequest(http.MethodPost, "/applications/"+validAppID+"/submit", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(validAppID)

	if err := h.SubmitApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dto appUC.ApplicationDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != string(domain.StatusSubmitted) {
		t.Fatalf("status = %s, want SUBMITTED", dto.Status)
	}
	if dto.CreditScore == nil || dto.LoanOffer == nil {
		t.Fatalf("score/offer missing: %+v", dto)
	}
	if len(audits.Entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(audits.Entries))
	}
}

func TestSubmitApplication_NonDraftConflict(t *testing.T) {
	e := newEcho()
	app := draftApplication(validAppID)
	app.Status = domain.StatusApproved
	repo := &appmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			return app, nil
		},
	}
	h := NewApplicationHandler(appUC.NewUsecase(repo, &verifymock.Analyzer{}, uowmock.New()))

	req := jsonRequest(http.MethodPost, "/applications/"+validAppID+"/submit", `{}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(validAppID)

	if err := h.SubmitApplication(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}
