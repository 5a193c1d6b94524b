package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domain "nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/domain/credit"
	"nbfc-underwriting/internal/domain/uow"
	"nbfc-underwriting/internal/domain/verify"
	"nbfc-underwriting/internal/testutil/appmock"
	"nbfc-underwriting/internal/testutil/auditmock"
	"nbfc-underwriting/internal/testutil/uowmock"
	"nbfc-underwriting/internal/testutil/verifymock"
	"nbfc-underwriting/internal/usecase/verification"

	"github.com/labstack/echo/v4"
)

func verificationFixture(app *domain.Application, provider *verifymock.Provider, detector *verifymock.Detector) (*VerificationHandler, *auditmock.Repo) {
	repo := &appmock.Repo{
		GetByApplicationIDFn: func(ctx context.Context, id string) (*domain.Application, error) {
			if app != nil && id == app.ApplicationID {
				return app, nil
			}
			return nil, domain.ErrNotFound
		},
		SaveFn: func(ctx context.Context, a *domain.Application) error { return nil },
	}
	audits := &auditmock.Repo{}
	tx := uowmock.Passthrough(uow.Repos{Applications: repo, Audit: audits}, func(ctx context.Context, id string) (*domain.Application, error) {
		if app != nil && id == app.ApplicationID {
			return app, nil
		}
		return nil, domain.ErrNotFound
	})
	return NewVerificationHandler(verification.NewUsecase(repo, provider, detector, tx)), audits
}

func runVerification(t *testing.T, applicationID, target, body string, call func(c echo.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	e := newEcho()
	req := jsonRequest(http.MethodPost, target, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("application_id")
	c.SetParamValues(applicationID)
	if err := call(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestVerifyPAN_Verified(t *testing.T) {
	app := draftApplication(validAppID)
	app.PANNumber = "ABCDE1234F"
	provider := &verifymock.Provider{
		VerifyPANFn: func(ctx context.Context, pan, name string) (verify.Result, error) {
			return verify.Result{Verified: true, Reference: "NSDL-001"}, nil
		},
	}
	h, audits := verificationFixture(app, provider, &verifymock.Detector{})

	rec := runVerification(t, validAppID, "/applications/"+validAppID+"/verify/pan", ``, h.VerifyPAN)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dto verification.OutcomeDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &dto); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if dto.Status != string(domain.VerificationVerified) {
		t.Fatalf("status = %s", dto.Status)
	}
	if app.PANStatus != domain.VerificationVerified {
		t.Fatalf("pan status = %s", app.PANStatus)
	}
	if len(audits.Entries) != 1 || !strings.Contains(audits.Entries[0].Details, "NSDL-001") {
		t.Fatalf("audit entries = %+v", audits.Entries)
	}
}

func TestVerifyPAN_ProviderDown(t *testing.T) {
	app := draftApplication(validAppID)
	provider := &verifymock.Provider{
		VerifyPANFn: func(ctx context.Context, pan, name string) (verify.Result, error) {
			return verify.Result{}, errors.New("registry unreachable")
		},
	}
	h, _ := verificationFixture(app, provider, &verifymock.Detector{})

	rec := runVerification(t, validAppID, "/applications/"+validAppID+"/verify/pan", ``, h.VerifyPAN)

	// A provider outage is a recorded FAILED outcome, not an HTTP error.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if app.PANStatus != domain.VerificationFailed {
		t.Fatalf("pan status = %s, want FAILED", app.PANStatus)
	}
}

func TestVerifyAadhaar_Mismatch(t *testing.T) {
	app := draftApplication(validAppID)
	provider := &verifymock.Provider{
		VerifyAadhaarFn: func(ctx context.Context, aadhaar string) (verify.Result, error) {
			return verify.Result{Verified: false, Detail: "OTP mismatch"}, nil
		},
	}
	h, audits := verificationFixture(app, provider, &verifymock.Detector{})

	rec := runVerification(t, validAppID, "/applications/"+validAppID+"/verify/aadhaar", ``, h.VerifyAadhaar)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if app.AadhaarStatus != domain.VerificationFailed {
		t.Fatalf("aadhaar status = %s", app.AadhaarStatus)
	}
	if len(audits.Entries) != 1 || !strings.Contains(audits.Entries[0].Details, "OTP mismatch") {
		t.Fatalf("audit entries = %+v", audits.Entries)
	}
}

func TestCheckLiveness_Passed(t *testing.T) {
	app := draftApplication(validAppID)
	detector := &verifymock.Detector{
		DetectFn: func(ctx context.Context, selfieRef string) (credit.LivenessResult, error) {
			return credit.LivenessResult{IsLive: true, ConfidenceScore: 95, Reasoning: "stable gaze"}, nil
		},
	}
	h, _ := verificationFixture(app, &verifymock.Provider{}, detector)

	body := `{"selfie_ref": "captures/abc123.jpg"}`
	rec := runVerification(t, validAppID, "/applications/"+validAppID+"/verify/liveness", body, h.CheckLiveness)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if app.LivenessResult == nil || !app.LivenessResult.IsLive {
		t.Fatalf("liveness result = %+v", app.LivenessResult)
	}
}

func TestCheckLiveness_MissingSelfieRef(t *testing.T) {
	h, _ := verificationFixture(draftApplication(validAppID), &verifymock.Provider{}, &verifymock.Detector{})

	rec := runVerification(t, validAppID, "/applications/"+validAppID+"/verify/liveness", `{}`, h.CheckLiveness)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestVerifyPAN_TerminalApplication(t *testing.T) {
	app := draftApplication(validAppID)
	app.Status = domain.StatusApproved
	h, audits := verificationFixture(app, &verifymock.Provider{}, &verifymock.Detector{})

	rec := runVerification(t, validAppID, "/applications/"+validAppID+"/verify/pan", ``, h.VerifyPAN)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(audits.Entries) != 0 {
		t.Fatalf("terminal application must not gain audit entries: %+v", audits.Entries)
	}
}

func TestVerifyPAN_NotFound(t *testing.T) {
	h, _ := verificationFixture(nil, &verifymock.Provider{}, &verifymock.Detector{})

	rec := runVerification(t, validAppID, "/applications/"+validAppID+"/verify/pan", ``, h.VerifyPAN)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}
