package verifymock

import (
	"context"
	"errors"

	"nbfc-underwriting/internal/domain/credit"
	"nbfc-underwriting/internal/domain/verify"
)

var (
	_ verify.VerificationProvider = (*Provider)(nil)
	_ verify.StatementAnalyzer    = (*Analyzer)(nil)
	_ verify.LivenessDetector     = (*Detector)(nil)
)

var errUnimplemented = errors.New("verifymock: method not implemented")

// Provider is a function-backed mock for the PAN/Aadhaar boundary.
type Provider struct {
	VerifyPANFn     func(ctx context.Context, panNumber, fullName string) (verify.Result, error)
	VerifyAadhaarFn func(ctx context.Context, aadhaarNumber string) (verify.Result, error)
}

func (m *Provider) VerifyPAN(ctx context.Context, panNumber, fullName string) (verify.Result, error) {
	if m.VerifyPANFn != nil {
		return m.VerifyPANFn(ctx, panNumber, fullName)
	}
	return verify.Result{}, errUnimplemented
}

func (m *Provider) VerifyAadhaar(ctx context.Context, aadhaarNumber string) (verify.Result, error) {
	if m.VerifyAadhaarFn != nil {
		return m.VerifyAadhaarFn(ctx, aadhaarNumber)
	}
	return verify.Result{}, errUnimplemented
}

// Analyzer is a function-backed mock for the statement analyzer boundary.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, accountNumber, ifscCode string) (credit.Statement, error)
}

func (m *Analyzer) Analyze(ctx context.Context, accountNumber, ifscCode string) (credit.Statement, error) {
	if m.AnalyzeFn != nil {
		return m.AnalyzeFn(ctx, accountNumber, ifscCode)
	}
	return credit.Statement{}, errUnimplemented
}

// Detector is a function-backed mock for the liveness boundary.
type Detector struct {
	DetectFn func(ctx context.Context, selfieRef string) (credit.LivenessResult, error)
}

func (m *Detector) Detect(ctx context.Context, selfieRef string) (credit.LivenessResult, error) {
	if m.DetectFn != nil {
		return m.DetectFn(ctx, selfieRef)
	}
	return credit.LivenessResult{}, errUnimplemented
}
