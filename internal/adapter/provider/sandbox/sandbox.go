package sandbox

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"nbfc-underwriting/internal/domain/credit"
	"nbfc-underwriting/internal/domain/verify"
)

// Deterministic stand-ins for the external collaborators. They behave like
// the real registries for demo data: the same input always produces the
// same outcome, and inputs carrying well-known failure markers fail.
//
// Marker conventions:
//   - PAN starting with "XXXXX" fails the registry match
//   - Aadhaar of 12 identical digits fails the UIDAI check
//   - account numbers ending in "0000" produce a distressed statement
//   - selfie refs containing "spoof" fail liveness

type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

var _ verify.VerificationProvider = (*Provider)(nil)

func (p *Provider) VerifyPAN(ctx context.Context, panNumber, fullName string) (verify.Result, error) {
	if err := ctx.Err(); err != nil {
		return verify.Result{}, err
	}
	if strings.HasPrefix(panNumber, "XXXXX") {
		return verify.Result{Verified: false, Detail: "PAN not found in registry"}, nil
	}
	return verify.Result{
		Verified:  true,
		Reference: fmt.Sprintf("NSDL-%08x", digest(panNumber+fullName)),
	}, nil
}

func (p *Provider) VerifyAadhaar(ctx context.Context, aadhaarNumber string) (verify.Result, error) {
	if err := ctx.Err(); err != nil {
		return verify.Result{}, err
	}
	if allSame(aadhaarNumber) {
		return verify.Result{Verified: false, Detail: "Aadhaar demographic mismatch"}, nil
	}
	return verify.Result{
		Verified:  true,
		Reference: fmt.Sprintf("UIDAI-%08x", digest(aadhaarNumber)),
	}, nil
}

type Analyzer struct{}

func NewAnalyzer() *Analyzer { return &Analyzer{} }

var _ verify.StatementAnalyzer = (*Analyzer)(nil)

func (a *Analyzer) Analyze(ctx context.Context, accountNumber, ifscCode string) (credit.Statement, error) {
	if err := ctx.Err(); err != nil {
		return credit.Statement{}, err
	}
	if strings.HasSuffix(accountNumber, "0000") {
		return credit.Statement{
			AvgMonthlyBalance:    1200,
			SalaryCredits:        18000,
			ExistingEMIs:         3,
			EMIAmount:            11000,
			Bounces:              2,
			NegativeBalanceDays:  9,
			IncomeStabilityScore: 35,
			Summary:              "Irregular inflows with repeated bounces and negative balance days.",
		}, nil
	}

	h := digest(accountNumber + ifscCode)
	salary := 40000 + float64(h%8)*10000
	return credit.Statement{
		AvgMonthlyBalance:    salary * 0.7,
		SalaryCredits:        salary,
		ExistingEMIs:         int(h % 3),
		EMIAmount:            float64(h%3) * 6000,
		Bounces:              0,
		NegativeBalanceDays:  0,
		IncomeStabilityScore: 82 + int(h%15),
		Summary:              "Stable income detected with healthy credit behavior.",
	}, nil
}

type Detector struct{}

func NewDetector() *Detector { return &Detector{} }

var _ verify.LivenessDetector = (*Detector)(nil)

func (d *Detector) Detect(ctx context.Context, selfieRef string) (credit.LivenessResult, error) {
	if err := ctx.Err(); err != nil {
		return credit.LivenessResult{}, err
	}
	if strings.Contains(strings.ToLower(selfieRef), "spoof") {
		return credit.LivenessResult{
			IsLive:          false,
			ConfidenceScore: 12,
			Reasoning:       "Moire pattern suggests a photo of a screen.",
		}, nil
	}
	return credit.LivenessResult{
		IsLive:          true,
		ConfidenceScore: 85 + int(digest(selfieRef)%15),
		Reasoning:       "Natural depth and texture consistent with a live capture.",
	}, nil
}

func digest(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

func allSame(s string) bool {
	if s == "" {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
