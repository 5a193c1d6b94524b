package verify

import (
	"context"

	"nbfc-underwriting/internal/domain/credit"
)

// Result is the structured outcome of an identity verification call. A
// provider transport error and Verified=false are both recorded as FAILED;
// neither is ever coerced into a verified status.
type Result struct {
	Verified  bool
	Reference string
	Detail    string
}

// VerificationProvider is the boundary to the PAN/Aadhaar authorities.
// Retry and timeout policy live behind this interface, not in the core.
type VerificationProvider interface {
	VerifyPAN(ctx context.Context, panNumber, fullName string) (Result, error)
	VerifyAadhaar(ctx context.Context, aadhaarNumber string) (Result, error)
}

// StatementAnalyzer turns raw bank statement input into the structured
// summary the scoring engine consumes.
type StatementAnalyzer interface {
	Analyze(ctx context.Context, accountNumber, ifscCode string) (credit.Statement, error)
}

// LivenessDetector evaluates one biometric capture attempt.
type LivenessDetector interface {
	Detect(ctx context.Context, selfieRef string) (credit.LivenessResult, error)
}
