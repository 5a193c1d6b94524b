package credit

import (
	"fmt"
	"math"
	"strings"
)

// Advisory verdicts. These never drive a lifecycle transition; the
// underwriting use case is the sole authority for status changes.
const (
	VerdictConfidentApprove   = "CONFIDENT APPROVE"
	VerdictConditionalApprove = "CONDITIONAL APPROVE"
	VerdictReject             = "REJECT RECOMMENDATION"
	VerdictManualReview       = "MANUAL REVIEW"
)

// Recommendation is a read-only derived view for the underwriting queue.
type Recommendation struct {
	Verdict    string `json:"verdict"`
	Confidence int    `json:"confidence"`
	Summary    string `json:"summary"`
}

// Recommend combines score, flags, and verification signals into a
// qualitative verdict plus a confidence percentage. A nil score is treated
// as the floor of the range.
func Recommend(score *InternalCreditScore, liveness *LivenessResult, stmt *Statement, monthlyIncome float64) Recommendation {
	value := MinScore
	var flags []RiskFlag
	if score != nil {
		value = score.Score
		flags = score.RiskFlags
	}
	confidence := int(math.Round(float64(value-MinScore) / float64(MaxScore-MinScore) * 100))

	verdict := VerdictManualReview
	switch {
	case value >= 750 && len(flags) == 0:
		verdict = VerdictConfidentApprove
	case value >= 650:
		verdict = VerdictConditionalApprove
	case value < 550 || hasHighSeverity(flags):
		verdict = VerdictReject
	}

	var reasons []string
	if stmt != nil {
		if stmt.Bounces == 0 {
			reasons = append(reasons, "clean repayment history (0 bounces)")
		}
		if stmt.IncomeStabilityScore > 80 {
			reasons = append(reasons, "high income stability")
		}
		if monthlyIncome > 50000 {
			reasons = append(reasons, "strong debt service coverage")
		}
	}
	if liveness != nil && liveness.IsLive {
		reasons = append(reasons, "verified biometric liveness")
	}
	if len(flags) > 0 {
		codes := make([]string, len(flags))
		for i, f := range flags {
			codes[i] = f.Code
		}
		reasons = append(reasons, "notable risk factors: "+strings.Join(codes, ", "))
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}

	summary := fmt.Sprintf(
		"System suggests %s with %d%% confidence. Decision is supported by %s and an internal risk score of %d.",
		verdict, confidence, strings.Join(reasons, ", "), value,
	)

	return Recommendation{Verdict: verdict, Confidence: confidence, Summary: summary}
}

func hasHighSeverity(flags []RiskFlag) bool {
	for _, f := range flags {
		if f.Severity == SeverityHigh {
			return true
		}
	}
	return false
}
