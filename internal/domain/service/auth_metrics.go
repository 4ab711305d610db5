package service

// Outcome labels shared by the auth counters.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// AuthMetrics records login funnel outcomes.
type AuthMetrics interface {
	OTPSent(outcome string)
	OTPVerified(outcome string)
	OAuthLogin(outcome string)
}
