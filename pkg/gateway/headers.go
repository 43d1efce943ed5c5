package gateway

// Response headers added to proxied responses.
const (
	HeaderAgent   = "x-smoltbot-agent"
	HeaderSession = "x-smoltbot-session"

	HeaderVerdict       = "X-AIP-Verdict"
	HeaderCheckpointID  = "X-AIP-Checkpoint-Id"
	HeaderAction        = "X-AIP-Action"
	HeaderProceed       = "X-AIP-Proceed"
	HeaderCertificateID = "X-AIP-Certificate-Id"
	HeaderChainHash     = "X-AIP-Chain-Hash"
	HeaderSynthetic     = "X-AIP-Synthetic"
	HeaderSource        = "X-AIP-Source"
	HeaderEnforcement   = "X-AIP-Enforcement"
	HeaderNudgeCount    = "X-AIP-Nudge-Count"

	HeaderUsagePercent = "X-Mnemom-Usage-Percent"
	HeaderUsageWarning = "X-Mnemom-Usage-Warning"
)

// Verdict header values outside the analysis verdict set.
const (
	verdictPending  = "pending"
	verdictSkipped  = "skipped"
	verdictDisabled = "disabled"
	verdictError    = "error"
)

// Request headers recognised on the way in.
const (
	headerAnthropicKey = "x-api-key"
	headerGoogleKey    = "x-goog-api-key"
	headerBillingKey   = "x-mnemom-api-key"

	headerAIGMetadata = "cf-aig-metadata"
	headerAIGAuth     = "cf-aig-authorization"
)

// exposedHeaders is what browsers may read from proxied responses.
var exposedHeaders = []string{
	HeaderVerdict, HeaderCheckpointID, HeaderAction, HeaderProceed,
	HeaderCertificateID, HeaderChainHash, HeaderSynthetic, HeaderSource,
	HeaderEnforcement, HeaderNudgeCount,
	HeaderAgent, HeaderSession,
	HeaderUsagePercent, HeaderUsageWarning,
}
