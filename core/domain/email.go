package domain

// EmailRejection explains why an address was refused
type EmailRejection string

const (
	EmailEmpty      EmailRejection = "empty"
	EmailFormat     EmailRejection = "format"
	EmailDomain     EmailRejection = "domain"
	EmailDisposable EmailRejection = "disposable"
	EmailTypo       EmailRejection = "typo"
	EmailNoMX       EmailRejection = "mx"
	EmailError      EmailRejection = "error"
)

// EmailVerdict is the result of validating one address
type EmailVerdict struct {
	Valid      bool           `json:"valid"`
	Reason     EmailRejection `json:"reason,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
}
