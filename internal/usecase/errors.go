package usecase

// Error codes surfaced to handlers. Contention is a structured outcome, not a
// system failure, and is never converted into a success.
const (
	CodeValidation       = "validation_error"
	CodeCoverageMismatch = "coverage_mismatch"
	CodeLeadUnavailable  = "lead_unavailable"
	CodeLeadNotFound     = "lead_not_found"
	CodeBrokerNotFound   = "broker_not_found"
	CodeNotOwner         = "not_owner"
	CodePaymentGateway   = "payment_gateway_error"
	CodeStorage          = "storage_error"
)

// DomainError is a business rejection: nothing was mutated, retrying the same
// request will fail the same way unless the world changes.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError is an infrastructure failure the caller may retry.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

func ErrorCode(err error) string {
	switch e := err.(type) {
	case *DomainError:
		return e.Code
	case *TechnicalError:
		return e.Code
	}
	return ""
}
