package usecase

import "errors"

// ErrValidation marks input rejected before any state change. Specific
// validation errors wrap it so handlers can classify with errors.Is.
var ErrValidation = errors.New("validation error")

var (
	ErrInvalidQuote         = errors.New("invalid quote")
	ErrInvalidPercentage    = errors.New("invalid percentage")
	ErrInvalidContact       = errors.New("invalid contact information")
	ErrInvalidStage         = errors.New("invalid stage")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidPeriod        = errors.New("invalid period")
	ErrInvalidProfile       = errors.New("invalid profile")
	ErrBusinessRequired     = errors.New("business id is required")
	ErrInvitationNotFound   = errors.New("invitation not found")
	ErrInvitationExists     = errors.New("pending invitation already exists for this email")
	ErrDocumentRenderFailed = errors.New("document render failed")
	ErrPaymentGatewayFailed = errors.New("payment gateway failed")
	ErrPaymentNotApproved   = errors.New("payment not approved")
	ErrInvalidPaymentAmount = errors.New("nothing to charge for this quote")
	ErrChargeNotApplied     = errors.New("charge approved but quote no longer in the expected stage")
)

// validationError wraps both ErrValidation and the specific cause.
type validationError struct {
	cause  error
	detail string
}

func (e *validationError) Error() string {
	if e.detail == "" {
		return ErrValidation.Error() + ": " + e.cause.Error()
	}
	return ErrValidation.Error() + ": " + e.cause.Error() + ": " + e.detail
}

func (e *validationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *validationError) Unwrap() error { return e.cause }

func invalid(cause error, detail string) error {
	return &validationError{cause: cause, detail: detail}
}
