package booking

import "fmt"

// FlowError is a typed booking-flow failure surfaced to the client.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &FlowError{
		Code:    "validationError",
		Message: msg,
	}
}

func NewSlotError(msg string) error {
	return &FlowError{
		Code:    "slotUnavailable",
		Message: msg,
	}
}

func NewConfirmationError(msg string) error {
	return &FlowError{
		Code:    "confirmationError",
		Message: msg,
	}
}
