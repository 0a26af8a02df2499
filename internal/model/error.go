package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// DomainError carries a stable error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a domain error with the validation code.
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeValidation, message)
}

// ErrorCode extracts the domain error code from err, or INTERNAL_ERROR when
// err is not a DomainError.
func ErrorCode(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ErrCodeInternalError
}

// Common domain errors
var (
	ErrEmptyInvoice       = NewDomainError(ErrCodeValidation, "Invoice must contain at least one line item")
	ErrInvalidQuantity    = NewDomainError(ErrCodeValidation, "Quantity must be greater than zero")
	ErrNegativeRate       = NewDomainError(ErrCodeValidation, "Rate must not be negative")
	ErrInvalidDiscount    = NewDomainError(ErrCodeValidation, "Discount percentage must be between 0 and 100")
	ErrInvalidShopRef     = NewDomainError(ErrCodeUnauthorised, "A valid owner and shop pair is required")
	ErrShopAccessDenied   = NewDomainError(ErrCodeUnauthorised, "Shop does not belong to the authenticated owner")
	ErrInvalidCredentials = NewDomainError(ErrCodeUnauthorised, "Invalid mobile number or password")
	ErrInvalidOTP         = NewDomainError(ErrCodeUnauthorised, "OTP is invalid or has expired")
	ErrOwnerNotFound      = NewDomainError(ErrCodeNotFound, "Owner not found")
	ErrShopNotFound       = NewDomainError(ErrCodeNotFound, "Shop not found")
	ErrCustomerNotFound   = NewDomainError(ErrCodeNotFound, "Customer not found")
	ErrProductNotFound    = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrInvoiceNotFound    = NewDomainError(ErrCodeNotFound, "Invoice not found")
	ErrOfferNotFound      = NewDomainError(ErrCodeNotFound, "Offer not found")
	ErrDuplicateOwner     = NewDomainError(ErrCodeConflict, "Owner with this email or mobile already exists")
)
