package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeMissingField    = "MISSING_FIELD"
	ErrCodeInvalidCategory = "INVALID_CATEGORY"
	ErrCodeInvalidPrice    = "INVALID_PRICE"
	ErrCodeInvalidStock    = "INVALID_STOCK"
	ErrCodeEmptyUpdate     = "EMPTY_UPDATE"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeBadCredentials  = "BAD_CREDENTIALS"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// Domain errors for business logic
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

// Common domain errors
var (
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidCategory = NewDomainError(ErrCodeInvalidCategory, "Category must be one of Laptops, Desktops or Accessories")
	ErrInvalidPrice    = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrInvalidStock    = NewDomainError(ErrCodeInvalidStock, "Stock must not be negative")
	ErrEmptyUpdate     = NewDomainError(ErrCodeEmptyUpdate, "No fields to update")
	ErrBadCredentials  = NewDomainError(ErrCodeBadCredentials, "Invalid credentials")
)
