package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrBranchNotFound  = errors.New("branch not found")

	// Basket / checkout errors
	ErrEmptyBasket         = errors.New("basket is empty")
	ErrInvalidCheckoutStep = errors.New("invalid checkout step")
	ErrInvalidLocation     = errors.New("invalid location")

	// Order errors
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidStatus           = errors.New("invalid order status")
	ErrInvalidStatusTransition = errors.New("invalid order status transition")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrForbidden    = errors.New("insufficient permissions")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
