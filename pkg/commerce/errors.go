package commerce

import "errors"

// Store-level policy errors. The gateway surfaces these to the initiating
// action as user-visible messages; none of them is fatal.
var (
	ErrInvalidCredentials  = errors.New("invalid mobile number, password or role")
	ErrAlreadyExists       = errors.New("mobile number already registered")
	ErrWeakPassword        = errors.New("password must be at least 6 characters with a letter and a digit")
	ErrMissingProfile      = errors.New("complete your profile before placing an order")
	ErrOutOfStock          = errors.New("product is out of stock")
	ErrInvalidTransition   = errors.New("order status transition not allowed")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
