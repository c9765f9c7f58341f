package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFirstName   = errors.New("first_name is required")
	ErrEmptyLastName    = errors.New("last_name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrEmptyPhoneNumber = errors.New("phone_number is required")
)
