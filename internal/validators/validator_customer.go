package validators

import (
	"context"

	"github.com/MKhiriev/customer-service/models"
)

const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPhoneNumber = "phone_number"
)

type CustomerValidator struct {
}

func NewCustomerValidator() Validator {
	return &CustomerValidator{}
}

func (v *CustomerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Customer:
		return v.validateCustomer(ctx, value, fields...)
	case *models.Customer:
		return v.validateCustomer(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CustomerValidator) validateCustomer(_ context.Context, customer models.Customer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPhoneNumber}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if customer.FirstName == "" {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if customer.LastName == "" {
				return ErrEmptyLastName
			}
		case FieldEmail:
			if customer.Email == "" {
				return ErrEmptyEmail
			}
		case FieldPhoneNumber:
			if customer.PhoneNumber == "" {
				return ErrEmptyPhoneNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
