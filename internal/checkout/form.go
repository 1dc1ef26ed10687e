package checkout

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Beka01247/forno-storefront/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Form holds the customer-entered checkout fields.
type Form struct {
	CustomerName  string               `json:"customer_name" validate:"required"`
	Phone         string               `json:"phone" validate:"required"`
	Address       string               `json:"address" validate:"required_if=DeliveryType delivery"`
	DeliveryType  domain.DeliveryType  `json:"delivery_type" validate:"required,oneof=delivery pickup dine-in"`
	PaymentMethod domain.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=cash card transfer"`
	Notes         string               `json:"notes"`
}

func (f Form) normalized() Form {
	f.CustomerName = strings.TrimSpace(f.CustomerName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.Notes = strings.TrimSpace(f.Notes)
	if f.PaymentMethod == "" {
		f.PaymentMethod = domain.PaymentCash
	}
	return f
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the required checkout fields. The address is required
// only for delivery orders.
func Validate(form Form) error {
	return validateNormalized(form.normalized())
}

func validateNormalized(form Form) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validate checkout form: %w", err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required", "required_if":
		return domain.NewValidationError(fe.Field(), "is required")
	case "oneof":
		return domain.NewValidationErrorf(fe.Field(), "must be one of [%s]", fe.Param())
	default:
		return domain.NewValidationErrorf(fe.Field(), "failed %s validation", fe.Tag())
	}
}
