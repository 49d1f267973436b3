// Package validation implements request schema validation on top of go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"giftshop/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type schemaValidator struct {
	validate *validator.Validate
}

// NewSchemaValidator builds a SchemaValidator that reports fields by their JSON names.
func NewSchemaValidator() service.SchemaValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// Money is validated numerically, so gte/lte tags work on decimals.
	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		d, ok := v.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		f, _ := d.Float64()

		return f
	}, decimal.Decimal{})

	validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
		id, ok := v.Interface().(uuid.UUID)
		if !ok || id == uuid.Nil {
			return ""
		}

		return id.String()
	}, uuid.UUID{})

	return &schemaValidator{validate: validate}
}

// Validate checks v against its validate tags. It returns nil when v is valid.
func (s *schemaValidator) Validate(v any) map[string]string {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string]string{"body": "invalid request payload"}
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		path := fieldPath(fieldErr.Namespace())
		if _, exists := fields[path]; exists {
			continue
		}
		fields[path] = message(fieldErr)
	}

	return fields
}

// fieldPath drops the root struct name: "PlaceOrderInput.items[0].quantity" -> "items[0].quantity".
func fieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}

	return namespace
}

func message(fe validator.FieldError) string {
	kind := fe.Kind()
	switch fe.Tag() {
	case "required", "required_with", "required_without":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "gte":
		switch kind {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		default:
			return "must be greater than or equal to " + fe.Param()
		}
	case "max", "lte":
		switch kind {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("must contain at most %s item(s)", fe.Param())
		case reflect.String:
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		default:
			return "must be less than or equal to " + fe.Param()
		}
	case "gt":
		return "must be greater than " + fe.Param()
	case "ltefield":
		return "must not be greater than " + fe.Param()
	case "gtefield":
		return "must not be less than " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
