package http

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/domain/cases"
	"claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/domain/offboarding"
	"claims-backoffice/internal/domain/partner"
	"claims-backoffice/internal/domain/provider"
	"claims-backoffice/internal/domain/user"
	"claims-backoffice/pkg/id"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func enumTag(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool { return valid(strings.ToUpper(fl.Field().String())) }
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// report json names, not Go field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// entity id = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return id.Valid(fl.Field().String())
	})
	// money: max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})
	_ = v.RegisterValidation("casestatus", enumTag(func(s string) bool { return cases.Status(s).Valid() }))
	_ = v.RegisterValidation("casepriority", enumTag(func(s string) bool { return cases.Priority(s).Valid() }))
	_ = v.RegisterValidation("claimtype", enumTag(func(s string) bool { return claim.Type(s).Valid() }))
	_ = v.RegisterValidation("claimstatus", enumTag(func(s string) bool { return claim.Status(s).Valid() }))
	_ = v.RegisterValidation("partnertype", enumTag(func(s string) bool { return partner.Type(s).Valid() }))
	_ = v.RegisterValidation("providertype", enumTag(func(s string) bool { return provider.Type(s).Valid() }))
	_ = v.RegisterValidation("userrole", enumTag(func(s string) bool { return user.Role(s).Valid() }))
	_ = v.RegisterValidation("doctype", func(fl validator.FieldLevel) bool {
		return offboarding.ValidDocumentType(fl.Field().String())
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

var enumMessages = map[string]string{
	"casestatus":   "must be a valid case status",
	"casepriority": "must be one of LOW, MEDIUM, HIGH",
	"claimtype":    "must be FAULT or NON_FAULT",
	"claimstatus":  "must be a valid claim status",
	"partnertype":  "must be a valid partner type",
	"providertype": "must be INTERNAL or EXTERNAL",
	"userrole":     "must be one of USER, PARTNER, ADMIN",
	"doctype":      "must match ^[A-Z][A-Z0-9_]{0,63}$",
}

// Map validator.ValidationErrors → []apperr.FieldError with readable messages.
// Field names follow the request JSON, nested paths joined with dots.
func ToFieldErrors(err error) []apperr.FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []apperr.FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]apperr.FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		} else {
			field = e.Field()
		}
		msg, ok := enumMessages[e.Tag()]
		if !ok {
			switch e.Tag() {
			case "required":
				msg = "is required"
			case "hex32":
				msg = "must be 32-char lowercase hex"
			case "dec2":
				msg = "must have at most 2 decimal places"
			case "email":
				msg = "must be a valid email address"
			case "min":
				msg = "must be at least " + e.Param() + " characters"
			case "max":
				msg = "must be at most " + e.Param() + " characters"
			case "len":
				msg = "must be exactly " + e.Param() + " characters"
			case "numeric":
				msg = "must contain only digits"
			case "gte":
				msg = "must be greater than or equal to " + e.Param()
			case "lte":
				msg = "must be less than or equal to " + e.Param()
			default:
				msg = e.Tag() + " validation failed"
			}
		}
		out = append(out, apperr.FieldError{Field: field, Message: msg})
	}
	return out
}
