// Package validation checks the registration form fields. Rules run in
// field declaration order and the first failure wins, matching the inline
// feedback the storefront shows.
package validation

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegistrationForm carries the profile fields captured at registration.
// Field order is rule order.
type RegistrationForm struct {
	FullName  string `json:"fullname" validate:"required"`
	Birthdate string `json:"birthdate" validate:"required"`
	Postal    string `json:"postal" validate:"required,postalcode"`
	Address   string `json:"address" validate:"required"`
	DNI       string `json:"dni" validate:"required,dni"`
	Phone     string `json:"phone" validate:"required,pephone"`
}

// Profile field formats: Peruvian postal codes are 5 digits, DNI numbers
// 8 digits, phone numbers 9 digits with an optional +51 prefix.
var (
	postalPattern = regexp.MustCompile(`^[0-9]{5}$`)
	dniPattern    = regexp.MustCompile(`^[0-9]{8}$`)
	phonePattern  = regexp.MustCompile(`^(\+51)?[0-9]{9}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	mustRegister(v, "postalcode", postalPattern)
	mustRegister(v, "dni", dniPattern)
	mustRegister(v, "pephone", phonePattern)
	return v
}

func mustRegister(v *validator.Validate, tag string, pattern *regexp.Regexp) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Error carries the failing field and its user-facing message.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var messages = map[string]string{
	"FullName/required":  "El nombre completo es obligatorio.",
	"Birthdate/required": "La fecha de nacimiento es obligatoria.",
	"Postal/required":    "El código postal es obligatorio.",
	"Postal/postalcode":  "El código postal debe tener 5 dígitos.",
	"Address/required":   "La dirección es obligatoria.",
	"DNI/required":       "El DNI es obligatorio.",
	"DNI/dni":            "El DNI debe tener 8 dígitos.",
	"Phone/required":     "El teléfono es obligatorio.",
	"Phone/pephone":      "El teléfono debe tener 9 dígitos o empezar con +51.",
}

var fieldNames = map[string]string{
	"FullName":  "fullname",
	"Birthdate": "birthdate",
	"Postal":    "postal",
	"Address":   "address",
	"DNI":       "dni",
	"Phone":     "phone",
}

// Validate checks all rules in order against the trimmed field values and
// returns the first failure as *Error, or nil when the form passes.
func Validate(form RegistrationForm) error {
	err := validate.Struct(form.trimmed())
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg, ok := messages[fe.StructField()+"/"+fe.Tag()]
		if !ok {
			msg = "Dato inválido."
		}
		return &Error{Field: fieldNames[fe.StructField()], Message: msg}
	}
	return err
}

func (f RegistrationForm) trimmed() RegistrationForm {
	return RegistrationForm{
		FullName:  strings.TrimSpace(f.FullName),
		Birthdate: strings.TrimSpace(f.Birthdate),
		Postal:    strings.TrimSpace(f.Postal),
		Address:   strings.TrimSpace(f.Address),
		DNI:       strings.TrimSpace(f.DNI),
		Phone:     strings.TrimSpace(f.Phone),
	}
}
