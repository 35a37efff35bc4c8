package loginform

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names a form input. The value matches the input's name attribute.
type Field string

const (
	FieldEmail    Field = "email"
	FieldPassword Field = "password"
)

// EmailPattern is the accepted shape of an email address.
var EmailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Values are the raw inputs of the login form.
type Values struct {
	Email        string `form:"email" validate:"required,loginemail"`
	Password     string `form:"password" validate:"required"`
	StaySignedIn bool   `form:"remember"`
}

// FieldErrors maps a failing field to its error. Fields that validated are
// absent.
type FieldErrors map[Field]error

// Has reports whether f failed validation.
func (fe FieldErrors) Has(f Field) bool {
	_, ok := fe[f]
	return ok
}

// Message returns the inline message for f, or "".
func (fe FieldErrors) Message(f Field) string {
	if err, ok := fe[f]; ok && err != nil {
		return err.Error()
	}
	return ""
}

var requiredMessages = map[Field]string{
	FieldEmail:    msgEmailRequired,
	FieldPassword: msgPasswordRequired,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(sf reflect.StructField) string {
		name, _, _ := strings.Cut(sf.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("loginemail", func(fl validator.FieldLevel) bool {
		return EmailPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Validate checks v and returns the failing fields. It never returns nil.
func Validate(v Values) FieldErrors {
	errs := FieldErrors{}

	var verrs validator.ValidationErrors
	if err := validate.Struct(v); !errors.As(err, &verrs) {
		return errs
	}

	for _, fe := range verrs {
		field := Field(fe.Field())
		if errs.Has(field) {
			continue
		}
		switch fe.Tag() {
		case "required":
			errs[field] = &RequiredError{Field: field, Message: requiredMessages[field]}
		case "loginemail":
			errs[field] = &FormatError{Field: field, Message: msgEmailInvalid}
		}
	}
	return errs
}

// ValidateEmail checks a single email value.
func ValidateEmail(email string) error {
	return Validate(Values{Email: email, Password: "-"})[FieldEmail]
}
