// Package validation holds the payload rules guarding every user lifecycle
// operation. Rules are free functions sharing one validator instance; each
// returns nil or the validation domain error describing the first violated
// constraint, so malformed payloads never reach hashing or persistence.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// objectIDPattern matches the store-native identifier format: 24 hex chars.
var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// The store assigns 24-character hex object identifiers; anything else
	// can never name a record.
	if err := v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return objectIDPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	// Report violations under the wire names (firstName, email, id), not
	// the Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// CreateUser checks the payload for the create operation: firstName,
// lastName and password must be non-empty, email must be syntactically valid.
func CreateUser(input *usecase.CreateUserInput) error {
	return check(input)
}

// Authenticate checks the payload for the authenticate operation.
func Authenticate(input *usecase.AuthenticateInput) error {
	return check(input)
}

// UpdateUser checks the payload for the update operation. The password
// field is required but may equal the no-change sentinel.
func UpdateUser(input *usecase.UpdateUserInput) error {
	return check(input)
}

// Identifier checks that a bare identifier matches the store format.
func Identifier(id string) error {
	return check(&usecase.IdentifierInput{ID: id})
}

func check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) || len(violations) == 0 {
		// Non-field failure (e.g. a nil payload) is a programming error,
		// not a client one.
		return errors.Wrap(err, "payload validation")
	}

	// Only the first violated constraint reaches the client.
	return domainerrors.ErrValidationFailed.WithDetails(describe(violations[0]))
}

// describe renders a violation as a human-readable constraint message.
func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "objectid":
		return field + " must be a valid 24-character hex identifier"
	default:
		return field + " is invalid"
	}
}
