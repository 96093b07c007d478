// Package validation holds the field rules applied to user input. Every rule
// is a pure function: it returns nil when the value is accepted, or a
// *Violation describing the first problem found.
package validation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
)

type Violation struct {
	Field   string
	Tag     string
	Message string
}

func (v *Violation) Error() string {
	return v.Message
}

// String asserts that value, as decoded from JSON, is a string.
func String(field string, value any) (string, error) {
	s, ok := value.(string)

	if !ok {
		return "", violation(field, "string")
	}

	return s, nil
}

func MinLength(field, value string, min int) error {
	return check(field, value, "min="+strconv.Itoa(min))
}

func Email(field, value string) error {
	return check(field, value, "useremail")
}

func Password(field, value string) error {
	return check(field, value, "strongpassword")
}

func StartsWith(field, value, prefix string) error {
	return check(field, value, "startswith="+prefix)
}

func check(field string, value any, tag string) error {
	err := validate.Var(value, tag)

	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors

	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]

		if fe.Param() == "" {
			return violation(field, fe.Tag())
		}

		return violation(field, fe.Tag(), fe.Param())
	}

	return err
}

func violation(field, tag string, params ...string) *Violation {
	message, err := translator.T(tag, append([]string{field}, params...)...)

	if err != nil {
		message = fmt.Sprintf("'%s' é inválido.", field)
	}

	return &Violation{Field: field, Tag: tag, Message: message}
}
