// Package service implements the domain operations of the distribution
// ledger as thin façades over storage.Store: client management, daily
// pricing, distribution recording and payment recording. Services hold no
// state beyond their store; every call re-queries it.
package service

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ErrValidation wraps every input-validation failure so callers can
// distinguish bad input from storage errors with errors.Is.
var ErrValidation = errors.New("invalid input")

// phonePattern accepts digits, spaces, dashes, plus and parentheses,
// minimum eight characters. Deliberately permissive: the field is for a
// human dialing, not a gateway.
var phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]{8,}$`)

// newValidator builds the shared validator with the custom phone rule.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for a nil func or empty tag.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// checkInput runs struct validation and wraps failures in ErrValidation.
func checkInput(v *validator.Validate, in any) error {
	if err := v.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
