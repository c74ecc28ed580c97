package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"storehub/internal/errs"
)

// passwordSpecials are the characters accepted as the special character of a
// strong password.
const passwordSpecials = "#&<>@\"~;$^%{}?"

// ValidationError lists every rule a request body broke.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "validation error: " + strings.Join(e.Details, "; ")
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("strongpassword", strongPassword); err != nil {
		panic(fmt.Sprintf("register strongpassword: %v", err))
	}
	return v
}

// strongPassword requires at least 8 characters with an upper case letter, a
// lower case letter, a digit and one of passwordSpecials.
func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

func ruleMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "email":
		return "Please enter a valid email address"
	case "strongpassword":
		return "Password must be at least 8 characters, include 1 uppercase, 1 lowercase, 1 number, and 1 special character."
	case "eqfield":
		return "Confirm password must match password"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", e.Field(), e.Param())
	case "min", "max", "gt":
		return fmt.Sprintf("%s failed on the '%s=%s' rule", e.Field(), e.Tag(), e.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", e.Field(), e.Tag())
	}
}

// bind parses the request body into dst and validates it.
func bind(c *fiber.Ctx, v *validator.Validate, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return errs.Wrap(errs.KindValidation, "Invalid request body", err)
	}
	return check(v, dst)
}

func check(v *validator.Validate, dst interface{}) error {
	err := v.Struct(dst)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	details := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		details = append(details, ruleMessage(e))
	}
	return &ValidationError{Details: details}
}

// paramID parses a positive public ID from the named path parameter.
func paramID(c *fiber.Ctx, name, entity string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.Validation(fmt.Sprintf("Invalid %s ID format", entity))
	}
	return id, nil
}
