// Package mutation holds what every create/edit/delete handler shares:
// field validation, store error classification and batch deletes.
package mutation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	nikRe    = regexp.MustCompile(`^[0-9]{16}$`)
	plateRe  = regexp.MustCompile(`^[A-Z]{1,2} [0-9]{1,4} [A-Z]{1,3}$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
)

// NewValidator returns a validator with the domain tags registered:
// nik, plate, digits and isodate. Field errors are keyed by the json name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	must(v.RegisterValidation("nik", matchString(nikRe)))
	must(v.RegisterValidation("plate", matchString(plateRe)))
	must(v.RegisterValidation("digits", matchString(digitsRe)))
	must(v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// FieldErrors maps a form field to a human readable problem.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has a problem.
func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// OrNil returns fe as an error, or nil when there are no problems.
func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// Check validates s and returns FieldErrors on failure.
func Check(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	fe := FieldErrors{}
	for _, e := range ves {
		fe.Add(e.Field(), message(e))
	}
	return fe
}

// AsFieldErrors extracts FieldErrors from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "nik":
		return "must be exactly 16 digits"
	case "plate":
		return "must look like B 1234 ABC (1-2 letters, 1-4 digits, 1-3 letters)"
	case "digits":
		return "must contain digits only"
	case "isodate":
		return "must be a date in YYYY-MM-DD format"
	case "len":
		return fmt.Sprintf("must be %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid (" + e.Tag() + ")"
	}
}
