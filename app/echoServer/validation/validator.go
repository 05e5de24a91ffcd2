package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/zirachw/CarGoOwner/util/mutation"
)

// Validator lets echo's c.Validate use the same rules as the services.
type Validator struct {
	v *validator.Validate
}

func New(v *validator.Validate) *Validator {
	return &Validator{v: v}
}

func (v *Validator) Validate(i interface{}) error {
	return mutation.Check(v.v, i)
}
