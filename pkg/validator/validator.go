package validator

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"

	apperr "github.com/medlight/clinic-api/pkg/errors"
)

// New returns a validator configured to report fields by their JSON names.
func New() *v10.Validate {
	v := v10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Check runs struct validation and converts a failure into the Validation
// member of the error taxonomy, naming the first offending field.
func Check(v *v10.Validate, entity string, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs v10.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperr.NewValidation("invalid %s: field %s failed on the %q rule", entity, fe.Field(), fe.Tag())
	}
	return apperr.NewValidation("invalid %s payload", entity)
}
