// Package inputval validates form-input structs declaratively.
//
// Rules live in `validate` struct tags (go-playground/validator syntax);
// an optional `label` tag supplies the human-readable field name used in
// messages shown to the user.
//
//	type createEventInput struct {
//	    Name   string `validate:"required,max=200" label:"Event name"`
//	    Status string `validate:"required,oneof=upcoming ongoing past" label:"Status"`
//	}
//
//	if result := inputval.Validate(input); result.HasErrors() {
//	    reRender(result.First())
//	    return
//	}
package inputval

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report the label tag (falling back to the Go field name) so error
	// messages read "Event name is required", not "Name is required".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})
	return v
}

// Result collects human-readable validation messages.
type Result struct {
	Errors []string
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first message, or "" when validation passed.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}

// Validate checks every tagged field of input and returns the collected
// messages. A non-struct input yields a single internal-error message
// rather than a panic.
func Validate(input any) Result {
	err := validate.Struct(input)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Errors: []string{"Invalid input."}}
	}

	var res Result
	for _, fe := range verrs {
		res.Errors = append(res.Errors, message(fe))
	}
	return res
}

// message converts one field error into user-facing text.
func message(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", name)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", name, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", name, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "url":
		return fmt.Sprintf("%s must be a valid URL.", name)
	case "numeric":
		return fmt.Sprintf("%s must be numeric.", name)
	case "nefield":
		return fmt.Sprintf("%s must differ from %s.", name, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", name)
	}
}
