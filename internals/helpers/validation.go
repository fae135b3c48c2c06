package helper

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate reports field errors under their JSON names.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// same rule the dashboard applies before submitting
	_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return reEmail.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

var choices = map[string][]string{}

// RegisterChoices adds a validation tag that accepts exactly the given values.
// Call it from package init, before any validation runs.
func RegisterChoices(tag string, values []string) {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	choices[tag] = values
	_ = Validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})
}

// ValidationErrors converts validator output to field → messages.
func ValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := fieldPath(fe)
		out[field] = append(out[field], fieldMessage(fe))
	}
	return out
}

// fieldPath drops the root struct name: "CourseRequest.modules[0].title" → "modules[0].title".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return f + " is required"
	case "email", "loose_email":
		return f + " must be a valid email"
	case "min":
		if fe.Kind() == reflect.Slice {
			return f + " needs at least " + fe.Param() + " item(s)"
		}
		return f + " must be at least " + fe.Param() + " characters"
	case "max":
		return f + " must be at most " + fe.Param() + " characters"
	case "oneof":
		return f + " must be one of: " + strings.ReplaceAll(fe.Param(), "'", "")
	case "uuid", "uuid4":
		return f + " must be a valid id"
	case "datetime":
		return f + " must be a date (" + fe.Param() + ")"
	case "url", "http_url":
		return f + " must be a valid URL"
	default:
		if values, ok := choices[fe.Tag()]; ok {
			return f + " must be one of: " + strings.Join(values, ", ")
		}
		return f + " is invalid"
	}
}

// FieldError builds a one-field error map.
func FieldError(field, message string) map[string][]string {
	return map[string][]string{field: {message}}
}
