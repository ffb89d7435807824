package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/geoguess/tracker/internal/geoguess"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeBody reads a JSON body into v and runs struct validation. Both
// kinds of failure come back as a 400 apiError.
func decodeBody(r *http.Request, v any) error {
	if err := readJSON(r, v); err != nil {
		return badRequest("invalid request body")
	}
	if n, ok := v.(interface{ normalize() }); ok {
		n.normalize()
	}
	if err := validate.Struct(v); err != nil {
		return badRequest(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	case "gte", "lte":
		return fmt.Sprintf("%s is out of range", fe.Field())
	case "http_url":
		return fmt.Sprintf("%s must be an http or https URL", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// pathID reads the id URL parameter in its stored form.
func pathID(r *http.Request) (string, error) {
	return geoguess.NormalizeID(chi.URLParam(r, "id"))
}
