package validators

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/stockflow/stockflow-backend/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// DecodeJSONBody decodes a request body strictly and checks required fields.
// A body that does not parse is a malformed request; a body missing required
// fields reports every missing field at once.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer func() {
		io.Copy(io.Discard, r.Body)
	}()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return pkgerrors.New(pkgerrors.CodeMalformedRequest, "request body is required")
		}
		return pkgerrors.Wrap(pkgerrors.CodeMalformedRequest, err, "invalid request body").
			WithDetails(map[string]any{"error": err.Error()})
	}
	if err := validate.Struct(dest); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeMalformedRequest, err, "validation failed")
	}

	missing := make([]string, 0, len(errs))
	other := map[string]string{}
	for _, fieldErr := range errs {
		if fieldErr.Tag() == "required" {
			missing = append(missing, fieldErr.Field())
			continue
		}
		other[fieldErr.Field()] = validationMessage(fieldErr)
	}

	if len(missing) > 0 {
		return pkgerrors.New(pkgerrors.CodeMissingFields, "required fields are missing").
			WithDetails(map[string]any{"missing": missing})
	}
	return pkgerrors.New(pkgerrors.CodeMalformedRequest, "validation failed").
		WithDetails(other)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	}
	return "is invalid"
}
