// File: internal/validation/validation.go
package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"job-portal/internal/api"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Schema is a compiled JSON schema for one request body.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

var (
	Signup      = mustLoad("signup")
	Login       = mustLoad("login")
	JobCreate   = mustLoad("job_create")
	JobUpdate   = mustLoad("job_update")
	Application = mustLoad("application")
)

func mustLoad(name string) *Schema {
	raw, err := schemaFS.ReadFile("schemas/" + name + ".json")
	if err != nil {
		panic(fmt.Sprintf("validation: read schema %s: %v", name, err))
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("validation: compile schema %s: %v", name, err))
	}
	return &Schema{name: name, schema: s}
}

// Error is a client error carrying human-readable messages.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, "; ")
}

func badJSON(err error) *Error {
	return &Error{Messages: []string{"Bad JSON format: " + err.Error()}}
}

// Normalizer is implemented by request types that canonicalise their fields
// before struct validation runs.
type Normalizer interface {
	Normalize()
}

// Bind reads the request body into dst. The body must parse as JSON and
// satisfy s; dst is then normalised and must pass the echo validator. Client mistakes are returned as *Error.
func Bind(c echo.Context, s *Schema, dst any) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return badJSON(err)
	}

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return badJSON(err)
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = describe(desc)
		}
		return &Error{Messages: msgs}
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return badJSON(err)
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	if err := c.Validate(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return &Error{Messages: fieldMessages(ve)}
		}
		return &Error{Messages: []string{err.Error()}}
	}
	return nil
}

// Respond writes err as a 400 when it is a client error and returns it
// unchanged otherwise.
func Respond(c echo.Context, err error) error {
	var verr *Error
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, api.Errors(verr.Messages...))
	}
	return err
}

func describe(desc gojsonschema.ResultError) string {
	if desc.Type() == "additional_property_not_allowed" {
		return fmt.Sprintf("Unrecognized key: %v", desc.Details()["property"])
	}
	field := desc.Field()
	if field == "(root)" {
		return desc.Description()
	}
	return field + ": " + desc.Description()
}

func fieldMessages(errs validator.ValidationErrors) []string {
	msgs := make([]string, len(errs))
	for i, fe := range errs {
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		switch fe.Tag() {
		case "email":
			msgs[i] = field + ": Invalid email"
		case "url":
			msgs[i] = field + ": Invalid url"
		case "min":
			msgs[i] = fmt.Sprintf("%s: String must contain at least %s character(s)", field, fe.Param())
		case "len":
			msgs[i] = fmt.Sprintf("%s: String must contain exactly %s character(s)", field, fe.Param())
		default:
			msgs[i] = fmt.Sprintf("%s: failed on the '%s' rule", field, fe.Tag())
		}
	}
	return msgs
}

// CustomValidator wraps go-playground/validator for Echo and reports
// fields by their JSON names.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
