package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

// patterns are the regular expressions the "pattern" tag may refer to by name.
var patterns = map[string]*regexp.Regexp{
	"fixedquery": regexp.MustCompile(`^fixedquery$`),
}

// Enumerated is implemented by closed sets of values checked with the "enum" tag.
type Enumerated interface {
	IsValid() bool
}

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.RegisterValidation("pattern", matchesPattern); err != nil {
		panic(fmt.Sprintf("failed to register pattern validation: %v", err))
	}
	if err := validate.RegisterValidation("enum", isEnumMember); err != nil {
		panic(fmt.Sprintf("failed to register enum validation: %v", err))
	}
}

// jsonFieldName reports fields under their wire name, so errors point at
// "item-query" rather than the Go field name.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func matchesPattern(fl validator.FieldLevel) bool {
	re, ok := patterns[fl.Param()]
	if !ok {
		return false
	}
	return re.MatchString(fl.Field().String())
}

func isEnumMember(fl validator.FieldLevel) bool {
	if !fl.Field().CanInterface() {
		return false
	}
	e, ok := fl.Field().Interface().(Enumerated)
	return ok && e.IsValid()
}

// ValidateRequest validates the request body against a struct with validation tags
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// ValidateEach validates every element of a list body. Field names in the
// returned errors are prefixed with the element index, e.g. "[1].url".
func ValidateEach[T any](items []T) error {
	var all ValidationErrors
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			for _, e := range FormatValidationErrors(err) {
				all = append(all, ValidationError{
					Field:   fmt.Sprintf("[%d].%s", i, e.Field),
					Message: e.Message,
				})
			}
		}
	}
	if len(all) > 0 {
		return all
	}
	return nil
}

// errTrailingData is returned when the body holds more than one JSON value
var errTrailingData = errors.New("request body must contain a single JSON value")

// DecodeJSON decodes the JSON request body without validating it
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

// DecodeAndValidate decodes JSON request body and validates it
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return ValidateRequest(v)
}

// ParseIntParam converts a raw path or query value to an integer of any size.
func ParseIntParam(field, raw string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, ValidationErrors{{Field: field, Message: "Value must be an integer"}}
	}
	return n, nil
}

// ClampInt narrows n to an int, saturating at the int bounds so that range
// tags still reject values too large to represent.
func ClampInt(n *big.Int) int {
	switch {
	case n.IsInt64() && int64(int(n.Int64())) == n.Int64():
		return int(n.Int64())
	case n.Sign() < 0:
		return math.MinInt
	default:
		return math.MaxInt
	}
}

// ParseFloatParam converts an optional raw query value to a float. An empty
// value yields nil.
func ParseFloatParam(field, raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, ValidationErrors{{Field: field, Message: "Value must be a number"}}
	}
	return &f, nil
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is a list of field errors raised outside the validator,
// e.g. while parsing path parameters.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FormatValidationErrors converts validator and decoding errors to a readable format
func FormatValidationErrors(err error) []ValidationError {
	var (
		own       ValidationErrors
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		formatted []ValidationError
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &own):
		return own
	case errors.As(err, &fieldErrs):
		for _, e := range fieldErrs {
			formatted = append(formatted, ValidationError{
				Field:   fieldPath(e),
				Message: getErrorMessage(e),
			})
		}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		formatted = append(formatted, ValidationError{
			Field:   field,
			Message: "Value must be of type " + typeErr.Type.String(),
		})
	case errors.Is(err, io.EOF):
		formatted = append(formatted, ValidationError{Field: "body", Message: "This field is required"})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, errTrailingData):
		formatted = append(formatted, ValidationError{Field: "body", Message: "Invalid JSON"})
	}

	return formatted
}

// fieldPath drops the root struct name from the validator namespace, turning
// "Offer.items[0].price" into "items[0].price".
func fieldPath(e validator.FieldError) string {
	if _, rest, ok := strings.Cut(e.Namespace(), "."); ok {
		return rest
	}
	return e.Field()
}

func getErrorMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "http_url", "url":
		return "Invalid HTTP(S) URL"
	case "pattern":
		return "Value does not match the expected pattern"
	case "enum", "oneof":
		return "Value is not a permitted member"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gte":
		return "Value must be greater than or equal to " + e.Param()
	case "lte":
		return "Value must be less than or equal to " + e.Param()
	case "gt":
		return "Value must be greater than " + e.Param()
	case "lt":
		return "Value must be less than " + e.Param()
	default:
		return "Invalid value"
	}
}
