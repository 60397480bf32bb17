package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tagNameOnce sync.Once

// registerJSONFieldNames makes validation errors report JSON field names
// ("confirmaSenha") instead of Go field names.
func registerJSONFieldNames() {
	tagNameOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
}

// bindError carries every message produced while binding a request body.
type bindError struct {
	msgs []string
}

func (e *bindError) Error() string { return strings.Join(e.msgs, "; ") }

// bindJSON decodes and validates the body. An empty body is validated as an
// empty object so every missing field is reported. A field with the wrong JSON
// type is reported and the rest of the struct is still validated.
func bindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		return binding.Validator.ValidateStruct(dst)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		msgs := []string{fmt.Sprintf("%q must be %s", field, jsonKind(typeErr.Type))}
		for _, m := range validationMessages(binding.Validator.ValidateStruct(dst)) {
			if !strings.HasPrefix(m, fmt.Sprintf("%q ", field)) {
				msgs = append(msgs, m)
			}
		}
		return &bindError{msgs: msgs}
	default:
		return err
	}
}

// validationMessages lists every violated rule, one message per field.
func validationMessages(err error) []string {
	if err == nil {
		return nil
	}
	var berr *bindError
	if errors.As(err, &berr) {
		return berr.msgs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

// jsonKind describes a Go type the way a JSON client sees it.
func jsonKind(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		return "an array"
	default:
		return "an object"
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", fe.Field())
	case "email":
		return fmt.Sprintf("%q must be a valid email", fe.Field())
	case "eqfield":
		return fmt.Sprintf("%q must match %q", fe.Field(), lowerFirst(fe.Param()))
	default:
		return fmt.Sprintf("%q failed on %q", fe.Field(), fe.Tag())
	}
}

// lowerFirst maps a Go field name to its JSON spelling (Senha -> senha).
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
