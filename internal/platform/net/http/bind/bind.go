// Package bind decodes and validates JSON request bodies
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "umamiconnector/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entrans "github.com/go-playground/validator/v10/translations/en"
)

// MaxBody caps request bodies
const MaxBody = 1 << 20

// FieldLevel is what custom tag funcs receive
type FieldLevel = validator.FieldLevel

type checker struct {
	v  *validator.Validate
	tr ut.Translator
}

var (
	once sync.Once
	chk  checker
)

func get() checker {
	once.Do(func() {
		loc := en.New()
		tr, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		// messages name fields the way clients send them
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			switch name {
			case "":
				return f.Name
			case "-":
				return ""
			}
			return name
		})
		_ = entrans.RegisterDefaultTranslations(v, tr)
		chk = checker{v: v, tr: tr}
		for tag, msg := range map[string]string{
			"min": "{0} must be at least {1}",
			"max": "{0} must be at most {1}",
		} {
			_ = chk.translate(tag, msg, true)
		}
	})
	return chk
}

func (c checker) translate(tag, msg string, withParam bool) error {
	return c.v.RegisterTranslation(tag, c.tr,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			params := []string{fe.Field()}
			if withParam {
				params = append(params, fe.Param())
			}
			s, _ := t.T(tag, params...)
			return s
		},
	)
}

// RegisterTag adds a validation tag with its message, {0} is the field name
func RegisterTag(tag string, fn func(FieldLevel) bool, msg string) error {
	c := get()
	if err := c.v.RegisterValidation(tag, fn); err != nil {
		return err
	}
	return c.translate(tag, msg, false)
}

// Validate runs the struct tags on v
// the first failure comes back as a validation error naming its field
func Validate(v any) error {
	err := get().v.Struct(v)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		fe := fields[0]
		return perr.WithField(perr.Validationf("%s", fe.Translate(get().tr)), fe.Field())
	}
	return perr.Wrap(err, perr.ErrorCodeJSON, "validation error")
}

// ParseJSON decodes the body into T and validates it
// unknown fields, trailing data and bodies over MaxBody are rejected;
// an empty body is an error except on GET and DELETE
func ParseJSON[T any](r *http.Request) (T, error) {
	var out T
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			if r.Method == http.MethodGet || r.Method == http.MethodDelete {
				return out, nil
			}
			return out, perr.JSONErrf("empty body")
		case errors.As(err, &tooBig):
			return out, perr.JSONErrf("body larger than %d bytes", MaxBody)
		}
		return out, perr.Wrap(err, perr.ErrorCodeJSON, "invalid JSON")
	}
	if dec.More() {
		return out, perr.JSONErrf("unexpected trailing data")
	}
	if err := Validate(out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}
