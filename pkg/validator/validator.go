package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/toolgate/handler"
)

// MessageFunc builds the client-facing message for a failed rule. Field is
// the JSON name of the field, param the rule parameter (may be empty).
type MessageFunc func(field, param string) string

var defaultMessages = map[string]MessageFunc{
	"required": func(field, _ string) string { return field + " is required" },
	"email":    func(field, _ string) string { return field + " must be a valid email address" },
	"eqfield": func(field, param string) string {
		return fmt.Sprintf("%s must match %s", field, strings.ToLower(param))
	},
	"min": func(field, param string) string { return fmt.Sprintf("%s must be at least %s characters", field, param) },
	"max": func(field, param string) string { return fmt.Sprintf("%s must be at most %s characters", field, param) },
}

// Validator checks `validate` struct tags and reports failures as a
// handler.ValidationError keyed by JSON field name.
type Validator struct {
	validate *playground.Validate
	messages map[string]MessageFunc
}

// Option configures a Validator.
type Option func(*Validator)

// WithMessage overrides the message reported for a validation tag.
func WithMessage(tag string, fn MessageFunc) Option {
	return func(v *Validator) {
		if fn != nil {
			v.messages[tag] = fn
		}
	}
}

func New(opts ...Option) *Validator {
	v := &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
		messages: make(map[string]MessageFunc, len(defaultMessages)),
	}
	for tag, fn := range defaultMessages {
		v.messages[tag] = fn
	}
	v.validate.RegisterTagNameFunc(jsonFieldName)

	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Struct validates s. It returns nil, a handler.ValidationError, or an error
// wrapping ErrInvalidTarget when s is not a struct.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(ErrInvalidTarget, err)
	}

	verr := handler.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(fe.Field(), v.message(fe))
	}
	return verr
}

func (v *Validator) message(fe playground.FieldError) string {
	if fn, ok := v.messages[fe.Tag()]; ok {
		return fn(fe.Field(), fe.Param())
	}
	return fe.Field() + " is invalid"
}

// Decorator validates the bound request before the handler runs.
func Decorator[C handler.Context, R any](v *Validator) handler.Decorator[C, R] {
	return func(next handler.HandlerFunc[C, R]) handler.HandlerFunc[C, R] {
		return func(ctx C, req R) handler.Response {
			if err := v.Struct(req); err != nil {
				return handler.Fail(err)
			}
			return next(ctx, req)
		}
	}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
