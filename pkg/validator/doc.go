// Package validator validates request structs with go-playground/validator
// and reports failures as handler.ValidationError, keyed by the JSON name of
// each field.
//
//	v := validator.New(validator.WithMessage("eqfield", func(string, string) string {
//		return "Passwords do not match"
//	}))
//	if err := v.Struct(req); err != nil {
//		return handler.Fail(err) // 400 with per-field details
//	}
//
// Decorator plugs the same check into handler.Wrap.
package validator
