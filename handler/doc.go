// Package handler provides type-safe HTTP request handling.
//
// Handlers are generic functions that receive a bound request struct and
// return a Response. Wrap turns them into http.HandlerFunc values that bind
// the request, run decorators, render the response and route errors to a
// single ErrorHandler:
//
//	type loginRequest struct {
//		Email    string `json:"email" validate:"required,email"`
//		Password string `json:"password" validate:"required"`
//	}
//
//	func login(ctx handler.Context, req loginRequest) handler.Response {
//		pair, err := accounts.Login(ctx, req.Email, req.Password)
//		if err != nil {
//			return handler.Fail(err)
//		}
//		return handler.JSON(pair)
//	}
//
//	r.Post("/login", handler.Wrap(login,
//		handler.WithBinder[handler.Context, loginRequest](binder.JSON()),
//		handler.WithErrorHandler[handler.Context, loginRequest](handler.NewErrorHandler(log)),
//	))
//
// # Responses
//
// JSON writes a value as-is. JSONError and Fail map errors to the ErrorBody
// envelope:
//
//	{"error": "Invalid credentials", "code": "invalid_credentials"}
//
// HTTPError carries its own status and key. ValidationError becomes a 400
// with per-field details. Binder errors map to 400, 413 or 415. Any other
// error is reported as a 500 whose body never contains the original text.
//
// Templ renders a templ component as HTML, Text writes plain text, Redirect
// and RedirectWithCode send a Location header and Empty writes only a status.
//
// # Errors
//
// Fail is the preferred way to return an error from a handler: the error
// reaches the ErrorHandler, which logs it with the request method and path
// before writing the response. NewErrorHandler logs client errors at warn
// and server errors at error level.
package handler
