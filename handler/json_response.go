package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/toolgate/binder"
)

// ErrorBody is the JSON envelope written for every failed API request.
type ErrorBody struct {
	Error   string              `json:"error"`
	Code    string              `json:"code,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// jsonResponse implements Response for JSON rendering
type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON writes v as the response body as-is, with status 200 unless overridden.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusOK, body: v}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as an ErrorBody. Status and code come from HTTPError
// or ValidationError; anything else becomes a sanitized 500.
func JSONError(err error, opts ...JSONOption) Response {
	status, body := errorToBody(err)
	r := &jsonResponse{status: status, body: body}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func errorToBody(err error) (int, ErrorBody) {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		body := ErrorBody{
			Error: valErr.Summary(),
			Code:  "validation_error",
		}
		if body.Error == "" {
			body.Error = "Validation failed"
		}
		if len(valErr) > 0 {
			body.Details = make(map[string][]string, len(valErr))
			maps.Copy(body.Details, valErr)
		}
		return http.StatusBadRequest, body
	}

	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, ErrorBody{Error: "Content-Type must be application/json", Code: ErrUnsupportedMediaType.Key}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, ErrorBody{Error: "Request body too large", Code: ErrRequestEntityTooLarge.Key}
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrInvalidPath):
		return http.StatusBadRequest, ErrorBody{Error: "Malformed request", Code: ErrBadRequest.Key}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorBody{Error: httpErr.PublicMessage(), Code: httpErr.Key}
	}

	return ErrInternalServerError.Code, ErrorBody{
		Error: ErrInternalServerError.Message,
		Code:  ErrInternalServerError.Key,
	}
}

// failResponse hands its error to the configured ErrorHandler.
type failResponse struct{ err error }

func (f failResponse) Render(http.ResponseWriter, *http.Request) error {
	return f.err
}

// Fail returns a Response that writes nothing and reports err to the
// ErrorHandler configured in Wrap, so the error is logged and classified
// in one place.
//
//	tool, err := catalog.Resolve(ctx, req.ToolID)
//	if err != nil {
//		return handler.Fail(err)
//	}
func Fail(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return failResponse{err: err}
}
