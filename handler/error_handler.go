package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/toolgate/pkg/logger"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Body       ErrorBody
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// ClassifyError maps err to the status, body and log level used to report it.
func ClassifyError(err error) ErrorInfo {
	status, body := errorToBody(err)
	return ErrorInfo{
		StatusCode: status,
		Body:       body,
		LogLevel:   determineLogLevel(status),
	}
}

// NewErrorHandler creates the JSON error handler shared by every API route.
// It logs the original error (warn for 4xx, error for 5xx) and writes an
// ErrorBody; server error bodies never include the original error text.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := ClassifyError(err)
		r := ctx.Request()

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		resp := jsonResponse{status: info.StatusCode, body: info.Body}
		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to write error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
