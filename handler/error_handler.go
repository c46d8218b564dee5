package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/homesite/pkg/logger"
	"github.com/dmitrymomot/homesite/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages.
type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
}

// ErrorInfo is the classification of a handler error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// Classify maps err to a status code and a message safe to show to clients.
// HTTPError values keep their code and key; anything else is a 500.
func Classify(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    http.StatusText(http.StatusInternalServerError),
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Key
	}
	if info.StatusCode >= 400 && info.StatusCode < 500 {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler logs the error and answers with an HTML page when the
// client asked for HTML and errorPage is set, otherwise with plain text.
func NewErrorHandler[C Context](log *slog.Logger, errorPage func(ErrorPageParams) templ.Component) ErrorHandler[C] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx C, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		info := Classify(err)
		id := requestid.FromContext(ctx)

		log.LogAttrs(ctx, info.LogLevel, "request failed",
			logger.Error(err),
			logger.Status(info.StatusCode),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Component("error_handler"),
		)

		if errorPage != nil && RequestedHTML(r) {
			page := Templ(errorPage(ErrorPageParams{
				Error:      info.Message,
				StatusCode: info.StatusCode,
				RequestID:  id,
			}), WithStatus(info.StatusCode))
			renderErr := page.Render(w, r)
			if renderErr == nil {
				return
			}
			log.ErrorContext(ctx, "failed to render error page", logger.Error(renderErr))
		}

		_ = Text(info.Message+"\n", WithStatus(info.StatusCode)).Render(w, r)
	}
}
