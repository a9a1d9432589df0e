// Package respond owns the wire shape of failed requests. Every error, whether it comes
// from a handler, from huma's request validation, from the router or from a recovered
// panic, renders as {"success":false,"message":"..."}.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/fxamacker/cbor/v2"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	applog "github.com/janisto/dashboard-api/internal/platform/logging"
)

// Messages with a fixed public wording.
const (
	MsgRouteNotFound = "Route not found"
	MsgInternal      = "Something went wrong!"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCBOR = "application/cbor"
)

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Success bool   `json:"success" cbor:"success" doc:"Always false on errors" example:"false"`
	Message string `json:"message" cbor:"message" doc:"Human-readable reason"  example:"Profile not found"`
}

// StatusError pairs an ErrorBody with its HTTP status. It implements huma.StatusError,
// so huma serializes the embedded body as the response.
type StatusError struct {
	ErrorBody
	status int
}

func (e *StatusError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *StatusError) GetStatus() int {
	return e.status
}

var installOnce sync.Once

// Install routes huma's error constructors through this package. Call it before
// creating any huma.API.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return Error(context.Background(), status, msg, errs...)
		}
		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			ctx := context.Background()
			if hctx != nil {
				ctx = hctx.Context()
			}
			return Error(ctx, status, msg, errs...)
		}
	})
}

// Error builds a StatusError and logs it: 5xx at error level with the underlying causes,
// 4xx at warn level. Server errors always carry MsgInternal so internals never reach clients.
func Error(ctx context.Context, status int, msg string, errs ...error) huma.StatusError {
	cause := errors.Join(errs...)
	switch {
	case status >= http.StatusInternalServerError:
		applog.LogError(ctx, "request failed", cause, zap.Int("status", status), zap.String("reason", msg))
		msg = MsgInternal
	case status >= http.StatusBadRequest:
		msg = withDetails(messageOrDefault(status, msg), errs)
		fields := []zap.Field{zap.Int("status", status), zap.String("message", msg)}
		if cause != nil {
			fields = append(fields, zap.Error(cause))
		}
		applog.LogWarn(ctx, "request rejected", fields...)
	default:
		msg = messageOrDefault(status, msg)
	}
	return &StatusError{ErrorBody: ErrorBody{Success: false, Message: msg}, status: status}
}

// WriteError renders an error outside of huma (router fallbacks, middleware),
// negotiating JSON or CBOR from the Accept header.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, errs ...error) {
	se := Error(r.Context(), status, msg, errs...)
	body := se.(*StatusError).ErrorBody

	var (
		data []byte
		err  error
	)
	ct := selectFormat(r.Header.Get("Accept"))
	if ct == contentTypeCBOR {
		data, err = cbor.Marshal(body)
	} else {
		data, err = json.Marshal(body)
	}
	if err != nil {
		applog.LogError(r.Context(), "failed to encode error response", err)
		http.Error(w, MsgInternal, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(se.GetStatus())
	if _, err := w.Write(data); err != nil {
		applog.LogWarn(r.Context(), "failed to write error response", zap.Error(err))
	}
}

// NotFoundHandler answers unmatched routes, including known paths requested with an
// unsupported method.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, r, http.StatusNotFound, MsgRouteNotFound)
	}
}

// Recoverer converts panics into the generic 500 response. The panic value and stack are
// logged. http.ErrAbortHandler is re-panicked so net/http can abort the connection.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				err := fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
				if ww.Status() != 0 {
					applog.LogError(r.Context(), "panic after response started", err)
					return
				}
				WriteError(ww, r, http.StatusInternalServerError, "panic recovered", err)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// withDetails appends huma validation details (e.g. "expected string (body.name)") so
// clients learn which input was rejected. Plain errors stay in the log only.
func withDetails(msg string, errs []error) string {
	var details []string
	for _, err := range errs {
		var detailer huma.ErrorDetailer
		if err == nil || !errors.As(err, &detailer) {
			continue
		}
		if d := detailer.ErrorDetail(); d != nil && d.Message != "" {
			if d.Location != "" {
				details = append(details, fmt.Sprintf("%s (%s)", d.Message, d.Location))
			} else {
				details = append(details, d.Message)
			}
		}
	}
	if len(details) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(details, "; ")
}

func messageOrDefault(status int, msg string) string {
	if strings.TrimSpace(msg) != "" {
		return msg
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}
