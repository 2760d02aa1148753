package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/configuration"
	"github.com/atelier-dourado/backoffice/pkg/httpapi"
	"github.com/atelier-dourado/backoffice/pkg/serrors"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type statusWriter struct {
	http.ResponseWriter
	status  int
	written bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.written {
		w.status = code
		w.written = true
		w.ResponseWriter.WriteHeader(code)
	}
}

func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func requestID(r *http.Request, conf *configuration.Configuration) string {
	if id := r.Header.Get(conf.RequestIDHeader); id != "" {
		return id
	}
	return uuid.New().String()
}

// WithLogger attaches a request-scoped logrus entry, a request id and a
// fresh diagnostic trace to every request, logs start/completion, and
// recovers panics into a structured 500.
func WithLogger(logger *logrus.Logger, conf *configuration.Configuration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			id := requestID(r, conf)

			entry := logger.WithFields(logrus.Fields{
				"request-id": id,
				"path":       r.URL.Path,
				"method":     r.Method,
			})

			trace := composables.NewTrace()
			ctx := composables.WithLogger(r.Context(), entry)
			ctx = composables.WithRequestID(ctx, id)
			ctx = composables.WithTrace(ctx, trace)

			w.Header().Set(conf.RequestIDHeader, id)
			sw := &statusWriter{ResponseWriter: w}
			r = r.WithContext(ctx)

			defer func() {
				if recovered := recover(); recovered != nil {
					entry.WithFields(logrus.Fields{
						"panic": recovered,
						"stack": string(debug.Stack()),
					}).Error("panic recovered in request handler")
					if !sw.written {
						httpapi.RespondError(sw, r, serrors.NewError(serrors.CodeInternal, "internal server error"), conf.DebugResponses)
					}
				}
			}()

			next.ServeHTTP(sw, r)

			fields := logrus.Fields{
				"status":   sw.Status(),
				"duration": time.Since(start),
			}
			if entries := trace.Entries(); len(entries) > 0 {
				fields["trace"] = entries
			}
			entry.WithFields(fields).Info("request completed")
		})
	}
}
