package middlewarex

import (
	"net/http"

	"saftz/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// TraceID reuses a well-formed X-Trace-Id from the client and generates a
// fresh one otherwise. The id is echoed in the response header.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.ParseTraceID(r.Header.Get(headerNameTraceID))
		if err != nil {
			traceID = contextx.NewTraceID()
		}

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), traceID)))
	})
}
