package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"saftz/pkg/contextx"
	"saftz/pkg/logx"
	"saftz/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	var gotTraceID contextx.TraceID

	h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		gotTraceID = traceID
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/x", http.NoBody))
	rq.NotEmpty(gotTraceID)
	rq.Equal(gotTraceID.String(), rec.Header().Get("X-Trace-Id"))

	given := contextx.NewTraceID()

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/x", http.NoBody)
	req.Header.Set("X-Trace-Id", given.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	rq.Equal(given, gotTraceID)

	req = httptest.NewRequest(http.MethodGet, "/v1/sessions/x", http.NoBody)
	req.Header.Set("X-Trace-Id", "given-trace")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	rq.NotEqual(contextx.TraceID("given-trace"), gotTraceID)
	rq.Equal(gotTraceID.String(), rec.Header().Get("X-Trace-Id"))
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.TraceID(middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	rq.NotPanics(func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sessions", http.NoBody))
	})
	rq.Equal(http.StatusInternalServerError, rec.Code)
	rq.Contains(rec.Body.String(), `"code":"InternalServerError"`)
	rq.Contains(rec.Body.String(), `"supportId":"`+rec.Header().Get("X-Trace-Id")+`"`)
}

func TestRecoveryAbortHandler(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	rq.PanicsWithValue(http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}

func TestRequestResponseLoggingMasksQuery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, nil))
	masker := logx.NewSensitiveDataMasker()

	h := middlewarex.RequestLogging(masker, 1024)(
		middlewarex.ResponseLogging(masker, 1024)(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(`{"query":"секретный тендер"}`)) //nolint:errcheck
			}),
		),
	)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/x/search", strings.NewReader(`{"query":"секретный тендер"}`))
	req = req.WithContext(contextx.WithLogger(req.Context(), log))

	h.ServeHTTP(httptest.NewRecorder(), req)

	rq.NotContains(buf.String(), "секретный")
	rq.Contains(buf.String(), "[MASKED]")
	rq.Contains(buf.String(), "response-status=200")
}

func TestResponseLoggingSkipsBinaryBody(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := middlewarex.ResponseLogging(logx.NewNopSensitiveDataMasker(), 1024)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			w.Write([]byte("%PDF-1.4 binary")) //nolint:errcheck
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/documents/tz.pdf", http.NoBody)
	req = req.WithContext(contextx.WithLogger(req.Context(), log))

	h.ServeHTTP(httptest.NewRecorder(), req)

	rq.NotContains(buf.String(), "%PDF")
	rq.Contains(buf.String(), "application/pdf, 15 bytes")
}

func TestRequestLoggingTruncates(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, nil))

	h := middlewarex.RequestLogging(logx.NewNopSensitiveDataMasker(), 16)(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}),
	)

	req := httptest.NewRequest(http.MethodPut, "/v1/sessions/x/sort", strings.NewReader(`{"sortBy":"price-asc"}`))
	req = req.WithContext(contextx.WithLogger(req.Context(), log))

	h.ServeHTTP(httptest.NewRecorder(), req)

	rq.Contains(buf.String(), `request-body="PUT /v1/sessions"`)
	rq.NotContains(buf.String(), "price-asc")
}

func TestRateLimiter(t *testing.T) {
	rq := require.New(t)

	rl := middlewarex.NewRateLimiter(0.001, 2)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	codes := make([]int, 0, 3)

	for range 3 {
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", http.NoBody)
		req.RemoteAddr = "10.0.0.1:5555"

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	rq.Equal([]int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions", http.NoBody)
	req.RemoteAddr = "10.0.0.2:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	rq.Equal(http.StatusNoContent, rec.Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.NewRateLimiter(0, 0).Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for range 50 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		rq.Equal(http.StatusNoContent, rec.Code)
	}
}
