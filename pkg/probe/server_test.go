package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"saftz/pkg/probe"
)

func TestHandler(t *testing.T) {
	errDraining := errors.New("draining")

	testCases := []struct {
		name       string
		method     string
		endpoint   string
		ready      probe.ReadyFunc
		statusCode int
		body       string
	}{
		{
			name:       "Health handler",
			method:     http.MethodGet,
			endpoint:   "/healthz",
			statusCode: http.StatusOK,
			body:       `{"name":"saftz","version":"v0.0.1","status":"ok"}` + "\n",
		},
		{
			name:       "Ready without check",
			method:     http.MethodGet,
			endpoint:   "/ready",
			statusCode: http.StatusOK,
			body:       `{"name":"saftz","version":"v0.0.1","status":"ok"}` + "\n",
		},
		{
			name:       "Ready check passes",
			method:     http.MethodGet,
			endpoint:   "/ready",
			ready:      func(context.Context) error { return nil },
			statusCode: http.StatusOK,
			body:       `{"name":"saftz","version":"v0.0.1","status":"ok"}` + "\n",
		},
		{
			name:       "Ready check fails",
			method:     http.MethodGet,
			endpoint:   "/ready",
			ready:      func(context.Context) error { return errDraining },
			statusCode: http.StatusServiceUnavailable,
			body:       `{"name":"saftz","version":"v0.0.1","status":"unavailable","error":"draining"}` + "\n",
		},
		{
			name:       "Health ignores ready check",
			method:     http.MethodGet,
			endpoint:   "/healthz",
			ready:      func(context.Context) error { return errDraining },
			statusCode: http.StatusOK,
			body:       `{"name":"saftz","version":"v0.0.1","status":"ok"}` + "\n",
		},
		{
			name:       "Wrong method",
			method:     http.MethodPost,
			endpoint:   "/healthz",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Invalid endpoint",
			method:     http.MethodGet,
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
			body:       "404 page not found\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			handler := probe.NewServer("", probe.Options{
				Name:    "saftz",
				Version: "v0.0.1",
				Ready:   tc.ready,
			}).Handler()

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.endpoint, http.NoBody))

			rq.Equal(tc.statusCode, rec.Code)

			if tc.body != "" {
				rq.Equal(tc.body, rec.Body.String())
			}
		})
	}
}

func TestServerRun(t *testing.T) {
	rq := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	probeServer := probe.NewServer(":10001", probe.Options{Name: "saftz", Version: "v0.0.1"})

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return probeServer.Run(ctx)
	})

	var resp *http.Response

	rq.Eventually(func() bool {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://localhost:10001/healthz", http.NoBody)
		if err != nil {
			return false
		}

		resp, err = http.DefaultClient.Do(req) //nolint:bodyclose // closed below
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.JSONEq(`{"name":"saftz","version":"v0.0.1","status":"ok"}`, string(body))

	cancel()

	rq.NoError(g.Wait())
}
