package document_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"saftz/internal/domain/entity"
	"saftz/internal/domain/service/document"
	"saftz/internal/domain/value"
)

func TestGenerateWaitsFixedDelay(t *testing.T) {
	rq := require.New(t)

	mock := clock.NewMock()
	start := mock.Now()
	g := document.NewGenerator("/v1/documents/tz.pdf", document.WithClock(mock))

	type result struct {
		doc entity.Document
		err error
	}

	done := make(chan result, 1)

	go func() {
		doc, err := g.Generate(context.Background())
		done <- result{doc: doc, err: err}
	}()

	var res result

	rq.Eventually(func() bool {
		mock.Add(500 * time.Millisecond)

		select {
		case res = <-done:
			return true
		default:
			return false
		}
	}, 5*time.Second, time.Millisecond)

	rq.NoError(res.err)
	rq.Equal(value.DocumentReady, res.doc.Status)
	rq.Equal("/v1/documents/tz.pdf", res.doc.URL)
	rq.GreaterOrEqual(res.doc.ReadyAt.Sub(start), document.DefaultDelay)
}

func TestGenerateCancelled(t *testing.T) {
	rq := require.New(t)

	g := document.NewGenerator("/x", document.WithClock(clock.NewMock()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.Generate(ctx)
	rq.ErrorIs(err, context.Canceled)
}

func TestPlaceholderPDF(t *testing.T) {
	rq := require.New(t)

	rq.True(bytes.HasPrefix(document.PlaceholderPDF, []byte("%PDF-")))
	rq.True(bytes.Contains(document.PlaceholderPDF, []byte("%%EOF")))
}
