// Package document simulates "формирование ТЗ": a fixed wait followed by a
// link to a pre-bundled file. Nothing is generated from the selected cards.
package document

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"saftz/internal/domain/entity"
	"saftz/internal/domain/value"
)

const (
	DefaultDelay = 5 * time.Second

	FileName    = "tz.pdf"
	ContentType = "application/pdf"
)

// PlaceholderPDF is served for every generated document.
//
//go:embed tz.pdf
var PlaceholderPDF []byte

type Option func(*Generator)

func WithClock(c clock.Clock) Option {
	return func(g *Generator) {
		g.clock = c
	}
}

func WithDelay(d time.Duration) Option {
	return func(g *Generator) {
		g.delay = d
	}
}

type Generator struct {
	clock clock.Clock
	delay time.Duration
	url   string
}

// NewGenerator returns a generator whose documents point at url.
func NewGenerator(url string, opts ...Option) *Generator {
	g := &Generator{
		clock: clock.New(),
		delay: DefaultDelay,
		url:   url,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Generator) Delay() time.Duration {
	return g.delay
}

// Generate blocks for the configured delay and returns a ready document. It
// never fails except when ctx is cancelled first.
func (g *Generator) Generate(ctx context.Context) (entity.Document, error) {
	timer := g.clock.Timer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return entity.Document{}, fmt.Errorf("document generation: %w", ctx.Err())
	case <-timer.C:
	}

	return entity.Document{
		Status:  value.DocumentReady,
		URL:     g.url,
		ReadyAt: g.clock.Now(),
	}, nil
}
