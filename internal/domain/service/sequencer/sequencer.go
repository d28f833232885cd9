// Package sequencer fabricates the trickle of search results: a sequence of N
// card arrivals, each one after its own random delay.
package sequencer

import (
	"context"
	"iter"
	"time"

	"github.com/benbjohnson/clock"

	"saftz/internal/domain/entity"
	"saftz/internal/domain/service/random"
	"saftz/internal/domain/value"
)

const (
	DefaultMinDelay = 3 * time.Second
	DefaultMaxDelay = 15 * time.Second // exclusive

	// TurboFactor делит все задержки в турбо-режиме.
	TurboFactor = 10

	MaxIncrement = 5
)

type Option func(*Sequencer)

func WithClock(c clock.Clock) Option {
	return func(s *Sequencer) {
		s.clock = c
	}
}

func WithRandomizer(r random.Randomizer) Option {
	return func(s *Sequencer) {
		s.rnd = r
	}
}

// WithDelayRange sets the [lo, hi) range arrival delays are drawn from, with
// millisecond granularity.
func WithDelayRange(lo, hi time.Duration) Option {
	return func(s *Sequencer) {
		s.minDelay = lo
		s.maxDelay = hi
	}
}

// WithSpeed divides every delay by factor. Factors below 1 are ignored.
func WithSpeed(factor int) Option {
	return func(s *Sequencer) {
		if factor >= 1 {
			s.speed = factor
		}
	}
}

func WithTurbo(enabled bool) Option {
	return func(s *Sequencer) {
		if enabled {
			s.speed = TurboFactor
		}
	}
}

func WithIDFunc(f func() value.CardID) Option {
	return func(s *Sequencer) {
		s.newID = f
	}
}

type Sequencer struct {
	clock    clock.Clock
	rnd      random.Randomizer
	minDelay time.Duration
	maxDelay time.Duration
	speed    int
	newID    func() value.CardID
}

func New(opts ...Option) *Sequencer {
	s := &Sequencer{
		clock:    clock.New(),
		rnd:      random.NewFromTime(),
		minDelay: DefaultMinDelay,
		maxDelay: DefaultMaxDelay,
		speed:    1,
		newID:    value.NewCardID,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Sequencer) Speed() int {
	return s.speed
}

// NextDelay draws the wait before the next arrival.
func (s *Sequencer) NextDelay() time.Duration {
	ms := random.Between(s.rnd, int(s.minDelay.Milliseconds()), int(s.maxDelay.Milliseconds()))

	return time.Duration(ms) * time.Millisecond / time.Duration(s.speed)
}

// NewCard synthesizes one result card.
func (s *Sequencer) NewCard() entity.Card {
	return entity.Card{
		ID:          s.newID(),
		Description: entity.CardDescription,
		Percentage:  s.rnd.IntN(value.MaxPercentage + 1),
		Checked:     false,
		Price:       value.Price(random.Between(s.rnd, int(value.MinPrice), int(value.MaxPrice))),
	}
}

// NextIncrement draws how many records the arrival adds to the viewed counter.
func (s *Sequencer) NextIncrement() int {
	return random.Between(s.rnd, 1, MaxIncrement+1)
}

// Arrivals returns a lazy sequence of n arrivals. Each step blocks on its own
// timer; cancelling ctx stops the pending timer and ends the sequence without
// yielding anything further.
func (s *Sequencer) Arrivals(ctx context.Context, n int) iter.Seq[entity.Arrival] {
	return func(yield func(entity.Arrival) bool) {
		for i := range n {
			timer := s.clock.Timer(s.NextDelay())

			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			if ctx.Err() != nil {
				return
			}

			arrival := entity.Arrival{
				Index:     i,
				Card:      s.NewCard(),
				Increment: s.NextIncrement(),
			}

			if !yield(arrival) {
				return
			}
		}
	}
}
