package config

import (
	"errors"
	"time"
)

type Sequencer struct {
	BatchSize int           `env:"SEQUENCER_BATCH_SIZE" envDefault:"5"`
	MinDelay  time.Duration `env:"SEQUENCER_MIN_DELAY" envDefault:"3s"`
	MaxDelay  time.Duration `env:"SEQUENCER_MAX_DELAY" envDefault:"15s"`
	// Turbo divides every delay by ten.
	Turbo bool `env:"SEQUENCER_TURBO" envDefault:"false"`
	// Seed makes card generation reproducible; 0 seeds from the clock.
	Seed uint64 `env:"SEQUENCER_SEED" envDefault:"0"`
}

func (s Sequencer) validate() error {
	if s.BatchSize <= 0 {
		return errors.New("batch size must be positive")
	}

	if s.MinDelay < 0 || s.MaxDelay < s.MinDelay {
		return errors.New("delay range must satisfy 0 <= min <= max")
	}

	return nil
}

type Document struct {
	Delay time.Duration `env:"DOCUMENT_DELAY" envDefault:"5s"`
}

type Session struct {
	TTL             time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}
