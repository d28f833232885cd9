// Package search owns the state of a search page: the card sequence, the
// selection and sort view and the document stub, one Session per page.
package search

import (
	"context"
	"log/slog"
	"sync"

	"saftz/internal/domain"
	"saftz/internal/domain/entity"
	"saftz/internal/domain/value"
	"saftz/internal/worker"
	"saftz/pkg/contextx"
	"saftz/pkg/logx"
)

// DefaultBatchSize карточек за один поиск или «Продолжить поиск».
const DefaultBatchSize = 5

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type DocumentGenerator interface {
	Generate(ctx context.Context) (entity.Document, error)
}

type EventKind string

const (
	EventArrival       EventKind = "arrival"
	EventComplete      EventKind = "complete"
	EventDocumentReady EventKind = "document-ready"
)

// Event is delivered to the Observer after the state change it describes.
type Event struct {
	SessionID value.SessionID
	Kind      EventKind
	State     State
	Arrival   entity.Arrival
}

type Observer func(Event)

type Options struct {
	BatchSize int
	Arrivals  worker.ArrivalSource
	Documents DocumentGenerator
	Observer  Observer
}

type Session struct {
	id      value.SessionID
	baseCtx context.Context //nolint:containedctx // outlives requests
	opts    Options
	runner  *worker.SequenceRunner
	log     *slog.Logger

	mu        sync.Mutex
	state     State
	closed    bool
	docCancel context.CancelFunc
	docWG     sync.WaitGroup
}

// NewSession creates an idle session. Background work (arrivals, the document
// timer) runs under ctx, never under a request context.
func NewSession(ctx context.Context, id value.SessionID, opts Options) *Session {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}

	log := logger(ctx).With(logx.Stringer(logx.FieldSessionID, id))

	metricSessionsActive.Inc()

	return &Session{
		id:      id,
		baseCtx: contextx.WithLogger(contextx.WithSessionID(ctx, contextx.SessionID(id)), log),
		opts:    opts,
		runner:  worker.NewSequenceRunner(opts.Arrivals),
		log:     log,
		state:   NewState(),
	}
}

func (s *Session) ID() value.SessionID {
	return s.id
}

// View returns the current snapshot.
func (s *Session) View() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Submit starts a new search, replacing the whole collection.
func (s *Session) Submit(ctx context.Context, query string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed()
	}

	next, err := s.state.submit(query, s.opts.BatchSize)
	if err != nil {
		return err
	}

	s.state = next
	s.runner.Start(s.baseCtx, next.Remaining, s)
	metricSequencesStarted.WithLabelValues(triggerSubmit).Inc()

	logger(ctx).Info("search submitted", slog.Int(logx.FieldRemaining, next.Remaining))

	return nil
}

// Continue requests another batch on top of the current results.
func (s *Session) Continue(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed()
	}

	next, err := s.state.continueSearch(s.opts.BatchSize)
	if err != nil {
		return err
	}

	s.state = next
	s.runner.Start(s.baseCtx, next.Remaining, s)
	metricSequencesStarted.WithLabelValues(triggerContinue).Inc()

	logger(ctx).Info("search continued", slog.Int(logx.FieldRemaining, next.Remaining))

	return nil
}

// Pause cancels the pending arrival timer. Nothing is appended until Resume.
func (s *Session) Pause(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed()
	}

	next, err := s.state.pause()
	if err != nil {
		return err
	}

	s.state = next
	s.runner.Cancel()

	logger(ctx).Info("search paused", slog.Int(logx.FieldRemaining, next.Remaining))

	return nil
}

// Resume re-issues the arrivals still owed with fresh delays. The wait already
// spent on the interrupted arrival is not credited.
func (s *Session) Resume(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed()
	}

	next, err := s.state.resume()
	if err != nil {
		return err
	}

	s.state = next
	s.runner.Start(s.baseCtx, next.Remaining, s)
	metricSequencesStarted.WithLabelValues(triggerResume).Inc()

	logger(ctx).Info("search resumed", slog.Int(logx.FieldRemaining, next.Remaining))

	return nil
}

func (s *Session) Toggle(_ context.Context, id value.CardID) (entity.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return entity.Card{}, domain.ErrSessionClosed()
	}

	next, err := s.state.toggle(id)
	if err != nil {
		return entity.Card{}, err
	}

	s.state = next

	for _, c := range next.Cards {
		if c.ID == id {
			return c, nil
		}
	}

	return entity.Card{}, domain.ErrCardNotFound(id)
}

func (s *Session) SetSort(_ context.Context, key value.SortKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed()
	}

	s.state = s.state.sortBy(key)

	return nil
}

// GenerateDocument opens the busy state and resolves it to the static
// document after the generator's fixed delay.
func (s *Session) GenerateDocument(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrSessionClosed()
	}

	next, err := s.state.startDocument()
	if err != nil {
		return err
	}

	s.state = next

	docCtx, cancel := context.WithCancel(s.baseCtx)
	s.docCancel = cancel

	s.docWG.Add(1)

	go s.generateDocument(docCtx, cancel)

	logger(ctx).Info("document generation started", slog.Int("selected", len(next.Selected())))

	return nil
}

func (s *Session) generateDocument(ctx context.Context, cancel context.CancelFunc) {
	defer s.docWG.Done()
	defer cancel()

	doc, err := s.opts.Documents.Generate(ctx)

	s.mu.Lock()

	if ctx.Err() != nil || s.closed {
		s.mu.Unlock()
		return
	}

	if err != nil {
		// Генератор падает только по отмене контекста, но состояние
		// не должно навсегда остаться в generating.
		s.state = s.state.documentReady(entity.Document{Status: value.DocumentNone})
		s.mu.Unlock()
		s.log.Error("document generation failed", logx.Error(err))

		return
	}

	s.state = s.state.documentReady(doc)
	snapshot := s.state
	s.mu.Unlock()

	metricDocumentsGenerated.Inc()
	s.log.Info("document ready", slog.String(logx.FieldURL, doc.URL))
	s.notify(Event{Kind: EventDocumentReady, State: snapshot})
}

// HandleArrival implements worker.SequenceHandler.
func (s *Session) HandleArrival(ctx context.Context, arrival entity.Arrival) {
	s.mu.Lock()

	if ctx.Err() != nil || s.closed || s.state.Phase != value.PhaseSearching {
		s.mu.Unlock()
		return
	}

	s.state = s.state.arrive(arrival)
	snapshot := s.state
	s.mu.Unlock()

	metricCardsGenerated.Inc()
	s.log.Debug("card arrived",
		slog.Int(logx.FieldArrival, arrival.Index),
		logx.Stringer(logx.FieldCardID, arrival.Card.ID),
		slog.Int(logx.FieldViewed, snapshot.Viewed),
	)
	s.notify(Event{Kind: EventArrival, State: snapshot, Arrival: arrival})
}

// HandleComplete implements worker.SequenceHandler.
func (s *Session) HandleComplete(ctx context.Context) {
	s.mu.Lock()

	if ctx.Err() != nil || s.closed || s.state.Phase != value.PhaseSearching {
		s.mu.Unlock()
		return
	}

	s.state = s.state.complete()
	snapshot := s.state
	s.mu.Unlock()

	s.log.Info("search completed", slog.Int("cards", len(snapshot.Cards)), slog.Int(logx.FieldViewed, snapshot.Viewed))
	s.notify(Event{Kind: EventComplete, State: snapshot})
}

// Close tears the session down: pending timers are cancelled and Close
// returns only after the background goroutines have exited. No state change
// happens afterwards. Close is idempotent.
func (s *Session) Close() {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return
	}

	s.closed = true
	s.runner.Cancel()

	if s.docCancel != nil {
		s.docCancel()
	}

	s.mu.Unlock()

	s.runner.Wait()
	s.docWG.Wait()

	metricSessionsActive.Dec()
	s.log.Info("session closed")
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}

func (s *Session) notify(e Event) {
	if s.opts.Observer == nil {
		return
	}

	e.SessionID = s.id
	s.opts.Observer(e)
}
