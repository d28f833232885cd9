package search

import (
	"slices"
	"strings"

	"github.com/samber/lo"

	"saftz/internal/domain"
	"saftz/internal/domain/entity"
	"saftz/internal/domain/value"
)

// State снимок страницы поиска. Переходы возвращают новое состояние и
// никогда не меняют срез Cards на месте, поэтому снимок можно отдавать
// наружу без копирования.
type State struct {
	Query     string
	Phase     value.Phase
	Cards     []entity.Card // insertion order
	Viewed    int
	Remaining int // arrivals still owed by the current sequence
	SortBy    value.SortKey
	Document  entity.Document
}

func NewState() State {
	return State{
		Phase:    value.PhaseIdle,
		SortBy:   value.DefaultSortKey,
		Document: entity.Document{Status: value.DocumentNone},
	}
}

// busy reports whether a sequence or a document generation is in flight.
func (s State) busy() bool {
	return s.Phase == value.PhaseSearching || s.Phase == value.PhasePaused ||
		s.Document.Status == value.DocumentGenerating
}

func (s State) submit(query string, batch int) (State, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s, domain.ErrEmptyQuery()
	}

	if s.busy() {
		return s, domain.ErrSearchInProgress(s.Phase)
	}

	s.Query = query
	s.Phase = value.PhaseSearching
	s.Cards = nil
	s.Viewed = 0
	s.Remaining = batch
	s.Document = entity.Document{Status: value.DocumentNone}

	return s, nil
}

func (s State) continueSearch(batch int) (State, error) {
	if s.Phase != value.PhaseResults || s.Document.Status == value.DocumentGenerating {
		return s, domain.ErrNoResultsToExtend(s.Phase)
	}

	s.Phase = value.PhaseSearching
	s.Remaining = batch

	return s, nil
}

func (s State) pause() (State, error) {
	if s.Phase != value.PhaseSearching {
		return s, domain.ErrSearchNotRunning(s.Phase)
	}

	s.Phase = value.PhasePaused

	return s, nil
}

func (s State) resume() (State, error) {
	if s.Phase != value.PhasePaused {
		return s, domain.ErrSearchNotPaused(s.Phase)
	}

	s.Phase = value.PhaseSearching

	return s, nil
}

func (s State) arrive(a entity.Arrival) State {
	s.Cards = append(slices.Clip(s.Cards), a.Card)
	s.Viewed += a.Increment
	s.Remaining = max(s.Remaining-1, 0)

	return s
}

func (s State) complete() State {
	s.Phase = value.PhaseResults
	s.Remaining = 0

	return s
}

func (s State) toggle(id value.CardID) (State, error) {
	i := slices.IndexFunc(s.Cards, func(c entity.Card) bool { return c.ID == id })
	if i < 0 {
		return s, domain.ErrCardNotFound(id)
	}

	cards := slices.Clone(s.Cards)
	cards[i] = cards[i].Toggled()
	s.Cards = cards

	return s, nil
}

func (s State) sortBy(key value.SortKey) State {
	s.SortBy = key
	return s
}

func (s State) startDocument() (State, error) {
	if s.Phase != value.PhaseResults || s.Document.Status == value.DocumentGenerating {
		return s, domain.ErrDocumentUnavailable(s.Phase, s.Document.Status)
	}

	if !s.AnyChecked() {
		return s, domain.ErrNothingSelected()
	}

	s.Document = entity.Document{Status: value.DocumentGenerating}

	return s, nil
}

func (s State) documentReady(doc entity.Document) State {
	s.Document = doc
	return s
}

// AnyChecked is true iff at least one card is checked.
func (s State) AnyChecked() bool {
	return lo.SomeBy(s.Cards, func(c entity.Card) bool { return c.Checked })
}

// Sorted returns the display order for SortBy. Ties keep insertion order.
// The stored slice is left untouched.
func (s State) Sorted() []entity.Card {
	sorted := slices.Clone(s.Cards)

	slices.SortStableFunc(sorted, func(a, b entity.Card) int {
		return s.SortBy.Compare(a.Price, b.Price, a.Percentage, b.Percentage)
	})

	return sorted
}

// Selected returns checked cards in insertion order.
func (s State) Selected() []entity.Card {
	return lo.Filter(s.Cards, func(c entity.Card, _ int) bool { return c.Checked })
}
