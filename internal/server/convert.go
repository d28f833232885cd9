package server

import (
	"github.com/samber/lo"

	"saftz/internal/domain/entity"
	"saftz/internal/domain/service/search"
	"saftz/internal/domain/value"
	"saftz/pkg/rest"
)

func newRESTCard(card entity.Card) rest.Card {
	return rest.Card{
		ID:           card.ID.String(),
		Description:  card.Description,
		Percentage:   card.Percentage,
		Grade:        string(card.Grade()),
		Checked:      card.Checked,
		Price:        int64(card.Price),
		PriceDisplay: card.Price.String(),
	}
}

func newRESTView(id value.SessionID, state search.State) rest.View {
	return rest.View{
		SessionID:   id.String(),
		Query:       state.Query,
		Phase:       string(state.Phase),
		SortBy:      state.SortBy.String(),
		Viewed:      state.Viewed,
		ViewedLabel: value.RecordWord(state.Viewed),
		Remaining:   state.Remaining,
		AnyChecked:  state.AnyChecked(),
		Cards: lo.Map(state.Sorted(), func(c entity.Card, _ int) rest.Card {
			return newRESTCard(c)
		}),
		Document: rest.Document{
			Status: string(state.Document.Status),
			URL:    state.Document.URL,
		},
	}
}
