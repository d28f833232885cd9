package entity

import "saftz/internal/domain/value"

// CardDescription общий текст всех карточек демо-выдачи.
const CardDescription = "Описание заказа"

// Card одна карточка результата поиска. После создания меняется только
// Checked, и только через копию.
type Card struct {
	ID          value.CardID
	Description string
	Percentage  int
	Checked     bool
	Price       value.Price
}

func (c Card) Grade() value.Grade {
	return value.GradeOf(c.Percentage)
}

// Toggled returns a copy of the card with the flag flipped.
func (c Card) Toggled() Card {
	c.Checked = !c.Checked
	return c
}
