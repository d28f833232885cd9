package value

import (
	"fmt"

	"github.com/google/uuid"
)

// CardID идентификатор карточки (UUID v4).
type CardID string

func NewCardID() CardID {
	return CardID(uuid.NewString())
}

func ParseCardID(s string) (CardID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("uuid.Parse: %w", err)
	}

	return CardID(id.String()), nil
}

func (id CardID) String() string {
	return string(id)
}
