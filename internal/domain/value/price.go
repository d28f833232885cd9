package value

import (
	"fmt"
	"math"
)

const (
	MinPrice Price = 100_000
	MaxPrice Price = 10_000_000 // exclusive
)

// Price цена заказа в рублях.
type Price int64

// String formats the price the way cards show it: "2.4 млн ₽" from a million
// up, "350 тыс ₽" below.
func (p Price) String() string {
	if p >= 1_000_000 {
		return fmt.Sprintf("%.1f млн ₽", float64(p)/1_000_000)
	}

	return fmt.Sprintf("%d тыс ₽", int64(math.Round(float64(p)/1_000)))
}
