package value

import (
	"cmp"
	"errors"
	"fmt"
)

type SortKey string

const (
	SortPriceAsc       SortKey = "price-asc"
	SortPriceDesc      SortKey = "price-desc"
	SortPercentageAsc  SortKey = "percentage-asc"
	SortPercentageDesc SortKey = "percentage-desc"

	DefaultSortKey = SortPriceDesc
)

var ErrUnknownSortKey = errors.New("unknown sort key")

func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(s); key {
	case SortPriceAsc, SortPriceDesc, SortPercentageAsc, SortPercentageDesc:
		return key, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
	}
}

func (k SortKey) String() string {
	return string(k)
}

// Compare orders two (price, percentage) pairs according to the key. Equal
// values compare as 0 so a stable sort keeps insertion order for ties.
func (k SortKey) Compare(aPrice, bPrice Price, aPercentage, bPercentage int) int {
	switch k {
	case SortPriceAsc:
		return cmp.Compare(aPrice, bPrice)
	case SortPriceDesc:
		return cmp.Compare(bPrice, aPrice)
	case SortPercentageAsc:
		return cmp.Compare(aPercentage, bPercentage)
	case SortPercentageDesc:
		return cmp.Compare(bPercentage, aPercentage)
	default:
		return 0
	}
}
