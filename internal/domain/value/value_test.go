package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"saftz/internal/domain/value"
)

func TestPriceString(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		price value.Price
		want  string
	}{
		{price: 100_000, want: "100 тыс ₽"},
		{price: 349_600, want: "350 тыс ₽"},
		{price: 999_400, want: "999 тыс ₽"},
		{price: 1_000_000, want: "1.0 млн ₽"},
		{price: 2_440_000, want: "2.4 млн ₽"},
		{price: 9_999_999, want: "10.0 млн ₽"},
	}

	for _, tc := range testCases {
		rq.Equal(tc.want, tc.price.String(), "price %d", tc.price)
	}
}

func TestRecordWord(t *testing.T) {
	rq := require.New(t)

	testCases := map[int]string{
		0:   "записей",
		1:   "запись",
		2:   "записи",
		4:   "записи",
		5:   "записей",
		11:  "записей",
		14:  "записей",
		19:  "записей",
		21:  "запись",
		22:  "записи",
		111: "записей",
		125: "записей",
	}

	for n, want := range testCases {
		rq.Equal(want, value.RecordWord(n), "n=%d", n)
	}
}

func TestGradeOf(t *testing.T) {
	rq := require.New(t)

	rq.Equal(value.GradeLow, value.GradeOf(0))
	rq.Equal(value.GradeLow, value.GradeOf(39))
	rq.Equal(value.GradeMedium, value.GradeOf(40))
	rq.Equal(value.GradeMedium, value.GradeOf(69))
	rq.Equal(value.GradeHigh, value.GradeOf(70))
	rq.Equal(value.GradeHigh, value.GradeOf(100))
}

func TestParseSortKey(t *testing.T) {
	rq := require.New(t)

	for _, s := range []string{"price-asc", "price-desc", "percentage-asc", "percentage-desc"} {
		key, err := value.ParseSortKey(s)
		rq.NoError(err)
		rq.Equal(s, key.String())
	}

	_, err := value.ParseSortKey("date-desc")
	rq.ErrorIs(err, value.ErrUnknownSortKey)
}

func TestParseIDs(t *testing.T) {
	rq := require.New(t)

	cardID := value.NewCardID()
	parsedCardID, err := value.ParseCardID(cardID.String())
	rq.NoError(err)
	rq.Equal(cardID, parsedCardID)

	_, err = value.ParseCardID("not-a-uuid")
	rq.Error(err)

	sessionID := value.NewSessionID()
	parsedSessionID, err := value.ParseSessionID(sessionID.String())
	rq.NoError(err)
	rq.Equal(sessionID, parsedSessionID)

	_, err = value.ParseSessionID("nope")
	rq.Error(err)
}
