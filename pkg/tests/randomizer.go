package tests

import (
	"math/rand/v2"
	"time"
)

//nolint:gochecknoglobals
var queries = []string{
	"поставка кабеля ВВГнг 3x2.5",
	"ремонт кровли административного здания",
	"закупка серверного оборудования",
	"техническое обслуживание лифтов",
	"разработка мобильного приложения",
}

// Randomizer gives tests a per-run seed (logged on failure via t.Logf) and
// realistic search queries.
type Randomizer struct {
	Seed  uint64
	Query func() string
}

func NewRandomizer() Randomizer {
	seed := uint64(time.Now().UnixNano()) //nolint:gosec // for tests
	random := rand.New(rand.NewPCG(seed, seed>>1)) //nolint:gosec // for tests

	return Randomizer{
		Seed:  seed,
		Query: func() string { return queries[random.IntN(len(queries))] },
	}
}
