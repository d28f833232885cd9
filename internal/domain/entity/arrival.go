package entity

// Arrival одно «поступление» в последовательности: новая карточка и на
// сколько вырос счётчик просмотренных записей.
type Arrival struct {
	Index     int // 0-based position inside its sequence
	Card      Card
	Increment int
}
