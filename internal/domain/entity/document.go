package entity

import (
	"time"

	"saftz/internal/domain/value"
)

// Document результат формирования ТЗ. URL указывает на статичный файл, из
// выбранных карточек ничего не генерируется.
type Document struct {
	Status  value.DocumentStatus
	URL     string
	ReadyAt time.Time
}
