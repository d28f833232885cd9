package domain

import (
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"saftz/internal/domain/value"
	"saftz/pkg/errcodes"
)

// Ошибки предметной области. Description уходит клиенту как message.

func ErrSessionNotFound(id value.SessionID) error {
	return failure.NewNotFoundError(
		fmt.Sprintf("session %s not found", id),
		failure.WithCode(errcodes.SessionNotFound),
		failure.WithDescription("Сессия не найдена"),
	)
}

func ErrSessionClosed() error {
	return failure.NewConflictError(
		"session is closed",
		failure.WithCode(errcodes.SessionClosed),
		failure.WithDescription("Сессия завершена"),
	)
}

func ErrEmptyQuery() error {
	return failure.NewInvalidArgumentError(
		"query is blank",
		failure.WithCode(errcodes.EmptyQuery),
		failure.WithDescription("Введите ваш запрос"),
	)
}

func ErrSearchInProgress(phase value.Phase) error {
	return failure.NewConflictError(
		fmt.Sprintf("search is %s", phase),
		failure.WithCode(errcodes.SearchInProgress),
		failure.WithDescription("Поиск уже выполняется"),
	)
}

func ErrSearchNotRunning(phase value.Phase) error {
	return failure.NewConflictError(
		fmt.Sprintf("cannot pause in phase %s", phase),
		failure.WithCode(errcodes.SearchNotRunning),
		failure.WithDescription("Поиск не выполняется"),
	)
}

func ErrSearchNotPaused(phase value.Phase) error {
	return failure.NewConflictError(
		fmt.Sprintf("cannot resume in phase %s", phase),
		failure.WithCode(errcodes.SearchNotPaused),
		failure.WithDescription("Поиск не на паузе"),
	)
}

func ErrNoResultsToExtend(phase value.Phase) error {
	return failure.NewConflictError(
		fmt.Sprintf("cannot continue in phase %s", phase),
		failure.WithCode(errcodes.NoResultsToExtend),
		failure.WithDescription("Нет завершённого поиска для продолжения"),
	)
}

func ErrInvalidSortKey(err error) error {
	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(errcodes.InvalidSortKey),
		failure.WithDescription("Неизвестный вид сортировки"),
	)
}

func ErrCardNotFound(id value.CardID) error {
	return failure.NewNotFoundError(
		fmt.Sprintf("card %s not found", id),
		failure.WithCode(errcodes.CardNotFound),
		failure.WithDescription("Карточка не найдена"),
	)
}

func ErrNothingSelected() error {
	return failure.NewConflictError(
		"no card is checked",
		failure.WithCode(errcodes.NothingSelected),
		failure.WithDescription("Выберите хотя бы одну карточку"),
	)
}

func ErrDocumentUnavailable(phase value.Phase, status value.DocumentStatus) error {
	return failure.NewConflictError(
		fmt.Sprintf("cannot generate document: phase %s, document %s", phase, status),
		failure.WithCode(errcodes.DocumentInProgress),
		failure.WithDescription("Формирование ТЗ сейчас недоступно"),
	)
}

func ErrShuttingDown() error {
	return failure.NewConflictError(
		"session manager is closed",
		failure.WithCode(errcodes.ShuttingDown),
		failure.WithDescription("Сервис останавливается, повторите позже"),
	)
}
