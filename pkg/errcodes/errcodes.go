package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"
	TooManyRequests     failure.ErrorCode = "TooManyRequests"

	// Сессия и поиск
	SessionNotFound    failure.ErrorCode = "SessionNotFound"
	InvalidSessionID   failure.ErrorCode = "InvalidSessionID"
	EmptyQuery         failure.ErrorCode = "EmptyQuery"
	SearchInProgress   failure.ErrorCode = "SearchInProgress"
	SearchNotRunning   failure.ErrorCode = "SearchNotRunning"
	SearchNotPaused    failure.ErrorCode = "SearchNotPaused"
	NoResultsToExtend  failure.ErrorCode = "NoResultsToExtend"
	SessionClosed      failure.ErrorCode = "SessionClosed"
	ShuttingDown       failure.ErrorCode = "ShuttingDown"
	InvalidSortKey     failure.ErrorCode = "InvalidSortKey"
	CardNotFound       failure.ErrorCode = "CardNotFound"
	InvalidCardID      failure.ErrorCode = "InvalidCardID"
	NothingSelected    failure.ErrorCode = "NothingSelected"
	DocumentInProgress failure.ErrorCode = "DocumentInProgress"
)
