package server

import (
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"saftz/internal/domain/service/document"
	"saftz/pkg/errcodes"
)

// DocumentServer отдаёт заранее подготовленный файл ТЗ.
type DocumentServer struct {
	content []byte
}

func NewDocumentServer(content []byte) DocumentServer {
	return DocumentServer{
		content: content,
	}
}

func (s DocumentServer) getV1Document(w http.ResponseWriter, r *http.Request) error {
	if chi.URLParam(r, "name") != document.FileName {
		return failure.NewNotFoundError(
			"unknown document",
			failure.WithCode(errcodes.NotFound),
			failure.WithDescription("Документ не найден"),
		)
	}

	w.Header().Set("Content-Type", document.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(s.content)))
	w.Header().Set("Content-Disposition", `inline; filename="`+document.FileName+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(s.content) //nolint:errcheck

	return nil
}
