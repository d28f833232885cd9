package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"saftz/internal/domain"
	"saftz/internal/domain/service/search"
	"saftz/internal/domain/value"
	"saftz/pkg/contextx"
	"saftz/pkg/errcodes"
	"saftz/pkg/httpx/reply"
	"saftz/pkg/httpx/req"
	"saftz/pkg/logx"
	"saftz/pkg/rest"
)

type sessionManager interface {
	Create(context.Context) (*search.Session, error)
	Get(context.Context, value.SessionID) (*search.Session, error)
	Delete(context.Context, value.SessionID) error
}

type SessionServer struct {
	sessions sessionManager
}

func NewSessionServer(sessions sessionManager) SessionServer {
	return SessionServer{
		sessions: sessions,
	}
}

// session resolves {id} and returns a context whose logger carries it.
func (s SessionServer) session(r *http.Request) (context.Context, *search.Session, error) {
	ctx := r.Context()

	id, err := value.ParseSessionID(chi.URLParam(r, "id"))
	if err != nil {
		return ctx, nil, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseSessionID: %w", err),
			failure.WithCode(errcodes.InvalidSessionID),
			failure.WithDescription("Некорректный идентификатор сессии"),
		)
	}

	ctx = contextx.WithSessionID(ctx, contextx.SessionID(id))
	ctx = contextx.WithLogger(ctx, contextx.LoggerFromContextOrDefault(ctx).With(
		logx.Stringer(logx.FieldSessionID, id),
	))

	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return ctx, nil, fmt.Errorf("sessions.Get: %w", err)
	}

	return ctx, session, nil
}

func (s SessionServer) postV1Session(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	session, err := s.sessions.Create(ctx)
	if err != nil {
		return fmt.Errorf("sessions.Create: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTView(session.ID(), session.View()))

	return nil
}

func (s SessionServer) getV1Session(w http.ResponseWriter, r *http.Request) error {
	ctx, session, err := s.session(r)
	if err != nil {
		return err
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTView(session.ID(), session.View()))

	return nil
}

func (s SessionServer) deleteV1Session(w http.ResponseWriter, r *http.Request) error {
	ctx, session, err := s.session(r)
	if err != nil {
		return err
	}

	if err = s.sessions.Delete(ctx, session.ID()); err != nil {
		return fmt.Errorf("sessions.Delete: %w", err)
	}

	reply.NoContent(w)

	return nil
}

func (s SessionServer) postV1Search(w http.ResponseWriter, r *http.Request) error {
	ctx, session, err := s.session(r)
	if err != nil {
		return err
	}

	var request rest.SearchRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err = session.Submit(ctx, request.Query); err != nil {
		return fmt.Errorf("session.Submit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusAccepted, newRESTView(session.ID(), session.View()))

	return nil
}

func (s SessionServer) postV1Continue(w http.ResponseWriter, r *http.Request) error {
	return s.transition(w, r, "session.Continue", (*search.Session).Continue)
}

func (s SessionServer) postV1Pause(w http.ResponseWriter, r *http.Request) error {
	return s.transition(w, r, "session.Pause", (*search.Session).Pause)
}

func (s SessionServer) postV1Resume(w http.ResponseWriter, r *http.Request) error {
	return s.transition(w, r, "session.Resume", (*search.Session).Resume)
}

func (s SessionServer) postV1Document(w http.ResponseWriter, r *http.Request) error {
	return s.transition(w, r, "session.GenerateDocument", (*search.Session).GenerateDocument)
}

func (s SessionServer) transition(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	apply func(*search.Session, context.Context) error,
) error {
	ctx, session, err := s.session(r)
	if err != nil {
		return err
	}

	if err = apply(session, ctx); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	reply.JSON(ctx, w, http.StatusAccepted, newRESTView(session.ID(), session.View()))

	return nil
}

func (s SessionServer) putV1Sort(w http.ResponseWriter, r *http.Request) error {
	ctx, session, err := s.session(r)
	if err != nil {
		return err
	}

	var request rest.SortRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	key, err := value.ParseSortKey(request.SortBy)
	if err != nil {
		return domain.ErrInvalidSortKey(err)
	}

	if err = session.SetSort(ctx, key); err != nil {
		return fmt.Errorf("session.SetSort: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTView(session.ID(), session.View()))

	return nil
}

func (s SessionServer) postV1ToggleCard(w http.ResponseWriter, r *http.Request) error {
	ctx, session, err := s.session(r)
	if err != nil {
		return err
	}

	cardID, err := value.ParseCardID(chi.URLParam(r, "cardID"))
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseCardID: %w", err),
			failure.WithCode(errcodes.InvalidCardID),
			failure.WithDescription("Некорректный идентификатор карточки"),
		)
	}

	card, err := session.Toggle(ctx, cardID)
	if err != nil {
		return fmt.Errorf("session.Toggle: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTCard(card))

	return nil
}
