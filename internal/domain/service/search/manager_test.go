package search_test

import (
	"context"
	"testing"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"saftz/internal/domain/service/document"
	"saftz/internal/domain/service/sequencer"
	"saftz/internal/domain/service/search"
	"saftz/internal/domain/value"
	"saftz/pkg/errcodes"
)

func newManager(cfg search.ManagerConfig) *search.Manager {
	return search.NewManager(context.Background(), cfg, search.Options{
		BatchSize: 3,
		Arrivals:  sequencer.New(sequencer.WithDelayRange(time.Hour, 2*time.Hour)),
		Documents: document.NewGenerator("/v1/documents/tz.pdf"),
	})
}

func mustCreate(t *testing.T, m *search.Manager) *search.Session {
	t.Helper()

	s, err := m.Create(context.Background())
	require.NoError(t, err)

	return s
}

func TestManagerLifecycle(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	m := newManager(search.ManagerConfig{})

	s := mustCreate(t, m)
	rq.Equal(1, m.Len())

	got, err := m.Get(ctx, s.ID())
	rq.NoError(err)
	rq.Same(s, got)

	rq.NoError(s.Submit(ctx, "кабель"))

	rq.NoError(m.Delete(ctx, s.ID()))
	rq.True(s.Closed(), "delete tears the session down")
	rq.Zero(m.Len())

	_, err = m.Get(ctx, s.ID())
	rq.True(failure.IsNotFoundError(err))
	rq.Equal(errcodes.SessionNotFound, failure.Code(err))

	err = m.Delete(ctx, s.ID())
	rq.True(failure.IsNotFoundError(err))

	_, err = m.Get(ctx, value.NewSessionID())
	rq.True(failure.IsNotFoundError(err))
}

func TestManagerEvictsIdleSessions(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	m := newManager(search.ManagerConfig{
		TTL:             50 * time.Millisecond,
		CleanupInterval: 10 * time.Millisecond,
	})

	s := mustCreate(t, m)
	rq.NoError(s.Submit(ctx, "кабель"))

	rq.Eventually(s.Closed, 5*time.Second, 5*time.Millisecond)

	_, err := m.Get(ctx, s.ID())
	rq.True(failure.IsNotFoundError(err))
}

func TestManagerClose(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	m := newManager(search.ManagerConfig{})

	sessions := []*search.Session{mustCreate(t, m), mustCreate(t, m), mustCreate(t, m)}
	for _, s := range sessions {
		rq.NoError(s.Submit(ctx, "кабель"))
	}

	rq.NoError(m.Ready(ctx))

	m.Close(ctx)

	rq.Zero(m.Len())
	rq.ErrorIs(m.Ready(ctx), search.ErrManagerClosed)

	for _, s := range sessions {
		rq.True(s.Closed())
	}
}

func TestManagerRefusesCreateAfterClose(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	m := newManager(search.ManagerConfig{})
	m.Close(ctx)

	s, err := m.Create(ctx)
	rq.Nil(s)
	rq.True(failure.IsConflictError(err))
	rq.Equal(errcodes.ShuttingDown, failure.Code(err))
	rq.Zero(m.Len())
}
