package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errNetwork = &TransportError{Method: "GET", Path: "/clients", Err: errors.New("connection refused")}

func newClientStore(remote Remote) *Store[Client] {
	return NewStore("clients", remote, NormalizeClient, clientID, discardLogger())
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("FetchAll", ctx).Return([]Raw{
		{"id": 1.0, "nombre": "Ana"},
		{"id": 2.0, "nombre": "Luis"},
	}, nil)

	store := newClientStore(remote)
	assert.False(t, store.Loaded())
	assert.Empty(t, store.Items())

	require.NoError(t, store.Load(ctx))
	assert.True(t, store.Loaded())
	assert.Equal(t, uint64(1), store.Revision())
	assert.Equal(t, []Client{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Luis"}}, store.Items())

	c, ok := store.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "Luis", c.Name)

	_, ok = store.Get(3)
	assert.False(t, ok)
}

func TestStore_LoadIsIdempotent(t *testing.T) {
	ctx := context.Background()
	remote := newMemRemote(
		Raw{"id": 1.0, "nombre": "Ana", "telefono": "5555-0000"},
		Raw{"id": 2.0, "nombre": "Luis"},
	)
	store := newClientStore(remote)

	require.NoError(t, store.Load(ctx))
	first := store.Items()
	require.NoError(t, store.Load(ctx))

	assert.Equal(t, first, store.Items())
	assert.Equal(t, uint64(2), store.Revision())
}

func TestStore_LoadReplacesItems(t *testing.T) {
	ctx := context.Background()
	remote := newMemRemote(Raw{"id": 1.0, "nombre": "Ana"}, Raw{"id": 2.0, "nombre": "Luis"})
	store := newClientStore(remote)
	require.NoError(t, store.Load(ctx))

	remote.removeWhere(func(r Raw) bool { return coerceInt(r["id"]) == 1 })
	require.NoError(t, store.Load(ctx))

	assert.Equal(t, []Client{{ID: 2, Name: "Luis"}}, store.Items())
}

func TestStore_LoadFailureKeepsItems(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("FetchAll", ctx).Return([]Raw{{"id": 1.0, "nombre": "Ana"}}, nil).Once()
	remote.On("FetchAll", ctx).Return(nil, errNetwork).Once()

	store := newClientStore(remote)
	require.NoError(t, store.Load(ctx))
	before := store.Items()

	err := store.Load(ctx)
	require.Error(t, err)
	var te *TransportError
	assert.ErrorAs(t, err, &te)
	assert.Equal(t, before, store.Items())
	assert.Equal(t, uint64(1), store.Revision())
}

func TestStore_ItemsIsACopy(t *testing.T) {
	ctx := context.Background()
	store := newClientStore(newMemRemote(Raw{"id": 1.0, "nombre": "Ana"}))
	require.NoError(t, store.Load(ctx))

	items := store.Items()
	items[0].Name = "cambiado"

	assert.Equal(t, "Ana", store.Items()[0].Name)
}

// slowRemote blocks the first FetchAll until release is closed.
type slowRemote struct {
	*memRemote
	release chan struct{}
	started chan struct{}
	calls   int
}

func (s *slowRemote) FetchAll(ctx context.Context) ([]Raw, error) {
	s.calls++
	if s.calls == 1 {
		stale := []Raw{{"id": 1.0, "nombre": "viejo"}}
		close(s.started)
		<-s.release
		return stale, nil
	}
	return s.memRemote.FetchAll(ctx)
}

func TestStore_StaleLoadIsDiscarded(t *testing.T) {
	ctx := context.Background()
	remote := &slowRemote{
		memRemote: newMemRemote(Raw{"id": 1.0, "nombre": "nuevo"}),
		release:   make(chan struct{}),
		started:   make(chan struct{}),
	}
	store := newClientStore(remote)

	done := make(chan error)
	go func() { done <- store.Load(ctx) }()
	<-remote.started

	require.NoError(t, store.Load(ctx))
	close(remote.release)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stale load did not finish")
	}

	assert.Equal(t, "nuevo", store.Items()[0].Name)
	assert.Equal(t, uint64(1), store.Revision())
}

func TestStore_CreateReloads(t *testing.T) {
	ctx := context.Background()
	remote := newMemRemote(Raw{"id": 1.0, "nombre": "Ana"})
	remote.rewrite = func(r Raw) Raw {
		r["creado_en"] = "2024-05-01 12:00:00"
		return r
	}
	store := newClientStore(remote)
	require.NoError(t, store.Load(ctx))

	created, err := store.Create(ctx, ClientInput{Name: "Luis"})
	require.NoError(t, err)

	assert.Equal(t, 2, created.ID)
	assert.Equal(t, "2024-05-01T12:00:00.000Z", created.CreatedAt)

	got, ok := store.Get(2)
	require.True(t, ok)
	assert.Equal(t, created, got)
	assert.Equal(t, 2, remote.fetchCount())
}

func TestStore_UpdateReflectsServerValue(t *testing.T) {
	ctx := context.Background()
	remote := newMemRemote(Raw{"id": 1.0, "nombre": "Ana", "telefono": "1"})
	remote.rewrite = func(r Raw) Raw {
		r["nombre"] = "ANA"
		return r
	}
	store := newClientStore(remote)
	require.NoError(t, store.Load(ctx))

	name := "Ana María"
	updated, err := store.Update(ctx, 1, ClientPatch{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "ANA", updated.Name)
	assert.Equal(t, "1", updated.Phone)
	assert.Equal(t, []Client{{ID: 1, Name: "ANA", Phone: "1"}}, store.Items())
}

func TestStore_FailedMutationDoesNotReload(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("FetchAll", ctx).Return([]Raw{{"id": 1.0, "nombre": "Ana"}}, nil).Once()
	remote.On("Remove", ctx, 1).Return(&TransportError{Method: "DELETE", Path: "/delete/client/1", Status: 500}).Once()
	remote.On("Create", ctx, mock.Anything).Return(nil, &TransportError{Method: "POST", Path: "/client", Status: 400}).Once()

	store := newClientStore(remote)
	require.NoError(t, store.Load(ctx))
	before := store.Items()

	err := store.Delete(ctx, 1)
	assert.True(t, IsStatus(err, 500))
	assert.Equal(t, before, store.Items())

	_, err = store.Create(ctx, ClientInput{Name: "x"})
	assert.True(t, IsStatus(err, 400))
	assert.Equal(t, before, store.Items())

	remote.AssertNumberOfCalls(t, "FetchAll", 1)
	remote.AssertExpectations(t)
}

func TestStore_ReloadFailureAfterWrite(t *testing.T) {
	ctx := context.Background()
	remote := new(MockRemote)
	remote.On("FetchAll", ctx).Return([]Raw{{"id": 1.0, "nombre": "Ana"}}, nil).Once()
	remote.On("Remove", ctx, 1).Return(nil).Once()
	remote.On("FetchAll", ctx).Return(nil, errNetwork).Once()

	store := newClientStore(remote)
	require.NoError(t, store.Load(ctx))

	err := store.Delete(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReloadFailed)

	var te *TransportError
	assert.ErrorAs(t, err, &te)
	remote.AssertExpectations(t)
}

func TestStore_InvalidID(t *testing.T) {
	store := newClientStore(new(MockRemote))

	assert.ErrorIs(t, store.Delete(context.Background(), 0), ErrInvalidInput)
	_, err := store.Update(context.Background(), -1, ClientPatch{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStore_ConcurrentDeletesAreSerialized(t *testing.T) {
	ctx := context.Background()
	remote := newMemRemote(Raw{"id": 1.0, "nombre": "Ana"})
	store := newClientStore(remote)
	require.NoError(t, store.Load(ctx))

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { errs <- store.Delete(ctx, 1) }()
	}

	var failed, succeeded int
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			assert.True(t, IsStatus(err, 404))
			failed++
		} else {
			succeeded++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Empty(t, store.Items())
}
