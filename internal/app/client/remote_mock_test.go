package client

import (
	"context"
	"encoding/json"
	"io"
	"sort"
	gosync "sync"

	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockRemote is a testify mock of Remote.
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) FetchAll(ctx context.Context) ([]Raw, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]Raw), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRemote) Create(ctx context.Context, payload any) (Raw, error) {
	args := m.Called(ctx, payload)
	if v := args.Get(0); v != nil {
		return v.(Raw), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRemote) Update(ctx context.Context, id int, payload any) (Raw, error) {
	args := m.Called(ctx, id, payload)
	if v := args.Get(0); v != nil {
		return v.(Raw), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRemote) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// memRemote is an in-memory server collection. Payloads go through JSON
// the same way they would over the wire.
type memRemote struct {
	mu      gosync.Mutex
	records map[int]Raw
	nextID  int
	fetches int

	// onRemove runs after a successful remove, e.g. to cascade.
	onRemove func(id int)
	// rewrite lets a test alter what the server stores.
	rewrite func(Raw) Raw
}

func newMemRemote(records ...Raw) *memRemote {
	m := &memRemote{records: make(map[int]Raw), nextID: 1}
	for _, r := range records {
		id := coerceInt(r["id"])
		m.records[id] = r
		if id >= m.nextID {
			m.nextID = id + 1
		}
	}
	return m
}

func toRaw(payload any) Raw {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	var raw Raw
	if err := json.Unmarshal(data, &raw); err != nil {
		panic(err)
	}
	return raw
}

func (m *memRemote) FetchAll(context.Context) ([]Raw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.fetches++
	ids := make([]int, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]Raw, 0, len(ids))
	for _, id := range ids {
		out = append(out, m.records[id])
	}
	return out, nil
}

func (m *memRemote) Create(_ context.Context, payload any) (Raw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw := toRaw(payload)
	raw["id"] = float64(m.nextID)
	if m.rewrite != nil {
		raw = m.rewrite(raw)
	}
	m.records[m.nextID] = raw
	m.nextID++
	return raw, nil
}

func (m *memRemote) Update(_ context.Context, id int, payload any) (Raw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.records[id]
	if !ok {
		return nil, &TransportError{Method: "PUT", Path: "/update", Status: 404, Body: `{"detail":"not found"}`}
	}

	merged := Raw{}
	for k, v := range cur {
		merged[k] = v
	}
	for k, v := range toRaw(payload) {
		merged[k] = v
	}
	if m.rewrite != nil {
		merged = m.rewrite(merged)
	}
	m.records[id] = merged
	return merged, nil
}

func (m *memRemote) Remove(_ context.Context, id int) error {
	m.mu.Lock()
	if _, ok := m.records[id]; !ok {
		m.mu.Unlock()
		return &TransportError{Method: "DELETE", Path: "/delete", Status: 404, Body: `{"detail":"not found"}`}
	}
	delete(m.records, id)
	m.mu.Unlock()

	if m.onRemove != nil {
		m.onRemove(id)
	}
	return nil
}

func (m *memRemote) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches
}

func (m *memRemote) removeWhere(match func(Raw) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.records {
		if match(r) {
			delete(m.records, id)
		}
	}
}
