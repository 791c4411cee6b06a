package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/ladders/internal/game"
)

// Memory is an in-process store with the same behaviour as Store.
// State is lost when the process exits.
type Memory struct {
	mu      sync.RWMutex
	rooms   map[string]memoryRoom
	results []ResultEntry
	clock   int64
}

type memoryRoom struct {
	state *game.State
	seq   int64 // Save order, newest highest
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{rooms: make(map[string]memoryRoom)}
}

// Load returns a copy of the stored state, or nil if the room does not exist.
func (m *Memory) Load(_ context.Context, roomID string) (*game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[roomID]
	if !ok {
		return nil, nil
	}
	return r.state.Clone(), nil
}

// Save stores a copy of st, replacing any previous state.
func (m *Memory) Save(_ context.Context, st *game.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock++
	m.rooms[st.RoomID] = memoryRoom{state: st.Clone(), seq: m.clock}
	return nil
}

// List returns rooms most recently saved first. An empty status matches all.
func (m *Memory) List(_ context.Context, status game.Status) ([]*game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]memoryRoom, 0, len(m.rooms))
	for _, r := range m.rooms {
		if status == "" || r.state.Status == status {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].seq > matched[j].seq })

	out := make([]*game.State, len(matched))
	for i, r := range matched {
		out[i] = r.state.Clone()
	}
	return out, nil
}

// SaveResult records a result once per room.
func (m *Memory) SaveResult(_ context.Context, r game.Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.results {
		if e.RoomID == r.RoomID {
			return nil
		}
	}
	m.results = append(m.results, ResultEntry{
		ID:        int64(len(m.results) + 1),
		Result:    r,
		CreatedAt: time.Now(),
	})
	return nil
}

// RecentResults returns the newest results first.
func (m *Memory) RecentResults(_ context.Context, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []ResultEntry
	for i := len(m.results) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.results[i])
	}
	return out, nil
}
