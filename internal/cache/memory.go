package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"procurehub/internal/recommend"
)

func key(tenantID string, productID uint64) string {
	return fmt.Sprintf("suggestions:%s:%d", tenantID, productID)
}

type memoryEntry struct {
	set       *recommend.SuggestionSet
	expiresAt time.Time
}

// Memory is the default suggestion cache: a TTL map swept by the cron
// janitor. Reads on expired entries miss immediately; removal is deferred to
// Sweep so the read path stays lock-cheap.
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]memoryEntry{},
	}
}

func (m *Memory) Get(ctx context.Context, tenantID string, productID uint64) (*recommend.SuggestionSet, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key(tenantID, productID)]
	m.mu.RUnlock()
	if !ok || m.now().After(entry.expiresAt) {
		return nil, false, nil
	}
	return entry.set, true, nil
}

func (m *Memory) Set(ctx context.Context, tenantID string, productID uint64, set *recommend.SuggestionSet) error {
	m.mu.Lock()
	m.entries[key(tenantID, productID)] = memoryEntry{
		set:       set,
		expiresAt: m.now().Add(m.ttl),
	}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(ctx context.Context, tenantID string, productID uint64) error {
	m.mu.Lock()
	delete(m.entries, key(tenantID, productID))
	m.mu.Unlock()
	return nil
}

// Sweep drops expired entries and reports how many were removed.
func (m *Memory) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for k, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, k)
			removed++
		}
	}
	return removed
}
