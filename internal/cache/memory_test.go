package cache

import (
	"context"
	"testing"
	"time"

	"procurehub/internal/recommend"
)

func testSet(productID uint64) *recommend.SuggestionSet {
	return &recommend.SuggestionSet{ProductID: productID, ProductName: "Steel Plate"}
}

func TestMemory_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	if _, ok, err := m.Get(ctx, "acme", 1); err != nil || ok {
		t.Fatalf("empty cache: ok=%v err=%v", ok, err)
	}

	want := testSet(1)
	if err := m.Set(ctx, "acme", 1, want); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := m.Get(ctx, "acme", 1)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got=%p want=%p", got, want)
	}

	if err := m.Delete(ctx, "acme", 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "acme", 1); ok {
		t.Fatalf("entry survived delete")
	}
}

func TestMemory_KeysAreTenantScoped(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)

	if err := m.Set(ctx, "acme", 1, testSet(1)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "globex", 1); ok {
		t.Fatalf("tenant globex must not see acme's entry")
	}
	if _, ok, _ := m.Get(ctx, "acme", 2); ok {
		t.Fatalf("product 2 must not hit product 1's entry")
	}
}

func TestMemory_ExpiredEntryMisses(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	if err := m.Set(ctx, "acme", 1, testSet(1)); err != nil {
		t.Fatalf("set: %v", err)
	}

	m.now = func() time.Time { return base.Add(59 * time.Second) }
	if _, ok, _ := m.Get(ctx, "acme", 1); !ok {
		t.Fatalf("entry expired before its TTL")
	}

	m.now = func() time.Time { return base.Add(61 * time.Second) }
	if _, ok, _ := m.Get(ctx, "acme", 1); ok {
		t.Fatalf("expired entry still served")
	}
}

func TestMemory_SweepRemovesOnlyExpired(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(time.Minute)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return base }

	if err := m.Set(ctx, "acme", 1, testSet(1)); err != nil {
		t.Fatalf("set: %v", err)
	}
	m.now = func() time.Time { return base.Add(30 * time.Second) }
	if err := m.Set(ctx, "acme", 2, testSet(2)); err != nil {
		t.Fatalf("set: %v", err)
	}

	m.now = func() time.Time { return base.Add(70 * time.Second) }
	if removed := m.Sweep(); removed != 1 {
		t.Fatalf("removed=%d want=1", removed)
	}
	if _, ok, _ := m.Get(ctx, "acme", 1); ok {
		t.Fatalf("swept entry still present")
	}
	if _, ok, _ := m.Get(ctx, "acme", 2); !ok {
		t.Fatalf("fresh entry was swept")
	}
	if removed := m.Sweep(); removed != 0 {
		t.Fatalf("second sweep removed=%d want=0", removed)
	}
}

func TestNewMemory_DefaultTTL(t *testing.T) {
	m := NewMemory(0)
	if m.ttl != 5*time.Minute {
		t.Fatalf("ttl=%v want=5m", m.ttl)
	}
}
