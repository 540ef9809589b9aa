package cart

import (
	"context"
	"errors"
	"testing"
)

// flakyStorage wraps MemoryStorage and fails the next failLoads Load calls
// with a transport error, the way an unreachable Redis would.
type flakyStorage struct {
	*MemoryStorage
	failLoads int
}

var errStorageDown = errors.New("connection refused")

func (f *flakyStorage) Load(ctx context.Context, key string) ([]byte, error) {
	if f.failLoads > 0 {
		f.failLoads--
		return nil, errStorageDown
	}
	return f.MemoryStorage.Load(ctx, key)
}

func TestServiceRoundTrip(t *testing.T) {
	s := NewService(NewMemoryStorage())
	ctx := context.Background()

	if _, err := s.Add(ctx, "guest", Line{ID: "p1", Name: "Loafer", Price: 80, Colors: []string{"Brown"}, Sizes: []string{"42"}, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got := s.Get(ctx, "guest")
	if len(got.Lines) != 1 {
		t.Fatalf("reload returned %d lines, want 1", len(got.Lines))
	}
	line := got.Lines[0]
	if line.ID != "p1" || line.Name != "Loafer" || line.Price != 80 || line.Quantity != 2 {
		t.Errorf("reloaded line differs: %+v", line)
	}
	if len(line.Colors) != 1 || line.Colors[0] != "Brown" {
		t.Errorf("reloaded colors differ: %v", line.Colors)
	}
}

func TestServiceMissingKeyIsEmptyCart(t *testing.T) {
	s := NewService(NewMemoryStorage())
	got := s.Get(context.Background(), "nobody")
	if len(got.Lines) != 0 {
		t.Errorf("expected empty cart for missing key, got %v", got.Lines)
	}
}

func TestServiceCorruptPayloadDegradesToEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()
	if err := storage.Save(ctx, "guest", []byte("{not json")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	s := NewService(storage)
	got := s.Get(ctx, "guest")
	if len(got.Lines) != 0 {
		t.Errorf("corrupt payload must degrade to empty cart, got %v", got.Lines)
	}

	// the cart stays usable after the corrupt read
	if _, err := s.Add(ctx, "guest", Line{ID: "p1", Colors: []string{"Red"}, Sizes: []string{"M"}, Quantity: 1}); err != nil {
		t.Fatalf("add after corrupt read failed: %v", err)
	}
	if got := s.Get(ctx, "guest"); len(got.Lines) != 1 {
		t.Errorf("expected 1 line after recovery, got %d", len(got.Lines))
	}
}

func TestServiceLoadFailureDoesNotDropStoredCart(t *testing.T) {
	storage := &flakyStorage{MemoryStorage: NewMemoryStorage()}
	s := NewService(storage)
	ctx := context.Background()

	if _, err := s.Add(ctx, "guest", Line{ID: "p1", Colors: []string{"Red"}, Sizes: []string{"M"}, Quantity: 3}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	storage.failLoads = 1
	if _, err := s.Add(ctx, "guest", Line{ID: "p2", Colors: []string{"Blue"}, Sizes: []string{"L"}, Quantity: 1}); !errors.Is(err, errStorageDown) {
		t.Fatalf("add during outage: got %v, want the transport error surfaced", err)
	}

	got := s.Get(ctx, "guest")
	if len(got.Lines) != 1 || got.Lines[0].ID != "p1" || got.Lines[0].Quantity != 3 {
		t.Errorf("stored cart changed during outage: %v", got.Lines)
	}
}

func TestServiceMutationsSurfaceLoadFailure(t *testing.T) {
	storage := &flakyStorage{MemoryStorage: NewMemoryStorage()}
	s := NewService(storage)
	ctx := context.Background()

	if _, err := s.Add(ctx, "guest", Line{ID: "p1", Colors: []string{"Red"}, Sizes: []string{"M"}, Quantity: 2}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	storage.failLoads = 1
	if _, err := s.Decrement(ctx, "guest", "p1"); !errors.Is(err, errStorageDown) {
		t.Errorf("decrement during outage: got %v, want the transport error", err)
	}
	storage.failLoads = 1
	if _, err := s.Remove(ctx, "guest", "p1"); !errors.Is(err, errStorageDown) {
		t.Errorf("remove during outage: got %v, want the transport error", err)
	}

	if got := s.Get(ctx, "guest"); len(got.Lines) != 1 || got.Lines[0].Quantity != 2 {
		t.Errorf("failed mutations changed the stored cart: %v", got.Lines)
	}
}

func TestServiceSnapshotSurfacesLoadFailure(t *testing.T) {
	storage := &flakyStorage{MemoryStorage: NewMemoryStorage(), failLoads: 1}
	s := NewService(storage)

	if _, err := s.Snapshot(context.Background(), "guest"); !errors.Is(err, errStorageDown) {
		t.Errorf("got %v, want the transport error surfaced", err)
	}

	// a plain miss is still an empty cart, not an error
	c, err := s.Snapshot(context.Background(), "guest")
	if err != nil || len(c.Lines) != 0 {
		t.Errorf("missing key: got %v, %v, want empty cart and nil error", c.Lines, err)
	}
}

func TestServiceClearErasesMirror(t *testing.T) {
	storage := NewMemoryStorage()
	s := NewService(storage)
	ctx := context.Background()

	s.Add(ctx, "guest", Line{ID: "p1", Colors: []string{"Red"}, Sizes: []string{"M"}, Quantity: 1})
	if err := s.Clear(ctx, "guest"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := storage.Load(ctx, "guest"); err != ErrNotStored {
		t.Errorf("mirror still present after clear: %v", err)
	}

	// clearing again succeeds
	if err := s.Clear(ctx, "guest"); err != nil {
		t.Errorf("second clear failed: %v", err)
	}
}

func TestServiceKeysAreIndependent(t *testing.T) {
	s := NewService(NewMemoryStorage())
	ctx := context.Background()

	s.Add(ctx, "alice", Line{ID: "p1", Colors: []string{"Red"}, Sizes: []string{"M"}, Quantity: 1})
	s.Add(ctx, "bob", Line{ID: "p2", Colors: []string{"Blue"}, Sizes: []string{"L"}, Quantity: 4})

	if got := s.Get(ctx, "alice"); len(got.Lines) != 1 || got.Lines[0].ID != "p1" {
		t.Errorf("alice cart polluted: %v", got.Lines)
	}
	if err := s.Clear(ctx, "alice"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if got := s.Get(ctx, "bob"); len(got.Lines) != 1 || got.Lines[0].Quantity != 4 {
		t.Errorf("clearing alice touched bob: %v", got.Lines)
	}
}
