package gate_test

import (
	"context"
	"testing"
	"time"

	"github.com/rentdesk/rentdesk/gate"
)

// countingResolver counts how many times Resolve reaches it.
type countingResolver struct {
	calls   int
	profile gate.Profile
}

func (r *countingResolver) Resolve(_ context.Context, _ string) (gate.Profile, error) {
	r.calls++
	return r.profile, nil
}

func TestCachedResolver_CachesWithinTTL(t *testing.T) {
	inner := &countingResolver{profile: gate.NewStaticProfile("admin", gate.PermissionSuperAdmin)}
	cached := gate.NewCachedResolver[string](inner, time.Minute)

	for i := 0; i < 5; i++ {
		p, err := cached.Resolve(context.Background(), "alice")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if p.Name() != "admin" {
			t.Fatalf("unexpected profile %q", p.Name())
		}
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
}

func TestCachedResolver_Invalidate(t *testing.T) {
	inner := &countingResolver{profile: gate.NewStaticProfile("admin", gate.PermissionSuperAdmin)}
	cached := gate.NewCachedResolver[string](inner, time.Minute)

	if _, err := cached.Resolve(context.Background(), "alice"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	cached.Invalidate("alice")
	if _, err := cached.Resolve(context.Background(), "alice"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("expected re-resolve after invalidate, got %d calls", inner.calls)
	}

	cached.InvalidateAll()
	if _, err := cached.Resolve(context.Background(), "alice"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if inner.calls != 3 {
		t.Errorf("expected re-resolve after InvalidateAll, got %d calls", inner.calls)
	}
}
