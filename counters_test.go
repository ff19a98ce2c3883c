//
// counters_test.go
// Distributed under terms of the MIT license.
//

package ember

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestHitCounter_Count(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	defer mr.Close()

	hc := NewHitCounter(mr.Addr())
	defer hc.Close()

	handle := hc.Count(Get, "/a/:id")
	ctx := &Context{}
	for i := 0; i < 3; i++ {
		if _, err := callHandle(handle, ctx); err != nil {
			t.Fatalf("unexpected error incrementing: %v", err)
		}
	}

	n, err := hc.Hits(Get, "/a/:id")
	if err != nil {
		t.Fatalf("Hits: %v", err)
	}
	if n != 3 {
		t.Fatalf("Hits = %d, want 3", n)
	}
}

func TestHitCounter_UnhitRouteIsZero(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	defer mr.Close()

	hc := NewHitCounter(mr.Addr())
	defer hc.Close()

	n, err := hc.Hits(Get, "/never/touched")
	if err != nil {
		t.Fatalf("Hits: %v", err)
	}
	if n != 0 {
		t.Fatalf("Hits = %d, want 0", n)
	}
}

func TestCounterKey_CamelSegmentsToSnake(t *testing.T) {
	key := counterKey(Get, "/userAccounts/:userID")
	if want := "ember:hits:get:user_accounts:user_id"; key != want {
		t.Fatalf("counterKey = %q, want %q", key, want)
	}
}

func callHandle(h Handle, ctx *Context) (Flow, error) {
	return h.fn(ctx)
}
