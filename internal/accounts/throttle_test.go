package accounts

import (
	"testing"
	"time"
)

func TestThrottle_BlocksAfterLimit(t *testing.T) {
	th := NewThrottle(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !th.Allow("ana@ejemplo.cl") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if th.Allow("ana@ejemplo.cl") {
		t.Error("fourth attempt within the window should be blocked")
	}
	// Other identities are unaffected.
	if !th.Allow("otro@ejemplo.cl") {
		t.Error("throttle must be per identity")
	}
}

func TestThrottle_WindowExpiry(t *testing.T) {
	th := NewThrottle(1, time.Minute)
	current := time.Unix(1_700_000_000, 0)
	th.now = func() time.Time { return current }

	if !th.Allow("ana@ejemplo.cl") {
		t.Fatal("first attempt should pass")
	}
	if th.Allow("ana@ejemplo.cl") {
		t.Fatal("second attempt should be blocked")
	}

	current = current.Add(2 * time.Minute)
	if !th.Allow("ana@ejemplo.cl") {
		t.Error("attempt after the window expired should pass")
	}
}

func TestThrottle_Reset(t *testing.T) {
	th := NewThrottle(1, time.Minute)

	th.Allow("ana@ejemplo.cl")
	th.Reset("ana@ejemplo.cl")
	if !th.Allow("ana@ejemplo.cl") {
		t.Error("reset should clear the attempt history")
	}
}
