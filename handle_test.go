package vlcplayer

import "testing"

func TestHandleLifecycle(t *testing.T) {
	ctx := &PlaybackContext{}
	h, err := newHandle(ctx)
	if err != nil {
		t.Fatalf("newHandle failed: %v", err)
	}
	if h == 0 {
		t.Fatal("zero handle issued")
	}
	if h.Context() != ctx {
		t.Error("Context() did not return the registered context")
	}

	if got := h.delete(); got != ctx {
		t.Error("delete() did not return the registered context")
	}
	if h.Context() != nil {
		t.Error("Context() after delete is not nil")
	}
	if h.delete() != nil {
		t.Error("second delete returned a context")
	}
}

func TestHandleZero(t *testing.T) {
	var h Handle
	if h.Context() != nil {
		t.Error("zero handle has a context")
	}
	if h.delete() != nil {
		t.Error("zero handle deleted a context")
	}
}

func TestHandleUnique(t *testing.T) {
	seen := make(map[Handle]bool)
	for i := 0; i < 100; i++ {
		h, err := newHandle(&PlaybackContext{})
		if err != nil {
			t.Fatal(err)
		}
		if seen[h] {
			t.Fatalf("handle %d issued twice", h)
		}
		seen[h] = true
	}
	for h := range seen {
		h.delete()
	}
}
