package gui

import "testing"

func TestFrameStoreGetCreatesDefault(t *testing.T) {
	store := NewFrameStore[int]()

	v := store.Get(1, 42)
	if *v != 42 {
		t.Errorf("Get default = %d, want 42", *v)
	}

	// Mutations through the pointer persist.
	*v = 7
	if got := store.Get(1, 42); *got != 7 {
		t.Errorf("Get after mutation = %d, want 7", *got)
	}
}

func TestFrameStoreGetIfExists(t *testing.T) {
	store := NewFrameStore[string]()

	if store.GetIfExists(5) != nil {
		t.Error("GetIfExists on empty store returned non-nil")
	}

	store.Set(5, "hello")
	if got := store.GetIfExists(5); got == nil || *got != "hello" {
		t.Errorf("GetIfExists = %v, want hello", got)
	}
}

func TestFrameStoreCleanup(t *testing.T) {
	store := NewFrameStore[int]()

	store.Get(1, 0)
	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}

	// The entry survives the frame after its last access, then goes.
	NextFrame()
	if store.Len() != 1 {
		t.Errorf("entry removed one frame too early")
	}
	NextFrame()
	if store.Len() != 0 {
		t.Errorf("stale entry survived, Len = %d", store.Len())
	}
}

func TestFrameStoreAccessKeepsAlive(t *testing.T) {
	store := NewFrameStore[int]()

	store.Get(1, 0)
	for i := 0; i < 5; i++ {
		NextFrame()
		store.Get(1, 0)
	}
	if store.Len() != 1 {
		t.Errorf("accessed entry was cleaned up, Len = %d", store.Len())
	}
}

func TestFrameStoreDeleteAndClear(t *testing.T) {
	store := NewFrameStore[int]()

	store.Set(1, 10)
	store.Set(2, 20)
	store.Delete(1)
	if store.GetIfExists(1) != nil {
		t.Error("deleted entry still present")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}

	store.Clear()
	if store.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", store.Len())
	}
}
