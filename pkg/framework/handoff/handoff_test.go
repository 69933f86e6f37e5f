package handoff

import (
	"sync"
	"testing"
)

func TestSlotEmpty(t *testing.T) {
	var s Slot[int]
	if got := s.Take(); got != nil {
		t.Errorf("Take() on empty slot = %v, want nil", got)
	}
	if got := s.Peek(); got != nil {
		t.Errorf("Peek() on empty slot = %v, want nil", got)
	}
}

func TestSlotPublishTake(t *testing.T) {
	var s Slot[int]
	v := 42
	s.Publish(&v)

	if got := s.Peek(); got == nil || *got != 42 {
		t.Errorf("Peek() = %v, want 42", got)
	}

	got := s.Take()
	if got == nil || *got != 42 {
		t.Fatalf("Take() = %v, want 42", got)
	}
	if s.Take() != nil {
		t.Error("second Take() returned a value, want nil")
	}
}

func TestSlotCrossGoroutine(t *testing.T) {
	var s Slot[string]
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		v := "loaded"
		s.Publish(&v)
	}()
	wg.Wait()

	got := s.Take()
	if got == nil || *got != "loaded" {
		t.Errorf("Take() = %v, want \"loaded\"", got)
	}
}

func TestFlag(t *testing.T) {
	var f Flag
	if f.IsSet() {
		t.Fatal("new flag is set")
	}
	if !f.TrySet() {
		t.Fatal("first TrySet() = false, want true")
	}
	if f.TrySet() {
		t.Fatal("second TrySet() = true, want false")
	}
	if !f.IsSet() {
		t.Fatal("IsSet() = false after TrySet")
	}
	f.Clear()
	if f.IsSet() {
		t.Fatal("IsSet() = true after Clear")
	}
	if !f.TrySet() {
		t.Fatal("TrySet() after Clear = false, want true")
	}
}
