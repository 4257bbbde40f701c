package selection

import (
	"testing"
	"time"
)

func TestFirstEmpty(t *testing.T) {
	s := NewSingle()
	if _, ok := s.First(); ok {
		t.Fatalf("expected no selection in a fresh model")
	}
}

func TestAddReplacesAndNotifies(t *testing.T) {
	s := NewSingle()
	notified := 0
	cancel := s.Subscribe(func() { notified++ })
	defer cancel()

	first := time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	s.Add(first)
	if got, ok := s.First(); !ok || !got.Equal(first) {
		t.Fatalf("expected first to be %v, got %v (%v)", first, got, ok)
	}
	s.Add(second)
	if got, _ := s.First(); !got.Equal(second) {
		t.Fatalf("expected add to replace, got %v", got)
	}
	if notified != 2 {
		t.Fatalf("expected 2 notifications, got %d", notified)
	}
}

func TestClearNotifies(t *testing.T) {
	s := NewSingle()
	notified := 0
	cancel := s.Subscribe(func() { notified++ })
	defer cancel()

	s.Add(time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC))
	s.Clear()
	if _, ok := s.First(); ok {
		t.Fatalf("expected selection cleared")
	}
	if notified != 2 {
		t.Fatalf("expected 2 notifications, got %d", notified)
	}
}

func TestCancelStopsNotifications(t *testing.T) {
	s := NewSingle()
	a, b := 0, 0
	cancelA := s.Subscribe(func() { a++ })
	cancelB := s.Subscribe(func() { b++ })
	defer cancelB()

	s.Add(time.Date(2021, time.May, 1, 0, 0, 0, 0, time.UTC))
	cancelA()
	cancelA() // idempotent
	s.Add(time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC))

	if a != 1 {
		t.Fatalf("expected cancelled subscriber to stop at 1, got %d", a)
	}
	if b != 2 {
		t.Fatalf("expected remaining subscriber at 2, got %d", b)
	}
}

func TestCallbackMayReadModel(t *testing.T) {
	s := NewSingle()
	var seen time.Time
	cancel := s.Subscribe(func() {
		if d, ok := s.First(); ok {
			seen = d
		}
	})
	defer cancel()

	want := time.Date(2030, time.January, 2, 0, 0, 0, 0, time.UTC)
	s.Add(want)
	if !seen.Equal(want) {
		t.Fatalf("expected callback to observe %v, got %v", want, seen)
	}
}
