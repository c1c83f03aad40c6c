package queue

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/containers"
)

func TestQueueFIFO(t *testing.T) {
	q := New("a", "b")
	q.Push("c")
	if f, _ := q.Front(); f != "a" {
		t.Errorf("Front = %q, want a", f)
	}
	if b, _ := q.Back(); b != "c" {
		t.Errorf("Back = %q, want c", b)
	}
	var got []string
	for !q.Empty() {
		v, err := q.Pop()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, v)
	}
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("unexpected pop order %v", got)
	}
	if _, err := q.Pop(); !errors.Is(err, containers.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	if _, err := q.Back(); !errors.Is(err, containers.ErrEmpty) {
		t.Errorf("expected ErrEmpty for Back, got %v", err)
	}
	q.Push("d")
	if f, _ := q.Front(); f != "d" || q.Len() != 1 {
		t.Errorf("queue not reusable after draining")
	}
}

func TestQueueSwapClear(t *testing.T) {
	a, b := New(1, 2, 3), New(4)
	a.Swap(b)
	if got := slices.Collect(a.All()); !slices.Equal(got, []int{4}) {
		t.Errorf("unexpected content %v", got)
	}
	if b.Len() != 3 {
		t.Errorf("expected 3 elements, have %d", b.Len())
	}
	b.Clear()
	if !b.Empty() || b.Len() != 0 {
		t.Errorf("clear left elements behind")
	}
	if _, err := b.Front(); err == nil {
		t.Errorf("expected error for Front of cleared queue")
	}
}
