package treeset

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/containers/ostree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertExisting(t *testing.T) {
	s := New(3, 1, 2)
	it, inserted := s.Insert(2)
	if inserted {
		t.Errorf("expected insert of present element to report false")
	}
	if s.Len() != 3 {
		t.Errorf("expected length to stay 3, have %d", s.Len())
	}
	if it.Index() != 1 {
		t.Errorf("expected iterator at rank 1, have %d", it.Index())
	}
	if err := s.Check(); err != nil {
		t.Fatal(err.Error())
	}
}

func TestSetOperations(t *testing.T) {
	s := New("pear", "apple", "fig")
	if !slices.Equal(s.Values(), []string{"apple", "fig", "pear"}) {
		t.Errorf("unexpected order %v", s.Values())
	}
	if !slices.Equal(slices.Collect(s.Backward()), []string{"pear", "fig", "apple"}) {
		t.Errorf("unexpected backward order")
	}
	if v, _ := s.Nth(2).Value(); v != "pear" {
		t.Errorf("expected pear at rank 2, have %q", v)
	}
	if !s.Erase("fig") || s.Contains("fig") || s.Count("fig") != 0 {
		t.Errorf("expected fig to be erased")
	}
	if !s.EraseAt(s.Find("apple")) || s.Len() != 1 {
		t.Errorf("expected apple to be erased through its iterator")
	}
	if v, _ := s.LowerBound("b").Value(); v != "pear" {
		t.Errorf("LowerBound(b) = %q, want pear", v)
	}
	if !s.UpperBound("pear").Equal(s.End()) {
		t.Errorf("UpperBound of the last element must be end")
	}
}

func TestSetMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	a, b := New(1, 2), New(2, 3)
	a.Merge(b)
	if !slices.Equal(a.Values(), []int{1, 2, 3}) || !slices.Equal(b.Values(), []int{2}) {
		t.Errorf("unexpected merge result %v / %v", a.Values(), b.Values())
	}
	if err := b.Check(); err != nil || b.Len() != 1 {
		t.Errorf("source of merge is inconsistent (length %d): %v", b.Len(), err)
	}
	c := a.Clone()
	c.Clear()
	if a.Len() != 3 || !c.Empty() {
		t.Errorf("clear of a clone must not affect its source")
	}
	a.Swap(c)
	if !a.Empty() || c.Len() != 3 {
		t.Errorf("swap did not exchange elements")
	}
}

func TestMergeSourceWithSubtree(t *testing.T) {
	a := New(5, 2)
	b := New(5, 3, 2, 4)
	a.Merge(b)
	if !slices.Equal(a.Values(), []int{2, 3, 4, 5}) {
		t.Errorf("unexpected merge target %v", a.Values())
	}
	// 3 is cut from b together with the rejected 2 below it
	if err := b.Check(); err != nil {
		t.Fatal(err.Error())
	}
	if b.Len() != 2 || !slices.Equal(b.Values(), []int{2, 5}) {
		t.Errorf("expected 2 and 5 to stay in source, have %v (length %d)", b.Values(), b.Len())
	}
	if v, _ := b.Nth(1).Value(); v != 5 {
		t.Errorf("expected 5 at rank 1 of source, have %d", v)
	}
}

func TestEraseInnerElement(t *testing.T) {
	s := New(50, 30, 70, 20, 40, 60, 80)
	if !s.Erase(30) {
		t.Fatalf("expected 30 to be erased")
	}
	if err := s.Check(); err != nil {
		t.Fatal(err.Error())
	}
	if s.Len() != 6 {
		t.Errorf("expected length 6, have %d", s.Len())
	}
	if !s.EraseAt(s.Find(70)) {
		t.Fatalf("expected 70 to be erased through its iterator")
	}
	if err := s.Check(); err != nil {
		t.Fatal(err.Error())
	}
	if s.Len() != 5 || !slices.Equal(s.Values(), []int{20, 40, 50, 60, 80}) {
		t.Errorf("unexpected elements %v (length %d)", s.Values(), s.Len())
	}
	if v, _ := s.Nth(4).Value(); v != 80 {
		t.Errorf("expected 80 at rank 4, have %d", v)
	}
}

func TestNilOperandIsNoOp(t *testing.T) {
	s := New(1, 2, 3)
	s.Swap(nil)
	s.Merge(nil)
	if s.Len() != 3 || !slices.Equal(s.Values(), []int{1, 2, 3}) {
		t.Errorf("nil operand changed the set to %v", s.Values())
	}
}

func TestSetWithComparator(t *testing.T) {
	s, err := NewFunc(ostree.Reverse(ostree.Natural[int]), 1, 3, 2, 3)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !slices.Equal(slices.Collect(s.All()), []int{3, 2, 1}) {
		t.Errorf("unexpected order %v", s.Values())
	}
	if _, err := NewFunc[int](nil); !errors.Is(err, ostree.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
