package treemap

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/ostree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestInsertOrAssign(t *testing.T) {
	m := New[int, string]()
	if _, inserted := m.InsertOrAssign(1, "a"); !inserted {
		t.Errorf("expected first InsertOrAssign to insert")
	}
	if _, inserted := m.InsertOrAssign(1, "b"); inserted {
		t.Errorf("expected second InsertOrAssign to assign")
	}
	if v, err := m.At(1); err != nil || v != "b" {
		t.Errorf("expected At(1) = b, have %q (%v)", v, err)
	}
	if m.Len() != 1 {
		t.Errorf("expected map of length 1, have %d", m.Len())
	}
}

func TestInsertKeepsValue(t *testing.T) {
	m := New(Pair[string, int]{"x", 1})
	it, inserted := m.Insert("x", 2)
	if inserted {
		t.Fatalf("expected duplicate key to be rejected")
	}
	if p, _ := it.Value(); p.Value != 1 {
		t.Errorf("rejected insert must not change the value, have %d", p.Value)
	}
	if err := m.Check(); err != nil {
		t.Fatal(err.Error())
	}
}

func TestAtMissingKey(t *testing.T) {
	m := New(Pair[int, int]{1, 10})
	_, err := m.At(2)
	if !errors.Is(err, containers.ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange for missing key, got %v", err)
	}
}

func TestRefInsertsZero(t *testing.T) {
	m := New[string, int]()
	*m.Ref("a") += 3
	*m.Ref("a") += 4
	*m.Ref("b")++
	if v, _ := m.At("a"); v != 7 {
		t.Errorf("expected a = 7, have %d", v)
	}
	if m.Len() != 2 || m.Count("b") != 1 || m.Count("c") != 0 {
		t.Errorf("unexpected content %v", slices.Collect(m.Keys()))
	}
}

func TestOrderedIteration(t *testing.T) {
	m := New(Pair[int, string]{3, "c"}, Pair[int, string]{1, "a"}, Pair[int, string]{2, "b"})
	var keys []int
	var vals []string
	for k, v := range m.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	if !slices.Equal(keys, []int{1, 2, 3}) || !slices.Equal(vals, []string{"a", "b", "c"}) {
		t.Errorf("unexpected iteration order %v %v", keys, vals)
	}
	if !slices.Equal(slices.Collect(m.Values()), vals) {
		t.Errorf("Values does not follow key order")
	}
	if p, _ := m.Nth(1).Value(); p.Key != 2 {
		t.Errorf("expected key 2 at rank 1, have %d", p.Key)
	}
	if it := m.Find(3); it.Index() != 2 {
		t.Errorf("expected key 3 at rank 2, have %d", it.Index())
	}
	if p, _ := m.UpperBound(1).Value(); p.Key != 2 {
		t.Errorf("UpperBound(1) must be key 2, have %d", p.Key)
	}
	if !m.LowerBound(4).Equal(m.End()) {
		t.Errorf("LowerBound(4) must be end")
	}
}

func TestEraseAndMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()

	m := New(Pair[int, string]{1, "a"}, Pair[int, string]{2, "b"}, Pair[int, string]{3, "c"})
	if !m.Erase(2) || m.Erase(2) {
		t.Errorf("expected exactly one successful erase of key 2")
	}
	if !m.EraseAt(m.Begin()) || m.Contains(1) {
		t.Errorf("expected EraseAt(Begin) to remove key 1")
	}
	other := New(Pair[int, string]{3, "x"}, Pair[int, string]{4, "d"})
	m.Merge(other)
	if v, _ := m.At(3); v != "c" {
		t.Errorf("merge must not overwrite existing keys, have %q", v)
	}
	if !slices.Equal(slices.Collect(m.Keys()), []int{3, 4}) {
		t.Errorf("unexpected keys after merge %v", slices.Collect(m.Keys()))
	}
	if other.Len() != 1 || !other.Contains(3) {
		t.Errorf("expected rejected key 3 to stay in source")
	}
	if err := other.Check(); err != nil {
		t.Fatal(err.Error())
	}
}

func TestEraseInnerKeepsRanks(t *testing.T) {
	m := New[int, string]()
	for _, k := range []int{50, 30, 70, 20, 40} {
		m.Insert(k, strconv.Itoa(k))
	}
	if !m.Erase(30) {
		t.Fatalf("expected key 30 to be erased")
	}
	if err := m.Check(); err != nil {
		t.Fatal(err.Error())
	}
	if m.Len() != 4 || !slices.Equal(slices.Collect(m.Keys()), []int{20, 40, 50, 70}) {
		t.Errorf("unexpected keys %v (length %d)", slices.Collect(m.Keys()), m.Len())
	}
	if p, _ := m.Nth(2).Value(); p.Key != 50 || p.Value != "50" {
		t.Errorf("expected entry 50 at rank 2, have %v", p)
	}
	// merge cuts key 3 from the source together with the rejected key 2 below it
	dst := New(Pair[int, string]{5, "e"}, Pair[int, string]{2, "b"})
	src := New(Pair[int, string]{5, "x"}, Pair[int, string]{3, "c"},
		Pair[int, string]{2, "x"}, Pair[int, string]{4, "d"})
	dst.Merge(src)
	if err := src.Check(); err != nil {
		t.Fatal(err.Error())
	}
	if src.Len() != 2 || !slices.Equal(slices.Collect(src.Keys()), []int{2, 5}) {
		t.Errorf("expected keys 2 and 5 to stay in source, have %v", slices.Collect(src.Keys()))
	}
	if dst.Len() != 4 || dst.Check() != nil {
		t.Errorf("unexpected merge target with %d entries", dst.Len())
	}
}

func TestNilOperandIsNoOp(t *testing.T) {
	m := New(Pair[int, int]{1, 1}, Pair[int, int]{2, 4})
	m.Swap(nil)
	m.Merge(nil)
	if m.Len() != 2 || !m.Contains(1) || !m.Contains(2) {
		t.Errorf("nil operand changed the map")
	}
}

func TestCloneSwapClear(t *testing.T) {
	m := New(Pair[int, int]{1, 1})
	c := m.Clone()
	*c.Ref(1) = 100
	if v, _ := m.At(1); v != 1 {
		t.Errorf("clone must not share entries with its source")
	}
	empty := New[int, int]()
	m.Swap(empty)
	if !m.Empty() || empty.Len() != 1 {
		t.Errorf("swap did not exchange entries")
	}
	empty.Clear()
	if !empty.Empty() || empty.MaxSize() <= 0 {
		t.Errorf("expected map to be empty after Clear")
	}
}

func TestCaseInsensitiveKeys(t *testing.T) {
	m, err := NewFunc[string, int](ostree.By(strings.ToLower, ostree.Natural[string]))
	if err != nil {
		t.Fatal(err.Error())
	}
	m.Insert("Go", 1)
	if _, inserted := m.Insert("GO", 2); inserted {
		t.Errorf("expected keys to compare case-insensitively")
	}
	if _, err := NewFunc[string, int](nil); !errors.Is(err, ostree.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil comparator, got %v", err)
	}
}
