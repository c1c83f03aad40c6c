package treemap

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
)

const benchmarkItemCount = 1024

// keys are spread so the unbalanced tree stays shallow
func benchmarkKey(i int) int {
	return (i * 7919) % benchmarkItemCount
}

func setupTreeMap(b *testing.B) *Map[int, int] {
	b.Helper()
	m := New[int, int]()
	for i := range benchmarkItemCount {
		k := benchmarkKey(i)
		m.Insert(k, k)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[int, int] {
	b.Helper()
	m := haxmap.New[int, int]()
	for i := range benchmarkItemCount {
		k := benchmarkKey(i)
		m.Set(k, k)
	}
	return m
}

func setupHashMap(b *testing.B) *hashmap.Map[int, int] {
	b.Helper()
	m := hashmap.New[int, int]()
	for i := range benchmarkItemCount {
		k := benchmarkKey(i)
		m.Set(k, k)
	}
	return m
}

func BenchmarkReadTreeMap(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if v, err := m.At(i); err != nil || v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if v, ok := m.Get(i); !ok || v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkReadHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			if v, ok := m.Get(i); !ok || v != i {
				b.Fail()
			}
		}
	}
}

func BenchmarkWriteTreeMap(b *testing.B) {
	m := setupTreeMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			m.InsertOrAssign(i, i)
		}
	}
}

func BenchmarkWriteHaxMap(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			m.Set(i, i)
		}
	}
}

func BenchmarkWriteHashMap(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()
	for range b.N {
		for i := range benchmarkItemCount {
			m.Set(i, i)
		}
	}
}
