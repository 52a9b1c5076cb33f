package bstree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/btree"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestRandomizedProperty -count=1
//   - Fuzz test:
//     go test . -run '^$' -fuzz FuzzRandomizedProperty -fuzztime=10s

// multiset is a reference model: distinct values in a B-tree plus multiplicities.
type multiset struct {
	keys   *btree.BTree
	counts map[int]int
	size   int
}

func newMultiset() *multiset {
	return &multiset{keys: btree.New(8), counts: make(map[int]int)}
}

func (m *multiset) insert(v int) {
	m.keys.ReplaceOrInsert(btree.Int(v))
	m.counts[v]++
	m.size++
}

func (m *multiset) remove(v int) bool {
	if m.counts[v] == 0 {
		return false
	}
	m.counts[v]--
	m.size--
	if m.counts[v] == 0 {
		delete(m.counts, v)
		m.keys.Delete(btree.Int(v))
	}
	return true
}

func (m *multiset) sorted() []int {
	out := make([]int, 0, m.size)
	m.keys.Ascend(func(item btree.Item) bool {
		v := int(item.(btree.Int))
		for range m.counts[v] {
			out = append(out, v)
		}
		return true
	})
	return out
}

func assertTreeMatchesModel(t *testing.T, tree *Tree[int], model *multiset) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
	want := model.sorted()
	got := inOrderOf(t, tree)
	if !slices.Equal(got, want) {
		t.Fatalf("in-order mismatch:\n got=%v\nwant=%v", got, want)
	}
	if lazy := slices.Collect(tree.Values()); !slices.Equal(lazy, got) {
		t.Fatalf("lazy in-order differs from traversal:\n lazy=%v\ntrav=%v", lazy, got)
	}
	if tree.Len() != len(got) {
		t.Fatalf("count=%d, but traversal has %d items", tree.Len(), len(got))
	}
	if len(want) == 0 {
		return
	}
	min, err := tree.TreeMin()
	if err != nil || min != int(model.keys.Min().(btree.Int)) {
		t.Fatalf("TreeMin = %d, %v; want %v", min, err, model.keys.Min())
	}
	max, err := tree.TreeMax()
	if err != nil || max != int(model.keys.Max().(btree.Int)) {
		t.Fatalf("TreeMax = %d, %v; want %v", max, err, model.keys.Max())
	}
}

func runRandomizedOps(t *testing.T, seed int64, steps int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tree := NewOrdered[int]()
	model := newMultiset()
	for step := 0; step < steps; step++ {
		v := r.Intn(40)
		if r.Intn(3) == 0 {
			wasIn := model.counts[v] > 0
			if tree.Contains(v) != wasIn {
				t.Fatalf("seed=%d step=%d: Contains(%d) mismatch", seed, step, v)
			}
			if got := tree.Remove(v); got != model.remove(v) {
				t.Fatalf("seed=%d step=%d: Remove(%d)=%v mismatch", seed, step, v, got)
			}
			if model.counts[v] == 0 && tree.Contains(v) {
				t.Fatalf("seed=%d step=%d: %d still found after last removal", seed, step, v)
			}
		} else {
			if err := tree.Insert(v); err != nil {
				t.Fatalf("seed=%d step=%d: insert failed: %v", seed, step, err)
			}
			model.insert(v)
			if !tree.Contains(v) {
				t.Fatalf("seed=%d step=%d: %d not found after insert", seed, step, v)
			}
		}
		assertTreeMatchesModel(t, tree, model)
	}
}

func TestRandomizedProperty(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		runRandomizedOps(t, seed, 300)
	}
}

func FuzzRandomizedProperty(f *testing.F) {
	f.Add(int64(1), uint16(64))
	f.Add(int64(42), uint16(300))
	f.Fuzz(func(t *testing.T, seed int64, steps uint16) {
		runRandomizedOps(t, seed, int(steps%512))
	})
}
