package index

import (
	"fmt"
	"sync"
	"testing"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := New(Config{Order: 4}, NewMetrics())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return idx
}

func TestPutGetDelete(t *testing.T) {
	idx := newTestIndex(t)

	if existed, err := idx.Put([]byte("a"), []byte("1")); err != nil || existed {
		t.Fatalf("Put(a) = %v,%v want false,nil", existed, err)
	}
	v, ok := idx.Get([]byte("a"))
	if !ok || string(v) != "1" {
		t.Fatalf("Get(a) = %q,%v want 1,true", v, ok)
	}

	if existed, err := idx.Put([]byte("a"), []byte("2")); err != nil || !existed {
		t.Fatalf("Put(a) overwrite = %v,%v want true,nil", existed, err)
	}
	v, _ = idx.Get([]byte("a"))
	if string(v) != "2" {
		t.Fatalf("Get(a) after overwrite = %q want 2", v)
	}

	if existed, err := idx.Delete([]byte("a")); err != nil || !existed {
		t.Fatalf("Delete(a) = %v,%v want true,nil", existed, err)
	}
	if _, ok := idx.Get([]byte("a")); ok {
		t.Fatalf("Get(a) after delete reported found")
	}
	if existed, err := idx.Delete([]byte("a")); err != nil || existed {
		t.Fatalf("Delete(a) again = %v,%v want false,nil", existed, err)
	}
}

func TestRangeAscending(t *testing.T) {
	idx := newTestIndex(t)
	want := []string{"a", "b", "c", "d", "e"}
	for _, k := range want {
		if _, err := idx.Put([]byte(k), []byte(k)); err != nil {
			t.Fatalf("Put(%s): %v", k, err)
		}
	}

	var got []string
	idx.Range(func(key, value []byte) bool {
		got = append(got, string(key))
		return true
	})
	if len(got) != len(want) {
		t.Fatalf("Range visited %d keys, want %d", len(got), len(want))
	}
	for i, k := range want {
		if got[i] != k {
			t.Fatalf("Range[%d] = %q want %q", i, got[i], k)
		}
	}
}

func TestRangeEarlyStop(t *testing.T) {
	idx := newTestIndex(t)
	for _, k := range []string{"a", "b", "c"} {
		idx.Put([]byte(k), []byte(k))
	}
	count := 0
	idx.Range(func(key, value []byte) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("Range visited %d entries, want 2", count)
	}
}

func TestConcurrentPutGet(t *testing.T) {
	idx := newTestIndex(t)
	var wg sync.WaitGroup
	const writers = 8
	const perWriter = 50

	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				key := []byte(fmt.Sprintf("w%d-%d", w, i))
				if _, err := idx.Put(key, key); err != nil {
					t.Errorf("Put(%s): %v", key, err)
				}
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < writers; w++ {
		for i := 0; i < perWriter; i++ {
			key := []byte(fmt.Sprintf("w%d-%d", w, i))
			v, ok := idx.Get(key)
			if !ok || string(v) != string(key) {
				t.Fatalf("Get(%s) = %q,%v want %s,true", key, v, ok, key)
			}
		}
	}
}

func TestNodeBudgetPropagation(t *testing.T) {
	idx, err := New(Config{Order: 3, NodeBudget: 1}, NewMetrics())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 50; i++ {
		key := []byte(fmt.Sprintf("%03d", i))
		if _, err := idx.Put(key, key); err != nil {
			return
		}
	}
	t.Fatalf("expected node budget exhaustion before 50 inserts")
}
