// Package index wraps pkg/bpt.Tree with the concurrency control the core
// tree explicitly excludes, the "larger data system" spec.md §1 says the
// core is meant to be embedded inside.
package index

import (
	"bytes"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/gobpt/pkg/bpt"
)

// Config controls the underlying tree's shape and resource limits.
type Config struct {
	Order      int
	NodeBudget int
}

// Index latch-couples access to a single *bpt.Tree behind one
// tree-level RWMutex, the collapsed analogue of bptree.go's per-node
// RWMutex scheme: the core has no parent pointers to hand-over-hand
// lock against, so there is exactly one lock to take.
type Index struct {
	mu      sync.RWMutex
	tree    *bpt.Tree[[]byte, []byte]
	metrics *Metrics
}

// New constructs an Index over a fresh B+ tree ordered by bytes.Compare.
func New(cfg Config, metrics *Metrics) (*Index, error) {
	tree, err := bpt.New[[]byte, []byte](cfg.Order, bytes.Compare)
	if err != nil {
		return nil, errors.Wrap(err, "index: construct tree")
	}
	if cfg.NodeBudget > 0 {
		tree.SetNodeBudget(cfg.NodeBudget)
	}
	return &Index{tree: tree, metrics: metrics}, nil
}

// Get reports the value stored for key, if any.
func (idx *Index) Get(key []byte) ([]byte, bool) {
	start := time.Now()
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	v, ok := idx.tree.Search(key)
	idx.record("get", boolOutcome(ok), start)
	return v, ok
}

// Put stores value under key unconditionally, overwriting any existing
// entry, and reports whether key already existed.
func (idx *Index) Put(key, value []byte) (existed bool, err error) {
	start := time.Now()
	idx.mu.Lock()
	defer idx.mu.Unlock()
	outcome, err := idx.tree.Insert(key, value, bpt.PredAlways[[]byte])
	if err != nil {
		idx.record("put", "error", start)
		if errors.Is(err, bpt.ErrNodeBudgetExhausted) && idx.metrics != nil {
			idx.metrics.budgetExhaust.Inc()
		}
		return false, errors.Wrap(err, "index: put")
	}
	idx.record("put", outcome.String(), start)
	idx.updateGauges()
	return outcome == bpt.PredSuccess, nil
}

// Delete removes key, reporting whether it was present.
func (idx *Index) Delete(key []byte) (existed bool, err error) {
	start := time.Now()
	idx.mu.Lock()
	defer idx.mu.Unlock()
	outcome, err := idx.tree.Delete(key, nil, bpt.PredAlways[[]byte])
	if err != nil {
		idx.record("delete", "error", start)
		return false, errors.Wrap(err, "index: delete")
	}
	idx.record("delete", outcome.String(), start)
	idx.updateGauges()
	return outcome == bpt.PredSuccess, nil
}

// Range visits every key/value pair in ascending order via the leaf
// chain, stopping early if visit returns false. This is the
// unconditional full-chain traversal spec.md §1 allows, not a
// seek-to-key range query (Non-goal).
func (idx *Index) Range(visit func(key, value []byte) bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	it := idx.tree.Min()
	for {
		k, v, ok := it.Next()
		if !ok || !visit(k, v) {
			return
		}
	}
}

// Height reports the tree's current height under a read lock.
func (idx *Index) Height() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.tree.Height()
}

// Metrics returns the Metrics set this Index was constructed with, if
// any, so callers can serve it at an HTTP /metrics endpoint.
func (idx *Index) Metrics() *Metrics {
	return idx.metrics
}

func (idx *Index) updateGauges() {
	if idx.metrics == nil {
		return
	}
	idx.metrics.treeHeight.Set(float64(idx.tree.Height()))
}

func (idx *Index) record(op, outcome string, start time.Time) {
	if idx.metrics == nil {
		return
	}
	idx.metrics.observe(op, outcome, time.Since(start).Seconds())
}

func boolOutcome(ok bool) string {
	if ok {
		return "hit"
	}
	return "miss"
}
