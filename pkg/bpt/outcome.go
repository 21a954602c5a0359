package bpt

import "github.com/cockroachdb/errors"

// Outcome is the closed result algebra every mutating call resolves to.
// It is not a Go error: callers switch on it the way the original C code
// switches on BPT_NEXIST/BPT_PRED_SUCCESS/BPT_PRED_FAIL.
type Outcome int

const (
	// NExist reports that the key did not previously exist: on insert,
	// the entry was inserted; on delete, there was nothing to remove.
	NExist Outcome = iota
	// PredSuccess reports that the key already existed and the
	// caller's predicate authorized the replace/delete.
	PredSuccess
	// PredFail reports that the key already existed but the caller's
	// predicate refused the replace/delete; the tree is unchanged.
	PredFail
)

func (o Outcome) String() string {
	switch o {
	case NExist:
		return "NExist"
	case PredSuccess:
		return "PredSuccess"
	case PredFail:
		return "PredFail"
	default:
		return "Outcome(?)"
	}
}

// Predicate decides, for a key that already has an entry, whether new
// should replace (or delete) existing. It is consulted only on a match;
// it never sees a zero value standing in for "no entry".
type Predicate[V any] func(new, existing V) bool

// PredAlways always authorizes the replace/delete — the Go analogue of
// bpt_pred_1 ("always act").
func PredAlways[V any](new, existing V) bool { return true }

// PredNever never authorizes the replace/delete — the Go analogue of
// bpt_pred_0 ("never replace"), useful for insert-if-absent semantics.
func PredNever[V any](new, existing V) bool { return false }

// ErrInvalidOrder is returned by New when order < 3.
var ErrInvalidOrder = errors.New("bpt: order must be >= 3")

// ErrNodeBudgetExhausted is returned when a tree with a configured
// SetNodeBudget would need to allocate beyond that budget. It stands in
// for the C implementation's malloc failure path.
var ErrNodeBudgetExhausted = errors.New("bpt: node budget exhausted")

// ErrStackOverflow is returned when the traversal journal would need to
// grow past a configured maximum capacity. The journal only ever holds
// one frame per tree level, so this should not trip in ordinary use; it
// exists because the journal's growth is a bounded contract, not an
// unbounded one.
var ErrStackOverflow = errors.New("bpt: traversal stack exceeded its bound")
