// Package bpt implements an in-memory ordered key-value index backed by a
// B+ tree with a configurable branching factor.
//
// The tree gives logarithmic-time insertion, deletion, and point lookup
// over a totally ordered key domain supplied by the caller as a three-way
// comparator, plus ordered traversal across the leaf level via a
// doubly-linked chain of leaves. It is meant to be embedded inside a
// larger data system (see pkg/index for one such embedding) rather than
// used as a standalone database: there is no persistence, no locking, and
// no wire format here.
//
// The algorithm and its node layout are ported from a reference C
// implementation that favors redistributing entries between siblings
// before resorting to a split or a merge, which pushes most of the
// bookkeeping into updating separator keys in ancestor nodes. Because
// there are no parent pointers, every
// mutating call first performs a journaled descent from the root,
// recording a (node, child-slot) frame at each internal level; the
// rebalancing routines consume that journal to find the ancestors whose
// separator keys need adjusting.
package bpt
