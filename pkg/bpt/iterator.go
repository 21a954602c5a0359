package bpt

// Iterator walks the leaf level of a Tree in ascending key order via
// the doubly-linked leaf chain, the same traversal
// original_source/test/read_d3.c performs by following nxt pointers.
// It is not a range-query mechanism (an explicit Non-goal): there is no
// seek-to-key entry point, only unconditional start-to-end iteration
// from Min.
type Iterator[K any, V any] struct {
	t      *Tree[K, V]
	leaf   handle
	offset int
}

// Min returns an iterator positioned at the tree's smallest entry.
// Calling Next immediately on the result of Min on an empty tree
// reports ok == false.
func (t *Tree[K, V]) Min() *Iterator[K, V] {
	h := t.root
	height := t.height
	for height > 0 {
		h = t.n(h).kids[0]
		height--
	}
	return &Iterator[K, V]{t: t, leaf: h, offset: 0}
}

// Next reports the next key/value pair in ascending order, advancing
// the iterator. ok is false once the leaf chain is exhausted.
func (it *Iterator[K, V]) Next() (key K, value V, ok bool) {
	for it.leaf != nilHandle {
		nd := it.t.n(it.leaf)
		if it.offset < len(nd.keys) {
			key, value = nd.keys[it.offset], nd.vals[it.offset]
			it.offset++
			return key, value, true
		}
		it.leaf = nd.nxt
		it.offset = 0
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}
