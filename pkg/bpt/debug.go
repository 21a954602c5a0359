package bpt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/golang/snappy"
	"github.com/segmentio/ksuid"
)

// Dump renders the tree level by level as text, one line per level,
// each node shown as its bracketed keys. This is a debugging
// collaborator only, grounded on original_source/test/print_bpt.c's
// level-order walk, and is never consulted by Search/Insert/Delete. The
// leading ksuid tag gives operators a stable handle to grep for a
// specific dump in aggregated logs.
func (t *Tree[K, V]) Dump(format func(K) string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "bpt dump %s order=%d height=%d\n", ksuid.New().String(), t.order, t.height)

	level := []handle{t.root}
	depth := t.height
	for {
		var line strings.Builder
		var next []handle
		for _, h := range level {
			nd := t.n(h)
			line.WriteString("[")
			for i, k := range nd.keys {
				if i > 0 {
					line.WriteString(",")
				}
				line.WriteString(format(k))
			}
			line.WriteString("]")
			if depth > 0 {
				next = append(next, nd.kids...)
			}
		}
		fmt.Fprintf(&b, "depth=%d %s\n", t.height-depth, line.String())
		if depth == 0 {
			break
		}
		level, depth = next, depth-1
	}
	return b.String()
}

// DumpCompressed snappy-compresses Dump's output, for shipping a tree
// snapshot out of process for offline inspection. This is strictly a
// diagnostic transport shortcut, not durable persistence: nothing here
// ever touches a file, keeping the Non-goal on durable storage intact.
func (t *Tree[K, V]) DumpCompressed(format func(K) string) []byte {
	return snappy.Encode(nil, []byte(t.Dump(format)))
}

// DecompressDump reverses DumpCompressed, for tooling that received a
// compressed snapshot over the wire.
func DecompressDump(compressed []byte) (string, error) {
	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(raw, "\n")) + "\n", nil
}
