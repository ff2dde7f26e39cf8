// Package thread assembles the flat comment rows of an article into
// two-level threads: top-level comments, each carrying its replies.
package thread

import (
	"github.com/mini-blog-api/internal/models"
)

const (
	topLevel      = -1 // parent value of a comment without parent_id
	missingParent = -2 // parent value when parent_id is not in the input
	noRoot        = -1 // root value of an orphan
)

type state uint8

const (
	unvisited state = iota
	visiting
	resolved
)

// node is the arena entry for one input row. Indices refer to positions in
// the input slice.
type node struct {
	parent  int
	root    int
	state   state
	replies []int
}

// Build groups comments (ordered oldest first) into threads.
//
// A comment without a parent starts a thread. A reply is attached to the
// thread of its top-level ancestor, so replies to replies are flattened into
// that thread's reply list. Order within the output follows the input order.
// A comment whose ancestor chain reaches an id that is not in the input is an
// orphan and is left out, together with any replies beneath it.
func Build(comments []models.Comment) []models.CommentThread {
	index := make(map[int64]int, len(comments))
	for i := range comments {
		index[comments[i].ID] = i
	}

	nodes := make([]node, len(comments))
	for i := range comments {
		nodes[i].parent = topLevel
		if pid := comments[i].ParentID; pid != nil {
			if p, ok := index[*pid]; ok {
				nodes[i].parent = p
			} else {
				nodes[i].parent = missingParent
			}
		}
	}

	roots := make([]int, 0, len(comments))
	for i := range nodes {
		r := resolveRoot(nodes, i)
		switch {
		case r == noRoot:
			continue
		case r == i:
			roots = append(roots, i)
		default:
			nodes[r].replies = append(nodes[r].replies, i)
		}
	}

	threads := make([]models.CommentThread, 0, len(roots))
	for _, r := range roots {
		t := models.CommentThread{
			Comment: comments[r],
			Replies: make([]models.Comment, 0, len(nodes[r].replies)),
		}
		for _, c := range nodes[r].replies {
			t.Replies = append(t.Replies, comments[c])
		}
		threads = append(threads, t)
	}
	return threads
}

// resolveRoot returns the index of the top-level ancestor of i, or noRoot.
// Every node on the walked path is memoized, so the whole pass is linear.
// A parent cycle in malformed data resolves to noRoot.
func resolveRoot(nodes []node, i int) int {
	var path []int
	root := noRoot
	for cur := i; ; {
		n := &nodes[cur]
		if n.state == resolved {
			root = n.root
			break
		}
		if n.state == visiting {
			break
		}
		n.state = visiting
		path = append(path, cur)

		if n.parent == topLevel {
			root = cur
			break
		}
		if n.parent == missingParent {
			break
		}
		cur = n.parent
	}

	for _, p := range path {
		nodes[p].root = root
		nodes[p].state = resolved
	}
	return root
}
