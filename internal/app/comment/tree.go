package comment

import "sort"

const noParent = -1

// Node is one comment in a Forest. Links are indices into Forest.Nodes.
type Node struct {
	Comment *Comment
	Parent  int
	Replies []int
	Depth   int
}

// Forest is the threaded view of one thread's comments. Nodes are stored in
// an arena in display order (created_at, then insertion sequence, then id),
// so Roots and every Replies list are sorted by construction.
type Forest struct {
	Nodes []Node
	Roots []int
	// AuthorNames maps author ids to display names. Authors missing from it
	// are rendered without a name.
	AuthorNames map[string]string
	index       map[string]int
}

// Build links a flat comment list into a forest. Comments whose parent is
// missing from the list become roots. Parent cycles, which only corrupt data
// can produce, are cut so that every comment appears exactly once.
func Build(comments []*Comment) *Forest {
	sorted := make([]*Comment, 0, len(comments))
	for _, c := range comments {
		if c != nil {
			sorted = append(sorted, c)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return displayBefore(sorted[i], sorted[j])
	})

	f := &Forest{
		Nodes: make([]Node, 0, len(sorted)),
		Roots: []int{},
		index: make(map[string]int, len(sorted)),
	}
	for _, c := range sorted {
		if _, dup := f.index[c.ID]; dup {
			continue
		}
		f.index[c.ID] = len(f.Nodes)
		f.Nodes = append(f.Nodes, Node{Comment: c, Parent: noParent})
	}

	for i := range f.Nodes {
		parentID := f.Nodes[i].Comment.ParentID
		if parentID == nil {
			continue
		}
		p, ok := f.index[*parentID]
		if !ok || p == i {
			continue
		}
		f.Nodes[i].Parent = p
		f.Nodes[p].Replies = append(f.Nodes[p].Replies, i)
	}

	for i := range f.Nodes {
		if f.Nodes[i].Parent == noParent {
			f.Roots = append(f.Roots, i)
		}
	}

	f.settle()
	return f
}

func displayBefore(a, b *Comment) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	if a.Seq != b.Seq {
		return a.Seq < b.Seq
	}
	return a.ID < b.ID
}

// settle assigns depths breadth-first from the roots and promotes the
// earliest node of any unreachable (cyclic) component to a root.
func (f *Forest) settle() {
	visited := make([]bool, len(f.Nodes))
	queue := make([]int, 0, len(f.Nodes))

	spread := func(start int) {
		visited[start] = true
		f.Nodes[start].Depth = 0
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			n := &f.Nodes[queue[head]]
			for _, child := range n.Replies {
				if visited[child] {
					continue
				}
				visited[child] = true
				f.Nodes[child].Depth = n.Depth + 1
				queue = append(queue, child)
			}
		}
	}

	for _, root := range f.Roots {
		spread(root)
	}

	promoted := false
	for i := range f.Nodes {
		if visited[i] {
			continue
		}
		p := f.Nodes[i].Parent
		f.Nodes[p].Replies = removeIndex(f.Nodes[p].Replies, i)
		f.Nodes[i].Parent = noParent
		f.Roots = append(f.Roots, i)
		promoted = true
		spread(i)
	}
	if promoted {
		sort.Ints(f.Roots)
	}
}

func removeIndex(s []int, v int) []int {
	for k, x := range s {
		if x == v {
			return append(s[:k], s[k+1:]...)
		}
	}
	return s
}

func (f *Forest) Len() int {
	return len(f.Nodes)
}

func (f *Forest) Lookup(id string) (*Node, bool) {
	i, ok := f.index[id]
	if !ok {
		return nil, false
	}
	return &f.Nodes[i], true
}

// Subtree returns the ids of the comment and all of its descendants, the
// comment first. It returns nil when id is not in the forest.
func (f *Forest) Subtree(id string) []string {
	start, ok := f.index[id]
	if !ok {
		return nil
	}
	ids := []string{}
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ids = append(ids, f.Nodes[i].Comment.ID)
		stack = append(stack, f.Nodes[i].Replies...)
	}
	return ids
}

// Walk visits nodes depth-first in display order. Returning false from fn
// skips the node's replies.
func (f *Forest) Walk(fn func(i int, n *Node) bool) {
	stack := make([]int, 0, len(f.Roots))
	for k := len(f.Roots) - 1; k >= 0; k-- {
		stack = append(stack, f.Roots[k])
	}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &f.Nodes[i]
		if !fn(i, n) {
			continue
		}
		for k := len(n.Replies) - 1; k >= 0; k-- {
			stack = append(stack, n.Replies[k])
		}
	}
}

// Tree returns the nested form of the forest. viewerID only affects the
// CanModify flag and may be empty.
func (f *Forest) Tree(viewerID string) []ThreadNode {
	order := make([]int, 0, len(f.Nodes))
	f.Walk(func(i int, _ *Node) bool {
		order = append(order, i)
		return true
	})

	built := make([]ThreadNode, len(f.Nodes))
	for k := len(order) - 1; k >= 0; k-- {
		i := order[k]
		n := &f.Nodes[i]
		replies := make([]ThreadNode, 0, len(n.Replies))
		for _, child := range n.Replies {
			replies = append(replies, built[child])
		}
		built[i] = ThreadNode{
			Comment:    n.Comment,
			AuthorName: f.AuthorNames[n.Comment.AuthorID],
			Depth:      n.Depth,
			CanReply:   n.CanReply(),
			CanModify:  n.CanModify(viewerID),
			ReplyCount: len(n.Replies),
			Replies:    replies,
		}
	}

	roots := make([]ThreadNode, 0, len(f.Roots))
	for _, r := range f.Roots {
		roots = append(roots, built[r])
	}
	return roots
}
