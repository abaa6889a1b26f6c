package comment

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func at(id, parent string, minute int) *Comment {
	c := &Comment{
		ID:        id,
		ThreadID:  "task:1",
		AuthorID:  "u1",
		Content:   "comment " + id,
		State:     StateActive,
		Version:   1,
		CreatedAt: epoch.Add(time.Duration(minute) * time.Minute),
	}
	if parent != "" {
		c.ParentID = &parent
	}
	return c
}

func preorder(f *Forest) []string {
	var ids []string
	f.Walk(func(_ int, n *Node) bool {
		ids = append(ids, fmt.Sprintf("%s@%d", n.Comment.ID, n.Depth))
		return true
	})
	return ids
}

func TestBuildOrdersRootsAndRepliesByCreation(t *testing.T) {
	f := Build([]*Comment{
		at("c", "", 3),
		at("a2", "a", 5),
		at("a", "", 1),
		at("a1", "a", 2),
		at("b", "", 2),
	})

	require.Equal(t, 5, f.Len())
	assert.Equal(t, []string{"a@0", "a1@1", "a2@1", "b@0", "c@0"}, preorder(f))
}

func TestBuildIsIndependentOfInputOrder(t *testing.T) {
	comments := []*Comment{
		at("r1", "", 0),
		at("r2", "", 0),
		at("x", "r1", 1),
		at("y", "r1", 1),
		at("z", "x", 2),
		at("w", "r2", 4),
	}
	comments[2].Seq = 7
	comments[3].Seq = 3

	want := preorder(Build(comments))
	assert.Equal(t, []string{"r1@0", "y@1", "x@1", "z@2", "r2@0", "w@1"}, want)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := append([]*Comment(nil), comments...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, preorder(Build(shuffled)))
	}
}

func TestBuildPromotesOrphansToRoots(t *testing.T) {
	f := Build([]*Comment{
		at("a", "", 0),
		at("orphan", "gone", 1),
		at("child", "orphan", 2),
	})

	assert.Equal(t, []string{"a@0", "orphan@0", "child@1"}, preorder(f))
	assert.Len(t, f.Roots, 2)
}

func TestBuildTreatsSelfParentAsRoot(t *testing.T) {
	f := Build([]*Comment{at("a", "a", 0)})

	require.Len(t, f.Roots, 1)
	n, ok := f.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, noParent, n.Parent)
	assert.Empty(t, n.Replies)
}

func TestBuildBreaksCycles(t *testing.T) {
	f := Build([]*Comment{
		at("root", "", 0),
		at("b", "a", 2),
		at("a", "c", 1),
		at("c", "b", 3),
	})

	require.Equal(t, 4, f.Len())
	assert.Equal(t, []string{"root@0", "a@0", "b@1", "c@2"}, preorder(f))
}

func TestBuildKeepsFirstDuplicate(t *testing.T) {
	early := at("dup", "", 0)
	late := at("dup", "", 5)
	late.Content = "late copy"

	f := Build([]*Comment{late, early, nil})

	require.Equal(t, 1, f.Len())
	n, _ := f.Lookup("dup")
	assert.Same(t, early, n.Comment)
}

func TestBuildHandlesDeepChains(t *testing.T) {
	const depth = 20000
	comments := make([]*Comment, 0, depth)
	comments = append(comments, at("n0", "", 0))
	for i := 1; i < depth; i++ {
		comments = append(comments, at(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i-1), i))
	}

	f := Build(comments)
	require.Equal(t, depth, f.Len())

	last, ok := f.Lookup(fmt.Sprintf("n%d", depth-1))
	require.True(t, ok)
	assert.Equal(t, depth-1, last.Depth)
	assert.Len(t, f.Subtree("n0"), depth)

	tree := f.Tree("")
	require.Len(t, tree, 1)
	levels := 0
	for node := tree[0]; ; node = node.Replies[0] {
		levels++
		if len(node.Replies) == 0 {
			break
		}
	}
	assert.Equal(t, depth, levels)
}

func TestBuildEmpty(t *testing.T) {
	f := Build(nil)
	assert.Equal(t, 0, f.Len())
	assert.Empty(t, f.Tree("u1"))
	assert.Nil(t, f.Subtree("x"))
}

func TestSubtree(t *testing.T) {
	f := Build([]*Comment{
		at("a", "", 0),
		at("b", "a", 1),
		at("c", "b", 2),
		at("d", "a", 3),
		at("e", "", 4),
	})

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, f.Subtree("a"))
	assert.Equal(t, "b", f.Subtree("b")[0])
	assert.ElementsMatch(t, []string{"b", "c"}, f.Subtree("b"))
	assert.Equal(t, []string{"e"}, f.Subtree("e"))
}

func TestWalkSkipsRepliesWhenToldTo(t *testing.T) {
	f := Build([]*Comment{
		at("a", "", 0),
		at("b", "a", 1),
		at("c", "", 2),
	})

	var seen []string
	f.Walk(func(_ int, n *Node) bool {
		seen = append(seen, n.Comment.ID)
		return n.Comment.ID != "a"
	})
	assert.Equal(t, []string{"a", "c"}, seen)
}

func TestTreeNestsReplies(t *testing.T) {
	a := at("a", "", 0)
	b := at("b", "a", 1)
	b.AuthorID = "u2"
	c := at("c", "b", 2)

	tree := Build([]*Comment{c, b, a}).Tree("u2")

	require.Len(t, tree, 1)
	root := tree[0]
	assert.Equal(t, "a", root.ID)
	assert.Equal(t, 1, root.ReplyCount)
	assert.True(t, root.CanReply)
	assert.False(t, root.CanModify)

	require.Len(t, root.Replies, 1)
	reply := root.Replies[0]
	assert.Equal(t, "b", reply.ID)
	assert.Equal(t, 1, reply.Depth)
	assert.True(t, reply.CanModify)

	require.Len(t, reply.Replies, 1)
	leaf := reply.Replies[0]
	assert.Equal(t, 2, leaf.Depth)
	assert.False(t, leaf.CanReply)
	assert.NotNil(t, leaf.Replies)
	assert.Empty(t, leaf.Replies)
}
