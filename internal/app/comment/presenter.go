package comment

// MaxReplyDepth is the deepest node that still offers a reply action.
// Deeper trees are still built and rendered; the limit only applies to new
// replies.
const MaxReplyDepth = 2

func (n *Node) CanReply() bool {
	return n.Depth < MaxReplyDepth && !n.Comment.IsTombstoned()
}

func (n *Node) CanToggle() bool {
	return len(n.Replies) > 0
}

// CanModify reports whether viewerID sees edit and delete actions on the
// node. Moderators are not considered here; the service still accepts their
// writes.
func (n *Node) CanModify(viewerID string) bool {
	return viewerID != "" && n.Comment.AuthorID == viewerID && !n.Comment.IsTombstoned()
}

// ViewState keeps the collapsed nodes of one presenter. It is never
// persisted. The zero value is ready to use with every node expanded.
type ViewState struct {
	collapsed map[string]bool
}

func NewViewState() *ViewState {
	return &ViewState{}
}

func (v *ViewState) Expanded(id string) bool {
	return v == nil || !v.collapsed[id]
}

func (v *ViewState) Toggle(id string) {
	if v.collapsed == nil {
		v.collapsed = make(map[string]bool)
	}
	if v.collapsed[id] {
		delete(v.collapsed, id)
		return
	}
	v.collapsed[id] = true
}

type VisibleNode struct {
	Comment    *Comment
	AuthorName string
	Depth      int
	ReplyCount int
	CanReply   bool
	CanToggle  bool
	Expanded   bool
	CanModify  bool
}

// Flatten lists the nodes a presenter shows, in render order, leaving out
// the replies of collapsed nodes.
func Flatten(f *Forest, state *ViewState, viewerID string) []VisibleNode {
	rows := make([]VisibleNode, 0, f.Len())
	f.Walk(func(_ int, n *Node) bool {
		expanded := state.Expanded(n.Comment.ID)
		rows = append(rows, VisibleNode{
			Comment:    n.Comment,
			AuthorName: f.AuthorNames[n.Comment.AuthorID],
			Depth:      n.Depth,
			ReplyCount: len(n.Replies),
			CanReply:   n.CanReply(),
			CanToggle:  n.CanToggle(),
			Expanded:   expanded,
			CanModify:  n.CanModify(viewerID),
		})
		return expanded
	})
	return rows
}
