package comment

import "time"

type State string

const (
	StateActive     State = "ACTIVE"
	StateTombstoned State = "TOMBSTONED"
)

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Seq       int64     `json:"seq" gorm:"autoIncrement;uniqueIndex;not null"`
	ThreadID  string    `json:"thread_id" gorm:"type:varchar(128);not null;index:idx_comments_thread,priority:1"`
	AuthorID  string    `json:"author_id" gorm:"type:varchar(64);not null;index"`
	ParentID  *string   `json:"parent_id,omitempty" gorm:"type:varchar(64);index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Mentions  []string  `json:"mentions" gorm:"serializer:json;type:jsonb"`
	State     State     `json:"state" gorm:"type:varchar(16);not null;default:ACTIVE"`
	Version   int       `json:"version" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index:idx_comments_thread,priority:2"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (c *Comment) IsTombstoned() bool {
	return c.State == StateTombstoned
}

// Patch is a partial update applied by Repository.Update. Nil fields are
// left unchanged.
type Patch struct {
	Content  *string
	Mentions []string
	// IfVersion, when non-zero, makes the update conditional on the stored
	// version.
	IfVersion int
}

// MutationState describes where a write stands from the caller's point of
// view. The service only ever reports MutationCommitted; the other states
// belong to optimistic client layers.
type MutationState string

const (
	MutationPending    MutationState = "pending"
	MutationCommitted  MutationState = "committed"
	MutationRolledBack MutationState = "rolled_back"
)

type CreateCommentRequest struct {
	Content  string  `json:"content" binding:"required"`
	ParentID *string `json:"parent_id,omitempty"`
}

type EditCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type MutationResponse struct {
	State   MutationState `json:"state"`
	Comment *Comment      `json:"comment,omitempty"`
}

// ThreadNode is the nested form of a forest node, as sent to clients.
type ThreadNode struct {
	*Comment
	AuthorName string       `json:"author_name,omitempty"`
	Depth      int          `json:"depth"`
	CanReply   bool         `json:"can_reply"`
	CanModify  bool         `json:"can_modify"`
	ReplyCount int          `json:"reply_count"`
	Replies    []ThreadNode `json:"replies"`
}

type ThreadResponse struct {
	ThreadID string       `json:"thread_id"`
	Total    int          `json:"total"`
	Comments []ThreadNode `json:"comments"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
