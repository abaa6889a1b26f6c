package participant

import "time"

type Participant struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	DisplayName string    `json:"display_name" gorm:"not null"`
	Email       *string   `json:"email,omitempty" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// ThreadMember attaches a participant to the context of a thread (the
// members of the task's project, the audience of a report). Position fixes
// the order used for mention matching.
type ThreadMember struct {
	ThreadID      string    `gorm:"primaryKey;type:varchar(128)"`
	ParticipantID string    `gorm:"primaryKey;type:varchar(64)"`
	Position      int       `gorm:"not null;default:0"`
	CreatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ThreadMember) TableName() string {
	return "thread_members"
}

type ParticipantListResponse struct {
	ThreadID     string         `json:"thread_id"`
	Participants []*Participant `json:"participants"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
