package participant

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListByThread(ctx context.Context, threadID string) ([]*Participant, error)
	Upsert(ctx context.Context, p *Participant) error
	AddMember(ctx context.Context, threadID, participantID string, position int) error
	// Transaction runs fn against a repository bound to one database
	// transaction, committed only when fn returns nil.
	Transaction(ctx context.Context, fn func(repo Repository) error) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByThread(ctx context.Context, threadID string) ([]*Participant, error) {
	var participants []*Participant
	err := r.db.WithContext(ctx).
		Table("participants").
		Select("participants.*").
		Joins("JOIN thread_members ON thread_members.participant_id = participants.id").
		Where("thread_members.thread_id = ?", threadID).
		Order("thread_members.position ASC, participants.id ASC").
		Find(&participants).Error
	return participants, err
}

func (r *repository) Upsert(ctx context.Context, p *Participant) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) AddMember(ctx context.Context, threadID, participantID string, position int) error {
	return r.db.WithContext(ctx).Save(&ThreadMember{
		ThreadID:      threadID,
		ParticipantID: participantID,
		Position:      position,
	}).Error
}

func (r *repository) Transaction(ctx context.Context, fn func(repo Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}
