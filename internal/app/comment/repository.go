package comment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListByThread(ctx context.Context, threadID string) ([]*Comment, error)
	Get(ctx context.Context, id string) (*Comment, error)
	Insert(ctx context.Context, c *Comment) (*Comment, error)
	Update(ctx context.Context, id string, patch Patch) (*Comment, error)
	MarkTombstoned(ctx context.Context, id string, ifVersion int) (*Comment, error)
	DeleteTree(ctx context.Context, threadID string, ids []string) error
}

// Layered is implemented by repositories that decorate another one, such as
// read caches. Primary returns the repository underneath.
type Layered interface {
	Primary() Repository
}

// PrimaryOf unwraps decorators down to the repository that owns the data.
func PrimaryOf(repo Repository) Repository {
	for {
		l, ok := repo.(Layered)
		if !ok {
			return repo
		}
		repo = l.Primary()
	}
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListByThread(ctx context.Context, threadID string) ([]*Comment, error) {
	var comments []*Comment
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC, seq ASC").
		Find(&comments).Error
	if err != nil {
		return nil, wrapRepoErr("list", err)
	}
	return comments, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Comment, error) {
	var c Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, wrapRepoErr("get", err)
	}
	return &c, nil
}

func (r *repository) Insert(ctx context.Context, c *Comment) (*Comment, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, wrapRepoErr("insert", err)
	}
	return c, nil
}

func (r *repository) Update(ctx context.Context, id string, patch Patch) (*Comment, error) {
	return r.mutate(ctx, "update", id, patch.IfVersion, func(c *Comment) {
		if patch.Content != nil {
			c.Content = *patch.Content
		}
		if patch.Mentions != nil {
			c.Mentions = patch.Mentions
		}
	})
}

func (r *repository) MarkTombstoned(ctx context.Context, id string, ifVersion int) (*Comment, error) {
	return r.mutate(ctx, "tombstone", id, ifVersion, func(c *Comment) {
		c.Content = ""
		c.Mentions = []string{}
		c.State = StateTombstoned
	})
}

func (r *repository) DeleteTree(ctx context.Context, threadID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("thread_id = ? AND id IN ?", threadID, ids).
		Delete(&Comment{}).Error
	if err != nil {
		return wrapRepoErr("delete", err)
	}
	return nil
}

// mutate locks the row, checks the expected version and writes the mutable
// columns in one transaction.
func (r *repository) mutate(ctx context.Context, op, id string, ifVersion int, apply func(c *Comment)) (*Comment, error) {
	var current Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&current).Error; err != nil {
			return err
		}
		if ifVersion != 0 && current.Version != ifVersion {
			return newError(KindConflict, "comment %s is at version %d, not %d", id, current.Version, ifVersion)
		}

		apply(&current)
		current.Version++
		current.UpdatedAt = time.Now().UTC()

		return tx.Model(&current).
			Select("content", "mentions", "state", "version", "updated_at").
			Updates(&current).Error
	})
	if err != nil {
		return nil, wrapRepoErr(op, err)
	}
	return &current, nil
}

func wrapRepoErr(op string, err error) error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(KindNotFound, "comment not found")
	}
	return &RepositoryError{Op: op, Err: err}
}
