package comment

import (
	"context"
	"sync"
	"time"

	"discussion/internal/app/mention"
)

// memoryRepository is an in-process Repository for service and handler
// tests. Stored comments are copied on the way in and out.
type memoryRepository struct {
	mu       sync.Mutex
	comments map[string]*Comment
	seq      int64

	listErr    error
	listCalls  int
	tombstones int
	deleted    []string
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{comments: make(map[string]*Comment)}
}

func clone(c *Comment) *Comment {
	cp := *c
	if c.ParentID != nil {
		pid := *c.ParentID
		cp.ParentID = &pid
	}
	cp.Mentions = append([]string{}, c.Mentions...)
	return &cp
}

func (r *memoryRepository) ListByThread(_ context.Context, threadID string) ([]*Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*Comment
	for _, c := range r.comments {
		if c.ThreadID == threadID {
			out = append(out, clone(c))
		}
	}
	return out, nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (*Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, newError(KindNotFound, "comment not found")
	}
	return clone(c), nil
}

func (r *memoryRepository) Insert(_ context.Context, c *Comment) (*Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	c.Seq = r.seq
	r.comments[c.ID] = clone(c)
	return clone(c), nil
}

func (r *memoryRepository) Update(_ context.Context, id string, patch Patch) (*Comment, error) {
	return r.mutate(id, patch.IfVersion, func(c *Comment) {
		if patch.Content != nil {
			c.Content = *patch.Content
		}
		if patch.Mentions != nil {
			c.Mentions = patch.Mentions
		}
	})
}

func (r *memoryRepository) MarkTombstoned(_ context.Context, id string, ifVersion int) (*Comment, error) {
	r.mu.Lock()
	r.tombstones++
	r.mu.Unlock()
	return r.mutate(id, ifVersion, func(c *Comment) {
		c.Content = ""
		c.Mentions = []string{}
		c.State = StateTombstoned
	})
}

func (r *memoryRepository) DeleteTree(_ context.Context, threadID string, ids []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if c, ok := r.comments[id]; ok && c.ThreadID == threadID {
			delete(r.comments, id)
			r.deleted = append(r.deleted, id)
		}
	}
	return nil
}

func (r *memoryRepository) mutate(id string, ifVersion int, apply func(c *Comment)) (*Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, newError(KindNotFound, "comment not found")
	}
	if ifVersion != 0 && c.Version != ifVersion {
		return nil, newError(KindConflict, "version mismatch")
	}
	apply(c)
	c.Version++
	c.UpdatedAt = c.UpdatedAt.Add(time.Second)
	return clone(c), nil
}

type staticDirectory []mention.Participant

func (d staticDirectory) MentionCandidates(context.Context, string) ([]mention.Participant, error) {
	return d, nil
}

type moderatorSet map[string]bool

func (m moderatorSet) CanModerate(_ context.Context, actorID string) bool {
	return m[actorID]
}
