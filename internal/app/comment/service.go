package comment

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"discussion/internal/app/mention"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Moderator is the optional capability check that lets non-authors edit and
// delete comments.
type Moderator interface {
	CanModerate(ctx context.Context, actorID string) bool
}

// ParticipantDirectory supplies the participants of a thread, used both as
// mention candidates and to attribute comments to their authors.
type ParticipantDirectory interface {
	MentionCandidates(ctx context.Context, threadID string) ([]mention.Participant, error)
}

type DeletePolicy string

const (
	// DeleteTombstone keeps the node with redacted content so replies stay
	// attached. This is the default.
	DeleteTombstone DeletePolicy = "tombstone"
	// DeleteCascade removes the comment and every descendant.
	DeleteCascade DeletePolicy = "cascade"
)

const DefaultMaxContentLength = 9999

type Options struct {
	Moderator        Moderator
	DeletePolicy     DeletePolicy
	MaxContentLength int
	Now              func() time.Time
	NewID            func() string
}

type MutationOption func(*mutationOptions)

type mutationOptions struct {
	ifVersion int
}

// IfVersion makes an edit or delete fail with ErrConflict unless the stored
// comment is at version v.
func IfVersion(v int) MutationOption {
	return func(o *mutationOptions) {
		o.ifVersion = v
	}
}

type Service interface {
	Post(ctx context.Context, threadID, authorID, content string) (*Comment, error)
	Reply(ctx context.Context, threadID, authorID, parentID, content string) (*Comment, error)
	Edit(ctx context.Context, commentID, actorID, content string, opts ...MutationOption) (*Comment, error)
	Delete(ctx context.Context, commentID, actorID string, opts ...MutationOption) (*Comment, error)
	GetThread(ctx context.Context, threadID string) (*Forest, error)
}

type service struct {
	repo         Repository
	primary      Repository
	participants ParticipantDirectory
	moderator    Moderator
	deletePolicy DeletePolicy
	maxLength    int
	now          func() time.Time
	newID        func() string
	logger       *zap.SugaredLogger
}

func NewService(repo Repository, participants ParticipantDirectory, logger *zap.Logger, opts Options) Service {
	s := &service{
		repo:         repo,
		primary:      PrimaryOf(repo),
		participants: participants,
		moderator:    opts.Moderator,
		deletePolicy: opts.DeletePolicy,
		maxLength:    opts.MaxContentLength,
		now:          opts.Now,
		newID:        opts.NewID,
		logger:       logger.Sugar(),
	}
	if s.deletePolicy == "" {
		s.deletePolicy = DeleteTombstone
	}
	if s.maxLength <= 0 {
		s.maxLength = DefaultMaxContentLength
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

func (s *service) Post(ctx context.Context, threadID, authorID, content string) (*Comment, error) {
	if err := requireIDs(threadID, authorID); err != nil {
		return nil, err
	}
	body, err := s.normalizeContent(content)
	if err != nil {
		return nil, err
	}

	c, err := s.create(ctx, threadID, authorID, nil, body)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Comment posted",
		"comment_id", c.ID,
		"thread_id", c.ThreadID,
		"author_id", c.AuthorID,
		"mentions", len(c.Mentions),
	)
	return c, nil
}

func (s *service) Reply(ctx context.Context, threadID, authorID, parentID, content string) (*Comment, error) {
	if err := requireIDs(threadID, authorID); err != nil {
		return nil, err
	}
	body, err := s.normalizeContent(content)
	if err != nil {
		return nil, err
	}

	comments, err := s.primary.ListByThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	parent, ok := Build(comments).Lookup(parentID)
	if !ok {
		return nil, newError(KindNotFound, "parent comment %s not found in thread %s", parentID, threadID)
	}
	if parent.Comment.IsTombstoned() {
		return nil, newError(KindState, "parent comment %s is deleted", parentID)
	}
	if parent.Depth >= MaxReplyDepth {
		return nil, newError(KindDepthExceeded, "comment %s is at depth %d, replies are allowed up to depth %d",
			parentID, parent.Depth, MaxReplyDepth-1)
	}

	pid := parent.Comment.ID
	c, err := s.create(ctx, threadID, authorID, &pid, body)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Comment reply posted",
		"comment_id", c.ID,
		"thread_id", c.ThreadID,
		"parent_id", pid,
		"depth", parent.Depth+1,
		"author_id", c.AuthorID,
	)
	return c, nil
}

func (s *service) Edit(ctx context.Context, commentID, actorID, content string, opts ...MutationOption) (*Comment, error) {
	o := applyMutationOptions(opts)

	current, err := s.repo.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, current, actorID); err != nil {
		return nil, err
	}
	if current.IsTombstoned() {
		return nil, newError(KindState, "comment %s is deleted and cannot be edited", commentID)
	}
	body, err := s.normalizeContent(content)
	if err != nil {
		return nil, err
	}
	if o.ifVersion != 0 && current.Version != o.ifVersion {
		return nil, newError(KindConflict, "comment %s is at version %d, not %d", commentID, current.Version, o.ifVersion)
	}

	mentions, err := s.resolveMentions(ctx, current.ThreadID, body)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, commentID, Patch{
		Content:   &body,
		Mentions:  mentions,
		IfVersion: o.ifVersion,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Comment edited",
		"comment_id", updated.ID,
		"thread_id", updated.ThreadID,
		"actor_id", actorID,
		"version", updated.Version,
	)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, commentID, actorID string, opts ...MutationOption) (*Comment, error) {
	o := applyMutationOptions(opts)

	current, err := s.repo.Get(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, current, actorID); err != nil {
		return nil, err
	}
	if o.ifVersion != 0 && current.Version != o.ifVersion {
		return nil, newError(KindConflict, "comment %s is at version %d, not %d", commentID, current.Version, o.ifVersion)
	}

	if s.deletePolicy == DeleteCascade {
		return s.deleteCascade(ctx, current, actorID)
	}

	if current.IsTombstoned() {
		return current, nil
	}
	tombstone, err := s.repo.MarkTombstoned(ctx, commentID, o.ifVersion)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("Comment tombstoned",
		"comment_id", tombstone.ID,
		"thread_id", tombstone.ThreadID,
		"actor_id", actorID,
	)
	return tombstone, nil
}

func (s *service) deleteCascade(ctx context.Context, current *Comment, actorID string) (*Comment, error) {
	comments, err := s.primary.ListByThread(ctx, current.ThreadID)
	if err != nil {
		return nil, err
	}
	ids := Build(comments).Subtree(current.ID)
	if len(ids) == 0 {
		ids = []string{current.ID}
	}
	if err := s.repo.DeleteTree(ctx, current.ThreadID, ids); err != nil {
		return nil, err
	}
	s.logger.Infow("Comment deleted with replies",
		"comment_id", current.ID,
		"thread_id", current.ThreadID,
		"actor_id", actorID,
		"deleted", len(ids),
	)
	return current, nil
}

func (s *service) GetThread(ctx context.Context, threadID string) (*Forest, error) {
	if strings.TrimSpace(threadID) == "" {
		return nil, newError(KindValidation, "thread id is required")
	}
	comments, err := s.repo.ListByThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	forest := Build(comments)
	forest.AuthorNames = s.authorNames(ctx, threadID)
	return forest, nil
}

// authorNames is best effort: a thread still renders when the directory
// fails, only without names.
func (s *service) authorNames(ctx context.Context, threadID string) map[string]string {
	if s.participants == nil {
		return nil
	}
	participants, err := s.participants.MentionCandidates(ctx, threadID)
	if err != nil {
		s.logger.Warnw("Failed to load comment authors", "thread_id", threadID, "error", err)
		return nil
	}
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.DisplayName
	}
	return names
}

func (s *service) create(ctx context.Context, threadID, authorID string, parentID *string, body string) (*Comment, error) {
	mentions, err := s.resolveMentions(ctx, threadID, body)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return s.repo.Insert(ctx, &Comment{
		ID:        s.newID(),
		ThreadID:  threadID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   body,
		Mentions:  mentions,
		State:     StateActive,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *service) resolveMentions(ctx context.Context, threadID, body string) ([]string, error) {
	if s.participants == nil {
		return []string{}, nil
	}
	candidates, err := s.participants.MentionCandidates(ctx, threadID)
	if err != nil {
		return nil, err
	}
	return mention.Resolve(body, candidates), nil
}

func (s *service) authorize(ctx context.Context, c *Comment, actorID string) error {
	if actorID == "" {
		return newError(KindAuthorization, "an acting participant is required")
	}
	if c.AuthorID == actorID {
		return nil
	}
	if s.moderator != nil && s.moderator.CanModerate(ctx, actorID) {
		s.logger.Infow("Moderator override", "comment_id", c.ID, "actor_id", actorID, "author_id", c.AuthorID)
		return nil
	}
	return newError(KindAuthorization, "participant %s is not the author of comment %s", actorID, c.ID)
}

func (s *service) normalizeContent(content string) (string, error) {
	body := strings.TrimSpace(content)
	if body == "" {
		return "", newError(KindValidation, "content must not be empty")
	}
	if n := utf8.RuneCountInString(body); n > s.maxLength {
		return "", newError(KindValidation, "content must be at most %d characters, got %d", s.maxLength, n)
	}
	return body, nil
}

func requireIDs(threadID, authorID string) error {
	if strings.TrimSpace(threadID) == "" {
		return newError(KindValidation, "thread id is required")
	}
	if strings.TrimSpace(authorID) == "" {
		return newError(KindAuthorization, "an acting participant is required")
	}
	return nil
}

func applyMutationOptions(opts []MutationOption) mutationOptions {
	var o mutationOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
