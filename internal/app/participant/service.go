package participant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"discussion/internal/app/mention"
	"discussion/internal/providers/redis"

	"go.uber.org/zap"
)

const participantCacheTTL = 5 * time.Minute

type Service interface {
	ListByThread(ctx context.Context, threadID string) ([]*Participant, error)
	MentionCandidates(ctx context.Context, threadID string) ([]mention.Participant, error)
	AddToThread(ctx context.Context, threadID string, p *Participant, position int) error
}

type service struct {
	repo   Repository
	redisP *redis.RedisProvider
	logger *zap.SugaredLogger
}

func NewService(repo Repository, redisP *redis.RedisProvider, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		redisP: redisP,
		logger: logger.Sugar(),
	}
}

func cacheKey(threadID string) string {
	return fmt.Sprintf("participants:thread:%s", threadID)
}

func (s *service) ListByThread(ctx context.Context, threadID string) ([]*Participant, error) {
	key := cacheKey(threadID)
	if s.redisP != nil {
		cached, err := s.redisP.Get(ctx, key).Result()
		if err == nil && cached != "" {
			var participants []*Participant
			if json.Unmarshal([]byte(cached), &participants) == nil {
				return participants, nil
			}
		}
	}

	participants, err := s.repo.ListByThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}

	if s.redisP != nil {
		data, err := json.Marshal(participants)
		if err == nil {
			if err := s.redisP.SetEX(ctx, key, data, participantCacheTTL).Err(); err != nil {
				s.logger.Warnw("Failed to cache participant list", "thread_id", threadID, "error", err)
			}
		}
	}
	return participants, nil
}

// MentionCandidates returns the thread's participants in membership order,
// as the mention resolver expects them.
func (s *service) MentionCandidates(ctx context.Context, threadID string) ([]mention.Participant, error) {
	participants, err := s.ListByThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	out := make([]mention.Participant, 0, len(participants))
	for _, p := range participants {
		out = append(out, mention.Participant{ID: p.ID, DisplayName: p.DisplayName})
	}
	return out, nil
}

func (s *service) AddToThread(ctx context.Context, threadID string, p *Participant, position int) error {
	err := s.repo.Transaction(ctx, func(repo Repository) error {
		if err := repo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("failed to save participant: %w", err)
		}
		if err := repo.AddMember(ctx, threadID, p.ID, position); err != nil {
			return fmt.Errorf("failed to add participant to thread: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if s.redisP != nil {
		if err := s.redisP.Del(ctx, cacheKey(threadID)).Err(); err != nil {
			s.logger.Warnw("Failed to invalidate participant cache", "thread_id", threadID, "error", err)
		}
	}
	return nil
}
