package comment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"discussion/internal/providers/redis"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cachePrefix = "comments:thread"

// generationTTL outlives any list read, so an expired counter cannot make a
// stale fill look current.
const generationTTL = 24 * time.Hour

var errStaleFill = errors.New("thread changed while the list was read")

// cachedRepository serves ListByThread from redis and drops the thread's key
// after every successful write. Each write also bumps a per-thread
// generation; a fill only lands if the generation it read before going to
// the database is still current. Redis failures are logged and fall through
// to the wrapped repository.
type cachedRepository struct {
	Repository
	redisP *redis.RedisProvider
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCachedRepository(repo Repository, redisP *redis.RedisProvider, ttl time.Duration, logger *zap.Logger) Repository {
	if redisP == nil {
		return repo
	}
	return &cachedRepository{
		Repository: repo,
		redisP:     redisP,
		ttl:        ttl,
		logger:     logger.Sugar(),
	}
}

func cacheKey(threadID string) string {
	return fmt.Sprintf("%s:%s", cachePrefix, threadID)
}

func generationKey(threadID string) string {
	return cacheKey(threadID) + ":gen"
}

// Primary returns the wrapped repository. Mutations validate against it so
// they never act on a cached list.
func (r *cachedRepository) Primary() Repository {
	return r.Repository
}

func (r *cachedRepository) ListByThread(ctx context.Context, threadID string) ([]*Comment, error) {
	key := cacheKey(threadID)
	cached, err := r.redisP.Get(ctx, key).Result()
	if err == nil && cached != "" {
		var comments []*Comment
		if json.Unmarshal([]byte(cached), &comments) == nil {
			return comments, nil
		}
		r.logger.Warnw("Discarding unreadable comment cache entry", "key", key)
	}

	gen, genErr := r.generation(ctx, threadID)

	comments, err := r.Repository.ListByThread(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		r.logger.Warnw("Skipping comment cache fill", "thread_id", threadID, "error", genErr)
		return comments, nil
	}
	if err := r.fill(ctx, threadID, gen, comments); err != nil {
		if errors.Is(err, errStaleFill) || errors.Is(err, goredis.TxFailedErr) {
			r.logger.Debugw("Comment cache fill dropped after concurrent write", "thread_id", threadID)
		} else {
			r.logger.Warnw("Failed to cache comment list", "thread_id", threadID, "error", err)
		}
	}
	return comments, nil
}

func (r *cachedRepository) generation(ctx context.Context, threadID string) (int64, error) {
	gen, err := r.redisP.Get(ctx, generationKey(threadID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return gen, err
}

// fill stores comments under the thread key unless the generation moved
// past gen. The generation key is watched so an invalidation between the
// check and the write aborts the transaction.
func (r *cachedRepository) fill(ctx context.Context, threadID string, gen int64, comments []*Comment) error {
	data, err := json.Marshal(comments)
	if err != nil {
		return err
	}
	genKey := generationKey(threadID)
	return r.redisP.Client.Watch(ctx, func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}
		if current != gen {
			return errStaleFill
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, cacheKey(threadID), data, r.redisP.TTL(r.ttl))
			return nil
		})
		return err
	}, genKey)
}

func (r *cachedRepository) Insert(ctx context.Context, c *Comment) (*Comment, error) {
	created, err := r.Repository.Insert(ctx, c)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, created.ThreadID)
	return created, nil
}

func (r *cachedRepository) Update(ctx context.Context, id string, patch Patch) (*Comment, error) {
	updated, err := r.Repository.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, updated.ThreadID)
	return updated, nil
}

func (r *cachedRepository) MarkTombstoned(ctx context.Context, id string, ifVersion int) (*Comment, error) {
	tombstone, err := r.Repository.MarkTombstoned(ctx, id, ifVersion)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, tombstone.ThreadID)
	return tombstone, nil
}

func (r *cachedRepository) DeleteTree(ctx context.Context, threadID string, ids []string) error {
	if err := r.Repository.DeleteTree(ctx, threadID, ids); err != nil {
		return err
	}
	r.invalidate(ctx, threadID)
	return nil
}

func (r *cachedRepository) invalidate(ctx context.Context, threadID string) {
	ctx = context.WithoutCancel(ctx)
	genKey := generationKey(threadID)
	_, err := r.redisP.Client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, cacheKey(threadID))
		return nil
	})
	if err != nil {
		r.logger.Warnw("Failed to invalidate comment cache", "thread_id", threadID, "error", err)
		return
	}
	r.logger.Debugw("Comment cache invalidated", "thread_id", threadID)
}
