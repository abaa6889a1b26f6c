package redis

import (
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const monitorInterval = 5 * time.Second

// RedisProvider owns the client shared by the comment and participant
// caches.
type RedisProvider struct {
	Client *redis.Client
	URL    string
	logger *zap.SugaredLogger
	ttl    time.Duration
	stop   context.CancelFunc
}

// NewRedisProvider accepts either a redis:// URL or a bare host:port. The
// provider is returned even when redis is unreachable; callers treat cache
// errors as misses.
func NewRedisProvider(redisURL string, logger *zap.Logger, ttl time.Duration) *RedisProvider {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}
	opts.MaxRetries = 3
	opts.MinRetryBackoff = 100 * time.Millisecond
	opts.MaxRetryBackoff = 500 * time.Millisecond

	monitorCtx, stop := context.WithCancel(context.Background())
	p := &RedisProvider{
		Client: redis.NewClient(opts),
		URL:    redisURL,
		logger: logger.Sugar().With("component", "redis"),
		ttl:    ttl,
		stop:   stop,
	}
	p.Client.AddHook(&commandLogger{logger: p.logger})

	if err := p.Client.Ping(context.Background()).Err(); err != nil {
		p.logger.Errorw("Cache unavailable at startup, serving from the database", "addr", opts.Addr, "error", err)
	} else {
		p.logger.Infow("Cache connected", "addr", opts.Addr, "db", opts.DB, "default_ttl", ttl.String())
	}

	go p.monitor(monitorCtx)
	return p
}

// TTL returns ttl, or the provider default when ttl is not positive.
func (r *RedisProvider) TTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return r.ttl
	}
	return ttl
}

func (r *RedisProvider) SetEX(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	return r.Client.Set(ctx, key, value, ttl)
}

func (r *RedisProvider) Get(ctx context.Context, key string) *redis.StringCmd {
	return r.Client.Get(ctx, key)
}

func (r *RedisProvider) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return r.Client.Del(ctx, keys...)
}

// Close stops the connection monitor and closes the client.
func (r *RedisProvider) Close() error {
	r.stop()
	return r.Client.Close()
}

// monitor logs transitions between reachable and unreachable.
func (r *RedisProvider) monitor(ctx context.Context) {
	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()

	up := r.Client.Ping(ctx).Err() == nil
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		err := r.Client.Ping(ctx).Err()
		switch {
		case err != nil && up:
			r.logger.Errorw("Cache connection lost", "error", err)
		case err == nil && !up:
			r.logger.Infow("Cache connection restored", "url", r.URL)
		}
		up = err == nil
	}
}

// commandLogger reports failed commands at error level and everything
// else except pings at debug level.
type commandLogger struct {
	logger *zap.SugaredLogger
}

func (h *commandLogger) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.logger.Errorw("Cache dial failed", "addr", addr, "error", err)
		}
		return conn, err
	}
}

func (h *commandLogger) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.log(cmd, time.Since(start), err)
		return err
	}
}

func (h *commandLogger) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)
		for _, cmd := range cmds {
			h.log(cmd, elapsed, cmd.Err())
		}
		return err
	}
}

func (h *commandLogger) log(cmd redis.Cmder, elapsed time.Duration, err error) {
	if err == redis.Nil {
		err = nil
	}
	if err != nil {
		h.logger.Errorw("Cache command failed", "cmd", cmd.Name(), "key", commandKey(cmd), "elapsed", elapsed, "error", err)
		return
	}
	if cmd.Name() != "ping" {
		h.logger.Debugw("Cache command", "cmd", cmd.Name(), "key", commandKey(cmd), "elapsed", elapsed)
	}
}

// commandKey returns the first key argument without logging cached
// payloads.
func commandKey(cmd redis.Cmder) interface{} {
	if args := cmd.Args(); len(args) > 1 {
		return args[1]
	}
	return nil
}
