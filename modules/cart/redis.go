package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisBucket keeps the cart in a redis server.
type RedisBucket struct {
	client *redis.Client
}

// DialRedis accepts either a redis:// URL or a plain host:port address.
func DialRedis(addr string) *RedisBucket {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		opts = &redis.Options{
			Addr:         addr,
			MinIdleConns: 1,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     4,
		}
	}
	return &RedisBucket{client: redis.NewClient(opts)}
}

// Ping retries with exponential backoff until redis answers, attempts run
// out or ctx is done.
func (b *RedisBucket) Ping(ctx context.Context, attempts int) error {
	var err error
	for i := 0; i < attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = b.client.Ping(pingCtx).Err()
		cancel()
		if err == nil {
			return nil
		}

		backoff := time.Duration(100*(1<<uint(i))) * time.Millisecond
		if backoff > 5*time.Second {
			backoff = 5 * time.Second
		}
		log.Warningf("redis ping failed (attempt %d/%d): %v, retrying in %v", i+1, attempts, err, backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("cart: redis unreachable after %d attempts: %w", attempts, err)
}

func (b *RedisBucket) Restore(ctx context.Context, key string) ([]byte, error) {
	value, err := b.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	return value, err
}

func (b *RedisBucket) Save(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, key, value, 0).Err()
}

func (b *RedisBucket) Close() error {
	return b.client.Close()
}
