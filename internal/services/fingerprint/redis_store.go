package fingerprint

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"WhaleScope/internal/domain/models"
	"WhaleScope/internal/domain/repository"
	"WhaleScope/pkg/util"
)

// RedisStore keeps fingerprints in a per-address Redis list trimmed to
// the retention limit. Redis serializes commands per connection, so
// concurrent appends for one address cannot interleave; the TTL bounds
// global growth instead of an explicit entry cap.
type RedisStore struct {
	client          *redis.Client
	prefix          string
	perAddressLimit int
	ttl             time.Duration
}

type RedisStoreConfig struct {
	Addr            string
	Password        string
	DB              int
	Prefix          string
	PerAddressLimit int
	TTL             time.Duration
}

// NewRedisStore connects and pings Redis.
func NewRedisStore(cfg RedisStoreConfig) (*RedisStore, error) {
	if cfg.PerAddressLimit <= 0 {
		cfg.PerAddressLimit = 5
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "whalescope"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisStore{
		client:          client,
		prefix:          cfg.Prefix,
		perAddressLimit: cfg.PerAddressLimit,
		ttl:             cfg.TTL,
	}, nil
}

func (s *RedisStore) Backend() string { return "redis" }

func (s *RedisStore) Append(ctx context.Context, address string, fp models.EntityFingerprint) error {
	if fp.StoredAt == 0 {
		fp.StoredAt = time.Now().Unix()
	}
	data, err := json.Marshal(fp)
	if err != nil {
		return fmt.Errorf("marshal fingerprint: %w", err)
	}

	key := s.key(address)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, int64(-s.perAddressLimit), -1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append fingerprint: %w", err)
	}
	return nil
}

func (s *RedisStore) List(ctx context.Context, address string) ([]models.EntityFingerprint, error) {
	raw, err := s.client.LRange(ctx, s.key(address), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list fingerprints: %w", err)
	}
	out := make([]models.EntityFingerprint, 0, len(raw))
	for _, item := range raw {
		var fp models.EntityFingerprint
		if err := json.Unmarshal([]byte(item), &fp); err != nil {
			continue // skip corrupt entries
		}
		out = append(out, fp)
	}
	return out, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(address string) string {
	return fmt.Sprintf("%s:fp:%s", s.prefix, util.NormalizeAddress(address))
}

var _ repository.FingerprintStore = (*RedisStore)(nil)
