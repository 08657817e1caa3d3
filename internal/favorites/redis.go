package favorites

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// DefaultRedisKey is the set holding favorite ids.
const DefaultRedisKey = "kultur:favorites"

// RedisStore keeps favorites in a single Redis set.
type RedisStore struct {
	client *redis.Client
	key    string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore returns a store over client using key as the set name.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{client: client, key: key}
}

// OpenRedis connects to addr and verifies the connection.
func OpenRedis(ctx context.Context, addr, password string, dbIndex int, key string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbIndex,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, wrap("open", "", fmt.Errorf("pinging redis at %s: %w", addr, err))
	}
	return NewRedisStore(client, key), nil
}

func (s *RedisStore) AllIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.key).Result()
	if err != nil {
		return nil, wrap("list", "", err)
	}
	return sortedIDs(ids), nil
}

func (s *RedisStore) IsFavorite(ctx context.Context, id string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key, id).Result()
	return ok, wrap("check", id, err)
}

func (s *RedisStore) Add(ctx context.Context, id string) error {
	return wrap("add", id, s.client.SAdd(ctx, s.key, id).Err())
}

func (s *RedisStore) Remove(ctx context.Context, id string) error {
	return wrap("remove", id, s.client.SRem(ctx, s.key, id).Err())
}

// toggleScript removes id when present and adds it otherwise, atomically.
var toggleScript = redis.NewScript(`
if redis.call("SREM", KEYS[1], ARGV[1]) == 1 then
  return 0
end
redis.call("SADD", KEYS[1], ARGV[1])
return 1
`)

func (s *RedisStore) Toggle(ctx context.Context, id string) (bool, error) {
	n, err := toggleScript.Run(ctx, s.client, []string{s.key}, id).Int()
	if err != nil {
		return false, wrap("toggle", id, err)
	}
	return n == 1, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
