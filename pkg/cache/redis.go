package cache

import (
	"time"

	"github.com/go-redis/redis"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

var ErrNotFound = errors.New("not found")

const keyPrefix = "events/"

// Record describes a processed webhook event
type Record struct {
	Type        string    `msgpack:"type"`
	ProcessedAt time.Time `msgpack:"processed_at"`
}

// RedisCache remembers processed webhook event IDs for a limited time
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(redisURL string, ttl time.Duration) (RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return RedisCache{}, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping().Err(); err != nil {
		return RedisCache{}, err
	}

	return RedisCache{client: client, ttl: ttl}, nil
}

// Seen reports whether event was already processed successfully
func (c RedisCache) Seen(eventID string) (bool, error) {
	count, err := c.client.Exists(keyPrefix + eventID).Result()
	if err != nil {
		return false, errors.Wrapf(err, "failed to check event %s", eventID)
	}

	return count > 0, nil
}

// Mark records event as processed. The first record wins, subsequent calls don't overwrite it.
func (c RedisCache) Mark(eventID string, eventType string) error {
	data, err := msgpack.Marshal(&Record{Type: eventType, ProcessedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	if err := c.client.SetNX(keyPrefix+eventID, data, c.ttl).Err(); err != nil {
		return errors.Wrapf(err, "failed to mark event %s", eventID)
	}

	return nil
}

func (c RedisCache) Lookup(eventID string) (*Record, error) {
	data, err := c.client.Get(keyPrefix + eventID).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	record := &Record{}
	if err := msgpack.Unmarshal(data, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (c RedisCache) Close() error {
	return c.client.Close()
}
