package repository

import (
	"context"
	"encoding/json"
	"quiz_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
)

const banKeyPrefix = "quiz:ban:"

// RedisBanStore shares ban records between instances. Keys expire at the
// long-ban horizon so abandoned records clean themselves up.
type RedisBanStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisBanStore(client *redis.Client, ttl time.Duration) *RedisBanStore {
	return &RedisBanStore{Client: client, TTL: ttl}
}

func (s *RedisBanStore) Get(ctx context.Context, addr string) (*model.BanRecord, error) {
	data, err := s.Client.Get(ctx, banKeyPrefix+addr).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var rec model.BanRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *RedisBanStore) Set(ctx context.Context, addr string, rec model.BanRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, banKeyPrefix+addr, data, s.TTL).Err()
}

func (s *RedisBanStore) Delete(ctx context.Context, addr string) error {
	return s.Client.Del(ctx, banKeyPrefix+addr).Err()
}
