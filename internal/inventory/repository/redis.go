package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/agrovia/kiosk-service/internal/inventory"
	"github.com/agrovia/kiosk-service/internal/model"
)

// RedisRepository keeps the whole lot list under one key, for kiosks that
// share a local redis with other fixtures.
type RedisRepository struct {
	client *redis.Client
	key    string
}

func NewRedisRepository(client *redis.Client, key string) *RedisRepository {
	return &RedisRepository{client: client, key: key}
}

func (r *RedisRepository) Load(ctx context.Context) ([]model.Lot, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, inventory.ErrSlotMissing
	}
	if err != nil {
		return nil, fmt.Errorf("read inventory slot %s: %w", r.key, err)
	}

	var lots []model.Lot
	if err := json.Unmarshal(data, &lots); err != nil {
		return nil, fmt.Errorf("parse inventory slot %s: %w", r.key, err)
	}
	return lots, nil
}

func (r *RedisRepository) Save(ctx context.Context, lots []model.Lot) error {
	data, err := json.Marshal(lots)
	if err != nil {
		return fmt.Errorf("encode inventory slot: %w", err)
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write inventory slot %s: %w", r.key, err)
	}
	return nil
}
