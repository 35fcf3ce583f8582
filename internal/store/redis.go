package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mmeshcher/vizcaya-system/internal/cart"
)

const redisKeyPrefix = "vizcaya:cart:"

// Redis реализует хранилище состояний в Redis с ограниченным временем жизни записей.
// Подключается опционально, для развёртываний с несколькими экземплярами.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis создаёт хранилище по URL подключения и проверяет доступность Redis.
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

// State возвращает состояние сессии, для отсутствующего ключа — пустое состояние.
func (r *Redis) State(ctx context.Context, sessionID string) (*State, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("get session state: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unmarshal session state: %w", err)
	}
	if st.Ledger == nil {
		st.Ledger = cart.NewLedger()
	}

	return &st, nil
}

// Save сохраняет состояние сессии с обновлением TTL.
func (r *Redis) Save(ctx context.Context, sessionID string, st *State) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	if err := r.client.Set(ctx, redisKeyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("set session state: %w", err)
	}

	return nil
}

// Delete удаляет состояние сессии.
func (r *Redis) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}

// Close закрывает подключение к Redis.
func (r *Redis) Close() error {
	return r.client.Close()
}
