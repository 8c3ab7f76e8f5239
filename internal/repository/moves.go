package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrMovesNotFound = errors.New("moves not found")

type MovesRepository interface {
	Save(ctx context.Context, depth int, boardKey string, indexes []int) error
	GetByBoard(ctx context.Context, depth int, boardKey string) ([]int, error)
	DeleteByBoard(ctx context.Context, depth int, boardKey string) error
}

type dbMoves struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMovesRepository - ranked moves cache. A zero ttl keeps entries forever.
func NewMovesRepository(client *redis.Client, ttl time.Duration) MovesRepository {
	return &dbMoves{
		client: client,
		ttl:    ttl,
	}
}

func movesKey(depth int, boardKey string) string {
	return "moves:" + strconv.Itoa(depth) + ":" + boardKey
}

func (that *dbMoves) Save(ctx context.Context, depth int, boardKey string, indexes []int) error {
	indexesJSON, err := json.Marshal(indexes)
	if err != nil {
		return fmt.Errorf("could not marshal moves: %w", err)
	}

	err = that.client.Set(ctx, movesKey(depth, boardKey), indexesJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set moves: %w", err)
	}

	return nil
}

func (that *dbMoves) GetByBoard(ctx context.Context, depth int, boardKey string) ([]int, error) {
	response, err := that.client.Get(ctx, movesKey(depth, boardKey)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMovesNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get moves by board: %w", err)
	}

	var indexes []int
	if err = json.Unmarshal([]byte(response), &indexes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal moves: %w", err)
	}

	return indexes, nil
}

func (that *dbMoves) DeleteByBoard(ctx context.Context, depth int, boardKey string) error {
	deleted, err := that.client.Del(ctx, movesKey(depth, boardKey)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete moves by board: %w", err)
	}

	if deleted == 0 {
		return ErrMovesNotFound
	}

	return nil
}
