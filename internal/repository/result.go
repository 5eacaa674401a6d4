package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/apologies/internal/entity"
)

const (
	colorWinsKey     = "wins:color"
	characterWinsKey = "wins:character"
)

// Tally counts finished games won, keyed by color and by character name.
type Tally struct {
	ByColor     map[entity.Color]int64
	ByCharacter map[string]int64
}

type ResultRepository interface {
	RecordWin(ctx context.Context, color entity.Color, character string) error
	Tally(ctx context.Context) (Tally, error)
	Reset(ctx context.Context) error
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// RecordWin bumps both counters in one transaction.
func (that *dbResult) RecordWin(ctx context.Context, color entity.Color, character string) error {
	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, colorWinsKey, string(color), 1)
		pipe.HIncrBy(ctx, characterWinsKey, character, 1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record win: %w", err)
	}

	return nil
}

func (that *dbResult) Tally(ctx context.Context) (Tally, error) {
	byColor, err := that.readCounts(ctx, colorWinsKey)
	if err != nil {
		return Tally{}, err
	}

	byCharacter, err := that.readCounts(ctx, characterWinsKey)
	if err != nil {
		return Tally{}, err
	}

	tally := Tally{
		ByColor:     make(map[entity.Color]int64, len(byColor)),
		ByCharacter: byCharacter,
	}

	for color, wins := range byColor {
		tally.ByColor[entity.Color(color)] = wins
	}

	return tally, nil
}

func (that *dbResult) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, colorWinsKey, characterWinsKey).Err(); err != nil {
		return fmt.Errorf("failed to reset results: %w", err)
	}

	return nil
}

func (that *dbResult) readCounts(ctx context.Context, key string) (map[string]int64, error) {
	raw, err := that.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	counts := make(map[string]int64, len(raw))
	for field, value := range raw {
		count, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s[%s]: %w", key, field, err)
		}

		counts[field] = count
	}

	return counts, nil
}
