package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-tiles/internal/entity"
)

const (
	statsKey        = "stats"
	gameKeyPrefix   = "game:"
	recordedGameTTL = 24 * time.Hour

	fieldXWins = "x_wins"
	fieldOWins = "o_wins"
	fieldDraws = "draws"
)

var ErrUnfinishedGame = errors.New("game is not finished")

// recordScript - marks the game and counts it in one step. A failed increment
// drops the mark again so the game can be recorded later.
var recordScript = redis.NewScript(`
if not redis.call("SET", KEYS[1], ARGV[1], "NX", "EX", ARGV[3]) then
	return 0
end

local reply = redis.pcall("HINCRBY", KEYS[2], ARGV[2], 1)
if type(reply) == "table" and reply.err then
	redis.call("DEL", KEYS[1])
	return reply
end

return 1
`)

// ResultRepository - tally of finished games. Record is idempotent per game id.
type ResultRepository interface {
	Record(ctx context.Context, gameID string, winner entity.Mark) (bool, error)
	GetStats(ctx context.Context) (entity.Stats, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Record - counts the game unless it was already counted. Reports whether it
// was counted by this call; on error the game is left uncounted and unmarked.
func (that *dbResult) Record(ctx context.Context, gameID string, winner entity.Mark) (bool, error) {
	field, err := statsField(winner)
	if err != nil {
		return false, err
	}

	gameKey := gameKeyPrefix + gameID
	ttl := int64(recordedGameTTL / time.Second)

	counted, err := recordScript.Run(ctx, that.client, []string{gameKey, statsKey}, string(winner), field, ttl).Int()
	if err != nil {
		return false, fmt.Errorf("failed to record game: %w", err)
	}

	if counted == 0 {
		return false, nil
	}

	return true, nil
}

func (that *dbResult) GetStats(ctx context.Context) (entity.Stats, error) {
	values, err := that.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return entity.Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}

	var stats entity.Stats

	for field, target := range map[string]*int64{
		fieldXWins: &stats.XWins,
		fieldOWins: &stats.OWins,
		fieldDraws: &stats.Draws,
	} {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return entity.Stats{}, fmt.Errorf("failed to parse %s: %w", field, err)
		}
	}

	return stats, nil
}

func statsField(winner entity.Mark) (string, error) {
	switch winner {
	case entity.MarkX:
		return fieldXWins, nil
	case entity.MarkO:
		return fieldOWins, nil
	case entity.MarkDraw:
		return fieldDraws, nil
	default:
		return "", fmt.Errorf("%w: winner %q", ErrUnfinishedGame, winner)
	}
}
