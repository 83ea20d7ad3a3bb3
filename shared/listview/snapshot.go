package listview

import (
	"context"
	"fieldservice/shared"
	"fieldservice/shared/cache"
	"fieldservice/shared/dto"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Loader reads the full, ordered row set of an entity.
type Loader[T any] func(ctx context.Context) ([]T, error)

// Snapshot returns the rows cached under key. On a miss the rows are loaded and cached in the background.
// An empty key loads without caching.
func Snapshot[T any](ctx context.Context, redisCache cache.RedisCache, key string, ttl int, load Loader[T]) ([]T, error) {
	var rows []T

	if key != "" && redisCache.Get(ctx, key, &rows) == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit for snapshot")

		return rows, nil
	}

	rows, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	shared.SaveCacheAsync(ctx, redisCache, key, rows, ttl)

	return rows, nil
}

// Query filters snapshot with criteria and returns the requested page along with the filtered total.
func Query[T any](snapshot []T, criteria Criteria, params dto.QueryParams) ([]T, int) {
	view := NewView(snapshot)
	view.Apply(criteria)

	rows := view.Rows()

	return Page(rows, params), len(rows)
}
