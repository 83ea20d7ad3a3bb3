package shared

import (
	"context"
	"fieldservice/shared/cache"
	"fieldservice/shared/constant"
	"fieldservice/shared/dto"
	"fieldservice/shared/failure"
	"fieldservice/shared/timezone"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero fields of a struct into a map of updated columns.
// Pointer fields are dereferenced so callers can send explicit zero values through a non-nil pointer.
func TransformFields(data any, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ParseID parses a positive integer identifier taken from a path parameter.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}

// RoundMoney rounds an amount to whole cents.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func BuildCacheKey(prefix string, parts ...any) string {
	key := prefix

	for _, part := range parts {
		key = fmt.Sprintf("%s:%v", key, part)
	}

	return key
}

// GenerationKey names the counter that versions every key cached under prefix.
func GenerationKey(prefix string) string {
	return "generation:" + prefix
}

// BuildVersionedCacheKey builds a key under the current generation of prefix. Values saved under an
// earlier generation are never read again. An empty key means the generation could not be read.
func BuildVersionedCacheKey(ctx context.Context, redisCache cache.RedisCache, prefix string, parts ...any) string {
	var generation int64

	if err := redisCache.Get(ctx, GenerationKey(prefix), &generation); err != nil && !cache.IsMiss(err) {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to read cache generation, bypassing cache")

		return ""
	}

	return BuildCacheKey(fmt.Sprintf("%s:g%d", prefix, generation), parts...)
}

// SaveCacheAsync stores value under key in the background. An empty key is skipped.
func SaveCacheAsync(ctx context.Context, redisCache cache.RedisCache, key string, value any, ttl int) {
	if key == "" {
		return
	}

	go func() {
		if err := redisCache.Save(context.WithoutCancel(ctx), key, value, ttl); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()
}

// InvalidateCaches moves every prefix to a new generation, then removes the entries cached under it.
// It returns once the generations have moved, so reads after a write never see older values.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	for _, prefix := range prefixes {
		if _, err := redisCache.Increment(ctx, GenerationKey(prefix)); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to advance cache generation")
		}

		if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}
