package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lodge/shared/cache"
	"lodge/shared/dto"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins the given parts into a single colon-separated cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// BuildCacheKeyWithQuery derives a cache key from a prefix plus the query
// parameters and filter that shaped the result being cached.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	argBytes, err := json.Marshal(args)
	if err != nil {
		argBytes = []byte{}
	}

	return BuildCacheKey(
		prefix,
		fmt.Sprintf("%d:%d:%s:%s", params.Page, params.Limit, params.SortBy, params.SortDir),
		where,
		string(argBytes),
	)
}

// InvalidateCaches clears every cache entry under the given prefix.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// FilterByID builds a filter group matching a single row by its primary key.
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
