package utils

import "time"

const (
	// AuthCachePrefix is the Redis key prefix for cached auth token hashes.
	AuthCachePrefix = "auth:"
	// AuthCacheTTL is how long a cached token hash lives before revalidation.
	AuthCacheTTL = 10 * time.Minute

	// AvailabilityCachePrefix is the Redis key prefix for cached availability responses.
	AvailabilityCachePrefix = "availability:"
	// AvailabilityCacheTTL keeps availability reads cheap without serving stale slots for long.
	AvailabilityCacheTTL = 30 * time.Second
)
