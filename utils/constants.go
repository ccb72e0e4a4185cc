// File: utils/constants.go
package utils

import "time"

// ProfileCachePrefix is the prefix used for Redis customer profile cache keys.
const ProfileCachePrefix = "profile:"

// ProfileCacheTTL is the time-to-live for customer profile cache entries.
const ProfileCacheTTL = 5 * time.Minute
