// File: utils/constants.go
package utils

import "time"

// CartCachePrefix is the prefix used for redis cart keys.
const CartCachePrefix = "cart:"

// CartCacheTTL is how long an untouched cart survives in redis.
const CartCacheTTL = 30 * 24 * time.Hour
