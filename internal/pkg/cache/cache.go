// Package cache holds the in-process result caches and the redis-backed
// snapshot cache. In-process entries carry their own expiry: a janitor sweep
// evicts them periodically, and every read re-checks expiry so an entry the
// sweep has not yet reached is still never served stale.
package cache

import "github.com/pkg/errors"

var ErrNotFound = errors.New("cache: entry not found")
