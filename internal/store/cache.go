package store

import (
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// queryCache holds List and Get results so repeated reads within the
// TTL skip the database. Mutations purge every entry for the mutated
// kind + workspace, so same-process readers observe their own writes
// on the next call.
type queryCache struct {
	lru *expirable.LRU[string, any]
}

func newQueryCache(size int, ttl time.Duration) *queryCache {
	if size <= 0 {
		size = 512
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &queryCache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (c *queryCache) get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *queryCache) set(key string, value any) {
	c.lru.Add(key, value)
}

// invalidate removes every cached entry for the kind + workspace pair.
func (c *queryCache) invalidate(kind Kind, workspaceID string) {
	prefix := cachePrefix(kind, workspaceID)
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}

func cachePrefix(kind Kind, workspaceID string) string {
	return string(kind) + "|" + workspaceID + "|"
}

func listKey(kind Kind, workspaceID string, filters []Filter) string {
	var b strings.Builder
	b.WriteString(cachePrefix(kind, workspaceID))
	b.WriteString("list")
	for _, f := range filters {
		b.WriteString("|")
		b.WriteString(f.Field)
		b.WriteString("=")
		b.WriteString(f.Value)
	}
	return b.String()
}

func getKey(kind Kind, workspaceID, id string) string {
	return cachePrefix(kind, workspaceID) + "get|" + id
}
