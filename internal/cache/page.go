// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides a Valkey-backed full-page HTML cache for the public
// site. Rendered pages are stored keyed by request path so repeat visits
// skip the DB queries and template execution entirely. Admin writes
// invalidate the affected paths via PathsFor.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix is the Valkey key prefix for cached pages.
	pageKeyPrefix = "page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute
)

// PageCache manages full-page HTML caching in Valkey.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a new page cache backed by the given Valkey client.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl == 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get retrieves cached HTML for a request path. Returns false on miss.
func (pc *PageCache) Get(ctx context.Context, path string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, pageKeyPrefix+path).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("page cache get error", "path", path, "error", err)
		return nil, false
	}
	slog.Debug("page cache hit", "path", path)
	return val, true
}

// Set stores rendered HTML for a request path with the configured TTL.
func (pc *PageCache) Set(ctx context.Context, path string, html []byte) {
	if err := pc.client.Set(ctx, pageKeyPrefix+path, html, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set error", "path", path, "error", err)
	}
}

// Invalidate removes the given paths from the cache.
func (pc *PageCache) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}
	keys := make([]string, len(paths))
	for i, p := range paths {
		keys[i] = pageKeyPrefix + p
	}
	if err := pc.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("page cache invalidate error", "paths", paths, "error", err)
	}
	slog.Debug("page cache invalidated", "paths", paths)
}

// InvalidateAll removes all cached pages by scanning for the prefix.
func (pc *PageCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, pageKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("page cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("page cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("page cache fully cleared", "deleted", deleted)
	}
}

// Entity identifies what kind of content an admin write touched, so the
// right public paths can be invalidated.
type Entity string

const (
	EntityService     Entity = "service"
	EntityBlogPost    Entity = "blog_post"
	EntityCategory    Entity = "category"
	EntitySpecialty   Entity = "specialty"
	EntityStaff       Entity = "staff"
	EntityTestimonial Entity = "testimonial"
	EntityHero        Entity = "hero"
	EntitySettings    Entity = "settings"
)

// PathsFor maps an entity write to the public paths it can affect. The slug
// is only used for entities with detail pages; pass "" otherwise.
func PathsFor(entity Entity, slug string) []string {
	switch entity {
	case EntityService:
		paths := []string{"/", "/services"}
		if slug != "" {
			paths = append(paths, "/services/"+slug)
		}
		return paths
	case EntityBlogPost:
		paths := []string{"/", "/blog"}
		if slug != "" {
			paths = append(paths, "/blog/"+slug)
		}
		return paths
	case EntityCategory, EntitySpecialty:
		return []string{"/", "/services"}
	case EntityStaff:
		return []string{"/about"}
	case EntityTestimonial, EntityHero, EntitySettings:
		return []string{"/", "/about"}
	}
	return nil
}
