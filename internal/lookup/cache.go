package lookup

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachingProvider memoizes successful lookups from the wrapped provider.
// Entries live in an in-process map, or in Redis when a client is supplied,
// so repeated lookups of the same name skip the remote API. Cache failures
// never fail the lookup; the wrapped provider is asked instead.
type CachingProvider struct {
	next Provider
	ttl  time.Duration
	rdb  *redis.Client

	mu  sync.RWMutex
	mem map[string]cacheEntry
}

type cacheEntry struct {
	facts   FoodFacts
	expires time.Time
}

// NewCachingProvider wraps next with an in-process TTL cache.
func NewCachingProvider(next Provider, ttl time.Duration) *CachingProvider {
	return &CachingProvider{
		next: next,
		ttl:  ttl,
		mem:  make(map[string]cacheEntry),
	}
}

// NewRedisCachingProvider wraps next with a Redis-backed TTL cache. A nil
// client falls back to the in-process map.
func NewRedisCachingProvider(next Provider, ttl time.Duration, rdb *redis.Client) *CachingProvider {
	p := NewCachingProvider(next, ttl)
	p.rdb = rdb
	return p
}

func cacheKey(name string) string {
	return "lookup:" + strings.ToLower(strings.TrimSpace(name))
}

func (p *CachingProvider) Lookup(ctx context.Context, name string) (*FoodFacts, error) {
	key := cacheKey(name)

	if facts, ok := p.get(ctx, key); ok {
		return facts, nil
	}

	facts, err := p.next.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	p.put(ctx, key, *facts)
	return facts, nil
}

func (p *CachingProvider) get(ctx context.Context, key string) (*FoodFacts, bool) {
	if p.rdb != nil {
		data, err := p.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var facts FoodFacts
			if err := json.Unmarshal(data, &facts); err == nil {
				return &facts, true
			}
		} else if err != redis.Nil {
			log.Printf("Warning: lookup cache read failed: %v", err)
		}
		return nil, false
	}

	p.mu.RLock()
	entry, ok := p.mem[key]
	p.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		return nil, false
	}
	facts := entry.facts
	return &facts, true
}

func (p *CachingProvider) put(ctx context.Context, key string, facts FoodFacts) {
	if p.rdb != nil {
		data, err := json.Marshal(facts)
		if err == nil {
			if err := p.rdb.Set(ctx, key, data, p.ttl).Err(); err != nil {
				log.Printf("Warning: lookup cache write failed: %v", err)
			}
		}
		return
	}

	p.mu.Lock()
	p.mem[key] = cacheEntry{facts: facts, expires: time.Now().Add(p.ttl)}
	p.mu.Unlock()
}
