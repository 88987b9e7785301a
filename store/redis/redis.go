// Package redis provides a Redis-backed site configuration store.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"github.com/ryhazerus/siteurl/store"
)

// Compile-time interface check.
var _ store.Store = (*RedisStore)(nil)

// RedisStore is a Store backed by Redis. Each site is stored as a Redis hash
// with fields "base_url", "index_page", and "allowed_hosts" (JSON array). A
// set of site names is maintained alongside so the store can be enumerated.
type RedisStore struct {
	client *redis.Client
}

const namesKey = "siteurl:sites"

// NewRedisStore creates a new Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Lookup returns the configuration stored for the named site.
func (r *RedisStore) Lookup(ctx context.Context, name string) (store.Site, error) {
	vals, err := r.client.HGetAll(ctx, siteKey(name)).Result()
	if err != nil {
		return store.Site{}, fmt.Errorf("siteurl/store/redis: lookup: %w", err)
	}
	if len(vals) == 0 {
		return store.Site{}, store.ErrNotFound
	}

	site := store.Site{
		BaseURL:   vals["base_url"],
		IndexPage: vals["index_page"],
	}
	if hosts := vals["allowed_hosts"]; hosts != "" {
		if err := json.Unmarshal([]byte(hosts), &site.AllowedHosts); err != nil {
			return store.Site{}, fmt.Errorf("siteurl/store/redis: decode allowed hosts: %w", err)
		}
	}
	return site, nil
}

// Put creates or replaces the configuration for the named site.
func (r *RedisStore) Put(ctx context.Context, name string, site store.Site) error {
	hosts := []byte("[]")
	if site.AllowedHosts != nil {
		var err error
		hosts, err = json.Marshal(site.AllowedHosts)
		if err != nil {
			return fmt.Errorf("siteurl/store/redis: encode allowed hosts: %w", err)
		}
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, siteKey(name),
		"base_url", site.BaseURL,
		"index_page", site.IndexPage,
		"allowed_hosts", string(hosts),
	)
	pipe.SAdd(ctx, namesKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("siteurl/store/redis: put: %w", err)
	}
	return nil
}

// Remove deletes the configuration for the named site.
func (r *RedisStore) Remove(ctx context.Context, name string) error {
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, siteKey(name))
	pipe.SRem(ctx, namesKey, name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("siteurl/store/redis: remove: %w", err)
	}
	return nil
}

// Names returns the names of all stored sites, sorted.
func (r *RedisStore) Names(ctx context.Context) ([]string, error) {
	names, err := r.client.SMembers(ctx, namesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("siteurl/store/redis: names: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Close closes the underlying Redis client.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

func siteKey(name string) string {
	return "siteurl:site:" + name
}
