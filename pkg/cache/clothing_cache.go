package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ClothingCacheTTL is the time-to-live for cached clothing items.
	ClothingCacheTTL = 24 * time.Hour

	clothingCacheKeyPrefix = "clothing"

	// generationTTL outlives any entry written under an older generation.
	generationTTL = ClothingCacheTTL + time.Hour
)

// CachedClothing is the denormalized clothing read model stored in Redis as a hash.
// Optional fields are empty strings when absent.
type CachedClothing struct {
	ID          int64
	OwnerID     uuid.UUID
	Category    string
	Color       string
	Material    string
	SubType     string
	Seasons     []string
	Occasions   []string
	DisplayName string
	CreatedAt   time.Time
}

// ClothingCache reads and writes clothing entries keyed "clothing:{ownerID}:{id}".
// Keys are owner-scoped so one user's entry can never answer another's lookup.
type ClothingCache struct {
	client *RedisClient
}

// NewClothingCache creates a ClothingCache backed by r.
func NewClothingCache(r *RedisClient) *ClothingCache {
	return &ClothingCache{client: r}
}

// Get returns redis.Nil when the entry is missing or expired.
func (c *ClothingCache) Get(ctx context.Context, ownerID uuid.UUID, id int64) (*CachedClothing, error) {
	vals, err := c.client.Client().HGetAll(ctx, c.key(ownerID, id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}

	parsedID, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	owner, err := uuid.Parse(vals["owner_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse owner_id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}
	var seasons, occasions []string
	if err := json.Unmarshal([]byte(vals["seasons"]), &seasons); err != nil {
		return nil, fmt.Errorf("cache parse seasons: %w", err)
	}
	if err := json.Unmarshal([]byte(vals["occasions"]), &occasions); err != nil {
		return nil, fmt.Errorf("cache parse occasions: %w", err)
	}

	return &CachedClothing{
		ID:          parsedID,
		OwnerID:     owner,
		Category:    vals["category"],
		Color:       vals["color"],
		Material:    vals["material"],
		SubType:     vals["sub_type"],
		Seasons:     seasons,
		Occasions:   occasions,
		DisplayName: vals["display_name"],
		CreatedAt:   createdAt,
	}, nil
}

// ErrStaleEntry is returned by Set when the entry was evicted after the caller
// read its generation. The write is dropped.
var ErrStaleEntry = errors.New("cache entry evicted since read")

// Generation returns the entry's eviction counter. Read it before loading the
// item from Postgres and hand it to Set.
func (c *ClothingCache) Generation(ctx context.Context, ownerID uuid.UUID, id int64) (int64, error) {
	gen, err := c.client.Client().Get(ctx, c.genKey(ownerID, id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache generation: %w", err)
	}
	return gen, nil
}

// Set writes the hash and its TTL, but only while the eviction counter still
// equals gen. The check and the write share one WATCH/MULTI, so an eviction
// racing the caller's Postgres read always wins.
func (c *ClothingCache) Set(ctx context.Context, item *CachedClothing, gen int64) error {
	seasons, err := json.Marshal(nonNil(item.Seasons))
	if err != nil {
		return fmt.Errorf("cache encode seasons: %w", err)
	}
	occasions, err := json.Marshal(nonNil(item.Occasions))
	if err != nil {
		return fmt.Errorf("cache encode occasions: %w", err)
	}

	key := c.key(item.OwnerID, item.ID)
	genKey := c.genKey(item.OwnerID, item.ID)
	err = c.client.Client().Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return ErrStaleEntry
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.HSet(ctx, key,
				"id", strconv.FormatInt(item.ID, 10),
				"owner_id", item.OwnerID.String(),
				"category", item.Category,
				"color", item.Color,
				"material", item.Material,
				"sub_type", item.SubType,
				"seasons", string(seasons),
				"occasions", string(occasions),
				"display_name", item.DisplayName,
				"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
			)
			pipe.Expire(ctx, key, ClothingCacheTTL)
			return nil
		})
		return err
	}, genKey)
	switch {
	case errors.Is(err, ErrStaleEntry), errors.Is(err, redis.TxFailedErr):
		return ErrStaleEntry
	case err != nil:
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete evicts one entry and bumps its generation so in-flight warms of the
// old value are rejected. Missing keys are not an error.
func (c *ClothingCache) Delete(ctx context.Context, ownerID uuid.UUID, id int64) error {
	genKey := c.genKey(ownerID, id)
	pipe := c.client.Client().TxPipeline()
	pipe.Incr(ctx, genKey)
	pipe.Expire(ctx, genKey, generationTTL)
	pipe.Del(ctx, c.key(ownerID, id))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *ClothingCache) key(ownerID uuid.UUID, id int64) string {
	return fmt.Sprintf("%s:%s:%d", clothingCacheKeyPrefix, ownerID, id)
}

func (c *ClothingCache) genKey(ownerID uuid.UUID, id int64) string {
	return c.key(ownerID, id) + ":gen"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
