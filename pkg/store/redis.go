package store

import (
	"context"
	stderrors "errors"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
)

// DefaultRedisKey is the hash holding all projects.
const DefaultRedisKey = "hydrodraw:projects"

// RedisStore keeps every project as a field of one Redis hash, keyed by
// project id.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to addr and pings it. An empty key uses
// DefaultRedisKey.
func NewRedisStore(ctx context.Context, addr, key string) (*RedisStore, error) {
	if key == "" {
		key = DefaultRedisKey
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, storageErr(err, "connect redis %s", addr)
	}
	return &RedisStore{client: client, key: key}, nil
}

func (s *RedisStore) List(ctx context.Context) ([]*drawing.Project, error) {
	all, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, storageErr(err, "list projects")
	}
	out := make([]*drawing.Project, 0, len(all))
	for _, data := range all {
		p, err := decode([]byte(data))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	// Hash fields come back unordered.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*drawing.Project, error) {
	data, err := s.client.HGet(ctx, s.key, id).Result()
	if stderrors.Is(err, redis.Nil) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, storageErr(err, "get project %s", id)
	}
	return decode([]byte(data))
}

func (s *RedisStore) Create(ctx context.Context, p *drawing.Project) error {
	data, err := encode(p)
	if err != nil {
		return err
	}
	ok, err := s.client.HSetNX(ctx, s.key, p.ID, data).Result()
	if err != nil {
		return storageErr(err, "create project %s", p.ID)
	}
	if !ok {
		return exists(p.ID)
	}
	return nil
}

func (s *RedisStore) Update(ctx context.Context, p *drawing.Project) error {
	data, err := encode(p)
	if err != nil {
		return err
	}
	// WATCH the hash so a concurrent delete cannot be resurrected.
	err = s.client.Watch(ctx, func(tx *redis.Tx) error {
		found, err := tx.HExists(ctx, s.key, p.ID).Result()
		if err != nil {
			return err
		}
		if !found {
			return notFound(p.ID)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.key, p.ID, data)
			return nil
		})
		return err
	}, s.key)
	if err != nil {
		if stderrors.Is(err, ErrNotFound) {
			return err
		}
		return storageErr(err, "update project %s", p.ID)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.HDel(ctx, s.key, id).Result()
	if err != nil {
		return storageErr(err, "delete project %s", id)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

// Close closes the client.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
