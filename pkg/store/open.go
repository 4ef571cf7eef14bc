package store

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/hydrodraw/pkg/errors"
)

// Backend names.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend       string `toml:"backend"`
	Path          string `toml:"path"`
	RedisAddr     string `toml:"redis_addr"`
	RedisKey      string `toml:"redis_key"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// DefaultConfig returns the file backend in the default data directory.
func DefaultConfig() Config {
	return Config{
		Backend:       BackendFile,
		RedisAddr:     "localhost:6379",
		RedisKey:      DefaultRedisKey,
		MongoURI:      "mongodb://localhost:27017",
		MongoDatabase: "hydrodraw",
	}
}

// Open builds the configured backend, wrapped with observability hooks.
func Open(ctx context.Context, cfg Config) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Backend {
	case BackendFile, "":
		s, err = NewFileStore(cfg.Path)
	case BackendMemory:
		s = NewMemoryStore()
	case BackendSQLite:
		path := cfg.Path
		if path == "" {
			home, herr := os.UserHomeDir()
			if herr != nil {
				return nil, storageErr(herr, "get home dir")
			}
			path = filepath.Join(home, DefaultDataDir, "projects.db")
		}
		s, err = NewSQLiteStore(ctx, path)
	case BackendRedis:
		s, err = NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisKey)
	case BackendMongo:
		s, err = NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown store backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}
	name := cfg.Backend
	if name == "" {
		name = BackendFile
	}
	return Instrument(s, name), nil
}
