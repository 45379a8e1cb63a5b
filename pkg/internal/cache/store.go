package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	gocacheStore "github.com/eko/gocache/store/go_cache/v4"
	redisStore "github.com/eko/gocache/store/redis/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// NewStore builds the backing store named by cache.driver in the settings.
func NewStore() (store.StoreInterface, error) {
	switch driver := viper.GetString("cache.driver"); driver {
	case DriverRedis:
		return NewRedisStore(
			viper.GetString("cache.redis.addr"),
			viper.GetString("cache.redis.password"),
			viper.GetInt("cache.redis.db"),
		), nil
	case DriverMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", driver)
	}
}

func NewRedisStore(addr, password string, db int) store.StoreInterface {
	return redisStore.NewRedis(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}))
}

// NewMemoryStore keeps everything in process, for single node deployments and tests.
func NewMemoryStore() store.StoreInterface {
	return gocacheStore.NewGoCache(gocache.New(30*time.Minute, 10*time.Minute))
}

func NewMarshaler(s store.StoreInterface) *marshaler.Marshaler {
	return marshaler.New(cache.New[any](s))
}

func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, store.NotFound{})
}
