package binding

import (
	"context"
	"strconv"

	"github.com/hhkbp2/kvbench"
	"github.com/redis/go-redis/v9"
)

const (
	PropertyRedisAddr            = "redis.addr"
	PropertyRedisAddrDefault     = "127.0.0.1:6379"
	PropertyRedisPassword        = "redis.password"
	PropertyRedisPasswordDefault = ""
	PropertyRedisDB              = "redis.db"
	PropertyRedisDBDefault       = "0"
)

// RedisStore benchmarks a Redis server. Rows live under "table/key"; the
// transactional write goes through a MULTI/EXEC pipeline so each upsert is
// one transaction, and batch inserts are pipelined SETs.
type RedisStore struct {
	*kvbench.StoreBase
	client *redis.Client
}

func NewRedisStore() *RedisStore {
	return &RedisStore{
		StoreBase: kvbench.NewStoreBase(),
	}
}

func redisKey(table, key string) string {
	return table + "/" + key
}

func (self *RedisStore) Init() error {
	props := self.GetProperties()
	db, err := strconv.Atoi(props.GetDefault(PropertyRedisDB, PropertyRedisDBDefault))
	if err != nil {
		return err
	}
	poolSize, err := strconv.Atoi(props.GetDefault(
		kvbench.PropertyPoolSize, kvbench.PropertyPoolSizeDefault))
	if err != nil {
		return err
	}
	self.client = redis.NewClient(&redis.Options{
		Addr:     props.GetDefault(PropertyRedisAddr, PropertyRedisAddrDefault),
		Password: props.GetDefault(PropertyRedisPassword, PropertyRedisPasswordDefault),
		DB:       db,
		PoolSize: poolSize,
	})
	return self.client.Ping(context.Background()).Err()
}

func (self *RedisStore) Cleanup() error {
	if self.client != nil {
		return self.client.Close()
	}
	return nil
}

func (self *RedisStore) Read(table, keyColumn, payloadColumn, key string) (string, error) {
	payload, err := self.client.Get(context.Background(), redisKey(table, key)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return payload, nil
}

func (self *RedisStore) WriteInTransaction(table, keyColumn, payloadColumn, key, payload string) error {
	ctx := context.Background()
	_, err := self.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKey(table, key), payload, 0)
		return nil
	})
	return err
}

func (self *RedisStore) BatchInsert(table, keyColumn, payloadColumn string, rows []kvbench.Row) error {
	ctx := context.Background()
	_, err := self.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, row := range rows {
			pipe.Set(ctx, redisKey(table, row.Key), row.Payload, 0)
		}
		return nil
	})
	return err
}
