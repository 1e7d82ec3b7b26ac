package kv

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

const updateRetryTimes = 16

// redisStore 基于 Redis 的 Store 实现
type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore 用已建立的 Redis 连接构造 Store
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, 0).Err()
}

func (s *redisStore) SetNX(ctx context.Context, key string, value []byte) (bool, error) {
	return s.rdb.SetNX(ctx, key, value, 0).Result()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *redisStore) ScanPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var entries []Entry
	iter := s.rdb.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		value, err := s.rdb.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// SCAN 与 GET 之间键被删除，跳过
				continue
			}
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Update 通过 WATCH/MULTI 乐观事务实现单键原子读-改-写，
// 并发冲突时重试，避免计数器丢失更新
func (s *redisStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	txn := func(tx *redis.Tx) error {
		old, err := tx.Get(ctx, key).Bytes()
		found := true
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				return err
			}
			old, found = nil, false
		}

		next, err := fn(old, found)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if next == nil {
				pipe.Del(ctx, key)
			} else {
				pipe.Set(ctx, key, next, 0)
			}
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < updateRetryTimes; i++ {
		err = s.rdb.Watch(ctx, txn, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}
