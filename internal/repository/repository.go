package repository

import (
	"Ripple/internal/pkg/kv"
	"context"
	"errors"

	"github.com/goccy/go-json"
)

// getEntity 读取并解码单条记录，键不存在时返回 (nil, nil)，
// 由调用方决定 not-found 语义（404 还是按缺省处理）
func getEntity[T any](ctx context.Context, store kv.Store, key string) (*T, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var entity T
	if err = json.Unmarshal(raw, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func putEntity[T any](ctx context.Context, store kv.Store, key string, entity *T) error {
	raw, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, raw)
}

func putEntityNX[T any](ctx context.Context, store kv.Store, key string, entity *T) (bool, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return false, err
	}
	return store.SetNX(ctx, key, raw)
}

// updateEntity 对单条记录做原子读-改-写，键不存在时返回 kv.ErrKeyNotFound。
// 计数器一律走这里，避免并发丢失更新。
func updateEntity[T any](ctx context.Context, store kv.Store, key string, fn func(*T)) (*T, error) {
	var updated *T
	err := store.Update(ctx, key, func(old []byte, found bool) ([]byte, error) {
		if !found {
			return nil, kv.ErrKeyNotFound
		}
		var entity T
		if err := json.Unmarshal(old, &entity); err != nil {
			return nil, err
		}
		fn(&entity)
		updated = &entity
		return json.Marshal(&entity)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// scanEntities 前缀枚举并解码，顺序不保证
func scanEntities[T any](ctx context.Context, store kv.Store, prefix string) ([]*T, error) {
	entries, err := store.ScanPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}
	entities := make([]*T, 0, len(entries))
	for _, e := range entries {
		var entity T
		if err = json.Unmarshal(e.Value, &entity); err != nil {
			return nil, err
		}
		entities = append(entities, &entity)
	}
	return entities, nil
}
