package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound 键不存在
var ErrKeyNotFound = errors.New("key not found")

// Entry 一条键值记录
type Entry struct {
	Key   string
	Value []byte
}

// UpdateFunc 对单键执行读-改-写。found 为 false 时 old 为 nil。
// 返回 (nil, nil) 表示删除该键。
type UpdateFunc func(old []byte, found bool) ([]byte, error)

// Store 通用键值存储。所有实体都以 <kind>:<disambiguator> 形式的键存放，
// ScanPrefix 是全命名空间 O(n) 的枚举，顺序不保证，由调用方自行排序。
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetNX 仅在键不存在时写入，返回是否写入成功
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
	Delete(ctx context.Context, key string) error
	ScanPrefix(ctx context.Context, prefix string) ([]Entry, error)
	// Update 对单键的原子读-改-写，用于计数器等字段的并发安全修改
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
