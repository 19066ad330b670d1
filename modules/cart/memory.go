package cart

import (
	"context"
	"sync"
)

// MemoryBucket is a process-local Bucket. Set Fail to make every call
// return that error.
type MemoryBucket struct {
	mu     sync.RWMutex
	values map[string][]byte
	saves  int
	Fail   error
}

func NewMemoryBucket() *MemoryBucket {
	return &MemoryBucket{values: make(map[string][]byte)}
}

func (b *MemoryBucket) Restore(ctx context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.Fail != nil {
		return nil, b.Fail
	}
	value, exists := b.values[key]
	if !exists {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (b *MemoryBucket) Save(ctx context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Fail != nil {
		return b.Fail
	}
	b.values[key] = append([]byte(nil), value...)
	b.saves++
	return nil
}

// Saves counts successful writes.
func (b *MemoryBucket) Saves() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.saves
}

func (b *MemoryBucket) Close() error {
	return nil
}
