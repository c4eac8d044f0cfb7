package storage

import (
	"fmt"
	"sort"
	"sync"
)

// MemoryBackend implements Backend using in-memory maps (not persistent).
// It is the default store for tests and for the suite runner's fixtures.
type MemoryBackend struct {
	buckets map[string]map[string][]byte
	mu      sync.RWMutex
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		buckets: make(map[string]map[string][]byte),
	}
}

func (m *MemoryBackend) CreateBucket(name []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.buckets[string(name)]; !exists {
		m.buckets[string(name)] = make(map[string][]byte)
	}
	return nil
}

func (m *MemoryBackend) DeleteBucket(name []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets, string(name))
	return nil
}

func (m *MemoryBackend) BucketExists(name []byte) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.buckets[string(name)]
	return exists, nil
}

func (m *MemoryBackend) Put(bucket, key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	// Copy value to prevent external modifications
	bkt[string(key)] = cloneBytes(value)
	return nil
}

func (m *MemoryBackend) Get(bucket, key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	value, exists := bkt[string(key)]
	if !exists {
		return nil, nil
	}
	return cloneBytes(value), nil
}

func (m *MemoryBackend) Delete(bucket, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	delete(bkt, string(key))
	return nil
}

// ForEach iterates over a snapshot of the bucket taken under the read lock,
// so fn may write to the backend.
func (m *MemoryBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	m.mu.RLock()
	bkt, exists := m.buckets[string(bucket)]
	if !exists {
		m.mu.RUnlock()
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	keys := make([]string, 0, len(bkt))
	for k := range bkt {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([][]byte, len(keys))
	for i, k := range keys {
		values[i] = cloneBytes(bkt[k])
	}
	m.mu.RUnlock()

	for i, k := range keys {
		if err := fn([]byte(k), values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Update runs fn against the live maps; the memory backend has no rollback.
func (m *MemoryBackend) Update(fn func(tx Transaction) error) error {
	return fn(&memoryTransaction{backend: m})
}

func (m *MemoryBackend) View(fn func(tx Transaction) error) error {
	return fn(&memoryTransaction{backend: m})
}

func (m *MemoryBackend) Close() error {
	return nil
}

type memoryTransaction struct {
	backend *MemoryBackend
}

func (t *memoryTransaction) CreateBucket(name []byte) error {
	return t.backend.CreateBucket(name)
}

func (t *memoryTransaction) DeleteBucket(name []byte) error {
	return t.backend.DeleteBucket(name)
}

func (t *memoryTransaction) Bucket(name []byte) Bucket {
	if ok, _ := t.backend.BucketExists(name); !ok {
		return nil
	}
	return &memoryBucket{backend: t.backend, name: name}
}

func (t *memoryTransaction) ForEachBucket(fn func(name []byte) error) error {
	t.backend.mu.RLock()
	names := make([]string, 0, len(t.backend.buckets))
	for name := range t.backend.buckets {
		names = append(names, name)
	}
	t.backend.mu.RUnlock()
	sort.Strings(names)

	for _, name := range names {
		if err := fn([]byte(name)); err != nil {
			return err
		}
	}
	return nil
}

type memoryBucket struct {
	backend *MemoryBackend
	name    []byte
}

func (b *memoryBucket) Put(key, value []byte) error {
	return b.backend.Put(b.name, key, value)
}

func (b *memoryBucket) Get(key []byte) []byte {
	value, _ := b.backend.Get(b.name, key)
	return value
}

func (b *memoryBucket) Delete(key []byte) error {
	return b.backend.Delete(b.name, key)
}

func (b *memoryBucket) ForEach(fn func(k, v []byte) error) error {
	return b.backend.ForEach(b.name, fn)
}

// cloneBytes copies b, keeping empty values non-nil so they stay
// distinguishable from missing keys.
func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
