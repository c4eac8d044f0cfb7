package storage

import (
	"fmt"
	"sort"
)

// DefaultBucket holds the app namespace when no bucket is configured.
const DefaultBucket = "localStorage"

// KeyValue is a flat string namespace with string values, the shape of the
// browser storage the dashboard modules write to.
type KeyValue interface {
	// Get reports ok=false for a missing key.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	// Remove is a no-op for a missing key.
	Remove(key string) error
	// Keys returns every key in ascending order.
	Keys() ([]string, error)
}

// BucketKV exposes one Backend bucket as a KeyValue.
type BucketKV struct {
	backend Backend
	bucket  []byte
}

// NewBucketKV creates bucket if needed and returns a KeyValue over it.
func NewBucketKV(b Backend, bucket string) (*BucketKV, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}
	if err := b.CreateBucket([]byte(bucket)); err != nil {
		return nil, fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return &BucketKV{backend: b, bucket: []byte(bucket)}, nil
}

// NewMemoryKV returns an empty in-memory KeyValue.
func NewMemoryKV() *BucketKV {
	kv, err := NewBucketKV(NewMemoryBackend(), DefaultBucket)
	if err != nil {
		// MemoryBackend.CreateBucket cannot fail
		panic(err)
	}
	return kv
}

func (kv *BucketKV) Get(key string) (string, bool, error) {
	v, err := kv.backend.Get(kv.bucket, []byte(key))
	if err != nil {
		return "", false, err
	}
	if v == nil {
		return "", false, nil
	}
	return string(v), true, nil
}

func (kv *BucketKV) Set(key, value string) error {
	return kv.backend.Put(kv.bucket, []byte(key), []byte(value))
}

func (kv *BucketKV) Remove(key string) error {
	return kv.backend.Delete(kv.bucket, []byte(key))
}

func (kv *BucketKV) Keys() ([]string, error) {
	var keys []string
	err := kv.backend.View(func(tx Transaction) error {
		bkt := tx.Bucket(kv.bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, kv.bucket)
		}
		return bkt.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(keys)
	return keys, nil
}

// Bucket returns the bucket name.
func (kv *BucketKV) Bucket() string {
	return string(kv.bucket)
}

// Close closes the underlying backend.
func (kv *BucketKV) Close() error {
	return kv.backend.Close()
}
