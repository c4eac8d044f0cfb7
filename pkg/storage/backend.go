// Package storage provides the bucketed byte store that backs the app's
// string key-value namespace. Backends exist for memory, bbolt and SQLite;
// KV adapts any of them to the flat Get/Set/Remove/Keys surface the injector
// and dashboard readers consume.
package storage

// Backend is a bucketed key-value store. Values are raw bytes; callers pick
// the encoding (everything in this module stores UTF-8 JSON).
type Backend interface {
	// Bucket operations
	CreateBucket(name []byte) error
	DeleteBucket(name []byte) error
	BucketExists(name []byte) (bool, error)

	// KV operations within buckets. Get returns nil for a missing key.
	Put(bucket, key, value []byte) error
	Get(bucket, key []byte) ([]byte, error)
	Delete(bucket, key []byte) error

	// ForEach visits keys in ascending byte order.
	ForEach(bucket []byte, fn func(k, v []byte) error) error

	// Multi-key operations
	Update(fn func(tx Transaction) error) error
	View(fn func(tx Transaction) error) error

	Close() error
}

// Transaction groups bucket operations. Writes made through an Update
// transaction are applied together or not at all on the persistent backends.
type Transaction interface {
	CreateBucket(name []byte) error
	DeleteBucket(name []byte) error
	// Bucket returns nil if the bucket does not exist.
	Bucket(name []byte) Bucket

	ForEachBucket(fn func(name []byte) error) error
}

// Bucket is a single bucket inside a transaction.
type Bucket interface {
	Put(key, value []byte) error
	Get(key []byte) []byte
	Delete(key []byte) error
	ForEach(fn func(k, v []byte) error) error
}
