package storage

import "fmt"

// Backend kinds accepted by Open.
const (
	KindMemory = "memory"
	KindBbolt  = "bbolt"
	KindSQLite = "sqlite"
)

// Open builds a KeyValue over the named backend kind. path is ignored for
// the memory backend.
func Open(kind, path, bucket string) (*BucketKV, error) {
	var (
		b   Backend
		err error
	)
	switch kind {
	case KindMemory:
		b = NewMemoryBackend()
	case KindBbolt:
		b, err = NewBboltBackend(path)
	case KindSQLite:
		b, err = NewSQLiteBackend(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
	if err != nil {
		return nil, err
	}

	kv, err := NewBucketKV(b, bucket)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	return kv, nil
}
