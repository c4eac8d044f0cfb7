package storage

import "errors"

var (
	ErrBucketNotFound = errors.New("bucket not found")
	ErrUnknownBackend = errors.New("unknown storage backend")
	ErrMalformedValue = errors.New("malformed stored value")
)
