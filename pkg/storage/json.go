package storage

import (
	"encoding/json"
	"fmt"
)

// JSONStore reads and writes JSON documents in a KeyValue.
type JSONStore struct {
	kv KeyValue
}

func NewJSONStore(kv KeyValue) *JSONStore {
	return &JSONStore{kv: kv}
}

// KV returns the underlying KeyValue.
func (j *JSONStore) KV() KeyValue {
	return j.kv
}

// PutJSON stores v encoded as JSON under key.
func (j *JSONStore) PutJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON for %s: %w", key, err)
	}
	return j.kv.Set(key, string(data))
}

// GetJSON decodes the value under key into v. It reports found=false for a
// missing key and wraps ErrMalformedValue when the stored text is not valid
// JSON for v.
func (j *JSONStore) GetJSON(key string, v any) (found bool, err error) {
	raw, ok, err := j.kv.Get(key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrMalformedValue, key, err)
	}
	return true, nil
}

// Has reports whether key is present.
func (j *JSONStore) Has(key string) (bool, error) {
	_, ok, err := j.kv.Get(key)
	return ok, err
}

func (j *JSONStore) Delete(key string) error {
	return j.kv.Remove(key)
}
