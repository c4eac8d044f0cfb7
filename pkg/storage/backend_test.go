package storage

import (
	"bytes"
	"errors"
	"testing"
)

var testBucket = []byte(DefaultBucket)

// backendTestSuite runs the shared contract against any Backend implementation
func backendTestSuite(t *testing.T, newBackend func() (Backend, func(), error)) {
	open := func(t *testing.T) Backend {
		t.Helper()
		backend, cleanup, err := newBackend()
		if err != nil {
			t.Fatalf("failed to create backend: %v", err)
		}
		t.Cleanup(cleanup)
		return backend
	}

	t.Run("CreateBucket", func(t *testing.T) {
		backend := open(t)

		if err := backend.CreateBucket(testBucket); err != nil {
			t.Fatalf("CreateBucket failed: %v", err)
		}
		exists, err := backend.BucketExists(testBucket)
		if err != nil {
			t.Fatalf("BucketExists failed: %v", err)
		}
		if !exists {
			t.Error("Bucket should exist after creation")
		}

		// Idempotent
		if err := backend.CreateBucket(testBucket); err != nil {
			t.Errorf("CreateBucket should be idempotent: %v", err)
		}
	})

	t.Run("DeleteBucket", func(t *testing.T) {
		backend := open(t)

		backend.CreateBucket(testBucket)
		backend.Put(testBucket, []byte("receipts"), []byte("[]"))
		if err := backend.DeleteBucket(testBucket); err != nil {
			t.Fatalf("DeleteBucket failed: %v", err)
		}
		if exists, _ := backend.BucketExists(testBucket); exists {
			t.Error("Bucket should not exist after deletion")
		}

		// Idempotent
		if err := backend.DeleteBucket(testBucket); err != nil {
			t.Errorf("DeleteBucket should be idempotent: %v", err)
		}

		// Recreated bucket starts empty
		backend.CreateBucket(testBucket)
		if got, _ := backend.Get(testBucket, []byte("receipts")); got != nil {
			t.Errorf("recreated bucket should be empty, got %s", got)
		}
	})

	t.Run("PutAndGet", func(t *testing.T) {
		backend := open(t)
		backend.CreateBucket(testBucket)

		key := []byte("powerUp:2026-01-15")
		value := []byte(`{"date":"2026-01-15","exercises":[]}`)
		if err := backend.Put(testBucket, key, value); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, err := backend.Get(testBucket, key)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, value) {
			t.Errorf("Get returned %s, want %s", got, value)
		}

		// Overwrite
		backend.Put(testBucket, key, []byte("{}"))
		if got, _ := backend.Get(testBucket, key); string(got) != "{}" {
			t.Errorf("Get after overwrite returned %s", got)
		}

		got, err = backend.Get(testBucket, []byte("nonexistent"))
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got != nil {
			t.Errorf("Get should return nil for non-existent key, got %s", got)
		}
	})

	t.Run("MissingBucket", func(t *testing.T) {
		backend := open(t)

		if err := backend.Put([]byte("nope"), []byte("k"), []byte("v")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Put into missing bucket: got %v, want ErrBucketNotFound", err)
		}
		if _, err := backend.Get([]byte("nope"), []byte("k")); !errors.Is(err, ErrBucketNotFound) {
			t.Errorf("Get from missing bucket: got %v, want ErrBucketNotFound", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		backend := open(t)
		backend.CreateBucket(testBucket)
		key := []byte("trips")
		backend.Put(testBucket, key, []byte("[]"))

		if err := backend.Delete(testBucket, key); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if got, _ := backend.Get(testBucket, key); got != nil {
			t.Error("Key should not exist after deletion")
		}
		if err := backend.Delete(testBucket, key); err != nil {
			t.Errorf("Delete of missing key should succeed: %v", err)
		}
	})

	t.Run("ForEachOrdered", func(t *testing.T) {
		backend := open(t)
		backend.CreateBucket(testBucket)

		for _, k := range []string{"powerUp:2026-01-17", "character_level", "bowling:week:2026-W02", "powerUp:2026-01-15"} {
			backend.Put(testBucket, []byte(k), []byte("1"))
		}

		var keys []string
		err := backend.ForEach(testBucket, func(k, v []byte) error {
			keys = append(keys, string(k))
			return nil
		})
		if err != nil {
			t.Fatalf("ForEach failed: %v", err)
		}
		want := []string{"bowling:week:2026-W02", "character_level", "powerUp:2026-01-15", "powerUp:2026-01-17"}
		if len(keys) != len(want) {
			t.Fatalf("ForEach visited %v, want %v", keys, want)
		}
		for i := range want {
			if keys[i] != want[i] {
				t.Errorf("ForEach order: got %v, want %v", keys, want)
				break
			}
		}
	})

	t.Run("Transactions", func(t *testing.T) {
		backend := open(t)

		err := backend.Update(func(tx Transaction) error {
			if err := tx.CreateBucket(testBucket); err != nil {
				return err
			}
			b := tx.Bucket(testBucket)
			if b == nil {
				t.Fatal("Bucket should not be nil")
			}
			if err := b.Put([]byte("meals"), []byte("[]")); err != nil {
				return err
			}
			return b.Put([]byte("trips"), []byte("[]"))
		})
		if err != nil {
			t.Fatalf("Update transaction failed: %v", err)
		}

		var got []byte
		err = backend.View(func(tx Transaction) error {
			b := tx.Bucket(testBucket)
			if b == nil {
				t.Fatal("Bucket should not be nil")
			}
			if tx.Bucket([]byte("missing")) != nil {
				t.Error("missing bucket should be nil")
			}
			got = append([]byte(nil), b.Get([]byte("meals"))...)
			return nil
		})
		if err != nil {
			t.Fatalf("View transaction failed: %v", err)
		}
		if string(got) != "[]" {
			t.Errorf("Got %s, want []", got)
		}
	})

	t.Run("ForEachBucket", func(t *testing.T) {
		backend := open(t)

		buckets := []string{"bucket1", "bucket2", "bucket3"}
		for _, name := range buckets {
			backend.CreateBucket([]byte(name))
		}

		var collected []string
		err := backend.View(func(tx Transaction) error {
			return tx.ForEachBucket(func(name []byte) error {
				collected = append(collected, string(name))
				return nil
			})
		})
		if err != nil {
			t.Fatalf("ForEachBucket failed: %v", err)
		}
		if len(collected) != len(buckets) {
			t.Errorf("ForEachBucket found %d buckets, want %d", len(collected), len(buckets))
		}
	})
}
