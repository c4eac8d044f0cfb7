package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS buckets (
	name BLOB PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS kv (
	bucket BLOB NOT NULL REFERENCES buckets(name) ON DELETE CASCADE,
	key    BLOB NOT NULL,
	value  BLOB NOT NULL,
	PRIMARY KEY (bucket, key)
);`

// SQLiteBackend implements Backend on a SQLite file with one row per key.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (or creates) the database at path and applies the
// schema.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(1000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (s *SQLiteBackend) CreateBucket(name []byte) error {
	return s.Update(func(tx Transaction) error { return tx.CreateBucket(name) })
}

func (s *SQLiteBackend) DeleteBucket(name []byte) error {
	return s.Update(func(tx Transaction) error { return tx.DeleteBucket(name) })
}

func (s *SQLiteBackend) BucketExists(name []byte) (bool, error) {
	exists := false
	err := s.View(func(tx Transaction) error {
		exists = tx.Bucket(name) != nil
		return nil
	})
	return exists, err
}

func (s *SQLiteBackend) Put(bucket, key, value []byte) error {
	return s.Update(func(tx Transaction) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		return bkt.Put(key, value)
	})
}

func (s *SQLiteBackend) Get(bucket, key []byte) ([]byte, error) {
	var value []byte
	err := s.View(func(tx Transaction) error {
		bkt := tx.(*sqliteTransaction).bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		var err error
		value, err = bkt.get(key)
		return err
	})
	return value, err
}

func (s *SQLiteBackend) Delete(bucket, key []byte) error {
	return s.Update(func(tx Transaction) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		return bkt.Delete(key)
	})
}

func (s *SQLiteBackend) ForEach(bucket []byte, fn func(k, v []byte) error) error {
	return s.View(func(tx Transaction) error {
		bkt := tx.Bucket(bucket)
		if bkt == nil {
			return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
		}
		return bkt.ForEach(fn)
	})
}

// Update commits if fn returns nil and rolls back otherwise.
func (s *SQLiteBackend) Update(fn func(tx Transaction) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&sqliteTransaction{tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// View always rolls back.
func (s *SQLiteBackend) View(fn func(tx Transaction) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	return fn(&sqliteTransaction{tx: tx})
}

func (s *SQLiteBackend) Close() error {
	return s.db.Close()
}

type sqliteTransaction struct {
	tx *sql.Tx
}

func (t *sqliteTransaction) CreateBucket(name []byte) error {
	_, err := t.tx.Exec(`INSERT OR IGNORE INTO buckets (name) VALUES (?)`, name)
	return err
}

func (t *sqliteTransaction) DeleteBucket(name []byte) error {
	if _, err := t.tx.Exec(`DELETE FROM kv WHERE bucket = ?`, name); err != nil {
		return err
	}
	_, err := t.tx.Exec(`DELETE FROM buckets WHERE name = ?`, name)
	return err
}

func (t *sqliteTransaction) Bucket(name []byte) Bucket {
	if b := t.bucket(name); b != nil {
		return b
	}
	return nil
}

// bucket returns a typed nil-able bucket so callers inside the package can
// reach get, which reports errors.
func (t *sqliteTransaction) bucket(name []byte) *sqliteBucket {
	var found int
	err := t.tx.QueryRow(`SELECT 1 FROM buckets WHERE name = ?`, name).Scan(&found)
	if err != nil {
		return nil
	}
	return &sqliteBucket{tx: t.tx, name: append([]byte(nil), name...)}
}

func (t *sqliteTransaction) ForEachBucket(fn func(name []byte) error) error {
	rows, err := t.tx.Query(`SELECT name FROM buckets ORDER BY name`)
	if err != nil {
		return err
	}
	var names [][]byte
	for rows.Next() {
		var n []byte
		if err := rows.Scan(&n); err != nil {
			rows.Close()
			return err
		}
		names = append(names, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, n := range names {
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}

type sqliteBucket struct {
	tx   *sql.Tx
	name []byte
}

func (b *sqliteBucket) Put(key, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := b.tx.Exec(
		`INSERT INTO kv (bucket, key, value) VALUES (?, ?, ?)
		 ON CONFLICT (bucket, key) DO UPDATE SET value = excluded.value`,
		b.name, key, value)
	return err
}

func (b *sqliteBucket) Get(key []byte) []byte {
	v, _ := b.get(key)
	return v
}

func (b *sqliteBucket) get(key []byte) ([]byte, error) {
	var v []byte
	err := b.tx.QueryRow(`SELECT value FROM kv WHERE bucket = ? AND key = ?`, b.name, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if v == nil {
		v = []byte{}
	}
	return v, nil
}

func (b *sqliteBucket) Delete(key []byte) error {
	_, err := b.tx.Exec(`DELETE FROM kv WHERE bucket = ? AND key = ?`, b.name, key)
	return err
}

// ForEach reads the whole bucket before calling fn, so fn may write through
// the same transaction.
func (b *sqliteBucket) ForEach(fn func(k, v []byte) error) error {
	rows, err := b.tx.Query(`SELECT key, value FROM kv WHERE bucket = ? ORDER BY key`, b.name)
	if err != nil {
		return err
	}
	type pair struct{ k, v []byte }
	var pairs []pair
	for rows.Next() {
		var p pair
		if err := rows.Scan(&p.k, &p.v); err != nil {
			rows.Close()
			return err
		}
		pairs = append(pairs, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, p := range pairs {
		if err := fn(p.k, p.v); err != nil {
			return err
		}
	}
	return nil
}
