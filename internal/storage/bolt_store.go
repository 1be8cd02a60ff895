package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const profileBucket = "profiles"

var timeNow = time.Now

// boltStore implements a Store backed by BoltDB.
type boltStore struct {
	db *bolt.DB
}

// openBolt initializes a BoltDB-backed Store.
func openBolt(path string) (Store, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bbolt db: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(profileBucket))
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bucket: %w", err)
	}

	return &boltStore{db: db}, nil
}

// Close closes the BoltDB store.
func (b *boltStore) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// SaveProfile creates or replaces the profile stored under p.Name.
func (b *boltStore) SaveProfile(p Profile) error {
	name, err := NormalizeName(p.Name)
	if err != nil {
		return err
	}
	p.Name = name
	p.UpdatedAt = timeNow().UTC()

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(profileBucket))
		if bucket == nil {
			return fmt.Errorf("profile bucket missing")
		}
		return bucket.Put([]byte(name), raw)
	})
}

// Profile loads the profile stored under name.
func (b *boltStore) Profile(name string) (Profile, bool, error) {
	key, err := NormalizeName(name)
	if err != nil {
		return Profile{}, false, err
	}

	var (
		p     Profile
		found bool
	)
	err = b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(profileBucket))
		if bucket == nil {
			return fmt.Errorf("profile bucket missing")
		}
		raw := bucket.Get([]byte(key))
		if raw == nil {
			return nil
		}
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("decode profile %q: %w", key, err)
		}
		found = true
		return nil
	})
	return p, found, err
}

// Profiles returns every stored profile ordered by name.
func (b *boltStore) Profiles() ([]Profile, error) {
	var out []Profile
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(profileBucket))
		if bucket == nil {
			return fmt.Errorf("profile bucket missing")
		}
		return bucket.ForEach(func(k, v []byte) error {
			var p Profile
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("decode profile %q: %w", k, err)
			}
			out = append(out, p)
			return nil
		})
	})
	return out, err
}

// DeleteProfile removes the profile stored under name. Missing profiles are not an error.
func (b *boltStore) DeleteProfile(name string) error {
	key, err := NormalizeName(name)
	if err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(profileBucket))
		if bucket == nil {
			return fmt.Errorf("profile bucket missing")
		}
		return bucket.Delete([]byte(key))
	})
}
