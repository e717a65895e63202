package database

import (
	"log"
	"time"

	bolt "github.com/boltdb/bolt"
)

// OpenBolt opens (or creates) the database file at path and makes sure every bucket exists.
func OpenBolt(path string, buckets ...string) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range buckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("[database][bolt] opened path=%s buckets=%v", path, buckets)
	return db, nil
}
