package cart

import (
	"context"

	"github.com/tidwall/buntdb"
)

// BuntBucket keeps the cart in a BuntDB file. Use ":memory:" for a
// process-local database.
type BuntBucket struct {
	db *buntdb.DB
}

func OpenBunt(path string) (*BuntBucket, error) {
	db, err := buntdb.Open(path)
	if err != nil {
		return nil, err
	}
	return &BuntBucket{db: db}, nil
}

func (b *BuntBucket) Restore(ctx context.Context, key string) (value []byte, err error) {
	err = b.db.View(func(tx *buntdb.Tx) error {
		v, err := tx.Get(key)
		if err == buntdb.ErrNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		value = []byte(v)
		return nil
	})
	return
}

func (b *BuntBucket) Save(ctx context.Context, key string, value []byte) error {
	return b.db.Update(func(tx *buntdb.Tx) error {
		_, _, err := tx.Set(key, string(value), nil)
		return err
	})
}

func (b *BuntBucket) Close() error {
	return b.db.Close()
}
