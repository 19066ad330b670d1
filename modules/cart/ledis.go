package cart

import (
	"context"

	lediscfg "github.com/siddontang/ledisdb/config"
	"github.com/siddontang/ledisdb/ledis"
)

// LedisBucket keeps the cart in an embedded LedisDB, the on-device store.
type LedisBucket struct {
	conn *ledis.Ledis
	db   *ledis.DB
}

// OpenLedis opens (or creates) the ledis data dir and selects database index.
func OpenLedis(dir string, index int) (*LedisBucket, error) {
	conf := lediscfg.NewConfigDefault()
	conf.DataDir = dir

	conn, err := ledis.Open(conf)
	if err != nil {
		return nil, err
	}

	db, err := conn.Select(index)
	if err != nil {
		conn.Close()
		return nil, err
	}

	return &LedisBucket{conn: conn, db: db}, nil
}

func (b *LedisBucket) Restore(ctx context.Context, key string) ([]byte, error) {
	k := []byte(key)
	n, err := b.db.Exists(k)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNotFound
	}
	return b.db.Get(k)
}

func (b *LedisBucket) Save(ctx context.Context, key string, value []byte) error {
	return b.db.Set([]byte(key), value)
}

func (b *LedisBucket) Close() error {
	b.conn.Close()
	return nil
}
