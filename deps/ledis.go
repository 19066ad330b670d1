package deps

import (
	"github.com/tryanzu/gomarketplace/modules/cart"
)

func IgniteLedisDB(container Deps) (Deps, error) {
	conf := container.Config()
	dir := conf.UString("storage.ledis.dir", "./data")

	db, err := cart.OpenLedis(dir, conf.UInt("storage.ledis.db", 0))
	if err != nil {
		return container, err
	}

	log.Infof("cart stored in ledis at %s", dir)
	container.BucketProvider = db
	return container, nil
}
