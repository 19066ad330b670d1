package deps

import (
	"github.com/tryanzu/gomarketplace/modules/cart"
)

func IgniteBuntDB(container Deps) (Deps, error) {
	path := container.Config().UString("storage.bunt.path", "./cart.db")

	db, err := cart.OpenBunt(path)
	if err != nil {
		return container, err
	}

	log.Infof("cart stored in buntdb at %s", path)
	container.BucketProvider = db
	return container, nil
}

// IgniteMemory keeps the cart for the lifetime of the process only.
func IgniteMemory(container Deps) (Deps, error) {
	log.Warning("cart stored in memory, nothing survives a restart")
	container.BucketProvider = cart.NewMemoryBucket()
	return container, nil
}
