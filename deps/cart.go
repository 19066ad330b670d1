package deps

import (
	"context"

	"github.com/tryanzu/gomarketplace/modules/cart"
)

// IgniteCart boots the store over the chosen bucket and loads it once.
func IgniteCart(container Deps) (Deps, error) {
	opts := []cart.Option{
		cart.WithKey(container.Config().UString("cart.key")),
	}
	if module := container.Exceptions(); module != nil {
		opts = append(opts, cart.WithErrorHandler(module.Capture))
	}

	store := cart.Boot(container.Bucket(), opts...)
	if err := store.Load(context.Background()); err != nil {
		return container, err
	}

	log.Debugf("cart loaded with %d lines under %s", len(store.Products()), store.Key())
	container.CartProvider = store
	return container, nil
}
