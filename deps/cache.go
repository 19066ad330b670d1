package deps

import (
	"context"

	"github.com/tryanzu/gomarketplace/modules/cart"
)

func IgniteCache(container Deps) (Deps, error) {
	conf := container.Config()
	address := conf.UString("storage.redis.addr", "localhost:6379")

	redis := cart.DialRedis(address)
	if err := redis.Ping(context.Background(), conf.UInt("storage.redis.attempts", 5)); err != nil {
		redis.Close()
		return container, err
	}

	log.Infof("cart stored in redis at %s", address)
	container.BucketProvider = redis
	return container, nil
}
