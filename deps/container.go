package deps

import (
	oconfig "github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/tryanzu/gomarketplace/core/config"
	"github.com/tryanzu/gomarketplace/modules/cart"
	"github.com/tryanzu/gomarketplace/modules/exceptions"
)

type Deps struct {
	ConfigFile         string
	ConfigProvider     *config.Config
	LoggerProvider     *logging.Logger
	BackendProvider    logging.LeveledBackend
	ExceptionsProvider *exceptions.ExceptionsModule
	BucketProvider     cart.Bucket
	CartProvider       *cart.Store
}

func (d Deps) Settings() *config.Config {
	return d.ConfigProvider
}

// Config view with env overrides applied.
func (d Deps) Config() *oconfig.Config {
	return d.ConfigProvider.View()
}

func (d Deps) Log() *logging.Logger {
	return d.LoggerProvider
}

func (d Deps) Exceptions() *exceptions.ExceptionsModule {
	return d.ExceptionsProvider
}

func (d Deps) Bucket() cart.Bucket {
	return d.BucketProvider
}

func (d Deps) Cart() *cart.Store {
	return d.CartProvider
}

// Close waits for pending cart writes and releases storage.
func (d Deps) Close() error {
	if d.CartProvider != nil {
		d.CartProvider.Flush()
	}
	var err error
	if d.BucketProvider != nil {
		err = d.BucketProvider.Close()
	}
	if d.ConfigProvider != nil {
		d.ConfigProvider.Close()
	}
	return err
}
