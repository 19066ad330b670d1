package shell

import (
	"context"

	"github.com/op/go-logging"
	"github.com/tryanzu/gomarketplace/core/config"
	"github.com/tryanzu/gomarketplace/modules/cart"
	"github.com/tryanzu/gomarketplace/modules/exceptions"
)

// Module holds what the cart commands need, populated by the DI graph.
type Module struct {
	Cart     *cart.Store                  `inject:""`
	Settings *config.Config               `inject:""`
	Errors   *exceptions.ExceptionsModule `inject:""`
	Log      *logging.Logger              `inject:""`
}

// Context opens the cart provider scope the actions run in.
func (module *Module) Context(ctx context.Context) context.Context {
	return cart.NewContext(ctx, module.Cart)
}
