package shell

import (
	"bytes"
	"context"
	"fmt"

	"github.com/abiosoft/ishell"
	"github.com/tryanzu/gomarketplace/modules/cart"
)

type action func(context.Context, []string) (*cart.Pending, error)

// RunShell starts the interactive cart shell and blocks until it exits.
func (module *Module) RunShell(ctx context.Context) {
	ctx = module.Context(ctx)

	// Keep config values fresh for the config command.
	if err := module.Settings.WatchFile(); err != nil {
		module.Log.Warningf("not watching %s: %v", module.Settings.File(), err)
	}

	shell := ishell.New()
	shell.SetPrompt("cart » ")
	shell.Println("GoMarketplace Interactive Shell 0.1")

	shell.AddCmd(&ishell.Cmd{
		Name: "products",
		Help: "List the cart lines.",
		Func: func(c *ishell.Context) {
			module.print(ctx, c)
		},
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "add",
		Help: "add <id> [title] [image_url] [price]",
		Func: module.mutate(ctx, Add),
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "inc",
		Help: "inc <id>",
		Func: module.mutate(ctx, Increment),
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "dec",
		Help: "dec <id>",
		Func: module.mutate(ctx, Decrement),
	})
	shell.AddCmd(&ishell.Cmd{
		Name: "config",
		Help: "config <path> [value]",
		Func: func(c *ishell.Context) {
			module.configure(c)
		},
	})

	// start shell
	shell.Run()
	module.Cart.Flush()
}

// mutate runs fn without waiting for the write, failures reach the
// store's error handler.
func (module *Module) mutate(ctx context.Context, fn action) func(*ishell.Context) {
	return func(c *ishell.Context) {
		if _, err := fn(ctx, c.Args); err != nil {
			c.Err(err)
			return
		}
		module.print(ctx, c)
	}
}

func (module *Module) print(ctx context.Context, c *ishell.Context) {
	buf := new(bytes.Buffer)
	if err := List(ctx, buf); err != nil {
		c.Err(err)
		return
	}
	c.Print(buf.String())
}

func (module *Module) configure(c *ishell.Context) {
	switch len(c.Args) {
	case 1:
		v, err := module.Settings.View().Get(c.Args[0])
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(fmt.Sprint(v.Root))
	case 2:
		if err := module.Settings.Set(c.Args[0], c.Args[1]); err != nil {
			c.Err(err)
			return
		}
		c.Println("saved, restart to switch storage")
	default:
		c.Println("usage: config <path> [value]")
	}
}
