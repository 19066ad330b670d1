package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tryanzu/gomarketplace/core/shell"
	"github.com/tryanzu/gomarketplace/deps"
	"github.com/tryanzu/gomarketplace/modules/cart"
)

type action func(context.Context, []string) (*cart.Pending, error)

func main() {
	var rootCmd = &cobra.Command{
		Use:          "gomarketplace",
		Short:        "Shopping cart kept in local storage",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", configFile, "config file (toml)")

	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Starts interactive shell",
		Long: `Starts the cart interactive shell
		with products, add, inc, dec and config commands.
        `,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withModule(func(module *shell.Module) error {
				module.RunShell(context.Background())
				return nil
			})
		},
	}

	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Runs a single cart operation",
	}
	cartCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Lists the cart lines",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withModule(func(module *shell.Module) error {
					return shell.List(module.Context(context.Background()), os.Stdout)
				})
			},
		},
		&cobra.Command{
			Use:   "add <id> [title] [image_url] [price]",
			Short: "Adds a product, or one more unit of it",
			Args:  cobra.RangeArgs(1, 4),
			RunE:  mutation(shell.Add),
		},
		&cobra.Command{
			Use:   "inc <id>",
			Short: "Adds one unit of a cart line",
			Args:  cobra.ExactArgs(1),
			RunE:  mutation(shell.Increment),
		},
		&cobra.Command{
			Use:   "dec <id>",
			Short: "Removes one unit of a cart line",
			Args:  cobra.ExactArgs(1),
			RunE:  mutation(shell.Decrement),
		},
	)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Reads or updates the config file",
	}
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "get <path>",
			Short: "Prints a config value",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := deps.Run(deps.Deps{ConfigFile: configFile}, deps.IgniteConfig, deps.IgniteLogger)
				if err != nil {
					return err
				}
				v, err := container.Config().Get(args[0])
				if err != nil {
					return err
				}
				fmt.Println(v.Root)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <path> <value>",
			Short: "Merges a value into the config file",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, err := deps.Run(deps.Deps{ConfigFile: configFile}, deps.IgniteConfig, deps.IgniteLogger)
				if err != nil {
					return err
				}
				return container.Settings().Set(args[0], args[1])
			},
		},
	)

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(cartCmd)
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// withModule bootstraps the deps container, injects it into a shell
// module and runs fn with it.
func withModule(fn func(*shell.Module) error) (err error) {
	container, err := deps.Bootstrap(configFile)
	if err != nil {
		container.Close()
		return err
	}
	defer func() {
		if cerr := container.Close(); err == nil {
			err = cerr
		}
	}()
	defer container.Exceptions().Recover()

	module := &shell.Module{}
	if err := deps.Populate(container, module); err != nil {
		return err
	}
	return fn(module)
}

// mutation waits for the write before reporting, the process exits
// right after.
func mutation(fn action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withModule(func(module *shell.Module) error {
			ctx := module.Context(context.Background())
			p, err := fn(ctx, args)
			if err != nil {
				return err
			}
			if err := p.Wait(); err != nil {
				return err
			}
			return shell.List(ctx, os.Stdout)
		})
	}
}
