package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/tryanzu/gomarketplace/modules/cart"
)

var ErrUsage = errors.New("shell: wrong arguments")

// List prints the cart lines followed by the total.
func List(ctx context.Context, w io.Writer) error {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return err
	}

	products := store.Products()
	if len(products) == 0 {
		fmt.Fprintln(w, "cart is empty")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"id", "title", "price", "qty", "subtotal"})
	for _, item := range products {
		table.Append([]string{
			item.ID,
			item.Title,
			money(item.Price),
			strconv.Itoa(item.Quantity),
			money(item.Subtotal()),
		})
	}
	table.SetFooter([]string{"", "", "", strconv.Itoa(products.Count()), money(products.Total())})
	table.Render()
	return nil
}

// Add expects: id [title] [image_url] [price].
func Add(ctx context.Context, args []string) (*cart.Pending, error) {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(args) < 1 || len(args) > 4 {
		return nil, fmt.Errorf("%w: add <id> [title] [image_url] [price]", ErrUsage)
	}

	p := cart.Product{ID: args[0]}
	if len(args) > 1 {
		p.Title = args[1]
	}
	if len(args) > 2 {
		p.ImageURL = args[2]
	}
	if len(args) > 3 {
		price, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: price %q: %v", ErrUsage, args[3], err)
		}
		// JSON cannot encode these, the cart would never persist again.
		if math.IsNaN(price) || math.IsInf(price, 0) {
			return nil, fmt.Errorf("%w: price %q is not a finite number", ErrUsage, args[3])
		}
		p.Price = price
	}

	return store.AddToCart(ctx, p), nil
}

func Increment(ctx context.Context, args []string) (*cart.Pending, error) {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: inc <id>", ErrUsage)
	}
	return store.Increment(ctx, args[0]), nil
}

func Decrement(ctx context.Context, args []string) (*cart.Pending, error) {
	store, err := cart.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: dec <id>", ErrUsage)
	}
	return store.Decrement(ctx, args[0]), nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
