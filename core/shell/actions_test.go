package shell

import (
	"bytes"
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tryanzu/gomarketplace/modules/cart"
)

func TestActions(t *testing.T) {
	Convey("Given a module over an empty cart", t, func() {
		module := &Module{Cart: cart.Boot(cart.NewMemoryBucket())}
		ctx := module.Context(context.Background())
		buf := new(bytes.Buffer)

		Convey("list reports an empty cart", func() {
			So(List(ctx, buf), ShouldBeNil)
			So(buf.String(), ShouldEqual, "cart is empty\n")
		})

		Convey("add parses every argument", func() {
			p, err := Add(ctx, []string{"p1", "Shirt", "http://img", "10.5"})
			So(err, ShouldBeNil)
			So(p.Wait(), ShouldBeNil)
			So(module.Cart.Products(), ShouldResemble, cart.Items{
				{ID: "p1", Title: "Shirt", ImageURL: "http://img", Price: 10.5, Quantity: 1},
			})

			Convey("and list shows the line with its total", func() {
				So(List(ctx, buf), ShouldBeNil)
				So(buf.String(), ShouldContainSubstring, "Shirt")
				So(buf.String(), ShouldContainSubstring, "10.50")
			})

			Convey("inc and dec act on it", func() {
				p, err := Increment(ctx, []string{"p1"})
				So(err, ShouldBeNil)
				So(p.Wait(), ShouldBeNil)
				So(module.Cart.Products()[0].Quantity, ShouldEqual, 2)

				p, err = Decrement(ctx, []string{"p1"})
				So(err, ShouldBeNil)
				So(p.Wait(), ShouldBeNil)
				So(module.Cart.Products()[0].Quantity, ShouldEqual, 1)
			})
		})

		Convey("non finite prices are refused and the cart keeps persisting", func() {
			for _, price := range []string{"NaN", "Inf", "-Inf", "+inf"} {
				_, err := Add(ctx, []string{"bad", "t", "u", price})
				So(errors.Is(err, ErrUsage), ShouldBeTrue)
			}
			So(module.Cart.Products(), ShouldBeEmpty)

			p, err := Add(ctx, []string{"p2", "t", "u", "1"})
			So(err, ShouldBeNil)
			So(p.Wait(), ShouldBeNil)
			So(module.Cart.Products(), ShouldHaveLength, 1)
		})

		Convey("wrong arguments are usage errors", func() {
			_, err := Add(ctx, nil)
			So(errors.Is(err, ErrUsage), ShouldBeTrue)
			_, err = Add(ctx, []string{"p1", "t", "u", "ten"})
			So(errors.Is(err, ErrUsage), ShouldBeTrue)
			_, err = Increment(ctx, []string{})
			So(errors.Is(err, ErrUsage), ShouldBeTrue)
			_, err = Decrement(ctx, []string{"a", "b"})
			So(errors.Is(err, ErrUsage), ShouldBeTrue)
		})
	})

	Convey("Actions outside a provider scope fail", t, func() {
		ctx := context.Background()
		So(List(ctx, new(bytes.Buffer)), ShouldEqual, cart.ErrNoProvider)
		_, err := Add(ctx, []string{"p1"})
		So(err, ShouldEqual, cart.ErrNoProvider)
		_, err = Increment(ctx, []string{"p1"})
		So(err, ShouldEqual, cart.ErrNoProvider)
	})
}
