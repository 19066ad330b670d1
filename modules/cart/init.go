package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/op/go-logging"
	validator "gopkg.in/go-playground/validator.v8"
)

// DefaultKey is the storage key used unless configured otherwise.
const DefaultKey = "@GoMarketplace:products"

// ErrInvalidProduct is returned for products failing the presence checks.
var ErrInvalidProduct = errors.New("cart: invalid product")

var (
	log      = logging.MustGetLogger("cart")
	validate = validator.New(&validator.Config{TagName: "validate"})
)

// Store keeps the cart in memory and mirrors every change into its Bucket.
//
// Mutations are not synchronized: they are meant to run on a single
// goroutine. Writes happen in the background and are not ordered against
// each other, the last one to complete is what stays in storage.
type Store struct {
	items   Items
	storage Bucket
	key     string
	onError func(error)
	writes  sync.WaitGroup
}

type Option func(*Store)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithErrorHandler registers fn to observe every failed write, including
// the ones nobody waits for.
func WithErrorHandler(fn func(error)) Option {
	return func(s *Store) {
		s.onError = fn
	}
}

func Boot(storage Bucket, opts ...Option) *Store {
	module := &Store{
		storage: storage,
		key:     DefaultKey,
	}
	for _, opt := range opts {
		opt(module)
	}
	return module
}

// Key the cart is stored under.
func (module *Store) Key() string {
	return module.key
}

// Load replaces the in-memory cart with the stored one. Nothing stored
// leaves the cart as it is.
func (module *Store) Load(ctx context.Context) error {
	data, err := module.storage.Restore(ctx, module.key)
	if errors.Is(err, ErrNotFound) {
		log.Debugf("nothing stored under %s", module.key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("cart: restore %q: %w", module.key, err)
	}

	var items Items
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("cart: decode %q: %w", module.key, err)
	}

	module.items = items
	log.Debugf("restored %d items from %s", len(items), module.key)
	return nil
}

// Products returns a copy of the cart lines.
func (module *Store) Products() Items {
	list := make(Items, len(module.items))
	copy(list, module.items)
	return list
}

// AddToCart appends p with quantity 1, or increments it when already there.
func (module *Store) AddToCart(ctx context.Context, p Product) *Pending {
	if err := validate.Struct(p); err != nil {
		return resolved(fmt.Errorf("%w: %v", ErrInvalidProduct, err))
	}

	if module.items.index(p.ID) != -1 {
		return module.Increment(ctx, p.ID)
	}

	module.items = append(module.items, newItem(p))
	return module.Persist(ctx)
}

// Increment adds one unit of id. Unknown ids are ignored.
func (module *Store) Increment(ctx context.Context, id string) *Pending {
	i := module.items.index(id)
	if i == -1 {
		return resolved(nil)
	}

	module.items[i].IncQuantity(1)
	return module.Persist(ctx)
}

// Decrement takes one unit of id away, dropping the line when none is left.
// Unknown ids are ignored.
func (module *Store) Decrement(ctx context.Context, id string) *Pending {
	i := module.items.index(id)
	if i == -1 {
		return resolved(nil)
	}

	module.items[i].IncQuantity(-1)
	if module.items[i].Quantity <= 0 {
		module.items = append(module.items[:i], module.items[i+1:]...)
	}

	return module.Persist(ctx)
}

// Persist writes the whole cart in the background.
func (module *Store) Persist(ctx context.Context) *Pending {
	items := module.items
	if items == nil {
		items = Items{}
	}

	// Encode now, the write itself may run after further mutations.
	data, err := json.Marshal(items)
	if err != nil {
		return resolved(module.fail(fmt.Errorf("cart: encode: %w", err)))
	}

	p := newPending()
	module.writes.Add(1)
	go func() {
		defer module.writes.Done()

		var err error
		if err = module.storage.Save(ctx, module.key, data); err != nil {
			err = module.fail(fmt.Errorf("cart: save %q: %w", module.key, err))
		}
		p.resolve(err)
	}()
	return p
}

// Flush blocks until every write started so far finished.
func (module *Store) Flush() {
	module.writes.Wait()
}

func (module *Store) fail(err error) error {
	log.Error(err)
	if module.onError != nil {
		module.onError(err)
	}
	return err
}
