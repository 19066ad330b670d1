package cart

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Bucket when nothing is stored under a key.
var ErrNotFound = errors.New("cart: key not found")

// Bucket is the durable key-value storage a cart lives in.
type Bucket interface {

	// Restore the raw value stored under key, ErrNotFound when absent.
	Restore(ctx context.Context, key string) ([]byte, error)

	// Save value under key, replacing whatever was there.
	Save(ctx context.Context, key string, value []byte) error

	Close() error
}

// Pending is the outcome of a write that may still be in flight.
// Callers are free to wait on it or drop it.
type Pending struct {
	done chan struct{}
	err  error
}

func newPending() *Pending {
	return &Pending{done: make(chan struct{})}
}

// resolved returns an already finished Pending.
func resolved(err error) *Pending {
	p := newPending()
	p.resolve(err)
	return p
}

func (p *Pending) resolve(err error) {
	p.err = err
	close(p.done)
}

// Done is closed once the write finished.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the write finished and returns its error.
func (p *Pending) Wait() error {
	<-p.done
	return p.err
}

// Err returns the write error, nil while still pending.
func (p *Pending) Err() error {
	select {
	case <-p.done:
		return p.err
	default:
		return nil
	}
}
