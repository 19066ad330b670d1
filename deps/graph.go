package deps

import (
	"github.com/facebookgo/inject"
)

// Populate injects the container services into every target.
func Populate(container Deps, targets ...interface{}) error {
	var g inject.Graph

	objects := []*inject.Object{
		{Value: container.Settings(), Complete: true},
		{Value: container.Log(), Complete: true},
		{Value: container.Exceptions(), Complete: true},
		{Value: container.Cart(), Complete: true},
	}
	for _, target := range targets {
		objects = append(objects, &inject.Object{Value: target})
	}

	if err := g.Provide(objects...); err != nil {
		return err
	}
	return g.Populate()
}
