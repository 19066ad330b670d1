package deps

import (
	"fmt"
)

// An ignitor takes a Container and injects bootstraped dependencies.
type Ignitor func(Deps) (Deps, error)

// Bootstrap runs ignitors to fulfill a deps container for the config file.
func Bootstrap(file string) (Deps, error) {
	ignitors := []Ignitor{
		IgniteConfig,
		IgniteLogger,
		IgniteExceptions,
		IgniteStorage,
		IgniteCart,
	}

	return Run(Deps{ConfigFile: file}, ignitors...)
}

// Run applies ignitors in order, stopping at the first failure.
func Run(container Deps, ignitors ...Ignitor) (Deps, error) {
	var err error
	for _, fn := range ignitors {
		container, err = fn(container)
		if err != nil {
			return container, err
		}
	}
	return container, nil
}

// IgniteStorage picks the cart bucket from storage.driver.
func IgniteStorage(container Deps) (Deps, error) {
	driver := container.Config().UString("storage.driver", "ledis")

	switch driver {
	case "ledis":
		return IgniteLedisDB(container)
	case "bunt":
		return IgniteBuntDB(container)
	case "redis":
		return IgniteCache(container)
	case "memory":
		return IgniteMemory(container)
	}

	return container, fmt.Errorf("deps: unknown storage driver %q", driver)
}
