package configs

import (
	"errors"
	"fmt"
	"iter"
)

// First decodes the value at path from the first config file that sets it,
// or returns the zero value when none does. Invalid configs panic, like
// any other programmer error in provider wiring.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}

// All yields the value at path from every config file that sets it, in
// precedence order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			if !yield(v) {
				return
			}
		}
	}
}
