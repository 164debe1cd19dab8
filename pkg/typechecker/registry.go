package typechecker

import (
	"errors"

	"github.com/avaunit02/lang/pkg/types"
)

var ErrDuplicateFunction = errors.New("function already registered")

// Signature is a registered function's parameter and return types.
type Signature struct {
	Params []types.Type
	Return types.Type
}

// Registry is a flat write-once table, independent of lexical scoping.
type Registry[K comparable, V any] struct {
	entries map[K]V
	order   []K
}

func NewRegistry[K comparable, V any]() *Registry[K, V] {
	return &Registry[K, V]{entries: make(map[K]V)}
}

// Register records value under key; a key can be registered once.
func (r *Registry[K, V]) Register(key K, value V) error {
	if _, exists := r.entries[key]; exists {
		return ErrDuplicateFunction
	}
	r.entries[key] = value
	r.order = append(r.order, key)
	return nil
}

func (r *Registry[K, V]) Lookup(key K) (V, bool) {
	value, ok := r.entries[key]
	return value, ok
}

// Withdraw removes a registration made by the hoisting pre-pass once the
// walk rejects that definition.
func (r *Registry[K, V]) Withdraw(key K) {
	if _, ok := r.entries[key]; !ok {
		return
	}
	delete(r.entries, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Registry[K, V]) Len() int {
	return len(r.entries)
}

// Keys returns the registered keys in registration order.
func (r *Registry[K, V]) Keys() []K {
	out := make([]K, len(r.order))
	copy(out, r.order)
	return out
}
