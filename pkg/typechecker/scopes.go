package typechecker

import "errors"

var (
	ErrDuplicateDeclaration = errors.New("already declared in this scope")
	ErrUndeclared           = errors.New("not declared")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrNoScope              = errors.New("no open scope")
)

// Scopes is a stack of flat lexical levels. A key may be declared once per
// level; inner levels shadow outer ones. The checker keeps one instance for
// variables and a parallel one for type names.
type Scopes[K comparable, V any] struct {
	levels []map[K]V
}

// NewScopes returns an empty stack with no open level.
func NewScopes[K comparable, V any]() *Scopes[K, V] {
	return &Scopes[K, V]{}
}

// Push opens a new innermost level.
func (s *Scopes[K, V]) Push() {
	s.levels = append(s.levels, make(map[K]V))
}

// Pop discards the innermost level.
func (s *Scopes[K, V]) Pop() {
	if len(s.levels) == 0 {
		return
	}
	s.levels[len(s.levels)-1] = nil
	s.levels = s.levels[:len(s.levels)-1]
}

// Depth reports the number of open levels.
func (s *Scopes[K, V]) Depth() int {
	return len(s.levels)
}

// Declare binds key in the innermost level.
func (s *Scopes[K, V]) Declare(key K, value V) error {
	if len(s.levels) == 0 {
		return ErrNoScope
	}
	top := s.levels[len(s.levels)-1]
	if _, exists := top[key]; exists {
		return ErrDuplicateDeclaration
	}
	top[key] = value
	return nil
}

// Lookup searches from the innermost level outwards.
func (s *Scopes[K, V]) Lookup(key K) (V, bool) {
	for i := len(s.levels) - 1; i >= 0; i-- {
		if value, ok := s.levels[i][key]; ok {
			return value, true
		}
	}
	var zero V
	return zero, false
}

// DeclaredInCurrent reports whether key is bound in the innermost level.
func (s *Scopes[K, V]) DeclaredInCurrent(key K) bool {
	if len(s.levels) == 0 {
		return false
	}
	_, ok := s.levels[len(s.levels)-1][key]
	return ok
}

// AssignCheck verifies that key is visible and that value matches its
// declared binding under same.
func (s *Scopes[K, V]) AssignCheck(key K, value V, same func(declared, assigned V) bool) error {
	declared, ok := s.Lookup(key)
	if !ok {
		return ErrUndeclared
	}
	if !same(declared, value) {
		return ErrTypeMismatch
	}
	return nil
}
