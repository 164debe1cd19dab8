// Package symbols holds the interned identifier table shared by the parser,
// the typechecker and diagnostics rendering.
package symbols

import "fmt"

// ID identifies a distinct source spelling. IDs are dense, starting at zero,
// and stay valid for the lifetime of the table that issued them.
type ID uint32

// Resolver maps identifiers back to their source spelling.
type Resolver interface {
	Name(id ID) string
}

// Table is an append-only intern table.
type Table struct {
	byName map[string]ID
	names  []string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{byName: make(map[string]ID)}
}

// Intern returns the identifier for name, allocating the next ID on first use.
func (t *Table) Intern(name string) ID {
	if id, ok := t.byName[name]; ok {
		return id
	}
	id := ID(len(t.names))
	t.names = append(t.names, name)
	t.byName[name] = id
	return id
}

// Lookup returns the identifier for name without interning it.
func (t *Table) Lookup(name string) (ID, bool) {
	if t == nil {
		return 0, false
	}
	id, ok := t.byName[name]
	return id, ok
}

// Name returns the spelling for id. Unknown ids render as "#<n>" so a
// diagnostic never panics on a foreign identifier.
func (t *Table) Name(id ID) string {
	if t == nil || int(id) >= len(t.names) {
		return fmt.Sprintf("#%d", id)
	}
	return t.names[id]
}

// Len reports the number of interned identifiers.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}
