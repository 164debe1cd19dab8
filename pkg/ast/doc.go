// Package ast defines the syntax tree consumed by the typechecker. Nodes are
// tagged structs behind the Statement, Expression and TypeExpression marker
// interfaces; identifiers are interned symbols.ID values. dsl.go offers the
// terse constructors used by tests and fixtures.
package ast
