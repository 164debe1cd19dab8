// Package typechecker implements the static semantics of the lang compiler.
// It resolves identifiers against lexical scopes, resolves function calls
// through a flat registry, assigns a type to every expression and reports
// the first violated rule as a *Diagnostic. The checker can also run in an
// accumulating mode that resumes at the next statement after a violation.
package typechecker
