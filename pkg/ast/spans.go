package ast

import "fmt"

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// IsZero reports whether the span carries no location.
func (s Span) IsZero() bool { return s == Span{} }

func (s Span) String() string {
	if s.Start.Line <= 0 {
		return ""
	}
	if s.Start.Column <= 0 {
		return fmt.Sprintf("%d", s.Start.Line)
	}
	return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
}

// SetSpan annotates the node with the provided span.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

// At is a convenience for point spans.
func At(line, column int) Span {
	pos := Position{Line: line, Column: column}
	return Span{Start: pos, End: pos}
}
