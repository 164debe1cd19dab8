package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/symbols"
	"github.com/avaunit02/lang/pkg/typechecker"
)

// Program is a decoded program fixture: the tree, the symbol table built
// while decoding it and the fixture's expectations.
type Program struct {
	Path        string
	Description string
	// Expect lists the diagnostic kinds the check must report, in order.
	// Empty means the program must check cleanly.
	Expect  []typechecker.ErrorKind
	AST     *ast.Program
	Symbols *symbols.Table
}

// LoadProgram reads a YAML or JSON program fixture from disk.
func LoadProgram(path string) (*Program, error) {
	if path == "" {
		return nil, fmt.Errorf("program: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("program: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	program, err := DecodeProgram(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("program: parse %s: %w", abs, err)
	}
	program.Path = abs
	return program, nil
}

// DecodeProgram decodes one fixture document. The document is either a
// mapping with `program`, `description` and `expect` keys or a bare
// sequence of statements.
func DecodeProgram(r io.Reader) (*Program, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	d := &decoder{symbols: symbols.NewTable()}
	program := &Program{Symbols: d.symbols}
	statementsNode := root
	if root.Kind == yaml.MappingNode {
		obj, err := d.object(root, "description", "expect", "program")
		if err != nil {
			return nil, err
		}
		if n := obj.get("description"); n != nil {
			program.Description = n.Value
		}
		if n := obj.get("expect"); n != nil {
			kinds, err := decodeExpect(n)
			if err != nil {
				return nil, err
			}
			program.Expect = kinds
		}
		statementsNode = obj.get("program")
		if statementsNode == nil {
			return nil, nodeError(root, "missing program")
		}
	}
	statements, err := d.statements(statementsNode)
	if err != nil {
		return nil, err
	}
	program.AST = ast.NewProgram(statements)
	ast.SetSpan(program.AST, spanOf(statementsNode))
	return program, nil
}

func decodeExpect(n *yaml.Node) ([]typechecker.ErrorKind, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, nodeError(n, "expect must be a list of diagnostic names")
	}
	kinds := make([]typechecker.ErrorKind, 0, len(n.Content))
	for _, item := range n.Content {
		kind, ok := typechecker.KindBySlug(strings.TrimSpace(item.Value))
		if !ok {
			return nil, nodeError(item, "unknown diagnostic %q", item.Value)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

type decoder struct {
	symbols *symbols.Table
}

// object is a mapping node indexed by key.
type object struct {
	node   *yaml.Node
	fields map[string]*yaml.Node
}

func (o object) get(key string) *yaml.Node {
	return o.fields[key]
}

func (o object) require(key string) (*yaml.Node, error) {
	n := o.fields[key]
	if n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null") {
		return nil, nodeError(o.node, "missing %s", key)
	}
	return n, nil
}

// object indexes a mapping node and rejects keys outside allowed. The
// "type" key is always allowed.
func (d *decoder) object(n *yaml.Node, allowed ...string) (object, error) {
	if n == nil || n.Kind != yaml.MappingNode {
		return object{}, nodeError(n, "expected a mapping")
	}
	obj := object{node: n, fields: make(map[string]*yaml.Node, len(n.Content)/2)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if key.Value != "type" && !contains(allowed, key.Value) {
			return object{}, nodeError(key, "unknown field %q", key.Value)
		}
		if _, dup := obj.fields[key.Value]; dup {
			return object{}, nodeError(key, "duplicate field %q", key.Value)
		}
		obj.fields[key.Value] = n.Content[i+1]
	}
	return obj, nil
}

func nodeType(n *yaml.Node) (string, error) {
	if n == nil || n.Kind != yaml.MappingNode {
		return "", nodeError(n, "expected a node mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == "type" {
			return n.Content[i+1].Value, nil
		}
	}
	return "", nodeError(n, "node is missing its type")
}

func (d *decoder) name(o object, key string) (symbols.ID, error) {
	n, err := o.require(key)
	if err != nil {
		return 0, err
	}
	if n.Kind != yaml.ScalarNode || strings.TrimSpace(n.Value) == "" {
		return 0, nodeError(n, "%s must be a non-empty name", key)
	}
	return d.symbols.Intern(n.Value), nil
}

func spanOf(n *yaml.Node) ast.Span {
	if n == nil {
		return ast.Span{}
	}
	return ast.At(n.Line, n.Column)
}

func at[T ast.Node](node T, n *yaml.Node) T {
	ast.SetSpan(node, spanOf(n))
	return node
}

// NodeError is a fixture decoding failure at a document position.
type NodeError struct {
	Line    int
	Column  int
	Message string
}

func (e *NodeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
	return e.Message
}

func nodeError(n *yaml.Node, format string, args ...any) error {
	err := &NodeError{Message: fmt.Sprintf(format, args...)}
	if n != nil {
		err.Line, err.Column = n.Line, n.Column
	}
	return err
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
