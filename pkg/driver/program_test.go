package driver

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/avaunit02/lang/pkg/ast"
	"github.com/avaunit02/lang/pkg/typechecker"
	"github.com/avaunit02/lang/pkg/types"
)

func decode(t *testing.T, src string) *Program {
	t.Helper()
	program, err := DecodeProgram(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeProgram returned error: %v", err)
	}
	return program
}

func decodeErr(t *testing.T, src string) error {
	t.Helper()
	_, err := DecodeProgram(strings.NewReader(src))
	if err == nil {
		t.Fatalf("expected DecodeProgram to fail")
	}
	return err
}

func TestDecodeProgramMapping(t *testing.T) {
	program := decode(t, `
description: one variable
expect: [type-mismatch]
program:
  - type: VariableDefinition
    name: x
    varType: u8
    value: {type: BooleanLiteral, value: true}
`)
	if program.Description != "one variable" {
		t.Fatalf("Description = %q", program.Description)
	}
	if diff := deep.Equal(program.Expect, []typechecker.ErrorKind{typechecker.TypeMismatch}); diff != nil {
		t.Fatalf("Expect unexpected: %v", diff)
	}
	if len(program.AST.Statements) != 1 {
		t.Fatalf("expected one statement, got %d", len(program.AST.Statements))
	}
	def, ok := program.AST.Statements[0].(*ast.VariableDefinition)
	if !ok {
		t.Fatalf("expected VariableDefinition, got %T", program.AST.Statements[0])
	}
	if got := program.Symbols.Name(def.Name); got != "x" {
		t.Fatalf("name = %q, want x", got)
	}
	prim, ok := def.Type.(*ast.PrimitiveTypeExpression)
	if !ok || prim.Primitive != types.U8 {
		t.Fatalf("varType unexpected: %#v", def.Type)
	}
	lit, ok := def.Value.(*ast.BooleanLiteral)
	if !ok || !lit.Value {
		t.Fatalf("value unexpected: %#v", def.Value)
	}
	span := def.Span()
	if span.Start.Line != 5 || span.Start.Column <= 0 {
		t.Fatalf("span = %v, want line 5", span)
	}
}

func TestDecodeBareStatementList(t *testing.T) {
	program := decode(t, `
- type: ContinueStatement
- type: BinaryExpression
  operator: "+"
  left: {type: IntegerLiteral, value: 1}
  right: {type: FloatLiteral, value: 2.5}
`)
	if len(program.Expect) != 0 {
		t.Fatalf("bare list should not carry expectations")
	}
	if _, ok := program.AST.Statements[0].(*ast.ContinueStatement); !ok {
		t.Fatalf("expected ContinueStatement, got %T", program.AST.Statements[0])
	}
	bin, ok := program.AST.Statements[1].(*ast.BinaryExpression)
	if !ok || bin.Operator != ast.OpAdd {
		t.Fatalf("expected addition, got %#v", program.AST.Statements[1])
	}
	if f, ok := bin.Right.(*ast.FloatLiteral); !ok || f.Value != 2.5 {
		t.Fatalf("right operand unexpected: %#v", bin.Right)
	}
}

func TestDecodeTypeExpressions(t *testing.T) {
	program := decode(t, `
- type: TypeDefinition
  name: grid
  definition:
    type: ArrayTypeExpression
    length: 4
    element:
      type: StructTypeExpression
      fields:
        - {name: cell, fieldType: {type: NamedTypeExpression, name: cell_t}}
        - {name: on, fieldType: {type: PrimitiveTypeExpression, primitive: bool}}
`)
	def := program.AST.Statements[0].(*ast.TypeDefinition)
	arr, ok := def.Type.(*ast.ArrayTypeExpression)
	if !ok || arr.Length != 4 {
		t.Fatalf("definition unexpected: %#v", def.Type)
	}
	st, ok := arr.Element.(*ast.StructTypeExpression)
	if !ok || len(st.Fields) != 2 {
		t.Fatalf("element unexpected: %#v", arr.Element)
	}
	named, ok := st.Fields[0].Type.(*ast.NamedTypeExpression)
	if !ok || program.Symbols.Name(named.Name) != "cell_t" {
		t.Fatalf("first field unexpected: %#v", st.Fields[0].Type)
	}
}

func TestDecodeShorthandNamedType(t *testing.T) {
	program := decode(t, `
- type: FunctionDefinition
  name: f
  params:
    - {name: p, paramType: point}
  body: []
`)
	fn := program.AST.Statements[0].(*ast.FunctionDefinition)
	if fn.ReturnType != nil {
		t.Fatalf("missing returnType should decode to nil, got %#v", fn.ReturnType)
	}
	if _, ok := fn.Params[0].Type.(*ast.NamedTypeExpression); !ok {
		t.Fatalf("expected named type, got %#v", fn.Params[0].Type)
	}
	if fn.Body == nil || len(fn.Body.Statements) != 0 {
		t.Fatalf("expected empty body, got %#v", fn.Body)
	}
}

func TestDecodeRejectsMalformedNodes(t *testing.T) {
	tests := map[string]struct {
		src  string
		want string
	}{
		"unknown field": {
			src:  "- {type: ContinueStatement, label: outer}",
			want: `unknown field "label"`,
		},
		"unknown node": {
			src:  "- {type: SwitchStatement}",
			want: `unsupported statement type "SwitchStatement"`,
		},
		"missing type": {
			src:  "- {name: x}",
			want: "missing its type",
		},
		"missing value": {
			src:  "- {type: VariableDefinition, name: x, varType: u8}",
			want: "missing value",
		},
		"unknown operator": {
			src:  "- {type: BinaryExpression, operator: '**', left: {type: IntegerLiteral, value: 1}, right: {type: IntegerLiteral, value: 1}}",
			want: `unknown binary operator "**"`,
		},
		"unknown primitive": {
			src:  "- {type: VariableDefinition, name: x, varType: {type: PrimitiveTypeExpression, primitive: u7}, value: {type: IntegerLiteral, value: 1}}",
			want: `unknown primitive "u7"`,
		},
		"negative literal": {
			src:  "- {type: IntegerLiteral, value: -1}",
			want: "invalid literal value",
		},
		"if arity": {
			src:  "- {type: IfStatement, conditions: [{type: BooleanLiteral, value: true}], blocks: [[], [], []]}",
			want: "1 conditions and 3 blocks",
		},
		"unknown expectation": {
			src:  "{expect: [no-such-kind], program: []}",
			want: `unknown diagnostic "no-such-kind"`,
		},
		"missing program": {
			src:  "{description: nothing}",
			want: "missing program",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := decodeErr(t, test.src)
			if !strings.Contains(err.Error(), test.want) {
				t.Fatalf("error %q does not mention %q", err, test.want)
			}
			var nodeErr *NodeError
			if !errors.As(err, &nodeErr) || nodeErr.Line == 0 {
				t.Fatalf("expected positioned NodeError, got %T: %v", err, err)
			}
		})
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	err := decodeErr(t, "")
	if !strings.Contains(err.Error(), "empty document") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	program := decode(t, `{"program": [{"type": "ReturnStatement", "argument": {"type": "Identifier", "name": "x"}}]}`)
	ret := program.AST.Statements[0].(*ast.ReturnStatement)
	id, ok := ret.Argument.(*ast.Identifier)
	if !ok || program.Symbols.Name(id.Name) != "x" {
		t.Fatalf("argument unexpected: %#v", ret.Argument)
	}
}

func TestLoadProgramWrapsPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("- {type: Nope}\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	_, err := LoadProgram(path)
	if err == nil || !strings.Contains(err.Error(), "program: parse "+path) {
		t.Fatalf("expected wrapped parse error, got %v", err)
	}
	if _, err := LoadProgram(filepath.Join(dir, "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadProgramFixtures(t *testing.T) {
	program, err := LoadProgram(filepath.Join("testdata", "programs", "loops.yml"))
	if err != nil {
		t.Fatalf("LoadProgram returned error: %v", err)
	}
	if !filepath.IsAbs(program.Path) {
		t.Fatalf("Path should be absolute, got %q", program.Path)
	}
	if len(program.AST.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.AST.Statements))
	}
	loop, ok := program.AST.Statements[1].(*ast.ForLoop)
	if !ok || loop.Init == nil || loop.Condition == nil || loop.Post == nil {
		t.Fatalf("for loop unexpected: %#v", program.AST.Statements[1])
	}
}
