package cabs

import (
	"bytes"
	"testing"

	"github.com/reedlang/reed-cc/pkg/ctypes"
)

func intLit(v int64) IntLit { return IntLit{Value: v} }

func printProgram(defs ...Definition) string {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProgram(&Program{Definitions: defs})
	return buf.String()
}

func TestPrintFunction(t *testing.T) {
	intType := ctypes.Basic{Kind: ctypes.Int}
	fn := FunDef{
		ReturnType: intType,
		Name:       "add",
		Params: []Param{
			{Type: intType, Name: "a"},
			{Type: intType, Name: "b"},
		},
		Body: []Stmt{
			Return{Expr: Binary{Op: OpAdd, Left: Ident{Name: "a"}, Right: Ident{Name: "b"}}},
		},
	}

	expected := `int add(int a, int b) {
    return (a + b);
}

`
	if got := printProgram(fn); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestPrototypeNotEmitted(t *testing.T) {
	proto := FunDef{
		ReturnType: ctypes.Basic{Kind: ctypes.Int},
		Name:       "add",
		Params:     []Param{{Type: ctypes.Basic{Kind: ctypes.Int}, Name: "a"}},
	}
	if got := printProgram(proto); got != "" {
		t.Errorf("prototype should print nothing, got %q", got)
	}
}

func TestPrintStructDef(t *testing.T) {
	sd := StructDef{
		Name: "Point",
		Fields: []Field{
			{Type: ctypes.Basic{Kind: ctypes.Int}, Name: "x"},
			{Type: ctypes.Basic{Kind: ctypes.Int}, Name: "y"},
		},
	}
	expected := `struct Point {
    int x;
    int y;
};

`
	if got := printProgram(sd); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestPrintEnumDef(t *testing.T) {
	five := int64(5)
	ed := EnumDef{
		Name: "Color",
		Values: []EnumValue{
			{Name: "RED"},
			{Name: "GREEN", Value: &five},
			{Name: "BLUE"},
		},
	}
	expected := `enum Color {
    RED,
    GREEN = 5,
    BLUE
};

`
	if got := printProgram(ed); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestPrintDirectives(t *testing.T) {
	got := printProgram(
		Include{Path: "stdio.h"},
		Define{Name: "MAX", Value: "10"},
	)
	expected := "#include <stdio.h>\n#define MAX 10\n"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestPrintArrayDeclaration(t *testing.T) {
	intType := ctypes.Basic{Kind: ctypes.Int}
	fn := FunDef{
		ReturnType: ctypes.Basic{Kind: ctypes.Void},
		Name:       "f",
		Body: []Stmt{
			VarDecl{Type: ctypes.Array{Elem: intType, Size: 3}, Name: "a"},
		},
	}
	expected := `void f() {
    int a[3];
}

`
	if got := printProgram(fn); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestPrintControlFlow(t *testing.T) {
	fn := FunDef{
		ReturnType: ctypes.Basic{Kind: ctypes.Void},
		Name:       "f",
		Body: []Stmt{
			If{
				Cond: Binary{Op: OpGt, Left: Ident{Name: "x"}, Right: intLit(0)},
				Then: []Stmt{Computation{Expr: Unary{Op: OpPostDec, Operand: Ident{Name: "x"}}}},
				Else: []Stmt{Break{}},
			},
			While{
				Cond: Ident{Name: "x"},
				Body: []Stmt{Continue{}},
			},
		},
	}
	expected := `void f() {
    if ((x > 0)) {
        (x--);
    } else {
        break;
    }
    while (x) {
        continue;
    }
}

`
	if got := printProgram(fn); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestPrintForLoop(t *testing.T) {
	intType := ctypes.Basic{Kind: ctypes.Int}
	fn := FunDef{
		ReturnType: ctypes.Basic{Kind: ctypes.Void},
		Name:       "f",
		Body: []Stmt{
			For{
				Init:   VarDecl{Type: intType, Name: "i", Init: intLit(0)},
				Cond:   Binary{Op: OpLt, Left: Ident{Name: "i"}, Right: intLit(10)},
				Update: Unary{Op: OpPostInc, Operand: Ident{Name: "i"}},
				Body:   []Stmt{Computation{Expr: Call{Func: "g", Args: []Expr{Ident{Name: "i"}}}}},
			},
		},
	}
	expected := `void f() {
    for (int i = 0; (i < 10); (i++)) {
        g(i);
    }
}

`
	if got := printProgram(fn); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestExprRendering(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{})
	tests := []struct {
		expr     Expr
		expected string
	}{
		{intLit(42), "42"},
		{StringLit{Value: "hi"}, `"hi"`},
		{CharLit{Value: 'x'}, "'x'"},
		{Null{}, "NULL"},
		{Assign{Target: Ident{Name: "a"}, Value: intLit(1)}, "a = 1"},
		{Index{Array: Ident{Name: "a"}, Index: intLit(0)}, "a[0]"},
		{Member{Object: Ident{Name: "s"}, Name: "x"}, "s.x"},
		{Arrow{Object: Ident{Name: "p"}, Name: "x"}, "p->x"},
		{Cast{Type: ctypes.Basic{Kind: ctypes.Int}, Expr: Ident{Name: "x"}}, "((int)x)"},
		{SizeOf{Type: ctypes.Basic{Kind: ctypes.Int}}, "sizeof(int)"},
		{Unary{Op: OpNeg, Operand: intLit(1)}, "(-1)"},
		{Unary{Op: OpPreInc, Operand: Ident{Name: "x"}}, "(++x)"},
		{
			Conditional{Cond: Ident{Name: "c"}, Then: intLit(1), Else: intLit(0)},
			"(c ? 1 : 0)",
		},
	}
	for _, tt := range tests {
		if got := p.exprString(tt.expr); got != tt.expected {
			t.Errorf("exprString(%v) = %q, want %q", tt.expr, got, tt.expected)
		}
	}
}
