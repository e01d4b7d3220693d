// Package cabs defines the abstract syntax tree for parsed C programs.
package cabs

import (
	"github.com/reedlang/reed-cc/pkg/ctypes"
)

// Node is the base interface for all AST nodes
type Node interface {
	implCabsNode()
}

// Expr is the interface for all expression nodes
type Expr interface {
	Node
	implCabsExpr()
}

// Stmt is the interface for all statement nodes
type Stmt interface {
	Node
	implCabsStmt()
}

// Definition is the interface for top-level definitions
type Definition interface {
	Node
	implDefinition()
}

// BinaryOp represents binary operators
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpAnd // &&
	OpOr  // ||
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl // <<
	OpShr // >>
)

func (op BinaryOp) String() string {
	names := []string{"+", "-", "*", "/", "%", "<", "<=", ">", ">=", "==", "!=", "&&", "||", "&", "|", "^", "<<", ">>"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// UnaryOp represents unary operators. Pre and post increment/decrement
// are distinct operators even though they render identically.
type UnaryOp int

const (
	OpNeg       UnaryOp = iota // -
	OpNot                      // !
	OpBitNot                   // ~
	OpDeref                    // *
	OpAddressOf                // &
	OpPreInc                   // ++x
	OpPreDec                   // --x
	OpPostInc                  // x++
	OpPostDec                  // x--
)

func (op UnaryOp) String() string {
	names := []string{"-", "!", "~", "*", "&", "++", "--", "++", "--"}
	if int(op) < len(names) {
		return names[op]
	}
	return "?"
}

// IsPostfix reports whether op renders after its operand
func (op UnaryOp) IsPostfix() bool {
	return op == OpPostInc || op == OpPostDec
}

// IntLit represents an integer literal
type IntLit struct {
	Value int64
}

// FloatLit represents a floating-point literal
type FloatLit struct {
	Value float64
}

// CharLit represents a character literal
type CharLit struct {
	Value byte
}

// StringLit represents a string literal; adjacent source literals are
// concatenated into one node at parse time.
type StringLit struct {
	Value string
}

// Ident represents an identifier expression
type Ident struct {
	Name string
}

// Binary represents a binary expression
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Unary represents a unary expression
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

// Call represents a function call
type Call struct {
	Func string
	Args []Expr
}

// Assign represents an assignment. Compound assignments are desugared
// at parse time, so the value of `a += b` is Binary{OpAdd, a, b}.
type Assign struct {
	Target Expr
	Value  Expr
}

// Cast represents a cast expression: (type)expr
type Cast struct {
	Type ctypes.Type
	Expr Expr
}

// Index represents array subscript access: arr[idx]
type Index struct {
	Array Expr
	Index Expr
}

// Member represents member access: obj.field
type Member struct {
	Object Expr
	Name   string
}

// Arrow represents member access through a pointer: obj->field
type Arrow struct {
	Object Expr
	Name   string
}

// Conditional represents the ternary operator: cond ? then : else
type Conditional struct {
	Cond Expr
	Then Expr
	Else Expr
}

// SizeOf represents sizeof applied to a parenthesized type
type SizeOf struct {
	Type ctypes.Type
}

// Null represents the NULL literal. It also stands in for constructs
// that are recognized and skipped without structural capture, such as
// compound literals and sizeof applied to an expression.
type Null struct{}

// VarDecl represents a local variable declaration
type VarDecl struct {
	Type ctypes.Type
	Name string
	Init Expr // nil when absent
}

// Return represents a return statement
type Return struct {
	Expr Expr // nil for bare return
}

// Computation represents an expression statement
type Computation struct {
	Expr Expr
}

// If represents an if statement
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil when absent
}

// While represents a while loop
type While struct {
	Cond Expr
	Body []Stmt
}

// DoWhile represents a do...while loop
type DoWhile struct {
	Body []Stmt
	Cond Expr
}

// For represents a for loop; any of the three clauses may be nil
type For struct {
	Init   Stmt
	Cond   Expr
	Update Expr
	Body   []Stmt
}

// SwitchCase holds one case arm; a nil Value means default
type SwitchCase struct {
	Value Expr
	Stmts []Stmt
}

// Switch represents a switch statement. The parser records the
// condition and skips the body, so Cases is populated only by
// external producers.
type Switch struct {
	Expr  Expr
	Cases []SwitchCase
}

// Break represents a break statement
type Break struct{}

// Continue represents a continue statement
type Continue struct{}

// Goto represents a goto statement
type Goto struct {
	Label string
}

// Label represents a label declaration: name:
type Label struct {
	Name string
}

// Block represents a compound statement
type Block struct {
	Items []Stmt
}

// Empty represents a lone semicolon
type Empty struct{}

// Param represents one function parameter
type Param struct {
	Type ctypes.Type
	Name string
}

// FunDef represents a function definition or prototype. A nil Body
// denotes a prototype.
type FunDef struct {
	ReturnType ctypes.Type
	Name       string
	Params     []Param
	Body       []Stmt
}

// Field represents a struct or union field
type Field struct {
	Type ctypes.Type
	Name string
}

// StructDef represents a struct definition
type StructDef struct {
	Name   string
	Fields []Field
}

// UnionDef represents a union definition
type UnionDef struct {
	Name   string
	Fields []Field
}

// EnumValue represents one enum variant; Value is nil when implicit
type EnumValue struct {
	Name  string
	Value *int64
}

// EnumDef represents an enum definition
type EnumDef struct {
	Name   string
	Values []EnumValue
}

// TypedefDef represents a typedef declaration
type TypedefDef struct {
	Name string
	Type ctypes.Type
}

// VarDef represents a global variable definition
type VarDef struct {
	Type ctypes.Type
	Name string
	Init Expr // nil when absent
}

// Include represents an #include directive captured by the sanitizer
type Include struct {
	Path string
}

// Define represents an object-like #define captured by the sanitizer
type Define struct {
	Name  string
	Value string
}

// Program is the root node: an ordered list of top-level definitions
type Program struct {
	Definitions []Definition
}

// Marker methods for interface implementation
func (IntLit) implCabsNode() {}
func (IntLit) implCabsExpr() {}

func (FloatLit) implCabsNode() {}
func (FloatLit) implCabsExpr() {}

func (CharLit) implCabsNode() {}
func (CharLit) implCabsExpr() {}

func (StringLit) implCabsNode() {}
func (StringLit) implCabsExpr() {}

func (Ident) implCabsNode() {}
func (Ident) implCabsExpr() {}

func (Binary) implCabsNode() {}
func (Binary) implCabsExpr() {}

func (Unary) implCabsNode() {}
func (Unary) implCabsExpr() {}

func (Call) implCabsNode() {}
func (Call) implCabsExpr() {}

func (Assign) implCabsNode() {}
func (Assign) implCabsExpr() {}

func (Cast) implCabsNode() {}
func (Cast) implCabsExpr() {}

func (Index) implCabsNode() {}
func (Index) implCabsExpr() {}

func (Member) implCabsNode() {}
func (Member) implCabsExpr() {}

func (Arrow) implCabsNode() {}
func (Arrow) implCabsExpr() {}

func (Conditional) implCabsNode() {}
func (Conditional) implCabsExpr() {}

func (SizeOf) implCabsNode() {}
func (SizeOf) implCabsExpr() {}

func (Null) implCabsNode() {}
func (Null) implCabsExpr() {}

func (VarDecl) implCabsNode() {}
func (VarDecl) implCabsStmt() {}

func (Return) implCabsNode() {}
func (Return) implCabsStmt() {}

func (Computation) implCabsNode() {}
func (Computation) implCabsStmt() {}

func (If) implCabsNode() {}
func (If) implCabsStmt() {}

func (While) implCabsNode() {}
func (While) implCabsStmt() {}

func (DoWhile) implCabsNode() {}
func (DoWhile) implCabsStmt() {}

func (For) implCabsNode() {}
func (For) implCabsStmt() {}

func (Switch) implCabsNode() {}
func (Switch) implCabsStmt() {}

func (Break) implCabsNode() {}
func (Break) implCabsStmt() {}

func (Continue) implCabsNode() {}
func (Continue) implCabsStmt() {}

func (Goto) implCabsNode() {}
func (Goto) implCabsStmt() {}

func (Label) implCabsNode() {}
func (Label) implCabsStmt() {}

func (Block) implCabsNode() {}
func (Block) implCabsStmt() {}

func (Empty) implCabsNode() {}
func (Empty) implCabsStmt() {}

func (FunDef) implCabsNode()   {}
func (FunDef) implDefinition() {}

func (StructDef) implCabsNode()   {}
func (StructDef) implDefinition() {}

func (UnionDef) implCabsNode()   {}
func (UnionDef) implDefinition() {}

func (EnumDef) implCabsNode()   {}
func (EnumDef) implDefinition() {}

func (TypedefDef) implCabsNode()   {}
func (TypedefDef) implDefinition() {}

func (VarDef) implCabsNode()   {}
func (VarDef) implDefinition() {}

func (Include) implCabsNode()   {}
func (Include) implDefinition() {}

func (Define) implCabsNode()   {}
func (Define) implDefinition() {}
