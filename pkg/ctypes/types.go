// Package ctypes defines the C type model built by the parser.
//
// A type is an owned tree: every composite node holds its own subtree
// and nodes are never mutated after construction.
package ctypes

import "strconv"

// Type is the interface for all C types
type Type interface {
	implType()
	String() string
}

// BasicKind identifies a non-composite type
type BasicKind int

const (
	Int BasicKind = iota
	Char
	Float
	Double
	Void
	Long
	Short
	UnsignedInt
	UnsignedChar
	UnsignedLong
	UnsignedShort
	SignedInt
	SignedChar
)

var basicNames = []string{
	"int",
	"char",
	"float",
	"double",
	"void",
	"long",
	"short",
	"unsigned int",
	"unsigned char",
	"unsigned long",
	"unsigned short",
	"signed int",
	"signed char",
}

// Basic represents a non-composite type such as int or unsigned char
type Basic struct {
	Kind BasicKind
}

// Pointer represents a pointer type
type Pointer struct {
	Elem Type
}

// Array represents an array type
type Array struct {
	Elem Type
	Size int64 // -1 for incomplete array
}

// Function represents a function type
type Function struct {
	Return Type
	Params []Type
}

// Struct is a reference to a struct type by tag name
type Struct struct {
	Name string
}

// Union is a reference to a union type by tag name
type Union struct {
	Name string
}

// Enum is a reference to an enum type by tag name
type Enum struct {
	Name string
}

// Typedef is a reference to a typedef-declared name
type Typedef struct {
	Name string
}

// Const wraps a type with the const qualifier
type Const struct {
	Elem Type
}

// Volatile wraps a type with the volatile qualifier
type Volatile struct {
	Elem Type
}

// Marker methods for Type interface
func (Basic) implType()    {}
func (Pointer) implType()  {}
func (Array) implType()    {}
func (Function) implType() {}
func (Struct) implType()   {}
func (Union) implType()    {}
func (Enum) implType()     {}
func (Typedef) implType()  {}
func (Const) implType()    {}
func (Volatile) implType() {}

func (t Basic) String() string {
	if int(t.Kind) < len(basicNames) {
		return basicNames[t.Kind]
	}
	return "?"
}

func (t Pointer) String() string {
	return t.Elem.String() + "*"
}

func (t Array) String() string {
	if t.Size < 0 {
		return t.Elem.String() + "[]"
	}
	return t.Elem.String() + "[" + strconv.FormatInt(t.Size, 10) + "]"
}

func (t Function) String() string {
	return "/* function pointer */"
}

func (t Struct) String() string {
	return "struct " + t.Name
}

func (t Union) String() string {
	return "union " + t.Name
}

func (t Enum) String() string {
	return "enum " + t.Name
}

func (t Typedef) String() string {
	return t.Name
}

func (t Const) String() string {
	return "const " + t.Elem.String()
}

func (t Volatile) String() string {
	return "volatile " + t.Elem.String()
}

// Equal checks if two types are equal
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch ta := a.(type) {
	case Basic:
		tb, ok := b.(Basic)
		return ok && ta.Kind == tb.Kind
	case Pointer:
		tb, ok := b.(Pointer)
		return ok && Equal(ta.Elem, tb.Elem)
	case Array:
		tb, ok := b.(Array)
		return ok && ta.Size == tb.Size && Equal(ta.Elem, tb.Elem)
	case Function:
		tb, ok := b.(Function)
		if !ok || len(ta.Params) != len(tb.Params) {
			return false
		}
		if !Equal(ta.Return, tb.Return) {
			return false
		}
		for i, p := range ta.Params {
			if !Equal(p, tb.Params[i]) {
				return false
			}
		}
		return true
	case Struct:
		tb, ok := b.(Struct)
		return ok && ta.Name == tb.Name
	case Union:
		tb, ok := b.(Union)
		return ok && ta.Name == tb.Name
	case Enum:
		tb, ok := b.(Enum)
		return ok && ta.Name == tb.Name
	case Typedef:
		tb, ok := b.(Typedef)
		return ok && ta.Name == tb.Name
	case Const:
		tb, ok := b.(Const)
		return ok && Equal(ta.Elem, tb.Elem)
	case Volatile:
		tb, ok := b.(Volatile)
		return ok && Equal(ta.Elem, tb.Elem)
	}
	return false
}
