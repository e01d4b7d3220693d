package ctypes

import "testing"

func TestTypeString(t *testing.T) {
	tests := []struct {
		name    string
		typ     Type
		wantStr string
	}{
		{"void", Basic{Kind: Void}, "void"},
		{"int", Basic{Kind: Int}, "int"},
		{"unsigned int", Basic{Kind: UnsignedInt}, "unsigned int"},
		{"char", Basic{Kind: Char}, "char"},
		{"unsigned char", Basic{Kind: UnsignedChar}, "unsigned char"},
		{"signed char", Basic{Kind: SignedChar}, "signed char"},
		{"short", Basic{Kind: Short}, "short"},
		{"long", Basic{Kind: Long}, "long"},
		{"float", Basic{Kind: Float}, "float"},
		{"double", Basic{Kind: Double}, "double"},
		{"pointer to int", Pointer{Elem: Basic{Kind: Int}}, "int*"},
		{"pointer to pointer", Pointer{Elem: Pointer{Elem: Basic{Kind: Char}}}, "char**"},
		{"array of int", Array{Elem: Basic{Kind: Int}, Size: 10}, "int[10]"},
		{"incomplete array", Array{Elem: Basic{Kind: Int}, Size: -1}, "int[]"},
		{"struct reference", Struct{Name: "Point"}, "struct Point"},
		{"union reference", Union{Name: "Value"}, "union Value"},
		{"enum reference", Enum{Name: "Color"}, "enum Color"},
		{"typedef reference", Typedef{Name: "MyInt"}, "MyInt"},
		{"const int", Const{Elem: Basic{Kind: Int}}, "const int"},
		{"volatile char", Volatile{Elem: Basic{Kind: Char}}, "volatile char"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestTypeEquality(t *testing.T) {
	intType := Basic{Kind: Int}
	charType := Basic{Kind: Char}

	tests := []struct {
		name  string
		a, b  Type
		equal bool
	}{
		{"int == int", intType, intType, true},
		{"int != unsigned int", intType, Basic{Kind: UnsignedInt}, false},
		{"int != char", intType, charType, false},
		{"pointer to int == pointer to int", Pointer{Elem: intType}, Pointer{Elem: intType}, true},
		{"pointer to int != pointer to char", Pointer{Elem: intType}, Pointer{Elem: charType}, false},
		{"pointer != int", Pointer{Elem: intType}, intType, false},
		{"array[10] == array[10]", Array{Elem: intType, Size: 10}, Array{Elem: intType, Size: 10}, true},
		{"array[10] != array[20]", Array{Elem: intType, Size: 10}, Array{Elem: intType, Size: 20}, false},
		{"struct A == struct A", Struct{Name: "A"}, Struct{Name: "A"}, true},
		{"struct A != struct B", Struct{Name: "A"}, Struct{Name: "B"}, false},
		{"struct A != union A", Struct{Name: "A"}, Union{Name: "A"}, false},
		{"typedef T == typedef T", Typedef{Name: "T"}, Typedef{Name: "T"}, true},
		{"const int == const int", Const{Elem: intType}, Const{Elem: intType}, true},
		{"const int != int", Const{Elem: intType}, intType, false},
		{
			"function types by signature",
			Function{Return: intType, Params: []Type{intType}},
			Function{Return: intType, Params: []Type{intType}},
			true,
		},
		{
			"function arity mismatch",
			Function{Return: intType, Params: []Type{intType}},
			Function{Return: intType, Params: []Type{intType, intType}},
			false,
		},
		{"nil == nil", nil, nil, true},
		{"nil != int", nil, intType, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.equal {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.equal)
			}
		})
	}
}
