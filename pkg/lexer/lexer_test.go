package lexer

import "testing"

func TestNextToken(t *testing.T) {
	input := `int main() { return 42; }`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenInt, "int"},
		{TokenIdent, "main"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenLBrace, "{"},
		{TokenReturn, "return"},
		{TokenIntLit, "42"},
		{TokenSemicolon, ";"},
		{TokenRBrace, "}"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / % = == != < <= > >= && || ! & | ^ ~ << >> ? :`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenPlus, "+"},
		{TokenMinus, "-"},
		{TokenStar, "*"},
		{TokenSlash, "/"},
		{TokenPercent, "%"},
		{TokenAssign, "="},
		{TokenEq, "=="},
		{TokenNe, "!="},
		{TokenLt, "<"},
		{TokenLe, "<="},
		{TokenGt, ">"},
		{TokenGe, ">="},
		{TokenAnd, "&&"},
		{TokenOr, "||"},
		{TokenNot, "!"},
		{TokenAmpersand, "&"},
		{TokenPipe, "|"},
		{TokenCaret, "^"},
		{TokenTilde, "~"},
		{TokenShl, "<<"},
		{TokenShr, ">>"},
		{TokenQuestion, "?"},
		{TokenColon, ":"},
		{TokenEOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestCompoundAssignAndIncDec(t *testing.T) {
	input := `+= -= *= /= %= &= |= ^= <<= >>= ++ -- -> ...`

	tests := []TokenType{
		TokenPlusAssign,
		TokenMinusAssign,
		TokenStarAssign,
		TokenSlashAssign,
		TokenPercentAssign,
		TokenAndAssign,
		TokenOrAssign,
		TokenXorAssign,
		TokenShlAssign,
		TokenShrAssign,
		TokenIncrement,
		TokenDecrement,
		TokenArrow,
		TokenEllipsis,
		TokenEOF,
	}

	l := New(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, expected, tok.Type)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `if else while do for switch case default break continue goto sizeof
		struct union enum typedef const volatile static extern unsigned signed`

	tests := []TokenType{
		TokenIf, TokenElse, TokenWhile, TokenDo, TokenFor,
		TokenSwitch, TokenCase, TokenDefault, TokenBreak, TokenContinue,
		TokenGoto, TokenSizeof,
		TokenStruct, TokenUnion, TokenEnum, TokenTypedef,
		TokenConst, TokenVolatile, TokenStatic, TokenExtern,
		TokenUnsigned, TokenSigned,
		TokenEOF,
	}

	l := New(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, expected, tok.Type)
		}
	}
}

func TestComments(t *testing.T) {
	input := `int a; // line comment
	/* block
	   comment */ int b;`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenInt, "int"},
		{TokenIdent, "a"},
		{TokenSemicolon, ";"},
		{TokenInt, "int"},
		{TokenIdent, "b"},
		{TokenSemicolon, ";"},
		{TokenEOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
	}
}

func TestStringAndCharLiterals(t *testing.T) {
	input := `"hello" "a\nb" 'x' '\n' '\\'`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenStringLit, "hello"},
		{TokenStringLit, "a\nb"},
		{TokenCharLit, "x"},
		{TokenCharLit, "\n"},
		{TokenCharLit, "\\"},
		{TokenEOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	input := `0 42 3.14 10.0`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TokenIntLit, "0"},
		{TokenIntLit, "42"},
		{TokenFloatLit, "3.14"},
		{TokenFloatLit, "10.0"},
		{TokenEOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

// Characters outside the language are dropped without a token
func TestUnrecognizedCharactersSkipped(t *testing.T) {
	input := "int @ $ a;"

	tests := []TokenType{TokenInt, TokenIdent, TokenSemicolon, TokenEOF}

	l := New(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, expected, tok.Type)
		}
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	input := "int x;\n  return;"

	l := New(input)

	tok := l.NextToken() // int
	if tok.Line != 1 || tok.Column != 1 {
		t.Errorf("int: expected 1:1, got %d:%d", tok.Line, tok.Column)
	}
	tok = l.NextToken() // x
	if tok.Line != 1 || tok.Column != 5 {
		t.Errorf("x: expected 1:5, got %d:%d", tok.Line, tok.Column)
	}
	l.NextToken()       // ;
	tok = l.NextToken() // return
	if tok.Line != 2 || tok.Column != 3 {
		t.Errorf("return: expected 2:3, got %d:%d", tok.Line, tok.Column)
	}
}

func TestTokenize(t *testing.T) {
	tokens := New("int x;").Tokenize()
	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(tokens))
	}
	if tokens[len(tokens)-1].Type != TokenEOF {
		t.Errorf("last token should be EOF, got %q", tokens[len(tokens)-1].Type)
	}
}
