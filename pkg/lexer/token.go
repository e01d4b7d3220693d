package lexer

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Literals
	TokenIdent     // main, foo, x
	TokenIntLit    // 42
	TokenFloatLit  // 3.14
	TokenCharLit   // 'a'
	TokenStringLit // "hello"

	// Type keywords
	TokenInt      // int
	TokenChar     // char
	TokenFloat    // float
	TokenDouble   // double
	TokenVoid     // void
	TokenLong     // long
	TokenShort    // short
	TokenSigned   // signed
	TokenUnsigned // unsigned
	TokenStruct   // struct
	TokenUnion    // union
	TokenEnum     // enum
	TokenTypedef  // typedef
	TokenConst    // const
	TokenVolatile // volatile
	TokenStatic   // static
	TokenExtern   // extern
	TokenAuto     // auto
	TokenRegister // register

	// Control-flow keywords
	TokenIf       // if
	TokenElse     // else
	TokenWhile    // while
	TokenDo       // do
	TokenFor      // for
	TokenSwitch   // switch
	TokenCase     // case
	TokenDefault  // default
	TokenBreak    // break
	TokenContinue // continue
	TokenReturn   // return
	TokenGoto     // goto
	TokenSizeof   // sizeof

	// Operators
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenPercent   // %
	TokenAssign    // =
	TokenEq        // ==
	TokenNe        // !=
	TokenLt        // <
	TokenLe        // <=
	TokenGt        // >
	TokenGe        // >=
	TokenAnd       // &&
	TokenOr        // ||
	TokenNot       // !
	TokenAmpersand // &
	TokenPipe      // |
	TokenCaret     // ^
	TokenTilde     // ~
	TokenShl       // <<
	TokenShr       // >>
	TokenQuestion  // ?
	TokenColon     // :

	// Compound assignment operators
	TokenPlusAssign    // +=
	TokenMinusAssign   // -=
	TokenStarAssign    // *=
	TokenSlashAssign   // /=
	TokenPercentAssign // %=
	TokenAndAssign     // &=
	TokenOrAssign      // |=
	TokenXorAssign     // ^=
	TokenShlAssign     // <<=
	TokenShrAssign     // >>=

	// Increment/decrement
	TokenIncrement // ++
	TokenDecrement // --

	// Delimiters
	TokenLParen    // (
	TokenRParen    // )
	TokenLBrace    // {
	TokenRBrace    // }
	TokenLBracket  // [
	TokenRBracket  // ]
	TokenSemicolon // ;
	TokenComma     // ,
	TokenDot       // .
	TokenArrow     // ->
	TokenEllipsis  // ...
)

var tokenNames = map[TokenType]string{
	TokenEOF:           "EOF",
	TokenIdent:         "IDENT",
	TokenIntLit:        "INT",
	TokenFloatLit:      "FLOAT",
	TokenCharLit:       "CHAR",
	TokenStringLit:     "STRING",
	TokenInt:           "int",
	TokenChar:          "char",
	TokenFloat:         "float",
	TokenDouble:        "double",
	TokenVoid:          "void",
	TokenLong:          "long",
	TokenShort:         "short",
	TokenSigned:        "signed",
	TokenUnsigned:      "unsigned",
	TokenStruct:        "struct",
	TokenUnion:         "union",
	TokenEnum:          "enum",
	TokenTypedef:       "typedef",
	TokenConst:         "const",
	TokenVolatile:      "volatile",
	TokenStatic:        "static",
	TokenExtern:        "extern",
	TokenAuto:          "auto",
	TokenRegister:      "register",
	TokenIf:            "if",
	TokenElse:          "else",
	TokenWhile:         "while",
	TokenDo:            "do",
	TokenFor:           "for",
	TokenSwitch:        "switch",
	TokenCase:          "case",
	TokenDefault:       "default",
	TokenBreak:         "break",
	TokenContinue:      "continue",
	TokenReturn:        "return",
	TokenGoto:          "goto",
	TokenSizeof:        "sizeof",
	TokenPlus:          "+",
	TokenMinus:         "-",
	TokenStar:          "*",
	TokenSlash:         "/",
	TokenPercent:       "%",
	TokenAssign:        "=",
	TokenEq:            "==",
	TokenNe:            "!=",
	TokenLt:            "<",
	TokenLe:            "<=",
	TokenGt:            ">",
	TokenGe:            ">=",
	TokenAnd:           "&&",
	TokenOr:            "||",
	TokenNot:           "!",
	TokenAmpersand:     "&",
	TokenPipe:          "|",
	TokenCaret:         "^",
	TokenTilde:         "~",
	TokenShl:           "<<",
	TokenShr:           ">>",
	TokenQuestion:      "?",
	TokenColon:         ":",
	TokenPlusAssign:    "+=",
	TokenMinusAssign:   "-=",
	TokenStarAssign:    "*=",
	TokenSlashAssign:   "/=",
	TokenPercentAssign: "%=",
	TokenAndAssign:     "&=",
	TokenOrAssign:      "|=",
	TokenXorAssign:     "^=",
	TokenShlAssign:     "<<=",
	TokenShrAssign:     ">>=",
	TokenIncrement:     "++",
	TokenDecrement:     "--",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenArrow:         "->",
	TokenEllipsis:      "...",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token. String and char literals carry
// escape-decoded text in Literal; numeric literals carry source text.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// keywords maps keyword strings to token types
var keywords = map[string]TokenType{
	"int":      TokenInt,
	"char":     TokenChar,
	"float":    TokenFloat,
	"double":   TokenDouble,
	"void":     TokenVoid,
	"long":     TokenLong,
	"short":    TokenShort,
	"signed":   TokenSigned,
	"unsigned": TokenUnsigned,
	"struct":   TokenStruct,
	"union":    TokenUnion,
	"enum":     TokenEnum,
	"typedef":  TokenTypedef,
	"const":    TokenConst,
	"volatile": TokenVolatile,
	"static":   TokenStatic,
	"extern":   TokenExtern,
	"auto":     TokenAuto,
	"register": TokenRegister,
	"if":       TokenIf,
	"else":     TokenElse,
	"while":    TokenWhile,
	"do":       TokenDo,
	"for":      TokenFor,
	"switch":   TokenSwitch,
	"case":     TokenCase,
	"default":  TokenDefault,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"return":   TokenReturn,
	"goto":     TokenGoto,
	"sizeof":   TokenSizeof,
}

// LookupIdent returns the token type for an identifier (keyword or IDENT)
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}

// IsTypeKeyword reports whether t can begin a type-specifier run on its
// own. Typedef names are not covered; only the parser knows those.
func (t TokenType) IsTypeKeyword() bool {
	switch t {
	case TokenInt, TokenChar, TokenFloat, TokenDouble, TokenVoid,
		TokenLong, TokenShort, TokenSigned, TokenUnsigned,
		TokenStruct, TokenUnion, TokenEnum,
		TokenConst, TokenVolatile,
		TokenStatic, TokenExtern, TokenAuto, TokenRegister:
		return true
	}
	return false
}
