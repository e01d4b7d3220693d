// Package lexer tokenizes C source code.
package lexer

import (
	"unicode"
)

// Lexer tokenizes C source code
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // next reading position
	ch      byte // current character
	line    int
	column  int
}

// New creates a new Lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	l.column++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) peekChar2() byte {
	if l.readPos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.readPos+1]
}

// Tokenize consumes the whole input and returns the token sequence,
// terminated by a TokenEOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// NextToken returns the next token from the input. Multi-character
// operators take the longest valid match. Characters that begin no
// token are skipped without producing one.
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()
		l.skipComments()
		l.skipWhitespace()

		tok := Token{Line: l.line, Column: l.column}

		switch l.ch {
		case 0:
			tok.Type = TokenEOF
			tok.Literal = ""
			return tok
		case '+':
			switch l.peekChar() {
			case '+':
				tok = l.twoCharToken(TokenIncrement, "++")
			case '=':
				tok = l.twoCharToken(TokenPlusAssign, "+=")
			default:
				tok = l.newToken(TokenPlus, l.ch)
			}
		case '-':
			switch l.peekChar() {
			case '-':
				tok = l.twoCharToken(TokenDecrement, "--")
			case '=':
				tok = l.twoCharToken(TokenMinusAssign, "-=")
			case '>':
				tok = l.twoCharToken(TokenArrow, "->")
			default:
				tok = l.newToken(TokenMinus, l.ch)
			}
		case '*':
			if l.peekChar() == '=' {
				tok = l.twoCharToken(TokenStarAssign, "*=")
			} else {
				tok = l.newToken(TokenStar, l.ch)
			}
		case '/':
			if l.peekChar() == '=' {
				tok = l.twoCharToken(TokenSlashAssign, "/=")
			} else {
				tok = l.newToken(TokenSlash, l.ch)
			}
		case '%':
			if l.peekChar() == '=' {
				tok = l.twoCharToken(TokenPercentAssign, "%=")
			} else {
				tok = l.newToken(TokenPercent, l.ch)
			}
		case '=':
			if l.peekChar() == '=' {
				tok = l.twoCharToken(TokenEq, "==")
			} else {
				tok = l.newToken(TokenAssign, l.ch)
			}
		case '!':
			if l.peekChar() == '=' {
				tok = l.twoCharToken(TokenNe, "!=")
			} else {
				tok = l.newToken(TokenNot, l.ch)
			}
		case '<':
			switch l.peekChar() {
			case '=':
				tok = l.twoCharToken(TokenLe, "<=")
			case '<':
				if l.peekChar2() == '=' {
					tok = l.threeCharToken(TokenShlAssign, "<<=")
				} else {
					tok = l.twoCharToken(TokenShl, "<<")
				}
			default:
				tok = l.newToken(TokenLt, l.ch)
			}
		case '>':
			switch l.peekChar() {
			case '=':
				tok = l.twoCharToken(TokenGe, ">=")
			case '>':
				if l.peekChar2() == '=' {
					tok = l.threeCharToken(TokenShrAssign, ">>=")
				} else {
					tok = l.twoCharToken(TokenShr, ">>")
				}
			default:
				tok = l.newToken(TokenGt, l.ch)
			}
		case '&':
			switch l.peekChar() {
			case '&':
				tok = l.twoCharToken(TokenAnd, "&&")
			case '=':
				tok = l.twoCharToken(TokenAndAssign, "&=")
			default:
				tok = l.newToken(TokenAmpersand, l.ch)
			}
		case '|':
			switch l.peekChar() {
			case '|':
				tok = l.twoCharToken(TokenOr, "||")
			case '=':
				tok = l.twoCharToken(TokenOrAssign, "|=")
			default:
				tok = l.newToken(TokenPipe, l.ch)
			}
		case '^':
			if l.peekChar() == '=' {
				tok = l.twoCharToken(TokenXorAssign, "^=")
			} else {
				tok = l.newToken(TokenCaret, l.ch)
			}
		case '~':
			tok = l.newToken(TokenTilde, l.ch)
		case '?':
			tok = l.newToken(TokenQuestion, l.ch)
		case ':':
			tok = l.newToken(TokenColon, l.ch)
		case '(':
			tok = l.newToken(TokenLParen, l.ch)
		case ')':
			tok = l.newToken(TokenRParen, l.ch)
		case '{':
			tok = l.newToken(TokenLBrace, l.ch)
		case '}':
			tok = l.newToken(TokenRBrace, l.ch)
		case '[':
			tok = l.newToken(TokenLBracket, l.ch)
		case ']':
			tok = l.newToken(TokenRBracket, l.ch)
		case ';':
			tok = l.newToken(TokenSemicolon, l.ch)
		case ',':
			tok = l.newToken(TokenComma, l.ch)
		case '.':
			if l.peekChar() == '.' && l.peekChar2() == '.' {
				tok = l.threeCharToken(TokenEllipsis, "...")
			} else {
				tok = l.newToken(TokenDot, l.ch)
			}
		case '"':
			tok.Type = TokenStringLit
			tok.Literal = l.readString()
			return tok
		case '\'':
			tok.Type = TokenCharLit
			tok.Literal = l.readCharLit()
			return tok
		default:
			if isLetter(l.ch) {
				tok.Literal = l.readIdentifier()
				tok.Type = LookupIdent(tok.Literal)
				return tok
			} else if isDigit(l.ch) {
				tok.Literal = l.readNumber()
				if hasDot(tok.Literal) {
					tok.Type = TokenFloatLit
				} else {
					tok.Type = TokenIntLit
				}
				return tok
			}
			// Unrecognized character: drop it and keep scanning.
			l.readChar()
			continue
		}

		l.readChar()
		return tok
	}
}

func (l *Lexer) newToken(tokenType TokenType, ch byte) Token {
	return Token{Type: tokenType, Literal: string(ch), Line: l.line, Column: l.column}
}

func (l *Lexer) twoCharToken(tokenType TokenType, literal string) Token {
	tok := Token{Type: tokenType, Literal: literal, Line: l.line, Column: l.column}
	l.readChar()
	return tok
}

func (l *Lexer) threeCharToken(tokenType TokenType, literal string) Token {
	tok := Token{Type: tokenType, Literal: literal, Line: l.line, Column: l.column}
	l.readChar()
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) skipComments() {
	for l.ch == '/' {
		if l.peekChar() == '/' {
			// Single-line comment
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			l.skipWhitespace()
		} else if l.peekChar() == '*' {
			// Multi-line comment
			l.readChar() // consume /
			l.readChar() // consume *
			for {
				if l.ch == 0 {
					break
				}
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar() // consume *
					l.readChar() // consume /
					break
				}
				l.readChar()
			}
			l.skipWhitespace()
		} else {
			break
		}
	}
}

func (l *Lexer) readIdentifier() string {
	pos := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readNumber reads a maximal digit run containing at most one decimal
// point.
func (l *Lexer) readNumber() string {
	pos := l.pos
	seenDot := false
	for isDigit(l.ch) || (l.ch == '.' && !seenDot && isDigit(l.peekChar())) {
		if l.ch == '.' {
			seenDot = true
		}
		l.readChar()
	}
	return l.input[pos:l.pos]
}

// readString reads a string literal, decoding backslash escapes.
// Unknown escapes pass through as the escaped character.
func (l *Lexer) readString() string {
	l.readChar() // consume opening quote
	var out []byte
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
			out = append(out, unescape(l.ch))
		} else {
			out = append(out, l.ch)
		}
		l.readChar()
	}
	l.readChar() // consume closing quote
	return string(out)
}

// readCharLit reads a character literal, decoding one escape if present.
func (l *Lexer) readCharLit() string {
	l.readChar() // consume opening quote
	var ch byte
	if l.ch == '\\' {
		l.readChar()
		ch = unescape(l.ch)
	} else {
		ch = l.ch
	}
	l.readChar()
	if l.ch == '\'' {
		l.readChar()
	}
	return string(ch)
}

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '"':
		return '"'
	default:
		return ch
	}
}

func hasDot(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return true
		}
	}
	return false
}

func isLetter(ch byte) bool {
	return unicode.IsLetter(rune(ch)) || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
