package parser

import (
	"github.com/reedlang/reed-cc/pkg/ctypes"
	"github.com/reedlang/reed-cc/pkg/lexer"
)

// qualifiers records the const and volatile keywords seen in a
// specifier run. They wrap the type outermost, so callers apply them
// only after pointer stars and declarator wrapping.
type qualifiers struct {
	isConst    bool
	isVolatile bool
}

func (q qualifiers) apply(typ ctypes.Type) ctypes.Type {
	if q.isConst {
		typ = ctypes.Const{Elem: typ}
	}
	if q.isVolatile {
		typ = ctypes.Volatile{Elem: typ}
	}
	return typ
}

// parseSpecifier consumes a maximal run of type-specifier tokens and
// resolves them to one concrete base type plus the qualifiers seen,
// without consuming any pointer stars (those belong to the
// declarator).
//
// Storage-class keywords are discarded. Qualifiers, sign keywords,
// long/short and the base keywords may appear in any order; the run
// ends at the first token that is none of these. A bare identifier is
// consumed only when it is a registered typedef name, so a variable
// name is never swallowed as a type.
func (p *Parser) parseSpecifier() (ctypes.Type, qualifiers, error) {
	var (
		quals      qualifiers
		isUnsigned bool
		isSigned   bool
		longCount  int
		sawShort   bool
		sawInt     bool
		sawChar    bool
		sawFloat   bool
		sawDouble  bool
		sawVoid    bool
		named      ctypes.Type // struct/union/enum/typedef reference
	)
	consumed := 0

	for {
		tok := p.cur()
		switch tok.Type {
		case lexer.TokenStatic, lexer.TokenExtern, lexer.TokenAuto, lexer.TokenRegister:
			// Storage class does not affect the type
		case lexer.TokenConst:
			quals.isConst = true
		case lexer.TokenVolatile:
			quals.isVolatile = true
		case lexer.TokenUnsigned:
			isUnsigned = true
		case lexer.TokenSigned:
			isSigned = true
		case lexer.TokenLong:
			longCount++
		case lexer.TokenShort:
			sawShort = true
		case lexer.TokenInt:
			sawInt = true
		case lexer.TokenChar:
			sawChar = true
		case lexer.TokenFloat:
			sawFloat = true
		case lexer.TokenDouble:
			sawDouble = true
		case lexer.TokenVoid:
			sawVoid = true
		case lexer.TokenStruct, lexer.TokenUnion, lexer.TokenEnum:
			named2, err := p.parseAggregateRef(tok.Type)
			if err != nil {
				return nil, qualifiers{}, err
			}
			named = named2
			consumed++
			continue // parseAggregateRef advanced past its tokens
		case lexer.TokenIdent:
			// Only a registered typedef name is a type here, and only
			// when no base keyword has claimed the type yet.
			hasBase := sawInt || sawChar || sawFloat || sawDouble || sawVoid ||
				sawShort || longCount > 0 || isUnsigned || isSigned
			if named != nil || hasBase || !p.typedefs[tok.Literal] {
				goto done
			}
			named = ctypes.Typedef{Name: tok.Literal}
		default:
			goto done
		}
		p.advance()
		consumed++
	}

done:
	if consumed == 0 {
		return nil, qualifiers{}, p.errorf("expected type, got %s", p.cur().Type)
	}

	var typ ctypes.Type
	switch {
	case named != nil:
		typ = named
	case sawChar:
		switch {
		case isUnsigned:
			typ = ctypes.Basic{Kind: ctypes.UnsignedChar}
		case isSigned:
			typ = ctypes.Basic{Kind: ctypes.SignedChar}
		default:
			typ = ctypes.Basic{Kind: ctypes.Char}
		}
	case sawDouble:
		typ = ctypes.Basic{Kind: ctypes.Double}
	case sawFloat:
		typ = ctypes.Basic{Kind: ctypes.Float}
	case sawVoid:
		typ = ctypes.Basic{Kind: ctypes.Void}
	case sawShort:
		if isUnsigned {
			typ = ctypes.Basic{Kind: ctypes.UnsignedShort}
		} else {
			typ = ctypes.Basic{Kind: ctypes.Short}
		}
	case longCount > 0:
		if isUnsigned {
			typ = ctypes.Basic{Kind: ctypes.UnsignedLong}
		} else {
			typ = ctypes.Basic{Kind: ctypes.Long}
		}
	default:
		switch {
		case isUnsigned:
			typ = ctypes.Basic{Kind: ctypes.UnsignedInt}
		case isSigned:
			typ = ctypes.Basic{Kind: ctypes.SignedInt}
		default:
			typ = ctypes.Basic{Kind: ctypes.Int}
		}
	}

	return typ, quals, nil
}

// parseAggregateRef parses the remainder of `struct tag`, `union tag`
// or `enum tag` inside a specifier run. An inline `{ ... }` definition
// is anonymous and its body is skipped as opaque.
func (p *Parser) parseAggregateRef(kw lexer.TokenType) (ctypes.Type, error) {
	p.advance() // consume the keyword
	name := ""
	if p.curIs(lexer.TokenIdent) {
		name = p.cur().Literal
		p.advance()
	}
	if p.curIs(lexer.TokenLBrace) {
		if err := p.skipBraces(); err != nil {
			return nil, err
		}
	} else if name == "" {
		switch kw {
		case lexer.TokenStruct:
			return nil, p.errorf("expected struct name, got %s", p.cur().Type)
		case lexer.TokenUnion:
			return nil, p.errorf("expected union name, got %s", p.cur().Type)
		default:
			return nil, p.errorf("expected enum name, got %s", p.cur().Type)
		}
	}
	switch kw {
	case lexer.TokenStruct:
		return ctypes.Struct{Name: name}, nil
	case lexer.TokenUnion:
		return ctypes.Union{Name: name}, nil
	default:
		return ctypes.Enum{Name: name}, nil
	}
}

// parseType parses a full type as it appears without a declarator, as
// in casts, sizeof and parameter positions: a specifier run followed by
// any number of pointer stars, with qualifiers wrapping last.
func (p *Parser) parseType() (ctypes.Type, error) {
	typ, quals, err := p.parseSpecifier()
	if err != nil {
		return nil, err
	}
	for p.curIs(lexer.TokenStar) {
		p.advance()
		typ = ctypes.Pointer{Elem: typ}
	}
	return quals.apply(typ), nil
}

// typeWrap composes the pointer, array and function wrapping that one
// declarator level applies around a base type.
type typeWrap func(ctypes.Type) ctypes.Type

// parseDeclarator parses a declarator over the given base type and
// returns the bound name together with the fully wrapped type.
func (p *Parser) parseDeclarator(base ctypes.Type) (string, ctypes.Type, error) {
	name, wrap, err := p.declarator()
	if err != nil {
		return "", nil, err
	}
	return name, wrap(base), nil
}

// declarator parses one declarator level without applying it, so that
// a parenthesized sub-declarator can bind around whatever type its
// enclosing level builds. The classic C rule falls out of the
// composition order: leading stars wrap the base, postfix operators
// wrap outside the stars left to right, and a parenthesized
// sub-declarator wraps around the whole enclosing result.
func (p *Parser) declarator() (string, typeWrap, error) {
	stars := 0
	for p.curIs(lexer.TokenStar) {
		p.advance()
		stars++
	}

	var name string
	var inner typeWrap
	switch {
	case p.curIs(lexer.TokenIdent):
		name = p.cur().Literal
		p.advance()
	case p.curIs(lexer.TokenLParen):
		p.advance()
		n, w, err := p.declarator()
		if err != nil {
			return "", nil, err
		}
		if err := p.expect(lexer.TokenRParen); err != nil {
			return "", nil, err
		}
		name, inner = n, w
	default:
		return "", nil, p.errorf("expected identifier or ( in declarator, got %s", p.cur().Type)
	}

	var postfix []typeWrap
	for {
		if p.curIs(lexer.TokenLBracket) {
			p.advance()
			size := int64(-1)
			if p.curIs(lexer.TokenIntLit) {
				n, err := p.intLitValue()
				if err != nil {
					return "", nil, err
				}
				size = n
				p.advance()
			}
			if err := p.expect(lexer.TokenRBracket); err != nil {
				return "", nil, err
			}
			postfix = append(postfix, func(t ctypes.Type) ctypes.Type {
				return ctypes.Array{Elem: t, Size: size}
			})
		} else if p.curIs(lexer.TokenLParen) {
			p.advance()
			params, err := p.parseTypeParams()
			if err != nil {
				return "", nil, err
			}
			if err := p.expect(lexer.TokenRParen); err != nil {
				return "", nil, err
			}
			postfix = append(postfix, func(t ctypes.Type) ctypes.Type {
				return ctypes.Function{Return: t, Params: params}
			})
		} else {
			break
		}
	}

	wrap := func(t ctypes.Type) ctypes.Type {
		for i := 0; i < stars; i++ {
			t = ctypes.Pointer{Elem: t}
		}
		// The first postfix operator binds outermost
		for i := len(postfix) - 1; i >= 0; i-- {
			t = postfix[i](t)
		}
		if inner != nil {
			t = inner(t)
		}
		return t
	}
	return name, wrap, nil
}

// parseTypeParams parses a function declarator's parameter types.
// Parameter names are parsed and discarded; a trailing ellipsis ends
// the scan without a corresponding entry.
func (p *Parser) parseTypeParams() ([]ctypes.Type, error) {
	var params []ctypes.Type
	if p.curIs(lexer.TokenRParen) {
		return params, nil
	}
	for {
		if p.curIs(lexer.TokenEllipsis) {
			p.advance()
			break
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if p.curIs(lexer.TokenIdent) {
			p.advance()
		}
		params = append(params, typ)
		if p.curIs(lexer.TokenComma) {
			p.advance()
		} else {
			break
		}
	}
	return params, nil
}
