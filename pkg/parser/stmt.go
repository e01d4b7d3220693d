package parser

import (
	"github.com/reedlang/reed-cc/pkg/cabs"
	"github.com/reedlang/reed-cc/pkg/lexer"
)

// parseStatement dispatches on the current token. A leading type
// keyword or registered typedef name starts a declaration; everything
// else is a statement form or a bare expression.
func (p *Parser) parseStatement() (cabs.Stmt, error) {
	switch {
	case p.isTypeStart(0):
		return p.parseDeclStatement()

	case p.curIs(lexer.TokenReturn):
		p.advance()
		if p.curIs(lexer.TokenSemicolon) {
			p.advance()
			return cabs.Return{}, nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
		return cabs.Return{Expr: expr}, nil

	case p.curIs(lexer.TokenIf):
		return p.parseIf()

	case p.curIs(lexer.TokenWhile):
		p.advance()
		cond, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBody()
		if err != nil {
			return nil, err
		}
		return cabs.While{Cond: cond, Body: body}, nil

	case p.curIs(lexer.TokenDo):
		return p.parseDoWhile()

	case p.curIs(lexer.TokenFor):
		return p.parseFor()

	case p.curIs(lexer.TokenSwitch):
		return p.parseSwitch()

	case p.curIs(lexer.TokenBreak):
		p.advance()
		if err := p.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
		return cabs.Break{}, nil

	case p.curIs(lexer.TokenContinue):
		p.advance()
		if err := p.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
		return cabs.Continue{}, nil

	case p.curIs(lexer.TokenGoto):
		p.advance()
		label, err := p.expectIdent("label")
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
		return cabs.Goto{Label: label}, nil

	case p.curIs(lexer.TokenLBrace):
		items, err := p.parseBlockStmts()
		if err != nil {
			return nil, err
		}
		return cabs.Block{Items: items}, nil

	case p.curIs(lexer.TokenSemicolon):
		p.advance()
		return cabs.Empty{}, nil

	case p.curIs(lexer.TokenIdent) && p.peekIs(lexer.TokenColon):
		name := p.cur().Literal
		p.advance()
		p.advance()
		return cabs.Label{Name: name}, nil

	default:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenSemicolon); err != nil {
			return nil, err
		}
		return cabs.Computation{Expr: expr}, nil
	}
}

// parseDeclStatement parses a local declaration. Several declarators
// may share one specifier; a single declarator yields a VarDecl and
// multiple yield a Block of VarDecls.
func (p *Parser) parseDeclStatement() (cabs.Stmt, error) {
	base, quals, err := p.parseSpecifier()
	if err != nil {
		return nil, err
	}
	var decls []cabs.Stmt
	for {
		name, typ, err := p.parseDeclarator(base)
		if err != nil {
			return nil, err
		}
		typ = quals.apply(typ)
		var init cabs.Expr
		if p.curIs(lexer.TokenAssign) {
			p.advance()
			if p.curIs(lexer.TokenLBrace) {
				// Aggregate initializers are skipped, not modeled
				if err := p.skipBraces(); err != nil {
					return nil, err
				}
			} else {
				init, err = p.parseExpr()
				if err != nil {
					return nil, err
				}
			}
		}
		decls = append(decls, cabs.VarDecl{Type: typ, Name: name, Init: init})
		if !p.curIs(lexer.TokenComma) {
			break
		}
		p.advance()
	}
	if err := p.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}
	if len(decls) == 1 {
		return decls[0], nil
	}
	return cabs.Block{Items: decls}, nil
}

func (p *Parser) parseIf() (cabs.Stmt, error) {
	p.advance() // consume 'if'
	cond, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	var els []cabs.Stmt
	if p.curIs(lexer.TokenElse) {
		p.advance()
		els, err = p.parseBody()
		if err != nil {
			return nil, err
		}
	}
	return cabs.If{Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) parseDoWhile() (cabs.Stmt, error) {
	p.advance() // consume 'do'
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenWhile); err != nil {
		return nil, err
	}
	cond, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}
	return cabs.DoWhile{Body: body, Cond: cond}, nil
}

func (p *Parser) parseFor() (cabs.Stmt, error) {
	p.advance() // consume 'for'
	if err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}

	// The init clause is a full statement and consumes its own
	// semicolon; an empty clause is a bare semicolon.
	var init cabs.Stmt
	if p.curIs(lexer.TokenSemicolon) {
		p.advance()
	} else {
		var err error
		init, err = p.parseStatement()
		if err != nil {
			return nil, err
		}
	}

	var cond cabs.Expr
	if !p.curIs(lexer.TokenSemicolon) {
		var err error
		cond, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.TokenSemicolon); err != nil {
		return nil, err
	}

	var update cabs.Expr
	if !p.curIs(lexer.TokenRParen) {
		var err error
		update, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return cabs.For{Init: init, Cond: cond, Update: update, Body: body}, nil
}

// parseSwitch records the condition and skips the brace-delimited
// body, so the case arms are not modeled.
func (p *Parser) parseSwitch() (cabs.Stmt, error) {
	p.advance() // consume 'switch'
	cond, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	if !p.curIs(lexer.TokenLBrace) {
		return nil, p.errorf("expected {, got %s", p.cur().Type)
	}
	if err := p.skipBraces(); err != nil {
		return nil, err
	}
	return cabs.Switch{Expr: cond}, nil
}

// parseParenExpr parses ( expr ) as used by condition headers
func (p *Parser) parseParenExpr() (cabs.Expr, error) {
	if err := p.expect(lexer.TokenLParen); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseBody parses either a braced block or a single statement, so
// both branches of `if (c) x = 1; else { y = 2; }` come back as slices.
func (p *Parser) parseBody() ([]cabs.Stmt, error) {
	if p.curIs(lexer.TokenLBrace) {
		return p.parseBlockStmts()
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return []cabs.Stmt{stmt}, nil
}

// parseBlockStmts parses { stmt* } and returns the statements
func (p *Parser) parseBlockStmts() ([]cabs.Stmt, error) {
	if err := p.expect(lexer.TokenLBrace); err != nil {
		return nil, err
	}
	stmts := []cabs.Stmt{}
	for !p.curIs(lexer.TokenRBrace) {
		if p.curIs(lexer.TokenEOF) {
			return nil, p.errorf("expected }, got %s", p.cur().Type)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	p.advance() // consume '}'
	return stmts, nil
}
