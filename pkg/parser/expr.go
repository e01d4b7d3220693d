package parser

import (
	"strconv"

	"github.com/reedlang/reed-cc/pkg/cabs"
	"github.com/reedlang/reed-cc/pkg/lexer"
)

// compoundAssignOps maps compound-assignment tokens to the binary
// operator they desugar into.
var compoundAssignOps = map[lexer.TokenType]cabs.BinaryOp{
	lexer.TokenPlusAssign:    cabs.OpAdd,
	lexer.TokenMinusAssign:   cabs.OpSub,
	lexer.TokenStarAssign:    cabs.OpMul,
	lexer.TokenSlashAssign:   cabs.OpDiv,
	lexer.TokenPercentAssign: cabs.OpMod,
	lexer.TokenAndAssign:     cabs.OpBitAnd,
	lexer.TokenOrAssign:      cabs.OpBitOr,
	lexer.TokenXorAssign:     cabs.OpBitXor,
	lexer.TokenShlAssign:     cabs.OpShl,
	lexer.TokenShrAssign:     cabs.OpShr,
}

func (p *Parser) parseExpr() (cabs.Expr, error) {
	return p.parseAssignment()
}

// parseAssignment parses the lowest precedence level. Assignment is
// right-associative, and compound assignment desugars so that
// `a += b` produces the same tree as `a = a + b`.
func (p *Parser) parseAssignment() (cabs.Expr, error) {
	left, err := p.parseTernary()
	if err != nil {
		return nil, err
	}

	if p.curIs(lexer.TokenAssign) {
		p.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return cabs.Assign{Target: left, Value: right}, nil
	}
	if op, ok := compoundAssignOps[p.cur().Type]; ok {
		p.advance()
		right, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		return cabs.Assign{
			Target: left,
			Value:  cabs.Binary{Op: op, Left: left, Right: right},
		}, nil
	}
	return left, nil
}

// parseTernary parses cond ? then : else, right-associatively
func (p *Parser) parseTernary() (cabs.Expr, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if !p.curIs(lexer.TokenQuestion) {
		return cond, nil
	}
	p.advance()
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenColon); err != nil {
		return nil, err
	}
	els, err := p.parseTernary()
	if err != nil {
		return nil, err
	}
	return cabs.Conditional{Cond: cond, Then: then, Else: els}, nil
}

// binaryLevel implements one left-associative precedence level
func (p *Parser) binaryLevel(next func() (cabs.Expr, error), ops map[lexer.TokenType]cabs.BinaryOp) (cabs.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.cur().Type]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = cabs.Binary{Op: op, Left: left, Right: right}
	}
}

var (
	logicalOrOps  = map[lexer.TokenType]cabs.BinaryOp{lexer.TokenOr: cabs.OpOr}
	logicalAndOps = map[lexer.TokenType]cabs.BinaryOp{lexer.TokenAnd: cabs.OpAnd}
	bitOrOps      = map[lexer.TokenType]cabs.BinaryOp{lexer.TokenPipe: cabs.OpBitOr}
	bitXorOps     = map[lexer.TokenType]cabs.BinaryOp{lexer.TokenCaret: cabs.OpBitXor}
	bitAndOps     = map[lexer.TokenType]cabs.BinaryOp{lexer.TokenAmpersand: cabs.OpBitAnd}
	comparisonOps = map[lexer.TokenType]cabs.BinaryOp{
		lexer.TokenLt: cabs.OpLt,
		lexer.TokenLe: cabs.OpLe,
		lexer.TokenGt: cabs.OpGt,
		lexer.TokenGe: cabs.OpGe,
		lexer.TokenEq: cabs.OpEq,
		lexer.TokenNe: cabs.OpNe,
	}
	shiftOps    = map[lexer.TokenType]cabs.BinaryOp{lexer.TokenShl: cabs.OpShl, lexer.TokenShr: cabs.OpShr}
	additiveOps = map[lexer.TokenType]cabs.BinaryOp{lexer.TokenPlus: cabs.OpAdd, lexer.TokenMinus: cabs.OpSub}

	multiplicativeOps = map[lexer.TokenType]cabs.BinaryOp{
		lexer.TokenStar:    cabs.OpMul,
		lexer.TokenSlash:   cabs.OpDiv,
		lexer.TokenPercent: cabs.OpMod,
	}
)

func (p *Parser) parseLogicalOr() (cabs.Expr, error) {
	return p.binaryLevel(p.parseLogicalAnd, logicalOrOps)
}

func (p *Parser) parseLogicalAnd() (cabs.Expr, error) {
	return p.binaryLevel(p.parseBitOr, logicalAndOps)
}

func (p *Parser) parseBitOr() (cabs.Expr, error) {
	return p.binaryLevel(p.parseBitXor, bitOrOps)
}

func (p *Parser) parseBitXor() (cabs.Expr, error) {
	return p.binaryLevel(p.parseBitAnd, bitXorOps)
}

func (p *Parser) parseBitAnd() (cabs.Expr, error) {
	return p.binaryLevel(p.parseComparison, bitAndOps)
}

func (p *Parser) parseComparison() (cabs.Expr, error) {
	return p.binaryLevel(p.parseShift, comparisonOps)
}

func (p *Parser) parseShift() (cabs.Expr, error) {
	return p.binaryLevel(p.parseAdditive, shiftOps)
}

func (p *Parser) parseAdditive() (cabs.Expr, error) {
	return p.binaryLevel(p.parseMultiplicative, additiveOps)
}

func (p *Parser) parseMultiplicative() (cabs.Expr, error) {
	return p.binaryLevel(p.parseUnary, multiplicativeOps)
}

var prefixOps = map[lexer.TokenType]cabs.UnaryOp{
	lexer.TokenMinus:     cabs.OpNeg,
	lexer.TokenNot:       cabs.OpNot,
	lexer.TokenTilde:     cabs.OpBitNot,
	lexer.TokenStar:      cabs.OpDeref,
	lexer.TokenAmpersand: cabs.OpAddressOf,
	lexer.TokenIncrement: cabs.OpPreInc,
	lexer.TokenDecrement: cabs.OpPreDec,
}

// parseUnary parses prefix operators, each recursing into the next
// unary expression so forms like **p and --*p nest naturally.
func (p *Parser) parseUnary() (cabs.Expr, error) {
	if op, ok := prefixOps[p.cur().Type]; ok {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return cabs.Unary{Op: op, Operand: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression followed by any chain of
// subscript, member access and post increment/decrement operators.
func (p *Parser) parsePostfix() (cabs.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur().Type {
		case lexer.TokenLBracket:
			p.advance()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(lexer.TokenRBracket); err != nil {
				return nil, err
			}
			expr = cabs.Index{Array: expr, Index: index}
		case lexer.TokenDot:
			p.advance()
			name, err := p.expectIdent("member name")
			if err != nil {
				return nil, err
			}
			expr = cabs.Member{Object: expr, Name: name}
		case lexer.TokenArrow:
			p.advance()
			name, err := p.expectIdent("member name")
			if err != nil {
				return nil, err
			}
			expr = cabs.Arrow{Object: expr, Name: name}
		case lexer.TokenIncrement:
			p.advance()
			expr = cabs.Unary{Op: cabs.OpPostInc, Operand: expr}
		case lexer.TokenDecrement:
			p.advance()
			expr = cabs.Unary{Op: cabs.OpPostDec, Operand: expr}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parsePrimary() (cabs.Expr, error) {
	switch p.cur().Type {
	case lexer.TokenIntLit:
		value, err := strconv.ParseInt(p.cur().Literal, 10, 64)
		if err != nil {
			return nil, p.errorf("malformed integer literal %q", p.cur().Literal)
		}
		p.advance()
		return cabs.IntLit{Value: value}, nil

	case lexer.TokenFloatLit:
		value, err := strconv.ParseFloat(p.cur().Literal, 64)
		if err != nil {
			return nil, p.errorf("malformed float literal %q", p.cur().Literal)
		}
		p.advance()
		return cabs.FloatLit{Value: value}, nil

	case lexer.TokenCharLit:
		lit := p.cur().Literal
		p.advance()
		var value byte
		if len(lit) > 0 {
			value = lit[0]
		}
		return cabs.CharLit{Value: value}, nil

	case lexer.TokenStringLit:
		// Adjacent string literals concatenate
		value := p.cur().Literal
		p.advance()
		for p.curIs(lexer.TokenStringLit) {
			value += p.cur().Literal
			p.advance()
		}
		return cabs.StringLit{Value: value}, nil

	case lexer.TokenSizeof:
		return p.parseSizeof()

	case lexer.TokenIdent:
		name := p.cur().Literal
		p.advance()
		if name == "NULL" {
			return cabs.Null{}, nil
		}
		if p.curIs(lexer.TokenLParen) {
			return p.parseCallArgs(name)
		}
		return cabs.Ident{Name: name}, nil

	case lexer.TokenLParen:
		if p.isTypeStart(1) {
			return p.parseCastOrCompoundLiteral()
		}
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.errorf("unexpected token in expression: %s", p.cur().Type)
	}
}

// parseSizeof parses sizeof(type), or sizeof expr whose operand type is
// not computed, leaving a Null placeholder.
func (p *Parser) parseSizeof() (cabs.Expr, error) {
	p.advance() // consume 'sizeof'
	if p.curIs(lexer.TokenLParen) && p.isTypeStart(1) {
		p.advance()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.expect(lexer.TokenRParen); err != nil {
			return nil, err
		}
		return cabs.SizeOf{Type: typ}, nil
	}
	if _, err := p.parseUnary(); err != nil {
		return nil, err
	}
	return cabs.Null{}, nil
}

// parseCastOrCompoundLiteral parses `(type)expr`, or a compound
// literal `(type){...}` whose body is skipped and not modeled.
func (p *Parser) parseCastOrCompoundLiteral() (cabs.Expr, error) {
	p.advance() // consume '('
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	if p.curIs(lexer.TokenLBrace) {
		if err := p.skipBraces(); err != nil {
			return nil, err
		}
		return cabs.Null{}, nil
	}
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return cabs.Cast{Type: typ, Expr: operand}, nil
}

func (p *Parser) parseCallArgs(name string) (cabs.Expr, error) {
	p.advance() // consume '('
	var args []cabs.Expr
	if !p.curIs(lexer.TokenRParen) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.curIs(lexer.TokenComma) {
				break
			}
			p.advance()
		}
	}
	if err := p.expect(lexer.TokenRParen); err != nil {
		return nil, err
	}
	return cabs.Call{Func: name, Args: args}, nil
}
