package cabs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reedlang/reed-cc/pkg/ctypes"
)

// Printer re-emits the AST as C source text
type Printer struct {
	w      io.Writer
	indent int
}

// NewPrinter creates a new AST printer
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, indent: 0}
}

// PrintProgram prints a complete program
func (p *Printer) PrintProgram(prog *Program) {
	for _, def := range prog.Definitions {
		p.printDefinition(def)
	}
}

func (p *Printer) writeIndent() {
	fmt.Fprint(p.w, strings.Repeat("    ", p.indent))
}

func (p *Printer) printDefinition(def Definition) {
	switch d := def.(type) {
	case FunDef:
		// Prototypes are not re-emitted
		if d.Body != nil {
			p.printFunDef(d)
			fmt.Fprintln(p.w)
		}
	case StructDef:
		p.printStructDef(d)
	case UnionDef:
		p.printUnionDef(d)
	case EnumDef:
		p.printEnumDef(d)
	case TypedefDef:
		fmt.Fprintf(p.w, "typedef %s %s;\n\n", d.Type, d.Name)
	case VarDef:
		fmt.Fprintf(p.w, "%s %s", d.Type, d.Name)
		if d.Init != nil {
			fmt.Fprintf(p.w, " = %s", p.exprString(d.Init))
		}
		fmt.Fprint(p.w, ";\n\n")
	case Include:
		fmt.Fprintf(p.w, "#include <%s>\n", d.Path)
	case Define:
		fmt.Fprintf(p.w, "#define %s %s\n", d.Name, d.Value)
	default:
		fmt.Fprintf(p.w, "/* unknown definition %T */\n", def)
	}
}

func (p *Printer) printFunDef(f FunDef) {
	fmt.Fprintf(p.w, "%s %s(", f.ReturnType, f.Name)
	for i, param := range f.Params {
		if i > 0 {
			fmt.Fprint(p.w, ", ")
		}
		if param.Name == "" {
			fmt.Fprintf(p.w, "%s", param.Type)
		} else {
			fmt.Fprintf(p.w, "%s %s", param.Type, param.Name)
		}
	}
	fmt.Fprintln(p.w, ") {")
	p.indent++
	for _, stmt := range f.Body {
		p.printStmt(stmt)
	}
	p.indent--
	fmt.Fprintln(p.w, "}")
}

func (p *Printer) printStructDef(s StructDef) {
	fmt.Fprintf(p.w, "struct %s {\n", s.Name)
	for _, field := range s.Fields {
		fmt.Fprintf(p.w, "    %s %s;\n", field.Type, field.Name)
	}
	fmt.Fprint(p.w, "};\n\n")
}

func (p *Printer) printUnionDef(u UnionDef) {
	fmt.Fprintf(p.w, "union %s {\n", u.Name)
	for _, field := range u.Fields {
		fmt.Fprintf(p.w, "    %s %s;\n", field.Type, field.Name)
	}
	fmt.Fprint(p.w, "};\n\n")
}

func (p *Printer) printEnumDef(e EnumDef) {
	fmt.Fprintf(p.w, "enum %s {\n", e.Name)
	for i, val := range e.Values {
		fmt.Fprintf(p.w, "    %s", val.Name)
		if val.Value != nil {
			fmt.Fprintf(p.w, " = %d", *val.Value)
		}
		if i < len(e.Values)-1 {
			fmt.Fprint(p.w, ",")
		}
		fmt.Fprintln(p.w)
	}
	fmt.Fprint(p.w, "};\n\n")
}

func (p *Printer) printStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case VarDecl:
		p.writeIndent()
		// Array declarators put the brackets after the name
		if arr, ok := s.Type.(ctypes.Array); ok {
			fmt.Fprintf(p.w, "%s %s", arr.Elem, s.Name)
			if arr.Size < 0 {
				fmt.Fprint(p.w, "[]")
			} else {
				fmt.Fprintf(p.w, "[%d]", arr.Size)
			}
		} else {
			fmt.Fprintf(p.w, "%s %s", s.Type, s.Name)
		}
		if s.Init != nil {
			fmt.Fprintf(p.w, " = %s", p.exprString(s.Init))
		}
		fmt.Fprintln(p.w, ";")
	case Return:
		p.writeIndent()
		fmt.Fprint(p.w, "return")
		if s.Expr != nil {
			fmt.Fprintf(p.w, " %s", p.exprString(s.Expr))
		}
		fmt.Fprintln(p.w, ";")
	case Computation:
		p.writeIndent()
		fmt.Fprintf(p.w, "%s;\n", p.exprString(s.Expr))
	case If:
		p.writeIndent()
		fmt.Fprintf(p.w, "if (%s) {\n", p.exprString(s.Cond))
		p.printStmts(s.Then)
		p.writeIndent()
		fmt.Fprint(p.w, "}")
		if s.Else != nil {
			fmt.Fprintln(p.w, " else {")
			p.printStmts(s.Else)
			p.writeIndent()
			fmt.Fprint(p.w, "}")
		}
		fmt.Fprintln(p.w)
	case While:
		p.writeIndent()
		fmt.Fprintf(p.w, "while (%s) {\n", p.exprString(s.Cond))
		p.printStmts(s.Body)
		p.writeIndent()
		fmt.Fprintln(p.w, "}")
	case DoWhile:
		p.writeIndent()
		fmt.Fprintln(p.w, "do {")
		p.printStmts(s.Body)
		p.writeIndent()
		fmt.Fprintf(p.w, "} while (%s);\n", p.exprString(s.Cond))
	case For:
		p.writeIndent()
		fmt.Fprint(p.w, "for (")
		if s.Init != nil {
			fmt.Fprint(p.w, p.clauseString(s.Init))
		}
		fmt.Fprint(p.w, "; ")
		if s.Cond != nil {
			fmt.Fprint(p.w, p.exprString(s.Cond))
		}
		fmt.Fprint(p.w, "; ")
		if s.Update != nil {
			fmt.Fprint(p.w, p.exprString(s.Update))
		}
		fmt.Fprintln(p.w, ") {")
		p.printStmts(s.Body)
		p.writeIndent()
		fmt.Fprintln(p.w, "}")
	case Switch:
		p.writeIndent()
		fmt.Fprintf(p.w, "switch (%s) {\n", p.exprString(s.Expr))
		p.indent++
		for _, c := range s.Cases {
			p.writeIndent()
			if c.Value != nil {
				fmt.Fprintf(p.w, "case %s:\n", p.exprString(c.Value))
			} else {
				fmt.Fprintln(p.w, "default:")
			}
			p.printStmts(c.Stmts)
		}
		p.indent--
		p.writeIndent()
		fmt.Fprintln(p.w, "}")
	case Break:
		p.writeIndent()
		fmt.Fprintln(p.w, "break;")
	case Continue:
		p.writeIndent()
		fmt.Fprintln(p.w, "continue;")
	case Goto:
		p.writeIndent()
		fmt.Fprintf(p.w, "goto %s;\n", s.Label)
	case Label:
		p.writeIndent()
		fmt.Fprintf(p.w, "%s:\n", s.Name)
	case Block:
		p.writeIndent()
		fmt.Fprintln(p.w, "{")
		p.printStmts(s.Items)
		p.writeIndent()
		fmt.Fprintln(p.w, "}")
	case Empty:
		p.writeIndent()
		fmt.Fprintln(p.w, ";")
	default:
		p.writeIndent()
		fmt.Fprintf(p.w, "/* unknown statement %T */\n", stmt)
	}
}

func (p *Printer) printStmts(stmts []Stmt) {
	p.indent++
	for _, stmt := range stmts {
		p.printStmt(stmt)
	}
	p.indent--
}

// clauseString renders a statement without indentation or the trailing
// semicolon, for use inside a for header.
func (p *Printer) clauseString(stmt Stmt) string {
	var sb strings.Builder
	sub := NewPrinter(&sb)
	sub.printStmt(stmt)
	return strings.TrimSuffix(strings.TrimSpace(sb.String()), ";")
}

func (p *Printer) exprString(expr Expr) string {
	switch e := expr.(type) {
	case IntLit:
		return strconv.FormatInt(e.Value, 10)
	case FloatLit:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case CharLit:
		return "'" + string(e.Value) + "'"
	case StringLit:
		return strconv.Quote(e.Value)
	case Ident:
		return e.Name
	case Binary:
		return fmt.Sprintf("(%s %s %s)", p.exprString(e.Left), e.Op, p.exprString(e.Right))
	case Unary:
		if e.Op.IsPostfix() {
			return fmt.Sprintf("(%s%s)", p.exprString(e.Operand), e.Op)
		}
		return fmt.Sprintf("(%s%s)", e.Op, p.exprString(e.Operand))
	case Call:
		args := make([]string, len(e.Args))
		for i, arg := range e.Args {
			args[i] = p.exprString(arg)
		}
		return fmt.Sprintf("%s(%s)", e.Func, strings.Join(args, ", "))
	case Assign:
		return fmt.Sprintf("%s = %s", p.exprString(e.Target), p.exprString(e.Value))
	case Cast:
		return fmt.Sprintf("((%s)%s)", e.Type, p.exprString(e.Expr))
	case Index:
		return fmt.Sprintf("%s[%s]", p.exprString(e.Array), p.exprString(e.Index))
	case Member:
		return fmt.Sprintf("%s.%s", p.exprString(e.Object), e.Name)
	case Arrow:
		return fmt.Sprintf("%s->%s", p.exprString(e.Object), e.Name)
	case Conditional:
		return fmt.Sprintf("(%s ? %s : %s)", p.exprString(e.Cond), p.exprString(e.Then), p.exprString(e.Else))
	case SizeOf:
		return fmt.Sprintf("sizeof(%s)", e.Type)
	case Null:
		return "NULL"
	}
	return fmt.Sprintf("/* unknown expression %T */", expr)
}
