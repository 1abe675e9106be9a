package r1cs

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/zkcore/zkcore/field"
	"github.com/zkcore/zkcore/zkerrors"
)

// ErrDuplicatePublicVar reports a Compile call whose publicVars list names
// the same variable twice.
var ErrDuplicatePublicVar = zkerrors.NewDomainError("r1cs.Compile: duplicate public variable name")

// Circuit is the output of compiling an equation: the R1CS system plus
// the ordered variable table a caller needs to build a witness or read
// back public inputs, per spec.md 4.G.
type Circuit struct {
	System *System
	Vars   []string       // Vars[0] == "1"; the ordered variable table.
	Index  map[string]int // variable name -> wire index.
}

// PublicNames returns the public variable names in wire order.
func (c *Circuit) PublicNames() []string {
	return append([]string(nil), c.Vars[1:c.System.NumPublic+1]...)
}

// linComb is a linear combination over wire indices: the value every
// expression node reduces to, until a multiplication or a division by a
// variable forces a new constraint row (spec.md 4.G).
type linComb struct {
	terms    map[int]field.Fr
	isConst  bool
	constVal field.Fr
}

func constLC(v field.Fr) linComb {
	return linComb{terms: map[int]field.Fr{0: v}, isConst: true, constVal: v}
}

func varLC(idx int) linComb {
	return linComb{terms: map[int]field.Fr{idx: field.FrOne()}}
}

func (a linComb) add(b linComb, negate bool) linComb {
	out := linComb{terms: make(map[int]field.Fr, len(a.terms)+len(b.terms))}
	for idx, coeff := range a.terms {
		out.terms[idx] = coeff
	}
	for idx, coeff := range b.terms {
		if negate {
			coeff = coeff.Neg()
		}
		out.terms[idx] = out.terms[idx].Add(coeff)
	}
	if a.isConst && b.isConst {
		out.isConst = true
		if negate {
			out.constVal = a.constVal.Sub(b.constVal)
		} else {
			out.constVal = a.constVal.Add(b.constVal)
		}
	}
	return out
}

func (a linComb) scale(s field.Fr) linComb {
	out := linComb{terms: make(map[int]field.Fr, len(a.terms)), isConst: a.isConst}
	for idx, coeff := range a.terms {
		out.terms[idx] = coeff.Mul(s)
	}
	if a.isConst {
		out.constVal = a.constVal.Mul(s)
	}
	return out
}

// sparse renders a linComb as the ordered, zero-pruned SparseTerm slice
// AddConstraint expects.
func (a linComb) sparse() []SparseTerm {
	idxs := make([]int, 0, len(a.terms))
	for idx := range a.terms {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	out := make([]SparseTerm, 0, len(idxs))
	for _, idx := range idxs {
		coeff := a.terms[idx]
		if coeff.IsZero() {
			continue
		}
		out = append(out, SparseTerm{Index: idx, Coefficient: coeff})
	}
	return out
}

// compiler assigns wire indices to named variables on first reference and
// to the intermediate wires multiplication and division introduce, and
// accumulates the rows those operations emit.
type compiler struct {
	names     []string
	index     map[string]int
	numPublic int
	rows      []Row
}

func newCompiler(publicVars []string) *compiler {
	c := &compiler{names: []string{"1"}, index: map[string]int{"1": 0}}
	for _, name := range publicVars {
		c.declare(name)
	}
	c.numPublic = len(publicVars)
	return c
}

func (c *compiler) declare(name string) int {
	if idx, ok := c.index[name]; ok {
		return idx
	}
	idx := len(c.names)
	c.names = append(c.names, name)
	c.index[name] = idx
	return idx
}

func (c *compiler) temp() int {
	idx := len(c.names)
	c.names = append(c.names, fmt.Sprintf("_t%d", idx))
	return idx
}

func (c *compiler) addRow(a, b, out linComb) {
	c.rows = append(c.rows, Row{A: a.sparse(), B: b.sparse(), C: out.sparse()})
}

// mul compiles a product node. Multiplying by a compile-time constant
// stays linear (scale, no new row); multiplying two witness-dependent
// values is quadratic and needs its own R1CS row, per spec.md 4.G's "each
// multiplication node yields one row".
func (c *compiler) mul(a, b linComb) linComb {
	if a.isConst {
		return b.scale(a.constVal)
	}
	if b.isConst {
		return a.scale(b.constVal)
	}
	z := c.temp()
	c.addRow(a, b, varLC(z))
	return varLC(z)
}

// div compiles a quotient node. Division by a literal is multiplication
// by its field inverse. Division by a variable introduces a new witness
// for the divisor's inverse plus a constraint enforcing divisor*inverse
// = 1, then multiplies the numerator by that inverse (spec.md 4.G).
func (c *compiler) div(a, b linComb, pos int) (linComb, error) {
	if b.isConst {
		if b.constVal.IsZero() {
			return linComb{}, zkerrors.NewParseError(pos, "division by the literal zero")
		}
		inv, err := b.constVal.Inverse()
		if err != nil {
			return linComb{}, zkerrors.NewParseError(pos, "division by the literal zero")
		}
		return a.scale(inv), nil
	}
	inv := c.temp()
	c.addRow(b, varLC(inv), constLC(field.FrOne()))
	return c.mul(a, varLC(inv)), nil
}

// parser is a recursive-descent parser over the token stream, compiling
// each node to a linComb (and any rows it forces) as it descends rather
// than building a separate AST pass.
type parser struct {
	toks []token
	pos  int
	c    *compiler
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	t := p.peek()
	if t.kind != k {
		return token{}, zkerrors.NewParseError(t.pos, "expected "+what)
	}
	return p.next(), nil
}

// parseEquation parses "<expr> = <expr>" and emits the final equality as
// one more row, expressed as lhs*1 = rhs to fit the A*B=C shape the rest
// of the system's gates already use for pure linear identities.
func (p *parser) parseEquation() error {
	lhs, err := p.parseExpr()
	if err != nil {
		return err
	}
	if _, err := p.expect(tokEquals, "'='"); err != nil {
		return err
	}
	rhs, err := p.parseExpr()
	if err != nil {
		return err
	}
	if t := p.peek(); t.kind != tokEOF {
		return zkerrors.NewParseError(t.pos, "unexpected trailing input")
	}
	p.c.addRow(lhs, constLC(field.FrOne()), rhs)
	return nil
}

// parseExpr parses a sum of terms: term (('+'|'-') term)*.
func (p *parser) parseExpr() (linComb, error) {
	lc, err := p.parseTerm()
	if err != nil {
		return linComb{}, err
	}
	for {
		switch p.peek().kind {
		case tokPlus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return linComb{}, err
			}
			lc = lc.add(rhs, false)
		case tokMinus:
			p.next()
			rhs, err := p.parseTerm()
			if err != nil {
				return linComb{}, err
			}
			lc = lc.add(rhs, true)
		default:
			return lc, nil
		}
	}
}

// parseTerm parses a product of factors: factor (('*'|'/') factor)*,
// routing each operator through the compiler's gate-emitting rules.
func (p *parser) parseTerm() (linComb, error) {
	lc, err := p.parseFactor()
	if err != nil {
		return linComb{}, err
	}
	for {
		switch p.peek().kind {
		case tokStar:
			p.next()
			rhs, err := p.parseFactor()
			if err != nil {
				return linComb{}, err
			}
			lc = p.c.mul(lc, rhs)
		case tokSlash:
			opPos := p.next().pos
			rhs, err := p.parseFactor()
			if err != nil {
				return linComb{}, err
			}
			lc, err = p.c.div(lc, rhs, opPos)
			if err != nil {
				return linComb{}, err
			}
		default:
			return lc, nil
		}
	}
}

// parseFactor parses an optional unary minus over a primary, so "-x*y"
// negates x before the multiplication runs.
func (p *parser) parseFactor() (linComb, error) {
	if p.peek().kind == tokMinus {
		p.next()
		f, err := p.parseFactor()
		if err != nil {
			return linComb{}, err
		}
		return f.scale(field.FrOne().Neg()), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (linComb, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		v, ok := new(big.Int).SetString(t.text, 10)
		if !ok {
			return linComb{}, zkerrors.NewParseError(t.pos, "malformed integer literal")
		}
		return constLC(field.NewFr(v)), nil
	case tokIdent:
		p.next()
		return varLC(p.c.declare(t.text)), nil
	case tokLParen:
		p.next()
		lc, err := p.parseExpr()
		if err != nil {
			return linComb{}, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return linComb{}, err
		}
		return lc, nil
	}
	return linComb{}, zkerrors.NewParseError(t.pos, "expected a number, variable, or '('")
}

// Compile parses a single equation "<expr> = <expr>" over F_r and
// compiles it to an R1CS circuit, per spec.md 4.G: variables are
// identifiers, integer literals and +, -, *, /, and parenthesization are
// supported; division by a literal compiles to multiplication by its
// field inverse; division by a variable introduces a new witness for the
// inverse plus a constraint enforcing it; each multiplication of two
// witness-dependent values yields one R1CS row, each division by a
// variable two (the inverse constraint and the product), and the
// equation itself one final row, with addition and subtraction folded
// directly into the linear combinations of those rows. publicVars names
// which referenced identifiers are public inputs; every other identifier becomes a private wire. The returned
// Circuit's variable table reserves index 0 for the constant 1.
func Compile(equation string, publicVars []string) (*Circuit, error) {
	seen := make(map[string]bool, len(publicVars))
	for _, name := range publicVars {
		if seen[name] {
			return nil, ErrDuplicatePublicVar
		}
		seen[name] = true
	}

	toks, err := lex(equation)
	if err != nil {
		return nil, err
	}
	c := newCompiler(publicVars)
	p := &parser{toks: toks, c: c}
	if err := p.parseEquation(); err != nil {
		return nil, err
	}

	sys, err := NewSystem(len(c.names), c.numPublic)
	if err != nil {
		return nil, err
	}
	for _, row := range c.rows {
		if err := sys.AddConstraint(row.A, row.B, row.C); err != nil {
			return nil, err
		}
	}
	return &Circuit{System: sys, Vars: c.names, Index: c.index}, nil
}
