package surface

import "fmt"

// SyntaxError is returned by every surface-loading failure: a bad
// token, an unbalanced list, or an unknown form/Const at load time.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Sexpr is a generic parsed s-expression: either an atom (a symbol or
// a number, both kept as their literal text) or a list of Sexprs. The
// translate.go pass interprets a well-formed Sexpr as a term.Term;
// sexpr.go itself knows nothing about the CastCIC grammar.
type Sexpr struct {
	Atom string
	List []Sexpr
	Line int
	Col  int
}

func (s Sexpr) isAtom() bool { return s.List == nil }

// Parser turns a token stream into a sequence of top-level Sexprs.
type Parser struct {
	lex  *Lexer
	tok  Token
	peek Token
}

// NewParser creates a Parser over source text.
func NewParser(input string) *Parser {
	p := &Parser{lex: NewLexer(input)}
	p.tok = p.lex.NextToken()
	p.peek = p.lex.NextToken()
	return p
}

func (p *Parser) advance() {
	p.tok = p.peek
	p.peek = p.lex.NextToken()
}

// ParseAll reads every top-level Sexpr until EOF.
func (p *Parser) ParseAll() ([]Sexpr, error) {
	var out []Sexpr
	for p.tok.Kind != TokenEOF {
		s, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (p *Parser) parseOne() (Sexpr, error) {
	switch p.tok.Kind {
	case TokenLParen:
		line, col := p.tok.Line, p.tok.Column
		p.advance()
		items := []Sexpr{}
		for p.tok.Kind != TokenRParen {
			if p.tok.Kind == TokenEOF {
				return Sexpr{}, &SyntaxError{Line: line, Column: col, Message: "unterminated list"}
			}
			item, err := p.parseOne()
			if err != nil {
				return Sexpr{}, err
			}
			items = append(items, item)
		}
		p.advance()
		return Sexpr{List: items, Line: line, Col: col}, nil
	case TokenSymbol, TokenNumber:
		s := Sexpr{Atom: p.tok.Text, Line: p.tok.Line, Col: p.tok.Column}
		p.advance()
		return s, nil
	case TokenRParen:
		return Sexpr{}, &SyntaxError{Line: p.tok.Line, Column: p.tok.Column, Message: "unexpected ')'"}
	default:
		return Sexpr{}, &SyntaxError{Line: p.tok.Line, Column: p.tok.Column, Message: "unexpected end of input"}
	}
}
