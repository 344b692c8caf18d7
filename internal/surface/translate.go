package surface

import (
	"fmt"
	"strconv"

	"github.com/castcic-lang/castcic/internal/ident"
	"github.com/castcic-lang/castcic/internal/term"
)

// scope is a lexical chain of name -> identifier bindings introduced by
// lambda/prod binders during translation, distinct from the top-level
// Const table a File exposes after loading.
type scope struct {
	name   string
	id     ident.Identifier
	parent *scope
}

func (s *scope) lookup(name string) (ident.Identifier, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.name == name {
			return cur.id, true
		}
	}
	return ident.Identifier{}, false
}

// translator carries the lexical scope and the table of names already
// registered as top-level Const declarations by a preceding def pass.
type translator struct {
	consts map[string]ident.Identifier
}

func (tr *translator) term(s Sexpr, sc *scope) (term.Term, error) {
	if s.isAtom() {
		return tr.atom(s, sc)
	}
	if len(s.List) == 0 {
		return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: "empty list is not a term"}
	}
	head, ok := tr.headSymbol(s.List[0])
	if !ok {
		return nil, &SyntaxError{Line: s.List[0].Line, Column: s.List[0].Col, Message: "expected a form name"}
	}
	args := s.List[1:]
	switch head {
	case "universe":
		return tr.universe(s, args)
	case "app":
		return tr.app(s, args, sc)
	case "lambda":
		return tr.binder(s, args, sc, func(fi term.FunInfo) term.Term { return term.Lambda{FunInfo: fi} })
	case "prod":
		return tr.binder(s, args, sc, func(fi term.FunInfo) term.Term { return term.Prod{FunInfo: fi} })
	case "unknown":
		return tr.unary(s, args, sc, func(t term.Term) term.Term { return term.Unknown{Type: t} })
	case "err":
		return tr.unary(s, args, sc, func(t term.Term) term.Term { return term.Err{Type: t} })
	case "cast":
		return tr.cast(s, args, sc)
	case "var":
		return tr.varRef(s, args, sc)
	case "const":
		return tr.constRef(s, args)
	default:
		return nil, &SyntaxError{Line: s.List[0].Line, Column: s.List[0].Col, Message: fmt.Sprintf("unknown form %q", head)}
	}
}

func (tr *translator) headSymbol(s Sexpr) (string, bool) {
	if !s.isAtom() {
		return "", false
	}
	return s.Atom, true
}

// atom interprets a bare symbol or number: a number is a Universe
// shorthand only inside forms that expect one (handled by those
// callers); as a standalone term a bare symbol resolves through the
// lexical scope first, then the Const table, matching the machine's
// own Delta-then-Const resolution order.
func (tr *translator) atom(s Sexpr, sc *scope) (term.Term, error) {
	if id, ok := sc.lookup(s.Atom); ok {
		return term.Var{ID: id}, nil
	}
	if id, ok := tr.consts[s.Atom]; ok {
		return term.Const{ID: id}, nil
	}
	return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: fmt.Sprintf("unbound name %q", s.Atom)}
}

func (tr *translator) universe(s Sexpr, args []Sexpr) (term.Term, error) {
	if len(args) != 1 || !args[0].isAtom() {
		return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: "(universe <level>) takes one numeric argument"}
	}
	level, err := strconv.Atoi(args[0].Atom)
	if err != nil {
		return nil, &SyntaxError{Line: args[0].Line, Column: args[0].Col, Message: fmt.Sprintf("invalid universe level %q", args[0].Atom)}
	}
	return term.Universe{Level: level}, nil
}

func (tr *translator) app(s Sexpr, args []Sexpr, sc *scope) (term.Term, error) {
	if len(args) != 2 {
		return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: "(app <fun> <arg>) takes two arguments"}
	}
	fun, err := tr.term(args[0], sc)
	if err != nil {
		return nil, err
	}
	arg, err := tr.term(args[1], sc)
	if err != nil {
		return nil, err
	}
	return term.App{Fun: fun, Arg: arg}, nil
}

func (tr *translator) binder(s Sexpr, args []Sexpr, sc *scope, build func(term.FunInfo) term.Term) (term.Term, error) {
	if len(args) != 3 || !args[0].isAtom() {
		return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: "binder forms take (<name> <dom> <body>)"}
	}
	dom, err := tr.term(args[1], sc)
	if err != nil {
		return nil, err
	}
	id := ident.New(args[0].Atom)
	inner := &scope{name: args[0].Atom, id: id, parent: sc}
	body, err := tr.term(args[2], inner)
	if err != nil {
		return nil, err
	}
	return build(term.FunInfo{ID: id, Dom: dom, Body: body}), nil
}

func (tr *translator) unary(s Sexpr, args []Sexpr, sc *scope, build func(term.Term) term.Term) (term.Term, error) {
	if len(args) != 1 {
		return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: "this form takes exactly one argument"}
	}
	t, err := tr.term(args[0], sc)
	if err != nil {
		return nil, err
	}
	return build(t), nil
}

func (tr *translator) cast(s Sexpr, args []Sexpr, sc *scope) (term.Term, error) {
	if len(args) != 3 {
		return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: "(cast <source> <target> <term>) takes three arguments"}
	}
	source, err := tr.term(args[0], sc)
	if err != nil {
		return nil, err
	}
	target, err := tr.term(args[1], sc)
	if err != nil {
		return nil, err
	}
	payload, err := tr.term(args[2], sc)
	if err != nil {
		return nil, err
	}
	return term.Cast{Source: source, Target: target, Term: payload}, nil
}

func (tr *translator) varRef(s Sexpr, args []Sexpr, sc *scope) (term.Term, error) {
	if len(args) != 1 || !args[0].isAtom() {
		return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: "(var <name>) takes one name"}
	}
	id, ok := sc.lookup(args[0].Atom)
	if !ok {
		return nil, &SyntaxError{Line: args[0].Line, Column: args[0].Col, Message: fmt.Sprintf("unbound variable %q", args[0].Atom)}
	}
	return term.Var{ID: id}, nil
}

func (tr *translator) constRef(s Sexpr, args []Sexpr) (term.Term, error) {
	if len(args) != 1 || !args[0].isAtom() {
		return nil, &SyntaxError{Line: s.Line, Column: s.Col, Message: "(const <name>) takes one name"}
	}
	id, ok := tr.consts[args[0].Atom]
	if !ok {
		return nil, &SyntaxError{Line: args[0].Line, Column: args[0].Col, Message: fmt.Sprintf("undeclared const %q", args[0].Atom)}
	}
	return term.Const{ID: id}, nil
}
