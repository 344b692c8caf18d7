package surface

import (
	"fmt"

	"github.com/castcic-lang/castcic/internal/env"
	"github.com/castcic-lang/castcic/internal/ident"
	"github.com/castcic-lang/castcic/internal/reify"
	"github.com/castcic-lang/castcic/internal/term"
)

// File is the result of loading a surface-notation source: the global
// declaration table built from its `(def name term)` forms, and the
// trailing expression to reduce. Consts is nil-safe — an empty file
// with no defs produces a nil *env.Env, matching env.Empty.
type File struct {
	Consts *env.Env
	Main   term.Term
}

// Load parses and translates src into a File. Top-level forms must all
// be `(def name term)` except the last, which is the expression to
// reduce; a file with no defs is just that one expression.
func Load(src string) (*File, error) {
	p := NewParser(src)
	forms, err := p.ParseAll()
	if err != nil {
		return nil, err
	}
	if len(forms) == 0 {
		return nil, &SyntaxError{Message: "empty source: expected at least one expression"}
	}

	defs := forms[:len(forms)-1]
	mainForm := forms[len(forms)-1]

	type pendingDef struct {
		name string
		body Sexpr
	}
	var pending []pendingDef
	consts := map[string]ident.Identifier{}
	for _, d := range defs {
		name, body, ok := asDef(d)
		if !ok {
			return nil, &SyntaxError{Line: d.Line, Column: d.Col, Message: "expected (def <name> <term>) before the final expression"}
		}
		if _, dup := consts[name]; dup {
			return nil, &SyntaxError{Line: d.Line, Column: d.Col, Message: fmt.Sprintf("duplicate def %q", name)}
		}
		consts[name] = ident.New(name)
		pending = append(pending, pendingDef{name: name, body: body})
	}

	tr := &translator{consts: consts}
	var table *env.Env
	for _, d := range pending {
		t, err := tr.term(d.body, nil)
		if err != nil {
			return nil, err
		}
		table = table.Extend(consts[d.name], reify.ToValue(t))
	}

	main, err := tr.term(mainForm, nil)
	if err != nil {
		return nil, err
	}

	return &File{Consts: table, Main: main}, nil
}

func asDef(s Sexpr) (name string, body Sexpr, ok bool) {
	if s.isAtom() || len(s.List) != 3 {
		return "", Sexpr{}, false
	}
	head, isHead := s.List[0].Atom, s.List[0].isAtom()
	if !isHead || head != "def" {
		return "", Sexpr{}, false
	}
	if !s.List[1].isAtom() {
		return "", Sexpr{}, false
	}
	return s.List[1].Atom, s.List[2], true
}
