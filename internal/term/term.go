// Package term defines the source-form grammar of CastCIC: the
// cast-annotated Calculus of Inductive Constructions that the reduction
// core consumes and produces. A Term is the syntax a caller builds by
// hand or that the surface loader parses; the machine package lowers it
// to tagged values and the reify package lowers values back.
package term

import (
	"fmt"

	"github.com/castcic-lang/castcic/internal/ident"
)

// Tag identifies the concrete shape of a Term without a type switch,
// mirroring the tag-dispatch style used throughout this codebase's
// machine and value packages.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Tag
type Tag int

const (
	TagVar Tag = iota
	TagUniverse
	TagApp
	TagLambda
	TagProd
	TagUnknown
	TagErr
	TagCast
	TagConst
)

// Term is the interface implemented by every CastCIC source-term
// constructor. String renders the term using the pretty-printing rules
// of the external interface (each constructor's String method below).
type Term interface {
	Tag() Tag
	String() string
}

// Var is a variable occurrence.
type Var struct {
	ID ident.Identifier
}

func (Var) Tag() Tag        { return TagVar }
func (v Var) String() string { return v.ID.String() }

// Universe is the universe at level Level.
type Universe struct {
	Level int
}

func (Universe) Tag() Tag { return TagUniverse }
func (u Universe) String() string {
	return fmt.Sprintf("▢%d", u.Level)
}

// App is an application of Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

func (App) Tag() Tag { return TagApp }
func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// FunInfo packages the three fields shared by Lambda and Prod: the bound
// identifier, its domain annotation, and the body/codomain. Keeping it as
// a standalone struct lets the machine's Beta and Prod-Prod rules pass it
// around without repeating three-field tuples everywhere.
type FunInfo struct {
	ID   ident.Identifier
	Dom  Term
	Body Term
}

// Lambda is a function abstraction with an explicit domain annotation.
type Lambda struct {
	FunInfo
}

func (Lambda) Tag() Tag { return TagLambda }
func (l Lambda) String() string {
	return fmt.Sprintf("fun %s : %s. %s", l.ID, l.Dom, l.Body)
}

// Prod is a dependent product (Pi) type.
type Prod struct {
	FunInfo
}

func (Prod) Tag() Tag { return TagProd }
func (p Prod) String() string {
	return fmt.Sprintf("Π %s : %s. %s", p.ID, p.Dom, p.Body)
}

// Unknown is the canonical imprecise inhabitant of type Type.
type Unknown struct {
	Type Term
}

func (Unknown) Tag() Tag { return TagUnknown }
func (u Unknown) String() string {
	return fmt.Sprintf("?_%s", u.Type)
}

// Err is the failure inhabitant of type Type.
type Err struct {
	Type Term
}

func (Err) Tag() Tag { return TagErr }
func (e Err) String() string {
	return fmt.Sprintf("err_%s", e.Type)
}

// Cast explicitly casts Term, known at type Source, to type Target.
type Cast struct {
	Source Term
	Target Term
	Term   Term
}

func (Cast) Tag() Tag { return TagCast }
func (c Cast) String() string {
	return fmt.Sprintf("⟨%s ⇐ %s⟩ %s", c.Target, c.Source, c.Term)
}

// Const is a reference to a global declaration, resolved externally (by
// the surface loader's declaration table in this module, or by a real
// elaborator upstream).
type Const struct {
	ID ident.Identifier
}

func (Const) Tag() Tag { return TagConst }
func (c Const) String() string { return c.ID.String() }
