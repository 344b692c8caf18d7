// Package value defines the tagged-value form of CastCIC terms: the
// machine's Control field during reduction. It is a superset of the
// term package's grammar — every source constructor has a value
// counterpart, and five of them (Lambda, Prod, Unknown, Err, Cast) gain
// a second, "tagged" constructor (VLambda, VProd, VUnknown, VErr, VCast)
// once they have been reduced far enough to count as a value. The
// conversion to and from term.Term lives in the reify package, not here,
// so this package has no dependency on it.
package value

import (
	"fmt"

	"github.com/castcic-lang/castcic/internal/ident"
)

// Tag identifies the concrete shape of a Value.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=Tag
type Tag int

const (
	TagVar Tag = iota
	TagUniverse
	TagApp
	TagLambda
	TagVLambda
	TagProd
	TagVProd
	TagUnknown
	TagVUnknown
	TagErr
	TagVErr
	TagCast
	TagVCast
	TagConst
)

// Value is the interface implemented by every tagged-value constructor.
type Value interface {
	Tag() Tag
	String() string
}

// Var is an unresolved variable occurrence. Never a value.
type Var struct {
	ID ident.Identifier
}

func (Var) Tag() Tag         { return TagVar }
func (v Var) String() string { return v.ID.String() }

// Universe is the universe at level Level. Always a value.
type Universe struct {
	Level int
}

func (Universe) Tag() Tag { return TagUniverse }
func (u Universe) String() string {
	return fmt.Sprintf("▢%d", u.Level)
}

// App is an application still to be reduced. Never a value.
type App struct {
	Fun Value
	Arg Value
}

func (App) Tag() Tag { return TagApp }
func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// FunInfo packages the identifier, domain, and body shared by Lambda/
// VLambda and Prod/VProd.
type FunInfo struct {
	ID   ident.Identifier
	Dom  Value
	Body Value
}

// Lambda is a function abstraction whose domain has not yet been
// reduced to a value. Never a value itself — see VLambda.
type Lambda struct {
	FunInfo
}

func (Lambda) Tag() Tag { return TagLambda }
func (l Lambda) String() string {
	return fmt.Sprintf("fun %s : %s. %s", l.ID, l.Dom, l.Body)
}

// VLambda is a function value: the domain has been reduced and the
// lambda's free variables are captured in Env.
type VLambda struct {
	FunInfo
	Env Environment
}

func (VLambda) Tag() Tag { return TagVLambda }
func (l VLambda) String() string {
	return fmt.Sprintf("fun %s : %s. %s", l.ID, l.Dom, l.Body)
}

// Prod is a dependent product type whose domain has not yet been
// reduced. Never a value itself — see VProd.
type Prod struct {
	FunInfo
}

func (Prod) Tag() Tag { return TagProd }
func (p Prod) String() string {
	return fmt.Sprintf("Π %s : %s. %s", p.ID, p.Dom, p.Body)
}

// VProd is a product-type value with the domain reduced and its free
// variables captured in Env.
type VProd struct {
	FunInfo
	Env Environment
}

func (VProd) Tag() Tag { return TagVProd }
func (p VProd) String() string {
	return fmt.Sprintf("Π %s : %s. %s", p.ID, p.Dom, p.Body)
}

// Unknown is an unknown-at-type-T term whose type has not yet been
// reduced. Never a value itself — see VUnknown.
type Unknown struct {
	Type Value
}

func (Unknown) Tag() Tag { return TagUnknown }
func (u Unknown) String() string {
	return fmt.Sprintf("?_%s", u.Type)
}

// VUnknown is the canonical unknown value at a reduced type. A value
// unless its payload is itself a VProd (see types.IsValue), in which
// case it must still eta-expand via the Prod-Unk rule.
type VUnknown struct {
	Inner Value
}

func (VUnknown) Tag() Tag { return TagVUnknown }
func (u VUnknown) String() string {
	return fmt.Sprintf("?_%s", u.Inner)
}

// Err is an error-at-type-T term whose type has not yet been reduced.
// Never a value itself — see VErr.
type Err struct {
	Type Value
}

func (Err) Tag() Tag { return TagErr }
func (e Err) String() string {
	return fmt.Sprintf("err_%s", e.Type)
}

// VErr is the canonical error value at a reduced type. A value unless
// its payload is itself a VProd, mirroring VUnknown.
type VErr struct {
	Inner Value
}

func (VErr) Tag() Tag { return TagVErr }
func (e VErr) String() string {
	return fmt.Sprintf("err_%s", e.Inner)
}

// Cast is a cast whose source/target/payload have not all been reduced
// and checked yet. Never a value itself — see VCast.
type Cast struct {
	Source Value
	Target Value
	Term   Value
}

func (Cast) Tag() Tag { return TagCast }
func (c Cast) String() string {
	return fmt.Sprintf("⟨%s ⇐ %s⟩ %s", c.Target, c.Source, c.Term)
}

// VCast is a canonical injection of a value into an unknown type: the
// machine has confirmed Source is a germ for Target's level and frozen
// the cast rather than collapsing it further.
type VCast struct {
	Source Value
	Target Value
	Term   Value
}

func (VCast) Tag() Tag { return TagVCast }
func (c VCast) String() string {
	return fmt.Sprintf("⟨%s ⇐ %s⟩ %s", c.Target, c.Source, c.Term)
}

// Const is a reference to a global declaration. Never a value; resolved
// by the machine against the declaration table before falling back to
// a free-identifier error.
type Const struct {
	ID ident.Identifier
}

func (Const) Tag() Tag         { return TagConst }
func (c Const) String() string { return c.ID.String() }

// Environment is the interface the env package's *Env satisfies. It is
// declared here, rather than imported directly, to break the import
// cycle between value (which closures embed) and env (which maps
// identifiers to Value).
type Environment interface {
	Lookup(id ident.Identifier) (Value, bool)
	Add(id ident.Identifier, v Value) Environment
}
