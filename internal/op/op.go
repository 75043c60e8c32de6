package op

import "fmt"

// MaxFollow is the number of follow slots a descriptor carries, one per
// operand boundary of the largest construct.
const MaxFollow = 4

// Op is an immutable operator descriptor.
//
// Follow holds the names of the separator tokens expected at each operand
// boundary of a multi-part construct. An empty slot means no separator is
// expected at that boundary.
type Op struct {
	Name       string
	Affix      Affix
	Arity      Arity
	Precedence Precedence
	Follow     [MaxFollow]string
}

// New creates a descriptor with no follow names.
// Use NewInfix for infix operators so the associativity is explicit.
func New(name string, pos Position, arity Arity, prec Precedence) Op {
	return Op{
		Name:       name,
		Affix:      Affix{Position: pos},
		Arity:      arity,
		Precedence: prec,
	}
}

// NewInfix creates an infix descriptor with the given associativity.
func NewInfix(name string, assoc Associativity, arity Arity, prec Precedence) Op {
	return Op{
		Name:       name,
		Affix:      InfixAffix(assoc),
		Arity:      arity,
		Precedence: prec,
	}
}

// FollowedBy returns a copy of o expecting the given separator names at its
// operand boundaries, in order.
//
// Panics if more than MaxFollow names are given. Grammar loaders validate the
// count before building descriptors, so this only fires on hand-written tables.
func (o Op) FollowedBy(names ...string) Op {
	if len(names) > MaxFollow {
		panic(fmt.Sprintf("op %q: %d follow names exceed the maximum of %d", o.Name, len(names), MaxFollow))
	}
	o.Follow = [MaxFollow]string{}
	copy(o.Follow[:], names)
	return o
}

// Position returns the syntactic position of o.
func (o Op) Position() Position {
	return o.Affix.Position
}

// FollowAt returns the separator expected at boundary i, or "" when none is.
func (o Op) FollowAt(i int) string {
	if i < 0 || i >= MaxFollow {
		return ""
	}
	return o.Follow[i]
}

// FollowNames returns the non-empty follow names in slot order.
func (o Op) FollowNames() []string {
	var names []string
	for _, n := range o.Follow {
		if n != "" {
			names = append(names, n)
		}
	}
	return names
}

func (o Op) String() string {
	return fmt.Sprintf("%s %s/%s@%d", o.Name, o.Affix, o.Arity, o.Precedence)
}

// Role is the place in an expression where a token is dispatched.
type Role uint8

const (
	// RoleStart is null-denotation: the token begins an expression.
	RoleStart Role = iota
	// RoleContinue is left-denotation: the token extends a left operand.
	RoleContinue
)

func (r Role) String() string {
	if r == RoleStart {
		return "start"
	}
	return "continue"
}

// ValidAt reports whether the (position, arity) shape of o can be dispatched
// in role r. Every other combination is a grammar configuration error.
func (o Op) ValidAt(r Role) bool {
	switch r {
	case RoleStart:
		switch o.Affix.Position {
		case Nilfix:
			return o.Arity == Nullary
		case Prefix:
			return o.Arity == Unary || o.Arity == Ternary
		case Circumfix:
			return o.Arity == Unary
		}
	case RoleContinue:
		switch o.Affix.Position {
		case Postfix:
			return o.Arity == Unary || o.Arity == Ternary
		case Infix:
			return o.Arity == Binary || o.Arity == Ternary
		}
	}
	return false
}
