package op

import (
	"fmt"
	"strings"
)

// Associativity governs how an infix operator chains with itself.
type Associativity uint8

const (
	// AssocNull operators cannot chain: `a == b == c` is rejected.
	AssocNull Associativity = iota
	// AssocLeft operators group to the left: `(a - b) - c`.
	AssocLeft
	// AssocRight operators group to the right: `a ^ (b ^ c)`.
	AssocRight
)

var assocNames = [...]string{
	AssocNull:  "null",
	AssocLeft:  "left",
	AssocRight: "right",
}

func (a Associativity) String() string {
	if int(a) < len(assocNames) {
		return assocNames[a]
	}
	return fmt.Sprintf("Associativity(%d)", uint8(a))
}

// ParseAssociativity converts a grammar file name ("left", "right", "null"
// or "none") to an Associativity.
func ParseAssociativity(s string) (Associativity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "null", "none", "nonassoc":
		return AssocNull, nil
	case "left":
		return AssocLeft, nil
	case "right":
		return AssocRight, nil
	}
	return AssocNull, fmt.Errorf("unknown associativity %q", s)
}

// Arity is the number of parsed operands, not counting the operator token.
type Arity uint8

const (
	Nullary Arity = iota
	Unary
	Binary
	Ternary
)

var arityNames = [...]string{
	Nullary: "nullary",
	Unary:   "unary",
	Binary:  "binary",
	Ternary: "ternary",
}

func (a Arity) String() string {
	if int(a) < len(arityNames) {
		return arityNames[a]
	}
	return fmt.Sprintf("Arity(%d)", uint8(a))
}

// Operands returns the operand count as an int.
func (a Arity) Operands() int {
	return int(a)
}

// ParseArity converts a grammar file name to an Arity.
func ParseArity(s string) (Arity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range arityNames {
		if n == name {
			return Arity(i), nil
		}
	}
	return Nullary, fmt.Errorf("unknown arity %q", s)
}

// Position is the syntactic position of a token.
type Position uint8

const (
	// Nilfix tokens are complete expressions: literals and identifiers.
	Nilfix Position = iota
	// Prefix tokens start an expression and take operands to their right.
	Prefix
	// Postfix tokens continue an expression after its left operand.
	Postfix
	// Circumfix tokens open a bracketing form closed by a follow token.
	Circumfix
	// Interfix tokens only appear as follow tokens inside another construct.
	Interfix
	// Infix tokens sit between a left operand and a right operand.
	Infix
)

var positionNames = [...]string{
	Nilfix:    "nilfix",
	Prefix:    "prefix",
	Postfix:   "postfix",
	Circumfix: "circumfix",
	Interfix:  "interfix",
	Infix:     "infix",
}

func (p Position) String() string {
	if int(p) < len(positionNames) {
		return positionNames[p]
	}
	return fmt.Sprintf("Position(%d)", uint8(p))
}

// ParsePosition converts a grammar file name to a Position.
func ParsePosition(s string) (Position, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range positionNames {
		if n == name {
			return Position(i), nil
		}
	}
	return Nilfix, fmt.Errorf("unknown position %q", s)
}

// Affix is a syntactic position together with the associativity of infix
// operators. Assoc is ignored for every position other than Infix.
type Affix struct {
	Position Position
	Assoc    Associativity
}

// InfixAffix returns the infix affix with the given associativity.
func InfixAffix(assoc Associativity) Affix {
	return Affix{Position: Infix, Assoc: assoc}
}

func (a Affix) String() string {
	if a.Position == Infix {
		return fmt.Sprintf("infix(%s)", a.Assoc)
	}
	return a.Position.String()
}
