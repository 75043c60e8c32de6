package grammar

import (
	"fmt"

	"github.com/roach88/pratt/internal/op"
)

// Spec is the file form of an operator table, shared by the YAML and CUE
// formats.
type Spec struct {
	// Name identifies the grammar in logs and in the parse store.
	Name string `yaml:"name"`

	// Description is free text shown by `pratt check`.
	Description string `yaml:"description,omitempty"`

	// Atoms makes every identifier or number token that is not an operator
	// a nilfix atom.
	Atoms bool `yaml:"atoms,omitempty"`

	// Operators lists the descriptors in declaration order.
	Operators []OperatorSpec `yaml:"operators"`
}

// OperatorSpec describes one operator token.
//
// Arity may be omitted: nilfix and interfix default to nullary, infix to
// binary and every other position to unary. Assoc is only meaningful for
// infix operators and defaults to left.
type OperatorSpec struct {
	Name       string   `yaml:"name"`
	Affix      string   `yaml:"affix"`
	Assoc      string   `yaml:"assoc,omitempty"`
	Arity      string   `yaml:"arity,omitempty"`
	Precedence uint32   `yaml:"precedence,omitempty"`
	Follow     []string `yaml:"follow,omitempty"`

	// Line is the source line of the operator, zero when unknown.
	Line int `yaml:"-"`
}

// Op converts the spec to a descriptor. Names must already be valid; use
// Validate first to get all problems at once.
func (s OperatorSpec) Op() (op.Op, error) {
	pos, err := op.ParsePosition(s.Affix)
	if err != nil {
		return op.Op{}, err
	}

	arity := defaultArity(pos)
	if s.Arity != "" {
		if arity, err = op.ParseArity(s.Arity); err != nil {
			return op.Op{}, err
		}
	}

	if len(s.Follow) > op.MaxFollow {
		return op.Op{}, fmt.Errorf("%d follow names exceed the maximum of %d", len(s.Follow), op.MaxFollow)
	}

	var o op.Op
	if pos == op.Infix {
		assoc := op.AssocLeft
		if s.Assoc != "" {
			if assoc, err = op.ParseAssociativity(s.Assoc); err != nil {
				return op.Op{}, err
			}
		}
		o = op.NewInfix(normalize(s.Name), assoc, arity, op.Precedence(s.Precedence))
	} else {
		o = op.New(normalize(s.Name), pos, arity, op.Precedence(s.Precedence))
	}

	follow := make([]string, len(s.Follow))
	for i, name := range s.Follow {
		follow[i] = normalize(name)
	}
	return o.FollowedBy(follow...), nil
}

func defaultArity(pos op.Position) op.Arity {
	switch pos {
	case op.Nilfix, op.Interfix:
		return op.Nullary
	case op.Infix:
		return op.Binary
	default:
		return op.Unary
	}
}
