package op

import "math"

// Precedence is the binding strength of an operator. Larger binds tighter.
type Precedence uint32

const (
	// MinPrecedence is the floor used when parsing a whole input.
	MinPrecedence Precedence = 0

	// MaxPrecedence is the ceiling of positions no operator can bound.
	MaxPrecedence Precedence = math.MaxUint32
)

// Min returns the least precedence.
func Min() Precedence { return MinPrecedence }

// Max returns the greatest precedence.
func Max() Precedence { return MaxPrecedence }

// Lower returns the precedence one step weaker than p.
// Lower saturates at MinPrecedence.
func (p Precedence) Lower() Precedence {
	if p == MinPrecedence {
		return p
	}
	return p - 1
}

// Raise returns the precedence one step stronger than p.
// Raise saturates at MaxPrecedence.
func (p Precedence) Raise() Precedence {
	if p == MaxPrecedence {
		return p
	}
	return p + 1
}
