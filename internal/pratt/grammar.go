package pratt

import "github.com/roach88/pratt/internal/op"

// Grammar is the collaborator that gives tokens their meaning.
//
// Query returns the descriptor of a token. It may be called more than once
// for the same token during one parse and must answer consistently.
// Nullary reduces a nilfix token to an output value.
//
// A grammar whose operator table uses operands implements the matching
// reducer interfaces below. Implementing only the arities actually used is
// fine; reaching an arity that is not implemented fails with MISSING_REDUCER.
type Grammar[T, O any] interface {
	Query(tok T) (op.Op, error)
	Nullary(tok T) (O, error)
}

// UnaryReducer reduces prefix, postfix and circumfix operators with one operand.
type UnaryReducer[T, O any] interface {
	Unary(tok T, operand O) (O, error)
}

// BinaryReducer reduces infix operators with two operands.
type BinaryReducer[T, O any] interface {
	Binary(tok T, lhs, rhs O) (O, error)
}

// TernaryReducer reduces mixfix operators with three operands, such as
// `if a then b else c` or `a ? b : c`. Operands are passed in source order.
type TernaryReducer[T, O any] interface {
	Ternary(tok T, first, second, third O) (O, error)
}
