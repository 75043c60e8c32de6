// Package pratt implements a generalized operator-precedence (Pratt) parsing
// engine with support for mixfix constructs.
//
// The engine does not tokenize, does not own an AST and performs no semantic
// analysis. Its caller supplies a token stream and a Grammar: a descriptor
// lookup that maps each token to an op.Op, plus reducer callbacks that turn a
// matched operator and its already reduced operands into one output value.
//
// # Algorithm
//
// parseUntil(floor) consumes one token, reduces it by its null-denotation
// (nud) and then, while the next token's lbp lies strictly between floor and
// the current ceiling, consumes it and reduces it by its left-denotation
// (led). The ceiling starts at the nbp of the first token and becomes the nbp
// of every token absorbed by the loop.
//
// Multi-part constructs consume their separator ("follow") tokens between
// operands. By default a missing separator is skipped silently; use
// WithSeparatorMode(SeparatorStrict) to reject it instead.
//
// # Errors
//
// Failures reported by the Grammar are returned unchanged. Failures detected
// by the engine are *Error values: grammar errors (EMPTY_INPUT,
// INVALID_POSITION, MISSING_REDUCER) that a total operator table never
// produces for non-empty input, and syntax errors (TRAILING_INPUT,
// MISSING_SEPARATOR, DEPTH_EXCEEDED). No partial output is returned on failure.
//
// # Usage
//
//	p := pratt.New[Token, *Node](grammar, pratt.WithSeparatorMode(pratt.SeparatorStrict))
//	node, err := p.ParseSlice(tokens)
//	if pratt.IsGrammarError(err) {
//	    // broken operator table or empty input
//	}
package pratt
