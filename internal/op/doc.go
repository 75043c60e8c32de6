// Package op defines the operator vocabulary shared by the parsing engine
// and the grammars that drive it.
//
// An Op describes how a single token participates in an expression: its
// syntactic position (nilfix, prefix, postfix, circumfix, interfix or infix
// with an associativity), how many operands it takes, its precedence, and the
// names of the interior tokens that separate the operands of a multi-part
// construct such as `if a then b else c`.
//
// # Binding Powers
//
// Every descriptor derives three thresholds from its shape:
//
//	             lbp     nbp      rbp
//	Nilfix       MIN     MAX      -
//	Prefix       MIN     MAX      p-1 (interior operands: MIN)
//	Circumfix    MIN     MAX      p-1
//	Interfix     MIN     MAX      -
//	Postfix      p       MAX      p-1 (ternary only)
//	InfixLeft    p       p+1      p
//	InfixRight   p       p+1      p-1
//	InfixNull    p       p        p
//
// lbp decides whether a token may continue the expression to its left, nbp
// is the exclusive ceiling for what may still attach after the token is
// reduced, and rbp is the floor used when parsing the token's own final
// operand.
package op
