// Package grammar loads and validates operator tables.
//
// A grammar is written in YAML or CUE and compiled to a Table, which answers
// descriptor lookups for the parsing engine.
//
// # YAML Format
//
//	name: arith
//	description: "Arithmetic"
//	atoms: true            # identifiers and numbers are nilfix atoms
//	operators:
//	  - {name: "+", affix: infix, assoc: left, precedence: 40}
//	  - {name: "==", affix: infix, assoc: none, precedence: 30}
//	  - {name: "~", affix: prefix, precedence: 60}
//	  - {name: if, affix: prefix, arity: ternary, precedence: 5, follow: [then, else]}
//	  - {name: then, affix: interfix}
//	  - {name: else, affix: interfix}
//
// Write non-associative operators as `assoc: none`; a bare YAML `null`
// decodes to an empty string and selects the default, left.
//
// # CUE Format
//
// The same fields, with operators keyed by name:
//
//	name:  "logic"
//	atoms: true
//	operators: {
//		"&":   {affix: "infix", assoc: "left", precedence: 40}
//		"not": {affix: "prefix", precedence: 50}
//	}
//
// # Validation
//
// Validate reports every problem at once with E1xx codes. NewTable refuses
// specs with problems, so a Table never holds a descriptor the engine would
// reject as INVALID_POSITION in the role its position implies.
package grammar
