// Package harness runs conformance scenarios against operator grammars.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: arith_precedence
//	description: "Multiplication binds tighter than addition"
//	builtin: arith            # or grammar: path/to/grammar.yaml (relative to the scenario)
//	separators: lenient       # or strict; default lenient
//	max_depth: 0              # 0 means unlimited
//	cases:
//	  - input: "a + b * c"
//	    expect: "(+ a (* b c))"
//	  - input: "a == b == c"
//	    error: TRAILING_INPUT
//
// A case expects either a tree, written as an s-expression, or an error
// code: one of the engine codes, or UNKNOWN_TOKEN for a token the grammar
// does not know.
//
// # Deterministic Testing
//
// Every case is recorded in a fresh in-memory store with a fixed ID
// generator and a deterministic logical clock, so the same scenario always
// produces the same snapshot for golden file comparison.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/arith.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range result.Errors {
//	    log.Println(e)
//	}
package harness
