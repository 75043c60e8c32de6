package harness

// CaseResult is the outcome of one case, as recorded in the parse log.
type CaseResult struct {
	Seq   int64  `json:"seq"`
	Input string `json:"input"`
	Pass  bool   `json:"pass"`

	// SExpr and TreeHash are set when the input parsed.
	SExpr    string `json:"sexpr,omitempty"`
	TreeHash string `json:"tree_hash,omitempty"`

	// ErrorCode and Error are set when it did not.
	ErrorCode string `json:"error_code,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Result is the outcome of a test scenario execution.
type Result struct {
	// Pass indicates overall test success.
	// True if every case matched its expectation.
	Pass bool `json:"pass"`

	// Grammar is the name of the operator table used.
	Grammar string `json:"grammar"`

	// Separators is the separator mode used.
	Separators string `json:"separators"`

	// Cases holds one result per scenario case, in order.
	Cases []CaseResult `json:"cases"`

	// Errors contains mismatch messages.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for test execution.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Cases:  []CaseResult{},
		Errors: []string{},
	}
}

// AddError adds a mismatch message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
