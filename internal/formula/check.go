package formula

// Sample dimensions used when validating a formula before it may replace a
// style's active formula.
const (
	SampleWidth  = 100
	SampleHeight = 50
	SampleDepth  = 10
)

// CheckResult reports whether a formula text is acceptable and what it
// evaluates to on the sample dimensions.
type CheckResult struct {
	Valid bool    `json:"valid"`
	Value float64 `json:"result"`
	Error string  `json:"error,omitempty"`
}

// Check compiles the formula and evaluates it on the 100×50×10 sample. The
// formula is valid only if both steps succeed with a finite result.
func Check(text string) CheckResult {
	expr, err := Parse(text)
	if err != nil {
		return CheckResult{Error: err.Error()}
	}
	v, err := expr.Eval(SampleWidth, SampleHeight, SampleDepth)
	if err != nil {
		return CheckResult{Error: err.Error()}
	}
	return CheckResult{Valid: true, Value: v}
}
