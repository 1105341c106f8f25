package formula

import (
	"math"
	"strings"
	"testing"
)

func mustParse(t *testing.T, text string) *Expression {
	t.Helper()
	expr, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", text, err)
	}
	return expr
}

func evalOK(t *testing.T, text string, w, h, d, want float64) {
	t.Helper()
	got, err := mustParse(t, text).Eval(w, h, d)
	if err != nil {
		t.Fatalf("Eval(%q) returned error: %v", text, err)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Eval(%q) = %v, want %v", text, got, want)
	}
}

func TestParseAndEval(t *testing.T) {
	evalOK(t, "w", 100, 50, 10, 100)
	evalOK(t, "width + height + depth", 100, 50, 10, 160)
	evalOK(t, "w * h / 10000", 100, 50, 10, 0.5)
	evalOK(t, "(w * h + 2 * d * h + 2 * w * d) / 10000", 120, 24, 8, 5.184)
	evalOK(t, "2 + 3 * 4", 0, 0, 0, 14)
	evalOK(t, "(2 + 3) * 4", 0, 0, 0, 20)
	evalOK(t, "-w + 200", 100, 0, 0, 100)
	evalOK(t, "w - h - d", 100, 50, 10, 40)
	evalOK(t, "1.5 * h", 0, 10, 0, 15)
	evalOK(t, "W * H / 10000", 100, 50, 10, 0.5)
}

func TestParseRejectsAnythingOutsideTheGrammar(t *testing.T) {
	bad := []string{
		"",
		"   ",
		"w +",
		"* h",
		"(w + h",
		"w + h)",
		"x * y",
		"area",
		"while(true){}",
		"w(h)",
		"w = h",
		"w; h",
		"Math.pow(w, 2)",
		"1..2",
		"w ** 2",
	}
	for _, text := range bad {
		if _, err := Parse(text); err == nil {
			t.Errorf("Parse(%q) succeeded, expected error", text)
		}
	}
}

func TestEvalRejectsNonFiniteResults(t *testing.T) {
	if _, err := mustParse(t, "w / 0").Eval(100, 50, 10); err == nil {
		t.Fatal("division by zero literal should not produce a finite result")
	}
	if _, err := mustParse(t, "w / d").Eval(100, 50, 0); err == nil {
		t.Fatal("division by zero variable should not produce a finite result")
	}
	// The same expression is fine when the divisor is non-zero.
	if _, err := mustParse(t, "w / d").Eval(100, 50, 10); err != nil {
		t.Fatalf("w / d with d=10 should evaluate, got %v", err)
	}
}

func TestCheck(t *testing.T) {
	res := Check("w*h/10000")
	if !res.Valid {
		t.Fatalf("expected valid, got error %q", res.Error)
	}
	if math.Abs(res.Value-0.5) > 1e-9 {
		t.Fatalf("sample result = %v, want 0.5", res.Value)
	}

	if res := Check("w/0"); res.Valid {
		t.Fatal("w/0 must be rejected by the finite check")
	}
	if res := Check("while(true){}"); res.Valid {
		t.Fatal("loop constructs must fail to compile")
	}
	if res := Check("w*h"); !res.Valid || res.Value != 5000 {
		t.Fatalf("w*h sample = %+v, want valid 5000", res)
	}
}

func TestCheckErrorMessagesNameTheProblem(t *testing.T) {
	res := Check("foo * h")
	if res.Valid {
		t.Fatal("unknown identifier accepted")
	}
	if !strings.Contains(res.Error, "foo") {
		t.Fatalf("error %q should mention the offending identifier", res.Error)
	}
}

func TestSourceRoundTrip(t *testing.T) {
	expr := mustParse(t, "  (w * h) / 10000 ")
	if expr.Source() != "(w * h) / 10000" {
		t.Fatalf("Source() = %q", expr.Source())
	}
}
