// Package expr - Builder invariant tests
// These tests prove the invariants are real by intentionally violating them.
package expr

import (
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountAcceptsAnyInt64(t *testing.T) {
	for _, cents := range []int64{0, 1, -1, 250, math.MaxInt64, math.MinInt64} {
		a, err := Amount(cents)
		if err != nil {
			t.Fatalf("Amount(%d) returned error: %v", cents, err)
		}
		if a.Value != cents {
			t.Errorf("Amount(%d).Value = %d", cents, a.Value)
		}
	}
}

func TestAmountOfRejectsFractionalCents(t *testing.T) {
	_, err := AmountOf(2.5)
	if err == nil {
		t.Fatal("AmountOf(2.5) succeeded, expected error")
	}
	if !strings.Contains(err.Error(), "integer (cents)") {
		t.Errorf("error %q does not mention integer (cents)", err)
	}
}

func TestAmountOfRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := AmountOf(v)
		if err == nil {
			t.Fatalf("AmountOf(%v) succeeded, expected error", v)
		}
		if !strings.Contains(err.Error(), "finite number") {
			t.Errorf("error %q does not mention finite number", err)
		}
	}
}

func TestAmountOfAcceptsIntegralFloats(t *testing.T) {
	a, err := AmountOf(250)
	if err != nil {
		t.Fatalf("AmountOf(250) returned error: %v", err)
	}
	if a.Value != 250 {
		t.Errorf("AmountOf(250).Value = %d", a.Value)
	}
}

func TestAmountFromDecimal(t *testing.T) {
	a, err := AmountFromDecimal(decimal.NewFromInt(4200))
	if err != nil {
		t.Fatalf("AmountFromDecimal(4200) returned error: %v", err)
	}
	if a.Value != 4200 {
		t.Errorf("AmountFromDecimal(4200).Value = %d", a.Value)
	}

	_, err = AmountFromDecimal(decimal.RequireFromString("10.5"))
	if err == nil {
		t.Fatal("AmountFromDecimal(10.5) succeeded, expected error")
	}
	if !strings.Contains(err.Error(), "integer (cents)") {
		t.Errorf("error %q does not mention integer (cents)", err)
	}

	_, err = AmountFromDecimal(decimal.RequireFromString("99999999999999999999"))
	if err == nil {
		t.Fatal("AmountFromDecimal over int64 succeeded, expected error")
	}
}

func TestTagBuilder(t *testing.T) {
	tests := []struct {
		name    string
		wantErr string // empty means success
	}{
		{"PREMIUM_CALL", ""},
		{"_internal", ""},
		{"a", ""},
		{"rate-v2", ""},
		{"Tier3_fee-x", ""},
		{"", "must not be empty"},
		{"   ", "whitespace-only"},
		{" BAD", "leading or trailing whitespace"},
		{"BAD ", "leading or trailing whitespace"},
		{"\tBAD", "leading or trailing whitespace"},
		{"9lives", "start with a letter or underscore"},
		{"-lead", "start with a letter or underscore"},
		{"has space", "letters, digits, underscores, or hyphens"},
		{"bad$char", "letters, digits, underscores, or hyphens"},
		{"quo'te", "letters, digits, underscores, or hyphens"},
	}
	for _, tt := range tests {
		tag, err := Tag(tt.name)
		if tt.wantErr == "" {
			if err != nil {
				t.Errorf("Tag(%q) returned error: %v", tt.name, err)
			} else if tag.Name != tt.name {
				t.Errorf("Tag(%q).Name = %q", tt.name, tag.Name)
			}
			continue
		}
		if err == nil {
			t.Errorf("Tag(%q) succeeded, expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantErr) {
			t.Errorf("Tag(%q) error %q does not mention %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestOpsRequireTwoArguments(t *testing.T) {
	builders := map[string]func(...Operand) (*OpExpr, error){
		"add": Add, "sub": Sub, "mul": Mul, "div": Div,
	}
	for name, build := range builders {
		_, err := build(1)
		if err == nil {
			t.Fatalf("%s(1) succeeded, expected error", name)
		}
		if !strings.Contains(err.Error(), name) || !strings.Contains(err.Error(), "got 1") {
			t.Errorf("%s(1) error %q should cite the operator and the count", name, err)
		}
		if _, err := build(); err == nil {
			t.Errorf("%s() succeeded, expected error", name)
		}
	}
}

func TestOpsPreserveArgumentOrder(t *testing.T) {
	e, err := Sub(Must(Tag("BASE")), 100, Must(Tag("DISCOUNT")))
	if err != nil {
		t.Fatalf("Sub returned error: %v", err)
	}
	if len(e.Args) != 3 {
		t.Fatalf("Sub built %d args, want 3", len(e.Args))
	}
	if tag, ok := e.Args[0].(*TagExpr); !ok || tag.Name != "BASE" {
		t.Errorf("Args[0] = %#v, want tag BASE", e.Args[0])
	}
	if a, ok := e.Args[1].(*AmountExpr); !ok || a.Value != 100 {
		t.Errorf("Args[1] = %#v, want amount 100", e.Args[1])
	}
	if tag, ok := e.Args[2].(*TagExpr); !ok || tag.Name != "DISCOUNT" {
		t.Errorf("Args[2] = %#v, want tag DISCOUNT", e.Args[2])
	}
}

func TestOpsAcceptManyArguments(t *testing.T) {
	args := make([]Operand, 10)
	for i := range args {
		args[i] = i + 1
	}
	e, err := Add(args...)
	if err != nil {
		t.Fatalf("Add with 10 args returned error: %v", err)
	}
	if len(e.Args) != 10 {
		t.Errorf("Add built %d args, want 10", len(e.Args))
	}
}

func TestDivRejectsLiteralZeroDivisor(t *testing.T) {
	_, err := Div(100, 0)
	if err == nil {
		t.Fatal("Div(100, 0) succeeded, expected error")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "division by zero") {
		t.Errorf("error %q does not mention division by zero", err)
	}
	if !strings.Contains(err.Error(), "position 2") {
		t.Errorf("error %q does not report position 2", err)
	}

	// Position is 1-based across all divisor slots.
	_, err = Div(100, 5, 0)
	if err == nil {
		t.Fatal("Div(100, 5, 0) succeeded, expected error")
	}
	if !strings.Contains(err.Error(), "position 3") {
		t.Errorf("error %q does not report position 3", err)
	}
}

func TestDivAllowsZeroDividend(t *testing.T) {
	if _, err := Div(0, 5); err != nil {
		t.Errorf("Div(0, 5) returned error: %v", err)
	}
}

func TestDivDefersNonLiteralDivisorsToBackend(t *testing.T) {
	// A tag divisor may be zero at evaluation time. That check belongs
	// to the backend, which knows live tag values.
	e, err := Div(100, Must(Tag("DIVISOR")))
	if err != nil {
		t.Fatalf("Div(100, tag) returned error: %v", err)
	}
	if got := Serialize(e); got != "div(100,tag('DIVISOR'))" {
		t.Errorf("Serialize = %q", got)
	}

	// Same for a nested expression, even one that evaluates to zero.
	if _, err := Div(100, Must(Sub(5, 5))); err != nil {
		t.Errorf("Div(100, sub(5,5)) returned error: %v", err)
	}
}

func TestBuildersRejectBadOperandTypes(t *testing.T) {
	_, err := Add("not an expression", 1)
	if err == nil {
		t.Fatal("Add with string operand succeeded, expected error")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("error has type %T, want *Error", err)
	}
}

func TestBuilderErrorsAreExprErrors(t *testing.T) {
	for _, build := range []func() error{
		func() error { _, err := Tag(" BAD"); return err },
		func() error { _, err := AmountOf(2.5); return err },
		func() error { _, err := Div(1, 0); return err },
		func() error { _, err := Add(1); return err },
	} {
		err := build()
		if err == nil {
			t.Fatal("expected error")
		}
		if _, ok := err.(*Error); !ok {
			t.Errorf("error has type %T, want *Error", err)
		}
	}
}

func TestNestedBadLeafFailsWholeExpression(t *testing.T) {
	// The bad leaf never comes into existence, so the outer builder
	// fails on the propagated error, not on a half-built child.
	_, err := Tag("bad name")
	if err == nil {
		t.Fatal("expected tag error")
	}
	_, err = Add(1, 2.5)
	if err == nil {
		t.Fatal("Add(1, 2.5) succeeded, expected error")
	}
	if !strings.Contains(err.Error(), "integer (cents)") {
		t.Errorf("error %q does not carry the leaf diagnosis", err)
	}
}

func TestMustPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from Must on invalid tag")
		}
	}()
	Must(Tag(" BAD"))
}
