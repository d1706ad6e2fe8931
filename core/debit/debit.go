// Package debit - Outbound debit payload
// A debit names its price in exactly one of three ways: a literal amount
// of cents, a price tag, or a serialized pricing expression. The one-of
// rule lives here, in the request schema, not in the expression DSL.
package debit

import (
	"pricing-expr/core/expr"
	"pricing-expr/internal/errors"
)

// Debit is the pricing portion of an outbound charge request. Exactly
// one of AmountCents, Tag, or Expression must be set.
type Debit struct {
	// AmountCents is a literal charge in the smallest currency unit.
	AmountCents *int64 `json:"amount_cents,omitempty"`

	// Tag is a backend-resolved price tag name.
	Tag string `json:"tag,omitempty"`

	// Expression is a canonically serialized pricing expression.
	Expression string `json:"expression,omitempty"`
}

// FromAmount builds a debit charging a literal number of cents.
func FromAmount(cents int64) Debit {
	return Debit{AmountCents: &cents}
}

// FromTag builds a debit charging the value behind a price tag. The name
// is held to the same rules as tag references inside expressions.
func FromTag(name string) (Debit, error) {
	if _, err := expr.Tag(name); err != nil {
		return Debit{}, errors.Validation("invalid debit tag", err)
	}
	return Debit{Tag: name}, nil
}

// FromExpr builds a debit charging the result of a pricing expression,
// embedding its canonical serialization.
func FromExpr(e expr.Expr) (Debit, error) {
	if err := expr.Validate(e); err != nil {
		return Debit{}, errors.Validation("invalid debit expression", err)
	}
	return Debit{Expression: expr.Serialize(e)}, nil
}

// Validate enforces the one-of rule and re-checks fields that may have
// been populated directly (for example, from decoded JSON).
func (d Debit) Validate() error {
	set := 0
	if d.AmountCents != nil {
		set++
	}
	if d.Tag != "" {
		set++
	}
	if d.Expression != "" {
		set++
	}
	if set == 0 {
		return errors.New(errors.TypeValidation, "debit must set one of amount_cents, tag, or expression")
	}
	if set > 1 {
		return errors.Newf(errors.TypeValidation, "debit must set exactly one of amount_cents, tag, or expression, got %d", set)
	}
	if d.Tag != "" {
		if _, err := expr.Tag(d.Tag); err != nil {
			return errors.Validation("invalid debit tag", err)
		}
	}
	if d.Expression != "" {
		e, err := expr.Parse(d.Expression)
		if err != nil {
			return errors.Validation("invalid debit expression", err)
		}
		if got := expr.Serialize(e); got != d.Expression {
			return errors.Newf(errors.TypeValidation, "debit expression is not in canonical form, want %s", got)
		}
	}
	return nil
}
