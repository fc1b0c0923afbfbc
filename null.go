package money

import "fmt"

// Null-tolerant helpers over optional amounts, modeled as *Amount where nil
// means "absent". They exist for callers aggregating values that may be
// missing (optional form fields, sparse ledger columns) without sprinkling
// nil checks at every call site. Currency mismatches between two present
// amounts are still reported, never coerced.

// AddAmount adds two optional amounts, treating nil as zero.
// The result is nil only if both inputs are nil.
func AddAmount(a, b *Amount) (*Amount, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	c, err := a.Add(*b)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SubAmount subtracts b from a, treating nil as zero.
// SubAmount(nil, b) yields the negation of b.
func SubAmount(a, b *Amount) (*Amount, error) {
	if b == nil {
		return a, nil
	}
	if a == nil {
		c := b.Neg()
		return &c, nil
	}
	c, err := a.Sub(*b)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// MaxAmount returns the larger of two optional amounts, treating nil as
// absent. The result is nil only if both inputs are nil.
func MaxAmount(a, b *Amount) (*Amount, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	c, err := a.Max(*b)
	if err != nil {
		return nil, fmt.Errorf("selecting max: %w", err)
	}
	return &c, nil
}

// MinAmount returns the smaller of two optional amounts, treating nil as
// absent. The result is nil only if both inputs are nil.
func MinAmount(a, b *Amount) (*Amount, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}
	c, err := a.Min(*b)
	if err != nil {
		return nil, fmt.Errorf("selecting min: %w", err)
	}
	return &c, nil
}
