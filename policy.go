package quickquery

import "fmt"

// RowCountPolicy describes the accepted number of affected rows.
// A statement satisfies the policy when it affects exactly N rows, or fewer
// than N rows when AcceptsLess is set.
type RowCountPolicy struct {
	N           int64
	AcceptsLess bool
}

// Exactly returns a policy accepting exactly n affected rows.
func Exactly(n int64) RowCountPolicy {
	return RowCountPolicy{N: n}
}

// AtMost returns a policy accepting n or fewer affected rows.
func AtMost(n int64) RowCountPolicy {
	return RowCountPolicy{N: n, AcceptsLess: true}
}

// Allows reports whether affected satisfies the policy.
func (p RowCountPolicy) Allows(affected int64) bool {
	return affected == p.N || (p.AcceptsLess && affected < p.N)
}

func (p RowCountPolicy) String() string {
	if p.AcceptsLess {
		return fmt.Sprintf("at most %d", p.N)
	}
	return fmt.Sprintf("exactly %d", p.N)
}

func (p RowCountPolicy) validate() error {
	if p.N < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRowCount, p.N)
	}
	return nil
}
