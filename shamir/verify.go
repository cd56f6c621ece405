package shamir

import (
	"fmt"
)

// Verify checks that all shares lie on one polynomial of degree MinGroup-1.
//
// The polynomial is fixed by the first MinGroup shares in X order, and every
// remaining share is checked against it. With exactly MinGroup shares there
// is nothing to compare, so only the validation done by Unlock applies.
func (s *Scheme[E]) Verify(shares []*Share) error {
	points, err := s.points(shares, len(shares))
	if err != nil {
		return err
	}

	k := s.params.MinGroup
	base := points[:k]
	for _, extra := range points[k:] {
		expected, err := interpolate(s.field, base, extra.x)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}

		want, err := s.field.Integer(expected)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInconsistentShares, err)
		}
		got, err := s.field.Integer(extra.y)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		if want.Cmp(got) != 0 {
			x, _ := s.field.Integer(extra.x)
			return fmt.Errorf("%w: share x=%s is off the polynomial", ErrInconsistentShares, x)
		}
	}

	return nil
}
