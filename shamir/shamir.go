// Package shamir implements Shamir's threshold secret sharing over an
// arbitrary field.Field.
//
// A secret is split into N shares so that any K of them reconstruct it
// exactly and fewer than K reveal nothing about it (in a prime field).
package shamir

import (
	"errors"
	"fmt"
	"math/big"
	"slices"

	"github.com/izouxv/gosss/field"
)

// Params are the scheme parameters.
type Params struct {
	// NumKeyholders is the number of shares to produce (N).
	NumKeyholders int `json:"num_keyholders" yaml:"num_keyholders"`
	// MinGroup is the reconstruction threshold (K).
	MinGroup int `json:"min_group" yaml:"min_group"`
}

// Validate checks 1 <= MinGroup <= NumKeyholders.
func (p Params) Validate() error {
	if p.NumKeyholders < 1 {
		return fmt.Errorf("%w: num_keyholders must be at least 1, got %d", ErrInvalidParameters, p.NumKeyholders)
	}
	if p.MinGroup < 1 {
		return fmt.Errorf("%w: min_group must be at least 1, got %d", ErrInvalidParameters, p.MinGroup)
	}
	if p.MinGroup > p.NumKeyholders {
		return fmt.Errorf("%w: min_group (%d) exceeds num_keyholders (%d)", ErrInvalidParameters, p.MinGroup, p.NumKeyholders)
	}
	return nil
}

// Dealer is the field-independent view of a Scheme.
type Dealer interface {
	Params() Params
	FieldName() string
	GenerateKeys() ([]*Share, error)
	Unlock(shares []*Share) (*big.Int, error)
	Verify(shares []*Share) error
}

var (
	_ Dealer = (*Scheme[*big.Int])(nil)
	_ Dealer = (*Scheme[*big.Rat])(nil)
)

// Scheme splits one secret and reconstructs it. It is immutable after New
// and safe for concurrent use, provided the configured random source is.
type Scheme[E any] struct {
	field     field.Field[E]
	params    Params
	secret    E
	hasSecret bool
	opts      options
}

// New builds a scheme for secret over f. A nil secret yields a scheme that
// can only Unlock and Verify.
func New[E any](f field.Field[E], secret *big.Int, numKeyholders, minGroup int, opts ...Option) (*Scheme[E], error) {
	s := &Scheme[E]{
		field:  f,
		params: Params{NumKeyholders: numKeyholders, MinGroup: minGroup},
		opts:   newOptions(opts),
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	if s.opts.signed {
		if _, ok := any(f).(*field.Prime); !ok {
			return nil, fmt.Errorf("%w: signed secrets need a prime field, got %s", ErrInvalidParameters, f.Name())
		}
	}

	if secret != nil {
		e, err := s.element(secret)
		if err != nil {
			return nil, err
		}
		s.secret = e
		s.hasSecret = true
	}

	return s, nil
}

// Params returns the scheme parameters.
func (s *Scheme[E]) Params() Params {
	return s.params
}

// FieldName names the field the scheme computes in.
func (s *Scheme[E]) FieldName() string {
	return s.field.Name()
}

// GenerateKeys draws MinGroup-1 random coefficients and returns the shares
// (x, f(x)) for x = 1..NumKeyholders, in ascending x order.
func (s *Scheme[E]) GenerateKeys() ([]*Share, error) {
	// Parameters are checked before any randomness is consumed.
	if err := s.validate(); err != nil {
		return nil, err
	}
	if !s.hasSecret {
		return nil, ErrNoSecret
	}

	r := s.opts.reader()

	// f(x) = secret + c_1*x + ... + c_{k-1}*x^{k-1}
	coeffs := make([]E, s.params.MinGroup)
	coeffs[0] = s.secret
	for i := 1; i < len(coeffs); i++ {
		c, err := s.field.Random(r)
		if err != nil {
			return nil, fmt.Errorf("draw coefficient: %w", err)
		}
		coeffs[i] = c
	}

	shares := make([]*Share, s.params.NumKeyholders)
	for i := range shares {
		x := big.NewInt(int64(i + 1))
		xe, err := s.field.Element(x)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}

		y, err := s.field.Integer(evaluate(s.field, coeffs, xe))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		shares[i] = &Share{X: x, Y: y}
	}

	s.opts.logger.Debug("generated shares",
		"field", s.field.Name(),
		"num_keyholders", s.params.NumKeyholders,
		"min_group", s.params.MinGroup,
	)

	return shares, nil
}

// Unlock reconstructs the secret by Lagrange interpolation at x = 0.
//
// At least MinGroup shares are required, every one of them complete with a
// positive X, and their X values must be distinct. The shares are sorted by X
// and the first MinGroup are used, so the result does not depend on the order
// they are supplied in; any further shares are ignored, including whether
// their values fit the field. Use Verify to check them.
func (s *Scheme[E]) Unlock(shares []*Share) (*big.Int, error) {
	points, err := s.points(shares, s.params.MinGroup)
	if err != nil {
		return nil, err
	}

	v, err := interpolate(s.field, points, s.field.Zero())
	if err != nil {
		if errors.Is(err, field.ErrDivisionByZero) {
			return nil, fmt.Errorf("%w: %w", ErrInvariantViolation, err)
		}
		return nil, err
	}

	secret, err := s.field.Integer(v)
	if err != nil {
		return nil, err
	}

	if s.opts.signed {
		secret = any(s.field).(*field.Prime).Centered(secret)
	}

	s.opts.logger.Debug("unlocked secret",
		"field", s.field.Name(),
		"min_group", s.params.MinGroup,
		"supplied", len(shares),
	)

	return secret, nil
}

// points validates shares, sorts them by X and maps the first n into the
// field.
func (s *Scheme[E]) points(shares []*Share, n int) ([]point[E], error) {
	if len(shares) < s.params.MinGroup {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrInsufficientShares, len(shares), s.params.MinGroup)
	}

	sorted := make([]*Share, len(shares))
	for i, share := range shares {
		if share == nil || share.X == nil || share.Y == nil {
			return nil, fmt.Errorf("%w: share %d is incomplete", ErrInvalidShare, i)
		}
		if share.X.Sign() <= 0 {
			return nil, fmt.Errorf("%w: share %d has non-positive x %s", ErrInvalidShare, i, share.X)
		}
		sorted[i] = share
	}

	slices.SortFunc(sorted, func(a, b *Share) int {
		return a.X.Cmp(b.X)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].X.Cmp(sorted[i-1].X) == 0 {
			return nil, fmt.Errorf("%w: x=%s", ErrDuplicateShareIndex, sorted[i].X)
		}
	}

	points := make([]point[E], n)
	for i, share := range sorted[:n] {
		x, err := s.field.Element(share.X)
		if err != nil {
			return nil, fmt.Errorf("%w: x=%s: %w", ErrInvalidShare, share.X, err)
		}
		y, err := s.field.Element(share.Y)
		if err != nil {
			return nil, fmt.Errorf("%w: x=%s: %w", ErrInvalidShare, share.X, err)
		}
		points[i] = point[E]{x: x, y: y}
	}

	return points, nil
}

func (s *Scheme[E]) validate() error {
	if err := s.params.Validate(); err != nil {
		return err
	}

	// Every x in 1..N must be a distinct non-zero field element.
	if p, ok := any(s.field).(*field.Prime); ok {
		if big.NewInt(int64(s.params.NumKeyholders)).Cmp(p.Modulus()) >= 0 {
			return fmt.Errorf("%w: num_keyholders (%d) must be below the modulus of %s",
				ErrInvalidParameters, s.params.NumKeyholders, p.Name())
		}
	}
	return nil
}

func (s *Scheme[E]) element(secret *big.Int) (E, error) {
	v := secret
	if s.opts.signed {
		u, err := any(s.field).(*field.Prime).Uncentered(secret)
		if err != nil {
			var zero E
			return zero, fmt.Errorf("%w: %w", ErrSecretOutOfRange, err)
		}
		v = u
	}

	e, err := s.field.Element(v)
	if err != nil {
		return e, fmt.Errorf("%w: %w", ErrSecretOutOfRange, err)
	}
	return e, nil
}

// Generate splits secret into numKeyholders shares over a prime field, any
// minGroup of which reconstruct it. The field is field.Default unless
// WithPrime is given.
func Generate(secret *big.Int, numKeyholders, minGroup int, opts ...Option) ([]*Share, error) {
	if secret == nil {
		return nil, ErrNoSecret
	}

	o := newOptions(opts)
	s, err := New[*big.Int](o.prime, secret, numKeyholders, minGroup, opts...)
	if err != nil {
		return nil, err
	}
	return s.GenerateKeys()
}

// Reconstruct recovers a secret produced by Generate with the same field
// options from at least minGroup shares.
func Reconstruct(shares []*Share, minGroup int, opts ...Option) (*big.Int, error) {
	o := newOptions(opts)
	s, err := New[*big.Int](o.prime, nil, minGroup, minGroup, opts...)
	if err != nil {
		return nil, err
	}
	return s.Unlock(shares)
}
