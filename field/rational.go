package field

import (
	"fmt"
	"io"
	"math/big"
)

// DefaultCoefficientCeiling bounds the random coefficients drawn by a
// Rational field when no ceiling is given.
const DefaultCoefficientCeiling = 100

// Rational is exact arithmetic over the rationals. Shares built on it are
// plain integers and therefore leak information about the secret: coefficients
// are bounded by the ceiling and the field is infinite, so it is not a
// cryptographic construction. Use Prime for anything beyond demonstration.
type Rational struct {
	ceiling *big.Int
}

var _ Field[*big.Rat] = (*Rational)(nil)

// NewRational returns a rational field drawing coefficients from
// [0, ceiling). A ceiling below 1 selects DefaultCoefficientCeiling.
func NewRational(ceiling int64) *Rational {
	if ceiling < 1 {
		ceiling = DefaultCoefficientCeiling
	}
	return &Rational{ceiling: big.NewInt(ceiling)}
}

func (f *Rational) Name() string {
	return "rational"
}

// Ceiling returns the exclusive upper bound for random coefficients.
func (f *Rational) Ceiling() *big.Int {
	return new(big.Int).Set(f.ceiling)
}

func (f *Rational) Zero() *big.Rat {
	return new(big.Rat)
}

func (f *Rational) One() *big.Rat {
	return big.NewRat(1, 1)
}

// Element accepts any integer, negative values included.
func (f *Rational) Element(v *big.Int) (*big.Rat, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: missing value", ErrOutOfRange)
	}
	return new(big.Rat).SetInt(v), nil
}

// Integer fails with ErrNonIntegerResult unless e is a whole number. The
// value is never rounded.
func (f *Rational) Integer(e *big.Rat) (*big.Int, error) {
	if !e.IsInt() {
		return nil, fmt.Errorf("%w: %s", ErrNonIntegerResult, e.RatString())
	}
	return new(big.Int).Set(e.Num()), nil
}

func (f *Rational) Add(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Add(a, b)
}

func (f *Rational) Sub(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Sub(a, b)
}

func (f *Rational) Mul(a, b *big.Rat) *big.Rat {
	return new(big.Rat).Mul(a, b)
}

func (f *Rational) Div(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Quo(a, b), nil
}

// Random draws an integer coefficient uniformly from [0, ceiling).
func (f *Rational) Random(r io.Reader) (*big.Rat, error) {
	n, err := randInt(r, f.ceiling)
	if err != nil {
		return nil, err
	}
	return new(big.Rat).SetInt(n), nil
}
