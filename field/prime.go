package field

import (
	"fmt"
	"io"
	"math/big"
)

// Prime is the field of integers modulo a prime p. Elements are *big.Int
// values in [0, p).
type Prime struct {
	name string
	p    *big.Int
	half *big.Int
}

var _ Field[*big.Int] = (*Prime)(nil)

// NewPrime returns the field modulo p. The primality of p is checked with
// 20 Miller-Rabin rounds plus a Baillie-PSW test.
func NewPrime(name string, p *big.Int) (*Prime, error) {
	if p == nil || p.Cmp(big.NewInt(2)) < 0 || !p.ProbablyPrime(20) {
		return nil, fmt.Errorf("field %q: modulus is not a prime", name)
	}

	m := new(big.Int).Set(p)
	return &Prime{
		name: name,
		p:    m,
		half: new(big.Int).Rsh(new(big.Int).Sub(m, big.NewInt(1)), 1),
	}, nil
}

func (f *Prime) Name() string {
	return f.name
}

// Modulus returns a copy of p.
func (f *Prime) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

func (f *Prime) Zero() *big.Int {
	return new(big.Int)
}

func (f *Prime) One() *big.Int {
	return big.NewInt(1)
}

// Element accepts v only if it already lies in [0, p).
func (f *Prime) Element(v *big.Int) (*big.Int, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(f.p) >= 0 {
		return nil, fmt.Errorf("%w: %v not in [0, %s) for field %s", ErrOutOfRange, v, f.p, f.name)
	}
	return new(big.Int).Set(v), nil
}

func (f *Prime) Integer(e *big.Int) (*big.Int, error) {
	return f.reduce(new(big.Int).Set(e)), nil
}

// Centered maps a representative in [0, p) to the symmetric range
// [-(p-1)/2, (p-1)/2]: values above (p-1)/2 become v-p.
func (f *Prime) Centered(v *big.Int) *big.Int {
	res := f.reduce(new(big.Int).Set(v))
	if res.Cmp(f.half) > 0 {
		res.Sub(res, f.p)
	}
	return res
}

// Uncentered is the inverse of Centered. It rejects values outside the
// symmetric range.
func (f *Prime) Uncentered(v *big.Int) (*big.Int, error) {
	if v == nil || new(big.Int).Abs(v).Cmp(f.half) > 0 {
		return nil, fmt.Errorf("%w: %v not in [-%s, %s] for field %s", ErrOutOfRange, v, f.half, f.half, f.name)
	}
	return f.reduce(new(big.Int).Set(v)), nil
}

func (f *Prime) Add(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Add(a, b))
}

func (f *Prime) Sub(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Sub(a, b))
}

func (f *Prime) Mul(a, b *big.Int) *big.Int {
	return f.reduce(new(big.Int).Mul(a, b))
}

// Div computes a * b^-1 mod p.
func (f *Prime) Div(a, b *big.Int) (*big.Int, error) {
	inv := new(big.Int).ModInverse(f.reduce(new(big.Int).Set(b)), f.p)
	if inv == nil {
		return nil, ErrDivisionByZero
	}
	return f.Mul(a, inv), nil
}

// Random draws uniformly from [0, p).
func (f *Prime) Random(r io.Reader) (*big.Int, error) {
	return randInt(r, f.p)
}

// reduce maps res into [0, p) in place. Mod is Euclidean, so negative
// inputs land in range as well.
func (f *Prime) reduce(res *big.Int) *big.Int {
	return res.Mod(res, f.p)
}
