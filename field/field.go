// Package field provides the arithmetic domains that secret sharing runs in.
//
// Two domains are available behind the same Field contract: Prime, which
// reduces every result modulo a prime, and Rational, which keeps exact
// fractions and only checks for integrality at the end.
package field

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

var (
	// ErrDivisionByZero is returned when dividing by the additive identity.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrNonIntegerResult is returned when a rational value has no integer representative.
	ErrNonIntegerResult = errors.New("field: result is not an integer")

	// ErrOutOfRange is returned when an integer cannot be represented in the field.
	ErrOutOfRange = errors.New("field: value out of range")

	// ErrUnknownField is returned when a registry lookup fails.
	ErrUnknownField = errors.New("field: unknown field")
)

// Field is the arithmetic contract used by polynomial evaluation and
// interpolation. Implementations must be safe for concurrent use and must
// never modify their arguments.
type Field[E any] interface {
	// Name identifies the field, e.g. "secp256k1" or "rational".
	Name() string
	Zero() E
	One() E
	// Element maps an integer into the field, rejecting values the field
	// cannot represent.
	Element(v *big.Int) (E, error)
	// Integer returns the canonical integer representative of e.
	Integer(e E) (*big.Int, error)
	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Div(a, b E) (E, error)
	// Random draws a uniformly distributed polynomial coefficient from r.
	Random(r io.Reader) (E, error)
}

// randInt returns a uniform value in [0, max) read from r.
//
// Bytes are consumed big-endian, the excess high bits of the first byte are
// masked off and values >= max are rejected and redrawn. The same byte
// stream therefore always yields the same sequence of values.
func randInt(r io.Reader, max *big.Int) (*big.Int, error) {
	if max.Sign() <= 0 {
		return nil, fmt.Errorf("%w: sampling bound must be positive", ErrOutOfRange)
	}

	n := new(big.Int).Sub(max, big.NewInt(1))
	bitLen := n.BitLen()
	if bitLen == 0 {
		return n, nil
	}

	k := (bitLen + 7) / 8
	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}

	buf := make([]byte, k)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("read random bytes: %w", err)
		}
		buf[0] &= uint8(int(1<<b) - 1)

		n.SetBytes(buf)
		if n.Cmp(max) < 0 {
			return n, nil
		}
	}
}
