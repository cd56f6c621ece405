package shamir

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"

	"github.com/izouxv/gosss/utils"
)

// Share is one point (X, Y) on the secret polynomial, held by one keyholder.
type Share struct {
	// X identifies the keyholder, 1..N.
	X *big.Int
	// Y is the polynomial evaluated at X.
	Y *big.Int
}

const shareVersion = 1

// String renders the share as "(x, y)" in decimal.
func (s *Share) String() string {
	return fmt.Sprintf("(%s, %s)", s.X, s.Y)
}

// Clone creates a deep copy of the share.
func (s *Share) Clone() *Share {
	return &Share{
		X: new(big.Int).Set(s.X),
		Y: new(big.Int).Set(s.Y),
	}
}

// Equal checks if two shares are equal.
func (s *Share) Equal(other *Share) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.X.Cmp(other.X) == 0 && s.Y.Cmp(other.Y) == 0
}

func (s *Share) check() error {
	if s.X == nil || s.Y == nil {
		return fmt.Errorf("%w: missing coordinate", ErrInvalidShareEncoding)
	}
	if s.X.Sign() <= 0 {
		return fmt.Errorf("%w: x must be positive, got %s", ErrInvalidShareEncoding, s.X)
	}
	return nil
}

// MarshalBinary encodes the share as version(1) | varbytes(x) | sign(1) | varbytes(|y|).
// Y is signed because exact rational shares may be negative.
func (s *Share) MarshalBinary() ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	buf := bytes.NewBuffer([]byte{shareVersion})
	if err := utils.WriteBigInt(buf, s.X); err != nil {
		return nil, err
	}
	if err := utils.WriteSignedBigInt(buf, s.Y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a share written by MarshalBinary.
func (s *Share) UnmarshalBinary(data []byte) error {
	if len(data) == 0 || data[0] != shareVersion {
		return fmt.Errorf("%w: unsupported version", ErrInvalidShareEncoding)
	}

	buf := bytes.NewBuffer(data[1:])
	x, err := utils.ReadBigInt(buf)
	if err != nil {
		return fmt.Errorf("%w: failed to read x: %w", ErrInvalidShareEncoding, err)
	}
	y, err := utils.ReadSignedBigInt(buf)
	if err != nil {
		return fmt.Errorf("%w: failed to read y: %w", ErrInvalidShareEncoding, err)
	}
	if buf.Len() != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidShareEncoding, buf.Len())
	}

	decoded := Share{X: x, Y: y}
	if err := decoded.check(); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// MarshalText encodes the share as "0x<x>:0x<y>", both big-endian hex. A
// negative y is written as "-0x<|y|>".
func (s *Share) MarshalText() ([]byte, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	y := hexutil.Encode(new(big.Int).Abs(s.Y).Bytes())
	if s.Y.Sign() < 0 {
		y = "-" + y
	}
	return []byte(hexutil.Encode(s.X.Bytes()) + ":" + y), nil
}

// UnmarshalText decodes a share written by MarshalText.
func (s *Share) UnmarshalText(text []byte) error {
	xs, ys, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("%w: missing separator", ErrInvalidShareEncoding)
	}

	xb, err := hexutil.Decode(xs)
	if err != nil {
		return fmt.Errorf("%w: x: %w", ErrInvalidShareEncoding, err)
	}
	ys, negative := strings.CutPrefix(ys, "-")
	yb, err := hexutil.Decode(ys)
	if err != nil {
		return fmt.Errorf("%w: y: %w", ErrInvalidShareEncoding, err)
	}
	y := new(big.Int).SetBytes(yb)
	if negative {
		if y.Sign() == 0 {
			return fmt.Errorf("%w: y: negative zero", ErrInvalidShareEncoding)
		}
		y.Neg(y)
	}

	decoded := Share{X: new(big.Int).SetBytes(xb), Y: y}
	if err := decoded.check(); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// rlpShare is the RLP layout of a share. RLP integers are unsigned, so Y
// holds the magnitude and Negative its sign. Negative is omitted when false.
type rlpShare struct {
	X        *big.Int
	Y        *big.Int
	Negative bool `rlp:"optional"`
}

// EncodeShares encodes a list of shares as an RLP list of [x, |y|] pairs,
// with a trailing sign flag on negative shares.
func EncodeShares(shares []*Share) ([]byte, error) {
	list := make([]rlpShare, len(shares))
	for i, share := range shares {
		if share == nil {
			return nil, fmt.Errorf("%w: share %d is nil", ErrInvalidShareEncoding, i)
		}
		if err := share.check(); err != nil {
			return nil, err
		}
		list[i] = rlpShare{X: share.X, Y: new(big.Int).Abs(share.Y), Negative: share.Y.Sign() < 0}
	}
	return rlp.EncodeToBytes(list)
}

// DecodeShares decodes a list written by EncodeShares.
func DecodeShares(data []byte) ([]*Share, error) {
	var list []rlpShare
	if err := rlp.DecodeBytes(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidShareEncoding, err)
	}

	shares := make([]*Share, len(list))
	for i, item := range list {
		share := &Share{X: item.X, Y: item.Y}
		if item.Negative {
			if item.Y == nil || item.Y.Sign() == 0 {
				return nil, fmt.Errorf("%w: share %d: negative zero", ErrInvalidShareEncoding, i)
			}
			share.Y = new(big.Int).Neg(item.Y)
		}
		if err := share.check(); err != nil {
			return nil, err
		}
		shares[i] = share
	}
	return shares, nil
}
