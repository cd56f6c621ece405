package utils

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// MaxVarBytes caps the length prefix accepted by ReadVarBytes.
const MaxVarBytes = 1 << 16

// ErrVarBytesLength is returned for a negative or oversized length prefix.
var ErrVarBytesLength = errors.New("invalid length prefix")

// ErrSignByte is returned for a sign prefix other than 0 or 1, or a
// negative zero.
var ErrSignByte = errors.New("invalid sign byte")

type readByte struct {
	in   io.Reader
	read int
}

func (s *readByte) ReadByte() (byte, error) {
	var data [1]byte
	if _, err := io.ReadFull(s.in, data[:]); err != nil {
		return 0, err
	}
	s.read++
	return data[0], nil
}

// ReadVarInt reads a signed varint and reports how many bytes it took.
func ReadVarInt(r io.Reader) (num int64, n int64, err error) {
	rb := &readByte{in: r}
	num, err = binary.ReadVarint(rb)
	return num, int64(rb.read), err
}

// ReadVarBytes reads a varint length prefix followed by that many bytes.
func ReadVarBytes(r io.Reader) (data []byte, varIntLen int, err error) {
	num, n, err := ReadVarInt(r)
	if err != nil {
		return nil, 0, err
	}
	if num < 0 || num > MaxVarBytes {
		return nil, int(n), fmt.Errorf("%w: %d", ErrVarBytesLength, num)
	}
	varIntLen = int(n)
	data = make([]byte, num)
	if _, err = io.ReadFull(r, data); err != nil {
		return nil, varIntLen, err
	}
	return data, varIntLen, nil
}

// WriteVarInt writes num as a signed varint.
func WriteVarInt(w io.Writer, num int64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], num)
	_, err := w.Write(buf[:n])
	return err
}

// WriteVarBytes writes a varint length prefix followed by data.
func WriteVarBytes(w io.Writer, data []byte) error {
	if len(data) > MaxVarBytes {
		return fmt.Errorf("%w: %d", ErrVarBytesLength, len(data))
	}
	if err := WriteVarInt(w, int64(len(data))); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}

// WriteBigInt frames the big-endian magnitude of a non-negative integer.
func WriteBigInt(w io.Writer, v *big.Int) error {
	if v.Sign() < 0 {
		return fmt.Errorf("cannot frame negative integer %s", v)
	}
	return WriteVarBytes(w, v.Bytes())
}

// ReadBigInt reads an integer written by WriteBigInt.
func ReadBigInt(r io.Reader) (*big.Int, error) {
	data, _, err := ReadVarBytes(r)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(data), nil
}

// WriteSignedBigInt frames v as a sign byte (1 for negative) followed by
// the framed magnitude.
func WriteSignedBigInt(w io.Writer, v *big.Int) error {
	var sign byte
	if v.Sign() < 0 {
		sign = 1
	}
	if _, err := w.Write([]byte{sign}); err != nil {
		return err
	}
	return WriteVarBytes(w, new(big.Int).Abs(v).Bytes())
}

// ReadSignedBigInt reads an integer written by WriteSignedBigInt.
func ReadSignedBigInt(r io.Reader) (*big.Int, error) {
	sign, err := (&readByte{in: r}).ReadByte()
	if err != nil {
		return nil, err
	}
	if sign > 1 {
		return nil, fmt.Errorf("%w: %d", ErrSignByte, sign)
	}
	v, err := ReadBigInt(r)
	if err != nil {
		return nil, err
	}
	if sign == 1 {
		if v.Sign() == 0 {
			return nil, fmt.Errorf("%w: negative zero", ErrSignByte)
		}
		v.Neg(v)
	}
	return v, nil
}
