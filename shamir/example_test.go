package shamir_test

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/izouxv/gosss/field"
	"github.com/izouxv/gosss/shamir"
)

func Example() {
	secret := big.NewInt(12)

	shares, err := shamir.Generate(secret, 6, 3)
	if err != nil {
		panic(err)
	}

	// Any three keyholders can recover the secret.
	recovered, err := shamir.Reconstruct([]*shamir.Share{shares[5], shares[1], shares[3]}, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(recovered)

	// Two cannot.
	_, err = shamir.Reconstruct(shares[:2], 3)
	fmt.Println(err)
	// Output:
	// 12
	// shamir: insufficient shares for reconstruction: got 2, need 3
}

func ExampleNew_rational() {
	// Coefficients 4 and 7 give f(x) = 12 + 4x + 7x^2.
	s, err := shamir.New[*big.Rat](field.NewRational(100), big.NewInt(12), 6, 3,
		shamir.WithRand(bytes.NewReader([]byte{4, 7})))
	if err != nil {
		panic(err)
	}

	shares, err := s.GenerateKeys()
	if err != nil {
		panic(err)
	}
	fmt.Println(shares)

	secret, err := s.Unlock(shares[:3])
	if err != nil {
		panic(err)
	}
	fmt.Println(secret)
	// Output:
	// [(1, 23) (2, 48) (3, 87) (4, 140) (5, 207) (6, 288)]
	// 12
}

func ExampleShare_MarshalText() {
	share := &shamir.Share{X: big.NewInt(1), Y: big.NewInt(23)}

	text, err := share.MarshalText()
	if err != nil {
		panic(err)
	}
	fmt.Println(string(text))
	// Output: 0x01:0x17
}
