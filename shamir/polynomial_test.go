package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izouxv/gosss/field"
)

func TestEvaluate(t *testing.T) {
	f := smallPrime(t, 101)

	// f(x) = 12 + 4x + 7x^2
	coeffs := []*big.Int{big.NewInt(12), big.NewInt(4), big.NewInt(7)}

	tests := []struct {
		x, want int64
	}{
		{0, 12},
		{1, 23},
		{2, 48},
		{3, 87},
		{4, 39}, // 140 mod 101
		{6, 86}, // 288 mod 101
	}

	for _, tt := range tests {
		got := evaluate[*big.Int](f, coeffs, big.NewInt(tt.x))
		assert.Equal(t, tt.want, got.Int64(), "f(%d)", tt.x)
	}

	constant := evaluate[*big.Int](f, coeffs[:1], big.NewInt(5))
	assert.Equal(t, int64(12), constant.Int64())
}

func TestInterpolate(t *testing.T) {
	f := field.NewRational(0)

	points := []point[*big.Rat]{
		{x: big.NewRat(1, 1), y: big.NewRat(23, 1)},
		{x: big.NewRat(2, 1), y: big.NewRat(48, 1)},
		{x: big.NewRat(4, 1), y: big.NewRat(140, 1)},
	}

	t.Run("at zero", func(t *testing.T) {
		v, err := interpolate[*big.Rat](f, points, f.Zero())
		require.NoError(t, err)
		assert.Equal(t, "12", v.RatString())
	})

	t.Run("at unseen point", func(t *testing.T) {
		v, err := interpolate[*big.Rat](f, points, big.NewRat(6, 1))
		require.NoError(t, err)
		assert.Equal(t, "288", v.RatString())
	})

	t.Run("at fraction", func(t *testing.T) {
		// f(1/2) = 12 + 2 + 7/4
		v, err := interpolate[*big.Rat](f, points, big.NewRat(1, 2))
		require.NoError(t, err)
		assert.Equal(t, "63/4", v.RatString())
	})

	t.Run("repeated x", func(t *testing.T) {
		bad := []point[*big.Rat]{points[0], points[0]}
		_, err := interpolate[*big.Rat](f, bad, f.Zero())
		assert.ErrorIs(t, err, field.ErrDivisionByZero)
	})
}

func TestInterpolatePrimeMatchesEvaluate(t *testing.T) {
	f := mustPrime(t, "mersenne127")

	coeffs := []*big.Int{big.NewInt(5), big.NewInt(1 << 40), big.NewInt(3), big.NewInt(1 << 62)}

	points := make([]point[*big.Int], len(coeffs))
	for i := range points {
		x := big.NewInt(int64(i + 10))
		points[i] = point[*big.Int]{x: x, y: evaluate[*big.Int](f, coeffs, x)}
	}

	for _, at := range []int64{0, 1, 2, 99} {
		x := big.NewInt(at)
		got, err := interpolate[*big.Int](f, points, x)
		require.NoError(t, err)
		assert.Equal(t, 0, evaluate[*big.Int](f, coeffs, x).Cmp(got), "x=%d", at)
	}
}
