package shamir

import (
	"github.com/izouxv/gosss/field"
)

// point is a share mapped into the field.
type point[E any] struct {
	x, y E
}

// evaluate computes the polynomial with the given coefficients at x using
// Horner's method. coeffs[0] is the constant term.
func evaluate[E any](f field.Field[E], coeffs []E, x E) E {
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = f.Add(f.Mul(result, x), coeffs[i])
	}
	return result
}

// interpolate evaluates at `at` the unique polynomial of degree
// len(points)-1 through points. The x values must be pairwise distinct.
func interpolate[E any](f field.Field[E], points []point[E], at E) (E, error) {
	result := f.Zero()

	for i := range points {
		// L_i(at) = prod_{j != i} (at - x_j) / (x_i - x_j)
		numerator := f.One()
		denominator := f.One()

		for j := range points {
			if i == j {
				continue
			}
			numerator = f.Mul(numerator, f.Sub(at, points[j].x))
			denominator = f.Mul(denominator, f.Sub(points[i].x, points[j].x))
		}

		basis, err := f.Div(numerator, denominator)
		if err != nil {
			var zero E
			return zero, err
		}

		result = f.Add(result, f.Mul(points[i].y, basis))
	}

	return result, nil
}
