package shamir

import (
	"crypto/rand"
	"io"
	"log/slog"

	"github.com/izouxv/gosss/field"
	"github.com/izouxv/gosss/utils"
)

type options struct {
	rand   io.Reader
	seed   *int64
	logger *slog.Logger
	signed bool
	prime  *field.Prime
}

// Option configures a Scheme or the package-level helpers.
type Option func(*options)

// WithRand draws polynomial coefficients from r. The reader must be safe for
// concurrent use if GenerateKeys is called concurrently.
func WithRand(r io.Reader) Option {
	return func(o *options) {
		o.rand = r
		o.seed = nil
	}
}

// WithSeed makes GenerateKeys deterministic: every call draws its
// coefficients from a fresh stream derived from seed. Intended for tests and
// reproducible examples only.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
		o.rand = nil
	}
}

// WithLogger sets the logger. Secrets, coefficients and share values are
// never logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSigned treats secrets as signed integers in [-(p-1)/2, (p-1)/2]. It
// requires a prime field.
func WithSigned() Option {
	return func(o *options) {
		o.signed = true
	}
}

// WithPrime selects the prime field used by Generate and Reconstruct.
func WithPrime(f *field.Prime) Option {
	return func(o *options) {
		o.prime = f
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	if o.prime == nil {
		o.prime = field.Default()
	}
	return o
}

// reader returns the coefficient source for one GenerateKeys call.
func (o *options) reader() io.Reader {
	switch {
	case o.seed != nil:
		return utils.NewSeededReader(*o.seed)
	case o.rand != nil:
		return o.rand
	default:
		return rand.Reader
	}
}
