package shamir

import "errors"

var (
	// ErrInvalidParameters is returned for a malformed (num_keyholders, min_group) pair.
	ErrInvalidParameters = errors.New("shamir: invalid scheme parameters")

	// ErrNoSecret is returned by GenerateKeys on a scheme built without a secret.
	ErrNoSecret = errors.New("shamir: scheme has no secret to share")

	// ErrSecretOutOfRange is returned when the secret cannot be represented in the field.
	ErrSecretOutOfRange = errors.New("shamir: secret out of range for the field")

	// ErrInsufficientShares is returned when fewer than min_group shares are supplied.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrDuplicateShareIndex is returned when two supplied shares have the same X.
	ErrDuplicateShareIndex = errors.New("shamir: duplicate share index")

	// ErrInvalidShare is returned for a nil share or a share whose coordinates
	// are missing or not valid field points.
	ErrInvalidShare = errors.New("shamir: invalid share")

	// ErrInconsistentShares is returned when shares do not lie on one polynomial.
	ErrInconsistentShares = errors.New("shamir: shares are inconsistent")

	// ErrInvalidShareEncoding is returned when a serialized share is malformed.
	ErrInvalidShareEncoding = errors.New("shamir: invalid share encoding")

	// ErrInvariantViolation signals a defect: a condition the validation
	// steps should have made impossible.
	ErrInvariantViolation = errors.New("shamir: internal invariant violated")

	// ErrUnknownSession is returned by a Collector for a closed or unknown session.
	ErrUnknownSession = errors.New("shamir: unknown collector session")

	// ErrInvalidConfig is returned when a scheme configuration cannot be used.
	ErrInvalidConfig = errors.New("shamir: invalid configuration")
)
