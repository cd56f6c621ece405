package shamir

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izouxv/gosss/field"
)

func TestParseConfig(t *testing.T) {
	t.Run("prime", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("field: mersenne127\nnum_keyholders: 6\nmin_group: 3\n"))
		require.NoError(t, err)
		assert.Equal(t, "mersenne127", cfg.Field)
		assert.Equal(t, Params{NumKeyholders: 6, MinGroup: 3}, cfg.Params)
		assert.False(t, cfg.Signed)
	})

	t.Run("default field", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("num_keyholders: 2\nmin_group: 2\n"))
		require.NoError(t, err)
		assert.Equal(t, field.DefaultPrime, cfg.Field)
	})

	t.Run("rational", func(t *testing.T) {
		cfg, err := ParseConfig([]byte("field: rational\nnum_keyholders: 6\nmin_group: 3\ncoefficient_ceiling: 50\n"))
		require.NoError(t, err)
		assert.Equal(t, int64(50), cfg.CoefficientCeiling)
	})

	tests := map[string]string{
		"malformed yaml":    "field: [",
		"bad params":        "num_keyholders: 2\nmin_group: 3\n",
		"unknown field":     "field: nope\nnum_keyholders: 2\nmin_group: 2\n",
		"signed rational":   "field: rational\nsigned: true\nnum_keyholders: 2\nmin_group: 2\n",
		"ceiling on prime":  "coefficient_ceiling: 10\nnum_keyholders: 2\nmin_group: 2\n",
		"negative ceiling":  "field: rational\ncoefficient_ceiling: -1\nnum_keyholders: 2\nmin_group: 2\n",
		"missing min_group": "num_keyholders: 2\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: p256\nnum_keyholders: 5\nmin_group: 2\nsigned: true\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "p256", cfg.Field)
	assert.True(t, cfg.Signed)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		secret int64
	}{
		{"default prime", Config{Params: Params{NumKeyholders: 5, MinGroup: 3}}, 1234},
		{"named prime", Config{Field: "mersenne61", Params: Params{NumKeyholders: 4, MinGroup: 4}}, 99},
		{"signed", Config{Field: "p256", Params: Params{NumKeyholders: 3, MinGroup: 2}, Signed: true}, -42},
		{"rational", Config{Field: RationalField, Params: Params{NumKeyholders: 6, MinGroup: 3}, CoefficientCeiling: 10}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			dealer, err := NewFromConfig(&cfg, big.NewInt(tt.secret), WithSeed(1))
			require.NoError(t, err)
			assert.Equal(t, cfg.Field, dealer.FieldName())
			assert.Equal(t, tt.cfg.Params, dealer.Params())

			shares, err := dealer.GenerateKeys()
			require.NoError(t, err)

			// A reconstruction-only dealer from the same config recovers it.
			unlocker, err := NewFromConfig(&cfg, nil)
			require.NoError(t, err)
			got, err := unlocker.Unlock(shares[len(shares)-cfg.MinGroup:])
			require.NoError(t, err)
			assert.Equal(t, tt.secret, got.Int64())
		})
	}

	t.Run("invalid", func(t *testing.T) {
		dealer, err := NewFromConfig(&Config{Field: "nope", Params: Params{NumKeyholders: 1, MinGroup: 1}}, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, dealer)

		dealer, err = NewFromConfig(&Config{Params: Params{NumKeyholders: 3, MinGroup: 2}}, big.NewInt(-1))
		assert.ErrorIs(t, err, ErrSecretOutOfRange)
		assert.Nil(t, dealer)
	})
}
