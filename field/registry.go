package field

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// DefaultPrime names the modulus used when none is configured: the order of
// the secp256k1 group, a 256-bit prime.
const DefaultPrime = "secp256k1"

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Prime)
)

// Register makes a prime field available by name. It panics if the name is
// already taken or p is not prime, so it belongs in init functions.
func Register(name string, p *big.Int) {
	f, err := NewPrime(name, p)
	if err != nil {
		panic(err)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[name]; ok {
		panic("field already registered: " + name)
	}
	registry[name] = f
}

// Lookup returns the registered prime field with the given name.
func Lookup(name string) (*Prime, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}

// Default returns the DefaultPrime field.
func Default() *Prime {
	f, err := Lookup(DefaultPrime)
	if err != nil {
		panic(err)
	}
	return f
}

// Names lists the registered fields in lexical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mersenne(exp uint) *big.Int {
	m := new(big.Int).Lsh(big.NewInt(1), exp)
	return m.Sub(m, big.NewInt(1))
}

func init() {
	Register("secp256k1", secp256k1.S256().Params().N)
	Register("p256", elliptic.P256().Params().N)
	Register("p384", elliptic.P384().Params().N)
	Register("p521", elliptic.P521().Params().N)
	Register("mersenne61", mersenne(61))
	Register("mersenne127", mersenne(127))
}
