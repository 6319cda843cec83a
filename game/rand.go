package game

import (
	"crypto/rand"
	"math/big"
)

// Rand is the randomness source used by the deciders. Injected so outcome
// selection is reproducible in tests.
type Rand interface {
	Intn(n int) int
}

type secureRand struct{}

// Intn returns a uniform random int in [0, n) using crypto/rand.
func (secureRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}

// Secure is the production randomness source.
var Secure Rand = secureRand{}
