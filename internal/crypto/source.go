package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

const (
	SourceCrypto = "crypto"
	SourceMath   = "math"
)

var ErrUnknownSource = errors.New("unknown random source")

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand. The zero value is ready to use.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// MathSource draws from a PCG generator. It is reproducible for a fixed seed
// and not suitable for security-sensitive use.
type MathSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewMathSource returns a MathSource seeded with seed. A zero seed picks a
// non-reproducible seed from the runtime generator.
func NewMathSource(seed uint64) *MathSource {
	hi, lo := seed, seed^0x9e3779b97f4a7c15
	if seed == 0 {
		hi, lo = mrand.Uint64(), mrand.Uint64()
	}
	return &MathSource{rng: mrand.New(mrand.NewPCG(hi, lo))}
}

func (s *MathSource) Intn(n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n), nil
}

// NewSource builds the source named by kind.
func NewSource(kind string, seed uint64) (Source, error) {
	switch kind {
	case SourceCrypto, "":
		return CryptoSource{}, nil
	case SourceMath:
		return NewMathSource(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, kind)
	}
}
