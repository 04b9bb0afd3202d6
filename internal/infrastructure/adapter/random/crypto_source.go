package random

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Resolution is the number of equal steps a draw is divided into
const Resolution = 1_000_000_000

// resolutionExp is log10(Resolution)
const resolutionExp = 9

// CryptoSource draws uniformly distributed decimals from crypto/rand
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource creates a random source backed by the operating system CSPRNG
func NewCryptoSource() core.RandomSource {
	return &CryptoSource{reader: rand.Reader}
}

// NewCryptoSourceFromReader creates a random source reading entropy from r
func NewCryptoSourceFromReader(r io.Reader) *CryptoSource {
	return &CryptoSource{reader: r}
}

// Unit returns n/Resolution for n uniform in [0, Resolution), i.e. a value in [0, 1)
func (s *CryptoSource) Unit() decimal.Decimal {
	n := s.draw(Resolution)
	return decimal.New(n, -resolutionExp)
}

// Uniform returns min + (max-min)*n/Resolution for n uniform in [0, Resolution].
// Both endpoints are reachable.
func (s *CryptoSource) Uniform(min, max decimal.Decimal) decimal.Decimal {
	if !max.GreaterThan(min) {
		return min
	}
	n := s.draw(Resolution + 1)
	fraction := decimal.New(n, -resolutionExp)
	return min.Add(max.Sub(min).Mul(fraction))
}

// draw returns an integer uniform in [0, limit). It panics if the entropy
// source fails since no outcome can be produced without it.
func (s *CryptoSource) draw(limit int64) int64 {
	v, err := rand.Int(s.reader, big.NewInt(limit))
	if err != nil {
		panic("random: entropy source failed: " + err.Error())
	}
	return v.Int64()
}
