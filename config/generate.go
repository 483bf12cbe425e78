package config

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/jonathanMweiss/secretrecon/internal/crypto/lagrange"
	"github.com/jonathanMweiss/secretrecon/internal/numeral"
)

var ErrNegativeShare = errors.New("config: share value is negative")

// CreateDocument writes the first n shares of p into a document with threshold p.Threshold().
// Share i is written in bases[i%len(bases)]; base 10 is used if bases is empty.
func CreateDocument(p *lagrange.Poly, n int, bases []int) (*Document, error) {
	if len(bases) == 0 {
		bases = []int{10}
	}

	doc := &Document{
		Metadata: Metadata{N: n, K: p.Threshold()},
		Shares:   make([]ShareRecord, n),
	}

	for i, shr := range p.CreateShares(n) {
		base := bases[i%len(bases)]
		if base < numeral.MinBase || base > numeral.MaxBase {
			return nil, fmt.Errorf("%w: %d", numeral.ErrInvalidBase, base)
		}

		y := shr.Y()
		if y.Sign() < 0 {
			return nil, fmt.Errorf("%w: share %s", ErrNegativeShare, shr.X())
		}

		doc.Shares[i] = ShareRecord{
			Index:  shr.X(),
			Base:   base,
			Digits: y.Text(base),
		}
	}

	return doc, nil
}

// GenerateDocument hides secret in a random polynomial of degree k-1 with non-negative coefficients
// of up to coefBits bits, and returns a document holding n of its shares.
func GenerateDocument(secret *big.Int, n, k int, coefBits uint, bases []int) (*Document, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", lagrange.ErrInvalidThreshold, k)
	}

	if n < k {
		return nil, fmt.Errorf("%w: cannot hand out %d shares with threshold %d", lagrange.ErrInsufficientShares, n, k)
	}

	if secret.Sign() < 0 {
		return nil, fmt.Errorf("%w: secret %s", ErrNegativeShare, secret)
	}

	p := lagrange.NewRandomPoly(secret, k-1, coefBits)
	for _, c := range p.Coefs[1:] {
		c.Abs(c)
	}

	return CreateDocument(p, n, bases)
}
