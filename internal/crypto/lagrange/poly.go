package lagrange

import (
	"crypto/rand"
	"math/big"
)

// Poly is a polynomial with integer coefficients. Coefs[0] is the secret.
type Poly struct {
	Coefs []*big.Int
}

// NewPoly returns the polynomial coefs[0] + coefs[1]x + coefs[2]x^2 + ...
func NewPoly(coefs ...*big.Int) *Poly {
	p := &Poly{Coefs: make([]*big.Int, len(coefs))}
	for i, c := range coefs {
		p.Coefs[i] = new(big.Int).Set(c)
	}

	return p
}

// NewRandomPoly returns a polynomial of the given degree hiding secret. The remaining coefficients
// are drawn uniformly from (-2^coefBits, 2^coefBits).
func NewRandomPoly(secret *big.Int, degree int, coefBits uint) *Poly {
	bound := new(big.Int).Lsh(big.NewInt(1), coefBits)

	coefs := make([]*big.Int, degree+1)
	coefs[0] = new(big.Int).Set(secret)

	for i := 1; i < len(coefs); i++ {
		ai, err := rand.Int(rand.Reader, bound)
		if err != nil {
			panic(err)
		}

		sign, err := rand.Int(rand.Reader, big.NewInt(2))
		if err != nil {
			panic(err)
		}

		if sign.Sign() == 1 {
			ai.Neg(ai)
		}

		coefs[i] = ai
	}

	return &Poly{Coefs: coefs}
}

// Degree states the degree of the polynomial.
func (p *Poly) Degree() int {
	return len(p.Coefs) - 1
}

// Threshold states the minimum number of shares required to reconstruct the secret.
func (p *Poly) Threshold() int {
	return len(p.Coefs)
}

// Secret returns P(0).
func (p *Poly) Secret() *big.Int {
	return new(big.Int).Set(p.Coefs[0])
}

// Eval evaluates P(x).
func (p *Poly) Eval(x *big.Int) *big.Int {
	v := new(big.Int)
	for j := len(p.Coefs) - 1; j >= 0; j-- {
		v.Mul(v, x)
		v.Add(v, p.Coefs[j])
	}

	return v
}

// CreateShares returns the points P(1), ..., P(n).
func (p *Poly) CreateShares(n int) []Point {
	shrs := make([]Point, n)
	for j := 1; j < n+1; j++ {
		x := big.NewInt(int64(j))
		shrs[j-1] = Point{
			x: x,
			y: p.Eval(x),
		}
	}

	return shrs
}

// CreateSharesAt returns the points (x, P(x)) for every given x.
func (p *Poly) CreateSharesAt(xs ...*big.Int) []Point {
	shrs := make([]Point, len(xs))
	for i, x := range xs {
		shrs[i] = Point{
			x: new(big.Int).Set(x),
			y: p.Eval(x),
		}
	}

	return shrs
}
