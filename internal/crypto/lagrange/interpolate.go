package lagrange

import (
	"fmt"
	"io"
	"math/big"
	"sort"
)

// SelectInterpolationSet returns the k points with the lowest x coordinates, in ascending x order.
// Any k points of a consistent share set yield the same secret; picking the lowest ones keeps the
// result reproducible.
func SelectInterpolationSet(points []Point, k int) ([]Point, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, k)
	}

	if len(points) < k {
		return nil, fmt.Errorf("%w: need %d, got %d", ErrInsufficientShares, k, len(points))
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].x.Cmp(sorted[j].x) < 0
	})

	return sorted[:k:k], nil
}

// InterpolateAtZero returns P(0) for the unique polynomial P of degree < len(points) passing
// through points:
//
//	P(0) = Σ_i y_i · Π_{j≠i} (0 - x_j) / (x_i - x_j)
//
// Every term is kept as an exact fraction and the division is only resolved on the final sum,
// since single terms need not be integers even when P(0) is.
func InterpolateAtZero(points []Point) (*big.Int, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	if err := checkDistinct(points); err != nil {
		return nil, err
	}

	nom := &big.Int{}
	denom := &big.Int{}
	tmp := &big.Int{} // created once, reused throughout the loops.

	term := &big.Rat{}
	acc := &big.Rat{}

	for i, pi := range points {
		nom.Set(pi.y)
		denom.SetInt64(1)

		for j, pj := range points {
			if i == j {
				continue
			}

			tmp.Neg(pj.x)
			nom.Mul(nom, tmp)

			tmp.Sub(pi.x, pj.x)
			denom.Mul(denom, tmp)
		}

		term.SetFrac(nom, denom)
		acc.Add(acc, term)
	}

	if !acc.IsInt() {
		return nil, fmt.Errorf("%w: got %s", ErrNonIntegralSecret, acc.RatString())
	}

	return new(big.Int).Set(acc.Num()), nil
}

func checkDistinct(points []Point) error {
	seen := make(map[string]int, len(points))
	for i, p := range points {
		key := p.x.String()
		if j, ok := seen[key]; ok {
			return fmt.Errorf("%w: points %d and %d share x=%s", ErrInterpolationDegenerate, j, i, key)
		}

		seen[key] = i
	}

	return nil
}

// Reconstruct selects the lowest-x interpolation set of size k and interpolates it at zero.
func Reconstruct(points []Point, k int) (*big.Int, error) {
	set, err := SelectInterpolationSet(points, k)
	if err != nil {
		return nil, err
	}

	return InterpolateAtZero(set)
}

// VerifyConsistency reconstructs the secret from the lowest-x set, then from rounds random k-subsets
// drawn from rnd, and fails with ErrInconsistentShares if any of them disagree.
func VerifyConsistency(points []Point, k, rounds int, rnd io.Reader) (*big.Int, error) {
	secret, err := Reconstruct(points, k)
	if err != nil {
		return nil, err
	}

	shf := NewShuffler(rnd)
	for r := 0; r < rounds; r++ {
		subset, err := shf.Subset(points, k)
		if err != nil {
			return nil, err
		}

		other, err := InterpolateAtZero(subset)
		if err != nil {
			return nil, fmt.Errorf("%w: subset %v: %v", ErrInconsistentShares, xsOf(subset), err)
		}

		if other.Cmp(secret) != 0 {
			return nil, fmt.Errorf("%w: subset %v gives %s, lowest subset gives %s",
				ErrInconsistentShares, xsOf(subset), other, secret)
		}
	}

	return secret, nil
}

func xsOf(points []Point) []string {
	xs := make([]string, len(points))
	for i, p := range points {
		xs[i] = p.x.String()
	}

	return xs
}
