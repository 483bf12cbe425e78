package lagrange

import (
	"encoding/binary"
	"io"
	"math"
)

// Shuffler draws random permutations of point sets, using rand as the source of randomness.
type Shuffler struct {
	rand io.Reader
}

func NewShuffler(rand io.Reader) *Shuffler {
	if rand == nil {
		panic("rand cannot be nil")
	}

	return &Shuffler{rand: rand}
}

// Subset returns k points of in chosen uniformly at random. in is left untouched.
func (shf *Shuffler) Subset(in []Point, k int) ([]Point, error) {
	if k < 1 {
		return nil, ErrInvalidThreshold
	}

	if len(in) < k {
		return nil, ErrInsufficientShares
	}

	p, err := shf.permutation(len(in))
	if err != nil {
		return nil, err
	}

	out := make([]Point, k)
	for i := range out {
		out[i] = in[p[i]]
	}

	return out, nil
}

// generate a random permutation of n elements (Fisher-Yates).
func (shf *Shuffler) permutation(n int) ([]int, error) {
	arr := make([]int, n)
	for i := 0; i < n; i++ {
		arr[i] = i
	}

	for i := n - 1; i > 0; i-- {
		j, err := shf.randInt(i + 1)
		if err != nil {
			return nil, err
		}

		arr[i], arr[j] = arr[j], arr[i]
	}

	return arr, nil
}

// generate a uniform random integer < mod. Draws landing in the incomplete block at the top of the
// uint64 range are rejected, so no residue is favoured.
func (shf *Shuffler) randInt(mod int) (int, error) {
	m := uint64(mod)
	limit := math.MaxUint64 - (math.MaxUint64%m+1)%m

	tmp := make([]byte, 8)
	for {
		if _, err := io.ReadFull(shf.rand, tmp); err != nil {
			return 0, err
		}

		if v := binary.BigEndian.Uint64(tmp); v <= limit {
			return int(v % m), nil
		}
	}
}
