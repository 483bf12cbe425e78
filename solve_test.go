package secretrecon

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jonathanMweiss/secretrecon/config"
	"github.com/jonathanMweiss/secretrecon/internal/crypto/lagrange"
)

// f(x) = 3 + 2x sampled at 1, 2, 3, 6.
func lineRecords() []Record {
	return []Record{
		{Index: big.NewInt(6), Base: 10, Digits: "15"},
		{Index: big.NewInt(1), Base: 10, Digits: "5"},
		{Index: big.NewInt(3), Base: 10, Digits: "9"},
		{Index: big.NewInt(2), Base: 10, Digits: "7"},
	}
}

func TestSolveEndToEnd(t *testing.T) {
	a := require.New(t)

	records := lineRecords()

	secret, err := Solve(records, 3)
	a.NoError(err)
	a.Equal(int64(3), secret.Int64())

	// whichever 3 of the 4 shares are handed in.
	for skip := range records {
		subset := make([]Record, 0, 3)
		for i, rec := range records {
			if i != skip {
				subset = append(subset, rec)
			}
		}

		secret, err := Solve(subset, 3)
		a.NoError(err)
		a.Equal(int64(3), secret.Int64())
	}
}

func TestSolveMixedBases(t *testing.T) {
	a := require.New(t)

	// f(x) = x^2 + 1 at x=1,2,4 in three different bases.
	secret, err := Solve([]Record{
		{Index: big.NewInt(1), Base: 2, Digits: "10"},
		{Index: big.NewInt(2), Base: 36, Digits: "5"},
		{Index: big.NewInt(4), Base: 16, Digits: "11"},
	}, 3)
	a.NoError(err)
	a.Equal(int64(1), secret.Int64())
}

func TestSolveLargeSecret(t *testing.T) {
	a := require.New(t)

	secret, ok := new(big.Int).SetString("79228162514264337593543950337", 10) // 2^96 + 1
	a.True(ok)

	doc, err := config.GenerateDocument(secret, 9, 6, 300, []int{3, 8, 16, 36})
	a.NoError(err)

	got, err := SolveDocument(doc)
	a.NoError(err)
	a.Equal(0, got.Cmp(secret))
}

func TestSolveErrors(t *testing.T) {
	tests := []struct {
		description string
		records     []Record
		k           int
		expected    error
	}{
		{
			description: "too few shares",
			records:     lineRecords()[:2],
			k:           3,
			expected:    ErrInsufficientShares,
		},
		{
			description: "bad digit",
			records: []Record{
				{Index: big.NewInt(1), Base: 8, Digits: "9"},
			},
			k:        1,
			expected: ErrInvalidDigit,
		},
		{
			description: "bad base",
			records: []Record{
				{Index: big.NewInt(1), Base: 64, Digits: "1"},
			},
			k:        1,
			expected: ErrInvalidBase,
		},
		{
			description: "same index twice",
			records: []Record{
				{Index: big.NewInt(1), Base: 10, Digits: "5"},
				{Index: big.NewInt(1), Base: 10, Digits: "6"},
			},
			k:        2,
			expected: ErrInterpolationDegenerate,
		},
		{
			description: "record without index",
			records: []Record{
				{Base: 10, Digits: "5"},
			},
			k:        1,
			expected: ErrMissingIndex,
		},
		{
			description: "zero threshold",
			records:     lineRecords(),
			k:           0,
			expected:    ErrInvalidThreshold,
		},
		{
			description: "not on an integer polynomial",
			records: []Record{
				{Index: big.NewInt(1), Base: 10, Digits: "0"},
				{Index: big.NewInt(3), Base: 10, Digits: "1"},
			},
			k:        2,
			expected: ErrNonIntegralSecret,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.description, func(t *testing.T) {
			t.Parallel()
			secret, err := Solve(test.records, test.k)
			require.ErrorIs(t, err, test.expected)
			require.Nil(t, secret)
		})
	}
}

func TestPublicCore(t *testing.T) {
	a := require.New(t)

	v, err := Decode("FF", 16)
	a.NoError(err)
	a.Equal(int64(255), v.Int64())

	points, err := DecodeRecords(lineRecords())
	a.NoError(err)
	a.Equal(int64(6), points[0].X().Int64())

	set, err := SelectInterpolationSet(points, 2)
	a.NoError(err)

	secret, err := InterpolateAtZero(set)
	a.NoError(err)
	a.Equal(int64(3), secret.Int64())

	_, err = InterpolateAtZero([]Point{lagrange.NewIntPoint(2, 1), lagrange.NewIntPoint(2, 3)})
	a.ErrorIs(err, ErrInterpolationDegenerate)
}
