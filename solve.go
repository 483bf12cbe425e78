package secretrecon

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/jonathanMweiss/secretrecon/config"
	"github.com/jonathanMweiss/secretrecon/internal/crypto/lagrange"
	"github.com/jonathanMweiss/secretrecon/internal/numeral"
)

type (
	// Record is a raw share: an index, a base and the share value written in that base.
	Record = config.ShareRecord
	// Point is a decoded share.
	Point = lagrange.Point
)

var (
	ErrInvalidBase             = numeral.ErrInvalidBase
	ErrInvalidDigit            = numeral.ErrInvalidDigit
	ErrInvalidThreshold        = lagrange.ErrInvalidThreshold
	ErrInsufficientShares      = lagrange.ErrInsufficientShares
	ErrInterpolationDegenerate = lagrange.ErrInterpolationDegenerate
	ErrNonIntegralSecret       = lagrange.ErrNonIntegralSecret
	ErrInconsistentShares      = lagrange.ErrInconsistentShares

	ErrMissingIndex = errors.New("secretrecon: share has no index")
)

// Decode returns the exact value of digits read as a numeral in base (2 to 36).
func Decode(digits string, base int) (*big.Int, error) {
	return numeral.Decode(digits, base)
}

// SelectInterpolationSet returns the k points with the lowest x.
func SelectInterpolationSet(points []Point, k int) ([]Point, error) {
	return lagrange.SelectInterpolationSet(points, k)
}

// InterpolateAtZero returns the value at zero of the polynomial of degree < len(points) through points.
func InterpolateAtZero(points []Point) (*big.Int, error) {
	return lagrange.InterpolateAtZero(points)
}

// DecodeRecords turns each record into the point (Index, value), keeping the record order.
func DecodeRecords(records []Record) ([]Point, error) {
	points := make([]Point, len(records))
	for i, rec := range records {
		if rec.Index == nil {
			return nil, fmt.Errorf("record %d: %w", i, ErrMissingIndex)
		}

		y, err := numeral.Decode(rec.Digits, rec.Base)
		if err != nil {
			return nil, fmt.Errorf("share %s: %w", rec.Index, err)
		}

		points[i] = lagrange.NewPoint(rec.Index, y)
	}

	return points, nil
}

// Solve decodes the records, picks the k shares with the lowest indices and returns the secret they
// hide. It either returns the exact secret or an error, never a partial result.
func Solve(records []Record, k int) (*big.Int, error) {
	points, err := DecodeRecords(records)
	if err != nil {
		return nil, err
	}

	set, err := lagrange.SelectInterpolationSet(points, k)
	if err != nil {
		return nil, err
	}

	return lagrange.InterpolateAtZero(set)
}

// SolveDocument solves the shares of doc with the threshold its metadata states.
func SolveDocument(doc *config.Document) (*big.Int, error) {
	return Solve(doc.Shares, doc.Metadata.K)
}
