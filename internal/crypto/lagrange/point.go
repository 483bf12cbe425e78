package lagrange

import (
	"fmt"
	"math/big"
)

// Point is a share (x, P(x)) of some polynomial P. A Point is immutable: its coordinates are copied
// on construction and on access.
type Point struct {
	x *big.Int
	y *big.Int
}

// NewPoint returns the point (x, y).
func NewPoint(x, y *big.Int) Point {
	return Point{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}
}

// NewIntPoint is a shorthand for points with small coordinates.
func NewIntPoint(x, y int64) Point {
	return Point{x: big.NewInt(x), y: big.NewInt(y)}
}

// X returns a copy of the x coordinate.
func (p Point) X() *big.Int {
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate.
func (p Point) Y() *big.Int {
	return new(big.Int).Set(p.y)
}

func (p Point) String() string {
	return fmt.Sprintf("(x: %s, y: %s)", p.x, p.y)
}
