package internal

import (
	"math/big"

	"github.com/pkg/errors"
)

// Scalar is the exact coordinate type. Coordinates are never compared with a
// tolerance: two points are equal only if their rationals are equal.
type Scalar = big.Rat

// Point is an immutable pair of exact coordinates. The rationals it holds are
// never modified after construction, and accessors hand out copies, so Points
// can be passed around by value freely. The zero Point is the origin.
type Point struct {
	x, y *Scalar
}

// Segment is an ordered pair of points, held by value.
type Segment struct {
	source, target Point
}

// Orientation is the sign of a turn, as returned by Segment.Orientation.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "CLOCKWISE"
	case CounterClockwise:
		return "COUNTERCLOCKWISE"
	default:
		return "COLLINEAR"
	}
}

var zeroScalar = new(Scalar)

func NewPoint(x, y *Scalar) Point {
	return Point{x: new(Scalar).Set(x), y: new(Scalar).Set(y)}
}

func PointFromInts(x, y int64) Point {
	return Point{x: new(Scalar).SetInt64(x), y: new(Scalar).SetInt64(y)}
}

// PointFromFloats converts exactly: the point holds the binary value of each
// float, not a rounded decimal. Infinities and NaNs cannot be represented.
func PointFromFloats(x, y float64) (Point, error) {
	rx := new(Scalar).SetFloat64(x)
	ry := new(Scalar).SetFloat64(y)
	if rx == nil || ry == nil {
		return Point{}, errors.Wrapf(ErrConstructionFailure, "non-finite coordinate (%v, %v)", x, y)
	}
	return Point{x: rx, y: ry}, nil
}

func (p Point) rx() *Scalar {
	if p.x == nil {
		return zeroScalar
	}
	return p.x
}

func (p Point) ry() *Scalar {
	if p.y == nil {
		return zeroScalar
	}
	return p.y
}

func (p Point) X() *Scalar { return new(Scalar).Set(p.rx()) }
func (p Point) Y() *Scalar { return new(Scalar).Set(p.ry()) }

// Approximate float coordinates, for drawing only.
func (p Point) ApproxX() float64 {
	v, _ := p.rx().Float64()
	return v
}

func (p Point) ApproxY() float64 {
	v, _ := p.ry().Float64()
	return v
}

func (p Point) Equal(other Point) bool {
	return p.rx().Cmp(other.rx()) == 0 && p.ry().Cmp(other.ry()) == 0
}

func (p Point) String() string {
	return p.rx().RatString() + " " + p.ry().RatString()
}

func NewSegment(source, target Point) Segment {
	return Segment{source: source, target: target}
}

func (s Segment) Source() Point { return s.source }
func (s Segment) Target() Point { return s.target }

func (s Segment) IsHorizontal() bool {
	return s.source.ry().Cmp(s.target.ry()) == 0
}

func (s Segment) IsVertical() bool {
	return s.source.rx().Cmp(s.target.rx()) == 0
}

// A degenerate segment is both horizontal and vertical.
func (s Segment) IsDegenerate() bool {
	return s.source.Equal(s.target)
}

// Orientation of p relative to the directed line through the segment.
func (s Segment) Orientation(p Point) Orientation {
	return orientation(s.source, s.target, p)
}

func (s Segment) Reverse() Segment {
	return Segment{source: s.target, target: s.source}
}

func (s Segment) String() string {
	return s.source.String() + " " + s.target.String()
}
