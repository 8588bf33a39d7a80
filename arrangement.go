// Package cgal models planar arrangements: the subdivision of the plane
// induced by a set of segments, held as a doubly-connected edge list of
// vertices, half-edges and faces.
//
// An arrangement is built once and is read-only afterwards. Queries walk it
// with circulators around vertices and along face boundaries, classify
// vertices lying at the open boundary of the plane, and fail with one of four
// error kinds (ErrInvalidOperation, ErrCorruptTopology, ErrConstructionFailure,
// ErrDanglingReference) that can be matched with errors.Is.
//
// Computing intersections is not part of this package. Input to FromSegments
// must already be noded.
package cgal

import "github.com/Vannevartech/cgal/internal"

type Scalar = internal.Scalar
type Point = internal.Point
type Segment = internal.Segment
type Orientation = internal.Orientation
type ParameterSpace = internal.ParameterSpace

type Arrangement = internal.Arrangement
type Vertex = internal.Vertex
type Halfedge = internal.Halfedge
type Face = internal.Face
type Circulator = internal.Circulator
type Builder = internal.Builder
type Option = internal.Option
type Drawing = internal.Drawing

type VertexID = internal.VertexID
type HalfedgeID = internal.HalfedgeID
type FaceID = internal.FaceID

const (
	Interior       = internal.Interior
	LeftBoundary   = internal.LeftBoundary
	RightBoundary  = internal.RightBoundary
	BottomBoundary = internal.BottomBoundary
	TopBoundary    = internal.TopBoundary

	Clockwise        = internal.Clockwise
	Collinear        = internal.Collinear
	CounterClockwise = internal.CounterClockwise
)

var (
	ErrInvalidOperation    = internal.ErrInvalidOperation
	ErrCorruptTopology     = internal.ErrCorruptTopology
	ErrConstructionFailure = internal.ErrConstructionFailure
	ErrDanglingReference   = internal.ErrDanglingReference
)

var (
	NewPoint        = internal.NewPoint
	PointFromInts   = internal.PointFromInts
	PointFromFloats = internal.PointFromFloats
	ParsePoint      = internal.ParsePoint
	NewSegment      = internal.NewSegment
	SegmentFrom     = internal.SegmentFrom

	WithLogger        = internal.WithLogger
	WithoutValidation = internal.WithoutValidation

	LoadSVG  = internal.LoadSVG
	LoadYAML = internal.LoadYAML
	Draw     = internal.Draw
)

// Build assembles an arrangement record by record. fill may panic with the
// builder's own errors; those come back as err. Anything else it panics with
// is not recovered.
func Build(fill func(b *Builder), opts ...Option) (*Arrangement, error) {
	return internal.Build(fill, opts...)
}

// FromSegments builds the arrangement of noded segments and points. See the
// package documentation for what noded means.
func FromSegments(segments []Segment, points []Point, opts ...Option) (*Arrangement, error) {
	return internal.FromSegments(segments, points, opts...)
}
