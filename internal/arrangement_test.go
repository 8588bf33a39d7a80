package internal

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(hs []Halfedge) []HalfedgeID {
	result := make([]HalfedgeID, 0, len(hs))
	for _, h := range hs {
		result = append(result, h.ID())
	}
	return result
}

func TestFixturesValidate(t *testing.T) {
	for name, arr := range allFixtures() {
		assert.NoError(t, arr.Validate(), name)
	}
}

func TestTwinOfTwin(t *testing.T) {
	for name, arr := range allFixtures() {
		for _, h := range arr.Halfedges() {
			twin, err := h.Twin()
			require.NoError(t, err)
			back, err := twin.Twin()
			require.NoError(t, err)
			assert.Equal(t, h, back, "%s: %s", name, h)
			assert.NotEqual(t, h, twin, "%s: %s", name, h)
		}
	}
}

func TestVertexCirculatorVisitsDegree(t *testing.T) {
	for name, arr := range allFixtures() {
		for _, v := range arr.Vertices() {
			degree, err := v.Degree()
			require.NoError(t, err)
			if degree == 0 {
				continue
			}
			around, err := v.IncidentHalfedges()
			require.NoError(t, err, "%s: %s", name, v)
			assert.Len(t, around, degree, "%s: %s visited %s", name, v, spew.Sdump(ids(around)))

			distinct := make(map[HalfedgeID]struct{})
			for _, h := range around {
				distinct[h.ID()] = struct{}{}
				origin, err := h.Origin()
				require.NoError(t, err)
				assert.Equal(t, v, origin, "%s: %s", name, h)
			}
			assert.Len(t, distinct, degree, "%s: %s", name, v)
		}
	}
}

func TestIsolatedVertices(t *testing.T) {
	for name, arr := range allFixtures() {
		for _, v := range arr.Vertices() {
			isolated, err := v.IsIsolated()
			require.NoError(t, err)
			if !isolated {
				continue
			}
			degree, err := v.Degree()
			require.NoError(t, err)
			assert.Equal(t, 0, degree, "%s: %s", name, v)

			_, err = v.HalfedgesAround()
			assert.True(t, errors.Is(err, ErrInvalidOperation), "%s: %s: %v", name, v, err)
			_, err = v.IncidentHalfedges()
			assert.True(t, errors.Is(err, ErrInvalidOperation), "%s: %s: %v", name, v, err)
			_, err = v.Face()
			assert.True(t, errors.Is(err, ErrInvalidOperation), "%s: %s: %v", name, v, err)

			face, err := v.ContainingFace()
			require.NoError(t, err)
			inside, err := face.IsolatedVertices()
			require.NoError(t, err)
			assert.Contains(t, inside, v)
		}
	}
}

func TestOpenBoundaryIffClassified(t *testing.T) {
	for name, arr := range allFixtures() {
		for _, v := range arr.Vertices() {
			open, err := v.IsAtOpenBoundary()
			require.NoError(t, err)
			psx, err := v.ParameterSpaceInX()
			require.NoError(t, err)
			psy, err := v.ParameterSpaceInY()
			require.NoError(t, err)
			assert.Equal(t, psx != Interior || psy != Interior, open, "%s: %s", name, v)

			_, err = v.Point()
			if open {
				assert.True(t, errors.Is(err, ErrInvalidOperation), "%s: %s", name, v)
			} else {
				assert.NoError(t, err, "%s: %s", name, v)
			}
		}
	}
}

func TestNextCyclesShareFace(t *testing.T) {
	for name, arr := range allFixtures() {
		for _, h := range arr.Halfedges() {
			face, err := h.Face()
			require.NoError(t, err)

			next, err := h.Next()
			require.NoError(t, err)
			nextFace, err := next.Face()
			require.NoError(t, err)
			assert.Equal(t, face, nextFace, "%s: %s", name, h)

			prev, err := next.Prev()
			require.NoError(t, err)
			assert.Equal(t, h, prev, "%s: %s", name, h)

			// next starts where h ends
			target, err := h.Target()
			require.NoError(t, err)
			origin, err := next.Origin()
			require.NoError(t, err)
			assert.Equal(t, target, origin, "%s: %s", name, h)
		}
	}
}

func TestExactlyOneUnboundedFace(t *testing.T) {
	for name, arr := range allFixtures() {
		count := 0
		for _, f := range arr.Faces() {
			unbounded, err := f.IsUnbounded()
			require.NoError(t, err)
			if unbounded {
				count++
			}
		}
		assert.Equal(t, 1, count, name)
	}
}

func TestFan(t *testing.T) {
	arr := LoadFixture("fan")
	assert.Equal(t, 4, arr.NumVertices())
	assert.Equal(t, 6, arr.NumEdges())
	assert.Equal(t, 12, arr.NumHalfedges())
	assert.Equal(t, 4, arr.NumFaces())

	center := findVertex(t, arr, PointFromInts(2, 2))
	assert.Equal(t, "[object Vertex v0 2 2]", center.String())

	degree, err := center.Degree()
	require.NoError(t, err)
	assert.Equal(t, 3, degree)

	around, err := center.IncidentHalfedges()
	require.NoError(t, err)
	require.Len(t, around, 3)

	// Circulation is clockwise: up, down right, down left.
	var targets []string
	for _, h := range around {
		origin, err := h.Origin()
		require.NoError(t, err)
		assert.Equal(t, center, origin)
		target, err := h.Target()
		require.NoError(t, err)
		p, err := target.Point()
		require.NoError(t, err)
		targets = append(targets, p.String())
	}
	clockwise := []string{"2 4", "4 0", "0 0"}
	assert.Contains(t, [][]string{
		clockwise,
		{clockwise[1], clockwise[2], clockwise[0]},
		{clockwise[2], clockwise[0], clockwise[1]},
	}, targets)

	// Every edge out of the center bounds a triangle on its left.
	for _, h := range around {
		face, err := h.Face()
		require.NoError(t, err)
		unbounded, err := face.IsUnbounded()
		require.NoError(t, err)
		assert.False(t, unbounded)
		boundary, err := face.OuterBoundary()
		require.NoError(t, err)
		cycle, err := boundary.Collect()
		require.NoError(t, err)
		assert.Len(t, cycle, 3)
	}

	face, err := center.Face()
	require.NoError(t, err)
	first, err := around[0].Face()
	require.NoError(t, err)
	assert.Equal(t, first, face, "the walk starts at the stored incident half-edge")
}

func TestSquareWithHole(t *testing.T) {
	arr := LoadFixture("square_with_hole")
	assert.Equal(t, 10, arr.NumVertices())
	assert.Equal(t, 8, arr.NumEdges())
	assert.Equal(t, 3, arr.NumFaces())

	unbounded, err := arr.UnboundedFace()
	require.NoError(t, err)
	_, err = unbounded.OuterBoundary()
	assert.True(t, errors.Is(err, ErrInvalidOperation))

	holes, err := unbounded.InnerBoundaries()
	require.NoError(t, err)
	require.Len(t, holes, 1)
	outside, err := holes[0].Collect()
	require.NoError(t, err)
	assert.Len(t, outside, 4)

	far := findVertex(t, arr, PointFromInts(7, 7))
	face, err := far.ContainingFace()
	require.NoError(t, err)
	assert.Equal(t, unbounded, face)

	// The face between the squares: outer ring counterclockwise, one hole, one
	// isolated vertex.
	near := findVertex(t, arr, PointFromInts(3, 3))
	between, err := near.ContainingFace()
	require.NoError(t, err)
	betweenUnbounded, err := between.IsUnbounded()
	require.NoError(t, err)
	assert.False(t, betweenUnbounded)

	outer, err := between.OuterBoundary()
	require.NoError(t, err)
	ring := ringOf(t, outer)
	assert.Equal(t, 1, doubleSignedArea(ring).Sign())
	assert.Equal(t, "200", doubleSignedArea(ring).RatString())

	holes, err = between.InnerBoundaries()
	require.NoError(t, err)
	require.Len(t, holes, 1)
	hole := ringOf(t, holes[0])
	assert.Equal(t, "-32", doubleSignedArea(hole).RatString())

	isolated, err := between.IsolatedVertices()
	require.NoError(t, err)
	assert.Equal(t, []Vertex{near}, isolated)
}

func TestGrid(t *testing.T) {
	arr := LoadFixture("grid")
	assert.Equal(t, 12, arr.NumVertices())
	assert.Equal(t, 12, arr.NumEdges(), "the repeated middle edge is merged")
	assert.Equal(t, 5, arr.NumFaces())

	center := findVertex(t, arr, PointFromInts(1, 1))
	degree, err := center.Degree()
	require.NoError(t, err)
	assert.Equal(t, 4, degree)

	corner := findVertex(t, arr, PointFromInts(0, 0))
	degree, err = corner.Degree()
	require.NoError(t, err)
	assert.Equal(t, 2, degree)

	outside := findVertex(t, arr, PointFromInts(-1, -1))
	face, err := outside.ContainingFace()
	require.NoError(t, err)
	unbounded, err := face.IsUnbounded()
	require.NoError(t, err)
	assert.True(t, unbounded)
}

func TestTree(t *testing.T) {
	arr := LoadFixture("tree")
	assert.Equal(t, 5, arr.NumVertices())
	assert.Equal(t, 3, arr.NumEdges())
	assert.Equal(t, 1, arr.NumFaces())

	unbounded, err := arr.UnboundedFace()
	require.NoError(t, err)
	holes, err := unbounded.InnerBoundaries()
	require.NoError(t, err)
	require.Len(t, holes, 1)
	walk, err := holes[0].Collect()
	require.NoError(t, err)
	assert.Len(t, walk, 6, "a tree's boundary runs along both sides of every edge")

	isolated, err := unbounded.IsolatedVertices()
	require.NoError(t, err)
	require.Len(t, isolated, 1)
	p, err := isolated[0].Point()
	require.NoError(t, err)
	assert.Equal(t, "1/2 1", p.String())
}

func TestFromSegments_Dedupe(t *testing.T) {
	a, b, c := PointFromInts(0, 0), PointFromInts(3, 0), PointFromInts(0, 3)
	arr, err := FromSegments([]Segment{
		NewSegment(a, b),
		NewSegment(b, a),
		NewSegment(b, c),
		NewSegment(c, a),
		NewSegment(a, b),
		NewSegment(c, c),
	}, []Point{a, PointFromInts(1, 1)})
	require.NoError(t, err)

	assert.Equal(t, 4, arr.NumVertices())
	assert.Equal(t, 3, arr.NumEdges())
	assert.Equal(t, 2, arr.NumFaces())

	inside := findVertex(t, arr, PointFromInts(1, 1))
	face, err := inside.ContainingFace()
	require.NoError(t, err)
	unbounded, err := face.IsUnbounded()
	require.NoError(t, err)
	assert.False(t, unbounded)
}

func TestFromSegments_Empty(t *testing.T) {
	arr, err := FromSegments(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, arr.NumVertices())
	assert.Equal(t, 1, arr.NumFaces())
}

func TestCirculatorIsRestartable(t *testing.T) {
	arr := LoadFixture("grid")
	center := findVertex(t, arr, PointFromInts(1, 1))

	first, err := center.IncidentHalfedges()
	require.NoError(t, err)
	second, err := center.IncidentHalfedges()
	require.NoError(t, err)
	assert.Equal(t, ids(first), ids(second))

	c, err := center.HalfedgesAround()
	require.NoError(t, err)
	walked, err := c.Collect()
	require.NoError(t, err)
	assert.Equal(t, ids(first), ids(walked))

	// Spent cursors stay spent.
	_, ok := c.Next()
	assert.False(t, ok)
	assert.NoError(t, c.Err())
}

func findVertex(t *testing.T, arr *Arrangement, p Point) Vertex {
	t.Helper()
	for _, v := range arr.Vertices() {
		if q, err := v.Point(); err == nil && q.Equal(p) {
			return v
		}
	}
	t.Fatalf("no vertex at %v", p)
	return Vertex{}
}

func ringOf(t *testing.T, c *Circulator) []Point {
	t.Helper()
	walk, err := c.Collect()
	require.NoError(t, err)
	var ring []Point
	for _, h := range walk {
		origin, err := h.Origin()
		require.NoError(t, err)
		p, err := origin.Point()
		require.NoError(t, err)
		ring = append(ring, p)
	}
	return ring
}
