package internal

import (
	"sort"

	"go.uber.org/zap"
)

// FromSegments builds the arrangement of a set of noded segments and points.
//
// Noded means no two segments cross or overlap except at shared endpoints.
// Computing intersections is the job of the sweep that would feed this, so
// crossings are not detected here, and an arrangement of crossing input is
// topologically meaningless even when it validates.
//
// Equal points become one vertex. Repeated segments (in either direction)
// become one edge. Degenerate segments are treated as points, and points
// that are not on any segment become isolated vertices.
func FromSegments(segments []Segment, points []Point, opts ...Option) (*Arrangement, error) {
	return Build(func(b *Builder) {
		b.insertNoded(segments, points)
	}, opts...)
}

func (b *Builder) insertNoded(segments []Segment, points []Point) {
	vertexIndex := make(map[string]VertexID)
	vertexFor := func(p Point) VertexID {
		key := p.String()
		if v, ok := vertexIndex[key]; ok {
			return v
		}
		v := b.AddVertex(p)
		vertexIndex[key] = v
		return v
	}

	type vertPair struct {
		a, b VertexID
	}
	edgeSet := make(map[vertPair]bool)

	for _, s := range segments {
		if s.IsDegenerate() {
			points = append(points, s.Source())
			continue
		}
		u := vertexFor(s.Source())
		v := vertexFor(s.Target())
		pair := vertPair{u, v}
		if pair.b < pair.a {
			pair.a, pair.b = pair.b, pair.a
		}
		if edgeSet[pair] {
			continue
		}
		edgeSet[pair] = true
		b.AddEdge(u, v)
	}

	var isolated []VertexID
	for _, p := range points {
		if _, ok := vertexIndex[p.String()]; ok {
			continue
		}
		isolated = append(isolated, vertexFor(p))
	}

	b.linkByAngle()
	b.assignFaces(isolated)
}

// Link every incoming half-edge to the outgoing half-edge that follows its
// twin clockwise around the shared vertex. This puts each face on the left of
// its boundary half-edges, so bounded faces are traversed counterclockwise.
func (b *Builder) linkByAngle() {
	outgoing := make([][]HalfedgeID, len(b.arr.vertices))
	for i, h := range b.arr.halfedges {
		outgoing[h.origin] = append(outgoing[h.origin], HalfedgeID(i))
	}

	for v, out := range outgoing {
		if len(out) == 0 {
			continue
		}
		origin := b.arr.vertices[v].point
		target := func(h HalfedgeID) Point {
			return b.arr.vertices[b.arr.halfedges[b.arr.halfedges[h].twin].origin].point
		}
		sort.SliceStable(out, func(i, j int) bool {
			return compareDirections(origin, target(out[i]), target(out[j])) < 0
		})
		for i, h := range out {
			incoming := b.arr.halfedges[h].twin
			b.arr.halfedges[incoming].next = out[CircularIndex(i-1, len(out))]
		}
	}
}

type boundaryCycle struct {
	start     HalfedgeID
	ring      []Point
	area      *Scalar
	component int
}

// Every counterclockwise cycle bounds its own face. Every other cycle is the
// outside of a connected component and becomes a hole of the smallest face
// around it, or of the unbounded face. Isolated vertices are placed the same
// way.
func (b *Builder) assignFaces(isolated []VertexID) {
	unbounded := b.AddFace(true)
	component := b.components()

	visited := make([]bool, len(b.arr.halfedges))
	var bounded, outer []boundaryCycle
	for i := range b.arr.halfedges {
		if visited[i] {
			continue
		}
		cycle := boundaryCycle{start: HalfedgeID(i), component: component[b.arr.halfedges[i].origin]}
		for _, h := range b.cycle(HalfedgeID(i)) {
			visited[h] = true
			cycle.ring = append(cycle.ring, b.arr.vertices[b.arr.halfedges[h].origin].point)
		}
		cycle.area = doubleSignedArea(cycle.ring)
		if cycle.area.Sign() > 0 {
			bounded = append(bounded, cycle)
		} else {
			outer = append(outer, cycle)
		}
	}

	// Smallest first, so the first containing cycle is the innermost.
	sort.SliceStable(bounded, func(i, j int) bool {
		return bounded[i].area.Cmp(bounded[j].area) < 0
	})
	faceOf := make([]FaceID, len(bounded))
	for i, cycle := range bounded {
		faceOf[i] = b.AddFace(false)
		b.SetOuterBoundary(faceOf[i], cycle.start)
	}

	containing := func(p Point, comp int) FaceID {
		for i, cycle := range bounded {
			if cycle.component != comp && windingNumber(cycle.ring, p) != 0 {
				return faceOf[i]
			}
		}
		return unbounded
	}

	for _, cycle := range outer {
		lowest := cycle.ring[0]
		for _, p := range cycle.ring[1:] {
			if CompareXY(p, lowest) < 0 {
				lowest = p
			}
		}
		b.AddInnerBoundary(containing(lowest, cycle.component), cycle.start)
	}
	for _, v := range isolated {
		b.AddIsolatedVertex(containing(b.arr.vertices[v].point, -1), v)
	}

	b.arr.log.Debug("faces assigned",
		zap.Int("bounded", len(bounded)),
		zap.Int("components", len(outer)),
		zap.Int("isolated", len(isolated)))
}

// Connected component number of each vertex, by flood fill over edges.
func (b *Builder) components() []int {
	adjacent := make([][]VertexID, len(b.arr.vertices))
	for _, h := range b.arr.halfedges {
		target := b.arr.halfedges[h.twin].origin
		adjacent[h.origin] = append(adjacent[h.origin], target)
	}

	component := make([]int, len(b.arr.vertices))
	for i := range component {
		component[i] = -1
	}
	next := 0
	for start := range b.arr.vertices {
		if component[start] != -1 {
			continue
		}
		stack := []VertexID{VertexID(start)}
		component[start] = next
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, w := range adjacent[v] {
				if component[w] == -1 {
					component[w] = next
					stack = append(stack, w)
				}
			}
		}
		next++
	}
	return component
}
