package internal

import "fmt"

// Vertex is a non-owning handle to a vertex record. It is valid for as long as
// the arrangement it came from.
type Vertex struct {
	arr *Arrangement
	id  VertexID
}

func (v Vertex) ID() VertexID { return v.id }

func (v Vertex) record() (*vertexRecord, error) {
	return v.arr.vertex(v.id)
}

// Diagnostic form: identity, then either the point or the two boundary axes.
//
//	[object Vertex v3 2 2]
//	[object Vertex v7 LEFT INTERIOR]
func (v Vertex) String() string {
	rec, err := v.record()
	if err != nil {
		return fmt.Sprintf("[object Vertex v%d DEAD]", v.id)
	}
	return fmt.Sprintf("[object Vertex v%d %s]", v.id, rec.label())
}

func (rec *vertexRecord) label() string {
	if atOpenBoundary(rec.psx, rec.psy) {
		return boundaryLabel(rec.psx, rec.psy)
	}
	return rec.point.String()
}

func (v Vertex) IsIsolated() (bool, error) {
	rec, err := v.record()
	if err != nil {
		return false, err
	}
	return rec.incident == NoHalfedge, nil
}

// Degree is the number of half-edges leaving the vertex.
func (v Vertex) Degree() (int, error) {
	rec, err := v.record()
	if err != nil {
		return 0, err
	}
	return rec.degree, nil
}

// Point fails with ErrInvalidOperation for a vertex at an open boundary, which
// has no finite location.
func (v Vertex) Point() (Point, error) {
	rec, err := v.record()
	if err != nil {
		return Point{}, err
	}
	if !rec.finite {
		return Point{}, invalidf("v%d lies at the open boundary (%s) and has no point", v.id, boundaryLabel(rec.psx, rec.psy))
	}
	return rec.point, nil
}

// HalfedgesAround returns a fresh clockwise walk over the half-edges leaving
// the vertex, starting at its stored incident half-edge.
func (v Vertex) HalfedgesAround() (*Circulator, error) {
	rec, err := v.record()
	if err != nil {
		return nil, err
	}
	if rec.incident == NoHalfedge {
		return nil, invalidf("v%d is isolated and has no incident half-edge", v.id)
	}
	return newVertexCirculator(v.arr, v.id, rec.incident), nil
}

// IncidentHalfedges runs the walk of HalfedgesAround to completion. Every
// returned half-edge has this vertex as its origin.
func (v Vertex) IncidentHalfedges() ([]Halfedge, error) {
	c, err := v.HalfedgesAround()
	if err != nil {
		return nil, err
	}
	return c.Collect()
}

// Face is the face of the stored incident half-edge. An isolated vertex bounds
// no half-edge, so it has no face by this route; see ContainingFace.
func (v Vertex) Face() (Face, error) {
	rec, err := v.record()
	if err != nil {
		return Face{}, err
	}
	if rec.incident == NoHalfedge {
		return Face{}, invalidf("v%d is isolated and bounds no face", v.id)
	}
	return v.arr.Halfedge(rec.incident).Face()
}

// ContainingFace is the face an isolated vertex lies inside.
func (v Vertex) ContainingFace() (Face, error) {
	rec, err := v.record()
	if err != nil {
		return Face{}, err
	}
	if rec.incident != NoHalfedge {
		return Face{}, invalidf("v%d is not isolated", v.id)
	}
	if _, err := v.arr.face(rec.face); err != nil {
		return Face{}, corruptf("isolated v%d: %v", v.id, err)
	}
	return Face{v.arr, rec.face}, nil
}
