package internal

import (
	"go.uber.org/zap"
)

// Records are kept in three arenas owned by the Arrangement. Every cross
// reference is an index into one of them; -1 means "none". Records are never
// moved once the arrangement is built, and a record that has been removed keeps
// its slot with live set to false, so a stale index is detected rather than
// silently reused.

type VertexID int
type HalfedgeID int
type FaceID int

const (
	NoVertex   VertexID   = -1
	NoHalfedge HalfedgeID = -1
	NoFace     FaceID     = -1
)

type vertexRecord struct {
	point Point
	// False for vertices at an open boundary, which have no point.
	finite   bool
	psx, psy ParameterSpace
	// Any outgoing half-edge. NoHalfedge for isolated vertices.
	incident HalfedgeID
	degree   int
	// The face an isolated vertex lies in. NoFace otherwise.
	face FaceID
	live bool
}

type halfedgeRecord struct {
	twin   HalfedgeID
	next   HalfedgeID
	origin VertexID
	// The face to the left of the half-edge.
	face FaceID
	live bool
}

type faceRecord struct {
	// One half-edge of the outer boundary. The unbounded face has none.
	outer HalfedgeID
	// One half-edge per hole.
	inner     []HalfedgeID
	isolated  []VertexID
	unbounded bool
	live      bool
}

// Arrangement is the read-only half-edge structure of a planar subdivision.
// It is built once, by Build or FromSegments, and never changes afterwards, so
// any number of queries may run against it. It is not safe to share with code
// that builds into it concurrently; nothing does once Build has returned.
type Arrangement struct {
	vertices  []vertexRecord
	halfedges []halfedgeRecord
	faces     []faceRecord
	log       *zap.Logger
}

func (a *Arrangement) vertex(id VertexID) (*vertexRecord, error) {
	if a == nil {
		return nil, danglingf("vertex v%d has no arrangement", id)
	}
	if id < 0 || int(id) >= len(a.vertices) || !a.vertices[id].live {
		return nil, danglingf("vertex v%d is not a live record", id)
	}
	return &a.vertices[id], nil
}

func (a *Arrangement) halfedge(id HalfedgeID) (*halfedgeRecord, error) {
	if a == nil {
		return nil, danglingf("half-edge h%d has no arrangement", id)
	}
	if id < 0 || int(id) >= len(a.halfedges) || !a.halfedges[id].live {
		return nil, danglingf("half-edge h%d is not a live record", id)
	}
	return &a.halfedges[id], nil
}

func (a *Arrangement) face(id FaceID) (*faceRecord, error) {
	if a == nil {
		return nil, danglingf("face f%d has no arrangement", id)
	}
	if id < 0 || int(id) >= len(a.faces) || !a.faces[id].live {
		return nil, danglingf("face f%d is not a live record", id)
	}
	return &a.faces[id], nil
}

// Handle constructors. No check is made here: a handle to a dead or missing
// record is representable, and every query on it fails with
// ErrDanglingReference.

func (a *Arrangement) Vertex(id VertexID) Vertex       { return Vertex{a, id} }
func (a *Arrangement) Halfedge(id HalfedgeID) Halfedge { return Halfedge{a, id} }
func (a *Arrangement) Face(id FaceID) Face             { return Face{a, id} }

func (a *Arrangement) Vertices() []Vertex {
	var result []Vertex
	for i := range a.vertices {
		if a.vertices[i].live {
			result = append(result, Vertex{a, VertexID(i)})
		}
	}
	return result
}

func (a *Arrangement) Halfedges() []Halfedge {
	var result []Halfedge
	for i := range a.halfedges {
		if a.halfedges[i].live {
			result = append(result, Halfedge{a, HalfedgeID(i)})
		}
	}
	return result
}

// Edges gives one half-edge per twin pair, the one with the lower index.
func (a *Arrangement) Edges() []Halfedge {
	var result []Halfedge
	for i := range a.halfedges {
		h := &a.halfedges[i]
		if h.live && HalfedgeID(i) < h.twin {
			result = append(result, Halfedge{a, HalfedgeID(i)})
		}
	}
	return result
}

func (a *Arrangement) Faces() []Face {
	var result []Face
	for i := range a.faces {
		if a.faces[i].live {
			result = append(result, Face{a, FaceID(i)})
		}
	}
	return result
}

func (a *Arrangement) NumVertices() int  { return len(a.Vertices()) }
func (a *Arrangement) NumHalfedges() int { return len(a.Halfedges()) }
func (a *Arrangement) NumEdges() int     { return len(a.Edges()) }
func (a *Arrangement) NumFaces() int     { return len(a.Faces()) }

// UnboundedFace returns the first live unbounded face. A validated
// arrangement has exactly one.
func (a *Arrangement) UnboundedFace() (Face, error) {
	for i := range a.faces {
		if a.faces[i].live && a.faces[i].unbounded {
			return Face{a, FaceID(i)}, nil
		}
	}
	return Face{}, corruptf("arrangement has no unbounded face")
}
