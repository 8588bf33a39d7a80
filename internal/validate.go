package internal

import (
	"go.uber.org/multierr"
)

// Validate checks every structural invariant of the arrangement and returns
// all violations found, combined. Each one wraps ErrCorruptTopology.
//
//   - twin(twin(h)) == h, and twin(h) != h
//   - next(h) leaves the vertex h enters, and next cycles close
//   - every half-edge of a next cycle has the same face
//   - walking twin-then-next around a vertex returns after degree steps
//   - a vertex is isolated iff it has no incident half-edge
//   - a vertex has a point iff it is not at an open boundary
//   - there is exactly one unbounded face
func (a *Arrangement) Validate() error {
	var errs error
	fail := func(format string, args ...interface{}) {
		errs = multierr.Append(errs, corruptf(format, args...))
	}

	for i := range a.halfedges {
		id := HalfedgeID(i)
		h := &a.halfedges[i]
		if !h.live {
			continue
		}
		twin, err := a.halfedge(h.twin)
		if err != nil {
			fail("h%d has no live twin", id)
			continue
		}
		if h.twin == id || twin.twin != id {
			fail("h%d: twin of twin is h%d", id, twin.twin)
		}
		if _, err := a.vertex(h.origin); err != nil {
			fail("h%d has no live origin", id)
		}
		if _, err := a.face(h.face); err != nil {
			fail("h%d has no live face", id)
		}
		next, err := a.halfedge(h.next)
		if err != nil {
			fail("h%d has no live next", id)
			continue
		}
		if next.origin != twin.origin {
			fail("h%d ends at v%d but its next h%d leaves v%d", id, twin.origin, h.next, next.origin)
		}
	}
	// Per-half-edge links are sound past this point only if nothing failed.
	if errs != nil {
		return errs
	}

	seen := make([]bool, len(a.halfedges))
	for i := range a.halfedges {
		if !a.halfedges[i].live || seen[i] {
			continue
		}
		face := a.halfedges[i].face
		cycle, err := newFaceCirculator(a, HalfedgeID(i)).Collect()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, h := range cycle {
			seen[h.id] = true
			if a.halfedges[h.id].face != face {
				fail("h%d is on the boundary cycle of h%d but has face f%d, not f%d", h.id, i, a.halfedges[h.id].face, face)
			}
		}
	}

	for i := range a.vertices {
		id := VertexID(i)
		v := &a.vertices[i]
		if !v.live {
			continue
		}
		if !v.psx.validInX() || !v.psy.validInY() {
			fail("v%d has classification %s", id, boundaryLabel(v.psx, v.psy))
		}
		if v.finite == atOpenBoundary(v.psx, v.psy) {
			fail("v%d: finite=%t but classified %s", id, v.finite, boundaryLabel(v.psx, v.psy))
		}
		if v.incident == NoHalfedge {
			if v.degree != 0 {
				fail("isolated v%d has degree %d", id, v.degree)
			}
			if _, err := a.face(v.face); err != nil {
				fail("isolated v%d lies in no live face", id)
			}
			continue
		}
		around, err := newVertexCirculator(a, id, v.incident).Collect()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if len(around) != v.degree {
			fail("walk around v%d visits %d half-edges but its degree is %d", id, len(around), v.degree)
		}
	}

	unbounded := 0
	for i := range a.faces {
		id := FaceID(i)
		f := &a.faces[i]
		if !f.live {
			continue
		}
		if f.unbounded {
			unbounded++
			if f.outer != NoHalfedge {
				fail("unbounded f%d has an outer boundary", id)
			}
		} else if f.outer == NoHalfedge {
			fail("bounded f%d has no outer boundary", id)
		}
		boundaries := f.inner
		if f.outer != NoHalfedge {
			boundaries = append([]HalfedgeID{f.outer}, boundaries...)
		}
		for _, h := range boundaries {
			rec, err := a.halfedge(h)
			if err != nil || rec.face != id {
				fail("f%d lists h%d, which does not bound it", id, h)
			}
		}
		for _, v := range f.isolated {
			rec, err := a.vertex(v)
			if err != nil || rec.incident != NoHalfedge || rec.face != id {
				fail("f%d lists v%d, which is not isolated inside it", id, v)
			}
		}
	}
	if unbounded != 1 {
		fail("%d unbounded faces", unbounded)
	}

	return errs
}
