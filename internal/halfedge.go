package internal

import "fmt"

// Halfedge is a non-owning handle to a directed half-edge record.
type Halfedge struct {
	arr *Arrangement
	id  HalfedgeID
}

func (h Halfedge) ID() HalfedgeID { return h.id }

func (h Halfedge) record() (*halfedgeRecord, error) {
	return h.arr.halfedge(h.id)
}

func (h Halfedge) Twin() (Halfedge, error) {
	rec, err := h.record()
	if err != nil {
		return Halfedge{}, err
	}
	return h.link(rec.twin)
}

func (h Halfedge) Next() (Halfedge, error) {
	rec, err := h.record()
	if err != nil {
		return Halfedge{}, err
	}
	return h.link(rec.next)
}

// Prev is the half-edge whose next is h. Records only store next, so this
// walks the face boundary once.
func (h Halfedge) Prev() (Halfedge, error) {
	if _, err := h.record(); err != nil {
		return Halfedge{}, err
	}
	c := newFaceCirculator(h.arr, h.id)
	prev := h
	for e, ok := c.Next(); ok; e, ok = c.Next() {
		prev = e
	}
	if err := c.Err(); err != nil {
		return Halfedge{}, err
	}
	return prev, nil
}

// Follow a link out of a live record. The target being dead means the
// structure itself is broken, not that the caller held a stale handle.
func (h Halfedge) link(id HalfedgeID) (Halfedge, error) {
	if _, err := h.arr.halfedge(id); err != nil {
		return Halfedge{}, corruptf("link from h%d: %v", h.id, err)
	}
	return Halfedge{h.arr, id}, nil
}

func (h Halfedge) Origin() (Vertex, error) {
	rec, err := h.record()
	if err != nil {
		return Vertex{}, err
	}
	if _, err := h.arr.vertex(rec.origin); err != nil {
		return Vertex{}, corruptf("origin of h%d: %v", h.id, err)
	}
	return Vertex{h.arr, rec.origin}, nil
}

func (h Halfedge) Target() (Vertex, error) {
	twin, err := h.Twin()
	if err != nil {
		return Vertex{}, err
	}
	return twin.Origin()
}

// Face is the face to the left of the half-edge.
func (h Halfedge) Face() (Face, error) {
	rec, err := h.record()
	if err != nil {
		return Face{}, err
	}
	if _, err := h.arr.face(rec.face); err != nil {
		return Face{}, corruptf("face of h%d: %v", h.id, err)
	}
	return Face{h.arr, rec.face}, nil
}

// Curve is the segment from origin to target. Half-edges reaching an open
// boundary have no finite segment.
func (h Halfedge) Curve() (Segment, error) {
	origin, err := h.Origin()
	if err != nil {
		return Segment{}, err
	}
	target, err := h.Target()
	if err != nil {
		return Segment{}, err
	}
	source, err := origin.Point()
	if err != nil {
		return Segment{}, err
	}
	dest, err := target.Point()
	if err != nil {
		return Segment{}, err
	}
	return NewSegment(source, dest), nil
}

func (h Halfedge) String() string {
	rec, err := h.record()
	if err != nil {
		return fmt.Sprintf("[object Halfedge h%d DEAD]", h.id)
	}
	target := "?"
	if twin, err := h.arr.halfedge(rec.twin); err == nil {
		if v, err := h.arr.vertex(twin.origin); err == nil {
			target = v.label()
		}
	}
	origin := "?"
	if v, err := h.arr.vertex(rec.origin); err == nil {
		origin = v.label()
	}
	return fmt.Sprintf("[object Halfedge h%d %s -> %s]", h.id, origin, target)
}
