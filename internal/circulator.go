package internal

import (
	"go.uber.org/zap"
)

// Circulator walks a cyclic adjacency: the half-edges leaving a vertex, or the
// half-edges bounding a face. It starts at a given half-edge, steps with a pure
// "next in rotation" function, and stops when it is back at the start.
//
// Usage follows bufio.Scanner:
//
//	c, err := v.HalfedgesAround()
//	...
//	for h, ok := c.Next(); ok; h, ok = c.Next() {
//		...
//	}
//	if err := c.Err(); err != nil { ... }
//
// A circulator is single pass. Ask the vertex or face for a fresh one to walk
// again.
type Circulator struct {
	arr   *Arrangement
	start HalfedgeID
	cur   HalfedgeID
	// The vertex every visited half-edge must leave, for vertex walks.
	// NoVertex for face walks.
	around VertexID
	// Walks on a sound structure never visit more half-edges than exist, so
	// this is the bound past which the structure must be corrupt.
	limit   int
	visited int
	started bool
	done    bool
	err     error
}

// Around a vertex: twin, then next.
func newVertexCirculator(arr *Arrangement, v VertexID, start HalfedgeID) *Circulator {
	return &Circulator{arr: arr, start: start, cur: start, around: v, limit: len(arr.halfedges)}
}

// Along a face boundary: next only.
func newFaceCirculator(arr *Arrangement, start HalfedgeID) *Circulator {
	return &Circulator{arr: arr, start: start, cur: start, around: NoVertex, limit: len(arr.halfedges)}
}

// Next returns the next half-edge of the walk, or false once the walk is back
// at its start or has failed. Check Err after the loop.
func (c *Circulator) Next() (Halfedge, bool) {
	if c.done {
		return Halfedge{}, false
	}
	if !c.started {
		c.started = true
		if err := c.check(c.start); err != nil {
			return c.fail(err)
		}
		c.visited = 1
		return Halfedge{c.arr, c.start}, true
	}

	next, err := c.step(c.cur)
	if err != nil {
		return c.fail(err)
	}
	if next == c.start {
		c.done = true
		return Halfedge{}, false
	}
	c.visited++
	if c.visited > c.limit {
		return c.fail(corruptf("walk from h%d did not return after %d steps", c.start, c.limit))
	}
	c.cur = next
	return Halfedge{c.arr, next}, true
}

// Err returns the error that ended the walk, if any.
func (c *Circulator) Err() error {
	return c.err
}

// Collect runs the rest of the walk and returns what it visited.
func (c *Circulator) Collect() ([]Halfedge, error) {
	var result []Halfedge
	for h, ok := c.Next(); ok; h, ok = c.Next() {
		result = append(result, h)
	}
	if c.err != nil {
		return nil, c.err
	}
	return result, nil
}

func (c *Circulator) step(from HalfedgeID) (HalfedgeID, error) {
	rec, err := c.arr.halfedge(from)
	if err != nil {
		return NoHalfedge, err
	}
	next := rec.next
	if c.around != NoVertex {
		twin, err := c.arr.halfedge(rec.twin)
		if err != nil {
			return NoHalfedge, corruptf("twin of h%d: %v", from, err)
		}
		next = twin.next
	}
	if err := c.check(next); err != nil {
		return NoHalfedge, err
	}
	return next, nil
}

// A visited half-edge must be live, and must leave the vertex being circled.
func (c *Circulator) check(id HalfedgeID) error {
	rec, err := c.arr.halfedge(id)
	if err != nil {
		if id == c.start {
			return err
		}
		return corruptf("walk from h%d reached h%d: %v", c.start, id, err)
	}
	if c.around != NoVertex && rec.origin != c.around {
		return corruptf("walk around v%d reached h%d leaving v%d", c.around, id, rec.origin)
	}
	return nil
}

func (c *Circulator) fail(err error) (Halfedge, bool) {
	c.done = true
	c.err = err
	if c.arr != nil && c.arr.log != nil {
		c.arr.log.Error("circulator failed",
			zap.Int("start", int(c.start)),
			zap.Int("visited", c.visited),
			zap.Error(err))
	}
	return Halfedge{}, false
}
