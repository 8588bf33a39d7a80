package internal

import (
	"fmt"
	"strings"

	"github.com/Vannevartech/cgal/dbg"
	"github.com/logrusorgru/aurora"
)

// Debug strings, for humans staring at a terminal. These are not stable and
// not meant to be parsed; String is the diagnostic form.

func (v Vertex) DbgName() string {
	rec, err := v.record()
	if err != nil {
		return dbg.Name(nil)
	}
	return dbg.Name(rec)
}

func (h Halfedge) DbgName() string {
	rec, err := h.record()
	if err != nil {
		return dbg.Name(nil)
	}
	return dbg.Name(rec)
}

func (f Face) DbgName() string {
	rec, err := f.record()
	if err != nil {
		return dbg.Name(nil)
	}
	return dbg.Name(rec)
}

func (v Vertex) DbgString() string {
	rec, err := v.record()
	if err != nil {
		return aurora.Red(fmt.Sprintf("v%d (dead)", v.id)).String()
	}
	var where aurora.Value
	if atOpenBoundary(rec.psx, rec.psy) {
		where = aurora.Magenta(boundaryLabel(rec.psx, rec.psy))
	} else {
		where = aurora.Green(rec.point.String())
	}
	return fmt.Sprintf("%s v%d @ %s deg=%d", aurora.Cyan(v.DbgName()), v.id, where, rec.degree)
}

func (h Halfedge) DbgString() string {
	rec, err := h.record()
	if err != nil {
		return aurora.Red(fmt.Sprintf("h%d (dead)", h.id)).String()
	}
	return fmt.Sprintf("%s h%d: %s -> twin %s, next %s, face %s",
		aurora.Yellow(h.DbgName()), h.id,
		h.arr.Vertex(rec.origin).DbgName(),
		h.arr.Halfedge(rec.twin).DbgName(),
		h.arr.Halfedge(rec.next).DbgName(),
		h.arr.Face(rec.face).DbgName())
}

func (f Face) DbgString() string {
	rec, err := f.record()
	if err != nil {
		return aurora.Red(fmt.Sprintf("f%d (dead)", f.id)).String()
	}
	kind := aurora.Blue("bounded")
	if rec.unbounded {
		kind = aurora.Blue("unbounded")
	}
	return fmt.Sprintf("%s f%d %s, %d holes, %d isolated", aurora.Cyan(f.DbgName()), f.id, kind, len(rec.inner), len(rec.isolated))
}

// DbgString dumps every live record, one per line.
func (a *Arrangement) DbgString() string {
	var sb strings.Builder
	for _, v := range a.Vertices() {
		sb.WriteString(v.DbgString())
		sb.WriteString("\n")
	}
	for _, h := range a.Halfedges() {
		sb.WriteString(h.DbgString())
		sb.WriteString("\n")
	}
	for _, f := range a.Faces() {
		sb.WriteString(f.DbgString())
		sb.WriteString("\n")
	}
	return sb.String()
}
