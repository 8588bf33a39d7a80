package internal

import (
	"math"

	"github.com/fogleman/gg"
)

// Padding around the finite part of the drawing. Vertices at an open boundary
// are drawn inside it, on their side of the picture.
const drawPadding = 100

// Draw renders the arrangement to a PNG file. Bounded faces are filled, edges
// stroked, finite vertices drawn as dots and vertices at infinity as rings in
// the padding. This is for looking at, not for measuring.
func Draw(arr *Arrangement, path string, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := range arr.vertices {
		v := &arr.vertices[i]
		if !v.live || !v.finite {
			continue
		}
		minX = math.Min(minX, v.point.ApproxX())
		minY = math.Min(minY, v.point.ApproxY())
		maxX = math.Max(maxX, v.point.ApproxX())
		maxY = math.Max(maxY, v.point.ApproxY())
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Vertices at infinity sit 3/4 of the way out into the padding.
	var margin float64
	if scale > 0 {
		margin = 0.75 * drawPadding / scale
	}
	position := func(id VertexID) (float64, float64) {
		v := &arr.vertices[id]
		if v.finite {
			return v.point.ApproxX(), v.point.ApproxY()
		}
		x, y := (minX+maxX)/2, (minY+maxY)/2
		if nx, ny, ok := arr.neighborCentroid(id); ok {
			x, y = nx, ny
		}
		switch v.psx {
		case LeftBoundary:
			x = minX - margin
		case RightBoundary:
			x = maxX + margin
		}
		switch v.psy {
		case BottomBoundary:
			y = minY - margin
		case TopBoundary:
			y = maxY + margin
		}
		return x, y
	}

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, f := range arr.Faces() {
		outer, err := f.OuterBoundary()
		if err != nil {
			continue
		}
		first := true
		for h, ok := outer.Next(); ok; h, ok = outer.Next() {
			x, y := position(arr.halfedges[h.id].origin)
			if first {
				c.MoveTo(x, y)
				first = false
			} else {
				c.LineTo(x, y)
			}
		}
		if outer.Err() != nil {
			c.ClearPath()
			continue
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.Fill()
	}

	c.SetLineWidth(2 / math.Max(scale, 1e-9))
	c.SetRGB(0, 1, 1)
	for _, h := range arr.Edges() {
		x1, y1 := position(arr.halfedges[h.id].origin)
		x2, y2 := position(arr.halfedges[arr.halfedges[h.id].twin].origin)
		c.DrawLine(x1, y1, x2, y2)
		c.Stroke()
	}

	radius := 4 / math.Max(scale, 1e-9)
	for _, v := range arr.Vertices() {
		x, y := position(v.id)
		c.DrawCircle(x, y, radius)
		if arr.vertices[v.id].finite {
			c.SetRGB(1, 1, 1)
			c.Fill()
		} else {
			c.SetRGB(1, 0, 1)
			c.Stroke()
		}
	}

	return c.SavePNG(path)
}

// Average position of the finite neighbours of v, if it has any.
func (a *Arrangement) neighborCentroid(id VertexID) (float64, float64, bool) {
	around, err := a.Vertex(id).IncidentHalfedges()
	if err != nil {
		return 0, 0, false
	}
	var sx, sy float64
	n := 0
	for _, h := range around {
		target := &a.vertices[a.halfedges[a.halfedges[h.id].twin].origin]
		if target.finite {
			sx += target.point.ApproxX()
			sy += target.point.ApproxY()
			n++
		}
	}
	if n == 0 {
		return 0, 0, false
	}
	return sx / float64(n), sy / float64(n), true
}
