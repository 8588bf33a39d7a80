package internal

import (
	"go.uber.org/zap"
)

type buildConfig struct {
	log      *zap.Logger
	validate bool
}

type Option func(*buildConfig)

func WithLogger(log *zap.Logger) Option {
	return func(c *buildConfig) { c.log = log }
}

// WithoutValidation skips the invariant check at the end of Build. Only useful
// for producing deliberately broken structures in tests.
func WithoutValidation() Option {
	return func(c *buildConfig) { c.validate = false }
}

// Builder assembles records. It is only reachable inside Build, and every
// mistake it is asked to make (linking dead records, mixing up boundary axes)
// panics with a BuildError that Build turns into the returned error.
type Builder struct {
	arr *Arrangement
}

// Build runs fill against a new builder and returns the finished arrangement.
// Degrees are computed from the records once fill returns, and the result is
// validated unless WithoutValidation is given.
func Build(fill func(b *Builder), opts ...Option) (arr *Arrangement, err error) {
	cfg := buildConfig{log: zap.NewNop(), validate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	defer func() {
		if recoveredErr := HandleBuildPanicRecover(recover()); recoveredErr != nil {
			cfg.log.Debug("build failed", zap.Error(recoveredErr))
			arr = nil
			err = recoveredErr
		}
	}()

	b := &Builder{arr: &Arrangement{log: cfg.log}}
	fill(b)
	b.finish()
	arr = b.arr

	cfg.log.Debug("arrangement built",
		zap.Int("vertices", arr.NumVertices()),
		zap.Int("edges", arr.NumEdges()),
		zap.Int("faces", arr.NumFaces()))

	if cfg.validate {
		if err := arr.Validate(); err != nil {
			return nil, err
		}
	}
	return arr, nil
}

func (b *Builder) AddVertex(p Point) VertexID {
	b.arr.vertices = append(b.arr.vertices, vertexRecord{
		point:    p,
		finite:   true,
		incident: NoHalfedge,
		face:     NoFace,
		live:     true,
	})
	return VertexID(len(b.arr.vertices) - 1)
}

// AddVertexAtInfinity adds a vertex with no point, at the open boundary given
// by the two axis classifications. At least one of them must be a boundary.
func (b *Builder) AddVertexAtInfinity(psx, psy ParameterSpace) VertexID {
	if !psx.validInX() {
		fatalf(ErrInvalidOperation, "%s is not an x axis classification", psx)
	}
	if !psy.validInY() {
		fatalf(ErrInvalidOperation, "%s is not a y axis classification", psy)
	}
	if !atOpenBoundary(psx, psy) {
		fatalf(ErrInvalidOperation, "a vertex at infinity needs a boundary classification")
	}
	b.arr.vertices = append(b.arr.vertices, vertexRecord{
		psx:      psx,
		psy:      psy,
		incident: NoHalfedge,
		face:     NoFace,
		live:     true,
	})
	return VertexID(len(b.arr.vertices) - 1)
}

// AddEdge creates the twinned pair u->v and v->u, and returns u->v. The two
// half-edges start out as each other's next, which is the complete linking
// for an edge whose ends have no other edges.
func (b *Builder) AddEdge(u, v VertexID) HalfedgeID {
	vu := b.liveVertex(u)
	vv := b.liveVertex(v)
	if u == v {
		fatalf(ErrInvalidOperation, "edge from v%d to itself", u)
	}

	fwd := HalfedgeID(len(b.arr.halfedges))
	rev := fwd + 1
	b.arr.halfedges = append(b.arr.halfedges,
		halfedgeRecord{twin: rev, next: rev, origin: u, face: NoFace, live: true},
		halfedgeRecord{twin: fwd, next: fwd, origin: v, face: NoFace, live: true},
	)
	if vu.incident == NoHalfedge {
		vu.incident = fwd
	}
	if vv.incident == NoHalfedge {
		vv.incident = rev
	}
	return fwd
}

func (b *Builder) Twin(h HalfedgeID) HalfedgeID {
	return b.liveHalfedge(h).twin
}

func (b *Builder) Next(h HalfedgeID) HalfedgeID {
	return b.liveHalfedge(h).next
}

func (b *Builder) SetNext(h, next HalfedgeID) {
	b.liveHalfedge(next)
	b.liveHalfedge(h).next = next
}

// SetIncident picks which outgoing half-edge walks around v start from.
func (b *Builder) SetIncident(v VertexID, h HalfedgeID) {
	b.liveHalfedge(h)
	b.liveVertex(v).incident = h
}

func (b *Builder) AddFace(unbounded bool) FaceID {
	b.arr.faces = append(b.arr.faces, faceRecord{outer: NoHalfedge, unbounded: unbounded, live: true})
	return FaceID(len(b.arr.faces) - 1)
}

func (b *Builder) SetFace(h HalfedgeID, f FaceID) {
	b.liveFace(f)
	b.liveHalfedge(h).face = f
}

// SetCycleFace assigns f to every half-edge on the next cycle through h.
func (b *Builder) SetCycleFace(h HalfedgeID, f FaceID) {
	b.liveFace(f)
	for _, e := range b.cycle(h) {
		b.arr.halfedges[e].face = f
	}
}

// SetOuterBoundary makes h's cycle the outer boundary of f.
func (b *Builder) SetOuterBoundary(f FaceID, h HalfedgeID) {
	b.SetCycleFace(h, f)
	b.arr.faces[f].outer = h
}

// AddInnerBoundary makes h's cycle a hole of f.
func (b *Builder) AddInnerBoundary(f FaceID, h HalfedgeID) {
	b.SetCycleFace(h, f)
	b.arr.faces[f].inner = append(b.arr.faces[f].inner, h)
}

func (b *Builder) AddIsolatedVertex(f FaceID, v VertexID) {
	rec := b.liveVertex(v)
	face := b.liveFace(f)
	if rec.incident != NoHalfedge {
		fatalf(ErrInvalidOperation, "v%d has incident half-edges and cannot be isolated", v)
	}
	rec.face = f
	face.isolated = append(face.isolated, v)
}

// RemoveVertex retires an isolated vertex. Its slot stays behind, dead, so
// handles still pointing at it fail instead of finding something else.
func (b *Builder) RemoveVertex(v VertexID) {
	rec := b.liveVertex(v)
	if rec.incident != NoHalfedge {
		fatalf(ErrInvalidOperation, "v%d still has incident half-edges", v)
	}
	if rec.face != NoFace {
		face := &b.arr.faces[rec.face]
		for i, iv := range face.isolated {
			if iv == v {
				face.isolated = append(face.isolated[:i], face.isolated[i+1:]...)
				break
			}
		}
	}
	rec.live = false
	rec.face = NoFace
}

// The next cycle through h. Panics if it does not close.
func (b *Builder) cycle(h HalfedgeID) []HalfedgeID {
	b.liveHalfedge(h)
	result := []HalfedgeID{h}
	for e := b.arr.halfedges[h].next; e != h; e = b.arr.halfedges[e].next {
		b.liveHalfedge(e)
		result = append(result, e)
		if len(result) > len(b.arr.halfedges) {
			fatalf(ErrCorruptTopology, "next cycle through h%d does not close", h)
		}
	}
	return result
}

func (b *Builder) finish() {
	for i := range b.arr.vertices {
		b.arr.vertices[i].degree = 0
	}
	for i := range b.arr.halfedges {
		h := &b.arr.halfedges[i]
		if !h.live {
			continue
		}
		if origin, err := b.arr.vertex(h.origin); err == nil {
			origin.degree++
		}
	}
}

func (b *Builder) liveVertex(id VertexID) *vertexRecord {
	rec, err := b.arr.vertex(id)
	if err != nil {
		panic(BuildError{err})
	}
	return rec
}

func (b *Builder) liveHalfedge(id HalfedgeID) *halfedgeRecord {
	rec, err := b.arr.halfedge(id)
	if err != nil {
		panic(BuildError{err})
	}
	return rec
}

func (b *Builder) liveFace(id FaceID) *faceRecord {
	rec, err := b.arr.face(id)
	if err != nil {
		panic(BuildError{err})
	}
	return rec
}
