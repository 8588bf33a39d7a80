package internal

// ParameterSpace classifies where a vertex lies along one axis of the
// parameter space. The X axis uses Interior, LeftBoundary and RightBoundary;
// the Y axis uses Interior, BottomBoundary and TopBoundary. The two axes are
// independent: a vertex can be at the left boundary and interior in Y, or at a
// corner at infinity with both axes on a boundary.
//
// Classification is decided by whoever builds the arrangement and stored on
// the vertex. Nothing here derives it from geometry.
type ParameterSpace int

const (
	Interior ParameterSpace = iota
	LeftBoundary
	RightBoundary
	BottomBoundary
	TopBoundary
)

func (ps ParameterSpace) String() string {
	switch ps {
	case LeftBoundary:
		return "LEFT"
	case RightBoundary:
		return "RIGHT"
	case BottomBoundary:
		return "BOTTOM"
	case TopBoundary:
		return "TOP"
	default:
		return "INTERIOR"
	}
}

func (ps ParameterSpace) validInX() bool {
	return ps == Interior || ps == LeftBoundary || ps == RightBoundary
}

func (ps ParameterSpace) validInY() bool {
	return ps == Interior || ps == BottomBoundary || ps == TopBoundary
}

func atOpenBoundary(psx, psy ParameterSpace) bool {
	return psx != Interior || psy != Interior
}

// Both axes, X first, e.g. "LEFT TOP" or "RIGHT INTERIOR".
func boundaryLabel(psx, psy ParameterSpace) string {
	return psx.String() + " " + psy.String()
}

func (v Vertex) IsAtOpenBoundary() (bool, error) {
	rec, err := v.record()
	if err != nil {
		return false, err
	}
	return atOpenBoundary(rec.psx, rec.psy), nil
}

func (v Vertex) ParameterSpaceInX() (ParameterSpace, error) {
	rec, err := v.record()
	if err != nil {
		return Interior, err
	}
	return rec.psx, nil
}

func (v Vertex) ParameterSpaceInY() (ParameterSpace, error) {
	rec, err := v.record()
	if err != nil {
		return Interior, err
	}
	return rec.psy, nil
}
