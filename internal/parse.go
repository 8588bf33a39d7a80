package internal

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Lenient construction. Loosely typed input (decoded YAML, JSON, hand built
// maps) is resolved into one of two shapes: an explicit pair, where the value
// already is a pair of points, or a structural pair, where source and target
// have to be looked up by name. Anything else is a construction failure; no
// partially built value is ever returned.

// Endpointer is anything that can give up a source and a target point.
type Endpointer interface {
	Source() Point
	Target() Point
}

// SegmentFrom builds a segment from a Segment, a pair of points, an Endpointer,
// a two element list, or a map with "source" and "target" keys. List elements
// and map values may be anything ParsePoint accepts.
func SegmentFrom(v interface{}) (Segment, error) {
	switch v := v.(type) {
	case Segment:
		return v, nil
	case *Segment:
		if v == nil {
			return Segment{}, errors.Wrap(ErrConstructionFailure, "nil segment")
		}
		return *v, nil
	case [2]Point:
		return NewSegment(v[0], v[1]), nil
	case []Point:
		if len(v) != 2 {
			return Segment{}, errors.Wrapf(ErrConstructionFailure, "segment needs 2 points, got %d", len(v))
		}
		return NewSegment(v[0], v[1]), nil
	case []interface{}:
		if len(v) != 2 {
			return Segment{}, errors.Wrapf(ErrConstructionFailure, "segment needs 2 points, got %d", len(v))
		}
		return segmentFromFields(v[0], v[1])
	case Endpointer:
		return NewSegment(v.Source(), v.Target()), nil
	case map[string]interface{}:
		return segmentFromFields(v["source"], v["target"])
	case map[interface{}]interface{}:
		return segmentFromFields(v["source"], v["target"])
	}
	return Segment{}, errors.Wrapf(ErrConstructionFailure, "cannot build a segment from %T", v)
}

func segmentFromFields(source, target interface{}) (Segment, error) {
	if source == nil || target == nil {
		return Segment{}, errors.Wrap(ErrConstructionFailure, "segment needs both source and target")
	}
	s, err := ParsePoint(source)
	if err != nil {
		return Segment{}, errors.WithMessage(err, "source")
	}
	t, err := ParsePoint(target)
	if err != nil {
		return Segment{}, errors.WithMessage(err, "target")
	}
	return NewSegment(s, t), nil
}

// ParsePoint accepts a Point, a two element sequence of scalars, a map with
// "x" and "y" keys, or a string "x y". Scalars may be integers, finite floats,
// *Scalar, or rational text such as "1/3" or "0.1" (parsed exactly).
func ParsePoint(v interface{}) (Point, error) {
	switch v := v.(type) {
	case Point:
		return v, nil
	case *Point:
		if v == nil {
			return Point{}, errors.Wrap(ErrConstructionFailure, "nil point")
		}
		return *v, nil
	case [2]float64:
		return pointFromScalars(v[0], v[1])
	case [2]int:
		return pointFromScalars(v[0], v[1])
	case [2]int64:
		return pointFromScalars(v[0], v[1])
	case []float64:
		if len(v) == 2 {
			return pointFromScalars(v[0], v[1])
		}
	case []int:
		if len(v) == 2 {
			return pointFromScalars(v[0], v[1])
		}
	case []interface{}:
		if len(v) == 2 {
			return pointFromScalars(v[0], v[1])
		}
	case map[string]interface{}:
		return pointFromScalars(v["x"], v["y"])
	case map[interface{}]interface{}:
		return pointFromScalars(v["x"], v["y"])
	case string:
		fields := strings.Fields(v)
		if len(fields) == 2 {
			return pointFromScalars(fields[0], fields[1])
		}
	}
	return Point{}, errors.Wrapf(ErrConstructionFailure, "cannot build a point from %T %v", v, v)
}

func pointFromScalars(x, y interface{}) (Point, error) {
	rx, ok := parseScalar(x)
	if !ok {
		return Point{}, errors.Wrapf(ErrConstructionFailure, "bad x coordinate %v", x)
	}
	ry, ok := parseScalar(y)
	if !ok {
		return Point{}, errors.Wrapf(ErrConstructionFailure, "bad y coordinate %v", y)
	}
	return Point{x: rx, y: ry}, nil
}

func parseScalar(v interface{}) (*Scalar, bool) {
	switch v := v.(type) {
	case int:
		return new(Scalar).SetInt64(int64(v)), true
	case int32:
		return new(Scalar).SetInt64(int64(v)), true
	case int64:
		return new(Scalar).SetInt64(v), true
	case uint64:
		if v > math.MaxInt64 {
			return nil, false
		}
		return new(Scalar).SetInt64(int64(v)), true
	case float32:
		return parseScalar(float64(v))
	case float64:
		r := new(Scalar).SetFloat64(v)
		return r, r != nil
	case *Scalar:
		if v == nil {
			return nil, false
		}
		return new(Scalar).Set(v), true
	case string:
		return new(Scalar).SetString(strings.TrimSpace(v))
	}
	return nil, false
}
