package internal

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Drawing is raw input for FromSegments.
type Drawing struct {
	Segments []Segment
	Points   []Point
}

func (d Drawing) Arrangement(opts ...Option) (*Arrangement, error) {
	return FromSegments(d.Segments, d.Points, opts...)
}

// LoadSVG reads segments out of an SVG document. This is not a full SVG reader:
// <line>, <polyline> and <polygon> elements become segments and <circle>
// centers become points. Transforms and paths are ignored. Coordinates are
// parsed exactly from their decimal text.
func LoadSVG(r io.Reader) (Drawing, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return Drawing{}, errors.Wrap(ErrConstructionFailure, err.Error())
	}

	var d Drawing
	for _, el := range root.FindAll("line") {
		source, err := pointFromScalars(el.Attributes["x1"], el.Attributes["y1"])
		if err != nil {
			return Drawing{}, errors.WithMessage(err, "<line>")
		}
		target, err := pointFromScalars(el.Attributes["x2"], el.Attributes["y2"])
		if err != nil {
			return Drawing{}, errors.WithMessage(err, "<line>")
		}
		d.Segments = append(d.Segments, NewSegment(source, target))
	}
	for _, name := range []string{"polyline", "polygon"} {
		for _, el := range root.FindAll(name) {
			points, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return Drawing{}, errors.WithMessagef(err, "<%s>", name)
			}
			for i := 0; i+1 < len(points); i++ {
				d.Segments = append(d.Segments, NewSegment(points[i], points[i+1]))
			}
			if name == "polygon" && len(points) > 2 {
				d.Segments = append(d.Segments, NewSegment(points[len(points)-1], points[0]))
			}
		}
	}
	for _, el := range root.FindAll("circle") {
		p, err := pointFromScalars(el.Attributes["cx"], el.Attributes["cy"])
		if err != nil {
			return Drawing{}, errors.WithMessage(err, "<circle>")
		}
		d.Points = append(d.Points, p)
	}
	return d, nil
}

// "1,2 3,4" or "1 2 3 4"; SVG allows either.
func parsePointList(s string) ([]Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Wrapf(ErrConstructionFailure, "odd number of coordinates in %q", s)
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		p, err := pointFromScalars(fields[i], fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// LoadYAML reads a document of the form
//
//	segments:
//	  - {source: [0, 0], target: [5, 0]}
//	  - {source: {x: 1/3, y: 0}, target: "2 2"}
//	points:
//	  - [7, 7]
//
// Each entry goes through SegmentFrom or ParsePoint, so anything they accept
// is accepted here.
func LoadYAML(r io.Reader) (Drawing, error) {
	var doc struct {
		Segments []interface{} `yaml:"segments"`
		Points   []interface{} `yaml:"points"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return Drawing{}, errors.Wrap(ErrConstructionFailure, err.Error())
	}

	var d Drawing
	for i, raw := range doc.Segments {
		s, err := SegmentFrom(raw)
		if err != nil {
			return Drawing{}, errors.WithMessagef(err, "segment %d", i)
		}
		d.Segments = append(d.Segments, s)
	}
	for i, raw := range doc.Points {
		p, err := ParsePoint(raw)
		if err != nil {
			return Drawing{}, errors.WithMessagef(err, "point %d", i)
		}
		d.Points = append(d.Points, p)
	}
	return d, nil
}
