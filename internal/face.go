package internal

import "fmt"

// Face is a non-owning handle to a face record.
type Face struct {
	arr *Arrangement
	id  FaceID
}

func (f Face) ID() FaceID { return f.id }

func (f Face) record() (*faceRecord, error) {
	return f.arr.face(f.id)
}

func (f Face) IsUnbounded() (bool, error) {
	rec, err := f.record()
	if err != nil {
		return false, err
	}
	return rec.unbounded, nil
}

// OuterBoundary walks the outer boundary counterclockwise. The unbounded face
// has no outer boundary.
func (f Face) OuterBoundary() (*Circulator, error) {
	rec, err := f.record()
	if err != nil {
		return nil, err
	}
	if rec.outer == NoHalfedge {
		return nil, invalidf("f%d has no outer boundary", f.id)
	}
	return newFaceCirculator(f.arr, rec.outer), nil
}

// InnerBoundaries gives one walk per hole in the face.
func (f Face) InnerBoundaries() ([]*Circulator, error) {
	rec, err := f.record()
	if err != nil {
		return nil, err
	}
	result := make([]*Circulator, 0, len(rec.inner))
	for _, h := range rec.inner {
		result = append(result, newFaceCirculator(f.arr, h))
	}
	return result, nil
}

func (f Face) IsolatedVertices() ([]Vertex, error) {
	rec, err := f.record()
	if err != nil {
		return nil, err
	}
	result := make([]Vertex, 0, len(rec.isolated))
	for _, v := range rec.isolated {
		result = append(result, Vertex{f.arr, v})
	}
	return result, nil
}

func (f Face) String() string {
	rec, err := f.record()
	if err != nil {
		return fmt.Sprintf("[object Face f%d DEAD]", f.id)
	}
	if rec.unbounded {
		return fmt.Sprintf("[object Face f%d UNBOUNDED]", f.id)
	}
	return fmt.Sprintf("[object Face f%d BOUNDED]", f.id)
}
