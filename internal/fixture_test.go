package internal

import (
	"embed"
	"log"
)

// Fixtures are SVG drawings in the fixtures/ directory, available by name sans
// extension. Anything going wrong while loading one is a broken test setup, so
// it is fatal.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"square_with_hole", "fan", "tree", "grid"}

func LoadFixture(name string) *Arrangement {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	drawing, err := LoadSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	arr, err := drawing.Arrangement()
	if err != nil {
		log.Fatalf("Failed to build fixture %q: %v", name, err)
	}
	return arr
}

// Every fixture, plus the hand built open boundary arrangement.
func allFixtures() map[string]*Arrangement {
	result := make(map[string]*Arrangement)
	for _, name := range fixtureNames {
		result[name] = LoadFixture(name)
	}
	result["rays"] = Rays()
	return result
}

// A finite vertex at the origin with one ray running off to the left and one
// to the right, plus an isolated vertex in the top right corner at infinity.
// Everything lies in the single unbounded face.
func Rays() *Arrangement {
	arr, err := Build(func(b *Builder) {
		p := b.AddVertex(PointFromInts(0, 0))
		left := b.AddVertexAtInfinity(LeftBoundary, Interior)
		right := b.AddVertexAtInfinity(RightBoundary, Interior)
		corner := b.AddVertexAtInfinity(RightBoundary, TopBoundary)

		toLeft := b.AddEdge(p, left)
		toRight := b.AddEdge(p, right)
		b.SetNext(b.Twin(toLeft), toRight)
		b.SetNext(b.Twin(toRight), toLeft)

		f := b.AddFace(true)
		b.AddInnerBoundary(f, toLeft)
		b.AddIsolatedVertex(f, corner)
	})
	if err != nil {
		log.Fatalf("Failed to build rays: %v", err)
	}
	return arr
}
