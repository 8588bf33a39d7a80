package main

import (
	"fmt"
	"io"

	"github.com/Vannevartech/cgal/internal"
)

type Report struct {
	Vertices int            `yaml:"vertices"`
	Edges    int            `yaml:"edges"`
	Faces    int            `yaml:"faces"`
	Details  []VertexReport `yaml:"vertex_details"`
}

type VertexReport struct {
	Description  string `yaml:"description"`
	Degree       int    `yaml:"degree"`
	Isolated     bool   `yaml:"isolated"`
	OpenBoundary bool   `yaml:"open_boundary"`
	// Target of each incident half-edge, in circulation order.
	Neighbors []string `yaml:"neighbors,omitempty"`
}

func buildReport(arr *internal.Arrangement) (Report, error) {
	report := Report{
		Vertices: arr.NumVertices(),
		Edges:    arr.NumEdges(),
		Faces:    arr.NumFaces(),
	}
	for _, v := range arr.Vertices() {
		vr := VertexReport{Description: v.String()}
		var err error
		if vr.Degree, err = v.Degree(); err != nil {
			return Report{}, err
		}
		if vr.Isolated, err = v.IsIsolated(); err != nil {
			return Report{}, err
		}
		if vr.OpenBoundary, err = v.IsAtOpenBoundary(); err != nil {
			return Report{}, err
		}
		if !vr.Isolated {
			around, err := v.IncidentHalfedges()
			if err != nil {
				return Report{}, err
			}
			for _, h := range around {
				target, err := h.Target()
				if err != nil {
					return Report{}, err
				}
				vr.Neighbors = append(vr.Neighbors, target.String())
			}
		}
		report.Details = append(report.Details, vr)
	}
	return report, nil
}

func writeText(w io.Writer, r Report) {
	fmt.Fprintf(w, "%d vertices, %d edges, %d faces\n", r.Vertices, r.Edges, r.Faces)
	for _, v := range r.Details {
		fmt.Fprintf(w, "%s degree=%d", v.Description, v.Degree)
		if v.Isolated {
			fmt.Fprint(w, " isolated")
		}
		fmt.Fprintln(w)
		for _, n := range v.Neighbors {
			fmt.Fprintf(w, "\t-> %s\n", n)
		}
	}
}
