package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const segmentAndPoint = `
segments:
  - {source: [0, 0], target: [2, 0]}
points:
  - "5 5"
`

func loadTestDrawing(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBuildReport(t *testing.T) {
	drawing, err := loadDrawing(loadTestDrawing(t, "drawing.yaml", segmentAndPoint))
	require.NoError(t, err)
	arr, err := drawing.Arrangement()
	require.NoError(t, err)

	report, err := buildReport(arr)
	require.NoError(t, err)

	expected := Report{
		Vertices: 3,
		Edges:    1,
		Faces:    1,
		Details: []VertexReport{
			{Description: "[object Vertex v0 0 0]", Degree: 1, Neighbors: []string{"[object Vertex v1 2 0]"}},
			{Description: "[object Vertex v1 2 0]", Degree: 1, Neighbors: []string{"[object Vertex v0 0 0]"}},
			{Description: "[object Vertex v2 5 5]", Isolated: true},
		},
	}
	if diff := pretty.Diff(expected, report); len(diff) > 0 {
		t.Errorf("unexpected report:\n%s", pretty.Sprint(diff))
	}

	var buf bytes.Buffer
	writeText(&buf, report)
	assert.Equal(t, "3 vertices, 1 edges, 1 faces\n"+
		"[object Vertex v0 0 0] degree=1\n"+
		"\t-> [object Vertex v1 2 0]\n"+
		"[object Vertex v1 2 0] degree=1\n"+
		"\t-> [object Vertex v0 0 0]\n"+
		"[object Vertex v2 5 5] degree=0 isolated\n",
		buf.String())

	out, err := yaml.Marshal(report)
	require.NoError(t, err)
	var decoded Report
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	assert.Equal(t, report, decoded)
	assert.Contains(t, string(out), "vertex_details:")
}

func TestLoadDrawing(t *testing.T) {
	svg := loadTestDrawing(t, "square.SVG", `<svg><polygon points="0,0 1,0 1,1 0,1" /></svg>`)
	drawing, err := loadDrawing(svg)
	require.NoError(t, err)
	assert.Len(t, drawing.Segments, 4)

	_, err = loadDrawing(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRenderChart(t *testing.T) {
	drawing, err := loadDrawing(loadTestDrawing(t, "drawing.yml", segmentAndPoint))
	require.NoError(t, err)
	arr, err := drawing.Arrangement()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderChart(arr, "segment and point", &buf))
	html := buf.String()
	assert.Contains(t, html, "segment and point")
	assert.Contains(t, html, "Vertices")
	assert.Contains(t, html, "Edges")
}
