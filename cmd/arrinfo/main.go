package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vannevartech/cgal/internal"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Inspect the arrangement of a drawing. Input is an SVG file (lines,
// polylines, polygons and circles) or a YAML file of segments and points. The
// segments must already be noded: they may touch at endpoints but not cross.
var (
	app      = kingpin.New("arrinfo", "Build and inspect the arrangement of a drawing.")
	format   = app.Flag("format", "Report format.").Default("text").Enum("text", "yaml")
	pngPath  = app.Flag("png", "Write a PNG rendering to this file.").String()
	scale    = app.Flag("scale", "Pixels per unit in the PNG.").Default("50").Float64()
	showPNG  = app.Flag("imgcat", "Print the PNG inline (iTerm only).").Bool()
	htmlPath = app.Flag("html", "Write an interactive chart to this file.").String()
	debug    = app.Flag("debug", "Log at debug level.").Bool()
	input    = app.Arg("input", "Drawing to read (.svg, .yaml or .yml).").Required().ExistingFile()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("arrinfo failed", zap.String("input", *input), zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(log *zap.Logger) error {
	drawing, err := loadDrawing(*input)
	if err != nil {
		return err
	}
	log.Debug("drawing loaded",
		zap.Int("segments", len(drawing.Segments)),
		zap.Int("points", len(drawing.Points)))

	arr, err := drawing.Arrangement(internal.WithLogger(log))
	if err != nil {
		return err
	}
	if *debug {
		fmt.Fprint(os.Stderr, arr.DbgString())
	}

	report, err := buildReport(arr)
	if err != nil {
		return err
	}
	switch *format {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		if err := enc.Encode(report); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	default:
		writeText(os.Stdout, report)
	}

	if *pngPath != "" {
		if err := internal.Draw(arr, *pngPath, *scale); err != nil {
			return err
		}
		log.Info("png written", zap.String("path", *pngPath))
		if *showPNG {
			imgcat.CatFile(*pngPath, os.Stdout)
		}
	}

	if *htmlPath != "" {
		f, err := os.Create(*htmlPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := renderChart(arr, filepath.Base(*input), f); err != nil {
			return err
		}
		log.Info("chart written", zap.String("path", *htmlPath))
	}
	return nil
}

func loadDrawing(path string) (internal.Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return internal.Drawing{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return internal.LoadSVG(f)
	default:
		return internal.LoadYAML(f)
	}
}
