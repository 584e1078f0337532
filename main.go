package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const defaultOutput = "output.ppm"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, renders, and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	defaults := renderer.DefaultConfig()

	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(stderr)
	sceneName := flags.String("scene", "", "Render a built-in scene instead of a file: 'default' or 'mirror-corridor'")
	pngPath := flags.String("png", "", "Also write a PNG preview to this path")
	width := flags.Int("width", defaults.Width, "Image width in pixels")
	height := flags.Int("height", defaults.Height, "Image height in pixels")
	maxDepth := flags.Int("depth", defaults.MaxDepth, "Maximum reflection/refraction depth")
	quiet := flags.Bool("quiet", false, "Suppress progress output")
	list := flags.Bool("list", false, "List built-in scenes and the scene files in -scenes-dir")
	scenesDir := flags.String("scenes-dir", "scenes", "Directory searched by -list")
	help := flags.Bool("help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *help {
		printUsage(stdout, flags)
		return 0
	}

	if *list {
		fmt.Fprintln(stdout, "Available scenes:")
		if err := listScenes(stdout, *scenesDir, core.NewStdLogger(stderr, "")); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	positional := flags.Args()
	if *sceneName == "" && len(positional) < 1 {
		printUsage(stderr, flags)
		return 1
	}
	if *width <= 0 || *height <= 0 {
		fmt.Fprintf(stderr, "Error: image size must be positive, got %dx%d\n", *width, *height)
		return 1
	}

	// Load diagnostics go to stderr; progress goes to stdout unless quiet
	var progress core.Logger = core.NewStdLogger(stdout, "")
	if *quiet {
		progress = core.NopLogger{}
	}

	source := *sceneName
	if source == "" {
		source, positional = positional[0], positional[1:]
	}
	outputFile := defaultOutput
	if len(positional) > 0 {
		outputFile = positional[0]
	}

	selectedScene, err := createScene(*sceneName, source, core.NewStdLogger(stderr, ""))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	config := defaults
	config.Width = *width
	config.Height = *height
	config.MaxDepth = *maxDepth

	progress.Printf("Rendering %dx%d to %s...", config.Width, config.Height, outputFile)
	spheres, polyhedra := selectedScene.CountShapes()
	progress.Printf("Scene: %d primitives (%d spheres, %d polyhedra), %d lights",
		selectedScene.GetPrimitiveCount(), spheres, polyhedra, len(selectedScene.Lights))

	raytracer := renderer.NewRaytracer(selectedScene, config, progress)
	fb, stats := raytracer.Render()

	if err := loaders.WritePPM(outputFile, fb); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *pngPath != "" {
		if err := loaders.SavePNG(*pngPath, fb); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		progress.Printf("Preview saved as %s", *pngPath)
	}

	progress.Printf("Render completed in %v (%d rays, %.2f per pixel, max depth reached %d)",
		stats.Elapsed, stats.Rays.TotalRays(), stats.RaysPerPixel(), stats.Rays.DeepestDepth)
	progress.Printf("Average luminance: %.3f", renderer.CalculateAverageLuminance(fb))
	progress.Printf("Done!")
	return 0
}

// createScene returns the built-in scene called name, or loads the scene file at path when name is empty
func createScene(name, path string, logger core.Logger) (*scene.Scene, error) {
	if name != "" {
		return scene.NewBuiltInScene(name)
	}
	return loaders.LoadScene(path, logger)
}

// listScenes prints the built-in scenes and the scene files found in dir
func listScenes(w io.Writer, dir string, logger core.Logger) error {
	scenes, err := scene.ListAllScenes(dir, logger)
	if err != nil {
		return err
	}
	for _, info := range scenes {
		id := info.ID
		if info.Type == "file" {
			id = info.FilePath
		}
		fmt.Fprintf(w, "  %-28s %s", id, info.Name)
		if info.Description != "" {
			fmt.Fprintf(w, ": %s", info.Description)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printUsage(w io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintf(w, "Usage: raytracer [options] <scene_file> [output_file=%s]\n", defaultOutput)
	fmt.Fprintf(w, "       raytracer [options] -scene <name> [output_file=%s]\n", defaultOutput)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags.SetOutput(w)
	flags.PrintDefaults()
}
