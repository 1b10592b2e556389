package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"gazeray/internal/game"
)

func main() {
	scene := flag.String("scene", "assets/scenes/gaze.json", "scene file to load")
	flag.Parse()

	// A scene given on the command line is relative to where we were started.
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "scene" {
			return
		}
		if abs, err := filepath.Abs(*scene); err == nil {
			*scene = abs
		}
	})

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	g := game.New(*scene)
	g.Run()
}
