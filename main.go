package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/renderer"
	"github.com/df07/go-surface-raytracer/pkg/scene"
)

// config holds the parsed command line
type config struct {
	sceneName string
	width     int
	height    int
	workers   int
	outputDir string
	verbose   bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.sceneName, "scene", "torus", "Scene to render (see -list)")
	flag.IntVar(&cfg.width, "width", 400, "Image width in pixels")
	flag.IntVar(&cfg.height, "height", 225, "Image height in pixels")
	flag.IntVar(&cfg.workers, "workers", 0, "Render goroutines (0 = one per CPU)")
	flag.StringVar(&cfg.outputDir, "output", "output", "Directory for rendered images")
	flag.BoolVar(&cfg.verbose, "verbose", false, "Log scene construction and render details")
	list := flag.Bool("list", false, "List available scenes")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Surface Raytracer Preview")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
		return
	}
	if *list {
		printScenes()
		return
	}

	if cfg.verbose {
		core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	filename, err := run(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

func printScenes() {
	fmt.Println("Available scenes:")
	for _, preset := range scene.Presets() {
		fmt.Printf("  %-10s %s\n", preset.Name, preset.Description)
	}
}

// run renders the configured scene and returns the written file name
func run(ctx context.Context, cfg config) (string, error) {
	selectedScene, err := scene.NewPresetScene(cfg.sceneName)
	if err != nil {
		return "", err
	}
	if err := selectedScene.Validate(); err != nil {
		return "", fmt.Errorf("scene %q: %w", cfg.sceneName, err)
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return "", fmt.Errorf("image %dx%d: %w", cfg.width, cfg.height, renderer.ErrInvalidImageSize)
	}

	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.AspectRatio = float64(cfg.width) / float64(cfg.height)
	preview := renderer.NewPreview(selectedScene, renderer.NewCamera(cameraConfig),
		cfg.width, cfg.height, renderer.WithWorkers(cfg.workers))

	startTime := time.Now()
	img, stats, err := preview.Render(ctx)
	if err != nil {
		return "", fmt.Errorf("render %q: %w", cfg.sceneName, err)
	}
	fmt.Printf("Render completed in %v (%d objects, %.1f%% of pixels hit)\n",
		time.Since(startTime), len(selectedScene.Objects), 100*stats.HitRatio())

	// Create output directory for this scene
	outputDir := filepath.Join(cfg.outputDir, cfg.sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("saving PNG: %w", err)
	}
	return filename, nil
}
