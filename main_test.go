package main

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-surface-raytracer/pkg/renderer"
	"github.com/df07/go-surface-raytracer/pkg/scene"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config
		expectErr error
	}{
		{"torus scene", config{sceneName: "torus", width: 32, height: 18, workers: 2}, nil},
		{"wireframe scene", config{sceneName: "wireframe", width: 16, height: 16}, nil},
		{"mixed scene", config{sceneName: "mixed", width: 16, height: 9}, nil},
		{"unknown scene", config{sceneName: "nonexistent", width: 16, height: 16}, scene.ErrUnknownScene},
		{"empty scene name", config{sceneName: "", width: 16, height: 16}, scene.ErrUnknownScene},
		{"invalid size", config{sceneName: "torus", width: 0, height: 16}, renderer.ErrInvalidImageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.outputDir = t.TempDir()

			filename, err := run(context.Background(), tt.cfg)
			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Errorf("Expected %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if filepath.Dir(filename) != filepath.Join(tt.cfg.outputDir, tt.cfg.sceneName) {
				t.Errorf("Expected image under the scene directory, got %s", filename)
			}

			file, err := os.Open(filename)
			if err != nil {
				t.Fatalf("Opening render: %v", err)
			}
			defer file.Close()

			img, err := png.Decode(file)
			if err != nil {
				t.Fatalf("Decoding render: %v", err)
			}
			if img.Bounds().Dx() != tt.cfg.width || img.Bounds().Dy() != tt.cfg.height {
				t.Errorf("Expected %dx%d image, got %v", tt.cfg.width, tt.cfg.height, img.Bounds())
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := run(ctx, config{sceneName: "torus", width: 16, height: 16, outputDir: t.TempDir()})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
