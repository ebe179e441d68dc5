package renderer

import (
	"context"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/geometry"
	"github.com/df07/go-surface-raytracer/pkg/lights"
	"github.com/df07/go-surface-raytracer/pkg/material"
	"github.com/df07/go-surface-raytracer/pkg/scene"
)

func squareCamera() *Camera {
	config := DefaultCameraConfig()
	config.Center = core.NewVec3(0, 0, 10)
	config.AspectRatio = 1
	return NewCamera(config)
}

func torusScene() *scene.Scene {
	s := scene.NewScene(geometry.NewTorus(core.Vec3{}, 2, 0.5, material.NewMaterial(core.NewVec3(1, 0, 0))))
	s.AddLight(lights.NewPointLight(core.NewVec3(0, 0, 10), core.NewVec3(100, 100, 100)))
	return s
}

func TestCamera_GetRay(t *testing.T) {
	camera := squareCamera()

	center := camera.GetRay(0.5, 0.5)
	if !center.Origin.Equals(core.NewVec3(0, 0, 10)) {
		t.Errorf("Expected origin (0,0,10), got %v", center.Origin)
	}
	if !center.Direction.Equals(core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected center ray along -Z, got %v", center.Direction)
	}

	// Top edge of a 40° field of view is 20° above the center ray
	top := camera.GetRay(0.5, 1)
	angle := math.Acos(top.Direction.Dot(center.Direction)) * 180 / math.Pi
	if math.Abs(angle-20) > 1e-6 {
		t.Errorf("Expected 20° to the top edge, got %f", angle)
	}
	if top.Direction.Y <= 0 {
		t.Errorf("Expected t=1 to point up, got %v", top.Direction)
	}

	right := camera.GetRay(1, 0.5)
	if right.Direction.X <= 0 {
		t.Errorf("Expected s=1 to point right, got %v", right.Direction)
	}
}

func TestPreview_Shade(t *testing.T) {
	preview := NewPreview(torusScene(), squareCamera(), 8, 8)

	// Hits (0,0,2.5) facing the light 7.5 away: 100 / 56.25 arrives
	c, hit := preview.Shade(core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1)))
	if !hit {
		t.Fatalf("Expected hit")
	}
	// red * (ambient 0.1 + diffuse 0.9 * 100/56.25)
	if !c.Equals(core.NewVec3(1.7, 0, 0)) {
		t.Errorf("Expected (1.7,0,0), got %v", c)
	}

	c, hit = preview.Shade(core.NewRay(core.NewVec3(0, 5, 10), core.NewVec3(0, 0, -1)))
	if hit {
		t.Errorf("Expected miss")
	}
	if !c.Equals(defaultPreviewOptions().background) {
		t.Errorf("Expected background, got %v", c)
	}
}

func TestPreview_Render(t *testing.T) {
	background := core.NewVec3(0, 0, 1)
	preview := NewPreview(torusScene(), squareCamera(), 33, 33, WithBackground(background), WithWorkers(4))

	img, stats, err := preview.Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds().Dx() != 33 || img.Bounds().Dy() != 33 {
		t.Fatalf("Expected 33x33 image, got %v", img.Bounds())
	}

	if stats.TotalPixels != 33*33 || stats.Rows != 33 {
		t.Errorf("Expected every pixel and row rendered, got %+v", stats)
	}
	if stats.HitPixels == 0 || stats.HitPixels == stats.TotalPixels {
		t.Errorf("Expected some pixels to hit and some to miss, got %d of %d", stats.HitPixels, stats.TotalPixels)
	}

	if got := img.RGBAAt(16, 16); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Expected lit red center pixel, got %v", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("Expected background corner pixel, got %v", got)
	}
}

func TestPreview_RenderIsDeterministic(t *testing.T) {
	s := torusScene()
	serial, _, err := NewPreview(s, squareCamera(), 24, 16, WithWorkers(1)).Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	parallel, _, err := NewPreview(s, squareCamera(), 24, 16, WithWorkers(8)).Render(context.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	for i := range serial.Pix {
		if serial.Pix[i] != parallel.Pix[i] {
			t.Fatalf("Pixel byte %d differs: %d vs %d", i, serial.Pix[i], parallel.Pix[i])
		}
	}
}

func TestPreview_RenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := NewPreview(torusScene(), squareCamera(), 16, 16).Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Errorf("Expected no image from a cancelled render")
	}
}

func TestPreview_RenderInvalidSize(t *testing.T) {
	_, _, err := NewPreview(torusScene(), squareCamera(), 0, 10).Render(context.Background())
	if !errors.Is(err, ErrInvalidImageSize) {
		t.Errorf("Expected ErrInvalidImageSize, got %v", err)
	}
}

func TestRenderStats_HitRatio(t *testing.T) {
	if got := (RenderStats{}).HitRatio(); got != 0 {
		t.Errorf("Expected 0 for empty stats, got %f", got)
	}
	if got := (RenderStats{TotalPixels: 4, HitPixels: 1}).HitRatio(); got != 0.25 {
		t.Errorf("Expected 0.25, got %f", got)
	}
}
