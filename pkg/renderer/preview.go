package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/geometry"
	"github.com/df07/go-surface-raytracer/pkg/scene"
)

// ErrInvalidImageSize is returned when a preview is requested with a non-positive size
var ErrInvalidImageSize = errors.New("invalid image size")

// PreviewOption configures a Preview during creation
type PreviewOption func(*previewOptions)

type previewOptions struct {
	workers     int
	background  core.Vec3
	doubleSided bool
}

func defaultPreviewOptions() previewOptions {
	return previewOptions{
		workers:    0,
		background: core.NewVec3(0.05, 0.05, 0.08),
	}
}

// WithWorkers sets the number of render goroutines. Zero or less uses one per CPU.
func WithWorkers(n int) PreviewOption {
	return func(o *previewOptions) {
		o.workers = n
	}
}

// WithBackground sets the color of pixels whose ray hits nothing
func WithBackground(c core.Vec3) PreviewOption {
	return func(o *previewOptions) {
		o.background = c
	}
}

// WithDoubleSided makes primary rays hit the back of one-sided primitives
func WithDoubleSided(doubleSided bool) PreviewOption {
	return func(o *previewOptions) {
		o.doubleSided = doubleSided
	}
}

// Preview renders a scene with one primary ray per pixel and direct point
// lighting. It is meant for inspecting geometry, not for final images.
type Preview struct {
	scene   *scene.Scene
	camera  *Camera
	width   int
	height  int
	options previewOptions
}

// NewPreview creates a preview renderer for the scene
func NewPreview(s *scene.Scene, camera *Camera, width, height int, opts ...PreviewOption) *Preview {
	options := defaultPreviewOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Preview{
		scene:   s,
		camera:  camera,
		width:   width,
		height:  height,
		options: options,
	}
}

// Render traces every pixel in parallel. Rows are independent so workers write
// straight into the image.
func (p *Preview) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if p.width <= 0 || p.height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("preview %dx%d: %w", p.width, p.height, ErrInvalidImageSize)
	}

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))

	pool := newWorkerPool(p.height, p.options.workers)
	pool.start(ctx, func(row int) RenderStats {
		return p.renderRow(img, row)
	})
	for j := 0; j < p.height; j++ {
		pool.submit(rowTask{Row: j})
	}
	pool.stop()

	var stats RenderStats
	for result := range pool.resultQueue {
		stats.merge(result.Stats)
	}

	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	core.Logger().Debug("preview rendered",
		"width", p.width, "height", p.height,
		"hitRatio", stats.HitRatio(), "elapsed", time.Since(startTime))
	return img, stats, nil
}

// renderRow traces one image row, row 0 being the top of the image
func (p *Preview) renderRow(img *image.RGBA, row int) RenderStats {
	stats := RenderStats{Rows: 1}
	t := 1 - (float64(row)+0.5)/float64(p.height)

	for i := 0; i < p.width; i++ {
		s := (float64(i) + 0.5) / float64(p.width)
		c, hit := p.Shade(p.camera.GetRay(s, t))
		img.SetRGBA(i, row, vec3ToColor(c))

		stats.TotalPixels++
		if hit {
			stats.HitPixels++
		}
	}
	return stats
}

// Shade returns the color seen along the ray and whether it hit an object.
// A hit is lit by the material's ambient term plus its diffuse share of the
// scene's point lights.
func (p *Preview) Shade(ray core.Ray) (core.Vec3, bool) {
	hit, ok := p.scene.Intersect(ray, p.options.doubleSided)
	if !ok {
		return p.options.background, false
	}

	base := hit.Object.ComputeColor(hit.Point)
	ambient, diffuse := shadingCoefficients(hit.Object)
	light := p.scene.LightContribution(ray, hit)

	lighting := light.Multiply(diffuse).Add(core.NewVec3(ambient, ambient, ambient))
	return base.MultiplyVec(lighting), true
}

// shadingCoefficients returns the ambient and diffuse weights of the object's
// material, or the material defaults when it has none
func shadingCoefficients(object geometry.Object) (float64, float64) {
	if mat := object.Material(); mat != nil {
		return mat.Ambient, mat.Diffuse
	}
	return 0.1, 0.9
}

// vec3ToColor converts a Vec3 color to RGBA with clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0, 1).GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
