package lights

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/df07/go-surface-raytracer/pkg/core"
	"github.com/df07/go-surface-raytracer/pkg/geometry"
	"github.com/df07/go-surface-raytracer/pkg/material"
)

var _ Light = (*PointLight)(nil)

// recordingOccluder answers every shadow query with blocked and records the last one
type recordingOccluder struct {
	blocked     bool
	calls       int
	ray         core.Ray
	maxDistance float64
	discard     geometry.Object
}

func (o *recordingOccluder) Occluded(ray core.Ray, maxDistance float64, discard geometry.Object) bool {
	o.calls++
	o.ray = ray
	o.maxDistance = maxDistance
	o.discard = discard
	return o.blocked
}

// hitAtOrigin is a hit on a surface through the origin, seen from above
func hitAtOrigin() (core.Ray, geometry.IntersectPoint) {
	ray := core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0))
	return ray, geometry.IntersectPoint{Point: core.NewVec3(0, 0, 0), Distance: 10, FrontFace: true}
}

func TestNewPointLight(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 2, 3), core.NewVec3(0.5, 0.5, 1))

	if !light.Position(core.NewVec3(9, 9, 9)).Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("Expected position (1,2,3), got %v", light.Position(core.Vec3{}))
	}
	if !light.Color().Equals(core.NewVec3(0.5, 0.5, 1)) {
		t.Errorf("Expected color (0.5,0.5,1), got %v", light.Color())
	}
	c, l, q := light.Attenuation()
	if c != 0 || l != 0 || q != 1 {
		t.Errorf("Expected inverse square attenuation (0,0,1), got (%g,%g,%g)", c, l, q)
	}
	if err := light.Validate(); err != nil {
		t.Errorf("Expected valid light, got %v", err)
	}
}

func TestPointLight_ComputeLightRay_Attenuation(t *testing.T) {
	tests := []struct {
		name     string
		opts     []PointLightOption
		expected float64
	}{
		{"inverse square", nil, 1.0 / 25},
		{"constant", []PointLightOption{WithAttenuation(1, 0, 0)}, 1},
		{"linear", []PointLightOption{WithAttenuation(0, 1, 0)}, 1.0 / 5},
		{"mixed", []PointLightOption{WithAttenuation(1, 0.5, 0)}, 1.0 / 3.5},
	}

	ray, hit := hitAtOrigin()
	normal := core.NewVec3(0, 1, 0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1), tt.opts...)
			got := light.ComputeLightRay(ray, hit, normal, nil, nil)
			if !got.Equals(core.NewVec3(tt.expected, tt.expected, tt.expected)) {
				t.Errorf("Expected %g, got %v", tt.expected, got)
			}
		})
	}
}

func TestPointLight_ComputeLightRay_Unlit(t *testing.T) {
	ray, hit := hitAtOrigin()

	tests := []struct {
		name     string
		position core.Vec3
		normal   core.Vec3
	}{
		{"behind surface", core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0)},
		{"grazing", core.NewVec3(5, 0, 0), core.NewVec3(0, 1, 0)},
		{"coincident with point", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)},
		{"behind flipped normal", core.NewVec3(0, -5, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewPointLight(tt.position, core.NewVec3(1, 1, 1))
			occluder := &recordingOccluder{}
			got := light.ComputeLightRay(ray, hit, tt.normal, nil, occluder)
			if !got.IsZero() {
				t.Errorf("Expected no light, got %v", got)
			}
			if occluder.calls != 0 {
				t.Errorf("Expected no shadow query, got %d", occluder.calls)
			}
		})
	}
}

func TestPointLight_ComputeLightRay_NormalFacesRay(t *testing.T) {
	ray, hit := hitAtOrigin()
	light := NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1))

	// The geometric normal points away from the ray: the visible side is still lit
	got := light.ComputeLightRay(ray, hit, core.NewVec3(0, -1, 0), nil, nil)
	if !got.Equals(core.NewVec3(0.04, 0.04, 0.04)) {
		t.Errorf("Expected 0.04, got %v", got)
	}
}

func TestPointLight_ComputeLightRay_Occlusion(t *testing.T) {
	ray, hit := hitAtOrigin()
	light := NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1))
	discard := geometry.NewTorus(core.Vec3{}, 2, 0.5, material.NewMaterial(core.NewVec3(1, 1, 1)))

	t.Run("blocked", func(t *testing.T) {
		occluder := &recordingOccluder{blocked: true}
		got := light.ComputeLightRay(ray, hit, core.NewVec3(0, 1, 0), discard, occluder)
		if !got.IsZero() {
			t.Errorf("Expected shadow, got %v", got)
		}
		if occluder.calls != 1 {
			t.Fatalf("Expected one shadow query, got %d", occluder.calls)
		}
		if !occluder.ray.Origin.Equals(hit.Point) {
			t.Errorf("Expected shadow ray from %v, got %v", hit.Point, occluder.ray.Origin)
		}
		if !occluder.ray.Direction.Equals(core.NewVec3(0, 1, 0)) {
			t.Errorf("Expected shadow ray toward the light, got %v", occluder.ray.Direction)
		}
		if !core.ApproxEqual(occluder.maxDistance, 5, core.Tolerance) {
			t.Errorf("Expected max distance 5, got %f", occluder.maxDistance)
		}
		if occluder.discard != discard {
			t.Errorf("Expected discard object to be passed through")
		}
	})

	t.Run("clear", func(t *testing.T) {
		occluder := &recordingOccluder{blocked: false}
		got := light.ComputeLightRay(ray, hit, core.NewVec3(0, 1, 0), discard, occluder)
		if !got.Equals(core.NewVec3(0.04, 0.04, 0.04)) {
			t.Errorf("Expected 0.04, got %v", got)
		}
	})

	t.Run("nil occluder", func(t *testing.T) {
		got := light.ComputeLightRay(ray, hit, core.NewVec3(0, 1, 0), discard, nil)
		if !got.Equals(core.NewVec3(0.04, 0.04, 0.04)) {
			t.Errorf("Expected 0.04, got %v", got)
		}
	})
}

func TestPointLight_ComputeLightRay_Color(t *testing.T) {
	ray, hit := hitAtOrigin()
	light := NewPointLight(core.NewVec3(0, 2, 0), core.NewVec3(4, 2, 0))

	got := light.ComputeLightRay(ray, hit, core.NewVec3(0, 1, 0), nil, nil)
	if !got.Equals(core.NewVec3(1, 0.5, 0)) {
		t.Errorf("Expected (1,0.5,0), got %v", got)
	}
}

func TestPointLight_Validate(t *testing.T) {
	tests := []struct {
		name     string
		opts     []PointLightOption
		expected []error
	}{
		{"default", nil, nil},
		{"constant only", []PointLightOption{WithAttenuation(1, 0, 0)}, nil},
		{"negative linear", []PointLightOption{WithAttenuation(1, -1, 0)}, []error{ErrNegativeAttenuation}},
		{"all zero", []PointLightOption{WithAttenuation(0, 0, 0)}, []error{ErrZeroAttenuation}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPointLight(core.Vec3{}, core.NewVec3(1, 1, 1), tt.opts...).Validate()
			if len(tt.expected) == 0 {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			for _, want := range tt.expected {
				if !errors.Is(err, want) {
					t.Errorf("Expected %v in %v", want, err)
				}
			}
		})
	}
}

func TestPointLight_InvalidConstructionIsLogged(t *testing.T) {
	defer core.SetLogger(nil)

	var buf bytes.Buffer
	core.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	NewPointLight(core.Vec3{}, core.NewVec3(1, 1, 1), WithAttenuation(-1, 0, 1))

	if !strings.Contains(buf.String(), "invalid point light") {
		t.Errorf("Expected warning, got %q", buf.String())
	}
}
