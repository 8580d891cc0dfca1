package authoring

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidDocument is wrapped by every validation failure of a document.
var ErrInvalidDocument = errors.New("invalid collider document")

// Document is a list of authored colliders.
type Document struct {
	Colliders []ColliderDoc `yaml:"colliders" json:"colliders" toml:"colliders"`
}

// ColliderDoc describes one collider. Which fields apply depends on Type.
type ColliderDoc struct {
	Name     string `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
	Type     string `yaml:"type" json:"type" toml:"type"`
	Disabled bool   `yaml:"disabled,omitempty" json:"disabled,omitempty" toml:"disabled,omitempty"`

	Center      []float32 `yaml:"center,omitempty" json:"center,omitempty" toml:"center,omitempty"`
	Radius      float32   `yaml:"radius,omitempty" json:"radius,omitempty" toml:"radius,omitempty"`
	StretchMode string    `yaml:"stretch_mode,omitempty" json:"stretch_mode,omitempty" toml:"stretch_mode,omitempty"`

	// Capsule, either as center/height/direction or as explicit end points.
	Height    float32   `yaml:"height,omitempty" json:"height,omitempty" toml:"height,omitempty"`
	Direction string    `yaml:"direction,omitempty" json:"direction,omitempty" toml:"direction,omitempty"`
	PointA    []float32 `yaml:"point_a,omitempty" json:"point_a,omitempty" toml:"point_a,omitempty"`
	PointB    []float32 `yaml:"point_b,omitempty" json:"point_b,omitempty" toml:"point_b,omitempty"`

	Size   []float32   `yaml:"size,omitempty" json:"size,omitempty" toml:"size,omitempty"`
	Points [][]float32 `yaml:"points,omitempty" json:"points,omitempty" toml:"points,omitempty"`

	// Deferred factors of convex and compound colliders.
	Scale        []float32 `yaml:"scale,omitempty" json:"scale,omitempty" toml:"scale,omitempty"`
	UniformScale *float32  `yaml:"uniform_scale,omitempty" json:"uniform_scale,omitempty" toml:"uniform_scale,omitempty"`
	Stretch      []float32 `yaml:"stretch,omitempty" json:"stretch,omitempty" toml:"stretch,omitempty"`

	Children []ColliderDoc `yaml:"children,omitempty" json:"children,omitempty" toml:"children,omitempty"`
	// Local places a compound child inside its parent.
	Local *RigidDoc `yaml:"local,omitempty" json:"local,omitempty" toml:"local,omitempty"`

	Transform   *TransformDoc `yaml:"transform,omitempty" json:"transform,omitempty" toml:"transform,omitempty"`
	LegacyScale []float32     `yaml:"legacy_scale,omitempty" json:"legacy_scale,omitempty" toml:"legacy_scale,omitempty"`
}

// RigidDoc is a rotation (x, y, z, w) and a position.
type RigidDoc struct {
	Position []float32 `yaml:"position,omitempty" json:"position,omitempty" toml:"position,omitempty"`
	Rotation []float32 `yaml:"rotation,omitempty" json:"rotation,omitempty" toml:"rotation,omitempty"`
}

// TransformDoc is the world transform a collider is baked with.
type TransformDoc struct {
	Position []float32 `yaml:"position,omitempty" json:"position,omitempty" toml:"position,omitempty"`
	Rotation []float32 `yaml:"rotation,omitempty" json:"rotation,omitempty" toml:"rotation,omitempty"`
	Scale    *float32  `yaml:"scale,omitempty" json:"scale,omitempty" toml:"scale,omitempty"`
	Stretch  []float32 `yaml:"stretch,omitempty" json:"stretch,omitempty" toml:"stretch,omitempty"`
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidDocument)
}

func vec3(field string, v []float32, def mgl32.Vec3) (mgl32.Vec3, error) {
	switch len(v) {
	case 0:
		return def, nil
	case 3:
		return mgl32.Vec3{v[0], v[1], v[2]}, nil
	default:
		return mgl32.Vec3{}, invalid("%s: want 3 components, got %d", field, len(v))
	}
}

func quat(field string, v []float32) (mgl32.Quat, error) {
	switch len(v) {
	case 0:
		return mgl32.QuatIdent(), nil
	case 4:
		q := mgl32.Quat{W: v[3], V: mgl32.Vec3{v[0], v[1], v[2]}}
		if q.Len() == 0 {
			return mgl32.Quat{}, invalid("%s: zero rotation", field)
		}
		return q.Normalize(), nil
	default:
		return mgl32.Quat{}, invalid("%s: want 4 components, got %d", field, len(v))
	}
}

func floats(v mgl32.Vec3) []float32 {
	return []float32{v[0], v[1], v[2]}
}
