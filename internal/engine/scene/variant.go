// Package scene holds the per-frame state of the distortion demos: the animation
// angle, the camera, the instance transforms and the barrel warp.
package scene

import (
	"fmt"
	"strings"

	"github.com/Faultbox/distortion/pkg/math"
	"github.com/Faultbox/distortion/pkg/tessellate"
)

// Composite selects how the offscreen image reaches the screen.
type Composite int

const (
	// CompositeNone draws straight to the default framebuffer.
	CompositeNone Composite = iota
	// CompositeGrid textures the polar-warped grid with the offscreen image.
	CompositeGrid
	// CompositeBarrel draws a fitted quad through the barrel distortion shader.
	CompositeBarrel
)

// Variant describes one of the demos.
type Variant struct {
	Name        string
	Cylinder    tessellate.MeshKind
	CylinderRes tessellate.Resolution
	GridRes     tessellate.Resolution
	Composite   Composite
	Instanced   bool
	Eye         math.Vec3
	ClearColor  [4]float32
	Width       int
	Height      int
}

// Demo names.
const (
	Cylinders  = "cylinders"
	Original   = "original"
	BetterGrid = "bettergrid"
	Gridless   = "gridless"
)

var variants = map[string]Variant{
	Cylinders: {
		Name:        Cylinders,
		Cylinder:    tessellate.KindWrappedCylinder,
		CylinderRes: tessellate.Resolution{Rows: 16, Cols: 32},
		Eye:         math.Vec3{Z: 4},
		ClearColor:  [4]float32{0.9, 0.9, 1.0, 1},
		Width:       853,
		Height:      480,
	},
	Original: {
		Name:        Original,
		Cylinder:    tessellate.KindCylinder,
		CylinderRes: tessellate.Resolution{Rows: 8, Cols: 24},
		Instanced:   true,
		Eye:         math.Vec3{Y: 1, Z: 4},
		ClearColor:  [4]float32{0.9, 0.9, 1.0, 1},
		Width:       853 * 3 / 2,
		Height:      480 * 3 / 2,
	},
	BetterGrid: {
		Name:        BetterGrid,
		Cylinder:    tessellate.KindCylinder,
		CylinderRes: tessellate.Resolution{Rows: 8, Cols: 24},
		GridRes:     tessellate.Resolution{Rows: 20, Cols: 36},
		Composite:   CompositeGrid,
		Instanced:   true,
		Eye:         math.Vec3{Y: 1, Z: 4},
		ClearColor:  [4]float32{0.9, 0.9, 1.0, 1},
		Width:       853 * 3 / 2,
		Height:      480 * 3 / 2,
	},
	Gridless: {
		Name:        Gridless,
		Cylinder:    tessellate.KindCylinder,
		CylinderRes: tessellate.Resolution{Rows: 8, Cols: 24},
		Composite:   CompositeBarrel,
		Instanced:   true,
		Eye:         math.Vec3{Y: 1, Z: 4},
		ClearColor:  [4]float32{0.8, 0.8, 0.9, 1},
		Width:       1920 / 4,
		Height:      1080 / 4,
	},
}

// LookupVariant returns the demo with the given name.
func LookupVariant(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, fmt.Errorf("unknown variant %q (have %s)", name, strings.Join(VariantNames(), ", "))
	}
	return v, nil
}

// VariantNames lists the demo names in a stable order.
func VariantNames() []string {
	return []string{Cylinders, Original, BetterGrid, Gridless}
}

// HasGrid reports whether the variant composites through the warped grid.
func (v Variant) HasGrid() bool {
	return v.Composite == CompositeGrid
}

// Offscreen reports whether the scene is rendered to a texture first.
func (v Variant) Offscreen() bool {
	return v.Composite != CompositeNone
}

// WithResolution overrides the mesh resolutions; zero fields keep the defaults.
func (v Variant) WithResolution(cylinder, grid tessellate.Resolution) Variant {
	if cylinder.Rows > 0 {
		v.CylinderRes.Rows = cylinder.Rows
	}
	if cylinder.Cols > 0 {
		v.CylinderRes.Cols = cylinder.Cols
	}
	if grid.Rows > 0 {
		v.GridRes.Rows = grid.Rows
	}
	if grid.Cols > 0 {
		v.GridRes.Cols = grid.Cols
	}
	return v
}
