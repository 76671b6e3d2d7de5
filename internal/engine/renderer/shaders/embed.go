// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// LitVertexShader transforms cylinder instances by their ModelviewProjection entry.
//
//go:embed lit.vert
var LitVertexShader string

// LitGeometryShader computes the object-space facet normal of each triangle.
//
//go:embed lit.geom
var LitGeometryShader string

// LitFragmentShader shades with per-instance Blinn-Phong vectors and two-sided materials.
//
//go:embed lit.frag
var LitFragmentShader string

// SimpleVertexShader is the vertex shader for flat-colored instanced lines.
//
//go:embed simple.vert
var SimpleVertexShader string

// SimpleFragmentShader outputs a single uniform color.
//
//go:embed simple.frag
var SimpleFragmentShader string

// GridVertexShader passes warped grid positions and texture coordinates through.
//
//go:embed grid.vert
var GridVertexShader string

// GridFragmentShader samples the offscreen scene texture.
//
//go:embed grid.frag
var GridFragmentShader string

// BarrelVertexShader is the vertex shader for the fitted composite quad.
//
//go:embed barrel.vert
var BarrelVertexShader string

// BarrelFragmentShader applies the per-pixel barrel distortion.
//
//go:embed barrel.frag
var BarrelFragmentShader string
