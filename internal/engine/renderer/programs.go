package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/distortion/internal/engine/renderer/shaders"
	"github.com/Faultbox/distortion/internal/engine/shader"
	"github.com/Faultbox/distortion/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex attribute slots shared by every program.
const (
	AttribPosition = 0
	AttribTexCoord = 1
)

// program is a linked program with its reflected locations.
type program struct {
	id  uint32
	loc *shader.Locations
}

type programs struct {
	lit       program // instanced two-sided Blinn-Phong fill
	simple    program // instanced flat color lines
	grid      program // textured warped grid
	gridLines program // grid overlay in a flat color
	barrel    program // fitted quad through the barrel distortion
}

func compilePrograms() (programs, error) {
	var p programs
	specs := []struct {
		name     string
		dst      *program
		src      shader.Sources
		required []string
	}{
		{
			name: "lit",
			dst:  &p.lit,
			src: shader.Sources{
				Vertex:   shaders.LitVertexShader,
				Geometry: shaders.LitGeometryShader,
				Fragment: shaders.LitFragmentShader,
			},
			required: []string{"ModelviewProjection", "Lhat", "Hhat", "FrontMaterial", "BackMaterial", "SpecularMaterial"},
		},
		{
			name:     "simple",
			dst:      &p.simple,
			src:      shader.Sources{Vertex: shaders.SimpleVertexShader, Fragment: shaders.SimpleFragmentShader},
			required: []string{"ModelviewProjection", "Color"},
		},
		{
			name:     "grid",
			dst:      &p.grid,
			src:      shader.Sources{Vertex: shaders.GridVertexShader, Fragment: shaders.GridFragmentShader},
			required: []string{"Scene"},
		},
		{
			name:     "grid lines",
			dst:      &p.gridLines,
			src:      shader.Sources{Vertex: shaders.GridVertexShader, Fragment: shaders.SimpleFragmentShader},
			required: []string{"Color"},
		},
		{
			name:     "barrel",
			dst:      &p.barrel,
			src:      shader.Sources{Vertex: shaders.BarrelVertexShader, Fragment: shaders.BarrelFragmentShader},
			required: []string{"Scene", "BarrelPower"},
		},
	}

	for _, s := range specs {
		id, err := shader.Compile(s.src)
		if err != nil {
			p.destroy()
			return programs{}, fmt.Errorf("%s program: %w", s.name, err)
		}
		*s.dst = program{id: id}

		loc, err := shader.Reflect(id)
		if err != nil {
			p.destroy()
			return programs{}, fmt.Errorf("%s program: %w", s.name, err)
		}
		if err := loc.Require(s.required...); err != nil {
			p.destroy()
			return programs{}, fmt.Errorf("%s program: %w", s.name, err)
		}
		s.dst.loc = loc

		logger.Debug("shader program created",
			zap.String("name", s.name),
			zap.Uint32("program", id),
			zap.Int("uniforms", loc.Uniforms()),
		)
	}

	// Samplers always read texture unit 0.
	for _, sp := range []program{p.grid, p.barrel} {
		gl.UseProgram(sp.id)
		gl.Uniform1i(sp.loc.Uniform("Scene"), 0)
	}
	gl.UseProgram(0)

	return p, nil
}

func (p *programs) destroy() {
	for _, pr := range []*program{&p.lit, &p.simple, &p.grid, &p.gridLines, &p.barrel} {
		if pr.id != 0 {
			gl.DeleteProgram(pr.id)
			pr.id = 0
		}
	}
}
