// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Sources holds the GLSL stages of one program. Geometry is optional.
type Sources struct {
	Vertex   string
	Geometry string
	Fragment string
}

// Compile compiles every stage in src and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func Compile(src Sources) (uint32, error) {
	stages := []struct {
		source string
		kind   uint32
		name   string
	}{
		{src.Vertex, gl.VERTEX_SHADER, "vertex"},
		{src.Geometry, gl.GEOMETRY_SHADER, "geometry"},
		{src.Fragment, gl.FRAGMENT_SHADER, "fragment"},
	}

	program := gl.CreateProgram()
	for _, st := range stages {
		if st.source == "" {
			if st.kind == gl.GEOMETRY_SHADER {
				continue
			}
			gl.DeleteProgram(program)
			return 0, fmt.Errorf("%s shader: empty source", st.name)
		}
		sh, err := compileShader(st.source, st.kind, st.name)
		if err != nil {
			gl.DeleteProgram(program)
			return 0, err
		}
		gl.AttachShader(program, sh)
		// Flagged for deletion; freed once the program is deleted.
		defer gl.DeleteShader(sh)
	}

	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}
