package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// maxNameLength bounds the names read back from the driver.
const maxNameLength = 256

// Locations maps the active uniform and attribute names of a linked program to
// their locations. Array uniforms are stored under their bare name.
type Locations struct {
	Program  uint32
	uniforms map[string]int32
	attribs  map[string]int32
}

// Reflect enumerates the active uniforms and attributes of program.
func Reflect(program uint32) (*Locations, error) {
	var linked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &linked)
	if linked == gl.FALSE {
		return nil, fmt.Errorf("program %d is not linked", program)
	}

	loc := &Locations{
		Program:  program,
		uniforms: make(map[string]int32),
		attribs:  make(map[string]int32),
	}

	var count int32
	buf := make([]uint8, maxNameLength)

	gl.GetProgramiv(program, gl.ACTIVE_UNIFORMS, &count)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var kind uint32
		gl.GetActiveUniform(program, i, maxNameLength, &length, &size, &kind, &buf[0])
		name := NormalizeName(string(buf[:length]))
		loc.uniforms[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}

	gl.GetProgramiv(program, gl.ACTIVE_ATTRIBUTES, &count)
	for i := uint32(0); i < uint32(count); i++ {
		var length, size int32
		var kind uint32
		gl.GetActiveAttrib(program, i, maxNameLength, &length, &size, &kind, &buf[0])
		name := NormalizeName(string(buf[:length]))
		loc.attribs[name] = gl.GetAttribLocation(program, gl.Str(name+"\x00"))
	}

	return loc, nil
}

// NormalizeName strips the "[0]" suffix drivers report for array uniforms.
func NormalizeName(name string) string {
	name = strings.TrimRight(name, "\x00")
	return strings.TrimSuffix(name, "[0]")
}

// Uniform returns the location of the named uniform, or -1 if it is not active.
func (l *Locations) Uniform(name string) int32 {
	if loc, ok := l.uniforms[name]; ok {
		return loc
	}
	return -1
}

// Attrib returns the location of the named attribute, or -1 if it is not active.
func (l *Locations) Attrib(name string) int32 {
	if loc, ok := l.attribs[name]; ok {
		return loc
	}
	return -1
}

// Uniforms returns the number of active uniforms.
func (l *Locations) Uniforms() int {
	return len(l.uniforms)
}

// Require checks that every name is an active uniform.
func (l *Locations) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := l.uniforms[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("program %d: inactive uniforms %s", l.Program, strings.Join(missing, ", "))
	}
	return nil
}

// newLocations builds a Locations from known tables, for tests.
func newLocations(uniforms, attribs map[string]int32) *Locations {
	return &Locations{uniforms: uniforms, attribs: attribs}
}
