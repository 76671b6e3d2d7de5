package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/distortion/pkg/tessellate"
)

// quad is the four-vertex strip the barrel composite is drawn with.
type quad struct {
	vao uint32
	vbo uint32
}

func newQuad() quad {
	var q quad
	gl.GenVertexArrays(1, &q.vao)
	gl.BindVertexArray(q.vao)
	gl.GenBuffers(1, &q.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 16*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(AttribPosition, 2, gl.FLOAT, false, 16, 0)
	gl.EnableVertexAttribArray(AttribPosition)
	gl.VertexAttribPointerWithOffset(AttribTexCoord, 2, gl.FLOAT, false, 16, 8)
	gl.EnableVertexAttribArray(AttribTexCoord)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return q
}

// refitQuad fits the offscreen image into the bordered viewport. The texture
// is bottom-up, hence the negative source height.
func (r *Renderer) refitQuad() {
	if r.quad.vbo == 0 || r.target == nil {
		return
	}
	srcW, srcH := r.target.Size()
	dstW, dstH := insetSize(r.config.Width, r.config.Height)
	verts := tessellate.FitQuad(int(srcW), -int(srcH), dstW, dstH)

	gl.BindBuffer(gl.ARRAY_BUFFER, r.quad.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (q *quad) draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func (q *quad) destroy() {
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
		q.vao = 0
	}
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
		q.vbo = 0
	}
}
