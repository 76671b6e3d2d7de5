package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/distortion/internal/logger"
	"github.com/Faultbox/distortion/pkg/tessellate"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// MeshHandle is a tessellated mesh living on the GPU: one vertex buffer shared by
// a fill VAO and a line VAO.
type MeshHandle struct {
	Name string

	vbo     uint32
	fillEBO uint32
	lineEBO uint32
	fillVAO uint32
	lineVAO uint32

	fillCount int32
	lineCount int32
}

// UploadMesh copies m into GPU buffers. m is not referenced afterwards.
func (r *Renderer) UploadMesh(m *tessellate.Mesh) (*MeshHandle, error) {
	if m.VertexCount() == 0 || m.FillIndexCount() == 0 {
		return nil, fmt.Errorf("uploading mesh %q: no geometry", m.Name)
	}

	h := &MeshHandle{
		Name:      m.Name,
		fillCount: int32(m.FillDrawCount),
		lineCount: int32(m.LineIndexCount()),
	}

	data := m.Interleaved()
	stride := int32(m.Stride())

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	// Fill VAO
	gl.GenVertexArrays(1, &h.fillVAO)
	gl.BindVertexArray(h.fillVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.GenBuffers(1, &h.fillEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.fillEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Fill)*2, gl.Ptr(m.Fill), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(AttribPosition)
	if m.HasTexCoords {
		gl.VertexAttribPointerWithOffset(AttribTexCoord, 2, gl.FLOAT, false, stride, 12)
		gl.EnableVertexAttribArray(AttribTexCoord)
	}

	// Line VAO, positions only
	gl.GenVertexArrays(1, &h.lineVAO)
	gl.BindVertexArray(h.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	if len(m.Lines) > 0 {
		gl.GenBuffers(1, &h.lineEBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, h.lineEBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Lines)*2, gl.Ptr(m.Lines), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(AttribPosition)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if err := CheckError(); err != nil {
		h.destroy()
		return nil, fmt.Errorf("uploading mesh %q: %w", m.Name, err)
	}

	logger.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("fill", int(h.fillCount)),
		zap.Int("lines", int(h.lineCount)),
	)
	return h, nil
}

// DeleteMesh releases the GPU buffers of h.
func (r *Renderer) DeleteMesh(h *MeshHandle) {
	if h != nil {
		h.destroy()
	}
}

func (h *MeshHandle) destroy() {
	if h.fillVAO != 0 {
		gl.DeleteVertexArrays(1, &h.fillVAO)
		h.fillVAO = 0
	}
	if h.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &h.lineVAO)
		h.lineVAO = 0
	}
	for _, b := range []*uint32{&h.vbo, &h.fillEBO, &h.lineEBO} {
		if *b != 0 {
			gl.DeleteBuffers(1, b)
			*b = 0
		}
	}
}
