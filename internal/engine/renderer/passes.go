package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/distortion/internal/engine/scene"
)

// Border is the width in pixels of the white frame around the barrel composite.
const Border = 6

// Colors of the wireframe overlays.
var (
	singleLineColor = [4]float32{0, 0, 0, 0.25}
	gridLineColor   = [4]float32{0, 0, 0, 0.5}
)

// DrawInstanced draws one filled, lit copy of mesh per batch instance, then its
// wireframe on top without writing depth.
func (r *Renderer) DrawInstanced(mesh *MeshHandle, batch *scene.InstanceBatch) {
	n := int32(batch.Len())
	if n == 0 {
		return
	}
	mvps := batch.MVPs()
	mat := batch.Material

	gl.Enable(gl.DEPTH_TEST)

	lit := r.programs.lit
	gl.UseProgram(lit.id)
	gl.Uniform3f(lit.loc.Uniform("SpecularMaterial"), mat.Specular[0], mat.Specular[1], mat.Specular[2])
	gl.Uniform4fv(lit.loc.Uniform("FrontMaterial"), 1, &mat.Front[0])
	gl.Uniform4fv(lit.loc.Uniform("BackMaterial"), 1, &mat.Back[0])
	gl.Uniform3fv(lit.loc.Uniform("Hhat"), n, &batch.Hhats()[0])
	gl.Uniform3fv(lit.loc.Uniform("Lhat"), n, &batch.Lhats()[0])
	gl.UniformMatrix4fv(lit.loc.Uniform("ModelviewProjection"), n, false, &mvps[0])

	gl.BindVertexArray(mesh.fillVAO)
	gl.DrawElementsInstanced(gl.TRIANGLES, mesh.fillCount, gl.UNSIGNED_SHORT, nil, n)

	if mesh.lineCount > 0 {
		simple := r.programs.simple
		gl.UseProgram(simple.id)
		gl.Uniform4fv(simple.loc.Uniform("Color"), 1, &mat.Line[0])
		gl.UniformMatrix4fv(simple.loc.Uniform("ModelviewProjection"), n, false, &mvps[0])

		gl.DepthMask(false)
		gl.BindVertexArray(mesh.lineVAO)
		gl.DrawElementsInstanced(gl.LINES, mesh.lineCount, gl.UNSIGNED_SHORT, nil, n)
		gl.DepthMask(true)
	}

	gl.BindVertexArray(0)
	gl.Disable(gl.DEPTH_TEST)
}

// DrawSingle draws the triangles of mesh as a translucent wireframe using the
// first instance of batch.
func (r *Renderer) DrawSingle(mesh *MeshHandle, batch *scene.InstanceBatch) {
	if batch.Len() == 0 {
		return
	}
	mvp := batch.Instances[0].MVP

	simple := r.programs.simple
	gl.UseProgram(simple.id)
	gl.Uniform4fv(simple.loc.Uniform("Color"), 1, &singleLineColor[0])
	gl.UniformMatrix4fv(simple.loc.Uniform("ModelviewProjection"), 1, false, mvp.Ptr())

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.BindVertexArray(mesh.fillVAO)
	gl.DrawElements(gl.TRIANGLES, mesh.fillCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// CompositeGrid draws the warped grid to the window, textured with the offscreen
// scene, with an optional line overlay.
func (r *Renderer) CompositeGrid(grid *MeshHandle, showLines bool, clear [4]float32) {
	if r.target == nil {
		return
	}
	r.target.Unbind()
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.programs.grid.id)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.target.ColorTexture())
	gl.BindVertexArray(grid.fillVAO)
	gl.DrawElements(gl.TRIANGLES, grid.fillCount, gl.UNSIGNED_SHORT, nil)

	if showLines && grid.lineCount > 0 {
		lines := r.programs.gridLines
		gl.UseProgram(lines.id)
		gl.Uniform4fv(lines.loc.Uniform("Color"), 1, &gridLineColor[0])
		gl.BindVertexArray(grid.lineVAO)
		gl.DrawElements(gl.LINES, grid.lineCount, gl.UNSIGNED_SHORT, nil)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// CompositeBarrel draws the offscreen scene to the window through the barrel
// distortion, inside a white border.
func (r *Renderer) CompositeBarrel(power float64) {
	if r.target == nil {
		return
	}
	r.target.Unbind()
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	w, h := insetSize(r.config.Width, r.config.Height)
	gl.Viewport(Border, Border, int32(w), int32(h))

	barrel := r.programs.barrel
	gl.UseProgram(barrel.id)
	gl.Uniform1f(barrel.loc.Uniform("BarrelPower"), float32(power))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.target.ColorTexture())

	gl.Disable(gl.BLEND)
	r.quad.draw()
	gl.Enable(gl.BLEND)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
}

// insetSize returns the viewport size left inside the border, at least 1x1.
func insetSize(width, height int) (int, int) {
	w, h := width-2*Border, height-2*Border
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
