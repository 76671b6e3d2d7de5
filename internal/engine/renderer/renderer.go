// Package renderer draws the distortion scenes with OpenGL 4.1 core.
package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/distortion/internal/engine/framebuffer"
	"github.com/Faultbox/distortion/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	LineWidth float32
	// Offscreen renders the scene to a texture that a composite pass then draws.
	Offscreen bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	programs programs
	target   *framebuffer.Framebuffer
	quad     quad
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	var err error
	r.programs, err = compilePrograms()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to create shader programs: %w", err)
	}

	if cfg.Offscreen {
		r.target, err = framebuffer.New(int32(cfg.Width), int32(cfg.Height))
		if err != nil {
			r.Close()
			return nil, err
		}
		r.quad = newQuad()
		r.refitQuad()
	}

	r.setupState()

	if err := CheckError(); err != nil {
		r.Close()
		return nil, fmt.Errorf("renderer setup: %w", err)
	}
	return r, nil
}

func (r *Renderer) setupState() {
	gl.Enable(gl.LINE_SMOOTH)
	gl.Hint(gl.LINE_SMOOTH_HINT, gl.NICEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.POLYGON_OFFSET_FILL)
	gl.PolygonOffset(1, 1)

	if r.config.LineWidth > 1 {
		gl.LineWidth(r.config.LineWidth)
		// Forward-compatible contexts reject wide lines.
		if gl.GetError() != gl.NO_ERROR {
			logger.Debug("wide lines not supported", zap.Float32("width", r.config.LineWidth))
		}
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.quad.destroy()
	if r.target != nil {
		r.target.Destroy()
		r.target = nil
	}
	r.programs.destroy()
}

// Size returns the current viewport size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	if r.target != nil {
		r.target.Resize(int32(width), int32(height))
		r.refitQuad()
	}
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// BeginScene binds the scene target and clears it.
func (r *Renderer) BeginScene(clear [4]float32) {
	if r.target != nil {
		r.target.Bind()
	} else {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		gl.Viewport(0, 0, int32(r.config.Width), int32(r.config.Height))
	}
	gl.ClearColor(clear[0], clear[1], clear[2], clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels returns the window contents as bottom-up RGBA rows. Call it
// before the buffers are swapped.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	pixels = framebuffer.ReadPixels(0, int32(r.config.Width), int32(r.config.Height))
	return pixels, r.config.Width, r.config.Height
}

// CheckError returns the first pending OpenGL error, draining the rest.
func CheckError() error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	return fmt.Errorf("opengl error %s", ErrorName(code))
}

// ErrorName returns the symbolic name of an OpenGL error code.
func ErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("0x%x", code)
	}
}
