package renderer

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func TestInsetSize(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{480, 270, 468, 258},
		{12, 100, 1, 88},
		{0, 0, 1, 1},
	}

	for _, tt := range tests {
		w, h := insetSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("insetSize(%d, %d) = %d, %d, want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestErrorName(t *testing.T) {
	if got := ErrorName(gl.INVALID_OPERATION); got != "GL_INVALID_OPERATION" {
		t.Errorf("ErrorName(INVALID_OPERATION) = %q", got)
	}
	if got := ErrorName(0x1234); got != "0x1234" {
		t.Errorf("ErrorName(0x1234) = %q", got)
	}
}
