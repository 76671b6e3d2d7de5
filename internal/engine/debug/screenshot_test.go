package debug

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/image/bmp"
)

// twoRows returns a 1x2 bottom-up buffer: red on the bottom row, blue on top.
func twoRows() []byte {
	return []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
}

func TestFlipRGBA(t *testing.T) {
	img, err := FlipRGBA(twoRows(), 1, 2)
	if err != nil {
		t.Fatalf("FlipRGBA: %v", err)
	}

	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 1)
	if top != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", top)
	}
	if bottom != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", bottom)
	}
}

func TestFlipRGBASizeMismatch(t *testing.T) {
	if _, err := FlipRGBA(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := FlipRGBA(nil, 0, 0); err == nil {
		t.Error("expected invalid size error")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{" bmp ", FormatBMP, false},
		{"jpeg", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCaptureBMP(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(filepath.Join(dir, "shots"), "gridless", FormatBMP)
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	path, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if !strings.HasSuffix(path, "gridless_2024-05-01_12-00-00.000.bmp") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading screenshot: %v", err)
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding BMP: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 1, 2) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b == 0 {
		t.Errorf("top pixel should be blue, got r=%d b=%d", r, b)
	}
}

func TestCapturePNG(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "original", "")

	path, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Errorf("expected .png extension, got %s", path)
	}
}
