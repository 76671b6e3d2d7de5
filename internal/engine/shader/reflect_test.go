package shader

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lhat[0]", "Lhat"},
		{"ModelviewProjection[0]", "ModelviewProjection"},
		{"BarrelPower", "BarrelPower"},
		{"Color\x00\x00", "Color"},
		{"Light[1]", "Light[1]"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocationsLookup(t *testing.T) {
	l := newLocations(
		map[string]int32{"Hhat": 3, "Color": 0},
		map[string]int32{"Position": 0, "TexCoord": 1},
	)

	if got := l.Uniform("Hhat"); got != 3 {
		t.Errorf("Uniform(Hhat) = %d, want 3", got)
	}
	if got := l.Uniform("Missing"); got != -1 {
		t.Errorf("Uniform(Missing) = %d, want -1", got)
	}
	if got := l.Attrib("TexCoord"); got != 1 {
		t.Errorf("Attrib(TexCoord) = %d, want 1", got)
	}
	if got := l.Uniforms(); got != 2 {
		t.Errorf("Uniforms() = %d, want 2", got)
	}
}

func TestRequire(t *testing.T) {
	l := newLocations(map[string]int32{"Color": 0}, nil)

	if err := l.Require("Color"); err != nil {
		t.Errorf("Require(Color) error = %v", err)
	}
	if err := l.Require("Color", "Hhat", "Lhat"); err == nil {
		t.Error("Require should report inactive uniforms")
	}
}
