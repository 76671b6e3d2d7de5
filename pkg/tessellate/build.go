package tessellate

import (
	"fmt"
	"strings"
)

// MeshKind names one of the surfaces this package can produce.
type MeshKind int

const (
	KindCylinder MeshKind = iota
	KindWrappedCylinder
	KindGrid
)

var kindNames = map[MeshKind]string{
	KindCylinder:        "cylinder",
	KindWrappedCylinder: "cylinder-wrapped",
	KindGrid:            "grid",
}

// String returns the kind name.
func (k MeshKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("MeshKind(%d)", int(k))
}

// ParseKind converts a kind name to a MeshKind.
func ParseKind(name string) (MeshKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown mesh kind %q", name)
}

// Kinds returns all mesh kinds in declaration order.
func Kinds() []MeshKind {
	return []MeshKind{KindCylinder, KindWrappedCylinder, KindGrid}
}

// Resolution is the number of cells along s (Rows: stacks or grid rows) and
// along t (Cols: slices or grid columns).
type Resolution struct {
	Rows int `yaml:"rows" toml:"rows"`
	Cols int `yaml:"cols" toml:"cols"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Rows, r.Cols)
}

// ExpectedCounts returns the closed-form counts for kind at res.
func ExpectedCounts(kind MeshKind, res Resolution) (Counts, error) {
	switch kind {
	case KindCylinder:
		return CylinderCounts(res.Rows, res.Cols), nil
	case KindWrappedCylinder:
		return WrappedCylinderCounts(res.Rows, res.Cols), nil
	case KindGrid:
		return GridCounts(res.Rows, res.Cols), nil
	default:
		return Counts{}, fmt.Errorf("unknown mesh kind: %v", kind)
	}
}

// Build tessellates the surface named by kind.
func Build(kind MeshKind, res Resolution) (*Mesh, error) {
	switch kind {
	case KindCylinder:
		return Cylinder(res.Rows, res.Cols, SeamDuplicated)
	case KindWrappedCylinder:
		return Cylinder(res.Rows, res.Cols, SeamWrapped)
	case KindGrid:
		return Grid(res.Rows, res.Cols)
	default:
		return nil, fmt.Errorf("unknown mesh kind: %v", kind)
	}
}

// MustBuild is like Build but panics on error. Resolutions are startup constants,
// so a failure here is a bug.
func MustBuild(kind MeshKind, res Resolution) *Mesh {
	m, err := Build(kind, res)
	if err != nil {
		panic(err)
	}
	return m
}
