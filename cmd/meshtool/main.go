// meshtool is a CLI utility for inspecting and exporting the demo meshes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/distortion/internal/engine/scene"
	"github.com/Faultbox/distortion/pkg/math"
	"github.com/Faultbox/distortion/pkg/meshio"
	"github.com/Faultbox/distortion/pkg/tessellate"
)

// Default resolutions per kind, matching the demos.
var defaultRes = map[tessellate.MeshKind]tessellate.Resolution{
	tessellate.KindCylinder:        {Rows: 8, Cols: 24},
	tessellate.KindWrappedCylinder: {Rows: 16, Cols: 32},
	tessellate.KindGrid:            {Rows: 20, Cols: 36},
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "kinds":
		cmdKinds()
	case "variants":
		cmdVariants()
	case "info":
		cmdInfo(args)
	case "export", "x":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - distortion mesh utility

Usage:
  meshtool <command> [options]

Commands:
  kinds                                  List mesh kinds
  variants                               List demo variants
  info [-rows N -cols N] <kind>          Show element counts
  export [options] <kind> <out.glb>      Write the mesh as binary glTF

Export options:
  -rows, -cols   Resolution (default: the demo resolution)
  -lines         Add the wireframe as a second primitive
  -instances     Place the seven instanced cylinders
  -theta         Animation angle for -instances (radians)

Examples:
  meshtool info cylinder
  meshtool info -rows 40 -cols 72 grid
  meshtool export -instances -theta 0.8 cylinder scene.glb`)
}

func cmdKinds() {
	for _, k := range tessellate.Kinds() {
		res := defaultRes[k]
		fmt.Printf("  %-18s default %s\n", k, res)
	}
}

func cmdVariants() {
	for _, name := range scene.VariantNames() {
		v, err := scene.LookupVariant(name)
		if err != nil {
			continue
		}
		fmt.Printf("  %-12s %s %s, %dx%d", v.Name, v.Cylinder, v.CylinderRes, v.Width, v.Height)
		if v.HasGrid() {
			fmt.Printf(", grid %s", v.GridRes)
		}
		fmt.Println()
	}
}

// parseMesh reads the kind argument and resolution flags and builds the mesh.
func parseMesh(kindArg string, rows, cols int) (*tessellate.Mesh, error) {
	kind, err := tessellate.ParseKind(kindArg)
	if err != nil {
		return nil, err
	}
	res := defaultRes[kind]
	if rows > 0 {
		res.Rows = rows
	}
	if cols > 0 {
		res.Cols = cols
	}
	return tessellate.Build(kind, res)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	rows := fs.Int("rows", 0, "Rows (stacks)")
	cols := fs.Int("cols", 0, "Columns (slices)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info [-rows N -cols N] <kind>")
		os.Exit(1)
	}

	m, err := parseMesh(fs.Arg(0), *rows, *cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	c := m.Counts()
	fmt.Printf("Mesh:      %s\n", m.Name)
	fmt.Printf("Vertices:  %d\n", c.Vertices)
	fmt.Printf("Triangles: %d (%d drawn)\n", c.Fill/3, m.FillDrawCount/3)
	fmt.Printf("Segments:  %d\n", c.Lines/2)
	fmt.Printf("Stride:    %d bytes\n", m.Stride())
	fmt.Printf("Buffers:   %.1f KB\n", float64(c.Vertices*m.Stride()+(c.Fill+c.Lines)*2)/1024)
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	rows := fs.Int("rows", 0, "Rows (stacks)")
	cols := fs.Int("cols", 0, "Columns (slices)")
	lines := fs.Bool("lines", false, "Include the line primitive")
	instances := fs.Bool("instances", false, "Export the instanced scene")
	theta := fs.Float64("theta", 0, "Animation angle in radians")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool export [options] <kind> <out.glb>")
		os.Exit(1)
	}

	m, err := parseMesh(fs.Arg(0), *rows, *cols)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := meshio.Options{Lines: *lines}
	if *instances {
		models := scene.ModelMatrices(float32(*theta))
		opts.Instances = append([]math.Mat4(nil), models[:]...)
	}

	out := fs.Arg(1)
	if err := meshio.Export(out, m, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d vertices", out, m.VertexCount())
	if *instances {
		fmt.Printf(", %d instances", len(opts.Instances))
	}
	fmt.Println(")")
}
