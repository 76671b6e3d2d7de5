// Package meshio writes tessellated meshes to glTF 2.0 binary files.
package meshio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/distortion/pkg/math"
	"github.com/Faultbox/distortion/pkg/tessellate"
)

// Options controls what goes into an exported document.
type Options struct {
	// Lines adds the wireframe index buffer as a second primitive.
	Lines bool
	// Instances places one node per model matrix. An empty list places the mesh
	// once at the origin.
	Instances []math.Mat4
}

// Document builds a glTF document holding m. Fill and line primitives share the
// same vertex attributes.
func Document(m *tessellate.Mesh, opts Options) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, len(m.Vertices))
	for i, v := range m.Vertices {
		positions[i] = v.Position.Array()
	}

	attrs := gltf.PrimitiveAttributes{
		gltf.POSITION: modeler.WritePosition(doc, positions),
	}
	if m.HasTexCoords {
		uvs := make([][2]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			uvs[i] = v.TexCoord.Array()
		}
		attrs[gltf.TEXCOORD_0] = modeler.WriteTextureCoord(doc, uvs)
	}

	prims := []*gltf.Primitive{{
		Mode:       gltf.PrimitiveTriangles,
		Indices:    gltf.Index(modeler.WriteIndices(doc, m.Fill[:m.FillDrawCount])),
		Attributes: attrs,
	}}
	if opts.Lines && len(m.Lines) > 0 {
		prims = append(prims, &gltf.Primitive{
			Mode:       gltf.PrimitiveLines,
			Indices:    gltf.Index(modeler.WriteIndices(doc, m.Lines)),
			Attributes: attrs,
		})
	}

	doc.Meshes = []*gltf.Mesh{{Name: m.Name, Primitives: prims}}

	if len(opts.Instances) == 0 {
		doc.Nodes = []*gltf.Node{{Name: m.Name, Mesh: gltf.Index(0)}}
	} else {
		for i, model := range opts.Instances {
			doc.Nodes = append(doc.Nodes, &gltf.Node{
				Name:   fmt.Sprintf("%s.%d", m.Name, i),
				Mesh:   gltf.Index(0),
				Matrix: toFloat64(model),
			})
		}
	}
	for i := range doc.Nodes {
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, i)
	}

	return doc
}

// Write encodes m as a binary glTF stream.
func Write(w io.Writer, m *tessellate.Mesh, opts Options) error {
	enc := gltf.NewEncoder(w)
	enc.AsBinary = true
	if err := enc.Encode(Document(m, opts)); err != nil {
		return fmt.Errorf("encoding %s: %w", m.Name, err)
	}
	return nil
}

// Export writes m to path as a .glb file, creating parent directories.
func Export(path string, m *tessellate.Mesh, opts Options) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := Write(f, m, opts); err != nil {
		return err
	}
	return f.Close()
}

func toFloat64(m math.Mat4) [16]float64 {
	var out [16]float64
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}
