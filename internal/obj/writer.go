package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Writer writes scenes as Wavefront OBJ
type Writer struct{}

// NewWriter creates a new OBJ writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write writes the scene to outputFile
func (w *Writer) Write(outputFile string, scene *Scene) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}

	if err := w.WriteTo(file, scene); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteTo writes the scene to out. Vertex order is preserved, texture
// coordinates split on load are appended after the original ones.
func (w *Writer) WriteTo(out io.Writer, scene *Scene) error {
	bw := bufio.NewWriter(out)

	fmt.Fprintf(bw, "# %d objects, written by gouvtile\n", len(scene.Objects))
	for _, lib := range scene.Libraries {
		fmt.Fprintf(bw, "mtllib %s\n", lib)
	}
	for _, v := range scene.Positions {
		fmt.Fprintf(bw, "v %s %s %s\n", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
	}
	for _, t := range scene.TexCoords {
		fmt.Fprintf(bw, "vt %s %s\n", formatFloat(t.U), formatFloat(t.V))
	}
	for _, n := range scene.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", formatFloat(n.X), formatFloat(n.Y), formatFloat(n.Z))
	}

	group := ""
	for _, obj := range scene.Objects {
		if obj.Group != group {
			fmt.Fprintf(bw, "g %s\n", obj.Group)
			group = obj.Group
		}
		fmt.Fprintf(bw, "o %s\n", obj.Name)

		material := ""
		for _, f := range obj.Faces {
			if f.Material != material {
				fmt.Fprintf(bw, "usemtl %s\n", f.Material)
				material = f.Material
			}
			corners := make([]string, len(f.Corners))
			for i, c := range f.Corners {
				corners[i] = formatCorner(c)
			}
			fmt.Fprintf(bw, "f %s\n", strings.Join(corners, " "))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing scene: %w", err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatCorner(c Corner) string {
	v := strconv.Itoa(c.V + 1)
	switch {
	case c.VT < 0 && c.VN < 0:
		return v
	case c.VN < 0:
		return v + "/" + strconv.Itoa(c.VT+1)
	case c.VT < 0:
		return v + "//" + strconv.Itoa(c.VN+1)
	default:
		return v + "/" + strconv.Itoa(c.VT+1) + "/" + strconv.Itoa(c.VN+1)
	}
}
