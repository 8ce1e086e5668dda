// Package obj reads and writes Wavefront OBJ scenes and exposes them as a
// layout host.
//
// Objects are started by "o" statements and "g" statements name the group the
// following objects belong to. Files without any "o" statement, as written by
// most DCC exporters, treat every "g" as an ungrouped object instead.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/gouvtile/internal/geometry"
)

// Vector3 is a position or normal
type Vector3 struct {
	X, Y, Z float64
}

// Corner references the position, texture coordinate and normal of one face
// corner. Indices are 0-based, -1 means absent.
type Corner struct {
	V, VT, VN int
}

// Face is a polygon
type Face struct {
	Corners  []Corner
	Material string
}

// Object is a mesh in the scene
type Object struct {
	Name  string
	Group string
	Faces []Face
}

// Parser parses OBJ files
type Parser struct{}

// NewParser creates a new OBJ parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an OBJ file and returns the scene
func (p *Parser) Parse(filename string) (*Scene, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	scene, err := p.ParseReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filename), err)
	}
	scene.Name = filepath.Base(filename)
	return scene, nil
}

type rawObject struct {
	name  string
	group string
	faces []Face
}

// ParseReader parses OBJ data from r
func (p *Parser) ParseReader(r io.Reader) (*Scene, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	hasO := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "o" || strings.HasPrefix(line, "o ") {
			hasO = true
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	var (
		positions []Vector3
		texCoords []geometry.Point
		normals   []Vector3
		libs      []string
		objects   []*rawObject
		current   *rawObject
		group     string
		material  string
	)

	start := func(name, grp string) {
		if name == "" {
			name = fmt.Sprintf("object%d", len(objects)+1)
		}
		current = &rawObject{name: name, group: grp}
		objects = append(objects, current)
	}

	for i, line := range lines {
		lineNo := i + 1
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "v":
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNo, err)
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid normal: %w", lineNo, err)
			}
			normals = append(normals, v)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texture coordinate needs u and v", lineNo)
			}
			u, errU := strconv.ParseFloat(fields[1], 64)
			v, errV := strconv.ParseFloat(fields[2], 64)
			if errU != nil || errV != nil {
				return nil, fmt.Errorf("line %d: invalid texture coordinate", lineNo)
			}
			texCoords = append(texCoords, geometry.Point{U: u, V: v})
		case "o":
			start(joinName(fields), group)
		case "g":
			if hasO {
				group = joinName(fields)
			} else {
				start(joinName(fields), "")
			}
		case "usemtl":
			material = joinName(fields)
		case "mtllib":
			libs = append(libs, joinName(fields))
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners", lineNo)
			}
			face := Face{Material: material}
			for _, tok := range fields[1:] {
				c, err := parseCorner(tok, len(positions), len(texCoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				face.Corners = append(face.Corners, c)
			}
			if current == nil {
				start("", group)
			}
			current.faces = append(current.faces, face)
		default:
			// s, l, p and other statements do not affect UV layout
		}
	}

	return newScene(positions, texCoords, normals, libs, objects), nil
}

func joinName(fields []string) string {
	if len(fields) < 2 {
		return ""
	}
	return strings.Join(fields[1:], " ")
}

func parseVector(fields []string) (Vector3, error) {
	if len(fields) < 3 {
		return Vector3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v Vector3
	var err error
	if v.X, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return v, err
	}
	if v.Y, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return v, err
	}
	if v.Z, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return v, err
	}
	return v, nil
}

// parseCorner parses "v", "v/vt", "v//vn" or "v/vt/vn"
func parseCorner(tok string, nv, nvt, nvn int) (Corner, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return Corner{}, fmt.Errorf("invalid face corner %q", tok)
	}

	c := Corner{V: -1, VT: -1, VN: -1}
	var err error
	if c.V, err = resolveIndex(parts[0], nv); err != nil {
		return Corner{}, fmt.Errorf("invalid vertex index in %q: %w", tok, err)
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.VT, err = resolveIndex(parts[1], nvt); err != nil {
			return Corner{}, fmt.Errorf("invalid texture index in %q: %w", tok, err)
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.VN, err = resolveIndex(parts[2], nvn); err != nil {
			return Corner{}, fmt.Errorf("invalid normal index in %q: %w", tok, err)
		}
	}
	return c, nil
}

// resolveIndex turns a 1-based or negative relative OBJ index into a 0-based one
func resolveIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0 && i <= count:
		return i - 1, nil
	case i < 0 && -i <= count:
		return count + i, nil
	default:
		return 0, fmt.Errorf("index %d out of range (have %d)", i, count)
	}
}
