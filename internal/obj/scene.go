package obj

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gouvtile/internal/geometry"
	"github.com/philipparndt/gouvtile/internal/host"
)

// Scene is a parsed OBJ file. It implements host.Host with objects as
// surfaces and groups as their parents.
type Scene struct {
	Name      string
	Positions []Vector3
	TexCoords []geometry.Point
	Normals   []Vector3
	Libraries []string
	Objects   []*Object

	byName    map[string]int
	groups    map[string][]string
	topLevel  []string
	texOwned  map[string][]int
	selection []string
}

var _ host.Host = (*Scene)(nil)

func newScene(positions []Vector3, texCoords []geometry.Point, normals []Vector3, libs []string, raw []*rawObject) *Scene {
	s := &Scene{
		Positions: positions,
		TexCoords: texCoords,
		Normals:   normals,
		Libraries: libs,
		byName:    make(map[string]int),
		groups:    make(map[string][]string),
		texOwned:  make(map[string][]int),
	}

	seenTop := make(map[string]bool)
	owner := make(map[int]string)
	for _, r := range raw {
		if len(r.faces) == 0 {
			continue
		}
		obj := &Object{Name: s.uniqueName(r.name), Group: r.group, Faces: r.faces}
		s.splitSharedTexCoords(obj, owner)
		s.byName[obj.Name] = len(s.Objects)
		s.Objects = append(s.Objects, obj)

		top := obj.Name
		if obj.Group != "" {
			top = obj.Group
			s.groups[obj.Group] = append(s.groups[obj.Group], obj.Name)
		}
		if !seenTop[top] {
			seenTop[top] = true
			s.topLevel = append(s.topLevel, top)
		}
	}
	return s
}

func (s *Scene) uniqueName(name string) string {
	if _, taken := s.byName[name]; !taken {
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s_%d", name, i)
		if _, taken := s.byName[candidate]; !taken {
			return candidate
		}
	}
}

// splitSharedTexCoords gives obj its own copy of every texture coordinate an
// earlier object already uses, so moving one object never drags another.
func (s *Scene) splitSharedTexCoords(obj *Object, owner map[int]string) {
	remap := make(map[int]int)
	var owned []int
	for fi := range obj.Faces {
		corners := obj.Faces[fi].Corners
		for ci := range corners {
			vt := corners[ci].VT
			if vt < 0 {
				continue
			}
			if mapped, ok := remap[vt]; ok {
				corners[ci].VT = mapped
				continue
			}
			mapped := vt
			if o, taken := owner[vt]; taken && o != obj.Name {
				mapped = len(s.TexCoords)
				s.TexCoords = append(s.TexCoords, s.TexCoords[vt])
			}
			owner[mapped] = obj.Name
			remap[vt] = mapped
			owned = append(owned, mapped)
			corners[ci].VT = mapped
		}
	}
	sort.Ints(owned)
	s.texOwned[obj.Name] = owned
}

// Object returns the object with the given name
func (s *Scene) Object(name string) (*Object, bool) {
	i, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.Objects[i], true
}

// TopLevel returns groups and ungrouped objects in file order
func (s *Scene) TopLevel() []string {
	return append([]string(nil), s.topLevel...)
}

// Select sets the nodes the arrangement works on. An empty list selects every
// top-level node.
func (s *Scene) Select(names []string) error {
	if len(names) == 0 {
		s.selection = s.TopLevel()
		return nil
	}
	for _, n := range names {
		_, isObject := s.byName[n]
		_, isGroup := s.groups[n]
		if !isObject && !isGroup {
			return fmt.Errorf("no object or group named %q", n)
		}
	}
	s.selection = append([]string(nil), names...)
	return nil
}

func (s *Scene) Selection() []string {
	return append([]string(nil), s.selection...)
}

func (s *Scene) ChildrenOf(handle string) ([]string, error) {
	if children, ok := s.groups[handle]; ok {
		return append([]string(nil), children...), nil
	}
	if _, ok := s.byName[handle]; ok {
		return nil, nil
	}
	return nil, fmt.Errorf("no object or group named %q", handle)
}

func (s *Scene) object(handle string) (*Object, error) {
	obj, ok := s.Object(handle)
	if !ok {
		return nil, fmt.Errorf("no object named %q", handle)
	}
	return obj, nil
}

func (s *Scene) BoundingBox(handle string) (geometry.BoundingBox, error) {
	if _, err := s.object(handle); err != nil {
		return geometry.BoundingBox{}, err
	}
	box := geometry.NewBoundingBox()
	for _, vt := range s.texOwned[handle] {
		box.Extend(s.TexCoords[vt])
	}
	return box, nil
}

func (s *Scene) TopologyCounts(handle string) (host.Counts, error) {
	obj, err := s.object(handle)
	if err != nil {
		return host.Counts{}, err
	}

	vertices := make(map[int]struct{})
	edges := make(map[[2]int]struct{})
	for _, f := range obj.Faces {
		n := len(f.Corners)
		for i, c := range f.Corners {
			vertices[c.V] = struct{}{}
			a, b := c.V, f.Corners[(i+1)%n].V
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}] = struct{}{}
		}
	}

	return host.Counts{
		Vertices: len(vertices),
		Edges:    len(edges),
		Faces:    len(obj.Faces),
		UVShells: uvShellCount(obj),
	}, nil
}

// uvShellCount counts groups of faces connected through shared texture coordinates
func uvShellCount(obj *Object) int {
	parent := make([]int, len(obj.Faces))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	firstFace := make(map[int]int)
	mapped := make([]bool, len(obj.Faces))
	for fi, f := range obj.Faces {
		for _, c := range f.Corners {
			if c.VT < 0 {
				continue
			}
			mapped[fi] = true
			if other, ok := firstFace[c.VT]; ok {
				parent[find(fi)] = find(other)
			} else {
				firstFace[c.VT] = fi
			}
		}
	}

	roots := make(map[int]struct{})
	for fi := range obj.Faces {
		if mapped[fi] {
			roots[find(fi)] = struct{}{}
		}
	}
	return len(roots)
}

func (s *Scene) UVArea(handle string) (float64, error) {
	obj, err := s.object(handle)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, f := range obj.Faces {
		sum := 0.0
		n := len(f.Corners)
		complete := true
		for i, c := range f.Corners {
			next := f.Corners[(i+1)%n]
			if c.VT < 0 || next.VT < 0 {
				complete = false
				break
			}
			a, b := s.TexCoords[c.VT], s.TexCoords[next.VT]
			sum += a.U*b.V - b.U*a.V
		}
		if complete {
			total += math.Abs(sum) / 2
		}
	}
	return total, nil
}

func (s *Scene) TranslateShellUV(handle string, delta geometry.Point) error {
	if _, err := s.object(handle); err != nil {
		return err
	}
	for _, vt := range s.texOwned[handle] {
		s.TexCoords[vt] = s.TexCoords[vt].Add(delta)
	}
	return nil
}
