package render

import (
	"fmt"

	"tablescene/internal/assets"
)

// MeshKind selects one of the primitive meshes the backend provides.
type MeshKind int

const (
	MeshPlane MeshKind = iota
	MeshBox
	MeshPyramid
	MeshCylinder
	MeshTaperedCylinder
	MeshTorus
	MeshSphere
)

var meshNames = map[string]MeshKind{
	"plane":            MeshPlane,
	"box":              MeshBox,
	"pyramid":          MeshPyramid,
	"cylinder":         MeshCylinder,
	"tapered_cylinder": MeshTaperedCylinder,
	"torus":            MeshTorus,
	"sphere":           MeshSphere,
}

// ParseMeshKind maps a scene-document mesh name onto a MeshKind.
func ParseMeshKind(name string) (MeshKind, error) {
	kind, ok := meshNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown mesh kind %q", name)
	}
	return kind, nil
}

func (k MeshKind) String() string {
	for name, kind := range meshNames {
		if kind == k {
			return name
		}
	}
	return fmt.Sprintf("mesh(%d)", int(k))
}

// CapFlags selects which cylinder surfaces to draw.
type CapFlags struct {
	Top    bool
	Bottom bool
	Sides  bool
}

// AllCaps is the default: draw everything.
var AllCaps = CapFlags{Top: true, Bottom: true, Sides: true}

// Backend is the rendering side of the pipeline: texture storage and mesh
// drawing. Uniform state travels separately through a UniformSink. The
// raylib backend implements both; the Recorder stands in for headless runs.
type Backend interface {
	assets.Uploader

	// BindTextures assigns handle i to texture bind unit i, once after
	// scene setup.
	BindTextures(handles []assets.TextureHandle)

	// DrawMesh issues one draw with whatever uniform state has been
	// applied. Cap flags only affect cylinders.
	DrawMesh(kind MeshKind, caps CapFlags)
}
