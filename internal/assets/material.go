package assets

import "github.com/go-gl/mathgl/mgl32"

// Material is a Phong surface preset looked up by tag at draw time.
// Immutable once registered.
type Material struct {
	Tag       string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// DefaultMaterials is the preset table used when a scene document does not
// define its own.
func DefaultMaterials() []Material {
	return []Material{
		{Tag: "gold", Diffuse: mgl32.Vec3{0.3, 0.3, 0.2}, Specular: mgl32.Vec3{0.6, 0.5, 0.4}, Shininess: 22.0},
		{Tag: "cement", Diffuse: mgl32.Vec3{0.5, 0.5, 0.5}, Specular: mgl32.Vec3{0.4, 0.4, 0.4}, Shininess: 0.5},
		{Tag: "wood", Diffuse: mgl32.Vec3{0.3, 0.2, 0.1}, Specular: mgl32.Vec3{0.1, 0.1, 0.1}, Shininess: 0.3},
		{Tag: "tile", Diffuse: mgl32.Vec3{0.3, 0.2, 0.1}, Specular: mgl32.Vec3{0.4, 0.5, 0.6}, Shininess: 25.0},
		{Tag: "glass", Diffuse: mgl32.Vec3{0.3, 0.3, 0.3}, Specular: mgl32.Vec3{0.6, 0.6, 0.6}, Shininess: 85.0},
		{Tag: "clay", Diffuse: mgl32.Vec3{0.4, 0.4, 0.5}, Specular: mgl32.Vec3{0.2, 0.2, 0.4}, Shininess: 0.5},
		{Tag: "plasticClear", Diffuse: mgl32.Vec3{0.95, 0.95, 0.95}, Specular: mgl32.Vec3{0.75, 0.75, 0.75}, Shininess: 96.0},
	}
}
