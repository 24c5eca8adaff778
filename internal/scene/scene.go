package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"tablescene/internal/render"
)

// Document is a whole scene as data: textures and material presets to
// register, the static light rig, and the ordered list of draw records the
// render loop consumes. The long hand-unrolled draw scripts this replaces
// live on as records in assets/scenes/.
type Document struct {
	Name       string        `yaml:"name"`
	ClearColor [4]float32    `yaml:"clear_color"`
	Textures   []TextureDef  `yaml:"textures"`
	Materials  []MaterialDef `yaml:"materials"`
	Lights     LightsDef     `yaml:"lights"`
	Draws      []DrawItem    `yaml:"draws"`
}

type TextureDef struct {
	Path string `yaml:"path"`
	Tag  string `yaml:"tag"`
}

type MaterialDef struct {
	Tag       string     `yaml:"tag"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

type LightsDef struct {
	Directional *DirectionalDef `yaml:"directional"`
	Points      []PointDef      `yaml:"points"`
	Spot        *SpotDef        `yaml:"spot"`
}

type DirectionalDef struct {
	Direction [3]float32 `yaml:"direction"`
	Ambient   [3]float32 `yaml:"ambient"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
}

type PointDef struct {
	Position [3]float32 `yaml:"position"`
	Ambient  [3]float32 `yaml:"ambient"`
	Diffuse  [3]float32 `yaml:"diffuse"`
	Specular [3]float32 `yaml:"specular"`
}

type SpotDef struct {
	Position       [3]float32 `yaml:"position"`
	Direction      [3]float32 `yaml:"direction"`
	Ambient        [3]float32 `yaml:"ambient"`
	Diffuse        [3]float32 `yaml:"diffuse"`
	Specular       [3]float32 `yaml:"specular"`
	Constant       float32    `yaml:"constant"`
	Linear         float32    `yaml:"linear"`
	Quadratic      float32    `yaml:"quadratic"`
	CutOffDeg      float32    `yaml:"cutoff_deg"`
	OuterCutOffDeg float32    `yaml:"outer_cutoff_deg"`
}

// DrawItem is one placed mesh instance. Texture and Color are alternatives;
// a set texture wins, and with neither the object draws flat white.
type DrawItem struct {
	Mesh     string      `yaml:"mesh"`
	Scale    [3]float32  `yaml:"scale"`
	Rotate   [3]float32  `yaml:"rotate"` // degrees about X, Y, Z
	Position [3]float32  `yaml:"position"`
	Texture  string      `yaml:"texture"`
	Color    *[4]float32 `yaml:"color"`
	UVScale  *[2]float32 `yaml:"uv_scale"`
	Material string      `yaml:"material"`
	Caps     *CapsDef    `yaml:"caps"`
}

type CapsDef struct {
	Top    bool `yaml:"top"`
	Bottom bool `yaml:"bottom"`
	Sides  bool `yaml:"sides"`
}

// Load parses and validates a scene document.
func Load(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads a scene document from disk.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene %q: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", path, err)
	}
	return doc, nil
}

func (d *Document) validate() error {
	for i, t := range d.Textures {
		if t.Tag == "" || t.Path == "" {
			return fmt.Errorf("texture %d: tag and path are required", i)
		}
	}
	for i, m := range d.Materials {
		if m.Tag == "" {
			return fmt.Errorf("material %d: tag is required", i)
		}
		if m.Shininess < 0 {
			return fmt.Errorf("material %q: negative shininess", m.Tag)
		}
	}
	for i, item := range d.Draws {
		if _, err := render.ParseMeshKind(item.Mesh); err != nil {
			return fmt.Errorf("draw %d: %w", i, err)
		}
		for axis, s := range item.Scale {
			if s <= 0 {
				return fmt.Errorf("draw %d (%s): scale[%d] must be positive", i, item.Mesh, axis)
			}
		}
	}
	return nil
}

func (i DrawItem) scale() mgl32.Vec3    { return mgl32.Vec3{i.Scale[0], i.Scale[1], i.Scale[2]} }
func (i DrawItem) rotate() mgl32.Vec3   { return mgl32.Vec3{i.Rotate[0], i.Rotate[1], i.Rotate[2]} }
func (i DrawItem) position() mgl32.Vec3 { return mgl32.Vec3{i.Position[0], i.Position[1], i.Position[2]} }

func (i DrawItem) caps() render.CapFlags {
	if i.Caps == nil {
		return render.AllCaps
	}
	return render.CapFlags{Top: i.Caps.Top, Bottom: i.Caps.Bottom, Sides: i.Caps.Sides}
}

func vec3(a [3]float32) mgl32.Vec3 { return mgl32.Vec3{a[0], a[1], a[2]} }
