package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablescene/internal/assets"
	"tablescene/internal/render"
)

const minimalScene = `
name: minimal
clear_color: [0, 0, 0, 1]
materials:
  - {tag: gold, diffuse: [0.3, 0.3, 0.2], specular: [0.6, 0.5, 0.4], shininess: 22.0}
draws:
  - mesh: plane
    scale: [24.0, 1.0, 14.0]
    position: [0.0, 0.0, 0.0]
    texture: onyx
    uv_scale: [3.0, 2.0]
    material: gold
  - mesh: cylinder
    scale: [1.05, 3.0, 1.05]
    rotate: [180.0, 0.0, 0.0]
    position: [5.2, 3.0, -1.0]
    color: [1.0, 1.0, 1.0, 0.35]
    material: glass
    caps: {top: false, bottom: false, sides: true}
`

func TestLoadMinimalScene(t *testing.T) {
	doc, err := Load(strings.NewReader(minimalScene))
	require.NoError(t, err)

	assert.Equal(t, "minimal", doc.Name)
	require.Len(t, doc.Draws, 2)
	assert.Equal(t, "onyx", doc.Draws[0].Texture)
	require.NotNil(t, doc.Draws[1].Caps)
	assert.False(t, doc.Draws[1].Caps.Top)
	assert.True(t, doc.Draws[1].Caps.Sides)
}

func TestLoadRejectsUnknownMesh(t *testing.T) {
	_, err := Load(strings.NewReader(`
draws:
  - mesh: dodecahedron
    scale: [1, 1, 1]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dodecahedron")
}

func TestLoadRejectsNonPositiveScale(t *testing.T) {
	_, err := Load(strings.NewReader(`
draws:
  - mesh: box
    scale: [1, 0, 1]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scale")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader(`
draws:
  - mesh: box
    scale: [1, 1, 1]
    rotation: [0, 0, 0]
`))
	require.Error(t, err)
}

func TestTabletopSceneIsValid(t *testing.T) {
	doc := Tabletop()
	require.NoError(t, doc.validate())
	assert.Len(t, doc.Textures, 8)
	assert.Equal(t, 5, len(doc.Lights.Points))
	assert.Equal(t, 20, len(doc.Draws))
}

func TestPrepareRegistersDefaultsAndLights(t *testing.T) {
	recorder := render.NewRecorder()
	reg := assets.NewRegistry()
	doc := &Document{Name: "empty", Lights: Tabletop().Lights}

	Prepare(doc, reg, recorder, recorder.Sink)

	gold, ok := reg.Material("gold")
	require.True(t, ok, "default materials register when the document has none")
	assert.Equal(t, float32(22.0), gold.Shininess)

	lit, ok := recorder.Sink.Bool(render.UniformUseLighting)
	require.True(t, ok)
	assert.True(t, lit)
}

func TestRenderWalksDrawsInOrder(t *testing.T) {
	doc, err := Load(strings.NewReader(minimalScene))
	require.NoError(t, err)

	recorder := render.NewRecorder()
	reg := assets.NewRegistry()
	_, err = reg.RegisterTexture("onyx", 1)
	require.NoError(t, err)
	for _, m := range assets.DefaultMaterials() {
		require.NoError(t, reg.RegisterMaterial(m))
	}

	applier := render.NewStateApplier(reg, recorder.Sink)
	stats := Render(doc, applier, recorder)

	assert.Equal(t, 2, stats.Draws)
	assert.Equal(t, 0, stats.TagMisses)

	require.Len(t, recorder.Draws, 2)
	assert.Equal(t, render.MeshPlane, recorder.Draws[0].Mesh)
	assert.Equal(t, render.MeshCylinder, recorder.Draws[1].Mesh)
	assert.Equal(t, render.CapFlags{Sides: true}, recorder.Draws[1].Caps)

	// Each draw captured the placement composed for it.
	wantFirst := render.Compose(doc.Draws[0].scale(), doc.Draws[0].rotate(), doc.Draws[0].position())
	assert.Equal(t, wantFirst, recorder.Draws[0].Placement)
}

func TestRenderCountsTagMisses(t *testing.T) {
	doc, err := Load(strings.NewReader(`
draws:
  - mesh: sphere
    scale: [1, 1, 1]
    texture: missing_tag
    material: glod
`))
	require.NoError(t, err)

	recorder := render.NewRecorder()
	reg := assets.NewRegistry()
	applier := render.NewStateApplier(reg, recorder.Sink)

	stats := Render(doc, applier, recorder)

	assert.Equal(t, 1, stats.Draws, "a bad tag must not abort the draw")
	assert.Equal(t, 2, stats.TagMisses)

	slot, ok := recorder.Sink.Int(render.UniformTexture)
	require.True(t, ok)
	assert.Equal(t, int32(render.SentinelSlot), slot)
}
