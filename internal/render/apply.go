package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"tablescene/internal/assets"
)

// StateApplier resolves texture and material tags through the registry and
// pushes the derived values into uniform state ahead of a draw call. It
// keeps no state of its own between calls; the sink is the only memory.
type StateApplier struct {
	reg  *assets.Registry
	sink UniformSink
}

func NewStateApplier(reg *assets.Registry, sink UniformSink) *StateApplier {
	return &StateApplier{reg: reg, sink: sink}
}

// ApplyPlacement writes the model matrix for the next draw.
func (a *StateApplier) ApplyPlacement(m mgl32.Mat4) {
	a.sink.SetMat4(UniformModel, m)
}

// ApplySolidColor switches texture sampling off and sets a flat RGBA color.
func (a *StateApplier) ApplySolidColor(rgba mgl32.Vec4) {
	a.sink.SetBool(UniformUseTexture, false)
	a.sink.SetVec4(UniformColor, rgba)
}

// ApplyTexture switches texture sampling on and selects the bind slot
// registered under tag. A miss writes the sentinel slot so the draw still
// happens (with blank sampling) and is reported to the caller.
func (a *StateApplier) ApplyTexture(tag string) error {
	a.sink.SetBool(UniformUseTexture, true)

	slot, ok := a.reg.TextureSlot(tag)
	if !ok {
		a.sink.SetInt(UniformTexture, SentinelSlot)
		return fmt.Errorf("texture %q: %w", tag, assets.ErrNotFound)
	}
	a.sink.SetInt(UniformTexture, int32(slot))
	return nil
}

// ApplyUVScale sets the texture coordinate scale factors.
func (a *StateApplier) ApplyUVScale(u, v float32) {
	a.sink.SetVec2(UniformUVScale, mgl32.Vec2{u, v})
}

// ApplyMaterial writes the material registered under tag into uniform
// state. A miss leaves the previous material values untouched and is
// reported so content typos surface in the log.
func (a *StateApplier) ApplyMaterial(tag string) error {
	m, ok := a.reg.Material(tag)
	if !ok {
		return fmt.Errorf("material %q: %w", tag, assets.ErrNotFound)
	}
	a.sink.SetVec3(UniformMaterialDiffuse, m.Diffuse)
	a.sink.SetVec3(UniformMaterialSpecular, m.Specular)
	a.sink.SetFloat(UniformMaterialShininess, m.Shininess)
	return nil
}
