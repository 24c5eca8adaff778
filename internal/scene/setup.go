package scene

import (
	"tablescene/internal/assets"
	"tablescene/internal/render"
	"tablescene/internal/utils"
)

// Prepare runs scene setup against an empty registry: material presets,
// texture batch load, the bind pass and the light rig, in that order. Setup
// is partial-failure tolerant; a texture or material that cannot register is
// logged and the rest of the scene still renders.
func Prepare(doc *Document, reg *assets.Registry, backend render.Backend, sink render.UniformSink) {
	materials := make([]assets.Material, 0, len(doc.Materials))
	for _, m := range doc.Materials {
		materials = append(materials, assets.Material{
			Tag:       m.Tag,
			Diffuse:   vec3(m.Diffuse),
			Specular:  vec3(m.Specular),
			Shininess: m.Shininess,
		})
	}
	if len(materials) == 0 {
		materials = assets.DefaultMaterials()
	}
	for _, m := range materials {
		if err := reg.RegisterMaterial(m); err != nil {
			utils.Error("Scene: %v", err)
		}
	}

	loader := assets.NewLoader(reg, backend)
	refs := make([]assets.TextureRef, 0, len(doc.Textures))
	for _, t := range doc.Textures {
		refs = append(refs, assets.TextureRef{Path: t.Path, Tag: t.Tag})
	}
	loaded := loader.LoadBatch(refs)
	utils.Info("Scene: %q ready, %d/%d textures, %d materials, %d draws",
		doc.Name, loaded, len(refs), len(materials), len(doc.Draws))

	backend.BindTextures(reg.Handles())

	lightRig(doc).Apply(sink)
}

func lightRig(doc *Document) render.LightRig {
	var rig render.LightRig
	if d := doc.Lights.Directional; d != nil {
		rig.Directional = &render.DirectionalLight{
			Direction: vec3(d.Direction),
			Ambient:   vec3(d.Ambient),
			Diffuse:   vec3(d.Diffuse),
			Specular:  vec3(d.Specular),
		}
	}
	for _, p := range doc.Lights.Points {
		rig.Points = append(rig.Points, render.PointLight{
			Position: vec3(p.Position),
			Ambient:  vec3(p.Ambient),
			Diffuse:  vec3(p.Diffuse),
			Specular: vec3(p.Specular),
		})
	}
	if s := doc.Lights.Spot; s != nil {
		rig.Spot = &render.SpotLight{
			Position:       vec3(s.Position),
			Direction:      vec3(s.Direction),
			Ambient:        vec3(s.Ambient),
			Diffuse:        vec3(s.Diffuse),
			Specular:       vec3(s.Specular),
			Constant:       s.Constant,
			Linear:         s.Linear,
			Quadratic:      s.Quadratic,
			CutOffDeg:      s.CutOffDeg,
			OuterCutOffDeg: s.OuterCutOffDeg,
		}
	}
	return rig
}
