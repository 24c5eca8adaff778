package render

import "github.com/go-gl/mathgl/mgl32"

// Uniform names are a fixed contract with the scene shader program; they
// must match the GLSL declarations exactly.
const (
	UniformModel       = "model"
	UniformColor       = "objectColor"
	UniformTexture     = "objectTexture"
	UniformUseTexture  = "bUseTexture"
	UniformUseLighting = "bUseLighting"
	UniformUVScale     = "UVscale"
	UniformViewPos     = "viewPosition"

	UniformMaterialDiffuse   = "material.diffuseColor"
	UniformMaterialSpecular  = "material.specularColor"
	UniformMaterialShininess = "material.shininess"
)

// SentinelSlot is written for texture lookups that miss; the draw proceeds
// with undefined sampling instead of aborting the frame.
const SentinelSlot = -1

// UniformSink is the rendering pipeline's per-draw input state, keyed by
// uniform name. The raylib backend writes through to the active shader; the
// in-memory sink records values for headless validation and tests.
type UniformSink interface {
	SetBool(name string, v bool)
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec2(name string, v mgl32.Vec2)
	SetVec3(name string, v mgl32.Vec3)
	SetVec4(name string, v mgl32.Vec4)
	SetMat4(name string, v mgl32.Mat4)
}
