package render

import (
	"image"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"tablescene/internal/assets"
	"tablescene/internal/utils"
)

// RaylibBackend drives the real GPU pipeline: one shader program shared by
// every primitive model, uniform writes through cached locations, and the
// fixed sampler policy (mipmaps, repeat wrap, linear filtering).
//
// Requires an open raylib window; construct after rl.InitWindow.
type RaylibBackend struct {
	shader  rl.Shader
	locs    map[string]int32
	uploads map[assets.TextureHandle]rl.Texture2D
	bound   []rl.Texture2D
	models  map[MeshKind]rl.Model

	openCapsWarned bool
}

func NewRaylibBackend() *RaylibBackend {
	b := &RaylibBackend{
		shader:  rl.LoadShaderFromMemory(sceneVertexShader, sceneFragmentShader),
		locs:    make(map[string]int32),
		uploads: make(map[assets.TextureHandle]rl.Texture2D),
		models:  make(map[MeshKind]rl.Model),
	}
	b.loadMeshes()
	return b
}

// Unit-sized primitives; placement matrices do all sizing.
func (b *RaylibBackend) loadMeshes() {
	meshes := map[MeshKind]rl.Mesh{
		MeshPlane:           rl.GenMeshPlane(2, 2, 1, 1),
		MeshBox:             rl.GenMeshCube(1, 1, 1),
		MeshPyramid:         rl.GenMeshCone(1, 1, 4),
		MeshCylinder:        rl.GenMeshCylinder(1, 1, 32),
		MeshTaperedCylinder: rl.GenMeshCone(1, 1, 32),
		MeshTorus:           rl.GenMeshTorus(0.5, 1, 16, 32),
		MeshSphere:          rl.GenMeshSphere(1, 16, 32),
	}
	for kind, mesh := range meshes {
		model := rl.LoadModelFromMesh(mesh)
		model.Materials.Shader = b.shader
		b.models[kind] = model
	}
}

func (b *RaylibBackend) loc(name string) int32 {
	if l, ok := b.locs[name]; ok {
		return l
	}
	l := rl.GetShaderLocation(b.shader, name)
	if l == -1 {
		utils.Debug("Render: shader has no uniform %q", name)
	}
	b.locs[name] = l
	return l
}

func (b *RaylibBackend) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	if l := b.loc(name); l != -1 {
		rl.SetShaderValue(b.shader, l, intBits(i), rl.ShaderUniformInt)
	}
}

func (b *RaylibBackend) SetInt(name string, v int32) {
	l := b.loc(name)
	if l == -1 {
		return
	}

	// The texture sampler uniform selects a bind slot; resolve it to the
	// texture occupying that slot. The sentinel slot leaves the sampler
	// pointing at nothing, which renders blank rather than crashing.
	if name == UniformTexture {
		if v >= 0 && int(v) < len(b.bound) {
			rl.SetShaderValueTexture(b.shader, l, b.bound[v])
		}
		return
	}
	rl.SetShaderValue(b.shader, l, intBits(v), rl.ShaderUniformInt)
}

// raylib copies uniform data as raw bytes, so int and bool uniforms need the
// integer bit pattern carried in the float slice, not a numeric conversion.
func intBits(v int32) []float32 {
	return []float32{math.Float32frombits(uint32(v))}
}

func (b *RaylibBackend) SetFloat(name string, v float32) {
	if l := b.loc(name); l != -1 {
		rl.SetShaderValue(b.shader, l, []float32{v}, rl.ShaderUniformFloat)
	}
}

func (b *RaylibBackend) SetVec2(name string, v mgl32.Vec2) {
	if l := b.loc(name); l != -1 {
		rl.SetShaderValue(b.shader, l, v[:], rl.ShaderUniformVec2)
	}
}

func (b *RaylibBackend) SetVec3(name string, v mgl32.Vec3) {
	if l := b.loc(name); l != -1 {
		rl.SetShaderValue(b.shader, l, v[:], rl.ShaderUniformVec3)
	}
}

func (b *RaylibBackend) SetVec4(name string, v mgl32.Vec4) {
	if l := b.loc(name); l != -1 {
		rl.SetShaderValue(b.shader, l, v[:], rl.ShaderUniformVec4)
	}
}

func (b *RaylibBackend) SetMat4(name string, v mgl32.Mat4) {
	if l := b.loc(name); l != -1 {
		rl.SetShaderValueMatrix(b.shader, l, rlMatrix(v))
	}
}

// UploadTexture pushes decoded pixels to the GPU with the fixed sampler
// policy: full mipmap chain, repeat wrap on both axes, linear filtering.
func (b *RaylibBackend) UploadTexture(img *assets.Image) (assets.TextureHandle, error) {
	rimg := rl.NewImageFromImage(toRGBA(img))
	tex := rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)

	rl.GenTextureMipmaps(&tex)
	rl.SetTextureWrap(tex, rl.TextureWrapRepeat)
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	handle := assets.TextureHandle(tex.ID)
	b.uploads[handle] = tex
	return handle, nil
}

// BindTextures fixes the slot-to-texture assignment for the rest of the
// scene's lifetime; slot i is handle i, matching the registry.
func (b *RaylibBackend) BindTextures(handles []assets.TextureHandle) {
	b.bound = b.bound[:0]
	for _, h := range handles {
		b.bound = append(b.bound, b.uploads[h])
	}
}

// DrawMesh issues one draw. raylib's generated primitives are closed
// surfaces, so open-cap requests render closed on this backend; the alpha
// blend on open-walled objects keeps them readable, and the Recorder
// preserves the flags for headless validation.
func (b *RaylibBackend) DrawMesh(kind MeshKind, caps CapFlags) {
	if caps != AllCaps && !b.openCapsWarned {
		b.openCapsWarned = true
		utils.Warn("Render: cap flags requested for %s, generated meshes draw closed", kind)
	}

	model, ok := b.models[kind]
	if !ok {
		utils.Warn("Render: no model for %s", kind)
		return
	}
	rl.DrawModel(model, rl.NewVector3(0, 0, 0), 1.0, rl.White)
}

// Unload releases every GPU resource the backend created.
func (b *RaylibBackend) Unload() {
	for _, model := range b.models {
		rl.UnloadModel(model)
	}
	for _, tex := range b.uploads {
		rl.UnloadTexture(tex)
	}
	rl.UnloadShader(b.shader)
}

func toRGBA(img *assets.Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	if img.Channels == 4 {
		copy(out.Pix, img.Pixels)
		return out
	}
	for p, i := 0, 0; i < len(img.Pixels); p, i = p+4, i+3 {
		out.Pix[p+0] = img.Pixels[i+0]
		out.Pix[p+1] = img.Pixels[i+1]
		out.Pix[p+2] = img.Pixels[i+2]
		out.Pix[p+3] = 0xff
	}
	return out
}

// rlMatrix converts a column-major mgl32 matrix to raylib's layout, which
// indexes the same column-major storage by field name.
func rlMatrix(m mgl32.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: m[0], M1: m[1], M2: m[2], M3: m[3],
		M4: m[4], M5: m[5], M6: m[6], M7: m[7],
		M8: m[8], M9: m[9], M10: m[10], M11: m[11],
		M12: m[12], M13: m[13], M14: m[14], M15: m[15],
	}
}
