package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"tablescene/internal/assets"
)

// MemorySink records the last value written per uniform name. It backs the
// -check headless mode and the pipeline tests; read-back is by name and
// type, mirroring how the shader would consume the state.
type MemorySink struct {
	bools  map[string]bool
	ints   map[string]int32
	floats map[string]float32
	vecs   map[string][]float32
	mats   map[string]mgl32.Mat4
}

func NewMemorySink() *MemorySink {
	return &MemorySink{
		bools:  make(map[string]bool),
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		vecs:   make(map[string][]float32),
		mats:   make(map[string]mgl32.Mat4),
	}
}

func (s *MemorySink) SetBool(name string, v bool)       { s.bools[name] = v }
func (s *MemorySink) SetInt(name string, v int32)       { s.ints[name] = v }
func (s *MemorySink) SetFloat(name string, v float32)   { s.floats[name] = v }
func (s *MemorySink) SetVec2(name string, v mgl32.Vec2) { s.vecs[name] = v[:] }
func (s *MemorySink) SetVec3(name string, v mgl32.Vec3) { s.vecs[name] = v[:] }
func (s *MemorySink) SetVec4(name string, v mgl32.Vec4) { s.vecs[name] = v[:] }
func (s *MemorySink) SetMat4(name string, v mgl32.Mat4) { s.mats[name] = v }

func (s *MemorySink) Bool(name string) (bool, bool) {
	v, ok := s.bools[name]
	return v, ok
}

func (s *MemorySink) Int(name string) (int32, bool) {
	v, ok := s.ints[name]
	return v, ok
}

func (s *MemorySink) Float(name string) (float32, bool) {
	v, ok := s.floats[name]
	return v, ok
}

func (s *MemorySink) Vec(name string) ([]float32, bool) {
	v, ok := s.vecs[name]
	return v, ok
}

func (s *MemorySink) Mat4(name string) (mgl32.Mat4, bool) {
	v, ok := s.mats[name]
	return v, ok
}

// UploadRecord describes one texture upload seen by the Recorder.
type UploadRecord struct {
	Width    int
	Height   int
	Channels int
}

// DrawRecord describes one draw call seen by the Recorder, with the model
// matrix that was in effect when it was issued.
type DrawRecord struct {
	Mesh      MeshKind
	Caps      CapFlags
	Placement mgl32.Mat4
}

// Recorder is a Backend that performs no rendering. Uploads hand out
// sequential handles and draws capture the uniform state in effect, which
// is what -check and the scene tests inspect.
type Recorder struct {
	Sink *MemorySink

	Uploads []UploadRecord
	Bound   []assets.TextureHandle
	Draws   []DrawRecord

	nextHandle assets.TextureHandle
}

func NewRecorder() *Recorder {
	return &Recorder{Sink: NewMemorySink(), nextHandle: 1}
}

func (r *Recorder) UploadTexture(img *assets.Image) (assets.TextureHandle, error) {
	r.Uploads = append(r.Uploads, UploadRecord{Width: img.Width, Height: img.Height, Channels: img.Channels})
	h := r.nextHandle
	r.nextHandle++
	return h, nil
}

func (r *Recorder) BindTextures(handles []assets.TextureHandle) {
	r.Bound = append([]assets.TextureHandle(nil), handles...)
}

func (r *Recorder) DrawMesh(kind MeshKind, caps CapFlags) {
	rec := DrawRecord{Mesh: kind, Caps: caps}
	if m, ok := r.Sink.Mat4(UniformModel); ok {
		rec.Placement = m
	}
	r.Draws = append(r.Draws, rec)
}
