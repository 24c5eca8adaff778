package render

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights matches the pointLights array length in the shader.
const MaxPointLights = 5

type DirectionalLight struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	// Cone angles in degrees; written to the shader as cosines.
	CutOffDeg      float32
	OuterCutOffDeg float32
}

// LightRig is the scene's static light setup, pushed into uniform state
// once at scene setup.
type LightRig struct {
	Directional *DirectionalLight
	Points      []PointLight
	Spot        *SpotLight
}

// Apply writes the whole rig. Absent lights stay inactive; with no lights
// at all the lighting path is switched off and objects render unlit.
func (r LightRig) Apply(sink UniformSink) {
	active := r.Directional != nil || len(r.Points) > 0 || r.Spot != nil
	sink.SetBool(UniformUseLighting, active)
	if !active {
		return
	}

	if d := r.Directional; d != nil {
		sink.SetVec3("directionalLight.direction", d.Direction)
		sink.SetVec3("directionalLight.ambient", d.Ambient)
		sink.SetVec3("directionalLight.diffuse", d.Diffuse)
		sink.SetVec3("directionalLight.specular", d.Specular)
		sink.SetBool("directionalLight.bActive", true)
	} else {
		sink.SetBool("directionalLight.bActive", false)
	}

	points := r.Points
	if len(points) > MaxPointLights {
		points = points[:MaxPointLights]
	}
	for i := 0; i < MaxPointLights; i++ {
		prefix := fmt.Sprintf("pointLights[%d]", i)
		if i >= len(points) {
			sink.SetBool(prefix+".bActive", false)
			continue
		}
		p := points[i]
		sink.SetVec3(prefix+".position", p.Position)
		sink.SetVec3(prefix+".ambient", p.Ambient)
		sink.SetVec3(prefix+".diffuse", p.Diffuse)
		sink.SetVec3(prefix+".specular", p.Specular)
		sink.SetBool(prefix+".bActive", true)
	}

	if s := r.Spot; s != nil {
		sink.SetVec3("spotLight.position", s.Position)
		sink.SetVec3("spotLight.direction", s.Direction)
		sink.SetVec3("spotLight.ambient", s.Ambient)
		sink.SetVec3("spotLight.diffuse", s.Diffuse)
		sink.SetVec3("spotLight.specular", s.Specular)
		sink.SetFloat("spotLight.constant", s.Constant)
		sink.SetFloat("spotLight.linear", s.Linear)
		sink.SetFloat("spotLight.quadratic", s.Quadratic)
		sink.SetFloat("spotLight.cutOff", math32.Cos(mgl32.DegToRad(s.CutOffDeg)))
		sink.SetFloat("spotLight.outerCutOff", math32.Cos(mgl32.DegToRad(s.OuterCutOffDeg)))
		sink.SetBool("spotLight.bActive", true)
	} else {
		sink.SetBool("spotLight.bActive", false)
	}
}
