package render

import (
	"fmt"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyRigDisablesLighting(t *testing.T) {
	sink := NewMemorySink()
	LightRig{}.Apply(sink)

	lit, ok := sink.Bool(UniformUseLighting)
	require.True(t, ok)
	assert.False(t, lit)
}

func TestRigAppliesAllLightKinds(t *testing.T) {
	sink := NewMemorySink()
	rig := LightRig{
		Directional: &DirectionalLight{
			Direction: mgl32.Vec3{-0.05, -0.3, -0.1},
			Diffuse:   mgl32.Vec3{0.6, 0.6, 0.6},
		},
		Points: []PointLight{
			{Position: mgl32.Vec3{-4, 8, 0}},
			{Position: mgl32.Vec3{4, 8, 0}},
		},
		Spot: &SpotLight{
			Constant:       1,
			Linear:         0.09,
			Quadratic:      0.032,
			CutOffDeg:      42.5,
			OuterCutOffDeg: 48,
		},
	}
	rig.Apply(sink)

	lit, _ := sink.Bool(UniformUseLighting)
	assert.True(t, lit)

	active, _ := sink.Bool("directionalLight.bActive")
	assert.True(t, active)

	active, _ = sink.Bool("pointLights[0].bActive")
	assert.True(t, active)
	active, _ = sink.Bool("pointLights[1].bActive")
	assert.True(t, active)

	// Unused array entries are switched off explicitly.
	for i := 2; i < MaxPointLights; i++ {
		name := fmt.Sprintf("pointLights[%d].bActive", i)
		active, ok := sink.Bool(name)
		require.True(t, ok, name)
		assert.False(t, active)
	}

	// Cone angles arrive as cosines.
	cut, ok := sink.Float("spotLight.cutOff")
	require.True(t, ok)
	assert.InDelta(t, math32.Cos(mgl32.DegToRad(42.5)), cut, 1e-6)
}
