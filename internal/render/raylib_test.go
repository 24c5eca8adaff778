package render

import (
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tablescene/internal/utils"
)

func TestIntBitsKeepsIntegerPattern(t *testing.T) {
	assert.Equal(t, uint32(0), math.Float32bits(intBits(0)[0]))
	assert.Equal(t, uint32(1), math.Float32bits(intBits(1)[0]))
	assert.Equal(t, uint32(0xffffffff), math.Float32bits(intBits(-1)[0]))
	assert.Equal(t, uint32(0xffffffff), math.Float32bits(intBits(SentinelSlot)[0]))
}

func TestDrawMeshReportsUnsupportedCapsOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	prev := utils.CurrentLevel
	utils.CurrentLevel = utils.LevelWarn
	defer func() { utils.CurrentLevel = prev }()

	// No models loaded, so the draws bail out before touching the GPU.
	b := &RaylibBackend{}
	b.DrawMesh(MeshCylinder, CapFlags{Sides: true})
	b.DrawMesh(MeshCylinder, CapFlags{Sides: true})
	b.DrawMesh(MeshBox, AllCaps)

	assert.Equal(t, 1, strings.Count(buf.String(), "cap flags"))
}
