package assets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterTextureAssignsSlotsInOrder(t *testing.T) {
	reg := NewRegistry()

	slot, err := reg.RegisterTexture("onyx", 101)
	require.NoError(t, err)
	assert.Equal(t, 0, slot)

	slot, err = reg.RegisterTexture("wood", 102)
	require.NoError(t, err)
	assert.Equal(t, 1, slot)

	slot, ok := reg.TextureSlot("onyx")
	assert.True(t, ok)
	assert.Equal(t, 0, slot)

	slot, ok = reg.TextureSlot("wood")
	assert.True(t, ok)
	assert.Equal(t, 1, slot)

	assert.Equal(t, []TextureHandle{101, 102}, reg.Handles())
}

func TestRegisterTextureRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.RegisterTexture("meat", 1)
	require.NoError(t, err)

	_, err = reg.RegisterTexture("meat", 2)
	require.ErrorIs(t, err, ErrDuplicateTag)

	// First registration stays in effect.
	slot, ok := reg.TextureSlot("meat")
	assert.True(t, ok)
	assert.Equal(t, 0, slot)
	assert.Equal(t, []TextureHandle{1}, reg.Handles())
}

func TestRegisterTextureCapacity(t *testing.T) {
	reg := NewRegistry()

	for i := 0; i < MaxTextureSlots; i++ {
		_, err := reg.RegisterTexture(fmt.Sprintf("tex%d", i), TextureHandle(i))
		require.NoError(t, err)
	}

	_, err := reg.RegisterTexture("overflow", 99)
	require.ErrorIs(t, err, ErrRegistryFull)

	_, ok := reg.TextureSlot("overflow")
	assert.False(t, ok)
	assert.Equal(t, MaxTextureSlots, reg.TextureCount())
}

func TestTextureSlotMiss(t *testing.T) {
	reg := NewRegistry()
	slot, ok := reg.TextureSlot("nothing")
	assert.False(t, ok)
	assert.Equal(t, -1, slot)
}

func TestMaterialLookup(t *testing.T) {
	reg := NewRegistry()
	for _, m := range DefaultMaterials() {
		require.NoError(t, reg.RegisterMaterial(m))
	}

	gold, ok := reg.Material("gold")
	require.True(t, ok)
	assert.Equal(t, float32(22.0), gold.Shininess)

	_, ok = reg.Material("chrome")
	assert.False(t, ok)

	err := reg.RegisterMaterial(Material{Tag: "gold", Shininess: 1})
	require.ErrorIs(t, err, ErrDuplicateTag)

	// The original preset shadows the rejected one.
	gold, ok = reg.Material("gold")
	require.True(t, ok)
	assert.Equal(t, float32(22.0), gold.Shininess)
}
