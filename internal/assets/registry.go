package assets

import (
	"fmt"
	"sync"
)

// MaxTextureSlots matches the backend's simultaneous texture unit limit.
// A texture's slot index doubles as its bind unit.
const MaxTextureSlots = 16

// TextureHandle is an opaque backend texture identifier.
type TextureHandle uint32

type textureEntry struct {
	tag    string
	handle TextureHandle
}

// Registry owns the tag-to-texture-slot and tag-to-material tables for one
// scene. It is an explicit value handed to setup and render code, never a
// package global. Lookups are read-only and repeat-safe; registration is
// serialized so parallel texture decoding can join through it.
type Registry struct {
	mu        sync.Mutex
	textures  []textureEntry
	materials []Material
}

func NewRegistry() *Registry {
	return &Registry{
		textures: make([]textureEntry, 0, MaxTextureSlots),
	}
}

// RegisterTexture records handle under tag and returns the bind slot it now
// occupies. Duplicate tags are rejected, first registration wins.
func (r *Registry) RegisterTexture(tag string, handle TextureHandle) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.textures {
		if e.tag == tag {
			return -1, fmt.Errorf("texture %q: %w", tag, ErrDuplicateTag)
		}
	}
	if len(r.textures) >= MaxTextureSlots {
		return -1, fmt.Errorf("texture %q: %w (limit %d)", tag, ErrRegistryFull, MaxTextureSlots)
	}

	r.textures = append(r.textures, textureEntry{tag: tag, handle: handle})
	return len(r.textures) - 1, nil
}

// RegisterMaterial appends a material preset. The material count is
// unbounded but tags follow the same reject-duplicates policy as textures.
func (r *Registry) RegisterMaterial(m Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.materials {
		if existing.Tag == m.Tag {
			return fmt.Errorf("material %q: %w", m.Tag, ErrDuplicateTag)
		}
	}
	r.materials = append(r.materials, m)
	return nil
}

// TextureSlot returns the bind slot for tag. First-registered match wins.
func (r *Registry) TextureSlot(tag string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.textures {
		if e.tag == tag {
			return i, true
		}
	}
	return -1, false
}

// Material returns the material registered under tag.
func (r *Registry) Material(tag string) (Material, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Handles returns every registered texture handle in slot order, for the
// backend's bind pass after setup.
func (r *Registry) Handles() []TextureHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles := make([]TextureHandle, len(r.textures))
	for i, e := range r.textures {
		handles[i] = e.handle
	}
	return handles
}

// TextureCount reports how many slots are occupied.
func (r *Registry) TextureCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.textures)
}
