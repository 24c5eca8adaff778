package assets

import (
	"fmt"
	"sync"

	"tablescene/internal/utils"
)

// Uploader is the backend's texture upload surface. Implementations take
// ownership of the pixel data for the duration of the call only; the decoded
// buffer is dropped as soon as Load returns.
type Uploader interface {
	UploadTexture(img *Image) (TextureHandle, error)
}

// TextureRef names one texture file and the tag it registers under.
type TextureRef struct {
	Path string
	Tag  string
}

// Loader decodes texture files, pushes them through the backend and
// registers the resulting handles.
type Loader struct {
	reg *Registry
	up  Uploader
}

func NewLoader(reg *Registry, up Uploader) *Loader {
	return &Loader{reg: reg, up: up}
}

// Load decodes path, uploads it and registers the handle under tag. The path
// may omit its extension; the supported decoder extensions are searched in
// that case. Decode failures (including unsupported channel counts) come
// back as errors and leave the registry untouched; callers treat them as
// skip-and-continue.
func (l *Loader) Load(path, tag string) error {
	img, err := DecodeFile(utils.FindTextureFile(path))
	if err != nil {
		return err
	}
	return l.register(img, tag)
}

func (l *Loader) register(img *Image, tag string) error {
	handle, err := l.up.UploadTexture(img)
	if err != nil {
		return fmt.Errorf("upload %q: %w", tag, err)
	}

	slot, err := l.reg.RegisterTexture(tag, handle)
	if err != nil {
		return err
	}
	utils.Debug("Loader: %q -> slot %d (%dx%d, %d channels)", tag, slot, img.Width, img.Height, img.Channels)
	return nil
}

// Decode fan-out limit for batch loading, to keep memory spikes bounded.
const maxDecodeConcurrency = 8

// LoadBatch decodes refs in parallel, then uploads and registers them
// serially in declaration order, so slot assignment matches the scene
// document. A failed texture is logged and skipped; the rest still load.
// Returns the number of textures registered.
func (l *Loader) LoadBatch(refs []TextureRef) int {
	images := make([]*Image, len(refs))
	errs := make([]error, len(refs))

	sem := make(chan struct{}, maxDecodeConcurrency)
	var wg sync.WaitGroup
	for i, ref := range refs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, ref TextureRef) {
			defer wg.Done()
			defer func() { <-sem }()
			images[i], errs[i] = DecodeFile(utils.FindTextureFile(ref.Path))
		}(i, ref)
	}
	wg.Wait()

	loaded := 0
	for i, ref := range refs {
		if errs[i] != nil {
			utils.Error("Loader: skipping %q: %v", ref.Tag, errs[i])
			continue
		}
		if err := l.register(images[i], ref.Tag); err != nil {
			utils.Error("Loader: skipping %q: %v", ref.Tag, err)
			continue
		}
		images[i] = nil
		loaded++
	}
	return loaded
}
