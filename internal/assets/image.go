package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// Image is decoded pixel data waiting for upload. Pixels are tightly packed
// rows, bottom-to-top (backend UV origin convention), Channels bytes per
// pixel.
type Image struct {
	Width    int
	Height   int
	Channels int
	Pixels   []byte
}

// DecodeFile reads and decodes one texture file. PNG and JPEG go through the
// standard image decoders; .texz is the packed container format. The result
// is already vertically flipped.
func DecodeFile(path string) (*Image, error) {
	if strings.EqualFold(filepath.Ext(path), texpackExt) {
		return decodeTexpackFile(path)
	}
	return decodeImageFile(path)
}

func decodeImageFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	channels := channelCount(data, src)
	if channels != 3 && channels != 4 {
		return nil, fmt.Errorf("texture %q (%s, %d channels): %w", path, format, channels, ErrUnsupportedChannels)
	}
	return convertImage(src, channels), nil
}

// convertImage packs src into tight channel bytes, flipped so that
// destination row 0 is the source's bottom row.
func convertImage(src image.Image, channels int) *Image {
	bounds := src.Bounds()
	img := &Image{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: channels,
		Pixels:   make([]byte, bounds.Dx()*bounds.Dy()*channels),
	}

	i := 0
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := src.At(x, y).RGBA()
			img.Pixels[i+0] = byte(r >> 8)
			img.Pixels[i+1] = byte(g >> 8)
			img.Pixels[i+2] = byte(b >> 8)
			if channels == 4 {
				img.Pixels[i+3] = byte(a >> 8)
			}
			i += channels
		}
	}
	return img
}

// channelCount reports how many channels the source file carries. The
// decoded Go type alone is not authoritative: the png decoder hands
// grayscale+alpha sources back as NRGBA, so for PNG the IHDR color type
// decides.
func channelCount(data []byte, src image.Image) int {
	if n, ok := pngChannels(data); ok {
		return n
	}
	switch src.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return 1
	case *image.YCbCr:
		return 3
	default:
		return 4
	}
}

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// pngChannels maps the IHDR color type byte onto a channel count.
func pngChannels(data []byte) (int, bool) {
	if len(data) < 26 || !bytes.HasPrefix(data, pngSignature) || string(data[12:16]) != "IHDR" {
		return 0, false
	}
	switch data[25] {
	case 0: // grayscale
		return 1, true
	case 4: // grayscale + alpha
		return 2, true
	case 2: // truecolor
		return 3, true
	case 3: // indexed, palette entries are RGB
		return 3, true
	case 6: // truecolor + alpha
		return 4, true
	}
	return 0, false
}

// flipVertical reverses the row order in place.
func flipVertical(img *Image) {
	stride := img.Width * img.Channels
	tmp := make([]byte, stride)
	for top, bottom := 0, img.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pixels[top*stride : top*stride+stride]
		b := img.Pixels[bottom*stride : bottom*stride+stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
