package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/galaco/dxt"
	"github.com/pierrec/lz4/v4"
)

// texpack is a small packed texture container: a fixed little-endian header
// followed by one payload, which may be raw pixel rows, an LZ4 block, or a
// DXT1/DXT5 compressed surface (optionally LZ4-wrapped).
//
// layout:
//   magic    [8]byte  "TEXZ0001"
//   width    uint32
//   height   uint32
//   channels uint32   3 or 4 (DXT payloads always unpack to 4)
//   pixfmt   uint32   0=raw rows, 1=DXT1, 2=DXT5
//   codec    uint32   0=stored, 1=LZ4 block
//   rawSize  uint32   payload size after LZ4, before DXT unpacking
//   paySize  uint32   payload size as stored in the file
//   payload  [paySize]byte

const (
	texpackExt   = ".texz"
	texpackMagic = "TEXZ0001"

	pixfmtRaw  = 0
	pixfmtDXT1 = 1
	pixfmtDXT5 = 2

	codecStored = 0
	codecLZ4    = 1
)

type texpackHeader struct {
	Width    uint32
	Height   uint32
	Channels uint32
	Pixfmt   uint32
	Codec    uint32
	RawSize  uint32
	PaySize  uint32
}

func decodeTexpackFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	img, err := DecodeTexpack(data)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}
	return img, nil
}

// DecodeTexpack parses a texpack payload into a vertically flipped Image.
func DecodeTexpack(data []byte) (*Image, error) {
	r := bytes.NewReader(data)

	magic := make([]byte, len(texpackMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("read magic: %w", err)
	}
	if string(magic) != texpackMagic {
		return nil, fmt.Errorf("not a %s file", texpackMagic)
	}

	var hdr texpackHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if hdr.Width == 0 || hdr.Height == 0 {
		return nil, fmt.Errorf("empty %dx%d surface", hdr.Width, hdr.Height)
	}
	if hdr.Channels != 3 && hdr.Channels != 4 {
		return nil, fmt.Errorf("%d channels: %w", hdr.Channels, ErrUnsupportedChannels)
	}

	payload := make([]byte, hdr.PaySize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	raw := payload
	switch hdr.Codec {
	case codecStored:
	case codecLZ4:
		raw = make([]byte, hdr.RawSize)
		n, err := lz4.UncompressBlock(payload, raw)
		if err != nil {
			return nil, fmt.Errorf("lz4: %w", err)
		}
		raw = raw[:n]
	default:
		return nil, fmt.Errorf("unknown codec %d", hdr.Codec)
	}

	width, height := int(hdr.Width), int(hdr.Height)
	channels := int(hdr.Channels)

	switch hdr.Pixfmt {
	case pixfmtRaw:
		if len(raw) != width*height*channels {
			return nil, fmt.Errorf("payload is %d bytes, want %d", len(raw), width*height*channels)
		}
	case pixfmtDXT1, pixfmtDXT5:
		rect := image.Rect(0, 0, width, height)
		var surf image.Image
		if hdr.Pixfmt == pixfmtDXT1 {
			d := dxt.NewDxt1(rect)
			if err := d.Decompress(raw); err != nil {
				return nil, fmt.Errorf("dxt1: %w", err)
			}
			surf = d
		} else {
			d := dxt.NewDxt5(rect)
			if err := d.Decompress(raw, false); err != nil {
				return nil, fmt.Errorf("dxt5: %w", err)
			}
			surf = d
		}
		// DXT surfaces always unpack to RGBA; convertImage also flips.
		return convertImage(surf, 4), nil
	default:
		return nil, fmt.Errorf("unknown pixel format %d", hdr.Pixfmt)
	}

	img := &Image{Width: width, Height: height, Channels: channels, Pixels: raw}
	flipVertical(img)
	return img, nil
}

// EncodeTexpack writes img as a texpack payload, LZ4-compressing the pixel
// rows when that actually shrinks them. Rows are stored top-to-bottom, so
// the encoder undoes the in-memory flip.
func EncodeTexpack(img *Image, compress bool) ([]byte, error) {
	if img.Channels != 3 && img.Channels != 4 {
		return nil, fmt.Errorf("%d channels: %w", img.Channels, ErrUnsupportedChannels)
	}
	if len(img.Pixels) != img.Width*img.Height*img.Channels {
		return nil, fmt.Errorf("pixel buffer is %d bytes, want %d", len(img.Pixels), img.Width*img.Height*img.Channels)
	}

	topDown := &Image{
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Channels,
		Pixels:   append([]byte(nil), img.Pixels...),
	}
	flipVertical(topDown)
	raw := topDown.Pixels

	payload := raw
	codec := uint32(codecStored)
	if compress {
		buf := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := lz4.CompressBlock(raw, buf, nil)
		if err == nil && n > 0 && n < len(raw) {
			payload = buf[:n]
			codec = codecLZ4
		}
	}

	hdr := texpackHeader{
		Width:    uint32(img.Width),
		Height:   uint32(img.Height),
		Channels: uint32(img.Channels),
		Pixfmt:   pixfmtRaw,
		Codec:    codec,
		RawSize:  uint32(len(raw)),
		PaySize:  uint32(len(payload)),
	}

	var out bytes.Buffer
	out.WriteString(texpackMagic)
	if err := binary.Write(&out, binary.LittleEndian, hdr); err != nil {
		return nil, err
	}
	out.Write(payload)
	return out.Bytes(), nil
}
