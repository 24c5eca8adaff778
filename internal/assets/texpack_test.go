package assets

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientImage(w, h, channels int) *Image {
	img := &Image{Width: w, Height: h, Channels: channels, Pixels: make([]byte, w*h*channels)}
	for i := range img.Pixels {
		img.Pixels[i] = byte(i % 7)
	}
	return img
}

func TestTexpackRoundTripStored(t *testing.T) {
	src := gradientImage(3, 2, 3)

	data, err := EncodeTexpack(src, false)
	require.NoError(t, err)

	decoded, err := DecodeTexpack(data)
	require.NoError(t, err)
	assert.Equal(t, src.Width, decoded.Width)
	assert.Equal(t, src.Height, decoded.Height)
	assert.Equal(t, src.Channels, decoded.Channels)
	assert.Equal(t, src.Pixels, decoded.Pixels)
}

func TestTexpackRoundTripLZ4(t *testing.T) {
	// Repetitive rows so the LZ4 path actually engages.
	src := &Image{Width: 16, Height: 16, Channels: 4, Pixels: bytes.Repeat([]byte{1, 2, 3, 4}, 16*16)}

	data, err := EncodeTexpack(src, true)
	require.NoError(t, err)
	assert.Less(t, len(data), len(src.Pixels), "payload should have compressed")

	decoded, err := DecodeTexpack(data)
	require.NoError(t, err)
	assert.Equal(t, src.Pixels, decoded.Pixels)
}

func dxtTexpack(t *testing.T, pixfmt uint32, payload []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString(texpackMagic)
	hdr := texpackHeader{
		Width: 4, Height: 4, Channels: 4,
		Pixfmt:  pixfmt,
		Codec:   codecStored,
		RawSize: uint32(len(payload)),
		PaySize: uint32(len(payload)),
	}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, hdr))
	buf.Write(payload)
	return buf.Bytes()
}

func TestTexpackDecodesDXT1(t *testing.T) {
	// One 4x4 block: both endpoint colors pure red (RGB565 0xF800), all
	// indices zero, so every pixel decodes to opaque red.
	block := []byte{0x00, 0xf8, 0x00, 0xf8, 0x00, 0x00, 0x00, 0x00}

	img, err := DecodeTexpack(dxtTexpack(t, pixfmtDXT1, block))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Width)
	assert.Equal(t, 4, img.Height)
	assert.Equal(t, 4, img.Channels)
	require.Len(t, img.Pixels, 4*4*4)
	for i := 0; i < len(img.Pixels); i += 4 {
		assert.Equal(t, []byte{255, 0, 0, 255}, img.Pixels[i:i+4])
	}
}

func TestTexpackDecodesDXT5(t *testing.T) {
	// Alpha block: both endpoints 255, all indices zero. Color block as in
	// the DXT1 test.
	block := []byte{
		0xff, 0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0xf8, 0x00, 0xf8, 0x00, 0x00, 0x00, 0x00,
	}

	img, err := DecodeTexpack(dxtTexpack(t, pixfmtDXT5, block))
	require.NoError(t, err)
	assert.Equal(t, 4, img.Channels)
	require.Len(t, img.Pixels, 4*4*4)
	for i := 0; i < len(img.Pixels); i += 4 {
		assert.Equal(t, []byte{255, 0, 0, 255}, img.Pixels[i:i+4])
	}
}

func TestTexpackRejectsBadMagic(t *testing.T) {
	_, err := DecodeTexpack([]byte("NOTATEXZ00000000000000000000000000000000"))
	require.Error(t, err)
}

func TestTexpackRejectsUnsupportedChannels(t *testing.T) {
	_, err := EncodeTexpack(&Image{Width: 1, Height: 1, Channels: 2, Pixels: []byte{0, 0}}, false)
	require.ErrorIs(t, err, ErrUnsupportedChannels)

	var buf bytes.Buffer
	buf.WriteString(texpackMagic)
	hdr := texpackHeader{Width: 1, Height: 1, Channels: 2, Pixfmt: pixfmtRaw, Codec: codecStored, RawSize: 2, PaySize: 2}
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, hdr))
	buf.Write([]byte{0, 0})

	_, err = DecodeTexpack(buf.Bytes())
	require.ErrorIs(t, err, ErrUnsupportedChannels)
}

func TestTexpackRejectsTruncatedPayload(t *testing.T) {
	src := gradientImage(2, 2, 4)
	data, err := EncodeTexpack(src, false)
	require.NoError(t, err)

	_, err = DecodeTexpack(data[:len(data)-3])
	require.Error(t, err)
}
