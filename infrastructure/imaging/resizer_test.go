package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestResizeProducesAllVariants(t *testing.T) {
	r := NewResizer()

	derived, err := r.Resize(testPNG(t, 1000, 800))
	require.NoError(t, err)
	require.Len(t, derived, len(DefaultVariants))

	for _, v := range DefaultVariants {
		d, ok := derived[v.Name]
		require.Truef(t, ok, "missing variant %s", v.Name)

		assert.LessOrEqual(t, d.Width, v.Width)
		assert.LessOrEqual(t, d.Height, v.Height)
		assert.NotEmpty(t, d.Data)
	}

	// aspect ratio 5:4 fits 400x400 as 400x320
	assert.Equal(t, 400, derived["400x400"].Width)
	assert.Equal(t, 320, derived["400x400"].Height)

	assert.Equal(t, "image/png", derived["50x50"].ContentType)
	assert.Equal(t, "png", derived["50x50"].Ext)
	assert.Equal(t, "image/jpeg", derived["800x600"].ContentType)
	assert.Equal(t, "jpeg", derived["200x150"].Ext)
}

func TestResizeEncodesDecodableOutput(t *testing.T) {
	r := NewResizer()

	derived, err := r.Resize(testPNG(t, 600, 600))
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(derived["400x400"].Data))
	require.NoError(t, err)
	assert.Equal(t, 400, decoded.Bounds().Dx())
	assert.Equal(t, 400, decoded.Bounds().Dy())
}

func TestResizeRejectsGarbage(t *testing.T) {
	r := NewResizer()

	_, err := r.Resize([]byte("definitely not an image"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode image")
}
