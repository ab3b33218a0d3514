// Package imaging produces the fixed set of derivative images for an
// upload.
package imaging

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"

	"pupper-backend/application/ports"
)

// Variant is one named resize target
type Variant struct {
	Name    string
	Width   int
	Height  int
	Format  imaging.Format
	Quality int
}

// DefaultVariants are the standard derivative sizes: the two square
// PNG renditions the frontend cards use, plus JPEG preview and
// thumbnail sizes
var DefaultVariants = []Variant{
	{Name: "400x400", Width: 400, Height: 400, Format: imaging.PNG, Quality: 85},
	{Name: "50x50", Width: 50, Height: 50, Format: imaging.PNG, Quality: 85},
	{Name: "800x600", Width: 800, Height: 600, Format: imaging.JPEG, Quality: 90},
	{Name: "200x150", Width: 200, Height: 150, Format: imaging.JPEG, Quality: 80},
}

// Resizer implements ports.Resizer with disintegration/imaging
type Resizer struct {
	variants []Variant
}

// NewResizer creates a resizer for the default variants
func NewResizer() *Resizer {
	return &Resizer{variants: DefaultVariants}
}

// Resize decodes the original once and produces every variant,
// preserving aspect ratio within each target's bounds
func (r *Resizer) Resize(data []byte) (map[string]ports.Derived, error) {
	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	derived := make(map[string]ports.Derived, len(r.variants))
	for _, v := range r.variants {
		resized := imaging.Fit(src, v.Width, v.Height, imaging.Lanczos)
		bounds := resized.Bounds()

		var buf bytes.Buffer
		var encodeErr error
		switch v.Format {
		case imaging.JPEG:
			encodeErr = imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(v.Quality))
		default:
			encodeErr = imaging.Encode(&buf, resized, v.Format)
		}
		if encodeErr != nil {
			return nil, fmt.Errorf("cannot encode %s: %w", v.Name, encodeErr)
		}

		derived[v.Name] = ports.Derived{
			Data:        buf.Bytes(),
			Width:       bounds.Dx(),
			Height:      bounds.Dy(),
			ContentType: contentType(v.Format),
			Ext:         ext(v.Format),
		}
	}
	return derived, nil
}

func contentType(f imaging.Format) string {
	if f == imaging.JPEG {
		return "image/jpeg"
	}
	return "image/png"
}

func ext(f imaging.Format) string {
	if f == imaging.JPEG {
		return "jpeg"
	}
	return "png"
}
