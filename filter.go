package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// loadBackdrop decodes the PNG at path and applies the one-shot color remap
// toward the accent hue.
func loadBackdrop(path string, accent rgb) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return remapImage(src, accent), nil
}

// remapImage shifts pixels whose hue falls within the source band toward the
// accent hue, preserving saturation, value, and alpha. Runs once at load;
// nothing re-filters at frame time.
func remapImage(src image.Image, accent rgb) *image.NRGBA {
	bounds := src.Bounds()
	out := image.NewNRGBA(bounds)
	draw.Draw(out, bounds, src, bounds.Min, draw.Src)

	accentHue, _, _ := colorful.Color{
		R: float64(accent.r) / 255,
		G: float64(accent.g) / 255,
		B: float64(accent.b) / 255,
	}.Hsv()

	for i := 0; i < len(out.Pix); i += 4 {
		h, s, v := colorful.Color{
			R: float64(out.Pix[i]) / 255,
			G: float64(out.Pix[i+1]) / 255,
			B: float64(out.Pix[i+2]) / 255,
		}.Hsv()
		d := hueDelta(h, remapHueCenter)
		if math.Abs(d) > remapHueWidth {
			continue
		}
		mapped := colorful.Hsv(math.Mod(accentHue+d*0.35+360, 360), s, v)
		out.Pix[i] = uint8(clampf(mapped.R, 0, 1) * 255)
		out.Pix[i+1] = uint8(clampf(mapped.G, 0, 1) * 255)
		out.Pix[i+2] = uint8(clampf(mapped.B, 0, 1) * 255)
	}
	return out
}

// hueDelta returns the wrapped hue difference a-b in [-180, 180].
func hueDelta(a, b float64) float64 {
	d := math.Mod(a-b+540, 360)
	return d - 180
}
