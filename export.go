package main

import (
	"errors"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// exportPDF generates the styled CV document and writes it to a path chosen
// by the user. A cancelled dialog is a no-op; a missing dialog backend falls
// back to the default filename.
func (g *Game) exportPDF() {
	data, pages, err := buildCVPDF(*cvFlag)
	if err != nil {
		log.Printf("cv export: %v", err)
		return
	}
	path, err := zenity.SelectFileSave(
		zenity.Title("Export CV PDF"),
		zenity.Filename("cv.pdf"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "PDF", Patterns: []string{"*.pdf"}}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return
	}
	if err != nil || path == "" {
		path = "cv.pdf"
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("cv export: %v", err)
		return
	}
	log.Printf("wrote %s (%d pages)", path, pages)
}

// requestScreenshot picks a destination and arms the capture; the next Draw
// reads the frame back.
func (g *Game) requestScreenshot() {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("starfield.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "PNG", Patterns: []string{"*.png"}}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return
	}
	if err != nil || path == "" {
		path = "starfield.png"
	}
	g.shotPath = path
	g.shotPending = true
}

// captureShot reads the rendered frame and encodes it as PNG.
func (g *Game) captureShot(screen *ebiten.Image) {
	if !g.shotPending {
		return
	}
	g.shotPending = false

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	buf := make([]byte, 4*w*h)
	screen.ReadPixels(buf)
	img := &image.RGBA{Pix: buf, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}

	f, err := os.Create(g.shotPath)
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("wrote %s", g.shotPath)
}
