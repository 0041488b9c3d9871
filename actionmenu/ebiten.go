package actionmenu

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// EbitenImage is a composed panel uploaded to the GPU.
type EbitenImage struct {
	Image *ebiten.Image
}

func (e *EbitenImage) Size() image.Point {
	if e.Image == nil {
		return image.Point{}
	}
	return e.Image.Bounds().Size()
}

func (e *EbitenImage) Release() {
	if e.Image != nil {
		e.Image.Deallocate()
		e.Image = nil
	}
}

// EbitenCompositor rasterizes panels on the CPU and uploads the result.
type EbitenCompositor struct {
	raster RasterCompositor
}

func NewEbitenCompositor(face font.Face) *EbitenCompositor {
	return &EbitenCompositor{raster: RasterCompositor{Face: face}}
}

func (c *EbitenCompositor) Compose(p Panel) Image {
	rgba := c.raster.Rasterize(p)
	if rgba.Bounds().Empty() {
		return &EbitenImage{}
	}
	return &EbitenImage{Image: ebiten.NewImageFromImage(rgba)}
}

// EbitenTarget draws menu images onto an ebiten screen.
type EbitenTarget struct {
	Screen *ebiten.Image
}

func (t EbitenTarget) Blit(img Image, at image.Point) {
	e, ok := img.(*EbitenImage)
	if !ok || e.Image == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	t.Screen.DrawImage(e.Image, op)
}
