package actionmenu

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextFace measures label text.
type TextFace interface {
	Measure(text string) image.Point
}

// Label is a styled label positioned by its center, in panel coordinates.
type Label struct {
	Text   string
	Center image.Point
	Color  color.RGBA
}

// Panel describes the composed menu image.
type Panel struct {
	Size       image.Point
	Background color.RGBA
	Labels     []Label
}

// Image is a composed panel owned by the menu until released.
type Image interface {
	Size() image.Point
	Release()
}

// Compositor turns a Panel into an Image.
type Compositor interface {
	Compose(p Panel) Image
}

// Target is a surface the menu can be blitted onto.
type Target interface {
	Blit(img Image, at image.Point)
}

// FontFace adapts a font.Face to TextFace. Height is ascent plus descent.
type FontFace struct {
	Face font.Face
}

func (f FontFace) Measure(text string) image.Point {
	m := f.Face.Metrics()
	return image.Pt(font.MeasureString(f.Face, text).Ceil(), m.Ascent.Ceil()+m.Descent.Ceil())
}

// RasterImage is a composed panel in CPU memory.
type RasterImage struct {
	RGBA *image.RGBA
}

func (r *RasterImage) Size() image.Point {
	if r.RGBA == nil {
		return image.Point{}
	}
	return r.RGBA.Bounds().Size()
}

func (r *RasterImage) Release() {
	r.RGBA = nil
}

// RasterCompositor draws panels into *image.RGBA with a font.Face.
type RasterCompositor struct {
	Face font.Face
}

func (c RasterCompositor) Compose(p Panel) Image {
	return &RasterImage{RGBA: c.Rasterize(p)}
}

// Rasterize fills the panel background and draws every label centered on its
// anchor point.
func (c RasterCompositor) Rasterize(p Panel) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: p.Size})
	draw.Draw(dst, dst.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)

	face := FontFace{Face: c.Face}
	ascent := c.Face.Metrics().Ascent.Ceil()
	for _, l := range p.Labels {
		size := face.Measure(l.Text)
		x := l.Center.X - size.X/2
		y := l.Center.Y - size.Y/2 + ascent
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(l.Color),
			Face: c.Face,
			Dot:  fixed.P(x, y),
		}
		d.DrawString(l.Text)
	}
	return dst
}
