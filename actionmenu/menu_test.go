package actionmenu

import (
	"bytes"
	"image"
	"testing"

	cfg "github.com/automoto/townfolk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

type fakePrimary struct {
	pressing bool
	locked   bool
	locks    int
}

func (p *fakePrimary) Pressing() bool { return p.pressing }
func (p *fakePrimary) Locked() bool   { return p.locked }
func (p *fakePrimary) Lock() {
	p.locked = true
	p.locks++
}

// trackingCompositor wraps RasterCompositor and counts live images.
type trackingCompositor struct {
	RasterCompositor
	live     int
	composed int
}

type trackedImage struct {
	*RasterImage
	c *trackingCompositor
}

func (t *trackedImage) Release() {
	t.RasterImage.Release()
	t.c.live--
}

func (c *trackingCompositor) Compose(p Panel) Image {
	c.live++
	c.composed++
	return &trackedImage{RasterImage: &RasterImage{RGBA: c.Rasterize(p)}, c: c}
}

type recordingTarget struct {
	blits []image.Point
}

func (r *recordingTarget) Blit(img Image, at image.Point) {
	r.blits = append(r.blits, at)
}

func newTestMenu() (*Menu, *trackingCompositor) {
	comp := &trackingCompositor{RasterCompositor: RasterCompositor{Face: basicfont.Face7x13}}
	return New(FontFace{Face: basicfont.Face7x13}, comp, 640, DefaultLabels()), comp
}

func tradeNPC() *fakeNPC {
	return &fakeNPC{nodes: []node{{1, "Greet"}, {2, ""}, {3, "Trade"}}}
}

func center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

func TestSetNPCShowsMenu(t *testing.T) {
	m, comp := newTestMenu()
	m.SetNPC(tradeNPC())

	assert.True(t, m.Visible())
	assert.False(t, m.Resolved())
	assert.Equal(t, Outcome{}, m.Outcome())
	assert.Equal(t, -1, m.Hovered())
	assert.Equal(t, []string{"dialog:3", "dialog:1", "", "cancel"}, ids(m.Items()))
	assert.Equal(t, 1, comp.live)
}

func TestSetNPCAutoResolves(t *testing.T) {
	for _, tc := range []struct {
		name     string
		npc      *fakeNPC
		expected Outcome
	}{
		{"single topic", &fakeNPC{nodes: []node{{5, "Hello"}, {6, ""}}}, Dialog(5)},
		{"vendor only", &fakeNPC{vendor: true}, Vendor()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, comp := newTestMenu()
			m.SetNPC(tc.npc)

			assert.True(t, m.Resolved())
			assert.False(t, m.Visible())
			assert.Equal(t, tc.expected, m.Outcome())
			assert.Nil(t, m.Image())
			assert.Zero(t, comp.composed)

			// never becomes visible, even when ticked with a click
			p := &fakePrimary{pressing: true}
			m.Tick(image.Pt(320, 60), p)
			assert.False(t, m.Visible())
			assert.Equal(t, tc.expected, m.Outcome())
			assert.Zero(t, p.locks)
		})
	}
}

func TestSetNPCNilClears(t *testing.T) {
	m, comp := newTestMenu()
	m.SetNPC(tradeNPC())
	m.SetNPC(nil)

	assert.Nil(t, m.NPC())
	assert.Empty(t, m.Items())
	assert.False(t, m.Visible())
	assert.False(t, m.Resolved())
	assert.Equal(t, -1, m.Hovered())
	assert.Nil(t, m.Image())
	assert.Zero(t, comp.live)

	target := &recordingTarget{}
	m.Draw(target)
	assert.Empty(t, target.blits)
}

func TestLayoutGeometry(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())

	// widest label "Cancel" is 42px, 13px tall labels
	assert.Equal(t, image.Rect(291, 40, 349, 113), m.Rect())

	items := m.Items()
	assert.Equal(t, image.Rect(299, 48, 341, 65), items[0].Bounds)
	assert.Equal(t, image.Rect(299, 65, 341, 82), items[1].Bounds)
	assert.Equal(t, image.Rect(299, 82, 341, 88), items[2].Bounds)
	assert.Equal(t, image.Rect(299, 88, 341, 105), items[3].Bounds)

	panel := m.Panel()
	assert.Equal(t, image.Pt(58, 73), panel.Size)
	assert.Equal(t, cfg.ActionMenu.BackgroundColor, panel.Background)
	require.Len(t, panel.Labels, 3)
	assert.Equal(t, Label{Text: "Trade", Center: image.Pt(29, 16), Color: cfg.ActionMenu.TextColorNormal}, panel.Labels[0])
	assert.Equal(t, Label{Text: "Cancel", Center: image.Pt(29, 56), Color: cfg.ActionMenu.TextColorNormal}, panel.Labels[2])
	assert.Equal(t, panel.Size, m.Image().Size())
}

func TestLayoutIdempotent(t *testing.T) {
	m, comp := newTestMenu()
	m.SetNPC(tradeNPC())
	m.setHovered(1)

	items := append([]Item(nil), m.Items()...)
	rect := m.Rect()
	pix := bytes.Clone(m.Image().(*trackedImage).RGBA.Pix)

	m.layout()

	assert.Equal(t, items, m.Items())
	assert.Equal(t, rect, m.Rect())
	assert.Equal(t, pix, m.Image().(*trackedImage).RGBA.Pix)
	assert.Equal(t, 1, comp.live, "previous image released")
}

func TestTickHover(t *testing.T) {
	m, comp := newTestMenu()
	m.SetNPC(tradeNPC())
	items := m.Items()
	p := &fakePrimary{}

	m.Tick(center(items[1].Bounds), p)
	assert.Equal(t, 1, m.Hovered())
	assert.Equal(t, cfg.ActionMenu.TextColorHighlight, m.Panel().Labels[1].Color)
	assert.Equal(t, cfg.ActionMenu.TextColorNormal, m.Panel().Labels[0].Color)
	composed := comp.composed

	// same item again does not relayout
	m.Tick(center(items[1].Bounds), p)
	assert.Equal(t, composed, comp.composed)

	// separators are never hovered
	m.Tick(center(items[2].Bounds), p)
	assert.Equal(t, -1, m.Hovered())

	m.Tick(center(items[0].Bounds), p)
	assert.Equal(t, 0, m.Hovered())

	// outside of the menu
	m.Tick(image.Pt(0, 0), p)
	assert.Equal(t, -1, m.Hovered())
	for _, l := range m.Panel().Labels {
		assert.Equal(t, cfg.ActionMenu.TextColorNormal, l.Color)
	}
	assert.Equal(t, 1, comp.live)
	assert.False(t, m.Resolved())
}

func TestTickClickCancel(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())
	cancel := m.Items()[3]

	p := &fakePrimary{pressing: true}
	m.Tick(center(cancel.Bounds), p)

	assert.True(t, m.Resolved())
	assert.Equal(t, Cancel(), m.Outcome())
	assert.False(t, m.Visible())
	assert.True(t, p.locked)
	assert.Equal(t, 1, p.locks)

	target := &recordingTarget{}
	m.Draw(target)
	assert.Empty(t, target.blits)
}

func TestTickClickDialog(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())

	m.Tick(center(m.Items()[0].Bounds), &fakePrimary{pressing: true})
	assert.Equal(t, Dialog(3), m.Outcome())
	assert.False(t, m.Visible())
}

func TestTickClickVendor(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(&fakeNPC{nodes: []node{{1, "News"}}, vendor: true})
	require.Equal(t, VendorID, m.Items()[2].ID())

	m.Tick(center(m.Items()[2].Bounds), &fakePrimary{pressing: true})
	assert.Equal(t, Vendor(), m.Outcome())
}

func TestTickClickOnce(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())
	items := m.Items()

	m.Tick(center(items[1].Bounds), &fakePrimary{pressing: true})
	require.Equal(t, Dialog(1), m.Outcome())

	p := &fakePrimary{pressing: true}
	m.Tick(center(items[3].Bounds), p)
	assert.Equal(t, Dialog(1), m.Outcome())
	assert.False(t, m.Visible())
	assert.Zero(t, p.locks)

	m.Cancel()
	assert.Equal(t, Dialog(1), m.Outcome())
}

func TestTickLocked(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())

	p := &fakePrimary{pressing: true, locked: true}
	m.Tick(center(m.Items()[3].Bounds), p)
	assert.False(t, m.Resolved())
	assert.True(t, m.Visible())
	assert.Equal(t, -1, m.Hovered(), "no hit-testing while locked")
}

func TestTickClickSeparator(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())

	p := &fakePrimary{pressing: true}
	m.Tick(center(m.Items()[2].Bounds), p)
	assert.False(t, m.Resolved())
	assert.True(t, m.Visible())
	assert.True(t, p.locked)
}

func TestTickClickOutside(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())

	p := &fakePrimary{pressing: true}
	m.Tick(image.Pt(5, 300), p)
	assert.False(t, m.Resolved())
	assert.Zero(t, p.locks)
}

func TestCancel(t *testing.T) {
	m, _ := newTestMenu()
	m.Cancel()
	assert.False(t, m.Resolved(), "hidden menu cannot be cancelled")

	m.SetNPC(tradeNPC())
	m.Cancel()
	assert.True(t, m.Resolved())
	assert.Equal(t, Cancel(), m.Outcome())
	assert.False(t, m.Visible())
}

func TestDraw(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())

	target := &recordingTarget{}
	m.Draw(target)
	assert.Equal(t, []image.Point{{291, 40}}, target.blits)
}

func TestRelayoutReleasesImages(t *testing.T) {
	m, comp := newTestMenu()
	for i := 0; i < 5; i++ {
		m.SetNPC(tradeNPC())
		m.Tick(center(m.Items()[i%2].Bounds), &fakePrimary{})
	}
	assert.Equal(t, 1, comp.live)

	m.SetNPC(nil)
	assert.Zero(t, comp.live)
}

func TestRasterLabelColors(t *testing.T) {
	m, _ := newTestMenu()
	m.SetNPC(tradeNPC())
	m.Tick(center(m.Items()[0].Bounds), &fakePrimary{})

	rgba := m.Image().(*trackedImage).RGBA
	bg := cfg.ActionMenu.BackgroundColor
	assert.Equal(t, bg, rgba.RGBAAt(0, 0))

	var highlight bool
	hl := cfg.ActionMenu.TextColorHighlight
	for y := 8; y < 25; y++ {
		for x := 8; x < 50; x++ {
			if rgba.RGBAAt(x, y) == hl {
				highlight = true
			}
		}
	}
	assert.True(t, highlight, "hovered label drawn in highlight color")
}
