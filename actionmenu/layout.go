package actionmenu

import (
	"image"

	cfg "github.com/automoto/townfolk/config"
)

// layout computes the menu rectangle and item bounds, then recomposes the
// panel image. The previous image is released only after the new one exists.
func (m *Menu) layout() {
	style := cfg.ActionMenu
	spacing := style.ItemSpacing

	// content size
	w, h := 0, 0
	sizes := make([]image.Point, len(m.items))
	for i, it := range m.items {
		h += spacing
		if it.IsSeparator() {
			h += style.SeparatorHeight
		} else {
			sizes[i] = m.face.Measure(it.Label)
			w = max(w, sizes[i].X)
			h += sizes[i].Y
		}
		h += spacing
	}

	panelW := w + style.Border*2
	panelH := h + style.Border*2
	left := m.viewWidth/2 - panelW/2
	top := style.TopOffset
	m.rect = image.Rect(left, top, left+panelW, top+panelH)

	panel := Panel{
		Size:       image.Pt(panelW, panelH),
		Background: style.BackgroundColor,
	}

	yoffs := style.Border
	for i := range m.items {
		it := &m.items[i]
		var rowH int
		if it.IsSeparator() {
			rowH = style.SeparatorHeight + spacing*2
		} else {
			rowH = sizes[i].Y + spacing*2
		}
		it.Bounds = image.Rect(left+style.Border, top+yoffs, left+style.Border+w, top+yoffs+rowH)

		if !it.IsSeparator() {
			color := style.TextColorNormal
			if i == m.hovered {
				color = style.TextColorHighlight
			}
			panel.Labels = append(panel.Labels, Label{
				Text:   it.Label,
				Center: image.Pt(style.Border+w/2, yoffs+rowH/2),
				Color:  color,
			})
		}
		yoffs += rowH
	}

	m.panelPlan = panel
	next := m.compositor.Compose(panel)
	m.releasePanel()
	m.panel = next
}

func (m *Menu) releasePanel() {
	if m.panel != nil {
		m.panel.Release()
		m.panel = nil
	}
}
