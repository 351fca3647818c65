package layout

import "github.com/bnema/dumber-overlay/internal/domain/entity"

// naturalSize asks GTK to size the widget from its content.
const naturalSize = -1

// ApplyGeometry positions w inside an overlay: the widget is anchored to the
// top-left corner, offset by the rect origin, and sized to the rect. A zero
// width or height keeps the natural size on that axis.
func ApplyGeometry(w Widget, r entity.Rect) {
	if w == nil {
		return
	}
	w.SetHalign(AlignStart)
	w.SetValign(AlignStart)
	w.SetMarginStart(max(r.X, 0))
	w.SetMarginTop(max(r.Y, 0))
	w.SetSizeRequest(sizeOrNatural(r.Width), sizeOrNatural(r.Height))
}

func sizeOrNatural(v int) int {
	if v <= 0 {
		return naturalSize
	}
	return v
}
