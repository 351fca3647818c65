// Package entity defines domain entities for the overlay dialogs.
package entity

// Rect is a dialog rectangle in host window coordinates.
// Any field may be left unset; unset fields are zero.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Merge returns r with every unset field of patch taken from r and every set
// field taken from patch.
//
// A field counts as unset when it is zero, so a patch can never move a dialog
// to x=0 or shrink it to a zero size. Callers that need those values must
// build the full Rect themselves.
func (r Rect) Merge(patch Rect) Rect {
	return Rect{
		X:      pick(patch.X, r.X),
		Y:      pick(patch.Y, r.Y),
		Width:  pick(patch.Width, r.Width),
		Height: pick(patch.Height, r.Height),
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func pick(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}
