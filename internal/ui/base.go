package ui

// Base carries the screen region a component was given. Embed it in models
// that lay themselves out from their own size.
type Base struct {
	width, height int
}

// SetSize records the region. Negative sizes collapse to zero.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// Width returns the component width.
func (b Base) Width() int { return b.width }

// Height returns the component height.
func (b Base) Height() int { return b.height }

// Empty reports whether the region is too small to draw anything.
func (b Base) Empty() bool { return b.width == 0 || b.height == 0 }
