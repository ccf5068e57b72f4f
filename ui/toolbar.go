package ui

// Anchor pins a toolbar to a corner or edge of the screen.
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
	BottomCenter
)

const (
	ToolbarMargin = 16
	ToolbarGap    = 8
)

// Toolbar lays a row of buttons out against an anchor.
type Toolbar struct {
	Anchor  Anchor
	Buttons []*Button
}

func NewToolbar(anchor Anchor, buttons ...*Button) *Toolbar {
	return &Toolbar{Anchor: anchor, Buttons: buttons}
}

func (t *Toolbar) width() float32 {
	var w float32
	for i, b := range t.Buttons {
		if i > 0 {
			w += ToolbarGap
		}
		w += b.W
	}
	return w
}

func (t *Toolbar) height() float32 {
	var h float32
	for _, b := range t.Buttons {
		if b.H > h {
			h = b.H
		}
	}
	return h
}

// Layout positions the buttons for a screen of the given size.
func (t *Toolbar) Layout(screenW, screenH int) {
	var x, y float32
	switch t.Anchor {
	case TopLeft:
		x, y = ToolbarMargin, ToolbarMargin
	case TopRight:
		x, y = float32(screenW)-ToolbarMargin-t.width(), ToolbarMargin
	case BottomCenter:
		x, y = float32(screenW)/2-t.width()/2, float32(screenH)-ToolbarMargin-t.height()
	}
	for _, b := range t.Buttons {
		b.X, b.Y = x, y
		x += b.W + ToolbarGap
	}
}

func (t *Toolbar) ButtonAt(mx, my int) *Button {
	for _, b := range t.Buttons {
		if b.IsMouseOver(mx, my) {
			return b
		}
	}
	return nil
}
