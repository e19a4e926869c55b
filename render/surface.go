package render

// Surface receives cell writes. Writes outside the surface bounds must
// be ignored by implementations.
type Surface interface {
	Size() (width, height int)
	SetCell(x, y int, c Cell)
}

// Renderer is the frame-level drawing boundary the engine calls into:
// a surface plus frame clearing and presentation. The terminal screen
// implements it in production; MemBuffer implements it for tests.
type Renderer interface {
	Surface
	Clear()
	Present()
}

// CopyRegion blits the src region of tex into the dst rect on s,
// scaled nearest-neighbor. A zero src selects the full texture.
// Transparent cells (zero rune) are skipped.
func CopyRegion(s Surface, tex *Texture, src, dst Rect) {
	if tex == nil || dst.Empty() {
		return
	}
	if src.Empty() {
		src = Rect{W: tex.Width, H: tex.Height}
	}
	if src.Empty() {
		return
	}
	for dy := 0; dy < dst.H; dy++ {
		sy := src.Y + dy*src.H/dst.H
		for dx := 0; dx < dst.W; dx++ {
			sx := src.X + dx*src.W/dst.W
			c := tex.At(sx, sy)
			if c.Rune == 0 {
				continue
			}
			s.SetCell(dst.X+dx, dst.Y+dy, c)
		}
	}
}
