package render

// MemBuffer is an in-memory Renderer. It backs headless runs and lets
// tests inspect exactly what a frame wrote, including how many clears
// and presents the loop issued.
type MemBuffer struct {
	width  int
	height int
	cells  []Cell

	Clears   int
	Presents int
}

// NewMemBuffer allocates a cleared in-memory render target.
func NewMemBuffer(width, height int) *MemBuffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &MemBuffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Size returns the buffer dimensions.
func (b *MemBuffer) Size() (int, int) {
	return b.width, b.height
}

// SetCell writes a cell; out-of-range writes are ignored.
func (b *MemBuffer) SetCell(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
}

// At returns the cell at (x, y), transparent when out of range.
func (b *MemBuffer) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Clear resets every cell to transparent.
func (b *MemBuffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
	b.Clears++
}

// Present counts the frame as shown. There is nothing to flush.
func (b *MemBuffer) Present() {
	b.Presents++
}
