package render

// Geometry primitives drawn cell by cell. All take the cell to stamp;
// callers pick the rune and style (a space with a background color, or
// a block rune with a foreground color).

// DrawLine draws a line from (x1, y1) to (x2, y2) using Bresenham's
// algorithm.
func DrawLine(s Surface, x1, y1, x2, y2 int, c Cell) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		s.SetCell(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawLineThick draws a line widened to thickness cells, offset along
// the minor axis.
func DrawLineThick(s Surface, x1, y1, x2, y2, thickness int, c Cell) {
	if thickness < 1 {
		thickness = 1
	}
	lo := -(thickness - 1) / 2
	hi := thickness / 2
	steep := abs(y2-y1) > abs(x2-x1)
	for i := lo; i <= hi; i++ {
		if steep {
			DrawLine(s, x1+i, y1, x2+i, y2, c)
		} else {
			DrawLine(s, x1, y1+i, x2, y2+i, c)
		}
	}
}

// DrawRect draws the outline of the rectangle with corners (x1, y1)
// and (x2, y2).
func DrawRect(s Surface, x1, y1, x2, y2 int, c Cell) {
	DrawLine(s, x1, y1, x2, y1, c)
	DrawLine(s, x2, y1, x2, y2, c)
	DrawLine(s, x2, y2, x1, y2, c)
	DrawLine(s, x1, y2, x1, y1, c)
}

// DrawRectThick draws a rectangle outline with thick edges.
func DrawRectThick(s Surface, x1, y1, x2, y2, thickness int, c Cell) {
	DrawLineThick(s, x1, y1, x2, y1, thickness, c)
	DrawLineThick(s, x2, y1, x2, y2, thickness, c)
	DrawLineThick(s, x2, y2, x1, y2, thickness, c)
	DrawLineThick(s, x1, y2, x1, y1, thickness, c)
}

// FillRect fills the rectangle with corners (x1, y1) and (x2, y2).
func FillRect(s Surface, x1, y1, x2, y2 int, c Cell) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			s.SetCell(x, y, c)
		}
	}
}

// DrawCircle draws a circle outline centered at (cx, cy) using the
// midpoint algorithm.
func DrawCircle(s Surface, cx, cy, radius int, c Cell) {
	if radius < 0 {
		return
	}
	x := radius
	y := 0
	err := 1 - radius
	for x >= y {
		plot8(s, cx, cy, x, y, c)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// DrawCircleThick draws an annulus: radii radius-thickness+1 through
// radius.
func DrawCircleThick(s Surface, cx, cy, radius, thickness int, c Cell) {
	if thickness < 1 {
		thickness = 1
	}
	for r := radius - thickness + 1; r <= radius; r++ {
		DrawCircle(s, cx, cy, r, c)
	}
}

// DrawEllipse draws an axis-aligned ellipse outline centered at
// (cx, cy) with radii rx and ry.
func DrawEllipse(s Surface, cx, cy, rx, ry int, c Cell) {
	if rx < 0 || ry < 0 {
		return
	}
	if rx == 0 {
		DrawLine(s, cx, cy-ry, cx, cy+ry, c)
		return
	}
	if ry == 0 {
		DrawLine(s, cx-rx, cy, cx+rx, cy, c)
		return
	}

	// Region 1: slope > -1
	x, y := 0, ry
	rx2, ry2 := rx*rx, ry*ry
	d1 := ry2 - rx2*ry + rx2/4
	for ry2*x < rx2*y {
		plot4(s, cx, cy, x, y, c)
		if d1 < 0 {
			d1 += ry2 * (2*x + 3)
		} else {
			d1 += ry2*(2*x+3) + rx2*(2-2*y)
			y--
		}
		x++
	}

	// Region 2: slope <= -1
	d2 := ry2*(x*x+x) + ry2/4 + rx2*(y-1)*(y-1) - rx2*ry2
	for y >= 0 {
		plot4(s, cx, cy, x, y, c)
		if d2 < 0 {
			d2 += ry2*(2*x+2) + rx2*(3-2*y)
			x++
		} else {
			d2 += rx2 * (3 - 2*y)
		}
		y--
	}
}

// DrawEllipseThick draws an ellipse outline thickened inward.
func DrawEllipseThick(s Surface, cx, cy, rx, ry, thickness int, c Cell) {
	if thickness < 1 {
		thickness = 1
	}
	for i := 0; i < thickness; i++ {
		DrawEllipse(s, cx, cy, rx-i, ry-i, c)
	}
}

func plot8(s Surface, cx, cy, x, y int, c Cell) {
	s.SetCell(cx+x, cy+y, c)
	s.SetCell(cx-x, cy+y, c)
	s.SetCell(cx+x, cy-y, c)
	s.SetCell(cx-x, cy-y, c)
	s.SetCell(cx+y, cy+x, c)
	s.SetCell(cx-y, cy+x, c)
	s.SetCell(cx+y, cy-x, c)
	s.SetCell(cx-y, cy-x, c)
}

func plot4(s Surface, cx, cy, x, y int, c Cell) {
	s.SetCell(cx+x, cy+y, c)
	s.SetCell(cx-x, cy+y, c)
	s.SetCell(cx+x, cy-y, c)
	s.SetCell(cx-x, cy-y, c)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
