package raster

// clipSegment clips (x0,y0)-(x1,y1) to the rectangle [minX,maxX]×[minY,maxY]
// using Liang–Barsky. visible is false when nothing of the segment remains.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float32) (cx0, cy0, cx1, cy1 float32, visible bool) {
	if minX > maxX || minY > maxY {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := float32(0), float32(1)

	edges := [4][2]float32{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
