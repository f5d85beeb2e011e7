package grid

// Regions partitions the passable cells (everything but Obstacle) into
// 4-connected regions, using the Neighbors4 order. Regions are listed in
// row-major order of their first cell; cells within a region are in BFS
// order from that cell.
//
// Time:   O(rows·cols).
// Memory: O(rows·cols) for visited flags and output.
func (g *Grid) Regions() [][]Point {
	seen := make([]bool, g.rows*g.cols)
	var regions [][]Point

	for x := 0; x < g.rows; x++ {
		for y := 0; y < g.cols; y++ {
			if g.cells[x][y] == Obstacle || seen[x*g.cols+y] {
				continue
			}
			regions = append(regions, g.flood(Point{X: x, Y: y}, seen))
		}
	}

	return regions
}

// Connected reports whether a and b are passable and lie in the same
// 4-connected region. Out-of-bounds points are never connected.
func (g *Grid) Connected(a, b Point) bool {
	if !g.passable(a) || !g.passable(b) {
		return false
	}
	if a == b {
		return true
	}
	seen := make([]bool, g.rows*g.cols)
	for _, p := range g.flood(a, seen) {
		if p == b {
			return true
		}
	}

	return false
}

func (g *Grid) passable(p Point) bool {
	s, ok := g.At(p.X, p.Y)
	return ok && s != Obstacle
}

// flood collects the region containing from, marking seen as it goes.
func (g *Grid) flood(from Point, seen []bool) []Point {
	seen[from.X*g.cols+from.Y] = true
	queue := []Point{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Neighbors4 {
			v := u.Add(d)
			if !g.passable(v) || seen[v.X*g.cols+v.Y] {
				continue
			}
			seen[v.X*g.cols+v.Y] = true
			queue = append(queue, v)
		}
	}

	return queue
}
