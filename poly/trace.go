// Package poly builds vector geometries from labelled raster cells.
package poly

import (
	"math"
	"sort"

	"github.com/maseology/mmaths"
	"github.com/paulmach/orb"
)

// Region is one contiguous patch of equal-valued cells traced to a
// polygon, outer ring counter-clockwise, holes clockwise.
type Region struct {
	Code int
	Poly orb.Polygon
}

var dirs = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}} // E S W N on the corner lattice, j increasing southward

type corner struct{ i, j int }

type rc struct{ r, c int }

// Trace vectorizes a labelled cell map to one Region per 4-connected
// patch, ordered by the lowest cell id within each patch. Cells are
// placed on a row-column lattice inferred from their centroids.
func Trace(vals map[int]int, coord map[int]mmaths.Point, cw float64) []Region {
	if len(vals) == 0 {
		return nil
	}
	cids := make([]int, 0, len(vals))
	for c := range vals {
		cids = append(cids, c)
	}
	sort.Ints(cids)

	ref := cids[0]
	x0, y0 := coord[ref].X, coord[ref].Y
	latt := make(map[rc]int, len(vals))
	pos := make(map[int]rc, len(vals))
	for _, c := range cids {
		p := rc{
			int(math.Round((y0 - coord[c].Y) / cw)),
			int(math.Round((coord[c].X - x0) / cw)),
		}
		latt[p] = c
		pos[c] = p
	}
	world := func(cn corner) orb.Point {
		return orb.Point{
			x0 + (float64(cn.i)-.5)*cw,
			y0 - (float64(cn.j)-.5)*cw,
		}
	}

	var rgns []Region
	done := make(map[int]bool, len(vals))
	for _, seed := range cids {
		if done[seed] {
			continue
		}
		v := vals[seed]
		comp := []int{seed}
		done[seed] = true
		for q := []int{seed}; len(q) > 0; {
			p := pos[q[0]]
			q = q[1:]
			for _, d := range dirs {
				nb, ok := latt[rc{p.r + d[1], p.c + d[0]}]
				if !ok || done[nb] || vals[nb] != v {
					continue
				}
				done[nb] = true
				comp = append(comp, nb)
				q = append(q, nb)
			}
		}
		sort.Ints(comp)
		rgns = append(rgns, Region{Code: v, Poly: trace(comp, pos, latt, vals, v, world)})
	}
	return rgns
}

// trace collects the boundary edges of a patch, interior kept to the
// left, and stitches them into rings taking the rightmost available
// turn wherever rings pinch at a corner.
func trace(comp []int, pos map[int]rc, latt map[rc]int, vals map[int]int, v int, world func(corner) orb.Point) orb.Polygon {
	type start struct {
		cn corner
		d  int
	}
	var starts []start
	out := map[corner]uint8{}
	emit := func(cn corner, d int) {
		starts = append(starts, start{cn, d})
		out[cn] |= 1 << d
	}
	for _, c := range comp {
		p := pos[c]
		same := func(dr, dc int) bool {
			nb, ok := latt[rc{p.r + dr, p.c + dc}]
			return ok && vals[nb] == v
		}
		if !same(1, 0) { // south side, traversed eastward
			emit(corner{p.c, p.r + 1}, 0)
		}
		if !same(0, 1) { // east side, northward
			emit(corner{p.c + 1, p.r + 1}, 3)
		}
		if !same(-1, 0) { // north side, westward
			emit(corner{p.c + 1, p.r}, 2)
		}
		if !same(0, -1) { // west side, southward
			emit(corner{p.c, p.r}, 1)
		}
	}

	step := func(cn corner, d int) corner {
		return corner{cn.i + dirs[d][0], cn.j + dirs[d][1]}
	}
	var outer orb.Ring
	var holes []orb.Ring
	for _, s := range starts {
		if out[s.cn]&(1<<s.d) == 0 {
			continue
		}
		ring := orb.Ring{world(s.cn)}
		cn, d := s.cn, s.d
		for {
			out[cn] &^= 1 << d
			cn = step(cn, d)
			if cn == s.cn {
				break
			}
			ring = append(ring, world(cn))
			for _, dd := range [3]int{(d + 1) % 4, d, (d + 3) % 4} {
				if out[cn]&(1<<dd) != 0 {
					d = dd
					break
				}
			}
		}
		ring = append(ring, ring[0])
		if ring.Orientation() == orb.CCW {
			outer = ring
		} else {
			holes = append(holes, ring)
		}
	}
	return append(orb.Polygon{outer}, holes...)
}
