// Package d8 provides D8 flow-model primitives over uniform-cell lattices.
package d8

import (
	"fmt"
	"math"
	"sort"

	"github.com/maseology/mmaths"
	"github.com/maseology/mmaths/slice"
)

// Cell is a lattice cell: centroid coordinates, elevation, and the id of
// its downslope neighbour (-1 at an outlet).
type Cell struct {
	X, Y, Z float64
	Ds      int
}

// Net D8 flow network
type Net struct {
	Cells map[int]Cell
	us    map[int][]int
	order []int // topologically safe cell ordering, upslope cells held first
	cw    float64
}

// neighbour scan order (dx east, dy north); first steepest wins
var scan8 = [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

type lattice struct {
	xr     map[[2]int]int
	x0, y0 float64
	cw     float64
}

func newLattice(coord map[int]mmaths.Point, cw float64) *lattice {
	l := lattice{xr: make(map[[2]int]int, len(coord)), cw: cw}
	for _, p := range coord {
		l.x0, l.y0 = p.X, p.Y
		break
	}
	for c, p := range coord {
		l.xr[l.key(p.X, p.Y)] = c
	}
	return &l
}

func (l *lattice) key(x, y float64) [2]int {
	return [2]int{int(math.Round((x - l.x0) / l.cw)), int(math.Round((y - l.y0) / l.cw))}
}

func (l *lattice) at(p mmaths.Point, dx, dy int) (int, bool) {
	c, ok := l.xr[l.key(p.X+float64(dx)*l.cw, p.Y+float64(dy)*l.cw)]
	return c, ok
}

// Build constructs the steepest-descent flow network from cell elevations.
// Diagonal drops are distance-weighted; a cell with no lower neighbour
// becomes an outlet (Ds = -1).
func Build(z map[int]float64, coord map[int]mmaths.Point, cw float64) *Net {
	lat := newLattice(coord, cw)
	rd := cw * math.Sqrt2
	cells := make(map[int]Cell, len(z))
	for c, zc := range z {
		p := coord[c]
		ds, smax := -1, 0.
		for _, o := range scan8 {
			nb, ok := lat.at(p, o[0], o[1])
			if !ok {
				continue
			}
			zn, ok := z[nb]
			if !ok || zn >= zc {
				continue
			}
			dd := cw
			if o[0] != 0 && o[1] != 0 {
				dd = rd
			}
			if s := (zc - zn) / dd; s > smax {
				smax, ds = s, nb
			}
		}
		cells[c] = Cell{X: p.X, Y: p.Y, Z: zc, Ds: ds}
	}
	return NewNet(cells, cw)
}

// NewNet assembles the network topology from pre-linked cells.
func NewNet(cells map[int]Cell, cw float64) *Net {
	n := Net{Cells: cells, cw: cw, us: make(map[int][]int, len(cells))}
	for c, cc := range cells {
		if cc.Ds > -1 {
			n.us[cc.Ds] = append(n.us[cc.Ds], c)
		}
	}
	for _, u := range n.us {
		sort.Ints(u)
	}
	n.buildOrder()
	return &n
}

func (n *Net) buildOrder() {
	lvl := make(map[int]int, len(n.Cells))
	var recurs func(i, l int)
	recurs = func(i, l int) {
		if l >= lvl[i] {
			lvl[i] = l + 1
			if ds := n.Cells[i].Ds; ds > -1 {
				recurs(ds, lvl[i])
			}
		}
	}
	for i := range n.Cells {
		recurs(i, lvl[i])
	}

	mord, lord := slice.InvertMap(lvl)
	n.order = make([]int, 0, len(n.Cells))
	for _, k := range lord {
		cs := mord[k]
		sort.Ints(cs)
		n.order = append(n.order, cs...)
	}
}

// NumCells number of cells that make up the network
func (n *Net) NumCells() int {
	return len(n.Cells)
}

// UpCnt returns the contributing cell count at every cell, the cell
// itself included.
func (n *Net) UpCnt() map[int]int {
	cnt := make(map[int]int, len(n.Cells))
	for _, c := range n.order {
		cnt[c]++
		if ds := n.Cells[c].Ds; ds > -1 {
			cnt[ds] += cnt[c]
		}
	}
	return cnt
}

// StreamLink labels every connected stream segment with a unique id,
// numbered from 1 upward. Two stream cells belong to the same segment
// when one drains into the other. Errors when no stream cells exist.
func (n *Net) StreamLink(strm map[int]bool) (map[int]int, error) {
	scids := make([]int, 0, len(strm))
	for c, b := range strm {
		if b {
			scids = append(scids, c)
		}
	}
	if len(scids) == 0 {
		return nil, fmt.Errorf(" d8.StreamLink: no stream cells in grid")
	}
	sort.Ints(scids)

	link, nl := make(map[int]int, len(scids)), 0
	for _, s := range scids {
		if _, ok := link[s]; ok {
			continue
		}
		nl++
		link[s] = nl
		q := []int{s}
		for len(q) > 0 {
			c := q[0]
			q = q[1:]
			if ds := n.Cells[c].Ds; ds > -1 && strm[ds] {
				if _, ok := link[ds]; !ok {
					link[ds] = nl
					q = append(q, ds)
				}
			}
			for _, u := range n.us[c] {
				if strm[u] {
					if _, ok := link[u]; !ok {
						link[u] = nl
						q = append(q, u)
					}
				}
			}
		}
	}
	return link, nil
}

// Watershed labels every cell with the id of the first stream segment met
// on its downslope path. Cells draining off-grid without meeting a stream
// remain unlabelled.
func (n *Net) Watershed(link map[int]int) map[int]int {
	ws := make(map[int]int, len(n.Cells))
	for i := len(n.order) - 1; i >= 0; i-- {
		c := n.order[i]
		if id, ok := link[c]; ok {
			ws[c] = id
			continue
		}
		if ds := n.Cells[c].Ds; ds > -1 {
			if id, ok := ws[ds]; ok {
				ws[c] = id
			}
		}
	}
	return ws
}

func (n *Net) gradient(c int) float64 {
	cc := n.Cells[c]
	if cc.Ds < 0 {
		return 0.
	}
	d := n.Cells[cc.Ds]
	run := math.Hypot(d.X-cc.X, d.Y-cc.Y)
	if run == 0. {
		return 0.
	}
	return (cc.Z - d.Z) / run
}

func (n *Net) aspect(c int) float64 {
	cc := n.Cells[c]
	if cc.Ds < 0 {
		return 0.
	}
	d := n.Cells[cc.Ds]
	return math.Atan2(d.X-cc.X, d.Y-cc.Y) // azimuth from grid north
}
