package d8

import (
	"fmt"
	"math"

	"github.com/maseology/mmaths"
)

// D8 pointer code tables, keyed by directional offset (dx east, dy north).
// ESRI convention: E=1 SE=2 S=4 SW=8 W=16 NW=32 N=64 NE=128;
// standard convention: NE=1 E=2 SE=4 S=8 SW=16 W=32 NW=64 N=128.
// Code 0 marks an outlet.
var (
	esriCode = map[[2]int]int{{1, 0}: 1, {1, -1}: 2, {0, -1}: 4, {-1, -1}: 8, {-1, 0}: 16, {-1, 1}: 32, {0, 1}: 64, {1, 1}: 128}
	stdCode  = map[[2]int]int{{1, 1}: 1, {1, 0}: 2, {1, -1}: 4, {0, -1}: 8, {-1, -1}: 16, {-1, 0}: 32, {-1, 1}: 64, {0, 1}: 128}
)

var esriOff, stdOff = func() (map[int][2]int, map[int][2]int) {
	e, s := make(map[int][2]int, 8), make(map[int][2]int, 8)
	for k, v := range esriCode {
		e[v] = k
	}
	for k, v := range stdCode {
		s[v] = k
	}
	return e, s
}()

func pcode(dx, dy int, esri bool) int {
	if esri {
		return esriCode[[2]int{dx, dy}]
	}
	return stdCode[[2]int{dx, dy}]
}

func poffset(code int, esri bool) (int, int, bool) {
	m := stdOff
	if esri {
		m = esriOff
	}
	o, ok := m[code]
	return o[0], o[1], ok
}

// Pointers returns the D8 pointer code of every cell, zero at outlets.
func (n *Net) Pointers(esri bool) map[int]int {
	o := make(map[int]int, len(n.Cells))
	for c, cc := range n.Cells {
		if cc.Ds < 0 {
			o[c] = 0
			continue
		}
		d := n.Cells[cc.Ds]
		dx := int(math.Round((d.X - cc.X) / n.cw))
		dy := int(math.Round((d.Y - cc.Y) / n.cw))
		o[c] = pcode(dx, dy, esri)
	}
	return o
}

// FromPointers rebuilds the flow network from a D8 pointer grid.
func FromPointers(p map[int]int, coord map[int]mmaths.Point, cw float64, esri bool) (*Net, error) {
	lat := newLattice(coord, cw)
	cells := make(map[int]Cell, len(p))
	for c, code := range p {
		pt := coord[c]
		cc := Cell{X: pt.X, Y: pt.Y, Ds: -1}
		if code > 0 {
			dx, dy, ok := poffset(code, esri)
			if !ok {
				return nil, fmt.Errorf(" d8.FromPointers: invalid pointer code %d at cell %d", code, c)
			}
			nb, ok := lat.at(pt, dx, dy)
			if !ok {
				return nil, fmt.Errorf(" d8.FromPointers: cell %d points off-grid", c)
			}
			if _, ok := p[nb]; !ok {
				return nil, fmt.Errorf(" d8.FromPointers: cell %d points to cell %d not in grid", c, nb)
			}
			cc.Ds = nb
		}
		cells[c] = cc
	}
	return NewNet(cells, cw), nil
}
