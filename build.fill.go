package watershed

import (
	"github.com/shaoyinz/WatershedDelineation/d8"
)

// FillDEM hydrologically conditions the source DEM, raising every
// depression to its spill elevation plus a minimal gradient increment
// so each filled cell keeps a strictly descending flowpath.
func (p *Pipeline) FillDEM() error {
	zf := d8.Fill(p.loadReal(p.demFP), p.GD.Coord, p.GD.CellWidth())
	a := p.GD.NullArray(-9999.)
	for c, v := range zf {
		a[c] = v
	}
	return writeFloats32(p.GD, p.path(fnFill), a)
}
