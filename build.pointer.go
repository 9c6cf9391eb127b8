package watershed

import (
	"github.com/shaoyinz/WatershedDelineation/d8"
)

// FlowDirection computes the steepest-descent D8 pointer network from
// the filled DEM, writing the pointer raster alongside the topology
// interchange file consumed by the wider toolchain.
func (p *Pipeline) FlowDirection(esri bool) error {
	n := d8.Build(p.loadReal(p.path(fnFill)), p.GD.Coord, p.GD.CellWidth())
	a := p.GD.NullInt32(-9999)
	for c, v := range n.Pointers(esri) {
		a[c] = int32(v)
	}
	if err := writeInts(p.GD, p.path(fnDir), a); err != nil {
		return err
	}
	return d8.SaveUHDEM(p.path(fnTopo), n)
}
