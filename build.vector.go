package watershed

import (
	"github.com/maseology/mmio"
	"github.com/paulmach/orb/geojson"
	"github.com/shaoyinz/WatershedDelineation/poly"
)

// RasterToVector polygonizes the watershed raster, one feature per
// contiguous region carrying its label as gridCode, reprojected to
// geographic coordinates. Any pre-existing layer is deleted first.
func (p *Pipeline) RasterToVector() error {
	mmio.DeleteFile(p.path(fnWshedGJ))
	ws := make(map[int]int, p.GD.Nact)
	for c, v := range p.loadIndx(p.path(fnWshed)) {
		if v > 0 {
			ws[c] = v
		}
	}
	fc := geojson.NewFeatureCollection()
	for _, r := range poly.Trace(ws, p.GD.Coord, p.GD.CellWidth()) {
		g, err := poly.ToLatLon(r.Poly, p.Zone, p.South)
		if err != nil {
			return err
		}
		f := geojson.NewFeature(g)
		f.Properties["gridCode"] = r.Code
		fc.Append(f)
	}
	return poly.WriteLayer(p.path(fnWshedGJ), fc)
}
