package watershed

import (
	"fmt"

	"github.com/maseology/mmio"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/shaoyinz/WatershedDelineation/poly"
)

// DissolveWatersheds merges watershed features sharing a gridCode
// into one multipolygon catchment feature per code, in ascending
// gridCode order. Any pre-existing layer is deleted first.
func (p *Pipeline) DissolveWatersheds() error {
	mmio.DeleteFile(p.path(fnCatch))
	fc, err := poly.ReadLayer(p.path(fnWshedGJ))
	if err != nil {
		return err
	}
	rs := make([]poly.Region, 0, len(fc.Features))
	for _, f := range fc.Features {
		pg, ok := f.Geometry.(orb.Polygon)
		if !ok {
			return fmt.Errorf(" watershed.DissolveWatersheds: unexpected %s geometry", f.Geometry.GeoJSONType())
		}
		rs = append(rs, poly.Region{Code: poly.Code(f, "gridCode"), Poly: pg})
	}
	out := geojson.NewFeatureCollection()
	for _, u := range poly.Dissolve(rs) {
		f := geojson.NewFeature(u.Poly)
		f.Properties["gridCode"] = u.Code
		out.Append(f)
	}
	return poly.WriteLayer(p.path(fnCatch), out)
}
