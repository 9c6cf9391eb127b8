package watershed

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/im7mortal/UTM"
	"github.com/maseology/mmio"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/shaoyinz/WatershedDelineation/poly"
)

// ZonalStats appends count and max statistics to each catchment
// feature: the number of accumulation cells whose centres fall within
// the feature geometry and the greatest accumulation among them. The
// statistics layer keeps the catchment feature order. Any
// pre-existing layer is deleted first.
func (p *Pipeline) ZonalStats() error {
	mmio.DeleteFile(p.path(fnStats))
	fc, err := poly.ReadLayer(p.path(fnCatch))
	if err != nil {
		return err
	}
	mps := make([]orb.MultiPolygon, len(fc.Features))
	for i, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.MultiPolygon:
			mps[i] = g
		case orb.Polygon:
			mps[i] = orb.MultiPolygon{g}
		default:
			return fmt.Errorf(" watershed.ZonalStats: unexpected %s geometry", f.Geometry.GeoJSONType())
		}
	}

	type cell struct {
		pt  orb.Point
		acc float64
	}
	acc := p.loadReal(p.path(fnAcc))
	cells := make([]cell, 0, len(acc))
	for _, c := range p.GD.Sactives {
		v, ok := acc[c]
		if !ok {
			continue
		}
		lat, lng, err := UTM.ToLatLon(p.GD.Coord[c].X, p.GD.Coord[c].Y, p.Zone, "", !p.South)
		if err != nil {
			return fmt.Errorf(" watershed.ZonalStats %v", err)
		}
		cells = append(cells, cell{orb.Point{lng, lat}, v})
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(fc.Features)).AppendCompleted().PrependElapsed()
	for i, f := range fc.Features {
		bnd := mps[i].Bound()
		cnt, mx := 0, 0.
		for _, cl := range cells {
			if !bnd.Contains(cl.pt) {
				continue
			}
			if planar.MultiPolygonContains(mps[i], cl.pt) {
				cnt++
				if cl.acc > mx {
					mx = cl.acc
				}
			}
		}
		f.Properties["count"] = cnt
		f.Properties["max"] = int(mx)
		bar.Incr()
	}
	uiprogress.Stop()

	return poly.WriteLayer(p.path(fnStats), fc)
}
