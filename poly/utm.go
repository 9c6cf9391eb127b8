package poly

import (
	"fmt"

	"github.com/im7mortal/UTM"
	"github.com/paulmach/orb"
)

// ToLatLon reprojects a UTM polygon to geographic WGS84 coordinates,
// points ordered longitude then latitude.
func ToLatLon(p orb.Polygon, zone int, southern bool) (orb.Polygon, error) {
	o := make(orb.Polygon, len(p))
	for i, r := range p {
		o[i] = make(orb.Ring, len(r))
		for j, pt := range r {
			lat, lng, err := UTM.ToLatLon(pt[0], pt[1], zone, "", !southern)
			if err != nil {
				return nil, fmt.Errorf(" poly.ToLatLon %v", err)
			}
			o[i][j] = orb.Point{lng, lat}
		}
	}
	return o, nil
}
