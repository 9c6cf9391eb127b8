package poly

import (
	"path/filepath"
	"testing"

	"github.com/im7mortal/UTM"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayerRoundtrip(t *testing.T) {
	p := orb.Polygon{{{1000., 4900.}, {1050., 4900.}, {1050., 4950.}, {1000., 4950.}, {1000., 4900.}}}
	mp := orb.MultiPolygon{p}

	fc := geojson.NewFeatureCollection()
	f1 := geojson.NewFeature(p)
	f1.Properties["gridCode"] = 3
	f2 := geojson.NewFeature(mp)
	f2.Properties["gridCode"] = 4
	f2.Properties["count"] = 10
	fc.Append(f1)
	fc.Append(f2)
	assert.Equal(t, 3, Code(f1, "gridCode"))

	fp := filepath.Join(t.TempDir(), "layer.geojson")
	require.NoError(t, WriteLayer(fp, fc))

	fc2, err := ReadLayer(fp)
	require.NoError(t, err)
	require.Len(t, fc2.Features, 2)
	assert.Equal(t, p, fc2.Features[0].Geometry)
	assert.Equal(t, mp, fc2.Features[1].Geometry)
	assert.Equal(t, 3, Code(fc2.Features[0], "gridCode"))
	assert.Equal(t, 4, Code(fc2.Features[1], "gridCode"))
	assert.Equal(t, 10, Code(fc2.Features[1], "count"))
	assert.Equal(t, 0, Code(fc2.Features[0], "missing"))
}

func TestReadLayerMissing(t *testing.T) {
	_, err := ReadLayer(filepath.Join(t.TempDir(), "nope.geojson"))
	assert.Error(t, err)
}

func TestToLatLon(t *testing.T) {
	// a 50m square straddling the zone 17 central meridian
	p := orb.Polygon{{
		{499975., 4699975.}, {500025., 4699975.}, {500025., 4700025.}, {499975., 4700025.}, {499975., 4699975.},
	}}
	ll, err := ToLatLon(p, 17, false)
	require.NoError(t, err)
	require.Len(t, ll[0], 5)
	for _, pt := range ll[0] {
		assert.InDelta(t, -81., pt[0], .001, "longitude near the central meridian")
		assert.Greater(t, pt[1], 42.)
		assert.Less(t, pt[1], 43.)
	}

	e, n, zn, _, err := UTM.FromLatLon(ll[0][0][1], ll[0][0][0], false)
	require.NoError(t, err)
	assert.Equal(t, 17, zn)
	assert.InDelta(t, 499975., e, .01)
	assert.InDelta(t, 4699975., n, .01)
}
