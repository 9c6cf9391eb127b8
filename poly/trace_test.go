package poly

import (
	"testing"

	"github.com/maseology/mmaths"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridCoord(nr, nc int, cw float64) map[int]mmaths.Point {
	coord := make(map[int]mmaths.Point, nr*nc)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			coord[r*nc+c] = mmaths.Point{
				X: 1000. + (float64(c)+.5)*cw,
				Y: 5000. - (float64(r)+.5)*cw,
			}
		}
	}
	return coord
}

func TestTraceSingleCell(t *testing.T) {
	coord := gridCoord(3, 3, 50.)
	rgns := Trace(map[int]int{4: 7}, coord, 50.)
	require.Len(t, rgns, 1)
	assert.Equal(t, 7, rgns[0].Code)
	require.Len(t, rgns[0].Poly, 1)
	assert.Equal(t, orb.Ring{
		{1050., 4900.}, {1100., 4900.}, {1100., 4950.}, {1050., 4950.}, {1050., 4900.},
	}, rgns[0].Poly[0])
}

func TestTraceLShape(t *testing.T) {
	coord := gridCoord(2, 2, 50.)
	rgns := Trace(map[int]int{0: 1, 2: 1, 3: 1}, coord, 50.)
	require.Len(t, rgns, 1)
	require.Len(t, rgns[0].Poly, 1)
	assert.Equal(t, orb.Ring{
		{1050., 4950.}, {1050., 5000.}, {1000., 5000.}, {1000., 4950.},
		{1000., 4900.}, {1050., 4900.}, {1100., 4900.}, {1100., 4950.}, {1050., 4950.},
	}, rgns[0].Poly[0])
	assert.Equal(t, 3*50.*50., planar.Area(rgns[0].Poly))
}

func TestTraceDonut(t *testing.T) {
	coord := gridCoord(3, 3, 50.)
	vals := map[int]int{}
	for c := 0; c < 9; c++ {
		if c != 4 {
			vals[c] = 5
		}
	}
	rgns := Trace(vals, coord, 50.)
	require.Len(t, rgns, 1)
	require.Len(t, rgns[0].Poly, 2, "outer ring plus one hole")
	assert.Equal(t, orb.CCW, rgns[0].Poly[0].Orientation())
	assert.Equal(t, orb.CW, rgns[0].Poly[1].Orientation())
	assert.Equal(t, orb.Ring{
		{1050., 4950.}, {1100., 4950.}, {1100., 4900.}, {1050., 4900.}, {1050., 4950.},
	}, rgns[0].Poly[1])
	assert.Equal(t, 8*50.*50., planar.Area(rgns[0].Poly))
}

func TestTraceRegionOrder(t *testing.T) {
	coord := gridCoord(1, 2, 50.)
	rgns := Trace(map[int]int{0: 2, 1: 1}, coord, 50.)
	require.Len(t, rgns, 2)
	assert.Equal(t, 2, rgns[0].Code, "ordered by lowest cell id, not code")
	assert.Equal(t, 1, rgns[1].Code)
	for _, r := range rgns {
		assert.Equal(t, 50.*50., planar.Area(r.Poly))
	}
}

func TestDissolve(t *testing.T) {
	sq := func(x, y float64) orb.Polygon {
		return orb.Polygon{{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}, {x, y}}}
	}
	us := Dissolve([]Region{
		{Code: 2, Poly: sq(0, 0)},
		{Code: 1, Poly: sq(5, 0)},
		{Code: 2, Poly: sq(9, 0)},
	})
	require.Len(t, us, 2)
	assert.Equal(t, 1, us[0].Code)
	require.Len(t, us[0].Poly, 1)
	assert.Equal(t, 2, us[1].Code)
	require.Len(t, us[1].Poly, 2)
	assert.Equal(t, sq(0, 0), us[1].Poly[0])
	assert.Equal(t, sq(9, 0), us[1].Poly[1])
}
