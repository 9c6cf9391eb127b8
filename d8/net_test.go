package d8

import (
	"testing"

	"github.com/maseology/mmaths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGrid builds an nr x nc lattice, cell id = row*nc+col, row 0 northmost.
func testGrid(nr, nc int, cw float64, z func(r, c int) float64) (map[int]float64, map[int]mmaths.Point) {
	zz := make(map[int]float64, nr*nc)
	coord := make(map[int]mmaths.Point, nr*nc)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			cid := r*nc + c
			zz[cid] = z(r, c)
			coord[cid] = mmaths.Point{X: 1000. + (float64(c)+.5)*cw, Y: 5000. - (float64(r)+.5)*cw}
		}
	}
	return zz, coord
}

// a 3x3 plane tilted toward the southeast corner; diagonals are steepest
func tiltedPlane() (map[int]float64, map[int]mmaths.Point) {
	return testGrid(3, 3, 50., func(r, c int) float64 { return 10. - float64(r+c) })
}

func TestBuildSteepestDescent(t *testing.T) {
	z, coord := tiltedPlane()
	n := Build(z, coord, 50.)

	expected := map[int]int{0: 4, 1: 5, 2: 5, 3: 7, 4: 8, 5: 8, 6: 7, 7: 8, 8: -1}
	for c, ds := range expected {
		assert.Equal(t, ds, n.Cells[c].Ds, "cell %d", c)
	}

	cnt := n.UpCnt()
	assert.Equal(t, 9, cnt[8])
	assert.Equal(t, 3, cnt[5])
	assert.Equal(t, 3, cnt[7])
	assert.Equal(t, 2, cnt[4])
	assert.Equal(t, 1, cnt[0])
}

func TestBuildTieBreak(t *testing.T) {
	// equal drops east and west; the scan order prefers east
	z, coord := testGrid(1, 3, 50., func(r, c int) float64 { return []float64{5., 6., 5.}[c] })
	n := Build(z, coord, 50.)

	assert.Equal(t, -1, n.Cells[0].Ds)
	assert.Equal(t, 2, n.Cells[1].Ds)
	assert.Equal(t, -1, n.Cells[2].Ds)
}

func TestPointerCodes(t *testing.T) {
	z, coord := tiltedPlane()
	n := Build(z, coord, 50.)

	pe := n.Pointers(true)
	assert.Equal(t, 2, pe[0], "southeast, esri")
	assert.Equal(t, 4, pe[2], "south, esri")
	assert.Equal(t, 1, pe[6], "east, esri")
	assert.Equal(t, 0, pe[8], "outlet")

	ps := n.Pointers(false)
	assert.Equal(t, 4, ps[0], "southeast, standard")
	assert.Equal(t, 8, ps[2], "south, standard")
	assert.Equal(t, 2, ps[6], "east, standard")
	assert.Equal(t, 0, ps[8], "outlet")
}

func TestFromPointersRoundtrip(t *testing.T) {
	z, coord := tiltedPlane()
	n := Build(z, coord, 50.)

	for _, esri := range []bool{true, false} {
		n2, err := FromPointers(n.Pointers(esri), coord, 50., esri)
		require.NoError(t, err)
		require.Equal(t, n.NumCells(), n2.NumCells())
		for c, cc := range n.Cells {
			assert.Equal(t, cc.Ds, n2.Cells[c].Ds, "cell %d, esri %v", c, esri)
		}
		assert.Equal(t, n.UpCnt(), n2.UpCnt())
	}
}

func TestFromPointersInvalidCode(t *testing.T) {
	_, coord := tiltedPlane()
	_, err := FromPointers(map[int]int{0: 3}, coord, 50., true)
	require.Error(t, err)
}

func TestStreamLink(t *testing.T) {
	z, coord := tiltedPlane()
	n := Build(z, coord, 50.)

	// two tributaries meeting at the outlet form one segment
	link, err := n.StreamLink(map[int]bool{0: true, 4: true, 5: true, 8: true})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 1, 4: 1, 5: 1, 8: 1}, link)

	// a break in the stream grid yields two segments, numbered upstream first
	link, err = n.StreamLink(map[int]bool{0: true, 4: true, 5: true})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 1, 4: 1, 5: 2}, link)
}

func TestStreamLinkEmpty(t *testing.T) {
	z, coord := tiltedPlane()
	n := Build(z, coord, 50.)

	_, err := n.StreamLink(map[int]bool{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no stream cells")

	_, err = n.StreamLink(map[int]bool{4: false})
	require.Error(t, err)
}

func TestWatershed(t *testing.T) {
	z, coord := tiltedPlane()
	n := Build(z, coord, 50.)

	ws := n.Watershed(map[int]int{5: 2, 8: 1})
	assert.Equal(t, map[int]int{0: 1, 3: 1, 4: 1, 6: 1, 7: 1, 8: 1, 1: 2, 2: 2, 5: 2}, ws)
}

func TestWatershedUnlabelled(t *testing.T) {
	z, coord := tiltedPlane()
	n := Build(z, coord, 50.)

	// cells draining past the only labelled segment remain unlabelled
	ws := n.Watershed(map[int]int{5: 2})
	assert.Equal(t, 2, ws[1])
	assert.Equal(t, 2, ws[2])
	assert.Equal(t, 2, ws[5])
	_, ok := ws[8]
	assert.False(t, ok)
	_, ok = ws[4]
	assert.False(t, ok)
}
