package watershed

import (
	"fmt"

	"github.com/maseology/mmaths"
	"github.com/maseology/mmaths/slice"
	"github.com/maseology/mmio"
)

// checkandprint summarizes a completed run from its artifacts.
func (p *Pipeline) checkandprint() {
	println("\nBuild Summary\n==================================")

	mxacc := 0.
	for _, v := range p.loadReal(p.path(fnAcc)) {
		if v > mxacc {
			mxacc = v
		}
	}
	nstrm := 0
	for _, v := range p.loadIndx(p.path(fnStream)) {
		if v == 1 {
			nstrm++
		}
	}
	ws := make(map[int]int, p.GD.Nact)
	for c, v := range p.loadIndx(p.path(fnWshed)) {
		if v > 0 {
			ws[c] = v
		}
	}
	mws, gcodes := slice.InvertMap(ws)

	fmt.Printf(" number of cells: %s\n", mmio.Thousands(int64(p.GD.Nact)))
	fmt.Printf(" number of stream cells: %s\n", mmio.Thousands(int64(nstrm)))
	fmt.Printf(" outlet accumulation: %s\n", mmio.Thousands(int64(mxacc)))
	fmt.Printf(" catchments delineated: %d\n", len(gcodes))

	fmt.Println(" catchment proportions")
	m := make(map[int]int, len(gcodes))
	for g, cs := range mws {
		m[g] = len(cs)
	}
	k, v := mmaths.SortMapInt(m)
	for i := len(k) - 1; i >= 0; i-- {
		fmt.Printf("%10d %10.1f%%\n", k[i], float64(v[i])*100./float64(len(ws)))
	}
	println()
}
