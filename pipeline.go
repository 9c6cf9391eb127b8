// Package watershed sequences raster DEM conditioning through to
// vector catchment delineation: depression filling, D8 flow
// direction, flow accumulation, stream thresholding and linking,
// watershed labelling, polygonization, dissolve and zonal statistics.
package watershed

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/maseology/goHydro/grid"
	"github.com/maseology/mmio"
	"github.com/shaoyinz/WatershedDelineation/d8"
)

// artifact names, fixed per run
const (
	fnFill    = "demFilled.bil"
	fnDir     = "flowDir.bil"
	fnTopo    = "flowTopo.uhdem"
	fnAcc     = "flowAcc.bil"
	fnStream  = "streamGrid.bil"
	fnLink    = "streamLink.bil"
	fnWshed   = "watershed.bil"
	fnWshedGJ = "watershed.geojson"
	fnCatch   = "catchment.geojson"
	fnStats   = "catchmentStats.geojson"
)

// Pipeline fixes the artifact set of one delineation run. Every stage
// reads its inputs from and writes its outputs to Dir, so stages can
// be re-run independently on top of earlier results.
type Pipeline struct {
	GD    *grid.Definition // georeferencing carried to every artifact
	Dir   string           // output directory
	Zone  int              // UTM zone of the DEM projection
	South bool             // southern hemisphere
	demFP string           // working copy of the source DEM
}

// New copies the source DEM and its grid definition into the output
// directory and loads the definition that georeferences the run.
func New(demFP, outDir string, zone int, south bool) (*Pipeline, error) {
	mmio.MakeDir(outDir)
	gd, err := grid.ReadGDEF(mmio.RemoveExtension(demFP)+".gdef", true)
	if err != nil {
		return nil, fmt.Errorf(" watershed.New %v", err)
	}
	if len(gd.Sactives) <= 0 {
		return nil, fmt.Errorf(" watershed.New: grid definition requires active cells")
	}

	dem := outDir + "/" + filepath.Base(demFP)
	b, err := os.ReadFile(demFP)
	if err != nil {
		return nil, fmt.Errorf(" watershed.New %v", err)
	}
	if err := os.WriteFile(dem, b, 0644); err != nil {
		return nil, fmt.Errorf(" watershed.New %v", err)
	}
	if err := gd.SaveAs(mmio.RemoveExtension(dem) + ".gdef"); err != nil {
		return nil, fmt.Errorf(" watershed.New %v", err)
	}
	gd.ToHDRfloat(mmio.RemoveExtension(dem)+".hdr", 1, 32)

	return &Pipeline{GD: gd, Dir: outDir, Zone: zone, South: south, demFP: dem}, nil
}

// RunPipeline executes the nine delineation stages strictly in order.
// esri selects the pointer encoding convention; threshold is the
// minimum contributing cell count defining a stream cell.
func (p *Pipeline) RunPipeline(esri bool, threshold int) error {
	fmt.Println("")
	tt := mmio.NewTimer()

	println(" > step 1: filling depressions")
	if err := p.FillDEM(); err != nil {
		return err
	}
	println(" > step 2: computing flow directions")
	if err := p.FlowDirection(esri); err != nil {
		return err
	}
	println(" > step 3: accumulating flow")
	if err := p.FlowAccumulation(esri); err != nil {
		return err
	}
	println(" > step 4: thresholding stream cells")
	if err := p.BuildStreamGrid(threshold); err != nil {
		return err
	}
	println(" > step 5: labelling stream links")
	if err := p.StreamLink(esri); err != nil {
		return err
	}
	println(" > step 6: delineating watersheds")
	if err := p.WatershedDelineation(esri); err != nil {
		return err
	}
	println(" > step 7: vectorizing watersheds")
	if err := p.RasterToVector(); err != nil {
		return err
	}
	println(" > step 8: dissolving catchments")
	if err := p.DissolveWatersheds(); err != nil {
		return err
	}
	println(" > step 9: computing zonal statistics")
	if err := p.ZonalStats(); err != nil {
		return err
	}

	p.checkandprint()
	tt.Lap(fmt.Sprintf("\nDelineation complete. artifacts saved to: %s", p.Dir))
	return nil
}

func (p *Pipeline) path(fn string) string { return p.Dir + "/" + fn }

// net rebuilds the flow network from the pointer raster.
func (p *Pipeline) net(esri bool) (*d8.Net, error) {
	return d8.FromPointers(p.loadIndx(p.path(fnDir)), p.GD.Coord, p.GD.CellWidth(), esri)
}

// loadReal reads a float raster, returning valid active-cell values.
func (p *Pipeline) loadReal(fp string) map[int]float64 {
	var g grid.Real
	g.NewGD32(fp, p.GD)
	o := make(map[int]float64, p.GD.Nact)
	for _, c := range p.GD.Sactives {
		if v, ok := g.A[c]; ok && v != -9999. {
			o[c] = v
		}
	}
	return o
}

// loadIndx reads an integer raster, returning valid active-cell values.
func (p *Pipeline) loadIndx(fp string) map[int]int {
	var g grid.Indx
	g.LoadGDef(p.GD)
	g.NewShort(fp, true)
	o := make(map[int]int, p.GD.Nact)
	for c, v := range g.Values() {
		if v != -9999 {
			o[c] = v
		}
	}
	return o
}
