package main

import (
	"flag"
	"log"

	"github.com/maseology/mmio"
	"github.com/shaoyinz/WatershedDelineation"
)

func main() {
	demfp := flag.String("dem", "", "path to the source DEM raster (.bil with .gdef sidecar)")
	outdir := flag.String("out", "", "output directory")
	threshold := flag.Int("threshold", 11111, "minimum contributing cell count defining a stream cell")
	esri := flag.Bool("esri", true, "ESRI pointer encoding (false for the base-2 NE=1 convention)")
	zone := flag.Int("zone", 17, "UTM zone of the DEM projection")
	south := flag.Bool("south", false, "southern hemisphere")
	cfp := flag.String("c", "", "control file overriding the flags above")
	flag.Parse()

	ctl := watershed.Control{
		DemFP:     *demfp,
		OutDir:    *outdir,
		Threshold: *threshold,
		Esri:      *esri,
		Zone:      *zone,
		South:     *south,
	}
	if *cfp != "" {
		if _, ok := mmio.FileExists(*cfp); !ok {
			log.Fatalf("control file not found: %s", *cfp)
		}
		c, err := watershed.LoadControl(*cfp)
		if err != nil {
			log.Fatalf("%v", err)
		}
		ctl = *c
	}
	if ctl.DemFP == "" || ctl.OutDir == "" {
		log.Fatalf("a source DEM (-dem) and an output directory (-out) are required")
	}

	p, err := watershed.New(ctl.DemFP, ctl.OutDir, ctl.Zone, ctl.South)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := p.RunPipeline(ctl.Esri, ctl.Threshold); err != nil {
		log.Fatalf("%v", err)
	}
}
