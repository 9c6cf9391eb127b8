package main

/*
	Watershed Delineation pipeline
	version 0.1.0

    this example fabricates a small synthetic valley DEM, then runs the
    full nine-stage delineation over it, leaving every raster and
    vector artifact in the output directory
*/

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"github.com/shaoyinz/WatershedDelineation"
)

const (
	datdir    = "dat/"
	outdir    = "out"
	threshold = 3 // contributing cells defining a stream
	utmzone   = 17

	nr, nc = 9, 9
	cw     = 50.
	oe, on = 609000., 4851000.
)

func main() {
	demfp, err := buildDEM()
	if err != nil {
		log.Fatalf("%v", err)
	}
	p, err := watershed.New(demfp, outdir, utmzone, false)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := p.RunPipeline(true, threshold); err != nil {
		log.Fatalf("%v", err)
	}
}

// buildDEM writes a plane tilted to the southeast carrying one
// shallow interior depression for the filling stage to resolve.
func buildDEM() (string, error) {
	if err := os.MkdirAll(datdir, 0755); err != nil {
		return "", err
	}

	g := []byte(fmt.Sprintf("%.1f\n%.1f\n0.0\n%d\n%d\nU%.1f\n", oe, on, nr, nc, cw))
	for i := 0; i < (nr*nc+7)/8; i++ {
		g = append(g, 0xFF)
	}
	if err := os.WriteFile(datdir+"dem.gdef", g, 0644); err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			z := 300. - 2.*float64(r+c)
			if r == 3 && c == 3 {
				z -= 15. // the depression
			}
			if err := binary.Write(buf, binary.LittleEndian, float32(z)); err != nil {
				return "", err
			}
		}
	}
	if err := os.WriteFile(datdir+"dem.bil", buf.Bytes(), 0644); err != nil {
		return "", err
	}
	return datdir + "dem.bil", nil
}
