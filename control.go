package watershed

import (
	"fmt"
	"strconv"

	"github.com/maseology/mmio"
)

// Control carries the run settings read from an instruction file.
type Control struct {
	DemFP, OutDir string
	Threshold     int  // minimum contributing cell count defining a stream cell
	Esri          bool // pointer encoding convention
	Zone          int  // UTM zone of the DEM projection
	South         bool // southern hemisphere
}

// LoadControl reads run settings from an instruction file with keys
// demfp, outdir, threshold, esri, utmzone and south.
func LoadControl(fp string) (*Control, error) {
	var err error
	c := Control{Threshold: 11111, Esri: true, Zone: 17}
	ins := mmio.NewInstruct(fp)
	if v, ok := ins.Param["demfp"]; ok {
		c.DemFP = v[0]
	} else {
		return nil, fmt.Errorf(" watershed.LoadControl: demfp not specified in %s", fp)
	}
	if v, ok := ins.Param["outdir"]; ok {
		c.OutDir = v[0]
	} else {
		return nil, fmt.Errorf(" watershed.LoadControl: outdir not specified in %s", fp)
	}
	if v, ok := ins.Param["threshold"]; ok {
		if c.Threshold, err = strconv.Atoi(v[0]); err != nil {
			return nil, fmt.Errorf(" watershed.LoadControl %v", err)
		}
	}
	if v, ok := ins.Param["esri"]; ok {
		if c.Esri, err = strconv.ParseBool(v[0]); err != nil {
			return nil, fmt.Errorf(" watershed.LoadControl %v", err)
		}
	}
	if v, ok := ins.Param["utmzone"]; ok {
		if c.Zone, err = strconv.Atoi(v[0]); err != nil {
			return nil, fmt.Errorf(" watershed.LoadControl %v", err)
		}
	}
	if v, ok := ins.Param["south"]; ok {
		if c.South, err = strconv.ParseBool(v[0]); err != nil {
			return nil, fmt.Errorf(" watershed.LoadControl %v", err)
		}
	}
	return &c, nil
}
