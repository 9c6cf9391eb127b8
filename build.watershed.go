package watershed

// WatershedDelineation labels every cell with the link id of the
// first stream cell met along its downslope path. Cells draining off
// grid without meeting a stream stay nodata.
func (p *Pipeline) WatershedDelineation(esri bool) error {
	n, err := p.net(esri)
	if err != nil {
		return err
	}
	lnk := make(map[int]int, p.GD.Nact)
	for c, v := range p.loadIndx(p.path(fnLink)) {
		if v > 0 {
			lnk[c] = v
		}
	}
	a := p.GD.NullInt32(-9999)
	for c, v := range n.Watershed(lnk) {
		a[c] = int32(v)
	}
	return writeInts(p.GD, p.path(fnWshed), a)
}
