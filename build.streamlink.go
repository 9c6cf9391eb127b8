package watershed

// StreamLink labels each connected run of stream cells with a unique
// 1-based id, ids ordered by each run's lowest cell id. Errors when
// the stream grid holds no stream cells.
func (p *Pipeline) StreamLink(esri bool) error {
	n, err := p.net(esri)
	if err != nil {
		return err
	}
	strm := make(map[int]bool, p.GD.Nact)
	for c, v := range p.loadIndx(p.path(fnStream)) {
		if v == 1 {
			strm[c] = true
		}
	}
	lnk, err := n.StreamLink(strm)
	if err != nil {
		return err
	}
	a := p.GD.NullInt32(-9999)
	for c, v := range lnk {
		a[c] = int32(v)
	}
	return writeInts(p.GD, p.path(fnLink), a)
}
