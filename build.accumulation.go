package watershed

// FlowAccumulation counts the cells draining through each cell, the
// cell itself included, in a single topological pass over the pointer
// network.
func (p *Pipeline) FlowAccumulation(esri bool) error {
	n, err := p.net(esri)
	if err != nil {
		return err
	}
	a := p.GD.NullArray(-9999.)
	for c, v := range n.UpCnt() {
		a[c] = float64(v)
	}
	return writeFloats32(p.GD, p.path(fnAcc), a)
}
