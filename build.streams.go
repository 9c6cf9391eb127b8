package watershed

// BuildStreamGrid flags every cell whose contributing cell count
// meets the threshold, equality included. Georeferencing is carried
// verbatim from the accumulation raster's definition.
func (p *Pipeline) BuildStreamGrid(threshold int) error {
	a := p.GD.NullInt32(-9999)
	acc := p.loadReal(p.path(fnAcc))
	for _, c := range p.GD.Sactives {
		if v, ok := acc[c]; ok && int(v) >= threshold {
			a[c] = 1
		} else {
			a[c] = 0
		}
	}
	return writeInts(p.GD, p.path(fnStream), a)
}
