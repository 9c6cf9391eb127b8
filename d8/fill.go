package d8

import (
	"container/heap"
	"math"

	"github.com/maseology/mmaths"
)

// minimal elevation increment applied when flooding flats so that every
// filled cell keeps a strictly descending flowpath
const eps = 1e-5

// raise returns the least elevation above z that remains above z after
// a float32 raster roundtrip. Above ~1000 m float32 spacing exceeds the
// nominal increment, so the next representable value takes over.
func raise(z float64) float64 {
	if zi := z + eps; float32(zi) > float32(z) {
		return zi
	}
	return float64(math.Nextafter32(float32(z), float32(math.Inf(1))))
}

type pfItem struct {
	c int
	z float64
}

type pfHeap []pfItem

func (h pfHeap) Len() int { return len(h) }
func (h pfHeap) Less(i, j int) bool {
	if h[i].z == h[j].z {
		return h[i].c < h[j].c
	}
	return h[i].z < h[j].z
}
func (h pfHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pfHeap) Push(x interface{}) { *h = append(*h, x.(pfItem)) }
func (h *pfHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Fill removes depressions by priority flood: cells are flooded inward
// from the lattice edge in ascending elevation, raising sinks just above
// their spill point. The input is left unmodified.
func Fill(z map[int]float64, coord map[int]mmaths.Point, cw float64) map[int]float64 {
	lat := newLattice(coord, cw)

	zf := make(map[int]float64, len(z))
	h := &pfHeap{}
	for c, zc := range z {
		nn := 0
		for _, o := range scan8 {
			if nb, ok := lat.at(coord[c], o[0], o[1]); ok {
				if _, ok := z[nb]; ok {
					nn++
				}
			}
		}
		if nn < 8 { // lattice edge
			zf[c] = zc
			*h = append(*h, pfItem{c, zc})
		}
	}
	heap.Init(h)

	for h.Len() > 0 {
		it := heap.Pop(h).(pfItem)
		for _, o := range scan8 {
			nb, ok := lat.at(coord[it.c], o[0], o[1])
			if !ok {
				continue
			}
			zn, ok := z[nb]
			if !ok {
				continue
			}
			if _, ok := zf[nb]; ok {
				continue
			}
			if zn <= it.z {
				zn = raise(it.z)
			}
			zf[nb] = zn
			heap.Push(h, pfItem{nb, zn})
		}
	}
	return zf
}
