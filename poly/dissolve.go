package poly

import (
	"sort"

	"github.com/paulmach/orb"
)

// Union is the merged geometry of every region sharing a code.
type Union struct {
	Code int
	Poly orb.MultiPolygon
}

// Dissolve merges regions by code, returned in ascending code order.
// Part order within a union follows the input region order.
func Dissolve(rs []Region) []Union {
	m := map[int]orb.MultiPolygon{}
	for _, r := range rs {
		m[r.Code] = append(m[r.Code], r.Poly)
	}
	codes := make([]int, 0, len(m))
	for c := range m {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	us := make([]Union, len(codes))
	for i, c := range codes {
		us[i] = Union{Code: c, Poly: m[c]}
	}
	return us
}
