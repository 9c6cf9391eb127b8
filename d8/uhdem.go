package d8

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"sort"

	"github.com/maseology/mmio"
)

const uhdemTag = "unstructured"

type uhdemRec struct {
	I             int32
	X, Y, Z, S, A float64
}

type fpRec struct {
	I, Nds, Ids int32
	F           float64
}

// SaveUHDEM writes the network to the unstructured-DEM interchange format:
// a length-prefixed type tag, cell records {id,x,y,z,gradient,aspect},
// then flowpath records {id,nds,downstream id,weight}, all little-endian.
func SaveUHDEM(fp string, n *Net) error {
	cids := make([]int, 0, len(n.Cells))
	for c := range n.Cells {
		cids = append(cids, c)
	}
	sort.Ints(cids)

	buf := new(bytes.Buffer)
	buf.WriteByte(byte(len(uhdemTag)))
	buf.WriteString(uhdemTag)
	if err := binary.Write(buf, binary.LittleEndian, int32(len(cids))); err != nil {
		return fmt.Errorf(" d8.SaveUHDEM %v", err)
	}
	for _, c := range cids {
		cc := n.Cells[c]
		u := uhdemRec{I: int32(c), X: cc.X, Y: cc.Y, Z: cc.Z, S: n.gradient(c), A: n.aspect(c)}
		if err := binary.Write(buf, binary.LittleEndian, u); err != nil {
			return fmt.Errorf(" d8.SaveUHDEM %v", err)
		}
	}
	if err := binary.Write(buf, binary.LittleEndian, int32(len(cids))); err != nil {
		return fmt.Errorf(" d8.SaveUHDEM %v", err)
	}
	for _, c := range cids {
		f := fpRec{I: int32(c), Nds: 1, Ids: int32(n.Cells[c].Ds), F: 1.}
		if err := binary.Write(buf, binary.LittleEndian, f); err != nil {
			return fmt.Errorf(" d8.SaveUHDEM %v", err)
		}
	}
	if err := os.WriteFile(fp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf(" d8.SaveUHDEM %v", err)
	}
	return nil
}

// LoadUHDEM reads cells with their downslope links back from an
// unstructured-DEM file.
func LoadUHDEM(fp string) (map[int]Cell, error) {
	buf := mmio.OpenBinary(fp)

	if mmio.ReadString(buf) != uhdemTag {
		return nil, fmt.Errorf(" d8.LoadUHDEM: unsupported file type: %s", fp)
	}

	var nc int32
	if err := binary.Read(buf, binary.LittleEndian, &nc); err != nil {
		return nil, fmt.Errorf(" d8.LoadUHDEM %v", err)
	}
	cells := make(map[int]Cell, nc)
	for i := int32(0); i < nc; i++ {
		var u uhdemRec
		if err := binary.Read(buf, binary.LittleEndian, &u); err != nil {
			return nil, fmt.Errorf(" d8.LoadUHDEM %v", err)
		}
		cells[int(u.I)] = Cell{X: u.X, Y: u.Y, Z: u.Z, Ds: -1}
	}

	var nfp int32
	if err := binary.Read(buf, binary.LittleEndian, &nfp); err != nil {
		return nil, fmt.Errorf(" d8.LoadUHDEM %v", err)
	}
	for i := int32(0); i < nfp; i++ {
		var f fpRec
		if err := binary.Read(buf, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf(" d8.LoadUHDEM %v", err)
		}
		if f.Nds != 1 {
			return nil, fmt.Errorf(" d8.LoadUHDEM: only singular downslope ids supported (tree-graph topology)")
		}
		c, ok := cells[int(f.I)]
		if !ok {
			return nil, fmt.Errorf(" d8.LoadUHDEM: flowpath references unknown cell %d", f.I)
		}
		c.Ds = int(f.Ids)
		cells[int(f.I)] = c
	}
	return cells, nil
}
