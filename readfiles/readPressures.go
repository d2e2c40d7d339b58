package readfiles

import (
	"fmt"
	"io"

	"github.com/notargets/loadmap/surface"
	"github.com/notargets/loadmap/types"
)

/*
ReadPressures reads "index value" records with 1-based indices into a field of length n.
A first line holding a single token is the record count; without it records are read
to the end of the file. Indices that never appear leave a zero value, an index may appear once.
*/
func ReadPressures(filename string, pt types.PressureType, n int) (p surface.Pressures, err error) {
	var (
		lr     *lineReader
		closer io.Closer
	)
	if lr, closer, err = openLines(filename); err != nil {
		return
	}
	defer closer.Close()
	return readPressures(lr, pt, n)
}

func readPressures(lr *lineReader, pt types.PressureType, n int) (p surface.Pressures, err error) {
	var (
		fields []string
		count  = -1
		seen   = make([]bool, n)
	)
	p = surface.NewPressures(pt, make([]float64, n))
	if fields, err = lr.getFields(); err == io.EOF {
		return p, lr.errorf("empty pressure file")
	} else if err != nil {
		return
	}
	if len(fields) == 1 {
		if count, err = lr.parseInt(fields[0], "number of pressures"); err != nil {
			return
		}
		if count < 0 {
			return p, lr.errorf("negative number of pressures %d", count)
		}
		fields = nil
	}
	for read := 0; count < 0 || read < count; read++ {
		if fields == nil {
			if count < 0 {
				if fields, err = lr.getFields(); err == io.EOF {
					return p, nil
				}
			} else {
				fields, err = lr.mustFields(fmt.Sprintf("pressure %d of %d", read+1, count))
			}
			if err != nil {
				return
			}
		}
		if len(fields) < 2 {
			return p, lr.errorf("pressure record needs index and value, have %d fields", len(fields))
		}
		var (
			ind int
			val float64
		)
		if ind, err = lr.parseInt(fields[0], "pressure index"); err != nil {
			return
		}
		if ind < 1 || ind > n {
			return p, lr.errorf("pressure index %d outside 1..%d for a %s field", ind, n, pt)
		}
		if seen[ind-1] {
			return p, lr.errorf("pressure index %d appears twice", ind)
		}
		seen[ind-1] = true
		if val, err = lr.parseFloat(fields[1], "pressure value"); err != nil {
			return
		}
		p.Values[ind-1] = val
		fields = nil
	}
	return
}
