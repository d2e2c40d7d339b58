package readfiles

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/loadmap/loads"
)

/*
ReadReferenceFrame reads the fixed layout frame description:

	header
	xRef yRef zRef
	separator
	x y z      (frame origin as written by the producing tool, read and kept)
	x y z      (basis point 1)
	x y z      (basis point 2)
	x y z      (basis point 3)
	separator
	AREF  value
	CREF  value
	BREF  value

On the three scalar lines the first token that parses as a number is the value.
*/
func ReadReferenceFrame(filename string) (rf loads.ReferenceFrame, err error) {
	var (
		lr     *lineReader
		closer io.Closer
	)
	if lr, closer, err = openLines(filename); err != nil {
		return
	}
	defer closer.Close()
	if rf, err = readReferenceFrame(lr); err != nil {
		return
	}
	if err = rf.Validate(); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
	}
	return
}

func readReferenceFrame(lr *lineReader) (rf loads.ReferenceFrame, err error) {
	skip := func(what string) (err error) {
		if _, err = lr.getLine(); err == io.EOF {
			err = lr.errorf("early end of file, expected %s", what)
		}
		return
	}
	point := func(what string) (v r3.Vec, err error) {
		var (
			line string
			x    [3]float64
		)
		if line, err = lr.getLine(); err == io.EOF {
			err = lr.errorf("early end of file, expected %s", what)
		}
		if err != nil {
			return
		}
		if x, err = lr.parseVec(strings.Fields(line), what); err != nil {
			return
		}
		v = r3.Vec{X: x[0], Y: x[1], Z: x[2]}
		return
	}
	scalar := func(what string) (val float64, err error) {
		var line string
		if line, err = lr.getLine(); err == io.EOF {
			err = lr.errorf("early end of file, expected %s", what)
		}
		if err != nil {
			return
		}
		for _, token := range strings.Fields(line) {
			if val, err = strconv.ParseFloat(token, 64); err == nil {
				return
			}
		}
		err = lr.errorf("no value for %s in [%s]", what, line)
		return
	}
	if err = skip("header"); err != nil {
		return
	}
	if rf.Point, err = point("reference point"); err != nil {
		return
	}
	if err = skip("separator"); err != nil {
		return
	}
	if rf.BasisOrigin, err = point("frame origin"); err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		if rf.BasisPoints[i], err = point(fmt.Sprintf("basis point %d", i+1)); err != nil {
			return
		}
	}
	if err = skip("separator"); err != nil {
		return
	}
	if rf.Area, err = scalar("reference area"); err != nil {
		return
	}
	if rf.Chord, err = scalar("reference chord"); err != nil {
		return
	}
	rf.Span, err = scalar("reference span")
	return
}
