package writefiles

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/notargets/loadmap/loads"
	"github.com/notargets/loadmap/mapping"
	"github.com/notargets/loadmap/surface"
)

// createFile opens filename for writing and hands a buffered writer to fn
func createFile(filename string, fn func(w io.Writer) error) (err error) {
	var file *os.File
	if file, err = os.Create(filename); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(file)
	if err = fn(w); err != nil {
		return
	}
	return w.Flush()
}

// WriteForces writes one record per target panel: center, force, area vector and magnitude
func WriteForces(w io.Writer, s *surface.Surface, pl []loads.PanelLoad) (err error) {
	if len(pl) != s.NumPanels {
		return fmt.Errorf("have %d panel loads for %d panels", len(pl), s.NumPanels)
	}
	for k, p := range s.Panels {
		f := pl[k].Force
		if _, err = fmt.Fprintf(w, "%12.6f %12.6f %12.6f %.6e %.6e %.6e %.7e %.7e %.7e %.7e\n",
			p.Center.X, p.Center.Y, p.Center.Z,
			f.X, f.Y, f.Z,
			p.Area.X, p.Area.Y, p.Area.Z, p.AreaNorm); err != nil {
			return
		}
	}
	return
}

func WriteForcesFile(filename string, s *surface.Surface, pl []loads.PanelLoad) error {
	return createFile(filename, func(w io.Writer) error {
		return WriteForces(w, s, pl)
	})
}

// WriteIntegrated writes the six coefficients on one line
func WriteIntegrated(w io.Writer, res loads.Result) (err error) {
	v := res.Values()
	_, err = fmt.Fprintf(w, "%12.6f %12.6f %12.6f %12.6f %12.6f %12.6f\n",
		v[0], v[1], v[2], v[3], v[4], v[5])
	return
}

func WriteIntegratedFile(filename string, res loads.Result) error {
	return createFile(filename, func(w io.Writer) error {
		return WriteIntegrated(w, res)
	})
}

// WriteMapLog lists the unmapped source points with their coordinates
func WriteMapLog(w io.Writer, m *mapping.Mapping) (err error) {
	if _, err = fmt.Fprintf(w, "Missing grids\n"); err != nil {
		return
	}
	for _, j := range m.Unmapped() {
		x := m.Points[j]
		if _, err = fmt.Fprintf(w, "%8d %12.6f %12.6f %12.6f\n", j, x.X, x.Y, x.Z); err != nil {
			return
		}
	}
	return
}

func WriteMapLogFile(filename string, m *mapping.Mapping) error {
	return createFile(filename, func(w io.Writer) error {
		return WriteMapLog(w, m)
	})
}
