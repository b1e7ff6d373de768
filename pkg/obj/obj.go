// Package obj writes decoded NXS meshes as Wavefront OBJ text.
package obj

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/multierr"

	"github.com/Faultbox/nxs-mesh/pkg/nxs"
)

// Options controls OBJ output.
type Options struct {
	Scale  float32 // Multiplier applied to every position component
	Groups int     // Materials 0..Groups-1 are emitted as groups
}

// DefaultOptions returns the standard export settings.
func DefaultOptions() Options {
	return Options{
		Scale:  0.1,
		Groups: nxs.DefaultGroupCount,
	}
}

// Write emits one "v" line per position and, for each material group, a
// "g material_<n>" line followed by that group's faces with 1-based indices.
func Write(w io.Writer, m *nxs.Mesh, opts Options) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 64)

	for _, p := range m.Positions {
		line = append(line[:0], 'v')
		for _, c := range [3]float32{p.X, p.Y, p.Z} {
			line = append(line, ' ')
			line = appendFloat(line, c*opts.Scale)
		}
		line = append(line, '\n')
		bw.Write(line)
	}

	for g, tris := range m.Groups(opts.Groups) {
		line = append(line[:0], "g material_"...)
		line = strconv.AppendInt(line, int64(g), 10)
		line = append(line, '\n')
		bw.Write(line)

		for _, i := range tris {
			t := m.Triangles[i]
			line = append(line[:0], 'f')
			for _, idx := range [3]uint32{t.I, t.J, t.K} {
				line = append(line, ' ')
				line = strconv.AppendUint(line, uint64(idx)+1, 10)
			}
			line = append(line, '\n')
			bw.Write(line)
		}
	}

	// bufio.Writer keeps the first write error; Flush reports it.
	return bw.Flush()
}

// appendFloat formats f in general notation with 6 significant digits.
func appendFloat(dst []byte, f float32) []byte {
	return strconv.AppendFloat(dst, float64(f), 'g', 6, 32)
}

// WriteFile writes the mesh to path. The output is written to a temporary
// file in the same directory and renamed into place, so path is never left
// holding partial output.
func WriteFile(path string, m *nxs.Mesh, opts Options) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = multierr.Append(err, os.Remove(tmp.Name()))
		}
	}()

	if err := Write(tmp, m, opts); err != nil {
		return multierr.Append(err, tmp.Close())
	}
	if err := tmp.Sync(); err != nil {
		return multierr.Append(err, tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
