// Package convert runs a single NXS to OBJ conversion.
package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/nxs-mesh/internal/config"
	"github.com/Faultbox/nxs-mesh/internal/logger"
	"github.com/Faultbox/nxs-mesh/pkg/nxs"
	"github.com/Faultbox/nxs-mesh/pkg/obj"
)

// Result describes a finished conversion.
type Result struct {
	Output    string
	Vertices  int
	Triangles int
	Width     nxs.IndexWidth
}

// Run decodes input and writes it as OBJ. An empty output derives the path
// from input with OutputPath. Nothing is written if decoding fails.
func Run(cfg *config.Config, input, output string) (*Result, error) {
	if output == "" {
		output = OutputPath(input, cfg.Export.Extension)
	}

	order, err := cfg.Decode.Order()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	mesh, err := decodeFile(input, nxs.Options{ByteOrder: order, Strict: cfg.Decode.Strict})
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", input, err)
	}

	width := mesh.Header.Flags.IndexWidth()
	logger.Debug("decoded mesh",
		zap.String("input", input),
		zap.Uint32("flags", uint32(mesh.Header.Flags)),
		zap.Stringer("index_width", width),
		zap.Int("vertices", len(mesh.Positions)),
		zap.Int("triangles", len(mesh.Triangles)),
		zap.Duration("elapsed", time.Since(start)),
	)
	if mesh.Header.Flags.Ambiguous() {
		logger.Warn("flags set both index width bits, using 16-bit indices",
			zap.Uint32("flags", uint32(mesh.Header.Flags)))
	}

	opts := obj.Options{Scale: cfg.Export.Scale, Groups: cfg.Export.Groups}
	if err := obj.WriteFile(output, mesh, opts); err != nil {
		return nil, fmt.Errorf("writing %s: %w", output, err)
	}

	logger.Info("converted",
		zap.String("input", input),
		zap.String("output", output),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{
		Output:    output,
		Vertices:  len(mesh.Positions),
		Triangles: len(mesh.Triangles),
		Width:     width,
	}, nil
}

func decodeFile(path string, opts nxs.Options) (*nxs.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return nxs.Decode(f, opts)
}

// OutputPath strips every extension from input and appends ext, so
// "dir/mesh.nxs.bin" becomes "dir/mesh" + ext. A leading dot in the file
// name is not treated as an extension.
func OutputPath(input, ext string) string {
	dir, name := filepath.Split(input)
	for {
		e := filepath.Ext(name)
		if e == "" || e == name {
			break
		}
		name = strings.TrimSuffix(name, e)
	}
	return dir + name + ext
}
