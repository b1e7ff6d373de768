// nxs2obj converts NXS binary meshes to Wavefront OBJ files.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/nxs-mesh/internal/config"
	"github.com/Faultbox/nxs-mesh/internal/convert"
	"github.com/Faultbox/nxs-mesh/internal/logger"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if config.InitConfig() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote config: %s\n", path)
		return
	}

	args := config.Args()
	if len(args) != 1 {
		printUsage()
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	res, err := convert.Run(cfg, args[0], config.OutputPath())
	if err != nil {
		logger.Error("conversion failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d vertices, %d triangles, %s indices)\n",
		res.Output, res.Vertices, res.Triangles, res.Width)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `nxs2obj - NXS mesh to Wavefront OBJ converter

Usage:
  nxs2obj [options] <file.nxs>

The output is written next to the input with every extension replaced by
.obj, unless -o is given.

Options:`)
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr, `
Examples:
  nxs2obj model.nxs
  nxs2obj -strict -o out/model.obj model.nxs
  nxs2obj -big-endian -scale 1 model.nxs`)
}
