package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagStrict     = flag.Bool("strict", false, "Reject malformed input")
	flagBigEndian  = flag.Bool("big-endian", false, "Read input as big endian")
	flagScale      = flag.Float64("scale", 0, "Position scale factor (0 = config value)")
	flagOutput     = flag.String("o", "", "Output file path (default: input stem + extension)")
	flagInitConfig = flag.Bool("init-config", false, "Write the effective config to the config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// OutputPath returns the explicit output path if provided via -o.
func OutputPath() string {
	return *flagOutput
}

// InitConfig reports whether -init-config was given.
func InitConfig() bool {
	return *flagInitConfig
}

// Args returns the positional arguments.
func Args() []string {
	return flag.Args()
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagStrict {
		cfg.Decode.Strict = true
	}
	if *flagBigEndian {
		cfg.Decode.ByteOrder = "big"
	}
	if *flagScale > 0 {
		cfg.Export.Scale = float32(*flagScale)
	}
}
