// Package config handles converter configuration loading and management.
package config

import (
	"encoding/binary"
	"fmt"
)

// Config holds all converter settings.
type Config struct {
	Decode  DecodeConfig  `yaml:"decode"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// DecodeConfig holds input decoding settings.
type DecodeConfig struct {
	ByteOrder string `yaml:"byte_order"` // "little" or "big"
	Strict    bool   `yaml:"strict"`     // Reject malformed input instead of tolerating it
}

// ExportConfig holds OBJ output settings.
type ExportConfig struct {
	Scale     float32 `yaml:"scale"`
	Groups    int     `yaml:"groups"`
	Extension string  `yaml:"extension"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Decode: DecodeConfig{
			ByteOrder: "little",
			Strict:    false,
		},
		Export: ExportConfig{
			Scale:     0.1,
			Groups:    10,
			Extension: ".obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Order returns the configured input byte order.
func (d DecodeConfig) Order() (binary.ByteOrder, error) {
	switch d.ByteOrder {
	case "", "little":
		return binary.LittleEndian, nil
	case "big":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q (want little or big)", d.ByteOrder)
	}
}

// Validate checks settings that cannot be corrected silently.
func (c *Config) Validate() error {
	if _, err := c.Decode.Order(); err != nil {
		return err
	}
	if c.Export.Groups < 0 {
		return fmt.Errorf("export groups must not be negative, got %d", c.Export.Groups)
	}
	return nil
}
