package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for the TOML file. The port is a string so
// the core validator judges exactly what the operator typed; a numeric
// TOML value is rejected by the decoder, which is the wanted loud
// failure.
type FileConfig struct {
	Target TargetFile `toml:"target"`
	Watch  WatchFile  `toml:"watch"`
	Listen ListenFile `toml:"listen"`
}

// TargetFile is the [target] table: the machine to wake.
type TargetFile struct {
	MACAddress  string `toml:"mac_address"`
	BroadcastIP string `toml:"broadcast_ip"`
	Port        string `toml:"port"`
}

// WatchFile is the [watch] table.
type WatchFile struct {
	DebounceDelay string `toml:"debounce_delay"`
}

// ListenFile is the [listen] table.
type ListenFile struct {
	Port        int    `toml:"port"`
	MetricsAddr string `toml:"metrics_addr"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.lanwake/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".lanwake", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config
// struct. It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("mac", fc.Target.MACAddress, &cfg.MACAddress)
	s.setString("broadcast", fc.Target.BroadcastIP, &cfg.BroadcastIP)
	s.setString("port", fc.Target.Port, &cfg.Port)

	if err := s.setDuration("debounce", fc.Watch.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setInt("listen-port", fc.Listen.Port, &cfg.ListenPort)
	s.setString("metrics-addr", fc.Listen.MetricsAddr, &cfg.MetricsAddr)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
