package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (LANWAKE_*). It respects flags that have been explicitly set
// (changed map). Returns an error if a variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("mac", os.Getenv("LANWAKE_MAC"), &cfg.MACAddress)
	s.setString("broadcast", os.Getenv("LANWAKE_BROADCAST"), &cfg.BroadcastIP)
	s.setString("port", os.Getenv("LANWAKE_PORT"), &cfg.Port)

	if err := s.setDuration("debounce", os.Getenv("LANWAKE_DEBOUNCE"), &cfg.DebounceDelay); err != nil {
		return err
	}

	if err := s.setIntFromString("listen-port", os.Getenv("LANWAKE_LISTEN_PORT"), &cfg.ListenPort); err != nil {
		return err
	}
	s.setString("metrics-addr", os.Getenv("LANWAKE_METRICS_ADDR"), &cfg.MetricsAddr)

	return nil
}
