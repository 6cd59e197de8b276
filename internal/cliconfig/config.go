package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wol-labs/lanwake/internal/wol"
)

// DefaultBroadcastIP is the limited broadcast address used when the
// configuration provides no broadcast IP.
const DefaultBroadcastIP = "255.255.255.255"

// DefaultListenPort is the conventional Wake-on-LAN UDP port.
const DefaultListenPort = 9

// Config holds CLI configuration for lanwake. The three target fields
// stay raw strings: the core validators are the only authority on
// their syntax and a default here must not mask a typo there.
type Config struct {
	MACAddress  string
	BroadcastIP string
	Port        string

	// DebounceDelay applies to watch mode: how long to wait after a
	// config file event before sending.
	DebounceDelay time.Duration

	// ListenPort and MetricsAddr apply to listen mode.
	ListenPort  int
	MetricsAddr string
}

// DefaultConfig returns a Config with default values. The port has no
// default on purpose; its absence is a validation error.
func DefaultConfig() Config {
	return Config{
		BroadcastIP:   DefaultBroadcastIP,
		DebounceDelay: 100 * time.Millisecond,
		ListenPort:    DefaultListenPort,
	}
}

// Validate checks the target fields with the strict core validators
// and the mode settings for sanity. The returned error carries the
// specific cause for the caller to render.
func (c *Config) Validate() error {
	if c.MACAddress == "" {
		return fmt.Errorf("mac address is required")
	}
	if err := wol.ValidateMAC(c.MACAddress); err != nil {
		return err
	}
	if c.BroadcastIP == "" {
		c.BroadcastIP = DefaultBroadcastIP
	}
	if err := wol.ValidateIPv4(c.BroadcastIP); err != nil {
		return err
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}
	if _, err := wol.ValidatePort(c.Port); err != nil {
		return err
	}
	if c.DebounceDelay <= 0 {
		return fmt.Errorf("debounce delay must be positive")
	}
	if c.ListenPort < 1 || c.ListenPort > 65535 {
		return fmt.Errorf("listen port must be between 1 and 65535")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't
// been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag
// not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a string to int and sets the destination if
// valid. Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}
