package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[target]
mac_address = "A0-36-BC-BB-EB-CC"
broadcast_ip = "192.168.0.255"
port = "9"

[watch]
debounce_delay = "250ms"

[listen]
port = 7
metrics_addr = "127.0.0.1:9102"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() = %v", err)
	}
	if fc.Target.MACAddress != "A0-36-BC-BB-EB-CC" {
		t.Errorf("MACAddress = %v", fc.Target.MACAddress)
	}
	if fc.Target.BroadcastIP != "192.168.0.255" {
		t.Errorf("BroadcastIP = %v", fc.Target.BroadcastIP)
	}
	if fc.Target.Port != "9" {
		t.Errorf("Port = %v", fc.Target.Port)
	}
	if fc.Watch.DebounceDelay != "250ms" {
		t.Errorf("DebounceDelay = %v", fc.Watch.DebounceDelay)
	}
	if fc.Listen.Port != 7 {
		t.Errorf("Listen.Port = %v", fc.Listen.Port)
	}
	if fc.Listen.MetricsAddr != "127.0.0.1:9102" {
		t.Errorf("Listen.MetricsAddr = %v", fc.Listen.MetricsAddr)
	}
}

func TestLoadFileConfigRejectsNumericPort(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	// A bare integer port must fail the decode: the core validator
	// only judges strings, so the file has to carry one.
	content := "[target]\nport = 9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Fatal("LoadFileConfig() = nil, want decode error")
	}
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("LoadFileConfig() = nil, want error")
	}
}

func TestApplyFileConfig(t *testing.T) {
	fc := FileConfig{
		Target: TargetFile{
			MACAddress:  "A0-36-BC-BB-EB-CC",
			BroadcastIP: "192.168.0.255",
			Port:        "7",
		},
		Watch:  WatchFile{DebounceDelay: "1s"},
		Listen: ListenFile{Port: 40000, MetricsAddr: ":9102"},
	}

	t.Run("applies all fields", func(t *testing.T) {
		cfg := DefaultConfig()
		if err := ApplyFileConfig(&cfg, fc, map[string]bool{}); err != nil {
			t.Fatalf("ApplyFileConfig() = %v", err)
		}
		if cfg.MACAddress != "A0-36-BC-BB-EB-CC" {
			t.Errorf("MACAddress = %v", cfg.MACAddress)
		}
		if cfg.BroadcastIP != "192.168.0.255" {
			t.Errorf("BroadcastIP = %v", cfg.BroadcastIP)
		}
		if cfg.Port != "7" {
			t.Errorf("Port = %v", cfg.Port)
		}
		if cfg.DebounceDelay != time.Second {
			t.Errorf("DebounceDelay = %v", cfg.DebounceDelay)
		}
		if cfg.ListenPort != 40000 {
			t.Errorf("ListenPort = %v", cfg.ListenPort)
		}
		if cfg.MetricsAddr != ":9102" {
			t.Errorf("MetricsAddr = %v", cfg.MetricsAddr)
		}
	})

	t.Run("respects changed flags", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MACAddress = "00-11-22-33-44-55"
		cfg.Port = "9"
		changed := map[string]bool{"mac": true, "port": true}
		if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
			t.Fatalf("ApplyFileConfig() = %v", err)
		}
		if cfg.MACAddress != "00-11-22-33-44-55" {
			t.Errorf("MACAddress overridden by file: %v", cfg.MACAddress)
		}
		if cfg.Port != "9" {
			t.Errorf("Port overridden by file: %v", cfg.Port)
		}
		if cfg.BroadcastIP != "192.168.0.255" {
			t.Errorf("BroadcastIP = %v, want file value", cfg.BroadcastIP)
		}
	})

	t.Run("invalid duration errors", func(t *testing.T) {
		cfg := DefaultConfig()
		bad := fc
		bad.Watch.DebounceDelay = "soon"
		if err := ApplyFileConfig(&cfg, bad, map[string]bool{}); err == nil {
			t.Fatal("ApplyFileConfig() = nil, want error")
		}
	})
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if FileExists(path) {
		t.Fatal("FileExists() = true for absent file")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Fatal("FileExists() = false for present file")
	}
}
