package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"LANWAKE_MAC":          "A0-36-BC-BB-EB-CC",
				"LANWAKE_BROADCAST":    "192.168.0.255",
				"LANWAKE_PORT":         "7",
				"LANWAKE_DEBOUNCE":     "2s",
				"LANWAKE_LISTEN_PORT":  "40000",
				"LANWAKE_METRICS_ADDR": ":9102",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				MACAddress:    "A0-36-BC-BB-EB-CC",
				BroadcastIP:   "192.168.0.255",
				Port:          "7",
				DebounceDelay: 2 * time.Second,
				ListenPort:    40000,
				MetricsAddr:   ":9102",
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"LANWAKE_MAC":  "A0-36-BC-BB-EB-CC",
				"LANWAKE_PORT": "7",
			},
			changed: map[string]bool{"mac": true},
			initial: Config{MACAddress: "00-11-22-33-44-55"},
			expected: Config{
				MACAddress: "00-11-22-33-44-55",
				Port:       "7",
			},
		},
		{
			name: "malformed values pass through for the validator to reject",
			envVars: map[string]string{
				"LANWAKE_MAC":  "not-a-mac-at-all",
				"LANWAKE_PORT": "9abc",
			},
			changed: map[string]bool{},
			initial: Config{},
			expected: Config{
				MACAddress: "not-a-mac-at-all",
				Port:       "9abc",
			},
		},
		{
			name: "returns error for invalid duration",
			envVars: map[string]string{
				"LANWAKE_DEBOUNCE": "not-a-duration",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
		{
			name: "returns error for non-numeric listen port",
			envVars: map[string]string{
				"LANWAKE_LISTEN_PORT": "soon",
			},
			changed: map[string]bool{},
			initial: Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ApplyEnvConfig() = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() = %v", err)
			}
			if cfg != tt.expected {
				t.Fatalf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}
