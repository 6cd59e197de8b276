package wol

import (
	"errors"
	"testing"
)

func TestParseMAC(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    MACAddress
		wantErr error
	}{
		{
			name:  "uppercase",
			input: "A0-36-BC-BB-EB-CC",
			want:  MACAddress{0xA0, 0x36, 0xBC, 0xBB, 0xEB, 0xCC},
		},
		{
			name:  "lowercase parses to same bytes",
			input: "a0-36-bc-bb-eb-cc",
			want:  MACAddress{0xA0, 0x36, 0xBC, 0xBB, 0xEB, 0xCC},
		},
		{
			name:  "all zeros",
			input: "00-00-00-00-00-00",
			want:  MACAddress{},
		},
		{
			name:    "rejects colon separators",
			input:   "A0:36:BC:BB:EB:CC",
			wantErr: ErrMACSeparator,
		},
		{
			name:    "rejects short string",
			input:   "A0-36-BC",
			wantErr: ErrMACLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMAC(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseMAC(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMAC(%q) error = %v, want nil", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseMAC(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMACAddressString(t *testing.T) {
	mac := MACAddress{0xA0, 0x36, 0xBC, 0xBB, 0xEB, 0xCC}
	if got := mac.String(); got != "A0-36-BC-BB-EB-CC" {
		t.Fatalf("String() = %q, want A0-36-BC-BB-EB-CC", got)
	}
	// The canonical rendering must be accepted back by the validator.
	if err := ValidateMAC(mac.String()); err != nil {
		t.Fatalf("ValidateMAC(String()) = %v, want nil", err)
	}
}
