package wol

import (
	"fmt"
	"strconv"
)

// MACLength is the number of bytes in an IEEE 802 MAC-48 address.
const MACLength = 6

// MACAddress is a 6-byte hardware address in network byte order.
type MACAddress [MACLength]byte

// ParseMAC converts a MAC string that satisfies ValidateMAC into its 6
// raw bytes, left to right. The input is re-validated rather than
// assumed well-formed, so a malformed string yields a structured error
// instead of garbage bytes.
func ParseMAC(s string) (MACAddress, error) {
	var mac MACAddress
	if err := ValidateMAC(s); err != nil {
		return mac, err
	}
	for i := 0; i < MACLength; i++ {
		group := s[i*3 : i*3+2]
		value, err := strconv.ParseUint(group, 16, 8)
		if err != nil {
			// Unreachable after ValidateMAC, kept as the defensive path.
			return MACAddress{}, fmt.Errorf("%w: %q", ErrMACDigit, group)
		}
		mac[i] = byte(value)
	}
	return mac, nil
}

// String formats the address in the canonical uppercase hyphenated
// form accepted by ValidateMAC.
func (m MACAddress) String() string {
	return fmt.Sprintf("%02X-%02X-%02X-%02X-%02X-%02X", m[0], m[1], m[2], m[3], m[4], m[5])
}
