package wol

import (
	"fmt"
	"strconv"
	"strings"
)

// macStringLength is the length of XX-XX-XX-XX-XX-XX.
const macStringLength = 17

// maxPort is the highest assignable UDP port.
const maxPort = 65535

// ValidateMAC checks that s is a hyphen-separated MAC address of the
// form XX-XX-XX-XX-XX-XX. Hex digits are case-insensitive; the only
// accepted separator is '-' at positions 2, 5, 8, 11 and 14. The
// format is deliberately locked down so operator typos fail loudly
// instead of being normalized.
func ValidateMAC(s string) error {
	if len(s) != macStringLength {
		return fmt.Errorf("%w: got %d", ErrMACLength, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i%3 == 2 {
			if c != '-' {
				return fmt.Errorf("%w: found %q at position %d", ErrMACSeparator, c, i)
			}
			continue
		}
		if !isHexDigit(c) {
			return fmt.Errorf("%w: %q at position %d", ErrMACDigit, c, i)
		}
	}
	return nil
}

// ValidateIPv4 checks that s is a dotted-decimal IPv4 address: exactly
// 4 octets, each 1-3 digits in 0-255, with no leading zeros.
func ValidateIPv4(s string) error {
	octets := strings.Split(s, ".")
	if len(octets) != 4 {
		return fmt.Errorf("%w: got %d in %q", ErrIPSegments, len(octets), s)
	}
	for _, octet := range octets {
		if err := validateOctet(octet); err != nil {
			return err
		}
	}
	return nil
}

// validateOctet applies the octet rule from ValidateIPv4 to a single
// dot-separated segment.
func validateOctet(octet string) error {
	if octet == "" {
		return ErrOctetEmpty
	}
	if len(octet) > 3 {
		return fmt.Errorf("%w: %q", ErrOctetTooLong, octet)
	}
	for i := 0; i < len(octet); i++ {
		if octet[i] < '0' || octet[i] > '9' {
			return fmt.Errorf("%w: %q", ErrOctetDigit, octet)
		}
	}
	if len(octet) > 1 && octet[0] == '0' {
		return fmt.Errorf("%w: %q", ErrOctetLeadingZero, octet)
	}
	// Both the parse error and the explicit bound are checked even
	// though a 3-digit string cannot overflow uint64.
	value, err := strconv.ParseUint(octet, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrOctetRange, octet)
	}
	if value > 255 {
		return fmt.Errorf("%w: %d", ErrOctetRange, value)
	}
	return nil
}

// ValidatePort parses raw as a UDP port. Only strings wholly composed
// of decimal digits are accepted: no sign, no whitespace, no trailing
// garbage after a numeric prefix. Port 0 is reserved and always
// invalid.
func ValidatePort(raw string) (uint16, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: empty string", ErrPortSyntax)
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrPortSyntax, raw)
		}
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrPortRange, raw)
	}
	if value == 0 {
		return 0, ErrPortReserved
	}
	if value > maxPort {
		return 0, fmt.Errorf("%w: %d", ErrPortRange, value)
	}
	return uint16(value), nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}
