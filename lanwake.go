// Package lanwake sends Wake-on-LAN magic packets.
//
// Example usage:
//
//	if err := lanwake.SendMagicPacket("A0-36-BC-BB-EB-CC", "192.168.0.255", "9"); err != nil {
//	    log.Fatal(err)
//	}
//
// All three inputs are validated strictly before any network activity;
// the distinct sentinel errors identify exactly which check failed. A
// nil error means the local network stack accepted the datagram, not
// that the target machine woke up.
package lanwake

import (
	"github.com/wol-labs/lanwake/internal/wol"
)

// MACAddress is a parsed 48-bit hardware address.
type MACAddress = wol.MACAddress

// MagicPacket is an assembled Wake-on-LAN payload: six 0xFF bytes
// followed by the target MAC repeated sixteen times.
type MagicPacket = wol.MagicPacket

// Transmitter sends magic packets over broadcast UDP.
type Transmitter = wol.Transmitter

// Subsystem manages shared network state with reference counting.
type Subsystem = wol.Subsystem

// MagicPacketSize is the exact payload length in bytes.
const MagicPacketSize = wol.MagicPacketSize

// MACLength is the number of bytes in a hardware address.
const MACLength = wol.MACLength

// Validation failures. Each names the first check that rejected the
// input; compare with errors.Is.
var (
	ErrMACLength        = wol.ErrMACLength
	ErrMACSeparator     = wol.ErrMACSeparator
	ErrMACDigit         = wol.ErrMACDigit
	ErrIPSegments       = wol.ErrIPSegments
	ErrOctetEmpty       = wol.ErrOctetEmpty
	ErrOctetTooLong     = wol.ErrOctetTooLong
	ErrOctetDigit       = wol.ErrOctetDigit
	ErrOctetLeadingZero = wol.ErrOctetLeadingZero
	ErrOctetRange       = wol.ErrOctetRange
	ErrPortSyntax       = wol.ErrPortSyntax
	ErrPortReserved     = wol.ErrPortReserved
	ErrPortRange        = wol.ErrPortRange
)

// Transport failures.
var (
	ErrSubsystemInit  = wol.ErrSubsystemInit
	ErrSocketCreate   = wol.ErrSocketCreate
	ErrBroadcastSetup = wol.ErrBroadcastSetup
	ErrAddressConvert = wol.ErrAddressConvert
	ErrPacketSend     = wol.ErrPacketSend
)

// ValidateMAC checks that s is a MAC address of the form
// XX-XX-XX-XX-XX-XX with uppercase or lowercase hex digits.
func ValidateMAC(s string) error {
	return wol.ValidateMAC(s)
}

// ValidateIPv4 checks that s is a dotted-quad IPv4 address with octets
// in 0..255 and no leading zeros.
func ValidateIPv4(s string) error {
	return wol.ValidateIPv4(s)
}

// ValidatePort checks that s is a decimal port number in 1..65535 and
// returns its value.
func ValidatePort(s string) (uint16, error) {
	return wol.ValidatePort(s)
}

// ParseMAC validates s and converts it to its six-byte form.
func ParseMAC(s string) (MACAddress, error) {
	return wol.ParseMAC(s)
}

// BuildMagicPacket assembles the wake payload for mac.
func BuildMagicPacket(mac MACAddress) MagicPacket {
	return wol.BuildMagicPacket(mac)
}

// NewTransmitter creates a transmitter bound to env. A nil env uses
// the process-wide default subsystem.
func NewTransmitter(env *Subsystem) *Transmitter {
	return wol.NewTransmitter(env)
}

// SendMagicPacket validates mac, broadcastIP, and port, then sends one
// magic packet using the default subsystem.
func SendMagicPacket(mac, broadcastIP, port string) error {
	return wol.SendMagicPacket(mac, broadcastIP, port)
}
