package wol

import "errors"

// Validation errors. Each failure cause is a distinct sentinel so
// callers can tell an operator exactly what was wrong with the input.
// Check with errors.Is; call sites wrap these with positional detail.
var (
	// ErrMACLength is returned when a MAC string is not exactly 17
	// characters (XX-XX-XX-XX-XX-XX).
	ErrMACLength = errors.New("wol: MAC address must be 17 characters")

	// ErrMACSeparator is returned when a separator position does not
	// hold '-'. Mixed or ':' separators are rejected, not normalized.
	ErrMACSeparator = errors.New("wol: MAC address separator must be '-'")

	// ErrMACDigit is returned when a non-separator position is not an
	// ASCII hex digit.
	ErrMACDigit = errors.New("wol: MAC address contains a non-hex character")

	// ErrIPSegments is returned when an IPv4 string does not split into
	// exactly 4 dot-separated octets.
	ErrIPSegments = errors.New("wol: IPv4 address must have exactly 4 octets")

	// ErrOctetEmpty is returned for consecutive, leading, or trailing
	// dots producing an empty octet.
	ErrOctetEmpty = errors.New("wol: IPv4 octet is empty")

	// ErrOctetTooLong is returned when an octet has more than 3 digits.
	ErrOctetTooLong = errors.New("wol: IPv4 octet is longer than 3 digits")

	// ErrOctetDigit is returned when an octet contains a non-digit.
	ErrOctetDigit = errors.New("wol: IPv4 octet contains a non-digit character")

	// ErrOctetLeadingZero is returned for octets like "01"; only a
	// single "0" may start with zero.
	ErrOctetLeadingZero = errors.New("wol: IPv4 octet has a leading zero")

	// ErrOctetRange is returned when an octet's value exceeds 255 or
	// cannot be converted at all.
	ErrOctetRange = errors.New("wol: IPv4 octet out of range 0-255")

	// ErrPortSyntax is returned when a port string is not wholly decimal
	// digits. Signs, whitespace, and trailing garbage all fail here.
	ErrPortSyntax = errors.New("wol: port must be decimal digits only")

	// ErrPortReserved is returned for port 0.
	ErrPortReserved = errors.New("wol: port 0 is reserved")

	// ErrPortRange is returned for ports above 65535, including values
	// that overflow the integer parse.
	ErrPortRange = errors.New("wol: port must be between 1 and 65535")
)

// Transport errors. Each step of the send pipeline fails with its own
// cause; all are fatal for the attempt and nothing is retried.
var (
	// ErrSubsystemInit is returned when the networking subsystem cannot
	// be acquired.
	ErrSubsystemInit = errors.New("wol: network subsystem initialization failed")

	// ErrSocketCreate is returned when the datagram socket cannot be
	// allocated.
	ErrSocketCreate = errors.New("wol: socket creation failed")

	// ErrBroadcastSetup is returned when broadcast permission cannot be
	// enabled on the socket.
	ErrBroadcastSetup = errors.New("wol: broadcast setup failed")

	// ErrAddressConvert is returned when the destination cannot be
	// resolved as an IPv4 address.
	ErrAddressConvert = errors.New("wol: address conversion failed")

	// ErrPacketSend is returned for transport-level send failures,
	// including partial writes.
	ErrPacketSend = errors.New("wol: packet send failed")
)
