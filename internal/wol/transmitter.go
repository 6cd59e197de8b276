package wol

import (
	"fmt"
	"net"
)

// sendConn is the slice of *net.UDPConn the transmitter needs. Tests
// substitute a fake to observe the destination and payload without a
// real socket.
type sendConn interface {
	WriteToUDP(b []byte, addr *net.UDPAddr) (int, error)
	Close() error
}

// Transmitter sends magic packets as one-shot broadcast UDP datagrams.
// The zero value is not usable; construct with NewTransmitter.
type Transmitter struct {
	env      *Subsystem
	openConn func() (sendConn, error)
}

// NewTransmitter returns a transmitter bound to env. A nil env uses
// the shared default subsystem.
func NewTransmitter(env *Subsystem) *Transmitter {
	if env == nil {
		env = DefaultSubsystem()
	}
	t := &Transmitter{env: env}
	t.openConn = t.openSocket
	return t
}

// SendMagicPacket validates the three raw operator-supplied strings
// and, only if all of them are well formed, transmits one magic packet.
// This is the single entry point composing validation, parsing,
// building, and transmission; a validation failure returns before any
// network resource is touched.
func (t *Transmitter) SendMagicPacket(mac, broadcastIP, portRaw string) error {
	if err := ValidateMAC(mac); err != nil {
		return err
	}
	if err := ValidateIPv4(broadcastIP); err != nil {
		return err
	}
	port, err := ValidatePort(portRaw)
	if err != nil {
		return err
	}
	hw, err := ParseMAC(mac)
	if err != nil {
		return err
	}
	return t.Send(hw, broadcastIP, port)
}

// Send builds the packet for mac and transmits it to ip:port as a
// single datagram. ip must already satisfy ValidateIPv4 and port
// ValidatePort. Success means the local transport accepted the
// datagram; Wake-on-LAN is fire-and-forget and nothing confirms
// delivery or wake-up. The socket and the subsystem handle are
// released on every exit path.
func (t *Transmitter) Send(mac MACAddress, ip string, port uint16) error {
	handle, err := t.env.Acquire()
	if err != nil {
		return err
	}
	defer handle.Release()

	packet := BuildMagicPacket(mac)

	conn, err := t.openConn()
	if err != nil {
		return err
	}
	defer conn.Close()

	dst, err := resolveIPv4(ip, port)
	if err != nil {
		return err
	}

	n, err := conn.WriteToUDP(packet[:], dst)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPacketSend, err)
	}
	if n != len(packet) {
		return fmt.Errorf("%w: wrote %d of %d bytes", ErrPacketSend, n, len(packet))
	}
	return nil
}

// openSocket allocates an unconnected IPv4 datagram socket with
// broadcast permission. The socket stays unconnected so an ICMP "port
// unreachable" response cannot surface as an error on the send; on
// Windows the connreset behavior is additionally disabled through an
// ioctl, best effort.
func (t *Transmitter) openSocket() (sendConn, error) {
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSocketCreate, err)
	}
	if err := enableBroadcast(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrBroadcastSetup, err)
	}
	disableConnReset(conn)
	return conn, nil
}

// resolveIPv4 converts the textual destination into a UDP address.
func resolveIPv4(ip string, port uint16) (*net.UDPAddr, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("%w: %q", ErrAddressConvert, ip)
	}
	v4 := parsed.To4()
	if v4 == nil {
		return nil, fmt.Errorf("%w: %q is not IPv4", ErrAddressConvert, ip)
	}
	return &net.UDPAddr{IP: v4, Port: int(port)}, nil
}

// SendMagicPacket sends one magic packet using the default subsystem.
func SendMagicPacket(mac, broadcastIP, portRaw string) error {
	return NewTransmitter(nil).SendMagicPacket(mac, broadcastIP, portRaw)
}
