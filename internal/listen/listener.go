// Package listen implements a diagnostic receiver for Wake-on-LAN
// traffic. It binds the wake port, validates every datagram against
// the magic packet layout, and logs the target MAC of valid packets,
// which is the quickest way to confirm a sender on the same segment is
// actually emitting well-formed packets.
package listen

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wol-labs/lanwake/internal/wol"
)

// Listener reads datagrams from the wake port until stopped.
type Listener struct {
	port int
	log  zerolog.Logger

	// OnPacket, if set, is invoked for every valid magic packet.
	OnPacket func(mac wol.MACAddress, from *net.UDPAddr)

	mu   sync.Mutex
	conn *net.UDPConn
}

// New creates a listener for the given UDP port on all interfaces.
func New(port int, log zerolog.Logger) *Listener {
	return &Listener{port: port, log: log}
}

// Run binds the port and processes datagrams until ctx is cancelled.
func (l *Listener) Run(ctx context.Context) error {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: l.port})
	if err != nil {
		return fmt.Errorf("listen on udp port %d: %w", l.port, err)
	}
	l.setConn(conn)
	defer conn.Close()

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	l.log.Info().Int("port", l.port).Str("addr", conn.LocalAddr().String()).Msg("listening for magic packets")

	buf := make([]byte, 1024)
	for {
		n, addr, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			ReadErrors.Inc()
			l.log.Error().Err(err).Msg("read datagram")
			continue
		}
		PacketsReceived.Inc()

		mac, ok := wol.ExtractMAC(buf[:n])
		if !ok {
			InvalidPackets.Inc()
			l.log.Debug().Str("from", addr.String()).Int("size", n).Msg("not a magic packet")
			continue
		}
		MagicPackets.Inc()
		l.log.Info().Str("mac", mac.String()).Str("from", addr.String()).Msg("magic packet received")

		if l.OnPacket != nil {
			l.OnPacket(mac, addr)
		}
	}
}

// LocalAddr reports the bound address, or nil before Run has bound the
// socket. Useful when listening on port 0.
func (l *Listener) LocalAddr() *net.UDPAddr {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.conn == nil {
		return nil
	}
	addr, _ := l.conn.LocalAddr().(*net.UDPAddr)
	return addr
}

func (l *Listener) setConn(conn *net.UDPConn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.conn = conn
}
