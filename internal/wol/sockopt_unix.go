//go:build !windows

package wol

import (
	"net"

	"golang.org/x/sys/unix"
)

// enableBroadcast sets SO_BROADCAST so datagrams may be addressed to
// broadcast destinations.
func enableBroadcast(conn *net.UDPConn) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return err
	}
	var sockErr error
	if err := raw.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
	}); err != nil {
		return err
	}
	return sockErr
}

// disableConnReset is a no-op outside Windows; only WinSock reacts to
// ICMP "port unreachable" on unconnected UDP sockets.
func disableConnReset(conn *net.UDPConn) {}
