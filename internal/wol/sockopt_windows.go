//go:build windows

package wol

import (
	"net"
	"unsafe"

	"golang.org/x/sys/windows"
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
		sockErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_BROADCAST, 1)
	}); err != nil {
		return err
	}
	return sockErr
}

// disableConnReset turns off the WinSock behavior that reports ICMP
// "port unreachable" responses as failures on later operations on an
// unconnected UDP socket. Failure is silently ignored: it cannot
// affect the correctness of the one-shot send.
func disableConnReset(conn *net.UDPConn) {
	raw, err := conn.SyscallConn()
	if err != nil {
		return
	}
	_ = raw.Control(func(fd uintptr) {
		var enabled uint32 // FALSE: do not report connreset
		var returned uint32
		_ = windows.WSAIoctl(windows.Handle(fd), windows.SIO_UDP_CONNRESET,
			(*byte)(unsafe.Pointer(&enabled)), uint32(unsafe.Sizeof(enabled)),
			nil, 0, &returned, nil, 0)
	})
}
