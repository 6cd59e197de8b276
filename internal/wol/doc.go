// Package wol implements the Wake-on-LAN core: strict validation of
// operator-supplied MAC address, broadcast IPv4 address, and port
// strings, construction of the fixed 102-byte magic packet, and its
// one-shot transmission over broadcast UDP.
//
// The package never logs or prints; every failure surfaces as an error
// carrying one of the sentinel causes in errors.go.
package wol
