package wol

const (
	// syncHeaderSize is the number of leading 0xFF synchronization bytes.
	syncHeaderSize = 6
	// macRepeatCount is how many times the target MAC follows the header.
	macRepeatCount = 16
	// MagicPacketSize is the full wire size: 6 + 16*6 = 102 bytes.
	MagicPacketSize = syncHeaderSize + macRepeatCount*MACLength
)

// MagicPacket is the complete 102-byte Wake-on-LAN payload. There is no
// checksum and no trailer; the layout is fixed by the de facto standard
// and must be bit-exact for real network adapters to recognize it.
type MagicPacket [MagicPacketSize]byte

// BuildMagicPacket assembles the payload for mac: 6 bytes of 0xFF
// followed by the address repeated 16 times contiguously.
func BuildMagicPacket(mac MACAddress) MagicPacket {
	var packet MagicPacket
	for i := 0; i < syncHeaderSize; i++ {
		packet[i] = 0xFF
	}
	for repeat := 0; repeat < macRepeatCount; repeat++ {
		copy(packet[syncHeaderSize+repeat*MACLength:], mac[:])
	}
	return packet
}

// ExtractMAC validates payload as a magic packet and returns the target
// address. A valid packet is at least 102 bytes, starts with 6 bytes of
// 0xFF, and repeats the same 6-byte address 16 times.
func ExtractMAC(payload []byte) (MACAddress, bool) {
	var mac MACAddress
	if len(payload) < MagicPacketSize {
		return mac, false
	}
	for i := 0; i < syncHeaderSize; i++ {
		if payload[i] != 0xFF {
			return mac, false
		}
	}
	copy(mac[:], payload[syncHeaderSize:syncHeaderSize+MACLength])
	for repeat := 1; repeat < macRepeatCount; repeat++ {
		offset := syncHeaderSize + repeat*MACLength
		for i := 0; i < MACLength; i++ {
			if payload[offset+i] != mac[i] {
				return MACAddress{}, false
			}
		}
	}
	return mac, true
}
