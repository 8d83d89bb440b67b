package blelink

// This file includes link layer constants from the BLE spec.

// Advertising channel PDU sizes, in octets.
const (
	// HeaderSize is the on-air size of a PDU header.
	HeaderSize = 2

	// MinPayloadSize and MaxPayloadSize bound the payload length field
	// of every advertising channel PDU. With the 2-octet header,
	// MaxPayloadSize yields the largest packet the advertising channel
	// can carry on air.
	MinPayloadSize = 6
	MaxPayloadSize = 37
)

// AccessAddress is the fixed access address every advertising channel
// packet is transmitted with. Data channel packets use a pseudo-random
// address assigned during connection setup instead.
const AccessAddress uint32 = 0x8E89BED6

// CRCPreset is the initial value of the CRC polynomial for advertising
// channel packets.
const CRCPreset uint32 = 0x555555
