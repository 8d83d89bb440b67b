package blelink

import (
	"encoding/binary"
	"fmt"
)

// PDUType is the 4-bit packet type carried in every advertising channel
// PDU header. Seven codes are assigned; the rest of the code space is
// reserved, but reserved codes still round-trip through the header so
// that received packets can be inspected.
type PDUType uint8

// Advertising channel PDU types.
const (
	AdvInd        PDUType = 0x00 // connectable undirected advertising
	AdvDirectInd  PDUType = 0x01 // connectable directed advertising
	AdvNonconnInd PDUType = 0x02 // non-connectable undirected advertising
	ScanReq       PDUType = 0x03 // scan request
	ScanRsp       PDUType = 0x04 // scan response
	ConnectReq    PDUType = 0x05 // connection request
	AdvScanInd    PDUType = 0x06 // scannable undirected advertising
)

var pduTypeNames = map[PDUType]string{
	AdvInd:        "ADV_IND",
	AdvDirectInd:  "ADV_DIRECT_IND",
	AdvNonconnInd: "ADV_NONCONN_IND",
	ScanReq:       "SCAN_REQ",
	ScanRsp:       "SCAN_RSP",
	ConnectReq:    "CONNECT_REQ",
	AdvScanInd:    "ADV_SCAN_IND",
}

// Known reports whether t is one of the assigned PDU types.
func (t PDUType) Known() bool {
	_, ok := pduTypeNames[t]
	return ok
}

func (t PDUType) String() string {
	if s, ok := pduTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("unknown(0x%X)", uint8(t))
}

// A Header is the 16-bit header carried by every advertising channel
// PDU. Bit layout, least significant bit first:
//
//	+----------+----------+---------+---------+------------+----------+
//	| PDU Type |    -     |  TxAdd  |  RxAdd  |   Length   |    -     |
//	| (4 bits) | (2 bits) | (1 bit) | (1 bit) |  (6 bits)  | (2 bits) |
//	+----------+----------+---------+---------+------------+----------+
//
// The unnamed fields are reserved: setters leave them alone and
// NewHeader leaves them zero. On air the header travels least
// significant octet first.
type Header uint16

const (
	pduTypeMask    Header = 0x000F
	txAddMask      Header = 0x0040
	rxAddMask      Header = 0x0080
	payloadLenMask Header = 0x3F00

	payloadLenShift = 8
)

// NewHeader returns a header carrying only the type bits: both address
// flags clear, payload length zero.
func NewHeader(t PDUType) Header {
	return Header(t) & pduTypeMask
}

// ParseHeader reinterprets the first two bytes of b as a little-endian
// header. It performs no validation: received headers may carry
// reserved type codes or out-of-range lengths and must still be
// inspectable. ParseHeader panics if b holds fewer than two bytes.
func ParseHeader(b []byte) Header {
	return Header(binary.LittleEndian.Uint16(b))
}

// Bits returns the raw header value, to be transmitted least
// significant octet first.
func (h Header) Bits() uint16 { return uint16(h) }

// Type extracts the PDU type from bits 0-3.
func (h Header) Type() PDUType { return PDUType(h & pduTypeMask) }

// TxAdd reports whether the transmitter of the PDU uses a random
// device address.
func (h Header) TxAdd() bool { return h&txAddMask != 0 }

// SetTxAdd sets the TxAdd flag: true for a random transmitter address,
// false for a public one.
func (h *Header) SetTxAdd(random bool) {
	if random {
		*h |= txAddMask
	} else {
		*h &^= txAddMask
	}
}

// RxAdd reports whether the target of the PDU uses a random device
// address. Only directed PDUs give the bit meaning.
func (h Header) RxAdd() bool { return h&rxAddMask != 0 }

// SetRxAdd sets the RxAdd flag.
func (h *Header) SetRxAdd(random bool) {
	if random {
		*h |= rxAddMask
	} else {
		*h &^= rxAddMask
	}
}

// PayloadLength extracts the payload length from bits 8-13, without
// validation.
func (h Header) PayloadLength() uint8 {
	return uint8((h & payloadLenMask) >> payloadLenShift)
}

// SetPayloadLength stores n in bits 8-13. Advertising channel payloads
// are 6 to 37 octets long; a length outside those bounds is a
// programming error and panics. The PDU constructors can never produce
// one.
func (h *Header) SetPayloadLength(n uint8) {
	if n < MinPayloadSize || n > MaxPayloadSize {
		panic(fmt.Sprintf("blelink: payload length %d outside [%d, %d]",
			n, MinPayloadSize, MaxPayloadSize))
	}
	*h = *h&^payloadLenMask | Header(n)<<payloadLenShift
}

func (h Header) String() string {
	return fmt.Sprintf("%s TxAdd=%t RxAdd=%t length=%d",
		h.Type(), h.TxAdd(), h.RxAdd(), h.PayloadLength())
}
