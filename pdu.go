package blelink

import (
	"errors"
	"fmt"
)

// ErrScanUnsupported is the error returned by the scan request and
// scan response constructors. Scanning is not implemented yet.
var ErrScanUnsupported = errors.New("scanning is not supported")

// A PDU is one assembled advertising channel packet: a header plus a
// payload held in fixed-capacity storage. Constructors return it fully
// built; it is read-only afterwards.
type PDU struct {
	header  Header
	payload [MaxPayloadSize]byte
}

// Header returns a copy of the PDU header.
func (p *PDU) Header() Header { return p.header }

// Payload returns the used portion of the payload storage, the
// header's payload length in bytes.
func (p *PDU) Payload() []byte { return p.payload[:p.header.PayloadLength()] }

func (p *PDU) String() string {
	return fmt.Sprintf("PDU(%v, payload=%x)", p.header, p.Payload())
}

// assemble builds the single-address PDU variants: the transmitter's 6
// raw address bytes, then every AD structure back to back, stopping at
// the first structure that does not fit. The groups in data let
// constructors put mandatory structures ahead of caller-supplied ones
// without concatenating slices. On failure no PDU is returned.
func assemble(typ PDUType, adv DeviceAddress, data ...[]AdStructure) (PDU, error) {
	var p PDU
	w := NewByteWriter(p.payload[:])
	raw := adv.Raw()
	if err := w.WriteSlice(raw[:]); err != nil {
		return PDU{}, err
	}
	for _, group := range data {
		for _, ad := range group {
			if err := ad.EncodeTo(w); err != nil {
				return PDU{}, err
			}
		}
	}
	used := MaxPayloadSize - w.SpaceLeft()

	h := NewHeader(typ)
	h.SetPayloadLength(uint8(used))
	h.SetTxAdd(adv.IsRandom())
	h.SetRxAdd(false)
	p.header = h
	return p, nil
}

// ConnectableUndirected builds an ADV_IND PDU: advertising data from a
// device any initiator may connect to.
func ConnectableUndirected(adv DeviceAddress, data []AdStructure) (PDU, error) {
	return assemble(AdvInd, adv, data)
}

// NonconnectableUndirected builds an ADV_NONCONN_IND PDU: broadcast
// only, accepting neither connections nor scan requests.
func NonconnectableUndirected(adv DeviceAddress, data []AdStructure) (PDU, error) {
	return assemble(AdvNonconnInd, adv, data)
}

// ScannableUndirected builds an ADV_SCAN_IND PDU: non-connectable, but
// inviting scanners to request a scan response.
func ScannableUndirected(adv DeviceAddress, data []AdStructure) (PDU, error) {
	return assemble(AdvScanInd, adv, data)
}

// Beacon builds a non-connectable PDU with the broadcast Flags
// structure prepended ahead of data, as the BLE spec requires of
// broadcast-only devices.
func Beacon(adv DeviceAddress, data []AdStructure) (PDU, error) {
	return assemble(AdvNonconnInd, adv, []AdStructure{BroadcastFlags()}, data)
}

// Discoverable builds a connectable PDU with the general
// discoverability Flags structure prepended ahead of data, advertising
// willingness to pair.
func Discoverable(adv DeviceAddress, data []AdStructure) (PDU, error) {
	return assemble(AdvInd, adv, []AdStructure{DiscoverableFlags()}, data)
}

// ConnectableDirected builds an ADV_DIRECT_IND PDU inviting one
// specific initiator to connect. The payload is exactly the two
// addresses, advertiser then initiator, with no room for advertising
// data, so construction cannot fail.
func ConnectableDirected(adv, initiator DeviceAddress) PDU {
	var p PDU
	a, i := adv.Raw(), initiator.Raw()
	copy(p.payload[0:6], a[:])
	copy(p.payload[6:12], i[:])

	h := NewHeader(AdvDirectInd)
	h.SetPayloadLength(12)
	h.SetTxAdd(adv.IsRandom())
	h.SetRxAdd(initiator.IsRandom())
	p.header = h
	return p
}

// ScanRequest would build a SCAN_REQ PDU asking adv for a scan
// response. Scanning is not supported yet: it fails deterministically
// with ErrScanUnsupported and produces no PDU.
// TODO: implement together with the scanner role of the link layer
// state machine.
func ScanRequest(scanner, adv DeviceAddress) (PDU, error) {
	return PDU{}, ErrScanUnsupported
}

// ScanResponse would build a SCAN_RSP PDU answering a scan request.
// Scanning is not supported yet: it fails deterministically with
// ErrScanUnsupported and produces no PDU.
func ScanResponse(adv DeviceAddress, data []AdStructure) (PDU, error) {
	return PDU{}, ErrScanUnsupported
}
