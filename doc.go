// Package blelink implements the Bluetooth Low Energy advertising
// channel PDU format.
//
// Advertising channel PDUs are the packets a BLE device broadcasts
// before any connection exists: they announce the device and carry
// small amounts of broadcast data, and they are how scanners and
// initiators find devices to talk to. Each PDU is a 16-bit header plus
// a payload of 6 to 37 octets, and on-air correctness is bit-exact:
// field widths, bit positions and byte order are dictated by the
// Bluetooth specification, and a single misplaced bit produces a
// packet no receiver will parse.
//
// STATUS
//
// Building advertising PDUs is done: all four advertising variants
// (connectable/non-connectable/scannable undirected and connectable
// directed) plus the beacon and discoverable conveniences, and header
// parsing for inspection of received bytes. Scanning is missing:
// ScanRequest and ScanResponse fail with ErrScanUnsupported until the
// scanner role is implemented.
//
// This package produces and inspects bytes. It does not touch a radio:
// pair it with a transmission layer (an HCI transport or a baseband
// driver) that consumes Header.Bits and PDU.Payload.
//
// USAGE
//
// Build a PDU with one of the named constructors and hand the header
// bits and the payload to a transmitter:
//
//	addr, err := blelink.ParseDeviceAddress("CA:FE:12:34:56:78", true)
//	if err != nil {
//		log.Fatal(err)
//	}
//	pdu, err := blelink.Beacon(addr, []blelink.AdStructure{
//		blelink.CompleteLocalName("gopher"),
//		blelink.ManufacturerData{CompanyID: 0xFFFF, Data: []byte{0x01}},
//	})
//	if err != nil {
//		log.Fatal(err) // advertising data did not fit in 37 octets
//	}
//	transmit(pdu.Header().Bits(), pdu.Payload())
//
// Construction is a pure transformation from inputs to a value: the
// payload lives in a fixed array inside the PDU, never on a shared
// buffer, so PDUs can be rebuilt at advertising-interval rates on
// constrained targets.
//
// BYTE ORDER
//
// Everything on the advertising channel is little-endian: the header
// is transmitted least significant octet first, and device addresses
// travel least significant octet first as well. DeviceAddress keeps
// its bytes in on-air order; ParseDeviceAddress accepts the
// conventional human form (most significant octet first) and reverses
// it.
package blelink
