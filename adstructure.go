package blelink

import "errors"

// ErrDataTooLong is the error returned when an AD structure's data
// cannot be framed because its length does not fit the length octet.
var ErrDataTooLong = errors.New("AD structure data exceeds 254 bytes")

// advertising data field types
const (
	typeFlags            = 0x01 // Flags
	typeSomeUUID16       = 0x02 // Incomplete List of 16-bit Service Class UUIDs
	typeAllUUID16        = 0x03 // Complete List of 16-bit Service Class UUIDs
	typeShortName        = 0x08 // Shortened Local Name
	typeCompleteName     = 0x09 // Complete Local Name
	typeTxPower          = 0x0A // Tx Power Level
	typeServiceData16    = 0x16 // Service Data - 16-bit UUID
	typeManufacturerData = 0xFF // Manufacturer Specific Data
)

// An AdStructure is one advertising data element carried in a PDU
// payload. On air each structure is a [length, type, data...] triplet
// where length counts the type octet plus the data.
type AdStructure interface {
	// EncodeTo appends the structure's on-air form to w, writing
	// nothing when the whole structure does not fit.
	EncodeTo(w *ByteWriter) error
}

// encodeField writes one structure as length, typ, data. Length counts
// typ plus the data bytes.
func encodeField(w *ByteWriter, typ byte, data []byte) error {
	if len(data) > 254 {
		return ErrDataTooLong
	}
	if w.SpaceLeft() < 2+len(data) {
		return ErrNoSpace
	}
	w.WriteByte(byte(len(data) + 1))
	w.WriteByte(typ)
	w.WriteSlice(data)
	return nil
}

// Flags is the AD structure announcing a device's discoverability mode
// and BR/EDR capabilities.
type Flags uint8

// flag bits
const (
	FlagLimitedDiscoverable Flags = 1 << iota // LE Limited Discoverable Mode
	FlagGeneralDiscoverable                   // LE General Discoverable Mode
	FlagLEOnly                                // BR/EDR Not Supported
	FlagBothController                        // Simultaneous LE and BR/EDR to Same Device Capable (Controller)
	FlagBothHost                              // Simultaneous LE and BR/EDR to Same Device Capable (Host)
)

// BroadcastFlags returns the flags of a broadcast-only device such as
// a beacon: LE only, not discoverable.
func BroadcastFlags() Flags { return FlagLEOnly }

// DiscoverableFlags returns the flags of a device that wants to be
// discovered and connected to.
func DiscoverableFlags() Flags { return FlagLEOnly | FlagGeneralDiscoverable }

func (f Flags) EncodeTo(w *ByteWriter) error {
	return encodeField(w, typeFlags, []byte{byte(f)})
}

// CompleteLocalName advertises the device's full name.
type CompleteLocalName string

func (n CompleteLocalName) EncodeTo(w *ByteWriter) error {
	return encodeField(w, typeCompleteName, []byte(n))
}

// ShortenedLocalName advertises a truncated form of the device's name.
type ShortenedLocalName string

func (n ShortenedLocalName) EncodeTo(w *ByteWriter) error {
	return encodeField(w, typeShortName, []byte(n))
}

// ServiceUUIDs16 advertises the complete list of 16-bit service class
// UUIDs offered by the device, each encoded little endian.
type ServiceUUIDs16 []uint16

func (u ServiceUUIDs16) EncodeTo(w *ByteWriter) error {
	n := 2 * len(u)
	if n > 254 {
		return ErrDataTooLong
	}
	if w.SpaceLeft() < 2+n {
		return ErrNoSpace
	}
	w.WriteByte(byte(n + 1))
	w.WriteByte(typeAllUUID16)
	for _, id := range u {
		w.WriteUint16(id)
	}
	return nil
}

// ServiceData16 carries service-specific data keyed by a 16-bit
// service class UUID.
type ServiceData16 struct {
	UUID uint16
	Data []byte
}

func (s ServiceData16) EncodeTo(w *ByteWriter) error {
	n := 2 + len(s.Data)
	if n > 254 {
		return ErrDataTooLong
	}
	if w.SpaceLeft() < 2+n {
		return ErrNoSpace
	}
	w.WriteByte(byte(n + 1))
	w.WriteByte(typeServiceData16)
	w.WriteUint16(s.UUID)
	w.WriteSlice(s.Data)
	return nil
}

// ManufacturerData carries vendor-specific data tagged with the
// vendor's assigned company identifier.
type ManufacturerData struct {
	CompanyID uint16
	Data      []byte
}

func (m ManufacturerData) EncodeTo(w *ByteWriter) error {
	n := 2 + len(m.Data)
	if n > 254 {
		return ErrDataTooLong
	}
	if w.SpaceLeft() < 2+n {
		return ErrNoSpace
	}
	w.WriteByte(byte(n + 1))
	w.WriteByte(typeManufacturerData)
	w.WriteUint16(m.CompanyID)
	w.WriteSlice(m.Data)
	return nil
}

// TxPowerLevel advertises the radiated transmit power in dBm, letting
// receivers estimate path loss.
type TxPowerLevel int8

func (p TxPowerLevel) EncodeTo(w *ByteWriter) error {
	return encodeField(w, typeTxPower, []byte{byte(p)})
}

// A RawAdStructure carries an arbitrary AD type and data, the escape
// hatch for structure kinds this package does not model.
type RawAdStructure struct {
	Type byte
	Data []byte
}

func (r RawAdStructure) EncodeTo(w *ByteWriter) error {
	return encodeField(w, r.Type, r.Data)
}
