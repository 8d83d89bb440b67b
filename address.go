package blelink

import (
	"errors"
	"fmt"
	"net"
)

// ErrInvalidAddress is the error returned when a device address string
// does not parse as a 48-bit address.
var ErrInvalidAddress = errors.New("invalid device address")

// RandomKind classifies a random device address by the two most
// significant bits of the address value.
type RandomKind uint8

const (
	RandomNone          RandomKind = iota // public address, no subtype
	RandomNonResolvable                   // non-resolvable private address
	RandomResolvable                      // resolvable private address
	RandomReserved                        // reserved bit pattern
	RandomStatic                          // static device address
)

var randomKindNames = map[RandomKind]string{
	RandomNone:          "public",
	RandomNonResolvable: "random non-resolvable",
	RandomResolvable:    "random resolvable",
	RandomReserved:      "random reserved",
	RandomStatic:        "random static",
}

func (k RandomKind) String() string {
	if s, ok := randomKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("unknown(%d)", uint8(k))
}

// A DeviceAddress identifies a BLE device: 48 address bits plus a flag
// distinguishing public (IEEE-assigned) from random addresses. The flag
// travels outside the address bits, as the TxAdd or RxAdd bit of PDUs
// carrying the address. DeviceAddress is an immutable value.
type DeviceAddress struct {
	raw    [6]byte
	random bool
}

// NewDeviceAddress returns the address over raw, given in on-air order,
// least significant octet first.
func NewDeviceAddress(raw [6]byte, random bool) DeviceAddress {
	return DeviceAddress{raw: raw, random: random}
}

// ParseDeviceAddress parses the conventional text form, most
// significant octet first with colon or dash separators, and reverses
// it into on-air order.
func ParseDeviceAddress(s string, random bool) (DeviceAddress, error) {
	hw, err := net.ParseMAC(s)
	if err != nil || len(hw) != 6 {
		return DeviceAddress{}, ErrInvalidAddress
	}
	a := DeviceAddress{random: random}
	for i, b := range hw {
		a.raw[5-i] = b
	}
	return a, nil
}

// Raw returns the address bytes in on-air order.
func (a DeviceAddress) Raw() [6]byte { return a.raw }

// IsRandom reports whether the address is random rather than public.
func (a DeviceAddress) IsRandom() bool { return a.random }

// Kind classifies random addresses by the two most significant bits of
// the address: 00 non-resolvable private, 01 resolvable private,
// 10 reserved, 11 static. Public addresses report RandomNone.
func (a DeviceAddress) Kind() RandomKind {
	if !a.random {
		return RandomNone
	}
	switch a.raw[5] >> 6 {
	case 0:
		return RandomNonResolvable
	case 1:
		return RandomResolvable
	case 2:
		return RandomReserved
	default:
		return RandomStatic
	}
}

// String renders the address most significant octet first, the way it
// is usually printed, with the address kind appended.
func (a DeviceAddress) String() string {
	kind := "public"
	if a.random {
		kind = "random"
	}
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X (%s)",
		a.raw[5], a.raw[4], a.raw[3], a.raw[2], a.raw[1], a.raw[0], kind)
}
