package blelink

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestAdStructureEncoding(t *testing.T) {
	cases := []struct {
		ad   AdStructure
		want string
	}{
		{BroadcastFlags(), "020104"},
		{DiscoverableFlags(), "020106"},
		{FlagLimitedDiscoverable | FlagLEOnly, "020105"},
		{CompleteLocalName("ABCDE"), "060941424344" + "45"},
		{ShortenedLocalName("ABCD"), "050841424344"},
		{ServiceUUIDs16{0xFAFE}, "0303fefa"},
		{ServiceUUIDs16{0xFAFE, 0xFAF9}, "0503fefaf9fa"},
		{ServiceData16{UUID: 0x180F, Data: []byte{0x64}}, "04160f1864"},
		{ManufacturerData{CompanyID: 0x004C, Data: []byte{0x02, 0x15}}, "05ff4c000215"},
		{TxPowerLevel(4), "030a04"},
		{TxPowerLevel(-8), "030af8"},
		{RawAdStructure{Type: 0x19, Data: []byte{0x00, 0x80}}, "03190080"},
	}
	for _, tt := range cases {
		var buf [MaxPayloadSize]byte
		w := NewByteWriter(buf[:])
		if err := tt.ad.EncodeTo(w); err != nil {
			t.Errorf("EncodeTo(%v): %v", tt.ad, err)
			continue
		}
		got := fmt.Sprintf("%x", buf[:len(buf)-w.SpaceLeft()])
		if got != tt.want {
			t.Errorf("EncodeTo(%v): got %q want %q", tt.ad, got, tt.want)
		}
	}
}

func TestAdStructureNoSpace(t *testing.T) {
	cases := []struct {
		ad    AdStructure
		space int
		fits  bool
	}{
		{CompleteLocalName("ABCDE"), 7, true},
		{CompleteLocalName("ABCDE"), 6, false},
		{BroadcastFlags(), 3, true},
		{BroadcastFlags(), 2, false},
		{ServiceUUIDs16{0xFAFE, 0xFAF9}, 5, false},
		{ServiceData16{UUID: 0x180F, Data: []byte{0x64}}, 4, false},
		{ManufacturerData{CompanyID: 0x004C, Data: []byte{0x02, 0x15}}, 5, false},
		{RawAdStructure{Type: 0x19, Data: []byte{0x00, 0x80}}, 3, false},
	}
	for _, tt := range cases {
		buf := make([]byte, tt.space)
		w := NewByteWriter(buf)
		err := tt.ad.EncodeTo(w)
		if tt.fits {
			if err != nil {
				t.Errorf("EncodeTo(%v) in %d bytes: %v", tt.ad, tt.space, err)
			}
			continue
		}
		if !errors.Is(err, ErrNoSpace) {
			t.Errorf("EncodeTo(%v) in %d bytes: got err %v want %v", tt.ad, tt.space, err, ErrNoSpace)
			continue
		}
		// a refused structure writes nothing at all
		if w.SpaceLeft() != tt.space {
			t.Errorf("EncodeTo(%v) in %d bytes: consumed %d bytes after refusing", tt.ad, tt.space, tt.space-w.SpaceLeft())
		}
		if !bytes.Equal(buf, make([]byte, tt.space)) {
			t.Errorf("EncodeTo(%v) in %d bytes: buffer dirtied after refusing: %x", tt.ad, tt.space, buf)
		}
	}
}

func TestAdStructureDataTooLong(t *testing.T) {
	buf := make([]byte, 300)
	cases := []AdStructure{
		RawAdStructure{Type: 0xFF, Data: make([]byte, 255)},
		ManufacturerData{CompanyID: 0xFFFF, Data: make([]byte, 253)},
		ServiceData16{UUID: 0x180F, Data: make([]byte, 253)},
		ServiceUUIDs16(make([]uint16, 128)),
		CompleteLocalName(string(make([]byte, 255))),
	}
	for _, ad := range cases {
		w := NewByteWriter(buf)
		if err := ad.EncodeTo(w); !errors.Is(err, ErrDataTooLong) {
			t.Errorf("EncodeTo(%T): got err %v want %v", ad, err, ErrDataTooLong)
		}
	}

	// 254 data bytes is the largest frameable structure
	w := NewByteWriter(buf)
	if err := (RawAdStructure{Type: 0xFF, Data: make([]byte, 254)}).EncodeTo(w); err != nil {
		t.Errorf("EncodeTo 254 byte structure: %v", err)
	}
	if buf[0] != 0xFF {
		t.Errorf("254 byte structure length octet: got %#x want 0xff", buf[0])
	}
}
