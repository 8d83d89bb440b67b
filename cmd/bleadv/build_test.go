package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/XC-/blelink"
)

func TestLoadProfile(t *testing.T) {
	yaml := `kind: discoverable
address: "11:22:33:44:55:66"
random: true
name: gopher
uuids: ["180f", "0x180a"]
company: 0x004C
data: "0215"
tx_power: -8
`
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Kind != "discoverable" {
		t.Errorf("Kind: got %q want %q", p.Kind, "discoverable")
	}
	if p.Address != "11:22:33:44:55:66" {
		t.Errorf("Address: got %q", p.Address)
	}
	if !p.Random {
		t.Errorf("Random: got false want true")
	}
	if p.Name != "gopher" {
		t.Errorf("Name: got %q want %q", p.Name, "gopher")
	}
	if len(p.UUIDs) != 2 || p.UUIDs[0] != "180f" || p.UUIDs[1] != "0x180a" {
		t.Errorf("UUIDs: got %q", p.UUIDs)
	}
	if p.Company != 0x004C {
		t.Errorf("Company: got %#x want 0x004c", p.Company)
	}
	if p.Data != "0215" {
		t.Errorf("Data: got %q want %q", p.Data, "0215")
	}
	if p.TxPower == nil || *p.TxPower != -8 {
		t.Errorf("TxPower: got %v want -8", p.TxPower)
	}
}

func TestLoadProfileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("address: \"11:22:33:44:55:66\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile: %v", err)
	}
	if p.Kind != "beacon" {
		t.Errorf("default Kind: got %q want %q", p.Kind, "beacon")
	}
	if p.TxPower != nil {
		t.Errorf("default TxPower: got %v want nil", p.TxPower)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Errorf("LoadProfile of missing file: expected error")
	}
}

func TestBuildPDU(t *testing.T) {
	tx := -8
	floor := -128
	over := 300
	cases := []struct {
		desc    string
		profile Profile
		typ     blelink.PDUType
		payload string
		wantErr bool
	}{
		{
			desc:    "beacon without data",
			profile: Profile{Kind: "beacon", Address: "11:22:33:44:55:66"},
			typ:     blelink.AdvNonconnInd,
			payload: "665544332211" + "020104",
		},
		{
			desc:    "discoverable",
			profile: Profile{Kind: "discoverable", Address: "11:22:33:44:55:66"},
			typ:     blelink.AdvInd,
			payload: "665544332211" + "020106",
		},
		{
			desc: "directed",
			profile: Profile{
				Kind: "directed", Address: "11:22:33:44:55:66",
				Peer: "CA:FE:12:34:56:78", PeerRandom: true,
			},
			typ:     blelink.AdvDirectInd,
			payload: "665544332211" + "78563412feca",
		},
		{
			desc: "scannable with every structure kind",
			profile: Profile{
				Kind:    "scannable",
				Address: "11:22:33:44:55:66",
				Name:    "ok",
				UUIDs:   []string{"180f"},
				Company: 0x004C,
				Data:    "0215",
				TxPower: &tx,
			},
			typ:     blelink.AdvScanInd,
			payload: "665544332211" + "03096f6b" + "03030f18" + "05ff4c000215" + "030af8",
		},
		{
			desc:    "no address",
			profile: Profile{Kind: "beacon"},
			wantErr: true,
		},
		{
			desc:    "bad address",
			profile: Profile{Kind: "beacon", Address: "not an address"},
			wantErr: true,
		},
		{
			desc:    "unknown kind",
			profile: Profile{Kind: "mesh", Address: "11:22:33:44:55:66"},
			wantErr: true,
		},
		{
			desc:    "directed without peer",
			profile: Profile{Kind: "directed", Address: "11:22:33:44:55:66"},
			wantErr: true,
		},
		{
			desc:    "service UUID not hex",
			profile: Profile{Kind: "beacon", Address: "11:22:33:44:55:66", UUIDs: []string{"xyz"}},
			wantErr: true,
		},
		{
			desc:    "manufacturer data not hex",
			profile: Profile{Kind: "beacon", Address: "11:22:33:44:55:66", Data: "zz"},
			wantErr: true,
		},
		{
			desc:    "company ID too wide",
			profile: Profile{Kind: "beacon", Address: "11:22:33:44:55:66", Company: 0x10000, Data: "0215"},
			wantErr: true,
		},
		{
			desc:    "tx power at the low boundary",
			profile: Profile{Kind: "beacon", Address: "11:22:33:44:55:66", TxPower: &floor},
			typ:     blelink.AdvNonconnInd,
			payload: "665544332211" + "020104" + "030a80",
		},
		{
			desc:    "tx power out of range",
			profile: Profile{Kind: "beacon", Address: "11:22:33:44:55:66", TxPower: &over},
			wantErr: true,
		},
		{
			desc:    "advertising data too long",
			profile: Profile{Kind: "beacon", Address: "11:22:33:44:55:66", Name: strings.Repeat("a", 30)},
			wantErr: true,
		},
	}
	for _, tt := range cases {
		pdu, err := buildPDU(&tt.profile)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got payload %x", tt.desc, pdu.Payload())
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.desc, err)
			continue
		}
		if got := pdu.Header().Type(); got != tt.typ {
			t.Errorf("%s type: got %s want %s", tt.desc, got, tt.typ)
		}
		if got := fmt.Sprintf("%x", pdu.Payload()); got != tt.payload {
			t.Errorf("%s payload: got %q want %q", tt.desc, got, tt.payload)
		}
	}
}
