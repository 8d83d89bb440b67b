package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/XC-/blelink"
)

// A Profile describes one advertisement to build. YAML profiles carry
// the mapstructure names; the build flags map onto the same fields.
type Profile struct {
	Kind       string   `mapstructure:"kind"`
	Address    string   `mapstructure:"address"`
	Random     bool     `mapstructure:"random"`
	Peer       string   `mapstructure:"peer"`
	PeerRandom bool     `mapstructure:"peer_random"`
	Name       string   `mapstructure:"name"`
	ShortName  string   `mapstructure:"short_name"`
	UUIDs      []string `mapstructure:"uuids"`    // 16-bit service UUIDs, hex
	Company    uint     `mapstructure:"company"`  // manufacturer data company ID
	Data       string   `mapstructure:"data"`     // manufacturer data payload, hex
	TxPower    *int     `mapstructure:"tx_power"` // pointer: 0 dBm is a valid level
}

func DefaultProfile() *Profile {
	return &Profile{
		Kind:    "beacon",
		Company: 0xFFFF, // the SIG-reserved test company ID
	}
}

// LoadProfile reads a YAML profile. BLEADV_* environment variables
// override file values.
func LoadProfile(path string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("BLEADV")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	p := DefaultProfile()
	if err := v.Unmarshal(p); err != nil {
		return nil, err
	}
	return p, nil
}

// adStructures assembles the advertising data the profile asks for, in
// a fixed order: names, service UUIDs, manufacturer data, TX power.
func (p *Profile) adStructures() ([]blelink.AdStructure, error) {
	var ads []blelink.AdStructure
	if p.Name != "" {
		ads = append(ads, blelink.CompleteLocalName(p.Name))
	}
	if p.ShortName != "" {
		ads = append(ads, blelink.ShortenedLocalName(p.ShortName))
	}
	if len(p.UUIDs) > 0 {
		uuids := make(blelink.ServiceUUIDs16, 0, len(p.UUIDs))
		for _, s := range p.UUIDs {
			id, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 16)
			if err != nil {
				return nil, fmt.Errorf("service UUID %q: %v", s, err)
			}
			uuids = append(uuids, uint16(id))
		}
		ads = append(ads, uuids)
	}
	if p.Data != "" {
		if p.Company > 0xFFFF {
			return nil, fmt.Errorf("company ID %#x does not fit in 16 bits", p.Company)
		}
		b, err := hex.DecodeString(p.Data)
		if err != nil {
			return nil, fmt.Errorf("manufacturer data %q: %v", p.Data, err)
		}
		ads = append(ads, blelink.ManufacturerData{CompanyID: uint16(p.Company), Data: b})
	}
	if p.TxPower != nil {
		if *p.TxPower < -128 || *p.TxPower > 127 {
			return nil, fmt.Errorf("tx power %d dBm does not fit in one signed octet", *p.TxPower)
		}
		ads = append(ads, blelink.TxPowerLevel(*p.TxPower))
	}
	return ads, nil
}
