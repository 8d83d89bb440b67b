package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/XC-/blelink"
)

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "assemble one advertising PDU and print its on-air bytes",
	UsageText: "bleadv build [options]",
	Description: `Assembles an advertising channel PDU from the given options, or from
a YAML profile when --profile is set. Flags override profile values.
The finished header and payload are printed as hex, in on-air octet
order, ready to feed to a transmitter.`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "profile",
			Aliases: []string{"f"},
			Usage:   "YAML profile `PATH` to load before applying flags",
		},
		&cli.StringFlag{
			Name:    "kind",
			Aliases: []string{"k"},
			Usage:   "advertisement kind: beacon|discoverable|connectable|nonconnectable|scannable|directed",
		},
		&cli.StringFlag{
			Name:    "addr",
			Aliases: []string{"a"},
			Usage:   "advertiser `ADDRESS`, e.g. CA:FE:12:34:56:78",
		},
		&cli.BoolFlag{
			Name:  "random",
			Usage: "advertiser address is random rather than public",
		},
		&cli.StringFlag{
			Name:  "peer",
			Usage: "initiator `ADDRESS`, required for kind=directed",
		},
		&cli.BoolFlag{
			Name:  "peer-random",
			Usage: "initiator address is random rather than public",
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "complete local name to advertise",
		},
		&cli.StringFlag{
			Name:  "short-name",
			Usage: "shortened local name to advertise",
		},
		&cli.StringSliceFlag{
			Name:  "uuid16",
			Usage: "16-bit service UUID `HEX` (e.g. 180f), repeatable",
		},
		&cli.UintFlag{
			Name:  "company",
			Usage: "company `ID` for manufacturer data",
			Value: 0xFFFF,
		},
		&cli.StringFlag{
			Name:  "mfg",
			Usage: "manufacturer data payload `HEX`",
		},
		&cli.IntFlag{
			Name:  "tx-power",
			Usage: "advertised TX power in `DBM`",
		},
	},
	Action: buildCmd,
}

func buildCmd(c *cli.Context) error {
	p := DefaultProfile()
	if path := c.String("profile"); path != "" {
		loaded, err := LoadProfile(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("profile: %v", err), 1)
		}
		log.WithField("profile", path).Debug("profile loaded")
		p = loaded
	}
	applyFlags(c, p)

	pdu, err := buildPDU(p)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	h := pdu.Header()
	log.WithFields(logrus.Fields{
		"type":   h.Type().String(),
		"tx_add": h.TxAdd(),
		"rx_add": h.RxAdd(),
		"length": h.PayloadLength(),
	}).Debug("PDU assembled")

	fmt.Printf("header:  %02x %02x  (%s)\n", byte(h.Bits()), byte(h.Bits()>>8), h)
	fmt.Printf("payload: %x\n", pdu.Payload())
	fmt.Printf("on-air:  %02x%02x%x\n", byte(h.Bits()), byte(h.Bits()>>8), pdu.Payload())
	return nil
}

// applyFlags copies every flag the user actually set over the profile.
func applyFlags(c *cli.Context, p *Profile) {
	if c.IsSet("kind") {
		p.Kind = c.String("kind")
	}
	if c.IsSet("addr") {
		p.Address = c.String("addr")
	}
	if c.IsSet("random") {
		p.Random = c.Bool("random")
	}
	if c.IsSet("peer") {
		p.Peer = c.String("peer")
	}
	if c.IsSet("peer-random") {
		p.PeerRandom = c.Bool("peer-random")
	}
	if c.IsSet("name") {
		p.Name = c.String("name")
	}
	if c.IsSet("short-name") {
		p.ShortName = c.String("short-name")
	}
	if c.IsSet("uuid16") {
		p.UUIDs = c.StringSlice("uuid16")
	}
	if c.IsSet("company") {
		p.Company = c.Uint("company")
	}
	if c.IsSet("mfg") {
		p.Data = c.String("mfg")
	}
	if c.IsSet("tx-power") {
		v := c.Int("tx-power")
		p.TxPower = &v
	}
}

// buildPDU assembles the PDU a profile describes.
func buildPDU(p *Profile) (blelink.PDU, error) {
	if p.Address == "" {
		return blelink.PDU{}, errors.New("no advertiser address given (--addr or profile address)")
	}
	addr, err := blelink.ParseDeviceAddress(p.Address, p.Random)
	if err != nil {
		return blelink.PDU{}, fmt.Errorf("advertiser address %q: %w", p.Address, err)
	}
	log.WithField("addr", addr.String()).Debug("advertiser")

	if p.Kind == "directed" {
		if p.Peer == "" {
			return blelink.PDU{}, errors.New("kind=directed needs an initiator address (--peer)")
		}
		peer, err := blelink.ParseDeviceAddress(p.Peer, p.PeerRandom)
		if err != nil {
			return blelink.PDU{}, fmt.Errorf("initiator address %q: %w", p.Peer, err)
		}
		return blelink.ConnectableDirected(addr, peer), nil
	}

	data, err := p.adStructures()
	if err != nil {
		return blelink.PDU{}, err
	}
	switch p.Kind {
	case "beacon":
		return blelink.Beacon(addr, data)
	case "discoverable":
		return blelink.Discoverable(addr, data)
	case "connectable":
		return blelink.ConnectableUndirected(addr, data)
	case "nonconnectable":
		return blelink.NonconnectableUndirected(addr, data)
	case "scannable":
		return blelink.ScannableUndirected(addr, data)
	}
	return blelink.PDU{}, fmt.Errorf("unknown advertisement kind %q", p.Kind)
}
