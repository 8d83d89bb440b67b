package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/XC-/blelink"
)

var headerCommand = &cli.Command{
	Name:      "header",
	Usage:     "decode two raw header octets",
	UsageText: "bleadv header <4 hex digits, on-air octet order>",
	Description: `Decodes a 16-bit advertising channel PDU header captured off the air.
The two octets are given in on-air order, least significant first, so
a header printed by "bleadv build" decodes back unchanged. Parsing
never rejects a header: reserved type codes and out-of-range lengths
are reported as-is.`,
	Action: headerCmd,
}

func headerCmd(c *cli.Context) error {
	arg := strings.TrimPrefix(c.Args().First(), "0x")
	if arg == "" {
		return cli.Exit("usage: bleadv header <4 hex digits>", 1)
	}
	raw, err := hex.DecodeString(arg)
	if err != nil || len(raw) != blelink.HeaderSize {
		return cli.Exit(fmt.Sprintf("%q is not a 2-octet hex header", c.Args().First()), 1)
	}

	h := blelink.ParseHeader(raw)
	known := ""
	if !h.Type().Known() {
		known = "  (reserved code)"
	}
	fmt.Printf("bits:    %04x\n", h.Bits())
	fmt.Printf("type:    %s%s\n", h.Type(), known)
	fmt.Printf("tx_add:  %t\n", h.TxAdd())
	fmt.Printf("rx_add:  %t\n", h.RxAdd())
	fmt.Printf("length:  %d\n", h.PayloadLength())

	if l := h.PayloadLength(); l < blelink.MinPayloadSize || l > blelink.MaxPayloadSize {
		log.WithField("length", l).Warn("payload length outside 6..37, not transmittable")
	}
	return nil
}

var channelsCommand = &cli.Command{
	Name:      "channels",
	Usage:     "list the advertising channels",
	UsageText: "bleadv channels",
	Description: `Lists the three advertising channels with their center frequency and
data whitening IV, plus the fixed link layer constants every
advertising packet uses.`,
	Action: channelsCmd,
}

func channelsCmd(c *cli.Context) error {
	for _, ch := range blelink.AdvertisingChannels() {
		fmt.Printf("%s  whitening IV %#02x\n", ch, ch.WhiteningIV())
	}
	fmt.Printf("access address %#08x, crc preset %#06x\n",
		blelink.AccessAddress, blelink.CRCPreset)
	return nil
}
