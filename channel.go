package blelink

import (
	"errors"
	"fmt"
)

// ErrInvalidChannel is the error returned for channel indices outside
// 37 through 39.
var ErrInvalidChannel = errors.New("advertising channel index outside 37..39")

// An AdvertisingChannel is one of the three channels reserved for
// advertising, at 2402, 2426 and 2480 MHz.
type AdvertisingChannel uint8

// The advertising channels, in the order an advertising event
// transmits on them.
const (
	Channel37 AdvertisingChannel = 37
	Channel38 AdvertisingChannel = 38
	Channel39 AdvertisingChannel = 39
)

// NewAdvertisingChannel validates a dynamically chosen channel index.
func NewAdvertisingChannel(index uint8) (AdvertisingChannel, error) {
	if index < 37 || index > 39 {
		return 0, ErrInvalidChannel
	}
	return AdvertisingChannel(index), nil
}

// AdvertisingChannels returns all three channels in transmit order.
func AdvertisingChannels() [3]AdvertisingChannel {
	return [3]AdvertisingChannel{Channel37, Channel38, Channel39}
}

// Index returns the channel index, 37 through 39.
func (c AdvertisingChannel) Index() uint8 { return uint8(c) }

// Frequency returns the channel's center frequency in MHz.
func (c AdvertisingChannel) Frequency() uint16 {
	switch c {
	case Channel38:
		return 2426
	case Channel39:
		return 2480
	default:
		return 2402
	}
}

// WhiteningIV returns the initial value of the data whitening LFSR for
// packets on this channel: the channel index with bit 6 set.
func (c AdvertisingChannel) WhiteningIV() byte {
	return 0x40 | byte(c)
}

// Next returns the channel following c in an advertising event,
// cycling 37, 38, 39 and back to 37.
func (c AdvertisingChannel) Next() AdvertisingChannel {
	if c == Channel39 {
		return Channel37
	}
	return c + 1
}

func (c AdvertisingChannel) String() string {
	return fmt.Sprintf("channel %d (%d MHz)", uint8(c), c.Frequency())
}
