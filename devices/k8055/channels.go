package k8055

import "fmt"

// DigitalChannel is a combination of the eight digital IO lines of the
// card. Every byte value is a valid combination, so conversions from raw
// bytes are total.
type DigitalChannel uint8

const (
	D1 DigitalChannel = 1 << iota
	D2
	D3
	D4
	D5
	D6
	D7
	D8
)

const (
	// DZero has all lines off.
	DZero DigitalChannel = 0x00
	// DAll has all lines on.
	DAll DigitalChannel = 0xff
)

func DigitalChannelFromByte(b byte) DigitalChannel {
	return DigitalChannel(b)
}

func (dc DigitalChannel) And(other DigitalChannel) DigitalChannel {
	return dc & other
}

func (dc DigitalChannel) Or(other DigitalChannel) DigitalChannel {
	return dc | other
}

func (dc DigitalChannel) Xor(other DigitalChannel) DigitalChannel {
	return dc ^ other
}

// Has reports whether every line in other is also set in dc.
func (dc DigitalChannel) Has(other DigitalChannel) bool {
	return dc&other == other
}

func (dc DigitalChannel) Bits() byte {
	return byte(dc)
}

func (dc DigitalChannel) String() string {
	return fmt.Sprintf("%08b", byte(dc))
}

// AnalogChannel is a value on one of the two 8-bit analog channels. The
// channel tag keeps the two channels apart; there is no analog masking in
// the card's protocol.
type AnalogChannel struct {
	num   uint8
	value uint8
}

func A1(value uint8) AnalogChannel {
	return AnalogChannel{num: 1, value: value}
}

func A2(value uint8) AnalogChannel {
	return AnalogChannel{num: 2, value: value}
}

func (ac AnalogChannel) Channel() uint8 {
	return ac.num
}

func (ac AnalogChannel) Value() uint8 {
	return ac.value
}

func (ac AnalogChannel) String() string {
	return fmt.Sprintf("A%d(%d)", ac.num, ac.value)
}
