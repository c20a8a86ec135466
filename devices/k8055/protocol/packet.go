package protocol

import "github.com/pkg/errors"

// FrameSize is the fixed length of every frame in both directions. There
// are no variable-length frames, length prefixes or checksums; the card
// speaks a HID-like fixed report format.
const FrameSize = 8

// setStateOpcode is the only outbound opcode the card understands.
const setStateOpcode = 0x05

var (
	// ErrUnsupportedCommand is returned by Encode for any packet without
	// an outbound wire format.
	ErrUnsupportedCommand = errors.New("protocol: packet has no outbound wire format")

	// ErrShortFrame is returned by Decode when fewer than four usable
	// bytes arrived from the card.
	ErrShortFrame = errors.New("protocol: frame shorter than 4 bytes")
)

// Packet is one of the closed set of wire messages: *SetState going out,
// *Status coming in.
type Packet interface {
	packet()
}

func Encode(p Packet) ([]byte, error) {
	switch cmd := p.(type) {
	case *SetState:
		return cmd.MarshalBinary()
	default:
		return nil, ErrUnsupportedCommand
	}
}

func Decode(data []byte) (*Status, error) {
	st := NewStatus()
	if err := st.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return st, nil
}
