package k8055

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/velledaq/k8055/devices/k8055/protocol"
	"github.com/velledaq/k8055/usb"
)

const (
	outEndpoint byte = 0x01
	inEndpoint  byte = 0x81
)

// outputState caches the last output values confirmed on the wire. The
// card powers up with everything at zero.
type outputState struct {
	dig  uint8
	ana1 uint8
	ana2 uint8
}

// Card is a session bound to one physical K8055. A Card owns its handle
// exclusively and holds no internal locks; callers sharing one Card across
// goroutines must serialize access themselves. Distinct cards on distinct
// addresses are independent.
//
// The card exposes no serial number, so every session carries a generated
// id for log correlation.
type Card struct {
	id     string
	bus    usb.Bus
	desc   usb.DeviceDesc
	handle usb.Handle
	state  outputState
}

// NewCard wraps an unopened device reference. Use FindCard to locate one.
func NewCard(bus usb.Bus, desc usb.DeviceDesc) *Card {
	return &Card{id: uuid.New().String(), bus: bus, desc: desc}
}

func (c *Card) String() string {
	return fmt.Sprintf("K8055 %s", c.desc)
}

// Open claims the card. Opening an already open card is a no-op success.
func (c *Card) Open() error {
	if c.handle != nil {
		return nil
	}
	handle, err := c.bus.Open(c.desc)
	if err != nil {
		return &usb.TransportError{Op: "open", Err: err}
	}
	c.handle = handle
	log.WithFields(log.Fields{
		"session": c.id,
		"device":  c.desc.String(),
	}).Info("Card opened")
	return nil
}

// Close releases the claim on the device. The cached output state is
// dropped with the session.
func (c *Card) Close() error {
	if c.handle == nil {
		return nil
	}
	err := c.handle.Close()
	c.handle = nil
	if err != nil {
		return &usb.TransportError{Op: "close", Err: err}
	}
	return nil
}

// Reset turns the digital mask and both analog channels off in a single
// frame.
func (c *Card) Reset() error {
	return c.write(protocol.NewSetState(0, 0, 0))
}

// WriteDigitalOut sets the digital output lines, leaving the analog
// outputs untouched on the wire and in the cache.
func (c *Card) WriteDigitalOut(d DigitalChannel) error {
	return c.write(protocol.NewSetState(d.Bits(), c.state.ana1, c.state.ana2))
}

// WriteDigitalOutMask writes d masked with mask. Lines outside the mask
// are forced off in the frame sent, matching the original hardware
// semantics; this is not a read-modify-write against the current outputs.
func (c *Card) WriteDigitalOutMask(d, mask DigitalChannel) error {
	return c.WriteDigitalOut(d.And(mask))
}

// GetDigitalOut returns the cached digital output mask without touching
// the hardware.
func (c *Card) GetDigitalOut() DigitalChannel {
	return DigitalChannel(c.state.dig)
}

func (c *Card) GetDigitalOutMask(mask DigitalChannel) DigitalChannel {
	return DigitalChannel(c.state.dig).And(mask)
}

// WriteAnalogOut sets one analog output channel, leaving the digital mask
// and the other analog channel untouched.
func (c *Card) WriteAnalogOut(a AnalogChannel) error {
	switch a.Channel() {
	case 1:
		return c.write(protocol.NewSetState(c.state.dig, a.Value(), c.state.ana2))
	case 2:
		return c.write(protocol.NewSetState(c.state.dig, c.state.ana1, a.Value()))
	default:
		return errors.Errorf("analog channel %d does not exist", a.Channel())
	}
}

func (c *Card) GetAnalogOut1() AnalogChannel {
	return A1(c.state.ana1)
}

func (c *Card) GetAnalogOut2() AnalogChannel {
	return A2(c.state.ana2)
}

// ReadDigitalIn fetches a status report and returns the digital input
// lines.
func (c *Card) ReadDigitalIn() (DigitalChannel, error) {
	st, err := c.read()
	if err != nil {
		return DZero, err
	}
	return DigitalChannelFromByte(st.DigitalIn), nil
}

func (c *Card) ReadDigitalInMask(mask DigitalChannel) (DigitalChannel, error) {
	dc, err := c.ReadDigitalIn()
	if err != nil {
		return DZero, err
	}
	return dc.And(mask), nil
}

func (c *Card) ReadAnalogIn1() (AnalogChannel, error) {
	st, err := c.read()
	if err != nil {
		return AnalogChannel{}, err
	}
	return A1(st.Analog1In), nil
}

func (c *Card) ReadAnalogIn2() (AnalogChannel, error) {
	st, err := c.read()
	if err != nil {
		return AnalogChannel{}, err
	}
	return A2(st.Analog2In), nil
}

// ReadStatus fetches one full status report from the card.
func (c *Card) ReadStatus() (*protocol.Status, error) {
	return c.read()
}

func (c *Card) write(cmd *protocol.SetState) error {
	if c.handle == nil {
		return ErrNotOpen
	}
	data, err := protocol.Encode(cmd)
	if err != nil {
		return err
	}
	// Claim before every transfer; not every transport keeps the claim
	// alive between calls.
	if err := c.handle.Claim(); err != nil {
		return &usb.TransportError{Op: "claim", Err: err}
	}
	if err := c.handle.WriteInterrupt(outEndpoint, data, usb.DefaultTimeout); err != nil {
		return &usb.TransportError{Op: "write", Err: err}
	}
	// The cache only ever holds state confirmed on the wire.
	c.state = outputState{dig: cmd.Digital, ana1: cmd.Analog1, ana2: cmd.Analog2}
	log.WithFields(log.Fields{
		"session": c.id,
		"frame":   hex.EncodeToString(data),
	}).Debug("Wrote output state")
	return nil
}

func (c *Card) read() (*protocol.Status, error) {
	if c.handle == nil {
		return nil, ErrNotOpen
	}
	if err := c.handle.Claim(); err != nil {
		return nil, &usb.TransportError{Op: "claim", Err: err}
	}
	buf := make([]byte, protocol.FrameSize)
	n, err := c.handle.ReadInterrupt(inEndpoint, buf, usb.DefaultTimeout)
	if err != nil {
		return nil, &usb.TransportError{Op: "read", Err: err}
	}
	return protocol.Decode(buf[:n])
}
