package usb

import (
	"fmt"
	"time"

	"github.com/google/gousb"
)

// DefaultTimeout bounds every interrupt transfer.
const DefaultTimeout = time.Second

// DeviceDesc identifies one device on the bus without opening it.
type DeviceDesc struct {
	Vendor  gousb.ID
	Product gousb.ID
	Bus     int
	Address int
}

func (dd DeviceDesc) String() string {
	return fmt.Sprintf("%s:%s bus %d address %d", dd.Vendor, dd.Product, dd.Bus, dd.Address)
}

type Bus interface {
	Enumerate() ([]DeviceDesc, error)
	Open(desc DeviceDesc) (Handle, error)
}

// Handle is an open, exclusively owned device. Claim detaches any active
// kernel driver and claims the control interface; it must be callable
// before every transfer, since not every transport keeps the claim alive
// between calls.
type Handle interface {
	Claim() error
	WriteInterrupt(endpoint byte, data []byte, timeout time.Duration) error
	ReadInterrupt(endpoint byte, buf []byte, timeout time.Duration) (int, error)
	Close() error
}

// TransportError wraps a claim, transfer or timeout failure reported by
// the underlying bus.
type TransportError struct {
	Op  string
	Err error
}

func (te *TransportError) Error() string {
	return fmt.Sprintf("usb %s: %v", te.Op, te.Err)
}

func (te *TransportError) Unwrap() error {
	return te.Err
}
