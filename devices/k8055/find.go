package k8055

import (
	log "github.com/sirupsen/logrus"

	"github.com/velledaq/k8055/usb"
)

// FindCard locates one card on the bus and returns an unopened session for
// it. With CardAny the four jumper addresses are tried lowest first and
// the first match wins. Discovery never opens or claims the device.
func FindCard(bus usb.Bus, addr CardAddress) (*Card, error) {
	descs, err := bus.Enumerate()
	if err != nil {
		return nil, &usb.TransportError{Op: "enumerate", Err: err}
	}
	candidates := CardAddresses
	if addr != CardAny {
		candidates = []CardAddress{addr}
	}
	for _, candidate := range candidates {
		for _, desc := range descs {
			if desc.Vendor == VendorID && desc.Product == candidate.ProductID() {
				log.WithFields(log.Fields{
					"address": candidate,
					"device":  desc.String(),
				}).Debug("Card found")
				return NewCard(bus, desc), nil
			}
		}
	}
	return nil, ErrDeviceNotFound
}
