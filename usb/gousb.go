package usb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/gousb"
)

// HostBus is the gousb-backed Bus talking to real hardware.
type HostBus struct {
	ctx *gousb.Context
}

func NewHostBus() *HostBus {
	return &HostBus{ctx: gousb.NewContext()}
}

func (hb *HostBus) Enumerate() ([]DeviceDesc, error) {
	var found []DeviceDesc
	// The visitor always declines, so enumeration never opens anything.
	devs, err := hb.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		found = append(found, DeviceDesc{
			Vendor:  desc.Vendor,
			Product: desc.Product,
			Bus:     desc.Bus,
			Address: desc.Address,
		})
		return false
	})
	for _, dev := range devs {
		_ = dev.Close()
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (hb *HostBus) Open(target DeviceDesc) (Handle, error) {
	devs, err := hb.ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == target.Vendor && desc.Product == target.Product &&
			desc.Bus == target.Bus && desc.Address == target.Address
	})
	if err != nil {
		for _, dev := range devs {
			_ = dev.Close()
		}
		return nil, err
	}
	if len(devs) == 0 {
		return nil, fmt.Errorf("device %s no longer present", target)
	}
	for _, dev := range devs[1:] {
		_ = dev.Close()
	}
	return &hostHandle{dev: devs[0]}, nil
}

func (hb *HostBus) Close() error {
	return hb.ctx.Close()
}

type hostHandle struct {
	dev   *gousb.Device
	iface *gousb.Interface
	done  func()
}

func (hh *hostHandle) Claim() error {
	if hh.iface != nil {
		return nil
	}
	if err := hh.dev.SetAutoDetach(true); err != nil {
		return err
	}
	iface, done, err := hh.dev.DefaultInterface()
	if err != nil {
		return err
	}
	hh.iface, hh.done = iface, done
	return nil
}

func (hh *hostHandle) WriteInterrupt(endpoint byte, data []byte, timeout time.Duration) error {
	if hh.iface == nil {
		return fmt.Errorf("interface not claimed")
	}
	ep, err := hh.iface.OutEndpoint(int(endpoint & 0x0f))
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	written, err := ep.WriteContext(ctx, data)
	if err != nil {
		return err
	}
	if written != len(data) {
		return fmt.Errorf("wrote %d of %d bytes", written, len(data))
	}
	return nil
}

func (hh *hostHandle) ReadInterrupt(endpoint byte, buf []byte, timeout time.Duration) (int, error) {
	if hh.iface == nil {
		return 0, fmt.Errorf("interface not claimed")
	}
	ep, err := hh.iface.InEndpoint(int(endpoint & 0x0f))
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return ep.ReadContext(ctx, buf)
}

func (hh *hostHandle) Close() error {
	if hh.done != nil {
		hh.done()
		hh.done = nil
		hh.iface = nil
	}
	return hh.dev.Close()
}
