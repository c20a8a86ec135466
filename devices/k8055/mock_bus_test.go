package k8055

import (
	"time"

	"github.com/pkg/errors"

	"github.com/velledaq/k8055/usb"
)

type mockHandle struct {
	claims    int
	frames    [][]byte
	writeErrs map[int]error
	attempts  int
	status    []byte
	readErr   error
	closed    bool
}

func newMockHandle() *mockHandle {
	return &mockHandle{
		status:    make([]byte, 8),
		writeErrs: map[int]error{},
	}
}

func (mh *mockHandle) Claim() error {
	mh.claims++
	return nil
}

func (mh *mockHandle) WriteInterrupt(endpoint byte, data []byte, timeout time.Duration) error {
	attempt := mh.attempts
	mh.attempts++
	if err := mh.writeErrs[attempt]; err != nil {
		return err
	}
	if endpoint != 0x01 {
		return errors.Errorf("unexpected out endpoint %#x", endpoint)
	}
	mh.frames = append(mh.frames, append([]byte{}, data...))
	return nil
}

func (mh *mockHandle) ReadInterrupt(endpoint byte, buf []byte, timeout time.Duration) (int, error) {
	if mh.readErr != nil {
		return 0, mh.readErr
	}
	if endpoint != 0x81 {
		return 0, errors.Errorf("unexpected in endpoint %#x", endpoint)
	}
	return copy(buf, mh.status), nil
}

func (mh *mockHandle) Close() error {
	mh.closed = true
	return nil
}

func (mh *mockHandle) lastFrame() []byte {
	if len(mh.frames) == 0 {
		return nil
	}
	return mh.frames[len(mh.frames)-1]
}

type mockBus struct {
	descs   []usb.DeviceDesc
	handle  *mockHandle
	openErr error
	opens   int
}

func (mb *mockBus) Enumerate() ([]usb.DeviceDesc, error) {
	return mb.descs, nil
}

func (mb *mockBus) Open(desc usb.DeviceDesc) (usb.Handle, error) {
	mb.opens++
	if mb.openErr != nil {
		return nil, mb.openErr
	}
	if mb.handle == nil {
		mb.handle = newMockHandle()
	}
	return mb.handle, nil
}

func testDesc(addr CardAddress) usb.DeviceDesc {
	return usb.DeviceDesc{Vendor: VendorID, Product: addr.ProductID(), Bus: 1, Address: 4}
}
