package k8055

import "github.com/pkg/errors"

var (
	// ErrDeviceNotFound is returned by FindCard when no card matching the
	// requested address is connected.
	ErrDeviceNotFound = errors.New("k8055: no matching card found")

	// ErrNotOpen is returned by every hardware operation invoked before
	// Open succeeded.
	ErrNotOpen = errors.New("k8055: card not open")
)
