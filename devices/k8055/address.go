package k8055

import (
	"fmt"

	"github.com/google/gousb"
)

// VendorID is the Velleman vendor id shared by all card addresses.
const VendorID gousb.ID = 0x10cf

// CardAddress is one of the four jumper-configurable USB product ids of
// the card family, or CardAny to take the first card found.
type CardAddress gousb.ID

const (
	CardAny CardAddress = 0x0000
	Card1   CardAddress = 0x5500
	Card2   CardAddress = 0x5501
	Card3   CardAddress = 0x5502
	Card4   CardAddress = 0x5503
)

// CardAddresses lists the jumper addresses in scan order, lowest first.
var CardAddresses = []CardAddress{Card1, Card2, Card3, Card4}

func (ca CardAddress) ProductID() gousb.ID {
	return gousb.ID(ca)
}

func (ca CardAddress) String() string {
	if ca == CardAny {
		return "any"
	}
	return fmt.Sprintf("%04x", uint16(ca))
}

// ParseCardAddress maps a config or flag value to a CardAddress. Accepted
// forms: "any" (or empty), "card1".."card4".
func ParseCardAddress(s string) (CardAddress, error) {
	switch s {
	case "", "any":
		return CardAny, nil
	case "card1":
		return Card1, nil
	case "card2":
		return Card2, nil
	case "card3":
		return Card3, nil
	case "card4":
		return Card4, nil
	default:
		return CardAny, fmt.Errorf("unknown card address %q", s)
	}
}
