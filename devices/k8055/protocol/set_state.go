package protocol

// SetState replaces the whole output state of the card in one frame: the
// digital mask and both analog channels.
type SetState struct {
	Digital uint8
	Analog1 uint8
	Analog2 uint8
}

func NewSetState(digital, analog1, analog2 uint8) *SetState {
	return &SetState{Digital: digital, Analog1: analog1, Analog2: analog2}
}

func (ss *SetState) packet() {}

func (ss *SetState) MarshalBinary() (data []byte, err error) {
	return []byte{setStateOpcode, ss.Digital, ss.Analog1, ss.Analog2, 0, 0, 0, 0}, nil
}
