package protocol

// Status is the report the card streams on its interrupt IN endpoint.
type Status struct {
	DigitalIn uint8
	Flags     uint8
	Analog1In uint8
	Analog2In uint8
}

func NewStatus() *Status {
	return &Status{}
}

func (st *Status) packet() {}

// UnmarshalBinary reads the four leading bytes of a status frame; the
// reserved tail of the 8-byte frame is ignored, so any buffer of at least
// four bytes decodes.
func (st *Status) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return ErrShortFrame
	}
	st.DigitalIn = data[0]
	st.Flags = data[1]
	st.Analog1In = data[2]
	st.Analog2In = data[3]
	return nil
}
