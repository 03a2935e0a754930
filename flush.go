package pgwire

import (
	"encoding/json"
)

// Flush asks the backend to deliver any pending output.
type Flush struct{}

// Frontend identifies this message as sendable by the PostgreSQL frontend.
func (*Flush) Frontend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *Flush) Decode(src []byte) error {
	if len(src) != 0 {
		return &DecodeError{MessageType: "Flush", Reason: ReasonInvalidLength, Value: len(src)}
	}

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *Flush) Encode(dst []byte) []byte {
	return append(dst, 'H', 0, 0, 0, 4)
}

// MarshalJSON implements encoding/json.Marshaler.
func (src Flush) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
	}{
		Type: "Flush",
	})
}
