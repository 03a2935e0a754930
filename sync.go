package pgwire

import (
	"encoding/json"
)

// Sync closes the current extended-query error recovery scope.
type Sync struct{}

// Frontend identifies this message as sendable by the PostgreSQL frontend.
func (*Sync) Frontend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *Sync) Decode(src []byte) error {
	if len(src) != 0 {
		return &DecodeError{MessageType: "Sync", Reason: ReasonInvalidLength, Value: len(src)}
	}

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *Sync) Encode(dst []byte) []byte {
	return append(dst, 'S', 0, 0, 0, 4)
}

// MarshalJSON implements encoding/json.Marshaler.
func (src Sync) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
	}{
		Type: "Sync",
	})
}
