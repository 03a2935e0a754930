package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// BackendKeyData carries the secret the client must present to cancel a
// request on this connection.
type BackendKeyData struct {
	ProcessID uint32
	SecretKey uint32
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*BackendKeyData) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *BackendKeyData) Decode(src []byte) error {
	if len(src) != 8 {
		return &DecodeError{MessageType: "BackendKeyData", Reason: ReasonInvalidLength, Value: len(src)}
	}

	buf := cursor{src: src}
	dst.ProcessID, _ = buf.uint32()
	dst.SecretKey, _ = buf.uint32()

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *BackendKeyData) Encode(dst []byte) []byte {
	dst = append(dst, 'K')
	dst = pgio.AppendUint32(dst, 12)
	dst = pgio.AppendUint32(dst, src.ProcessID)
	dst = pgio.AppendUint32(dst, src.SecretKey)
	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src BackendKeyData) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string
		ProcessID uint32
		SecretKey uint32
	}{
		Type:      "BackendKeyData",
		ProcessID: src.ProcessID,
		SecretKey: src.SecretKey,
	})
}
