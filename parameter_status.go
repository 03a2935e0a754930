package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// ParameterStatus reports the current value of a run-time parameter, e.g.
// server_version or client_encoding.
type ParameterStatus struct {
	Name  string
	Value string
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*ParameterStatus) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *ParameterStatus) Decode(src []byte) error {
	buf := cursor{src: src}

	name, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "ParameterStatus", Reason: ReasonMissingTerminator}
	}

	value, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "ParameterStatus", Reason: ReasonMissingTerminator}
	}

	*dst = ParameterStatus{Name: name, Value: value}
	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *ParameterStatus) Encode(dst []byte) []byte {
	dst = append(dst, 'S')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = append(dst, src.Name...)
	dst = append(dst, 0)
	dst = append(dst, src.Value...)
	dst = append(dst, 0)

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src ParameterStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string
		Name  string
		Value string
	}{
		Type:  "ParameterStatus",
		Name:  src.Name,
		Value: src.Value,
	})
}
