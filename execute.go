package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// Execute runs a bound portal. MaxRows of 0 means no limit.
type Execute struct {
	Portal  string
	MaxRows uint32
}

// Frontend identifies this message as sendable by the PostgreSQL frontend.
func (*Execute) Frontend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *Execute) Decode(src []byte) error {
	buf := cursor{src: src}

	portal, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "Execute", Reason: ReasonMissingTerminator}
	}

	maxRows, ok := buf.uint32()
	if !ok {
		return &DecodeError{MessageType: "Execute", Reason: ReasonInvalidLength, Value: len(src)}
	}

	*dst = Execute{Portal: portal, MaxRows: maxRows}
	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *Execute) Encode(dst []byte) []byte {
	dst = append(dst, 'E')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = append(dst, src.Portal...)
	dst = append(dst, 0)
	dst = pgio.AppendUint32(dst, src.MaxRows)

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src Execute) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string
		Portal  string
		MaxRows uint32
	}{
		Type:    "Execute",
		Portal:  src.Portal,
		MaxRows: src.MaxRows,
	})
}
