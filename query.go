package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// Query runs a SQL string through the simple query protocol.
type Query struct {
	String string
}

// Frontend identifies this message as sendable by the PostgreSQL frontend.
func (*Query) Frontend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *Query) Decode(src []byte) error {
	buf := cursor{src: src}

	s, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "Query", Reason: ReasonMissingTerminator}
	}

	dst.String = s

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *Query) Encode(dst []byte) []byte {
	dst = append(dst, 'Q')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = append(dst, src.String...)
	dst = append(dst, 0)

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src Query) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string
		String string
	}{
		Type:   "Query",
		String: src.String,
	})
}
