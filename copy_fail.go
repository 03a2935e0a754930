package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// CopyFail aborts a COPY FROM STDIN transfer with an error message.
type CopyFail struct {
	Message string
}

// Frontend identifies this message as sendable by the PostgreSQL frontend.
func (*CopyFail) Frontend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *CopyFail) Decode(src []byte) error {
	buf := cursor{src: src}

	message, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "CopyFail", Reason: ReasonMissingTerminator}
	}

	dst.Message = message

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *CopyFail) Encode(dst []byte) []byte {
	dst = append(dst, 'f')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = append(dst, src.Message...)
	dst = append(dst, 0)

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src CopyFail) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string
		Message string
	}{
		Type:    "CopyFail",
		Message: src.Message,
	})
}
