package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// ParameterDescription describes the parameters of a prepared statement. The
// order of ParameterOIDs matches parameter position.
type ParameterDescription struct {
	ParameterOIDs []OID
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*ParameterDescription) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length. The declared parameter count must consume the body exactly:
// a count that lies about the body length in either direction is rejected.
func (dst *ParameterDescription) Decode(src []byte) error {
	buf := cursor{src: src}

	count, ok := buf.int16()
	if !ok {
		return &DecodeError{MessageType: "ParameterDescription", Reason: ReasonInvalidLength, Value: len(src)}
	}
	if count < 0 {
		return &DecodeError{MessageType: "ParameterDescription", Reason: ReasonInvalidCount, Value: int(count)}
	}

	parameterOIDs := make([]OID, count)
	for i := range parameterOIDs {
		n, ok := buf.uint32()
		if !ok {
			return &DecodeError{MessageType: "ParameterDescription", Reason: ReasonCountLengthMismatch, Value: int(count)}
		}
		parameterOIDs[i] = OID(n)
	}
	if buf.remaining() != 0 {
		return &DecodeError{MessageType: "ParameterDescription", Reason: ReasonCountLengthMismatch, Value: int(count)}
	}

	*dst = ParameterDescription{ParameterOIDs: parameterOIDs}
	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *ParameterDescription) Encode(dst []byte) []byte {
	dst = append(dst, 't')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = pgio.AppendUint16(dst, uint16(len(src.ParameterOIDs)))
	for _, oid := range src.ParameterOIDs {
		dst = pgio.AppendUint32(dst, uint32(oid))
	}

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src ParameterDescription) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type          string
		ParameterOIDs []OID
	}{
		Type:          "ParameterDescription",
		ParameterOIDs: src.ParameterOIDs,
	})
}
