package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// Parse creates a prepared statement on the server.
type Parse struct {
	Name          string
	Query         string
	ParameterOIDs []OID
}

// Frontend identifies this message as sendable by the PostgreSQL frontend.
func (*Parse) Frontend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *Parse) Decode(src []byte) error {
	*dst = Parse{}

	buf := cursor{src: src}

	name, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "Parse", Reason: ReasonMissingTerminator}
	}
	dst.Name = name

	query, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "Parse", Reason: ReasonMissingTerminator}
	}
	dst.Query = query

	parameterOIDCount, ok := buf.int16()
	if !ok {
		return &DecodeError{MessageType: "Parse", Reason: ReasonInvalidLength, Value: len(src)}
	}
	if parameterOIDCount < 0 {
		return &DecodeError{MessageType: "Parse", Reason: ReasonInvalidCount, Value: int(parameterOIDCount)}
	}

	for i := 0; i < int(parameterOIDCount); i++ {
		n, ok := buf.uint32()
		if !ok {
			return &DecodeError{MessageType: "Parse", Reason: ReasonCountLengthMismatch, Value: int(parameterOIDCount)}
		}
		dst.ParameterOIDs = append(dst.ParameterOIDs, OID(n))
	}

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *Parse) Encode(dst []byte) []byte {
	dst = append(dst, 'P')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = append(dst, src.Name...)
	dst = append(dst, 0)
	dst = append(dst, src.Query...)
	dst = append(dst, 0)

	dst = pgio.AppendUint16(dst, uint16(len(src.ParameterOIDs)))
	for _, oid := range src.ParameterOIDs {
		dst = pgio.AppendUint32(dst, uint32(oid))
	}

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src Parse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type          string
		Name          string
		Query         string
		ParameterOIDs []OID
	}{
		Type:          "Parse",
		Name:          src.Name,
		Query:         src.Query,
		ParameterOIDs: src.ParameterOIDs,
	})
}
