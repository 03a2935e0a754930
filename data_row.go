package pgwire

import (
	"encoding/hex"
	"encoding/json"

	"github.com/jackc/pgio"
)

// DataRow carries the values of one result row. A nil value is a SQL NULL.
type DataRow struct {
	Values [][]byte
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*DataRow) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length. The decoded Values alias src.
func (dst *DataRow) Decode(src []byte) error {
	buf := cursor{src: src}

	fieldCount, ok := buf.uint16()
	if !ok {
		return &DecodeError{MessageType: "DataRow", Reason: ReasonInvalidLength, Value: len(src)}
	}

	// Reuse the existing slice when it is long enough.
	if cap(dst.Values) < int(fieldCount) {
		dst.Values = make([][]byte, fieldCount)
	} else {
		dst.Values = dst.Values[:fieldCount]
	}

	for i := range dst.Values {
		valueLen, ok := buf.int32()
		if !ok {
			return &DecodeError{MessageType: "DataRow", Reason: ReasonCountLengthMismatch, Value: int(fieldCount)}
		}

		// null
		if valueLen == -1 {
			dst.Values[i] = nil
			continue
		}
		if valueLen < 0 {
			return &DecodeError{MessageType: "DataRow", Reason: ReasonInvalidCount, Value: int(valueLen)}
		}

		value, ok := buf.next(int(valueLen))
		if !ok {
			return &DecodeError{MessageType: "DataRow", Reason: ReasonCountLengthMismatch, Value: int(fieldCount)}
		}
		dst.Values[i] = value
	}

	if buf.remaining() != 0 {
		return &DecodeError{MessageType: "DataRow", Reason: ReasonCountLengthMismatch, Value: int(fieldCount)}
	}

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *DataRow) Encode(dst []byte) []byte {
	dst = append(dst, 'D')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = pgio.AppendUint16(dst, uint16(len(src.Values)))
	for _, v := range src.Values {
		if v == nil {
			dst = pgio.AppendInt32(dst, -1)
			continue
		}

		dst = pgio.AppendInt32(dst, int32(len(v)))
		dst = append(dst, v...)
	}

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src DataRow) MarshalJSON() ([]byte, error) {
	values := make([]map[string]string, len(src.Values))
	for i, v := range src.Values {
		if v == nil {
			continue
		}
		values[i] = map[string]string{"binary": hex.EncodeToString(v)}
	}

	return json.Marshal(struct {
		Type   string
		Values []map[string]string
	}{
		Type:   "DataRow",
		Values: values,
	})
}
