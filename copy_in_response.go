package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// CopyInResponse tells the client to begin a COPY FROM STDIN transfer.
type CopyInResponse struct {
	OverallFormat     byte
	ColumnFormatCodes []uint16
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*CopyInResponse) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *CopyInResponse) Decode(src []byte) error {
	columnFormatCodes, overallFormat, err := decodeCopyResponseBody("CopyInResponse", src)
	if err != nil {
		return err
	}

	*dst = CopyInResponse{OverallFormat: overallFormat, ColumnFormatCodes: columnFormatCodes}
	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *CopyInResponse) Encode(dst []byte) []byte {
	return encodeCopyResponseBody(dst, 'G', src.OverallFormat, src.ColumnFormatCodes)
}

// MarshalJSON implements encoding/json.Marshaler.
func (src CopyInResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type              string
		ColumnFormatCodes []uint16
	}{
		Type:              "CopyInResponse",
		ColumnFormatCodes: src.ColumnFormatCodes,
	})
}

// decodeCopyResponseBody parses the shared body grammar of CopyInResponse and
// CopyOutResponse: a 1 byte overall format followed by a count-prefixed array
// of per-column format codes. The declared count must consume the body
// exactly.
func decodeCopyResponseBody(messageType string, src []byte) ([]uint16, byte, error) {
	buf := cursor{src: src}

	overallFormat, ok := buf.byte()
	if !ok {
		return nil, 0, &DecodeError{MessageType: messageType, Reason: ReasonInvalidLength, Value: len(src)}
	}

	columnCount, ok := buf.int16()
	if !ok {
		return nil, 0, &DecodeError{MessageType: messageType, Reason: ReasonInvalidLength, Value: len(src)}
	}
	if columnCount < 0 {
		return nil, 0, &DecodeError{MessageType: messageType, Reason: ReasonInvalidCount, Value: int(columnCount)}
	}

	columnFormatCodes := make([]uint16, columnCount)
	for i := range columnFormatCodes {
		code, ok := buf.uint16()
		if !ok {
			return nil, 0, &DecodeError{MessageType: messageType, Reason: ReasonCountLengthMismatch, Value: int(columnCount)}
		}
		columnFormatCodes[i] = code
	}
	if buf.remaining() != 0 {
		return nil, 0, &DecodeError{MessageType: messageType, Reason: ReasonCountLengthMismatch, Value: int(columnCount)}
	}

	return columnFormatCodes, overallFormat, nil
}

func encodeCopyResponseBody(dst []byte, typeByte byte, overallFormat byte, columnFormatCodes []uint16) []byte {
	dst = append(dst, typeByte)
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = append(dst, overallFormat)
	dst = pgio.AppendUint16(dst, uint16(len(columnFormatCodes)))
	for _, code := range columnFormatCodes {
		dst = pgio.AppendUint16(dst, code)
	}

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}
