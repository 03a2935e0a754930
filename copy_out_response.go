package pgwire

import (
	"encoding/json"
)

// CopyOutResponse tells the client a COPY TO STDOUT transfer is starting.
type CopyOutResponse struct {
	OverallFormat     byte
	ColumnFormatCodes []uint16
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*CopyOutResponse) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *CopyOutResponse) Decode(src []byte) error {
	columnFormatCodes, overallFormat, err := decodeCopyResponseBody("CopyOutResponse", src)
	if err != nil {
		return err
	}

	*dst = CopyOutResponse{OverallFormat: overallFormat, ColumnFormatCodes: columnFormatCodes}
	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *CopyOutResponse) Encode(dst []byte) []byte {
	return encodeCopyResponseBody(dst, 'H', src.OverallFormat, src.ColumnFormatCodes)
}

// MarshalJSON implements encoding/json.Marshaler.
func (src CopyOutResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type              string
		ColumnFormatCodes []uint16
	}{
		Type:              "CopyOutResponse",
		ColumnFormatCodes: src.ColumnFormatCodes,
	})
}
