package pgwire

import (
	"encoding/hex"
	"encoding/json"

	"github.com/jackc/pgio"
)

// Bind binds a prepared statement to parameter values, producing a portal. A
// nil parameter is a SQL NULL.
type Bind struct {
	DestinationPortal    string
	PreparedStatement    string
	ParameterFormatCodes []int16
	Parameters           [][]byte
	ResultFormatCodes    []int16
}

// Frontend identifies this message as sendable by the PostgreSQL frontend.
func (*Bind) Frontend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length. Parameters alias src.
func (dst *Bind) Decode(src []byte) error {
	*dst = Bind{}

	buf := cursor{src: src}

	destinationPortal, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "Bind", Reason: ReasonMissingTerminator}
	}
	dst.DestinationPortal = destinationPortal

	preparedStatement, ok := buf.cstring()
	if !ok {
		return &DecodeError{MessageType: "Bind", Reason: ReasonMissingTerminator}
	}
	dst.PreparedStatement = preparedStatement

	parameterFormatCodeCount, ok := buf.int16()
	if !ok {
		return &DecodeError{MessageType: "Bind", Reason: ReasonInvalidLength, Value: len(src)}
	}
	if parameterFormatCodeCount < 0 {
		return &DecodeError{MessageType: "Bind", Reason: ReasonInvalidCount, Value: int(parameterFormatCodeCount)}
	}

	if parameterFormatCodeCount > 0 {
		dst.ParameterFormatCodes = make([]int16, parameterFormatCodeCount)
		for i := range dst.ParameterFormatCodes {
			code, ok := buf.int16()
			if !ok {
				return &DecodeError{MessageType: "Bind", Reason: ReasonCountLengthMismatch, Value: int(parameterFormatCodeCount)}
			}
			dst.ParameterFormatCodes[i] = code
		}
	}

	parameterCount, ok := buf.int16()
	if !ok {
		return &DecodeError{MessageType: "Bind", Reason: ReasonInvalidLength, Value: len(src)}
	}
	if parameterCount < 0 {
		return &DecodeError{MessageType: "Bind", Reason: ReasonInvalidCount, Value: int(parameterCount)}
	}

	if parameterCount > 0 {
		dst.Parameters = make([][]byte, parameterCount)
		for i := range dst.Parameters {
			valueLen, ok := buf.int32()
			if !ok {
				return &DecodeError{MessageType: "Bind", Reason: ReasonCountLengthMismatch, Value: int(parameterCount)}
			}

			// null
			if valueLen == -1 {
				continue
			}
			if valueLen < 0 {
				return &DecodeError{MessageType: "Bind", Reason: ReasonInvalidCount, Value: int(valueLen)}
			}

			value, ok := buf.next(int(valueLen))
			if !ok {
				return &DecodeError{MessageType: "Bind", Reason: ReasonCountLengthMismatch, Value: int(parameterCount)}
			}
			dst.Parameters[i] = value
		}
	}

	resultFormatCodeCount, ok := buf.int16()
	if !ok {
		return &DecodeError{MessageType: "Bind", Reason: ReasonInvalidLength, Value: len(src)}
	}
	if resultFormatCodeCount < 0 {
		return &DecodeError{MessageType: "Bind", Reason: ReasonInvalidCount, Value: int(resultFormatCodeCount)}
	}

	dst.ResultFormatCodes = make([]int16, resultFormatCodeCount)
	for i := range dst.ResultFormatCodes {
		code, ok := buf.int16()
		if !ok {
			return &DecodeError{MessageType: "Bind", Reason: ReasonCountLengthMismatch, Value: int(resultFormatCodeCount)}
		}
		dst.ResultFormatCodes[i] = code
	}

	if buf.remaining() != 0 {
		return &DecodeError{MessageType: "Bind", Reason: ReasonCountLengthMismatch, Value: int(resultFormatCodeCount)}
	}

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *Bind) Encode(dst []byte) []byte {
	dst = append(dst, 'B')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = append(dst, src.DestinationPortal...)
	dst = append(dst, 0)
	dst = append(dst, src.PreparedStatement...)
	dst = append(dst, 0)

	dst = pgio.AppendUint16(dst, uint16(len(src.ParameterFormatCodes)))
	for _, fc := range src.ParameterFormatCodes {
		dst = pgio.AppendInt16(dst, fc)
	}

	dst = pgio.AppendUint16(dst, uint16(len(src.Parameters)))
	for _, p := range src.Parameters {
		if p == nil {
			dst = pgio.AppendInt32(dst, -1)
			continue
		}

		dst = pgio.AppendInt32(dst, int32(len(p)))
		dst = append(dst, p...)
	}

	dst = pgio.AppendUint16(dst, uint16(len(src.ResultFormatCodes)))
	for _, fc := range src.ResultFormatCodes {
		dst = pgio.AppendInt16(dst, fc)
	}

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src Bind) MarshalJSON() ([]byte, error) {
	formattedParameters := make([]map[string]string, len(src.Parameters))
	for i, p := range src.Parameters {
		if p == nil {
			continue
		}

		textFormat := true
		if len(src.ParameterFormatCodes) == 1 {
			textFormat = src.ParameterFormatCodes[0] == TextFormat
		} else if len(src.ParameterFormatCodes) > 1 {
			textFormat = src.ParameterFormatCodes[i] == TextFormat
		}

		if textFormat {
			formattedParameters[i] = map[string]string{"text": string(p)}
		} else {
			formattedParameters[i] = map[string]string{"binary": hex.EncodeToString(p)}
		}
	}

	return json.Marshal(struct {
		Type                 string
		DestinationPortal    string
		PreparedStatement    string
		ParameterFormatCodes []int16
		Parameters           []map[string]string
		ResultFormatCodes    []int16
	}{
		Type:                 "Bind",
		DestinationPortal:    src.DestinationPortal,
		PreparedStatement:    src.PreparedStatement,
		ParameterFormatCodes: src.ParameterFormatCodes,
		Parameters:           formattedParameters,
		ResultFormatCodes:    src.ResultFormatCodes,
	})
}
