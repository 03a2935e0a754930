package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// FieldTag identifies the semantic role of a diagnostic string in an
// ErrorResponse or NoticeResponse. See
// https://www.postgresql.org/docs/current/protocol-error-fields.html.
type FieldTag byte

const (
	FieldSeverity            FieldTag = 'S' // localized severity
	FieldSeverityUnlocalized FieldTag = 'V'
	FieldSQLState            FieldTag = 'C'
	FieldMessage             FieldTag = 'M'
	FieldDetail              FieldTag = 'D'
	FieldHint                FieldTag = 'H'
	FieldPosition            FieldTag = 'P'
	FieldInternalPosition    FieldTag = 'p'
	FieldInternalQuery       FieldTag = 'q'
	FieldWhere               FieldTag = 'W'
	FieldSchemaName          FieldTag = 's'
	FieldTableName           FieldTag = 't'
	FieldColumnName          FieldTag = 'c'
	FieldDataTypeName        FieldTag = 'd'
	FieldConstraintName      FieldTag = 'n'
	FieldFile                FieldTag = 'F'
	FieldLine                FieldTag = 'L'
	FieldRoutine             FieldTag = 'R'
)

func (ft FieldTag) String() string {
	switch ft {
	case FieldSeverity:
		return "Severity"
	case FieldSeverityUnlocalized:
		return "SeverityUnlocalized"
	case FieldSQLState:
		return "SQLState"
	case FieldMessage:
		return "Message"
	case FieldDetail:
		return "Detail"
	case FieldHint:
		return "Hint"
	case FieldPosition:
		return "Position"
	case FieldInternalPosition:
		return "InternalPosition"
	case FieldInternalQuery:
		return "InternalQuery"
	case FieldWhere:
		return "Where"
	case FieldSchemaName:
		return "SchemaName"
	case FieldTableName:
		return "TableName"
	case FieldColumnName:
		return "ColumnName"
	case FieldDataTypeName:
		return "DataTypeName"
	case FieldConstraintName:
		return "ConstraintName"
	case FieldFile:
		return "File"
	case FieldLine:
		return "Line"
	case FieldRoutine:
		return "Routine"
	default:
		return "unknown"
	}
}

// ErrorResponse is sent by the backend when a query or connection fails. Each
// field tag maps to at most one string; a duplicated tag in the wire payload
// overwrites the previous value. Tags outside the known enumeration are kept
// under their raw byte value, so servers that add new fields still decode.
type ErrorResponse struct {
	Fields map[FieldTag]string
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*ErrorResponse) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *ErrorResponse) Decode(src []byte) error {
	*dst = ErrorResponse{Fields: make(map[FieldTag]string)}

	buf := cursor{src: src}
	for {
		tag, ok := buf.byte()
		if !ok {
			return &DecodeError{MessageType: "ErrorResponse", Reason: ReasonMissingTerminator}
		}
		if tag == 0 {
			return nil
		}

		value, ok := buf.cstring()
		if !ok {
			return &DecodeError{MessageType: "ErrorResponse", Reason: ReasonMissingTerminator, Value: int(tag)}
		}
		dst.Fields[FieldTag(tag)] = value
	}
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *ErrorResponse) Encode(dst []byte) []byte {
	return src.encode(dst, 'E')
}

func (src *ErrorResponse) encode(dst []byte, typeByte byte) []byte {
	dst = append(dst, typeByte)
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	for tag, value := range src.Fields {
		dst = append(dst, byte(tag))
		dst = append(dst, value...)
		dst = append(dst, 0)
	}
	dst = append(dst, 0)

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// SQLState returns the SQLSTATE code of the error, e.g. "42P01". Callers that
// branch on the kind of error should branch on this, not on String.
func (src *ErrorResponse) SQLState() string {
	return src.Fields[FieldSQLState]
}

// String returns a human-readable summary of the error for logs and error
// messages. It is presentation only and not authoritative: the wording may
// change, so programmatic callers must use SQLState instead.
func (src *ErrorResponse) String() string {
	message := src.Fields[FieldMessage]
	if message == "" {
		message = "unknown error"
	}

	origin := src.Fields[FieldRoutine]
	if origin == "" {
		origin = src.Fields[FieldSQLState]
	}
	if origin == "" {
		origin = "unknown source"
	}

	return message + " (" + origin + ")"
}

// MarshalJSON implements encoding/json.Marshaler.
func (src ErrorResponse) MarshalJSON() ([]byte, error) {
	fields := make(map[string]string, len(src.Fields))
	for tag, value := range src.Fields {
		fields[string(byte(tag))] = value
	}

	return json.Marshal(struct {
		Type   string
		Fields map[string]string
	}{
		Type:   "ErrorResponse",
		Fields: fields,
	})
}
