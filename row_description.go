package pgwire

import (
	"encoding/json"

	"github.com/jackc/pgio"
)

// Data format codes.
const (
	TextFormat   = 0
	BinaryFormat = 1
)

// FieldDescription describes a single column of a result set.
type FieldDescription struct {
	Name                 string
	TableOID             OID
	TableAttributeNumber uint16
	DataTypeOID          OID
	DataTypeSize         int16
	TypeModifier         int32
	Format               int16
}

// RowDescription describes the columns of the rows that will follow.
type RowDescription struct {
	Fields []FieldDescription
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*RowDescription) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *RowDescription) Decode(src []byte) error {
	buf := cursor{src: src}

	fieldCount, ok := buf.uint16()
	if !ok {
		return &DecodeError{MessageType: "RowDescription", Reason: ReasonInvalidLength, Value: len(src)}
	}

	fields := make([]FieldDescription, fieldCount)
	for i := range fields {
		var fd FieldDescription

		fd.Name, ok = buf.cstring()
		if !ok {
			return &DecodeError{MessageType: "RowDescription", Reason: ReasonMissingTerminator}
		}

		tableOID, ok1 := buf.uint32()
		tableAttributeNumber, ok2 := buf.uint16()
		dataTypeOID, ok3 := buf.uint32()
		dataTypeSize, ok4 := buf.int16()
		typeModifier, ok5 := buf.int32()
		format, ok6 := buf.int16()
		if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
			return &DecodeError{MessageType: "RowDescription", Reason: ReasonCountLengthMismatch, Value: int(fieldCount)}
		}

		fd.TableOID = OID(tableOID)
		fd.TableAttributeNumber = tableAttributeNumber
		fd.DataTypeOID = OID(dataTypeOID)
		fd.DataTypeSize = dataTypeSize
		fd.TypeModifier = typeModifier
		fd.Format = format

		fields[i] = fd
	}

	if buf.remaining() != 0 {
		return &DecodeError{MessageType: "RowDescription", Reason: ReasonCountLengthMismatch, Value: int(fieldCount)}
	}

	*dst = RowDescription{Fields: fields}
	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *RowDescription) Encode(dst []byte) []byte {
	dst = append(dst, 'T')
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = pgio.AppendUint16(dst, uint16(len(src.Fields)))
	for _, fd := range src.Fields {
		dst = append(dst, fd.Name...)
		dst = append(dst, 0)

		dst = pgio.AppendUint32(dst, uint32(fd.TableOID))
		dst = pgio.AppendUint16(dst, fd.TableAttributeNumber)
		dst = pgio.AppendUint32(dst, uint32(fd.DataTypeOID))
		dst = pgio.AppendInt16(dst, fd.DataTypeSize)
		dst = pgio.AppendInt32(dst, fd.TypeModifier)
		dst = pgio.AppendInt16(dst, fd.Format)
	}

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src RowDescription) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type   string
		Fields []FieldDescription
	}{
		Type:   "RowDescription",
		Fields: src.Fields,
	})
}
