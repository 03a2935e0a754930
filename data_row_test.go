package pgwire_test

import (
	"testing"

	"github.com/jackc/pgio"
	"github.com/pgwirekit/pgwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataRowRoundTrip(t *testing.T) {
	t.Parallel()

	want := &pgwire.DataRow{Values: [][]byte{[]byte("42"), nil, []byte("hello")}}
	encoded := want.Encode(nil)

	var got pgwire.DataRow
	require.NoError(t, got.Decode(encoded[5:]))
	require.Equal(t, want, &got)
}

func TestDataRowTrailingBytesRejected(t *testing.T) {
	t.Parallel()

	body := pgio.AppendUint16(nil, 1)
	body = pgio.AppendInt32(body, 2)
	body = append(body, 'h', 'i')
	body = append(body, 0xde, 0xad) // bytes beyond the declared values

	var msg pgwire.DataRow
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonCountLengthMismatch, decodeErr.Reason)
}

func TestDataRowValueLengthPastBoundary(t *testing.T) {
	t.Parallel()

	// Declared value length runs past the body. Must fail cleanly, not read
	// out of bounds.
	body := pgio.AppendUint16(nil, 1)
	body = pgio.AppendInt32(body, 1000)
	body = append(body, 'x')

	var msg pgwire.DataRow
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonCountLengthMismatch, decodeErr.Reason)
}

func TestRowDescriptionRoundTrip(t *testing.T) {
	t.Parallel()

	want := &pgwire.RowDescription{
		Fields: []pgwire.FieldDescription{
			{
				Name:                 "id",
				TableOID:             16384,
				TableAttributeNumber: 1,
				DataTypeOID:          pgwire.Int8OID,
				DataTypeSize:         8,
				TypeModifier:         -1,
				Format:               pgwire.TextFormat,
			},
			{
				Name:                 "payload",
				TableOID:             16384,
				TableAttributeNumber: 2,
				DataTypeOID:          pgwire.JSONBOID,
				DataTypeSize:         -1,
				TypeModifier:         -1,
				Format:               pgwire.BinaryFormat,
			},
		},
	}
	encoded := want.Encode(nil)

	var got pgwire.RowDescription
	require.NoError(t, got.Decode(encoded[5:]))
	require.Equal(t, want, &got)
}

func TestRowDescriptionTruncatedField(t *testing.T) {
	t.Parallel()

	body := pgio.AppendUint16(nil, 1)
	body = append(body, 'i', 'd', 0)
	body = pgio.AppendUint32(body, 16384)
	// remaining fixed-width fields missing

	var msg pgwire.RowDescription
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonCountLengthMismatch, decodeErr.Reason)
}

func TestCopyInResponseRoundTrip(t *testing.T) {
	t.Parallel()

	want := &pgwire.CopyInResponse{
		OverallFormat:     0,
		ColumnFormatCodes: []uint16{0, 1, 0},
	}
	encoded := want.Encode(nil)

	var got pgwire.CopyInResponse
	require.NoError(t, got.Decode(encoded[5:]))
	require.Equal(t, want, &got)
}

func TestCopyInResponseCountMismatch(t *testing.T) {
	t.Parallel()

	body := []byte{0}
	body = pgio.AppendInt16(body, 2)
	body = pgio.AppendUint16(body, 0)
	// second column format code missing

	var msg pgwire.CopyInResponse
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonCountLengthMismatch, decodeErr.Reason)
}
