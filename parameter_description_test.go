package pgwire_test

import (
	"testing"

	"github.com/jackc/pgio"
	"github.com/pgwirekit/pgwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterDescriptionRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		oids []pgwire.OID
	}{
		{"empty", []pgwire.OID{}},
		{"single", []pgwire.OID{pgwire.Int4OID}},
		{"mixed", []pgwire.OID{pgwire.BoolOID, pgwire.VarcharOID, pgwire.UUIDOID, pgwire.JSONOID, pgwire.JSONBArrayOID}},
		{"unrecognized OIDs pass through", []pgwire.OID{999999, 0, 4294967295}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := &pgwire.ParameterDescription{ParameterOIDs: tt.oids}
			encoded := want.Encode(nil)

			var got pgwire.ParameterDescription
			require.NoError(t, got.Decode(encoded[5:]))
			require.Equal(t, want, &got)
		})
	}
}

func TestParameterDescriptionNegativeCount(t *testing.T) {
	t.Parallel()

	body := pgio.AppendInt16(nil, -4)
	body = pgio.AppendUint32(body, uint32(pgwire.BoolOID))

	var msg pgwire.ParameterDescription
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonInvalidCount, decodeErr.Reason)
	assert.Equal(t, -4, decodeErr.Value)
	assert.Empty(t, msg.ParameterOIDs, "failed decode must not leave partial results")
}

func TestParameterDescriptionCountLengthMismatch(t *testing.T) {
	t.Parallel()

	// Declared count of 3 with 5 OIDs worth of bytes present: every
	// individual read would succeed, but the count lies about the body.
	body := pgio.AppendInt16(nil, 3)
	for i := 0; i < 5; i++ {
		body = pgio.AppendUint32(body, uint32(pgwire.Int4OID))
	}

	var msg pgwire.ParameterDescription
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonCountLengthMismatch, decodeErr.Reason)
	assert.Equal(t, 3, decodeErr.Value)
}

func TestParameterDescriptionTruncatedBody(t *testing.T) {
	t.Parallel()

	// Declared count of 3 with only 2 OIDs worth of bytes.
	body := pgio.AppendInt16(nil, 3)
	body = pgio.AppendUint32(body, uint32(pgwire.Int4OID))
	body = pgio.AppendUint32(body, uint32(pgwire.TextOID))

	var msg pgwire.ParameterDescription
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonCountLengthMismatch, decodeErr.Reason)
}

func TestParameterDescriptionEmptyBody(t *testing.T) {
	t.Parallel()

	var msg pgwire.ParameterDescription
	err := msg.Decode(nil)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonInvalidLength, decodeErr.Reason)
}
