package pgwire_test

import (
	"testing"

	"github.com/pgwirekit/pgwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponseRoundTrip(t *testing.T) {
	t.Parallel()

	want := &pgwire.ErrorResponse{
		Fields: map[pgwire.FieldTag]string{
			pgwire.FieldSeverity: "ERROR",
			pgwire.FieldSQLState: "42P01",
			pgwire.FieldMessage:  `relation "widgets" does not exist`,
			pgwire.FieldRoutine:  "parserOpenTable",
			pgwire.FieldTag('Y'): "kept under its raw tag byte",
		},
	}
	encoded := want.Encode(nil)

	var got pgwire.ErrorResponse
	require.NoError(t, got.Decode(encoded[5:]))
	require.Equal(t, want, &got)
}

func TestErrorResponseLastWriteWins(t *testing.T) {
	t.Parallel()

	body := []byte("Mfirst\x00Msecond\x00\x00")

	var msg pgwire.ErrorResponse
	require.NoError(t, msg.Decode(body))
	assert.Equal(t, "second", msg.Fields[pgwire.FieldMessage])
	assert.Len(t, msg.Fields, 1)
}

func TestErrorResponseUnterminatedString(t *testing.T) {
	t.Parallel()

	body := []byte("SERROR\x00Mno terminator here")

	var msg pgwire.ErrorResponse
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonMissingTerminator, decodeErr.Reason)
	assert.Equal(t, int('M'), decodeErr.Value)
}

func TestErrorResponseMissingTerminatorByte(t *testing.T) {
	t.Parallel()

	// Body ends after a complete field but without the final NUL.
	body := []byte("SERROR\x00")

	var msg pgwire.ErrorResponse
	err := msg.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonMissingTerminator, decodeErr.Reason)
}

func TestErrorResponseUnknownTagTolerated(t *testing.T) {
	t.Parallel()

	// 'Z' is not a known field tag. The following string is still consumed
	// and decoding of subsequent fields continues.
	body := []byte("Zmystery\x00Mreal message\x00\x00")

	var msg pgwire.ErrorResponse
	require.NoError(t, msg.Decode(body))
	assert.Equal(t, "mystery", msg.Fields[pgwire.FieldTag('Z')])
	assert.Equal(t, "real message", msg.Fields[pgwire.FieldMessage])
	assert.Equal(t, "unknown", pgwire.FieldTag('Z').String())
}

func TestErrorResponseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields map[pgwire.FieldTag]string
		want   string
	}{
		{
			"message and routine",
			map[pgwire.FieldTag]string{pgwire.FieldMessage: "syntax error", pgwire.FieldRoutine: "scanner_yyerror"},
			"syntax error (scanner_yyerror)",
		},
		{
			"falls back to sqlstate",
			map[pgwire.FieldTag]string{pgwire.FieldMessage: "syntax error", pgwire.FieldSQLState: "42601"},
			"syntax error (42601)",
		},
		{
			"all fallbacks",
			map[pgwire.FieldTag]string{},
			"unknown error (unknown source)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := &pgwire.ErrorResponse{Fields: tt.fields}
			assert.Equal(t, tt.want, msg.String())
		})
	}
}

func TestErrorResponseSQLState(t *testing.T) {
	t.Parallel()

	msg := &pgwire.ErrorResponse{Fields: map[pgwire.FieldTag]string{pgwire.FieldSQLState: "23505"}}
	assert.Equal(t, "23505", msg.SQLState())
}

func TestNoticeResponseSharesGrammar(t *testing.T) {
	t.Parallel()

	want := &pgwire.NoticeResponse{
		Fields: map[pgwire.FieldTag]string{
			pgwire.FieldSeverity: "NOTICE",
			pgwire.FieldMessage:  "table will be pruned",
		},
	}
	encoded := want.Encode(nil)
	require.Equal(t, byte('N'), encoded[0])

	var got pgwire.NoticeResponse
	require.NoError(t, got.Decode(encoded[5:]))
	require.Equal(t, want, &got)
}
