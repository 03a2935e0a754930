package pgwire_test

import (
	"testing"

	"github.com/pgwirekit/pgwire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupMessageRoundTrip(t *testing.T) {
	t.Parallel()

	want := &pgwire.StartupMessage{
		ProtocolVersion: pgwire.ProtocolVersionNumber,
		Parameters: map[string]string{
			"user":     "tester",
			"database": "widgets",
		},
	}
	encoded := want.Encode(nil)

	// A StartupMessage frame has no identifier byte, only the 4 byte length.
	var got pgwire.StartupMessage
	require.NoError(t, got.Decode(encoded[4:]))
	require.Equal(t, want, &got)
}

func TestStartupMessageBadVersion(t *testing.T) {
	t.Parallel()

	msg := &pgwire.StartupMessage{ProtocolVersion: 3, Parameters: map[string]string{}}
	encoded := msg.Encode(nil)

	var got pgwire.StartupMessage
	err := got.Decode(encoded[4:])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestStartupMessageMissingTerminator(t *testing.T) {
	t.Parallel()

	msg := &pgwire.StartupMessage{
		ProtocolVersion: pgwire.ProtocolVersionNumber,
		Parameters:      map[string]string{"user": "tester"},
	}
	encoded := msg.Encode(nil)
	body := encoded[4 : len(encoded)-1] // drop the trailing NUL

	var got pgwire.StartupMessage
	err := got.Decode(body)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonMissingTerminator, decodeErr.Reason)
}
