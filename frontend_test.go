package pgwire_test

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/pgwirekit/pgwire"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interruptReader returns bytes in the pushed chunks and io.EOF once drained,
// simulating a peer that stalls mid-message.
type interruptReader struct {
	chunks [][]byte
}

func (r *interruptReader) push(p []byte) {
	r.chunks = append(r.chunks, p)
}

func (r *interruptReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, io.EOF
	}

	n := copy(p, r.chunks[0])
	if n == len(r.chunks[0]) {
		r.chunks = r.chunks[1:]
	} else {
		r.chunks[0] = r.chunks[0][n:]
	}
	return n, nil
}

func TestFrontendReceive(t *testing.T) {
	t.Parallel()

	server := &interruptReader{}
	var encoded []byte
	encoded = (&pgwire.AuthenticationOk{}).Encode(encoded)
	encoded = (&pgwire.ParameterStatus{Name: "client_encoding", Value: "UTF8"}).Encode(encoded)
	encoded = (&pgwire.ReadyForQuery{TxStatus: pgwire.TxStatusIdle}).Encode(encoded)
	server.push(encoded)

	frontend := pgwire.NewFrontend(server, nil)

	for _, want := range []pgwire.BackendMessage{
		&pgwire.AuthenticationOk{},
		&pgwire.ParameterStatus{Name: "client_encoding", Value: "UTF8"},
		&pgwire.ReadyForQuery{TxStatus: pgwire.TxStatusIdle},
	} {
		msg, err := frontend.Receive()
		require.NoError(t, err)
		require.Equal(t, want, msg)
	}
}

func TestFrontendReceiveInterrupted(t *testing.T) {
	t.Parallel()

	server := &interruptReader{}
	server.push([]byte{'S', 0, 0, 0, 8})

	frontend := pgwire.NewFrontend(server, nil)

	msg, err := frontend.Receive()
	require.Error(t, err)
	require.Nil(t, msg)

	// The header survives the interruption; delivering the body completes
	// the message.
	server.push([]byte{'a', 0, 'b', 0})

	msg, err = frontend.Receive()
	require.NoError(t, err)
	require.Equal(t, &pgwire.ParameterStatus{Name: "a", Value: "b"}, msg)
}

func TestFrontendReceiveUnexpectedEOF(t *testing.T) {
	t.Parallel()

	server := &interruptReader{}
	server.push([]byte{'Z', 0, 0, 0, 5})

	frontend := pgwire.NewFrontend(server, nil)

	msg, err := frontend.Receive()
	assert.Nil(t, msg)
	assert.Equal(t, io.ErrUnexpectedEOF, err)
}

func TestFrontendReceiveMalformed(t *testing.T) {
	t.Parallel()

	server := &interruptReader{}
	server.push([]byte{'t', 0, 0, 0, 6, 0xff, 0xfc})

	frontend := pgwire.NewFrontend(server, nil)

	msg, err := frontend.Receive()
	require.Nil(t, msg)

	var decodeErr *pgwire.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, pgwire.ReasonInvalidCount, decodeErr.Reason)
}

func TestFrontendSendFlush(t *testing.T) {
	t.Parallel()

	wire := &bytes.Buffer{}
	frontend := pgwire.NewFrontend(nil, wire)

	frontend.Send(&pgwire.Query{String: "select 42"})
	frontend.Send(&pgwire.Terminate{})
	assert.Zero(t, wire.Len(), "Send must buffer until Flush")

	require.NoError(t, frontend.Flush())

	var want []byte
	want = (&pgwire.Query{String: "select 42"}).Encode(want)
	want = (&pgwire.Terminate{}).Encode(want)
	assert.Equal(t, want, wire.Bytes())

	// Flush with nothing pending is a no-op.
	require.NoError(t, frontend.Flush())
	assert.Equal(t, want, wire.Bytes())
}

func TestFrontendExtendedQueryRoundTrip(t *testing.T) {
	t.Parallel()

	wire := &bytes.Buffer{}
	frontend := pgwire.NewFrontend(nil, wire)

	sent := []pgwire.FrontendMessage{
		&pgwire.Parse{Name: "stmt1", Query: "select $1, $2", ParameterOIDs: []pgwire.OID{pgwire.Int4OID, pgwire.TextOID}},
		&pgwire.Bind{
			PreparedStatement:    "stmt1",
			ParameterFormatCodes: []int16{pgwire.TextFormat, pgwire.BinaryFormat},
			Parameters:           [][]byte{[]byte("7"), nil},
			ResultFormatCodes:    []int16{pgwire.TextFormat},
		},
		&pgwire.Describe{ObjectType: 'P', Name: ""},
		&pgwire.Execute{Portal: "", MaxRows: 0},
		&pgwire.Close{ObjectType: 'S', Name: "stmt1"},
		&pgwire.Sync{},
	}
	for _, msg := range sent {
		frontend.Send(msg)
	}
	require.NoError(t, frontend.Flush())

	// Re-decode what was written, playing the server side by hand.
	buf := wire.Bytes()
	for _, want := range sent {
		require.GreaterOrEqual(t, len(buf), 5)
		msgType := buf[0]
		bodyLen := int(binary.BigEndian.Uint32(buf[1:5])) - 4
		body := buf[5 : 5+bodyLen]
		buf = buf[5+bodyLen:]

		var got pgwire.FrontendMessage
		switch msgType {
		case 'P':
			got = &pgwire.Parse{}
		case 'B':
			got = &pgwire.Bind{}
		case 'D':
			got = &pgwire.Describe{}
		case 'E':
			got = &pgwire.Execute{}
		case 'C':
			got = &pgwire.Close{}
		case 'S':
			got = &pgwire.Sync{}
		default:
			t.Fatalf("unexpected message type %c", msgType)
		}

		require.NoError(t, got.Decode(body))
		require.Equal(t, want, got)
	}
	assert.Empty(t, buf)
}

func TestFrontendTrace(t *testing.T) {
	t.Parallel()

	logOutput := &bytes.Buffer{}
	logger := zerolog.New(logOutput)

	server := &interruptReader{}
	server.push((&pgwire.ReadyForQuery{TxStatus: pgwire.TxStatusIdle}).Encode(nil))

	frontend := pgwire.NewFrontend(server, io.Discard)
	frontend.Trace(logger)

	frontend.Send(&pgwire.Query{String: "select 1"})
	_, err := frontend.Receive()
	require.NoError(t, err)

	assert.Contains(t, logOutput.String(), `"msg_type":"Query"`)
	assert.Contains(t, logOutput.String(), `"msg_type":"ReadyForQuery"`)
	assert.Contains(t, logOutput.String(), `"sender":"F"`)
	assert.Contains(t, logOutput.String(), `"sender":"B"`)

	frontend.Untrace()
	logOutput.Reset()
	frontend.Send(&pgwire.Sync{})
	assert.Zero(t, logOutput.Len())
}
