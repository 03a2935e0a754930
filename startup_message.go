package pgwire

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgio"
)

// ProtocolVersionNumber is the protocol version sent in a StartupMessage.
const ProtocolVersionNumber = 196608 // 3.0

const sslRequestNumber = 80877103

// StartupMessage is the first message sent by the client. It has no
// identifier byte: the frame is just a length followed by the protocol
// version and the parameter list.
type StartupMessage struct {
	ProtocolVersion uint32
	Parameters      map[string]string
}

// Frontend identifies this message as sendable by the PostgreSQL frontend.
func (*StartupMessage) Frontend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 4 byte message length.
func (dst *StartupMessage) Decode(src []byte) error {
	buf := cursor{src: src}

	protocolVersion, ok := buf.uint32()
	if !ok {
		return &DecodeError{MessageType: "StartupMessage", Reason: ReasonInvalidLength, Value: len(src)}
	}

	if protocolVersion == sslRequestNumber {
		return fmt.Errorf("can't handle ssl connection request")
	}
	if protocolVersion != ProtocolVersionNumber {
		return fmt.Errorf("bad startup message version number: expected %d, got %d", ProtocolVersionNumber, protocolVersion)
	}

	parameters := make(map[string]string)
	for buf.remaining() > 1 {
		key, ok := buf.cstring()
		if !ok {
			return &DecodeError{MessageType: "StartupMessage", Reason: ReasonMissingTerminator}
		}
		value, ok := buf.cstring()
		if !ok {
			return &DecodeError{MessageType: "StartupMessage", Reason: ReasonMissingTerminator}
		}
		parameters[key] = value
	}

	terminator, ok := buf.byte()
	if !ok || terminator != 0 {
		return &DecodeError{MessageType: "StartupMessage", Reason: ReasonMissingTerminator}
	}

	*dst = StartupMessage{ProtocolVersion: protocolVersion, Parameters: parameters}
	return nil
}

// Encode encodes src into dst. dst will include the 4 byte message length but
// no identifier byte.
func (src *StartupMessage) Encode(dst []byte) []byte {
	sp := len(dst)
	dst = pgio.AppendInt32(dst, -1)

	dst = pgio.AppendUint32(dst, src.ProtocolVersion)
	for k, v := range src.Parameters {
		dst = append(dst, k...)
		dst = append(dst, 0)
		dst = append(dst, v...)
		dst = append(dst, 0)
	}
	dst = append(dst, 0)

	pgio.SetInt32(dst[sp:], int32(len(dst[sp:])))

	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src StartupMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type            string
		ProtocolVersion uint32
		Parameters      map[string]string
	}{
		Type:            "StartupMessage",
		ProtocolVersion: src.ProtocolVersion,
		Parameters:      src.Parameters,
	})
}
