package pgwire

import "fmt"

// DecodeReason classifies why a frame failed to decode.
type DecodeReason int

const (
	// ReasonInvalidLength indicates a length field below the minimum frame
	// header size or a body shorter than the message requires.
	ReasonInvalidLength DecodeReason = iota

	// ReasonInvalidCount indicates a negative or otherwise impossible
	// element count.
	ReasonInvalidCount

	// ReasonCountLengthMismatch indicates a declared element count that does
	// not consume the body exactly.
	ReasonCountLengthMismatch

	// ReasonMissingTerminator indicates a NUL terminator not found before
	// the body boundary.
	ReasonMissingTerminator

	// ReasonUnknownMessageType indicates an identifier byte outside the
	// dispatch table.
	ReasonUnknownMessageType

	// ReasonMaxBodyLenExceeded indicates a body larger than the configured
	// maximum.
	ReasonMaxBodyLenExceeded
)

// DecodeError reports a protocol violation found while decoding a frame. It
// is fatal to the connection: the stream position can no longer be trusted,
// so the caller is expected to close the connection rather than retry.
type DecodeError struct {
	// MessageType names the wire message being decoded. It is empty when the
	// frame header itself was invalid.
	MessageType string

	Reason DecodeReason

	// Value carries the offending value where one exists: the bad count, the
	// bad length, or the unrecognized identifier byte.
	Value int
}

func (e *DecodeError) Error() string {
	switch e.Reason {
	case ReasonInvalidLength:
		return fmt.Sprintf("%s: invalid message length %d", e.messageType(), e.Value)
	case ReasonInvalidCount:
		return fmt.Sprintf("%s: invalid element count %d", e.messageType(), e.Value)
	case ReasonCountLengthMismatch:
		return fmt.Sprintf("%s: declared count %d does not match body length", e.messageType(), e.Value)
	case ReasonMissingTerminator:
		return fmt.Sprintf("%s: string terminator not found", e.messageType())
	case ReasonUnknownMessageType:
		if e.MessageType != "" {
			return fmt.Sprintf("%s: unknown type %d", e.MessageType, e.Value)
		}
		return fmt.Sprintf("unknown message type: %c", e.Value)
	case ReasonMaxBodyLenExceeded:
		return fmt.Sprintf("%s: message body length %d exceeds maximum", e.messageType(), e.Value)
	default:
		return fmt.Sprintf("%s: malformed message", e.messageType())
	}
}

func (e *DecodeError) messageType() string {
	if e.MessageType == "" {
		return "frame"
	}
	return e.MessageType
}
