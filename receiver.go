package pgwire

import (
	"encoding/binary"
)

// backendMessages holds flyweights for every backend message type and the
// single dispatch point from identifier byte to decoder. The flyweights are
// reused across messages, so a decoded message is only valid until the next
// message is decoded.
type backendMessages struct {
	authenticationOk                AuthenticationOk
	authenticationCleartextPassword AuthenticationCleartextPassword
	authenticationMD5Password       AuthenticationMD5Password
	backendKeyData                  BackendKeyData
	bindComplete                    BindComplete
	closeComplete                   CloseComplete
	commandComplete                 CommandComplete
	copyData                        CopyData
	copyDone                        CopyDone
	copyInResponse                  CopyInResponse
	copyOutResponse                 CopyOutResponse
	dataRow                         DataRow
	emptyQueryResponse              EmptyQueryResponse
	errorResponse                   ErrorResponse
	noData                          NoData
	noticeResponse                  NoticeResponse
	notificationResponse            NotificationResponse
	parameterDescription            ParameterDescription
	parameterStatus                 ParameterStatus
	parseComplete                   ParseComplete
	portalSuspended                 PortalSuspended
	readyForQuery                   ReadyForQuery
	rowDescription                  RowDescription
}

func (m *backendMessages) decode(msgType byte, body []byte) (BackendMessage, error) {
	var msg BackendMessage
	switch msgType {
	case '1':
		msg = &m.parseComplete
	case '2':
		msg = &m.bindComplete
	case '3':
		msg = &m.closeComplete
	case 'A':
		msg = &m.notificationResponse
	case 'c':
		msg = &m.copyDone
	case 'C':
		msg = &m.commandComplete
	case 'd':
		msg = &m.copyData
	case 'D':
		msg = &m.dataRow
	case 'E':
		msg = &m.errorResponse
	case 'G':
		msg = &m.copyInResponse
	case 'H':
		msg = &m.copyOutResponse
	case 'I':
		msg = &m.emptyQueryResponse
	case 'K':
		msg = &m.backendKeyData
	case 'n':
		msg = &m.noData
	case 'N':
		msg = &m.noticeResponse
	case 'R':
		var err error
		msg, err = m.findAuthenticationMessageType(body)
		if err != nil {
			return nil, err
		}
	case 's':
		msg = &m.portalSuspended
	case 'S':
		msg = &m.parameterStatus
	case 't':
		msg = &m.parameterDescription
	case 'T':
		msg = &m.rowDescription
	case 'Z':
		msg = &m.readyForQuery
	default:
		return nil, &DecodeError{Reason: ReasonUnknownMessageType, Value: int(msgType)}
	}

	err := msg.Decode(body)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (m *backendMessages) findAuthenticationMessageType(body []byte) (BackendMessage, error) {
	if len(body) < 4 {
		return nil, &DecodeError{MessageType: "Authentication", Reason: ReasonInvalidLength, Value: len(body)}
	}
	authType := binary.BigEndian.Uint32(body)

	switch authType {
	case AuthTypeOk:
		return &m.authenticationOk, nil
	case AuthTypeCleartextPassword:
		return &m.authenticationCleartextPassword, nil
	case AuthTypeMD5Password:
		return &m.authenticationMD5Password, nil
	default:
		return nil, &DecodeError{MessageType: "Authentication", Reason: ReasonUnknownMessageType, Value: int(authType)}
	}
}

// ReceiverConfig configures a Receiver.
type ReceiverConfig struct {
	// Buf holds bytes already received before the Receiver was constructed,
	// e.g. read together with an out-of-band protocol negotiation response.
	Buf []byte

	// MaxBodyLen is the largest message body the Receiver will accept. 0
	// means no limit. The limit is enforced from the length prefix alone, so
	// an oversized message is rejected before its body is buffered.
	MaxBodyLen int
}

// Receiver incrementally splits a byte stream into backend messages. It never
// performs IO and never blocks: the caller feeds it byte ranges in arrival
// order as they come off the network and pulls out as many complete messages
// as are available. A Receiver belongs to a single connection and must not be
// shared.
type Receiver struct {
	backendMessages

	buf        []byte
	rp         int
	maxBodyLen int
}

// NewReceiver creates a Receiver with default configuration.
func NewReceiver() *Receiver {
	return NewReceiverConfig(ReceiverConfig{})
}

// NewReceiverConfig creates a Receiver with the given configuration.
func NewReceiverConfig(cfg ReceiverConfig) *Receiver {
	return &Receiver{
		buf:        cfg.Buf,
		maxBodyLen: cfg.MaxBodyLen,
	}
}

// Feed appends bytes that arrived from the connection.
func (r *Receiver) Feed(data []byte) {
	if r.rp == len(r.buf) {
		r.buf = r.buf[:0]
		r.rp = 0
	} else if r.rp > 0 {
		n := copy(r.buf, r.buf[r.rp:])
		r.buf = r.buf[:n]
		r.rp = 0
	}
	r.buf = append(r.buf, data...)
}

// Next returns the next complete message, or (nil, nil) when a complete frame
// is not yet buffered. (nil, nil) is a normal outcome: the caller should Feed
// more bytes and try again. Nothing is consumed until a whole frame is
// present, so the length prefix of a partial frame is re-read on the next
// call. The returned message is only valid until the next call to Next.
//
// A non-nil error is a protocol violation and is fatal to the connection.
func (r *Receiver) Next() (BackendMessage, error) {
	if len(r.buf)-r.rp < 5 {
		return nil, nil
	}

	msgType := r.buf[r.rp]
	msgLen := int(binary.BigEndian.Uint32(r.buf[r.rp+1:]))
	if msgLen < 4 {
		return nil, &DecodeError{Reason: ReasonInvalidLength, Value: msgLen}
	}
	if r.maxBodyLen > 0 && msgLen-4 > r.maxBodyLen {
		return nil, &DecodeError{Reason: ReasonMaxBodyLenExceeded, Value: msgLen - 4}
	}

	if len(r.buf)-r.rp < msgLen+1 {
		return nil, nil
	}

	// The capped slice keeps a buggy decoder from reading into the next
	// frame even when more bytes are already buffered.
	body := r.buf[r.rp+5 : r.rp+msgLen+1 : r.rp+msgLen+1]

	msg, err := r.decode(msgType, body)
	if err != nil {
		return nil, err
	}

	r.rp += msgLen + 1
	return msg, nil
}
