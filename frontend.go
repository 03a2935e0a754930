package pgwire

import (
	"encoding/binary"
	"io"

	"github.com/jackc/chunkreader/v2"
)

// Frontend acts as a client for the PostgreSQL wire protocol version 3. It
// blocks in Receive until a complete message has been read; use Receiver for
// a non-blocking read path.
type Frontend struct {
	cr *chunkreader.ChunkReader
	w  io.Writer

	backendMessages

	tracer *tracer

	wbuf []byte

	bodyLen    int
	msgType    byte
	partialMsg bool
}

// NewFrontend creates a new Frontend.
func NewFrontend(r io.Reader, w io.Writer) *Frontend {
	cr := chunkreader.New(r)
	return &Frontend{cr: cr, w: w}
}

// Send adds msg to the write buffer. The message is not guaranteed to be
// written until Flush is called.
func (f *Frontend) Send(msg FrontendMessage) {
	prevLen := len(f.wbuf)
	f.wbuf = msg.Encode(f.wbuf)
	if f.tracer != nil {
		f.tracer.traceMessage('F', len(f.wbuf)-prevLen, msg)
	}
}

// Flush writes any pending messages to the backend (i.e. the server).
func (f *Frontend) Flush() error {
	if len(f.wbuf) == 0 {
		return nil
	}

	_, err := f.w.Write(f.wbuf)

	const maxLen = 1024
	if len(f.wbuf) > maxLen {
		f.wbuf = make([]byte, 0, maxLen)
	} else {
		f.wbuf = f.wbuf[:0]
	}

	return err
}

func translateEOFtoErrUnexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Receive receives a message from the backend. The returned message is only
// valid until the next call to Receive.
func (f *Frontend) Receive() (BackendMessage, error) {
	if !f.partialMsg {
		header, err := f.cr.Next(5)
		if err != nil {
			return nil, translateEOFtoErrUnexpectedEOF(err)
		}

		f.msgType = header[0]

		msgLength := int(binary.BigEndian.Uint32(header[1:]))
		if msgLength < 4 {
			return nil, &DecodeError{Reason: ReasonInvalidLength, Value: msgLength}
		}

		f.bodyLen = msgLength - 4
		f.partialMsg = true
	}

	msgBody, err := f.cr.Next(f.bodyLen)
	if err != nil {
		return nil, translateEOFtoErrUnexpectedEOF(err)
	}

	f.partialMsg = false

	msg, err := f.decode(f.msgType, msgBody)
	if err != nil {
		return nil, err
	}

	if f.tracer != nil {
		f.tracer.traceMessage('B', 5+len(msgBody), msg)
	}

	return msg, nil
}
