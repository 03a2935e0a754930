package pgwire

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// tracer logs the message traffic of a Frontend at debug level. sender is
// 'F' for messages sent by the frontend and 'B' for messages received from
// the backend.
type tracer struct {
	logger zerolog.Logger
}

func (t *tracer) traceMessage(sender byte, encodedLen int, msg Message) {
	t.logger.Debug().
		Str("sender", string(sender)).
		Str("msg_type", messageName(msg)).
		Int("msg_len", encodedLen).
		Msg("pgwire message")
}

func messageName(msg Message) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", msg), "*pgwire.")
}

// Trace starts logging all sent and received messages to logger. An outbound
// message is traced when it is buffered by Send, before Flush transmits it.
func (f *Frontend) Trace(logger zerolog.Logger) {
	f.tracer = &tracer{logger: logger}
}

// Untrace stops tracing.
func (f *Frontend) Untrace() {
	f.tracer = nil
}
