package pgwire_test

import (
	"fmt"

	"github.com/pgwirekit/pgwire"
)

func ExampleReceiver() {
	r := pgwire.NewReceiver()

	frame := (&pgwire.ReadyForQuery{TxStatus: pgwire.TxStatusIdle}).Encode(nil)

	// Bytes arrive in arbitrary chunks; a partial frame is not a message yet.
	r.Feed(frame[:3])
	msg, _ := r.Next()
	fmt.Println(msg == nil)

	r.Feed(frame[3:])
	msg, _ = r.Next()
	fmt.Printf("%T\n", msg)

	// Output:
	// true
	// *pgwire.ReadyForQuery
}
