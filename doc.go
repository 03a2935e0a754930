// Package pgwire is a client-side encoder and decoder for the PostgreSQL
// wire protocol version 3.
/*
pgwire converts the byte stream arriving from a PostgreSQL server into typed
backend messages and typed frontend messages into correctly framed bytes. It
is a building block for drivers and proxies, not a driver itself: connection
establishment, TLS, authentication exchanges, and query lifecycle management
are left to the caller.

There are two ways to consume the stream. Receiver is a non-blocking
accumulator: the caller feeds it arbitrarily chunked byte ranges as they
arrive and pulls complete messages out. Frontend wraps an io.Reader and
io.Writer directly and blocks until a complete message is available.

Any DecodeError returned by either is protocol-fatal: once a frame fails to
parse as declared, the position in the stream can no longer be trusted and
the connection must be closed.
*/
package pgwire
