package pgwire

import (
	"encoding/binary"
	"encoding/json"

	"github.com/jackc/pgio"
)

// Authentication request type constants carried inside 'R' messages. See
// src/include/libpq/pqcomm.h for the full set.
const (
	AuthTypeOk                = 0
	AuthTypeCleartextPassword = 3
	AuthTypeMD5Password       = 5
)

// AuthenticationOk reports that authentication succeeded (or was not
// required).
type AuthenticationOk struct{}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*AuthenticationOk) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *AuthenticationOk) Decode(src []byte) error {
	if len(src) != 4 {
		return &DecodeError{MessageType: "AuthenticationOk", Reason: ReasonInvalidLength, Value: len(src)}
	}
	if authType := binary.BigEndian.Uint32(src); authType != AuthTypeOk {
		return &DecodeError{MessageType: "AuthenticationOk", Reason: ReasonUnknownMessageType, Value: int(authType)}
	}

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *AuthenticationOk) Encode(dst []byte) []byte {
	dst = append(dst, 'R')
	dst = pgio.AppendUint32(dst, 8)
	dst = pgio.AppendUint32(dst, AuthTypeOk)
	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src AuthenticationOk) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
	}{
		Type: "AuthenticationOK",
	})
}

// AuthenticationCleartextPassword requests a cleartext password from the
// client.
type AuthenticationCleartextPassword struct{}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*AuthenticationCleartextPassword) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *AuthenticationCleartextPassword) Decode(src []byte) error {
	if len(src) != 4 {
		return &DecodeError{MessageType: "AuthenticationCleartextPassword", Reason: ReasonInvalidLength, Value: len(src)}
	}
	if authType := binary.BigEndian.Uint32(src); authType != AuthTypeCleartextPassword {
		return &DecodeError{MessageType: "AuthenticationCleartextPassword", Reason: ReasonUnknownMessageType, Value: int(authType)}
	}

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *AuthenticationCleartextPassword) Encode(dst []byte) []byte {
	dst = append(dst, 'R')
	dst = pgio.AppendUint32(dst, 8)
	dst = pgio.AppendUint32(dst, AuthTypeCleartextPassword)
	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src AuthenticationCleartextPassword) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
	}{
		Type: "AuthenticationCleartextPassword",
	})
}

// AuthenticationMD5Password requests an MD5 hashed password from the client.
type AuthenticationMD5Password struct {
	Salt [4]byte
}

// Backend identifies this message as sendable by the PostgreSQL backend.
func (*AuthenticationMD5Password) Backend() {}

// Decode decodes src into dst. src must contain the complete message body
// with the exception of the initial 1 byte message type identifier and 4 byte
// message length.
func (dst *AuthenticationMD5Password) Decode(src []byte) error {
	if len(src) != 8 {
		return &DecodeError{MessageType: "AuthenticationMD5Password", Reason: ReasonInvalidLength, Value: len(src)}
	}
	if authType := binary.BigEndian.Uint32(src); authType != AuthTypeMD5Password {
		return &DecodeError{MessageType: "AuthenticationMD5Password", Reason: ReasonUnknownMessageType, Value: int(authType)}
	}

	copy(dst.Salt[:], src[4:8])

	return nil
}

// Encode encodes src into dst. dst will include the 1 byte message type
// identifier and the 4 byte message length.
func (src *AuthenticationMD5Password) Encode(dst []byte) []byte {
	dst = append(dst, 'R')
	dst = pgio.AppendUint32(dst, 12)
	dst = pgio.AppendUint32(dst, AuthTypeMD5Password)
	dst = append(dst, src.Salt[:]...)
	return dst
}

// MarshalJSON implements encoding/json.Marshaler.
func (src AuthenticationMD5Password) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string
		Salt [4]byte
	}{
		Type: "AuthenticationMD5Password",
		Salt: src.Salt,
	})
}
