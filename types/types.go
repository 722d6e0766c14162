package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

const HashSize = 32

const Hash512Size = 64

// Hash 32-byte field, used for nonces, public keys and message digests
//
//nolint:recvcheck
type Hash [HashSize]byte

// Hash512 64-byte digest
//
//nolint:recvcheck
type Hash512 [Hash512Size]byte

var ZeroHash Hash

var errWrongSize = errors.New("wrong size")

func MustBytes32FromString[T ~[32]byte](s string) T {
	if h, err := Bytes32FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Bytes32FromString[T ~[32]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != 32 {
			return h, errWrongSize
		}
		copy(h[:], buf)
		return h, nil
	}
}

func MustHashFromString(s string) Hash {
	return MustBytes32FromString[Hash](s)
}

func HashFromString(s string) (Hash, error) {
	return Bytes32FromString[Hash](s)
}

func HashFromBytes(buf []byte) (h Hash) {
	if len(buf) != HashSize {
		return
	}
	copy(h[:], buf)
	return
}

func (h Hash) Slice() []byte {
	return h[:]
}

func (h Hash) String() string {
	return fasthex.EncodeToString(h[:])
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return marshalHex(h[:]), nil
}

func (h *Hash) UnmarshalJSON(b []byte) error {
	return unmarshalHex(h[:], b)
}

func MustHash512FromString(s string) Hash512 {
	if h, err := Hash512FromString(s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Hash512FromString(s string) (h Hash512, err error) {
	if len(s) != Hash512Size*2 {
		return h, errWrongSize
	}
	if _, err = fasthex.Decode(h[:], []byte(s)); err != nil {
		return h, err
	}
	return h, nil
}

func (h Hash512) Slice() []byte {
	return h[:]
}

func (h Hash512) String() string {
	return fasthex.EncodeToString(h[:])
}

// Lo first half of the digest
func (h Hash512) Lo() (r Hash) {
	copy(r[:], h[:HashSize])
	return r
}

// Hi second half of the digest
func (h Hash512) Hi() (r Hash) {
	copy(r[:], h[HashSize:])
	return r
}

func (h Hash512) MarshalJSON() ([]byte, error) {
	return marshalHex(h[:]), nil
}

func (h *Hash512) UnmarshalJSON(b []byte) error {
	return unmarshalHex(h[:], b)
}

func marshalHex(h []byte) []byte {
	buf := make([]byte, len(h)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], h)
	return buf
}

// unmarshalHex empty input and "" leave dst untouched
func unmarshalHex(dst, b []byte) error {
	if len(b) == 0 || len(b) == 2 {
		return nil
	}

	if len(b) != len(dst)*2+2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("wrong hash size")
	}

	if _, err := fasthex.Decode(dst, b[1:len(b)-1]); err != nil {
		return err
	}

	return nil
}
