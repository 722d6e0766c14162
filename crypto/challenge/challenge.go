// Package challenge computes SHA-512 over the fixed 96-byte message nonce || public key || digest,
// as used when deriving signature challenges, in a single compression pass.
package challenge

import (
	"encoding/binary"
	"errors"
	"fmt"

	"git.gammaspectra.live/P2Pool/challenge/crypto/internal/sha512block"
	"git.gammaspectra.live/P2Pool/challenge/types"
)

// MessageSize length of nonce || public key || digest
const MessageSize = types.HashSize * 3

const (
	// PaddingMarker single set bit right after the message
	PaddingMarker = 0x8000000000000000
	// MessageBits low word of the 128-bit length field, the high word is always zero
	MessageBits = MessageSize * 8
)

var ErrInvalidLength = errors.New("invalid length")

// Hash returns SHA-512(nonce || publicKey || digest).
// Runs in constant time with respect to its inputs.
func Hash(nonce, publicKey, digest types.Hash) (result types.Hash512) {
	var w sha512block.Schedule

	for i := 0; i < 4; i++ {
		w[i] = binary.BigEndian.Uint64(nonce[i*8:])
		w[4+i] = binary.BigEndian.Uint64(publicKey[i*8:])
		w[8+i] = binary.BigEndian.Uint64(digest[i*8:])
	}

	w[12] = PaddingMarker
	w[13] = 0
	w[14] = 0
	w[15] = MessageBits

	w.Expand()

	state := sha512block.IV
	sha512block.Compress(&state, &w)

	sha512block.PutState((*[sha512block.Size]byte)(&result), &state)
	return result
}

// HashBytes as Hash, for callers holding dynamically sized buffers.
// Each buffer must be exactly types.HashSize bytes, otherwise ErrInvalidLength is returned and nothing is computed.
func HashBytes(nonce, publicKey, digest []byte) (types.Hash512, error) {
	if len(nonce) != types.HashSize {
		return types.Hash512{}, fmt.Errorf("%w: nonce is %d bytes, expected %d", ErrInvalidLength, len(nonce), types.HashSize)
	}
	if len(publicKey) != types.HashSize {
		return types.Hash512{}, fmt.Errorf("%w: public key is %d bytes, expected %d", ErrInvalidLength, len(publicKey), types.HashSize)
	}
	if len(digest) != types.HashSize {
		return types.Hash512{}, fmt.Errorf("%w: digest is %d bytes, expected %d", ErrInvalidLength, len(digest), types.HashSize)
	}

	return Hash(types.Hash(nonce), types.Hash(publicKey), types.Hash(digest)), nil
}
