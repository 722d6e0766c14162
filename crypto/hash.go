package crypto

import (
	"errors"
	"fmt"
	"hash"

	"git.gammaspectra.live/P2Pool/challenge/types"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestKind names a 32-byte hash used to pre-hash a signed message before computing its challenge
type DigestKind string

const (
	DigestKeccak256  DigestKind = "keccak256"
	DigestSha3_256   DigestKind = "sha3-256"
	DigestBlake2b256 DigestKind = "blake2b-256"
)

var ErrUnknownDigest = errors.New("unknown digest kind")

var DigestKinds = []DigestKind{DigestKeccak256, DigestSha3_256, DigestBlake2b256}

func NewDigest(kind DigestKind) (hash.Hash, error) {
	switch kind {
	case DigestKeccak256:
		return sha3.NewLegacyKeccak256(), nil
	case DigestSha3_256:
		return sha3.New256(), nil
	case DigestBlake2b256:
		// only errors on oversized keys
		h, _ := blake2b.New256(nil)
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDigest, string(kind))
	}
}

// MessageDigest hashes message down to the 32-byte digest field of a challenge
func MessageDigest(kind DigestKind, message []byte) (result types.Hash, err error) {
	h, err := NewDigest(kind)
	if err != nil {
		return result, err
	}
	_, _ = h.Write(message)
	h.Sum(result[:0])
	return result, nil
}

func Keccak256Var[T ~string | ~[]byte](data ...T) (result types.Hash) {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = h.Write([]byte(b))
	}
	h.Sum(result[:0])

	return
}

func Keccak256[T ~string | ~[]byte](data T) (result types.Hash) {
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(data))
	h.Sum(result[:0])

	return
}

func Sha3_256(data []byte) types.Hash {
	return sha3.Sum256(data)
}

func Blake2b256(data []byte) types.Hash {
	return blake2b.Sum256(data)
}
