package sha512block

import (
	"encoding/binary"
	"math/bits"

	"lukechampine.com/uint128"
)

// Schedule Expanded message schedule of a single block
type Schedule [Rounds]uint64

//go:nosplit
func rotr(x uint64, n int) uint64 {
	return bits.RotateLeft64(x, -n)
}

// Sigma0 Σ0, applied to register a
func Sigma0(x uint64) uint64 {
	return rotr(x, 28) ^ rotr(x, 34) ^ rotr(x, 39)
}

// Sigma1 Σ1, applied to register e
func Sigma1(x uint64) uint64 {
	return rotr(x, 14) ^ rotr(x, 18) ^ rotr(x, 41)
}

// Gamma0 σ0 of the message schedule
func Gamma0(x uint64) uint64 {
	return rotr(x, 1) ^ rotr(x, 8) ^ (x >> 7)
}

// Gamma1 σ1 of the message schedule
func Gamma1(x uint64) uint64 {
	return rotr(x, 19) ^ rotr(x, 61) ^ (x >> 6)
}

func Ch(x, y, z uint64) uint64 {
	return (x & y) ^ (^x & z)
}

func Maj(x, y, z uint64) uint64 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// Load reads one 128-byte block into the first 16 schedule words, big endian
func (w *Schedule) Load(p []byte) {
	_ = p[BlockSize-1] // bounds check hint to compiler; see golang.org/issue/14808
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint64(p[i*8:])
	}
}

// Expand derives words 16..79 from the first 16. All additions wrap modulo 2^64
func (w *Schedule) Expand() {
	for i := 16; i < Rounds; i++ {
		w[i] = w[i-16] + Gamma0(w[i-15]) + w[i-7] + Gamma1(w[i-2])
	}
}

// Compress runs all rounds over an expanded schedule and adds the result into state
func Compress(state *[8]uint64, w *Schedule) {
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := 0; i < Rounds; i++ {
		t1 := h + Sigma1(e) + Ch(e, f, g) + K[i] + w[i]
		t2 := Sigma0(a) + Maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// Block compresses every full block in p into state. Trailing partial blocks are ignored
func Block(state *[8]uint64, p []byte) {
	var w Schedule
	for len(p) >= BlockSize {
		w.Load(p)
		w.Expand()
		Compress(state, &w)
		p = p[BlockSize:]
	}
}

// LengthField The 128-bit message length in bits that terminates the padding of an n byte message
func LengthField(n uint64) uint128.Uint128 {
	return uint128.From64(n).Mul64(8)
}

// Pad returns the padding tail of an n byte message, such that n + len(Pad(n)) is a multiple of BlockSize
func Pad(n uint64) []byte {
	// 0x80 marker, zero fill until 112 mod 128, then the 16-byte length
	t := BlockSize + 112 - (n % BlockSize)
	if t > BlockSize {
		t -= BlockSize
	}

	buf := make([]byte, t+16)
	buf[0] = 0x80
	LengthField(n).PutBytesBE(buf[t:])
	return buf
}

// PutState serializes state big endian into dst
func PutState(dst *[Size]byte, state *[8]uint64) {
	for i := range state {
		binary.BigEndian.PutUint64(dst[i*8:], state[i])
	}
}
