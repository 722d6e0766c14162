package types

import (
	"strings"
	"testing"
)

func TestHashFromString(t *testing.T) {
	hexHash := "0f0e0d0c0b0a09080706050403020100ffeeddccbbaa99887766554433221100"
	h, err := HashFromString(hexHash)
	if err != nil {
		t.Fatal(err)
	}
	if h[0] != 0x0f || h[31] != 0x00 {
		t.Fatalf("wrong byte order %s", h)
	}
	if h.String() != hexHash {
		t.Fatalf("expected %s, got %s", hexHash, h)
	}

	if _, err = HashFromString(hexHash[:62]); err == nil {
		t.Fatal("expected error on short input")
	}
	if _, err = HashFromString(strings.Repeat("zz", 32)); err == nil {
		t.Fatal("expected error on invalid hex")
	}
}

func TestHash512(t *testing.T) {
	hexHash := strings.Repeat("00", 32) + strings.Repeat("ff", 32)
	h := MustHash512FromString(hexHash)
	if h.String() != hexHash {
		t.Fatalf("expected %s, got %s", hexHash, h)
	}
	if h.Lo() != ZeroHash {
		t.Fatalf("expected zero low half, got %s", h.Lo())
	}
	if h.Hi().String() != strings.Repeat("ff", 32) {
		t.Fatalf("unexpected high half %s", h.Hi())
	}

	if _, err := Hash512FromString(hexHash[2:]); err == nil {
		t.Fatal("expected error on short input")
	}
}

func TestHash_JSON(t *testing.T) {
	h := MustHashFromString("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")
	buf, err := h.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(buf) != "\"a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a\"" {
		t.Fatalf("unexpected encoding %s", buf)
	}

	var h2 Hash
	if err = h2.UnmarshalJSON(buf); err != nil {
		t.Fatal(err)
	}
	if h2 != h {
		t.Fatalf("expected %s, got %s", h, h2)
	}

	if err = h2.UnmarshalJSON([]byte("\"00\"")); err == nil {
		t.Fatal("expected error on wrong size")
	}
}
