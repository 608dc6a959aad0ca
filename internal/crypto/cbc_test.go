package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
)

func TestDecryptCBCZeroKeyBlock(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 16)
	block := []byte("TESTDATA1234567\x01")
	ct, err := EncryptCBC(key, iv, block)
	if err != nil { t.Fatal(err) }
	if bytes.Equal(ct, block) { t.Fatal("ciphertext equals plaintext") }

	pt, err := DecryptCBCBase64(
		base64.StdEncoding.EncodeToString(key),
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(ct),
	)
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(pt, block) { t.Fatalf("got %q want %q", pt, block) }
}

func TestCBCRoundTripWithPadding(t *testing.T) {
	iv := bytes.Repeat([]byte{0x42}, 16)
	for _, keyLen := range []int{16, 24, 32} {
		key := bytes.Repeat([]byte{byte(keyLen)}, keyLen)
		for _, msg := range []string{"", "a", "exactly sixteen!", "a message spanning several AES blocks"} {
			padded, err := Pad([]byte(msg))
			if err != nil { t.Fatal(err) }
			ct, err := EncryptCBC(key, iv, padded)
			if err != nil { t.Fatalf("key %d: %v", keyLen, err) }
			pt, err := DecryptCBC(key, iv, ct)
			if err != nil { t.Fatalf("key %d: %v", keyLen, err) }
			if !bytes.Equal(pt, padded) { t.Fatalf("key %d: padded plaintext mismatch", keyLen) }
			got, err := Unpad(pt)
			if err != nil { t.Fatal(err) }
			if string(got) != msg { t.Fatalf("key %d: got %q want %q", keyLen, got, msg) }
		}
	}
}

func TestDecryptCBCDeterministic(t *testing.T) {
	key := bytes.Repeat([]byte{1}, 16)
	iv := bytes.Repeat([]byte{2}, 16)
	ct := bytes.Repeat([]byte{3}, 48)
	a, err := DecryptCBC(key, iv, ct)
	if err != nil { t.Fatal(err) }
	b, err := DecryptCBC(key, iv, ct)
	if err != nil { t.Fatal(err) }
	if !bytes.Equal(a, b) { t.Fatal("decryption is not deterministic") }
}

func TestDecryptCBCLengthChecks(t *testing.T) {
	cases := []struct {
		name string
		key, iv, ct []byte
	}{
		{"short iv", make([]byte, 16), make([]byte, 15), make([]byte, 16)},
		{"long iv", make([]byte, 16), make([]byte, 17), make([]byte, 16)},
		{"bad key", make([]byte, 20), make([]byte, 16), make([]byte, 16)},
		{"ragged ciphertext", make([]byte, 32), make([]byte, 16), make([]byte, 17)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecryptCBC(c.key, c.iv, c.ct)
			if !errors.Is(err, ErrInvalidLength) { t.Fatalf("want ErrInvalidLength, got %v", err) }
		})
	}
}

func TestDecryptCBCBase64Malformed(t *testing.T) {
	good := base64.StdEncoding.EncodeToString(make([]byte, 16))
	_, err := DecryptCBCBase64(good, "not*base64", good)
	if !errors.Is(err, ErrDecode) { t.Fatalf("want ErrDecode, got %v", err) }
}

func TestUnpadRejectsGarbage(t *testing.T) {
	bad := [][]byte{
		nil,
		make([]byte, 15),
		append(bytes.Repeat([]byte{'x'}, 15), 0x00),
		append(bytes.Repeat([]byte{'x'}, 15), 0x20),
		append(bytes.Repeat([]byte{'x'}, 14), 0x01, 0x02),
	}
	for i, b := range bad {
		if _, err := Unpad(b); !errors.Is(err, ErrInvalidPadding) {
			t.Fatalf("case %d: want ErrInvalidPadding, got %v", i, err)
		}
	}
}

func TestPaddingByte(t *testing.T) {
	if _, ok := PaddingByte(nil); ok { t.Fatal("expected !ok for empty input") }
	if n, ok := PaddingByte([]byte{9, 4}); !ok || n != 4 { t.Fatalf("got %d %v", n, ok) }
}
