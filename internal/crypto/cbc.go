package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"strings"
)

// CBC: P[i] = Dec(C[i]) XOR C[i-1], with the IV standing in for C[-1].

// DecodeBase64 decodes standard base64 text. field names the input in the
// returned error.
func DecodeBase64(field, s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, field, err)
	}
	return b, nil
}

// DecryptCBCBase64 decodes key, iv and ciphertext from base64 and decrypts.
func DecryptCBCBase64(keyB64, ivB64, ciphertextB64 string) ([]byte, error) {
	key, err := DecodeBase64("key", keyB64)
	if err != nil { return nil, err }
	iv, err := DecodeBase64("iv", ivB64)
	if err != nil { return nil, err }
	ct, err := DecodeBase64("ciphertext", ciphertextB64)
	if err != nil { return nil, err }
	return DecryptCBC(key, iv, ct)
}

// DecryptCBC returns the raw CBC plaintext. Padding bytes are left in place.
func DecryptCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := newBlock(key, iv, len(ciphertext), "ciphertext")
	if err != nil { return nil, err }
	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)
	return out, nil
}

// EncryptCBC is the inverse of DecryptCBC. plaintext must already be
// block aligned; see Pad.
func EncryptCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := newBlock(key, iv, len(plaintext), "plaintext")
	if err != nil { return nil, err }
	out := make([]byte, len(plaintext))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, plaintext)
	return out, nil
}

func newBlock(key, iv []byte, dataLen int, dataName string) (cipher.Block, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: key is %d bytes, want 16, 24 or 32", ErrInvalidLength, len(key))
	}
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: iv is %d bytes, want %d", ErrInvalidLength, len(iv), aes.BlockSize)
	}
	if dataLen%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %s is %d bytes, not a multiple of %d", ErrInvalidLength, dataName, dataLen, aes.BlockSize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLength, err)
	}
	return block, nil
}
